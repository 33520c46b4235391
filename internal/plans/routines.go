package plans

import "fmt"

type Level string

const (
	LevelBeginner     Level = "Beginner"
	LevelIntermediate Level = "Intermediate"
	LevelAdvanced     Level = "Advanced"
)

type RoutineKind string

const (
	KindCardio           RoutineKind = "Cardio"
	KindStrengthTraining RoutineKind = "Strength Training"
	KindYoga             RoutineKind = "Yoga"
	KindTraditionalDance RoutineKind = "Traditional Dance"
)

var RoutineKinds = []RoutineKind{KindCardio, KindStrengthTraining, KindYoga, KindTraditionalDance}

type RoutineExercise struct {
	Name        string `json:"name" example:"Morning Walk"`
	Duration    string `json:"duration" example:"20 min"`
	Calories    int    `json:"calories" example:"80"`
	Description string `json:"description" example:"Gentle walk around neighborhood"`
}

type Routine struct {
	Level         Level             `json:"level" example:"Beginner"`
	Kind          RoutineKind       `json:"kind" example:"Cardio"`
	Exercises     []RoutineExercise `json:"exercises"`
	TotalMinutes  int               `json:"total_minutes" example:"50"`
	TotalCalories int               `json:"total_calories" example:"230"`
}

// Only beginner routines are authored.
var routines = map[Level]map[RoutineKind][]RoutineExercise{
	LevelBeginner: {
		KindCardio: {
			{"Morning Walk", "20 min", 80, "Gentle walk around neighborhood"},
			{"Stair Climbing", "10 min", 60, "Use stairs in building"},
			{"Jumping Jacks", "5 min", 40, "Low-impact cardio"},
			{"Marching in Place", "15 min", 50, "Indoor cardio exercise"},
		},
		KindStrengthTraining: {
			{"Wall Push-ups", "10 reps", 30, "Push-ups against wall"},
			{"Chair Squats", "15 reps", 40, "Squats with chair support"},
			{"Arm Circles", "2 min", 20, "Shoulder mobility"},
			{"Modified Planks", "30 sec", 25, "Planks on knees"},
		},
		KindYoga: {
			{"Sun Salutation A", "10 min", 35, "Basic yoga flow"},
			{"Child's Pose", "5 min", 15, "Relaxing stretch"},
			{"Cat-Cow Stretch", "5 min", 20, "Spinal mobility"},
			{"Mountain Pose", "3 min", 10, "Foundation pose"},
		},
		KindTraditionalDance: {
			{"Nepali Folk Dance", "15 min", 70, "Traditional moves"},
			{"Bollywood Dance", "20 min", 90, "Fun choreography"},
			{"Simple Dance Steps", "10 min", 45, "Basic movements"},
			{"Stretching Dance", "8 min", 30, "Gentle stretches"},
		},
	},
}

// RoutineFor looks up a routine. TotalMinutes adds the numeric part of every
// duration label, reps and seconds included, as the label is all there is.
func RoutineFor(level Level, kind RoutineKind) (Routine, error) {
	for l, byKind := range routines {
		if !sameKey(string(l), string(level)) {
			continue
		}
		for k, exercises := range byKind {
			if !sameKey(string(k), string(kind)) {
				continue
			}
			r := Routine{Level: l, Kind: k, Exercises: append([]RoutineExercise(nil), exercises...)}
			for _, e := range exercises {
				r.TotalCalories += e.Calories
				r.TotalMinutes += leadingNumber(e.Duration)
			}
			return r, nil
		}
	}
	return Routine{}, fmt.Errorf("%w: no %s %s routine", ErrPlanNotFound, level, kind)
}

// Routines lists every authored routine in a stable order.
func Routines() []Routine {
	out := []Routine{}
	for _, level := range []Level{LevelBeginner, LevelIntermediate, LevelAdvanced} {
		for _, kind := range RoutineKinds {
			if r, err := RoutineFor(level, kind); err == nil {
				out = append(out, r)
			}
		}
	}
	return out
}

// RoutineExerciseByName finds one exercise of a routine, case-insensitively.
func RoutineExerciseByName(level Level, kind RoutineKind, name string) (RoutineExercise, error) {
	r, err := RoutineFor(level, kind)
	if err != nil {
		return RoutineExercise{}, err
	}
	for _, e := range r.Exercises {
		if sameKey(e.Name, name) {
			return e, nil
		}
	}
	return RoutineExercise{}, fmt.Errorf("%w: %q is not part of %s %s", ErrPlanNotFound, name, level, kind)
}
