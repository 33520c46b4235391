package models

// ExerciseType keys the MET table used for calorie-burn estimates.
type ExerciseType string

const (
	ExerciseWalking          ExerciseType = "Walking"
	ExerciseJogging          ExerciseType = "Jogging"
	ExerciseCycling          ExerciseType = "Cycling"
	ExerciseSwimming         ExerciseType = "Swimming"
	ExerciseYoga             ExerciseType = "Yoga"
	ExerciseStrengthTraining ExerciseType = "Strength Training"
	ExerciseDancing          ExerciseType = "Dancing"
	ExerciseStairClimbing    ExerciseType = "Stair Climbing"
	ExerciseJumpingJacks     ExerciseType = "Jumping Jacks"
)

var ExerciseTypes = []ExerciseType{
	ExerciseWalking, ExerciseJogging, ExerciseCycling, ExerciseSwimming, ExerciseYoga,
	ExerciseStrengthTraining, ExerciseDancing, ExerciseStairClimbing, ExerciseJumpingJacks,
}

func ParseExerciseType(s string) (ExerciseType, bool) { return parseEnum(s, ExerciseTypes) }
