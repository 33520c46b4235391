package models

import (
	"errors"
	"fmt"
	"time"
)

var ErrIntakeIndexOutOfRange = errors.New("intake index out of range")

type IntakeSource string

const (
	SourceManualEntry IntakeSource = "Manual Entry"
	SourceCameraScan  IntakeSource = "Camera Scan"
	SourceMealPlan    IntakeSource = "Meal Plan"
)

// IntakeEntry is one logged food. FoodName usually names a catalog record;
// scanner and meal-plan entries may carry names the catalog does not know.
type IntakeEntry struct {
	FoodName  string       `json:"food_name" example:"Dal Bhat (1 plate)"`
	Calories  int          `json:"calories" example:"420"`
	Timestamp time.Time    `json:"timestamp"`
	Time      string       `json:"time" example:"13:05"`
	Source    IntakeSource `json:"source" example:"Manual Entry"`
}

func NewIntakeEntry(name string, calories int, source IntakeSource, at time.Time) IntakeEntry {
	return IntakeEntry{
		FoodName:  name,
		Calories:  calories,
		Timestamp: at,
		Time:      at.Format("15:04"),
		Source:    source,
	}
}

type ExerciseLogEntry struct {
	Exercise       string    `json:"exercise" example:"Morning Walk"`
	Duration       string    `json:"duration" example:"20 min"`
	CaloriesBurned int       `json:"calories_burned" example:"80"`
	LoggedAt       time.Time `json:"logged_at"`
	Date           string    `json:"date" example:"2024-01-15"`
	Time           string    `json:"time" example:"07:30"`
}

func NewExerciseLogEntry(exercise, duration string, calories int, at time.Time) ExerciseLogEntry {
	return ExerciseLogEntry{
		Exercise:       exercise,
		Duration:       duration,
		CaloriesBurned: calories,
		LoggedAt:       at,
		Date:           at.Format("2006-01-02"),
		Time:           at.Format("15:04"),
	}
}

// Session is the per-user state of the dashboard. Every mutating method
// returns a new snapshot; the receiver and its slices are never modified.
type Session struct {
	ID        string             `json:"id" example:"6f1c2b9e-8a55-4a9e-9d1f-2b1f0e9f3c11"`
	Profile   UserProfile        `json:"profile"`
	Intake    []IntakeEntry      `json:"intake"`
	Exercises []ExerciseLogEntry `json:"exercises"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

func NewSession(id string, now time.Time) Session {
	return Session{
		ID:        id,
		Profile:   DefaultProfile(),
		Intake:    []IntakeEntry{},
		Exercises: []ExerciseLogEntry{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (s Session) Clone() Session {
	s.Profile = s.Profile.Clone()
	s.Intake = append(make([]IntakeEntry, 0, len(s.Intake)), s.Intake...)
	s.Exercises = append(make([]ExerciseLogEntry, 0, len(s.Exercises)), s.Exercises...)
	return s
}

// WithProfile replaces the profile wholesale.
func (s Session) WithProfile(p UserProfile) Session {
	next := s.Clone()
	next.Profile = p.Clone()
	return next
}

func (s Session) AddIntake(entries ...IntakeEntry) Session {
	next := s.Clone()
	next.Intake = append(next.Intake, entries...)
	return next
}

// RemoveIntake drops the entry at index, keeping the order of the rest.
func (s Session) RemoveIntake(index int) (Session, error) {
	if index < 0 || index >= len(s.Intake) {
		return s, fmt.Errorf("%w: %d not in [0,%d)", ErrIntakeIndexOutOfRange, index, len(s.Intake))
	}
	next := s.Clone()
	next.Intake = append(next.Intake[:index], next.Intake[index+1:]...)
	return next, nil
}

func (s Session) AddExercise(entries ...ExerciseLogEntry) Session {
	next := s.Clone()
	next.Exercises = append(next.Exercises, entries...)
	return next
}

func (s Session) ConsumedCalories() int {
	total := 0
	for _, e := range s.Intake {
		total += e.Calories
	}
	return total
}

func (s Session) BurnedCalories() int {
	total := 0
	for _, e := range s.Exercises {
		total += e.CaloriesBurned
	}
	return total
}

// RecentIntake returns up to n most recent entries, oldest first.
func (s Session) RecentIntake(n int) []IntakeEntry {
	if n <= 0 {
		return []IntakeEntry{}
	}
	start := len(s.Intake) - n
	if start < 0 {
		start = 0
	}
	return append([]IntakeEntry{}, s.Intake[start:]...)
}
