// Package session derives dashboard views from a session snapshot and builds
// the log entries that get appended to it.
package session

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"swasthya/internal/detection"
	"swasthya/internal/health"
	"swasthya/internal/models"
	"swasthya/internal/plans"
)

type FoodFinder interface {
	Find(name string) (models.FoodRecord, error)
}

// IntakeFromCatalog logs one serving of a catalog food.
func IntakeFromCatalog(foods FoodFinder, name string, at time.Time) (models.IntakeEntry, error) {
	rec, err := foods.Find(name)
	if err != nil {
		return models.IntakeEntry{}, err
	}
	return models.NewIntakeEntry(rec.Name, int(math.Round(rec.Calories)), models.SourceManualEntry, at), nil
}

// IntakeFromScan logs every detected dish with the calories the scan estimated.
func IntakeFromScan(foods []detection.DetectedFood, at time.Time) []models.IntakeEntry {
	entries := make([]models.IntakeEntry, 0, len(foods))
	for _, f := range foods {
		entries = append(entries, models.NewIntakeEntry(f.Name, f.Calories, models.SourceCameraScan, at))
	}
	return entries
}

func IntakeFromMealPlan(meal plans.PlannedMeal, at time.Time) models.IntakeEntry {
	return models.NewIntakeEntry(meal.Name, meal.Calories, models.SourceMealPlan, at)
}

// IntakeManual logs an ad-hoc food the catalog may not know.
func IntakeManual(name string, calories int, at time.Time) (models.IntakeEntry, error) {
	if name == "" {
		return models.IntakeEntry{}, fmt.Errorf("%w: food name is required", health.ErrInvalidInput)
	}
	if calories < 0 {
		return models.IntakeEntry{}, fmt.Errorf("%w: calories must not be negative, got %d", health.ErrInvalidInput, calories)
	}
	return models.NewIntakeEntry(name, calories, models.SourceManualEntry, at), nil
}

func ExerciseFromRoutine(e plans.RoutineExercise, at time.Time) models.ExerciseLogEntry {
	return models.NewExerciseLogEntry(e.Name, e.Duration, e.Calories, at)
}

// ExerciseFromActivity estimates the burn of a timed activity for the profile's weight.
func ExerciseFromActivity(p models.UserProfile, exercise models.ExerciseType, minutes float64, at time.Time) (models.ExerciseLogEntry, error) {
	burned, err := health.CaloriesBurned(exercise, minutes, p.Weight)
	if err != nil {
		return models.ExerciseLogEntry{}, err
	}
	name := string(exercise)
	if canonical, ok := models.ParseExerciseType(name); ok {
		name = string(canonical)
	}
	label := strconv.FormatFloat(minutes, 'f', -1, 64) + " min"
	return models.NewExerciseLogEntry(name, label, burned, at), nil
}
