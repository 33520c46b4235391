// Package health holds the closed-form wellness formulas: BMI, BMR,
// calorie and macronutrient targets, hydration and exercise burn.
// Every function is pure.
package health

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"swasthya/internal/models"
)

var ErrInvalidInput = errors.New("invalid input")

// Fallbacks for values missing from the lookup tables.
const (
	DefaultActivityMultiplier = 1.55
	DefaultMET                = 4.0
	goalCalorieDelta          = 500
)

var activityMultipliers = map[models.ActivityLevel]float64{
	models.ActivitySedentary:  1.2,
	models.ActivityLight:      1.375,
	models.ActivityModerate:   1.55,
	models.ActivityActive:     1.725,
	models.ActivityVeryActive: 1.9,
}

var metValues = map[models.ExerciseType]float64{
	models.ExerciseWalking:          3.5,
	models.ExerciseJogging:          7.0,
	models.ExerciseCycling:          6.0,
	models.ExerciseSwimming:         8.0,
	models.ExerciseYoga:             2.5,
	models.ExerciseStrengthTraining: 6.0,
	models.ExerciseDancing:          5.0,
	models.ExerciseStairClimbing:    8.0,
	models.ExerciseJumpingJacks:     8.0,
}

// macroSplit is the protein/carb/fat share of daily calories, in percent.
type macroSplit struct{ protein, carb, fat int }

var (
	splitLoseWeight = macroSplit{30, 40, 30}
	splitGainWeight = macroSplit{25, 45, 30}
	splitMaintain   = macroSplit{25, 45, 30}
)

const (
	kcalPerGramProtein = 4.0
	kcalPerGramCarb    = 4.0
	kcalPerGramFat     = 9.0
)

type BMIBand struct {
	Category       string `json:"category" example:"Normal"`
	Color          string `json:"color" example:"#22C55E"`
	Recommendation string `json:"recommendation" example:"Maintain your current healthy weight"`
}

var (
	bandUnderweight = BMIBand{"Underweight", "#3B82F6", "Consider increasing calorie intake with healthy foods"}
	bandNormal      = BMIBand{"Normal", "#22C55E", "Maintain your current healthy weight"}
	bandOverweight  = BMIBand{"Overweight", "#F59E0B", "Consider reducing calorie intake and increasing exercise"}
	bandObese       = BMIBand{"Obese", "#EF4444", "Consult healthcare provider for weight management plan"}
)

type Macros struct {
	ProteinGrams float64 `json:"protein_grams" example:"132.9"`
	CarbGrams    float64 `json:"carb_grams" example:"239.2"`
	FatGrams     float64 `json:"fat_grams" example:"70.9"`
	ProteinPct   int     `json:"protein_percent" example:"25"`
	CarbPct      int     `json:"carb_percent" example:"45"`
	FatPct       int     `json:"fat_percent" example:"30"`
}

// Round1 rounds half away from zero to one decimal place.
func Round1(x float64) float64 {
	return math.Round(x*10) / 10
}

// CalculateBMI returns weight / height(m)^2, unrounded.
func CalculateBMI(weightKg, heightCm float64) (float64, error) {
	if weightKg <= 0 {
		return 0, fmt.Errorf("%w: weight must be positive, got %v", ErrInvalidInput, weightKg)
	}
	if heightCm <= 0 {
		return 0, fmt.Errorf("%w: height must be positive, got %v", ErrInvalidInput, heightCm)
	}
	heightM := heightCm / 100
	return weightKg / (heightM * heightM), nil
}

// BMICategory maps a BMI onto [0,18.5) [18.5,25) [25,30) [30,inf).
func BMICategory(bmi float64) BMIBand {
	switch {
	case bmi < 18.5:
		return bandUnderweight
	case bmi < 25:
		return bandNormal
	case bmi < 30:
		return bandOverweight
	default:
		return bandObese
	}
}

// CalculateBMR uses the Harris-Benedict equation. Only a case-insensitive
// "female" selects the female formula.
func CalculateBMR(weightKg, heightCm float64, ageYears int, gender models.Gender) (int, error) {
	if weightKg <= 0 || heightCm <= 0 || ageYears <= 0 {
		return 0, fmt.Errorf("%w: weight, height and age must be positive (got %v kg, %v cm, %d y)",
			ErrInvalidInput, weightKg, heightCm, ageYears)
	}
	age := float64(ageYears)
	var bmr float64
	if strings.EqualFold(strings.TrimSpace(string(gender)), string(models.GenderFemale)) {
		bmr = 655 + 9.6*weightKg + 1.8*heightCm - 4.7*age
	} else {
		bmr = 66 + 13.7*weightKg + 5*heightCm - 6.8*age
	}
	return int(math.Round(bmr)), nil
}

// ActivityMultiplier returns the TDEE multiplier; unrecognized levels get 1.55.
func ActivityMultiplier(level models.ActivityLevel) float64 {
	if canonical, ok := models.ParseActivityLevel(string(level)); ok {
		return activityMultipliers[canonical]
	}
	return DefaultActivityMultiplier
}

// DailyCalorieTarget applies the activity multiplier and the goal offset,
// truncating toward zero.
func DailyCalorieTarget(bmr int, level models.ActivityLevel, goal models.Goal) int {
	maintenance := float64(bmr) * ActivityMultiplier(level)
	g, _ := models.ParseGoal(string(goal))
	switch g {
	case models.GoalLoseWeight:
		return int(maintenance - goalCalorieDelta)
	case models.GoalGainWeight:
		return int(maintenance + goalCalorieDelta)
	default:
		return int(maintenance)
	}
}

func MacronutrientTargets(dailyCalories int, goal models.Goal) Macros {
	split := splitMaintain
	g, _ := models.ParseGoal(string(goal))
	switch g {
	case models.GoalLoseWeight:
		split = splitLoseWeight
	case models.GoalGainWeight:
		split = splitGainWeight
	}
	share := func(pct int) float64 { return float64(dailyCalories) * float64(pct) / 100 }
	return Macros{
		ProteinGrams: Round1(share(split.protein) / kcalPerGramProtein),
		CarbGrams:    Round1(share(split.carb) / kcalPerGramCarb),
		FatGrams:     Round1(share(split.fat) / kcalPerGramFat),
		ProteinPct:   split.protein,
		CarbPct:      split.carb,
		FatPct:       split.fat,
	}
}

func WaterNeedsLiters(weightKg float64, level models.ActivityLevel) float64 {
	water := weightKg * 0.035
	a, _ := models.ParseActivityLevel(string(level))
	switch a {
	case models.ActivityActive, models.ActivityVeryActive:
		water *= 1.2
	case models.ActivityModerate:
		water *= 1.1
	}
	return Round1(water)
}

// MET returns the metabolic equivalent for an exercise; unknown types get 4.0.
func MET(exercise models.ExerciseType) float64 {
	if canonical, ok := models.ParseExerciseType(string(exercise)); ok {
		return metValues[canonical]
	}
	return DefaultMET
}

// Upper bounds on burn inputs; validated profiles stay within MaxWeightKg too.
const (
	MaxWeightKg        = 700
	MaxDurationMinutes = 24 * 60
)

// CaloriesBurned is met*weight*3.5/200 per minute, rounded half away from
// zero over the whole session.
func CaloriesBurned(exercise models.ExerciseType, durationMinutes, weightKg float64) (int, error) {
	if weightKg <= 0 || weightKg > MaxWeightKg {
		return 0, fmt.Errorf("%w: weight must be in (0, %d] kg, got %v", ErrInvalidInput, MaxWeightKg, weightKg)
	}
	if durationMinutes < 0 || durationMinutes > MaxDurationMinutes {
		return 0, fmt.Errorf("%w: duration must be in [0, %d] minutes, got %v", ErrInvalidInput, MaxDurationMinutes, durationMinutes)
	}
	return int(math.Round(MET(exercise) * weightKg * 3.5 * durationMinutes / 200)), nil
}
