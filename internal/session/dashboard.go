package session

import (
	"swasthya/internal/health"
	"swasthya/internal/models"
)

// NutrientSource resolves a food name to its macros. Unknown names resolve to
// zero.
type NutrientSource interface {
	Nutrients(name string) health.NutrientTotals
}

const recentMealCount = 3

type Summary struct {
	ConsumedCalories  int                   `json:"consumed_calories" example:"640"`
	DailyCalories     int                   `json:"daily_calories" example:"2126"`
	RemainingCalories int                   `json:"remaining_calories" example:"1486"`
	ProgressPercent   float64               `json:"progress_percent" example:"30.1"`
	BurnedCalories    int                   `json:"burned_calories" example:"230"`
	BMI               float64               `json:"bmi" example:"22.1"`
	BMICategory       health.BMIBand        `json:"bmi_category"`
	RecentMeals       []models.IntakeEntry  `json:"recent_meals"`
	Intake            health.IntakeAnalysis `json:"intake"`
	MealCount         int                   `json:"meal_count" example:"2"`
	ExerciseCount     int                   `json:"exercise_count" example:"1"`
}

// Dashboard summarizes the day so far against the profile's targets.
// RemainingCalories goes negative once the target is exceeded; progress is
// capped at 100.
func Dashboard(s models.Session, foods NutrientSource) (Summary, error) {
	p := s.Profile
	bmi, err := health.CalculateBMI(p.Weight, p.Height)
	if err != nil {
		return Summary{}, err
	}
	bmr, err := health.CalculateBMR(p.Weight, p.Height, p.Age, p.Gender)
	if err != nil {
		return Summary{}, err
	}
	daily := health.DailyCalorieTarget(bmr, p.ActivityLevel, p.Goal)
	consumed := s.ConsumedCalories()

	return Summary{
		ConsumedCalories:  consumed,
		DailyCalories:     daily,
		RemainingCalories: daily - consumed,
		ProgressPercent:   progress(consumed, daily),
		BurnedCalories:    s.BurnedCalories(),
		BMI:               health.Round1(bmi),
		BMICategory:       health.BMICategory(bmi),
		RecentMeals:       s.RecentIntake(recentMealCount),
		Intake:            AnalyzeIntake(s, foods),
		MealCount:         len(s.Intake),
		ExerciseCount:     len(s.Exercises),
	}, nil
}

// AnalyzeIntake totals the logged calories and the catalog macros of every
// entry. Entries the catalog does not know add calories but no macros.
func AnalyzeIntake(s models.Session, foods NutrientSource) health.IntakeAnalysis {
	items := make([]health.NutrientTotals, 0, len(s.Intake))
	for _, e := range s.Intake {
		n := foods.Nutrients(e.FoodName)
		n.Calories = float64(e.Calories)
		items = append(items, n)
	}
	return health.AnalyzeIntake(items)
}

func progress(consumed, target int) float64 {
	if target <= 0 {
		if consumed > 0 {
			return 100
		}
		return 0
	}
	pct := float64(consumed) / float64(target) * 100
	if pct > 100 {
		pct = 100
	}
	return health.Round1(pct)
}
