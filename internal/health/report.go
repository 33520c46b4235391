package health

import "swasthya/internal/models"

// Report bundles every metric derived from a profile.
type Report struct {
	BMI             float64  `json:"bmi" example:"22.1"`
	BMICategory     BMIBand  `json:"bmi_category"`
	BMR             int      `json:"bmr" example:"1372"`
	DailyCalories   int      `json:"daily_calories" example:"2126"`
	Macros          Macros   `json:"macros"`
	WaterLiters     float64  `json:"water_liters" example:"2.2"`
	Recommendations []string `json:"recommendations"`
}

// Evaluate validates the profile and computes its full report.
// BMI is rounded to one decimal for display; the category uses the exact value.
func Evaluate(p models.UserProfile) (Report, error) {
	if err := ValidateProfile(p); err != nil {
		return Report{}, err
	}
	bmi, err := CalculateBMI(p.Weight, p.Height)
	if err != nil {
		return Report{}, err
	}
	bmr, err := CalculateBMR(p.Weight, p.Height, p.Age, p.Gender)
	if err != nil {
		return Report{}, err
	}
	recs, err := Recommendations(p)
	if err != nil {
		return Report{}, err
	}
	daily := DailyCalorieTarget(bmr, p.ActivityLevel, p.Goal)
	return Report{
		BMI:             Round1(bmi),
		BMICategory:     BMICategory(bmi),
		BMR:             bmr,
		DailyCalories:   daily,
		Macros:          MacronutrientTargets(daily, p.Goal),
		WaterLiters:     WaterNeedsLiters(p.Weight, p.ActivityLevel),
		Recommendations: recs,
	}, nil
}
