package detection

import (
	"context"
	"image"
	"strings"

	"swasthya/internal/health"
	"swasthya/internal/models"
)

type Nutrition struct {
	TotalCalories int     `json:"total_calories" example:"750"`
	Protein       float64 `json:"protein" example:"25.2"`
	Carbohydrates float64 `json:"carbohydrates" example:"90.4"`
	Fat           float64 `json:"fat" example:"8.6"`
}

// energyRatio is the share of a dish's calories from protein, carbs and fat.
type energyRatio struct {
	match              string
	protein, carb, fat float64
}

var energyRatios = []energyRatio{
	{"Dal Bhat", 0.12, 0.65, 0.08},
	{"Momo", 0.18, 0.28, 0.16},
	{"Gundruk", 0.20, 0.50, 0.13},
}

var defaultRatio = energyRatio{"", 0.10, 0.60, 0.10}

func ratioFor(name string) energyRatio {
	for _, r := range energyRatios {
		if strings.Contains(name, r.match) {
			return r
		}
	}
	return defaultRatio
}

// AnalyzeNutrition converts each dish's calories to macro grams using its
// energy ratio, then rounds the totals to one decimal.
func AnalyzeNutrition(foods []DetectedFood) Nutrition {
	var n Nutrition
	var protein, carbs, fat float64
	for _, f := range foods {
		r := ratioFor(f.Name)
		kcal := float64(f.Calories)
		n.TotalCalories += f.Calories
		protein += kcal * r.protein / 4
		carbs += kcal * r.carb / 4
		fat += kcal * r.fat / 9
	}
	n.Protein = health.Round1(protein)
	n.Carbohydrates = health.Round1(carbs)
	n.Fat = health.Round1(fat)
	return n
}

const balancedAdvice = "Your food choices look balanced! Maintain portion control."

// Recommendations gives scan-specific advice for the user's conditions.
func Recommendations(foods []DetectedFood, conditions []models.HealthCondition) []string {
	recs := []string{}
	for _, c := range conditions {
		canonical, _ := models.ParseHealthCondition(string(c))
		switch canonical {
		case models.ConditionDiabetes:
			for _, f := range foods {
				switch {
				case strings.Contains(f.Name, "Dal Bhat"):
					recs = append(recs, "Consider brown rice instead of white rice for better blood sugar control")
				case strings.Contains(f.Name, "Sel Roti"):
					recs = append(recs, "Limit sweet items like Sel Roti due to high sugar content")
				}
			}
		case models.ConditionHypertension:
			recs = append(recs,
				"Be mindful of salt content in traditional preparations",
				"Consider steamed momos instead of fried versions")
		case models.ConditionHeartDisease:
			recs = append(recs,
				"Choose lean protein options and limit ghee usage",
				"Include more vegetables in your Dal Bhat")
		}
	}
	if len(recs) == 0 {
		recs = append(recs, balancedAdvice)
	}
	return recs
}

type ScanResult struct {
	DetectedFoods   []DetectedFood `json:"detected_foods"`
	Nutrition       Nutrition      `json:"nutrition"`
	Recommendations []string       `json:"recommendations"`
}

// Analyze runs the full scan pipeline on an already decoded image.
func Analyze(ctx context.Context, detector FoodDetector, img image.Image, conditions []models.HealthCondition) (ScanResult, error) {
	foods, err := detector.Detect(ctx, Preprocess(img))
	if err != nil {
		return ScanResult{}, err
	}
	return ScanResult{
		DetectedFoods:   foods,
		Nutrition:       AnalyzeNutrition(foods),
		Recommendations: Recommendations(foods, conditions),
	}, nil
}
