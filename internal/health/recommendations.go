package health

import "swasthya/internal/models"

var conditionAdvice = map[models.HealthCondition][]string{
	models.ConditionDiabetes: {
		"Choose brown rice over white rice in Dal Bhat",
		"Monitor portion sizes and eat regular meals",
		"Include high-fiber vegetables in every meal",
	},
	models.ConditionHypertension: {
		"Reduce salt in cooking and avoid pickled foods",
		"Include potassium-rich foods like bananas",
		"Limit processed and canned foods",
	},
	models.ConditionHeartDisease: {
		"Choose lean proteins and limit red meat",
		"Include omega-3 rich foods like fish",
		"Use minimal ghee and oil in cooking",
	},
}

var mealImprovements = map[models.HealthCondition][]string{
	models.ConditionDiabetes: {
		"Add more fiber-rich vegetables",
		"Choose whole grains over refined grains",
		"Include lean protein to slow carb absorption",
	},
	models.ConditionHypertension: {
		"Reduce salt and use herbs for flavor",
		"Add potassium-rich foods like tomatoes",
		"Include garlic for natural blood pressure support",
	},
	models.ConditionHeartDisease: {
		"Use minimal oil and choose healthy fats",
		"Include antioxidant-rich colorful vegetables",
		"Add omega-3 sources like walnuts or fish",
	},
}

const sedentaryAdvice = "Try to include at least 30 minutes of walking daily"

// Recommendations starts with the BMI band advice, then adds per-condition
// advice in the order the conditions are listed, then activity advice.
func Recommendations(p models.UserProfile) ([]string, error) {
	bmi, err := CalculateBMI(p.Weight, p.Height)
	if err != nil {
		return nil, err
	}
	recs := []string{BMICategory(bmi).Recommendation}
	recs = append(recs, perCondition(conditionAdvice, p.HealthConditions)...)
	if level, _ := models.ParseActivityLevel(string(p.ActivityLevel)); level == models.ActivitySedentary {
		recs = append(recs, sedentaryAdvice)
	}
	return recs, nil
}

// MealImprovements suggests changes to a meal for the given conditions.
// Conditions without advice contribute nothing.
func MealImprovements(conditions []models.HealthCondition) []string {
	return perCondition(mealImprovements, conditions)
}

func perCondition(table map[models.HealthCondition][]string, conditions []models.HealthCondition) []string {
	out := []string{}
	for _, c := range conditions {
		canonical, _ := models.ParseHealthCondition(string(c))
		out = append(out, table[canonical]...)
	}
	return out
}
