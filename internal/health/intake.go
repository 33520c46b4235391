package health

// NutrientTotals is the energy and macro content of one eaten item.
type NutrientTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

type IntakeAnalysis struct {
	TotalCalories float64 `json:"total_calories" example:"640"`
	TotalProtein  float64 `json:"total_protein" example:"18"`
	TotalCarbs    float64 `json:"total_carbs" example:"100"`
	TotalFat      float64 `json:"total_fat" example:"16"`
	ProteinPct    float64 `json:"protein_percent" example:"11.3"`
	CarbPct       float64 `json:"carb_percent" example:"62.5"`
	FatPct        float64 `json:"fat_percent" example:"22.5"`
}

// AnalyzeIntake sums the items and reports each macro's share of energy.
// Shares are 0 when no calories were eaten.
func AnalyzeIntake(items []NutrientTotals) IntakeAnalysis {
	var a IntakeAnalysis
	for _, it := range items {
		a.TotalCalories += it.Calories
		a.TotalProtein += it.Protein
		a.TotalCarbs += it.Carbs
		a.TotalFat += it.Fat
	}
	if a.TotalCalories > 0 {
		a.ProteinPct = Round1(a.TotalProtein * kcalPerGramProtein / a.TotalCalories * 100)
		a.CarbPct = Round1(a.TotalCarbs * kcalPerGramCarb / a.TotalCalories * 100)
		a.FatPct = Round1(a.TotalFat * kcalPerGramFat / a.TotalCalories * 100)
	}
	return a
}

type MealTimingPlan struct {
	Breakfast      string   `json:"breakfast"`
	MorningSnack   string   `json:"morning_snack"`
	Lunch          string   `json:"lunch"`
	AfternoonSnack string   `json:"afternoon_snack"`
	Dinner         string   `json:"dinner"`
	Tips           []string `json:"tips"`
}

func MealTiming() MealTimingPlan {
	return MealTimingPlan{
		Breakfast:      "7:00-9:00 AM",
		MorningSnack:   "10:00-11:00 AM",
		Lunch:          "12:00-2:00 PM",
		AfternoonSnack: "3:00-4:00 PM",
		Dinner:         "6:00-8:00 PM",
		Tips: []string{
			"Eat breakfast within 2 hours of waking up",
			"Have your largest meal at lunch time",
			"Keep dinner light and early",
			"Maintain 3-4 hour gaps between major meals",
		},
	}
}
