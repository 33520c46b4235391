// Package plans serves the fixed advisory content: weekly meal plans,
// exercise routines, condition diets, shopping list and tips.
package plans

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"swasthya/internal/models"
)

var ErrPlanNotFound = errors.New("plan not found")

// ConditionDiet is the recommended/avoid/tips sheet for one health condition.
type ConditionDiet struct {
	Condition   models.HealthCondition `json:"condition" example:"Diabetes"`
	Recommended []string               `json:"recommended"`
	Avoid       []string               `json:"avoid"`
	Tips        []string               `json:"tips"`
}

var conditionDiets = []ConditionDiet{
	{
		Condition:   models.ConditionDiabetes,
		Recommended: []string{"Brown Rice Dal Bhat", "Cauliflower Momo", "Methi Leaves Curry", "Bitter Gourd Curry"},
		Avoid:       []string{"White rice in large quantities", "Sugary desserts", "Deep-fried foods"},
		Tips:        []string{"Monitor portion sizes", "Include complex carbohydrates", "Eat regular smaller meals"},
	},
	{
		Condition:   models.ConditionHypertension,
		Recommended: []string{"Steamed Dal Bhat", "Baked Fish with Herbs", "Low Salt Spinach Curry", "Cucumber Raita"},
		Avoid:       []string{"Pickles and fermented foods", "Processed meats", "Salted snacks"},
		Tips:        []string{"Limit salt to 2g/day", "Include potassium-rich foods", "Use herbs instead of salt"},
	},
	{
		Condition:   models.ConditionHeartDisease,
		Recommended: []string{"Oats Dhido", "Walnut Curry", "Green Vegetable Soup", "Flaxseed Roti"},
		Avoid:       []string{"Deep-fried foods", "Red meat", "Full-fat dairy", "Trans fats"},
		Tips:        []string{"Include omega-3 rich foods", "Choose whole grains", "Limit saturated fats"},
	},
}

// ConditionPlan returns the diet sheet for a condition. Kidney Disease and
// High Cholesterol have no sheet yet.
func ConditionPlan(condition models.HealthCondition) (ConditionDiet, error) {
	canonical, _ := models.ParseHealthCondition(string(condition))
	for _, d := range conditionDiets {
		if d.Condition == canonical {
			return cloneDiet(d), nil
		}
	}
	return ConditionDiet{}, fmt.Errorf("%w: no diet for condition %q", ErrPlanNotFound, condition)
}

func ConditionPlans() []ConditionDiet {
	out := make([]ConditionDiet, 0, len(conditionDiets))
	for _, d := range conditionDiets {
		out = append(out, cloneDiet(d))
	}
	return out
}

func cloneDiet(d ConditionDiet) ConditionDiet {
	d.Recommended = append([]string(nil), d.Recommended...)
	d.Avoid = append([]string(nil), d.Avoid...)
	d.Tips = append([]string(nil), d.Tips...)
	return d
}

type ShoppingCategory struct {
	Category string   `json:"category" example:"Vegetables"`
	Items    []string `json:"items"`
}

func ShoppingList() []ShoppingCategory {
	return []ShoppingCategory{
		{"Grains & Cereals", []string{"Basmati Rice - 2kg", "Lentils (Dal) - 1kg", "Wheat Flour - 500g"}},
		{"Vegetables", []string{"Onions - 1kg", "Tomatoes - 500g", "Gundruk - 200g", "Potatoes - 1kg"}},
		{"Proteins", []string{"Chicken - 1kg", "Eggs - 1 dozen", "Paneer - 250g"}},
		{"Spices & Others", []string{"Turmeric", "Cumin", "Ghee", "Honey"}},
	}
}

func ExerciseTips() []string {
	return []string{
		"Stay hydrated - drink water before, during, and after exercise",
		"Always warm up for 5 minutes before starting",
		"Listen to your body and rest when needed",
		"Gradually increase intensity over time",
		"Play your favorite Nepali music for motivation!",
	}
}

func ScanTips() []string {
	return []string{
		"Ensure good lighting when taking photos",
		"Place food on a plain background",
		"Include the entire dish in the frame",
		"Take photos from directly above for best results",
	}
}

// leadingNumber parses the digits of a label such as "20 min" or "10 reps".
func leadingNumber(label string) int {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, label)
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return n
}

func sameKey(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
