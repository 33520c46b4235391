package plans

import (
	"fmt"
	"time"
)

type PlannedMeal struct {
	Meal     string `json:"meal" example:"Breakfast"`
	Name     string `json:"name" example:"Dal Bhat with Fried Egg"`
	Calories int    `json:"calories" example:"480"`
	Time     string `json:"time" example:"8:00 AM"`
}

type DayPlan struct {
	Day           string        `json:"day" example:"Monday"`
	Meals         []PlannedMeal `json:"meals"`
	TotalCalories int           `json:"total_calories" example:"1450"`
}

// Only Monday and Tuesday are authored; every other day reuses Monday.
var mealPlans = map[time.Weekday][]PlannedMeal{
	time.Monday: {
		{"Breakfast", "Dal Bhat with Fried Egg", 480, "8:00 AM"},
		{"Lunch", "Chicken Momo with Chutney", 420, "1:00 PM"},
		{"Snack", "Sel Roti with Tea", 200, "4:00 PM"},
		{"Dinner", "Gundruk Soup with Rice", 350, "7:30 PM"},
	},
	time.Tuesday: {
		{"Breakfast", "Dhido with Honey", 280, "8:00 AM"},
		{"Lunch", "Samay Baji Set", 480, "1:00 PM"},
		{"Snack", "Lapsi with Nuts", 220, "4:00 PM"},
		{"Dinner", "Aloo Tama Curry", 320, "7:30 PM"},
	},
}

var weekdays = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday, time.Sunday,
}

func ParseWeekday(day string) (time.Weekday, error) {
	for _, d := range weekdays {
		if sameKey(day, d.String()) || sameKey(day, d.String()[:3]) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown day %q", ErrPlanNotFound, day)
}

func MealPlanFor(day time.Weekday) DayPlan {
	meals, ok := mealPlans[day]
	if !ok {
		meals = mealPlans[time.Monday]
	}
	plan := DayPlan{Day: day.String(), Meals: append([]PlannedMeal(nil), meals...)}
	for _, m := range meals {
		plan.TotalCalories += m.Calories
	}
	return plan
}

// Meal returns one meal of a day's plan, matched case-insensitively.
func Meal(day time.Weekday, meal string) (PlannedMeal, error) {
	for _, m := range MealPlanFor(day).Meals {
		if sameKey(m.Meal, meal) {
			return m, nil
		}
	}
	return PlannedMeal{}, fmt.Errorf("%w: no %q on %s", ErrPlanNotFound, meal, day)
}
