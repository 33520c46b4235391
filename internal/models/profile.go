package models

import "strings"

type Gender string

const (
	GenderFemale Gender = "Female"
	GenderMale   Gender = "Male"
	GenderOther  Gender = "Other"
)

var Genders = []Gender{GenderFemale, GenderMale, GenderOther}

type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "Sedentary"
	ActivityLight      ActivityLevel = "Light"
	ActivityModerate   ActivityLevel = "Moderate"
	ActivityActive     ActivityLevel = "Active"
	ActivityVeryActive ActivityLevel = "Very Active"
)

var ActivityLevels = []ActivityLevel{
	ActivitySedentary, ActivityLight, ActivityModerate, ActivityActive, ActivityVeryActive,
}

type Goal string

const (
	GoalLoseWeight     Goal = "Lose Weight"
	GoalMaintainWeight Goal = "Maintain Weight"
	GoalGainWeight     Goal = "Gain Weight"
)

var Goals = []Goal{GoalLoseWeight, GoalMaintainWeight, GoalGainWeight}

type HealthCondition string

const (
	ConditionNone            HealthCondition = "None"
	ConditionDiabetes        HealthCondition = "Diabetes"
	ConditionHypertension    HealthCondition = "Hypertension"
	ConditionHeartDisease    HealthCondition = "Heart Disease"
	ConditionKidneyDisease   HealthCondition = "Kidney Disease"
	ConditionHighCholesterol HealthCondition = "High Cholesterol"
)

var HealthConditions = []HealthCondition{
	ConditionNone, ConditionDiabetes, ConditionHypertension,
	ConditionHeartDisease, ConditionKidneyDisease, ConditionHighCholesterol,
}

// normalizeEnum folds case and drops separators so "VeryActive",
// "very_active" and "Very Active" compare equal.
func normalizeEnum(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		if r == ' ' || r == '_' || r == '-' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func parseEnum[T ~string](s string, values []T) (T, bool) {
	key := normalizeEnum(s)
	for _, v := range values {
		if normalizeEnum(string(v)) == key {
			return v, true
		}
	}
	return T(s), false
}

func ParseGender(s string) (Gender, bool)               { return parseEnum(s, Genders) }
func ParseActivityLevel(s string) (ActivityLevel, bool) { return parseEnum(s, ActivityLevels) }
func ParseGoal(s string) (Goal, bool)                   { return parseEnum(s, Goals) }
func ParseHealthCondition(s string) (HealthCondition, bool) {
	return parseEnum(s, HealthConditions)
}

func (g Gender) Valid() bool        { return isCanonical(string(g), Genders) }
func (a ActivityLevel) Valid() bool { return isCanonical(string(a), ActivityLevels) }
func (g Goal) Valid() bool          { return isCanonical(string(g), Goals) }
func (c HealthCondition) Valid() bool {
	return isCanonical(string(c), HealthConditions)
}

func isCanonical[T ~string](s string, values []T) bool {
	for _, v := range values {
		if string(v) == s {
			return true
		}
	}
	return false
}

type UserProfile struct {
	Name             string            `json:"name" example:"Priya Sharma"`
	Age              int               `json:"age" validate:"gt=0,lte=150" example:"28"`
	Weight           float64           `json:"weight" validate:"gt=0,lte=700" example:"58"`
	Height           float64           `json:"height" validate:"gt=0,lte=300" example:"162"`
	Gender           Gender            `json:"gender" validate:"gender" example:"Female"`
	ActivityLevel    ActivityLevel     `json:"activity_level" validate:"activity" example:"Moderate"`
	Goal             Goal              `json:"goal" validate:"goal" example:"Maintain Weight"`
	HealthConditions []HealthCondition `json:"health_conditions" validate:"dive,condition" example:"None"`
}

// DefaultProfile is the profile every new session starts with.
func DefaultProfile() UserProfile {
	return UserProfile{
		Name:             "Priya Sharma",
		Age:              28,
		Weight:           58,
		Height:           162,
		Gender:           GenderFemale,
		ActivityLevel:    ActivityModerate,
		Goal:             GoalMaintainWeight,
		HealthConditions: []HealthCondition{ConditionNone},
	}
}

// Normalize rewrites recognized enum spellings to their canonical form.
// Unrecognized values are left untouched for validation to reject.
func (p UserProfile) Normalize() UserProfile {
	if g, ok := ParseGender(string(p.Gender)); ok {
		p.Gender = g
	}
	if a, ok := ParseActivityLevel(string(p.ActivityLevel)); ok {
		p.ActivityLevel = a
	}
	if g, ok := ParseGoal(string(p.Goal)); ok {
		p.Goal = g
	}
	conditions := make([]HealthCondition, 0, len(p.HealthConditions))
	for _, c := range p.HealthConditions {
		if parsed, ok := ParseHealthCondition(string(c)); ok {
			c = parsed
		}
		conditions = append(conditions, c)
	}
	p.HealthConditions = conditions
	return p
}

func (p UserProfile) Clone() UserProfile {
	p.HealthConditions = append([]HealthCondition(nil), p.HealthConditions...)
	return p
}

func (p UserProfile) HasCondition(c HealthCondition) bool {
	for _, have := range p.HealthConditions {
		if have == c {
			return true
		}
	}
	return false
}
