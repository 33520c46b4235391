package models

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"
)

// FoodRecord is one catalog entry. Records are immutable once a catalog is built.
type FoodRecord struct {
	Name             string   `json:"name" yaml:"name" example:"Dal Bhat (1 plate)"`
	Calories         float64  `json:"calories" yaml:"calories" example:"420"`
	Protein          float64  `json:"protein" yaml:"protein" example:"12"`
	Carbs            float64  `json:"carbs" yaml:"carbs" example:"65"`
	Fat              float64  `json:"fat" yaml:"fat" example:"8"`
	Fiber            float64  `json:"fiber" yaml:"fiber" example:"6"`
	Sodium           float64  `json:"sodium" yaml:"sodium" example:"400"`
	Category         string   `json:"category" yaml:"category" example:"Main Course"`
	Ingredients      []string `json:"ingredients" yaml:"ingredients"`
	Preparation      string   `json:"preparation" yaml:"preparation"`
	HealthBenefits   []string `json:"health_benefits" yaml:"health_benefits"`
	DiabeticFriendly bool     `json:"diabetic_friendly" yaml:"diabetic_friendly"`
	HeartHealthy     bool     `json:"heart_healthy" yaml:"heart_healthy"`
	LowSodium        bool     `json:"low_sodium" yaml:"low_sodium"`
}

// Flag names one of the boolean suitability attributes of a FoodRecord.
type Flag string

const (
	FlagDiabeticFriendly Flag = "diabetic_friendly"
	FlagHeartHealthy     Flag = "heart_healthy"
	FlagLowSodium        Flag = "low_sodium"
)

var Flags = []Flag{FlagDiabeticFriendly, FlagHeartHealthy, FlagLowSodium}

func ParseFlag(s string) (Flag, bool) { return parseEnum(s, Flags) }

// Has reports whether the record carries the flag. Unknown flags are never set.
func (f FoodRecord) Has(flag Flag) bool {
	switch flag {
	case FlagDiabeticFriendly:
		return f.DiabeticFriendly
	case FlagHeartHealthy:
		return f.HeartHealthy
	case FlagLowSodium:
		return f.LowSodium
	default:
		return false
	}
}

func (f FoodRecord) Clone() FoodRecord {
	f.Ingredients = append([]string(nil), f.Ingredients...)
	f.HealthBenefits = append([]string(nil), f.HealthBenefits...)
	return f
}

// FoodRow is the database representation of a FoodRecord.
type FoodRow struct {
	ID               uint           `gorm:"primaryKey" json:"id"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	Position         int            `gorm:"index" json:"position"`
	Name             string         `gorm:"uniqueIndex;size:160;not null" json:"name"`
	Calories         float64        `json:"calories"`
	Protein          float64        `json:"protein"`
	Carbs            float64        `json:"carbs"`
	Fat              float64        `json:"fat"`
	Fiber            float64        `json:"fiber"`
	Sodium           float64        `json:"sodium"`
	Category         string         `gorm:"index;size:64" json:"category"`
	Ingredients      datatypes.JSON `gorm:"type:jsonb" json:"ingredients"`
	Preparation      string         `json:"preparation"`
	HealthBenefits   datatypes.JSON `gorm:"type:jsonb" json:"health_benefits"`
	DiabeticFriendly bool           `json:"diabetic_friendly"`
	HeartHealthy     bool           `json:"heart_healthy"`
	LowSodium        bool           `json:"low_sodium"`
}

func (FoodRow) TableName() string { return "foods" }

func FoodRowFromRecord(r FoodRecord, position int) (FoodRow, error) {
	ingredients, err := json.Marshal(nonNil(r.Ingredients))
	if err != nil {
		return FoodRow{}, fmt.Errorf("encode ingredients of %q: %w", r.Name, err)
	}
	benefits, err := json.Marshal(nonNil(r.HealthBenefits))
	if err != nil {
		return FoodRow{}, fmt.Errorf("encode health benefits of %q: %w", r.Name, err)
	}
	return FoodRow{
		Position:         position,
		Name:             r.Name,
		Calories:         r.Calories,
		Protein:          r.Protein,
		Carbs:            r.Carbs,
		Fat:              r.Fat,
		Fiber:            r.Fiber,
		Sodium:           r.Sodium,
		Category:         r.Category,
		Ingredients:      datatypes.JSON(ingredients),
		Preparation:      r.Preparation,
		HealthBenefits:   datatypes.JSON(benefits),
		DiabeticFriendly: r.DiabeticFriendly,
		HeartHealthy:     r.HeartHealthy,
		LowSodium:        r.LowSodium,
	}, nil
}

func (row FoodRow) ToRecord() (FoodRecord, error) {
	rec := FoodRecord{
		Name:             row.Name,
		Calories:         row.Calories,
		Protein:          row.Protein,
		Carbs:            row.Carbs,
		Fat:              row.Fat,
		Fiber:            row.Fiber,
		Sodium:           row.Sodium,
		Category:         row.Category,
		Preparation:      row.Preparation,
		DiabeticFriendly: row.DiabeticFriendly,
		HeartHealthy:     row.HeartHealthy,
		LowSodium:        row.LowSodium,
	}
	if len(row.Ingredients) > 0 {
		if err := json.Unmarshal(row.Ingredients, &rec.Ingredients); err != nil {
			return FoodRecord{}, fmt.Errorf("decode ingredients of %q: %w", row.Name, err)
		}
	}
	if len(row.HealthBenefits) > 0 {
		if err := json.Unmarshal(row.HealthBenefits, &rec.HealthBenefits); err != nil {
			return FoodRecord{}, fmt.Errorf("decode health benefits of %q: %w", row.Name, err)
		}
	}
	return rec, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
