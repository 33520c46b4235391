// Package catalog holds the read-only table of foods and the queries over it.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v2"

	"swasthya/internal/health"
	"swasthya/internal/models"
)

var (
	ErrFoodNotFound  = errors.New("food not found")
	ErrDuplicateFood = errors.New("duplicate food name")
	ErrInvalidRecord = errors.New("invalid food record")
)

// Group labels returned by RecommendForConditions.
const (
	GroupDiabetesFriendly = "Diabetes-Friendly"
	GroupLowSodium        = "Low-Sodium"
	GroupHeartHealthy     = "Heart-Healthy"
	GroupAllFoods         = "All Foods"
)

//go:embed foods.yaml
var builtinYAML []byte

type file struct {
	Foods []models.FoodRecord `yaml:"foods"`
}

// Catalog is safe for concurrent reads; it is never mutated after New.
type Catalog struct {
	foods []models.FoodRecord
	index map[string]int
}

// New builds a catalog preserving the order of records. Names must be
// unique and numeric fields non-negative.
func New(records []models.FoodRecord) (*Catalog, error) {
	c := &Catalog{
		foods: make([]models.FoodRecord, 0, len(records)),
		index: make(map[string]int, len(records)),
	}
	for i, r := range records {
		if err := checkRecord(r); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		if _, dup := c.index[r.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateFood, r.Name)
		}
		c.index[r.Name] = len(c.foods)
		c.foods = append(c.foods, r.Clone())
	}
	return c, nil
}

func checkRecord(r models.FoodRecord) error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidRecord)
	}
	fields := map[string]float64{
		"calories": r.Calories, "protein": r.Protein, "carbs": r.Carbs,
		"fat": r.Fat, "fiber": r.Fiber, "sodium": r.Sodium,
	}
	for field, v := range fields {
		if v < 0 {
			return fmt.Errorf("%w: %q has negative %s (%v)", ErrInvalidRecord, r.Name, field, v)
		}
	}
	return nil
}

// Default returns the built-in Nepalese catalog.
func Default() *Catalog {
	c, err := ParseYAML(builtinYAML)
	if err != nil {
		panic(fmt.Sprintf("builtin catalog: %v", err))
	}
	return c
}

func ParseYAML(data []byte) (*Catalog, error) {
	var f file
	if err := yaml.UnmarshalStrict(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog yaml: %w", err)
	}
	return New(f.Foods)
}

func LoadYAML(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return ParseYAML(data)
}

// FromRows builds a catalog from database rows, keeping their order.
func FromRows(rows []models.FoodRow) (*Catalog, error) {
	records := make([]models.FoodRecord, 0, len(rows))
	for _, row := range rows {
		rec, err := row.ToRecord()
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return New(records)
}

// Rows converts the catalog for storage, numbering positions from 1.
func (c *Catalog) Rows() ([]models.FoodRow, error) {
	rows := make([]models.FoodRow, 0, len(c.foods))
	for i, f := range c.foods {
		row, err := models.FoodRowFromRecord(f, i+1)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// MarshalYAML renders records in the same format ParseYAML reads.
func MarshalYAML(records []models.FoodRecord) ([]byte, error) {
	return yaml.Marshal(file{Foods: records})
}

func (c *Catalog) Len() int { return len(c.foods) }

func (c *Catalog) All() []models.FoodRecord {
	return c.filter(func(models.FoodRecord) bool { return true })
}

func (c *Catalog) Lookup(name string) (models.FoodRecord, bool) {
	i, ok := c.index[name]
	if !ok {
		return models.FoodRecord{}, false
	}
	return c.foods[i].Clone(), true
}

func (c *Catalog) Find(name string) (models.FoodRecord, error) {
	rec, ok := c.Lookup(name)
	if !ok {
		return models.FoodRecord{}, fmt.Errorf("%w: %q", ErrFoodNotFound, name)
	}
	return rec, nil
}

// Categories lists distinct categories in order of first appearance.
func (c *Catalog) Categories() []string {
	seen := map[string]bool{}
	out := []string{}
	for _, f := range c.foods {
		if !seen[f.Category] {
			seen[f.Category] = true
			out = append(out, f.Category)
		}
	}
	return out
}

// ByCategory matches the category exactly, case included.
func (c *Catalog) ByCategory(category string) []models.FoodRecord {
	return c.filter(func(f models.FoodRecord) bool { return f.Category == category })
}

func (c *Catalog) FilterByFlag(flag models.Flag) []models.FoodRecord {
	return c.filter(func(f models.FoodRecord) bool { return f.Has(flag) })
}

// Search is a case-insensitive substring match over name, ingredients and
// category. The empty query matches every record.
func (c *Catalog) Search(query string) []models.FoodRecord {
	q := strings.ToLower(query)
	return c.filter(func(f models.FoodRecord) bool {
		if strings.Contains(strings.ToLower(f.Name), q) || strings.Contains(strings.ToLower(f.Category), q) {
			return true
		}
		for _, ing := range f.Ingredients {
			if strings.Contains(strings.ToLower(ing), q) {
				return true
			}
		}
		return false
	})
}

var conditionGroups = []struct {
	condition models.HealthCondition
	label     string
	flag      models.Flag
}{
	{models.ConditionDiabetes, GroupDiabetesFriendly, models.FlagDiabeticFriendly},
	{models.ConditionHypertension, GroupLowSodium, models.FlagLowSodium},
	{models.ConditionHeartDisease, GroupHeartHealthy, models.FlagHeartHealthy},
}

// RecommendForConditions returns one labeled group per recognized condition,
// or the whole catalog under "All Foods" when none is recognized.
func (c *Catalog) RecommendForConditions(conditions []models.HealthCondition) map[string][]models.FoodRecord {
	groups := map[string][]models.FoodRecord{}
	for _, cond := range conditions {
		canonical, _ := models.ParseHealthCondition(string(cond))
		for _, g := range conditionGroups {
			if g.condition == canonical {
				groups[g.label] = c.FilterByFlag(g.flag)
			}
		}
	}
	if len(groups) == 0 {
		groups[GroupAllFoods] = c.All()
	}
	return groups
}

// Nutrients returns the macros of a named record; unknown names are all zero.
func (c *Catalog) Nutrients(name string) health.NutrientTotals {
	i, ok := c.index[name]
	if !ok {
		return health.NutrientTotals{}
	}
	f := c.foods[i]
	return health.NutrientTotals{Calories: f.Calories, Protein: f.Protein, Carbs: f.Carbs, Fat: f.Fat}
}

func (c *Catalog) filter(keep func(models.FoodRecord) bool) []models.FoodRecord {
	out := []models.FoodRecord{}
	for _, f := range c.foods {
		if keep(f) {
			out = append(out, f.Clone())
		}
	}
	return out
}
