package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swasthya/internal/models"
)

func foodNames(records []models.FoodRecord) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.Name)
	}
	return out
}

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	assert.Equal(t, 21, c.Len())
	dal, ok := c.Lookup("Dal Bhat (1 plate)")
	require.True(t, ok)
	assert.Equal(t, 420.0, dal.Calories)
	assert.Equal(t, []string{"Rice", "Lentils", "Vegetables", "Ghee"}, dal.Ingredients)
	assert.True(t, dal.HeartHealthy)
	assert.False(t, dal.DiabeticFriendly)

	last := c.All()[c.Len()-1]
	assert.Equal(t, "Cucumber Raita (1 bowl)", last.Name)
	assert.Equal(t, 45.0, last.Sodium)
}

func TestCategories(t *testing.T) {
	assert.Equal(t, []string{
		"Main Course", "Snack", "Soup", "Traditional", "Curry", "Dessert", "Meat", "Dairy", "Side Dish",
	}, Default().Categories())
}

func TestByCategory(t *testing.T) {
	c := Default()

	assert.Equal(t, []string{
		"Dal Bhat (1 plate)",
		"Brown Rice Dal Bhat (1 plate)",
		"Dhido (1 bowl)",
		"Oats Dhido (1 bowl)",
		"Steamed Dal Bhat (1 plate)",
	}, foodNames(c.ByCategory("Main Course")))
	assert.Empty(t, c.ByCategory("main course"), "category match is case-sensitive")
	assert.NotNil(t, c.ByCategory("Pizza"))
	assert.Empty(t, c.ByCategory("Pizza"))
}

func TestFilterByFlag(t *testing.T) {
	c := Default()

	assert.Len(t, c.FilterByFlag(models.FlagDiabeticFriendly), 15)
	assert.Len(t, c.FilterByFlag(models.FlagHeartHealthy), 15)
	low := c.FilterByFlag(models.FlagLowSodium)
	assert.Len(t, low, 11)
	assert.Equal(t, "Gundruk Soup (1 bowl)", low[0].Name)
	for _, r := range low {
		assert.True(t, r.LowSodium)
	}
	assert.Empty(t, c.FilterByFlag(models.Flag("spicy")))
}

func TestSearch(t *testing.T) {
	c := Default()

	tests := []struct {
		query    string
		expected []string
	}{
		{"momo", []string{"Chicken Momo (6 pieces)", "Vegetable Momo (6 pieces)", "Cauliflower Momo (6 pieces)"}},
		{"MOMO", []string{"Chicken Momo (6 pieces)", "Vegetable Momo (6 pieces)", "Cauliflower Momo (6 pieces)"}},
		{"ghee", []string{"Dal Bhat (1 plate)", "Oats Dhido (1 bowl)", "Sel Roti (2 pieces)", "Lapsi (1 bowl)"}},
		{"Soup", []string{"Gundruk Soup (1 bowl)", "Thukpa (1 bowl)"}},
		{"pizza", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.expected, foodNames(c.Search(tt.query)))
		})
	}
}

func TestSearchEmptyMatchesAll(t *testing.T) {
	c := Default()
	assert.Equal(t, foodNames(c.All()), foodNames(c.Search("")))
}

func TestRecommendForConditions(t *testing.T) {
	c := Default()

	diabetes := c.RecommendForConditions([]models.HealthCondition{models.ConditionDiabetes})
	require.Len(t, diabetes, 1)
	assert.Equal(t, c.FilterByFlag(models.FlagDiabeticFriendly), diabetes[GroupDiabetesFriendly])

	multi := c.RecommendForConditions([]models.HealthCondition{"Hypertension", "HeartDisease", "Kidney Disease"})
	assert.Len(t, multi, 2)
	assert.Contains(t, multi, GroupLowSodium)
	assert.Contains(t, multi, GroupHeartHealthy)

	none := c.RecommendForConditions(nil)
	require.Len(t, none, 1)
	assert.Len(t, none[GroupAllFoods], 21)

	unrecognized := c.RecommendForConditions([]models.HealthCondition{models.ConditionNone, models.ConditionHighCholesterol})
	assert.Len(t, unrecognized[GroupAllFoods], 21)
}

func TestNutrientsUnknownIsZero(t *testing.T) {
	c := Default()

	n := c.Nutrients("Sel Roti (2 pieces)")
	assert.Equal(t, 180.0, n.Calories)
	assert.Equal(t, 28.0, n.Carbs)
	assert.Zero(t, c.Nutrients("Pizza"))
}

func TestFind(t *testing.T) {
	_, err := Default().Find("Pizza")
	assert.ErrorIs(t, err, ErrFoodNotFound)
}

func TestNewRejectsBadRecords(t *testing.T) {
	_, err := New([]models.FoodRecord{{Name: "A"}, {Name: "A"}})
	assert.ErrorIs(t, err, ErrDuplicateFood)

	_, err = New([]models.FoodRecord{{Name: "A", Fat: -1}})
	assert.ErrorIs(t, err, ErrInvalidRecord)

	_, err = New([]models.FoodRecord{{Name: " "}})
	assert.ErrorIs(t, err, ErrInvalidRecord)
}

func TestResultsDoNotAliasCatalog(t *testing.T) {
	c := Default()
	got := c.Search("Dal Bhat")
	got[0].Ingredients[0] = "Quinoa"

	again, _ := c.Lookup("Dal Bhat (1 plate)")
	assert.Equal(t, "Rice", again.Ingredients[0])
}

func TestLoadYAMLRoundTrip(t *testing.T) {
	records := []models.FoodRecord{
		{Name: "Yomari", Calories: 150, Category: "Dessert", Ingredients: []string{"Rice Flour", "Chaku"}},
		{Name: "Bara", Calories: 200, Category: "Snack", Ingredients: []string{"Black Lentils"}, LowSodium: true},
	}
	data, err := MarshalYAML(records)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "foods.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	c, err := LoadYAML(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Yomari", "Bara"}, foodNames(c.All()))
	assert.Equal(t, []string{"Bara"}, foodNames(c.FilterByFlag(models.FlagLowSodium)))
}

func TestParseYAMLRejectsUnknownFields(t *testing.T) {
	_, err := ParseYAML([]byte("foods:\n  - name: Bara\n    spiciness: 3\n"))
	assert.Error(t, err)

	_, err = LoadYAML(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestRowsRoundTrip(t *testing.T) {
	c := Default()
	rows, err := c.Rows()
	require.NoError(t, err)
	require.Len(t, rows, 21)
	assert.Equal(t, 1, rows[0].Position)
	assert.Equal(t, "Dal Bhat (1 plate)", rows[0].Name)

	back, err := FromRows(rows)
	require.NoError(t, err)
	assert.Equal(t, foodNames(c.All()), foodNames(back.All()))
	assert.Equal(t, c.FilterByFlag(models.FlagLowSodium), back.FilterByFlag(models.FlagLowSodium))
}
