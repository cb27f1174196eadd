package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumValuesAreExact(t *testing.T) {
	assert.Equal(t, []string{"male", "female"}, Strings(Genders()))
	assert.Equal(t, []string{"low", "medium", "high"}, Strings(ActivityLevels()))
	assert.Equal(t, []string{"low", "normal", "periodized"}, Strings(CarbModes()))
	assert.Equal(t, []string{"low", "medium", "high"}, Strings(TrainingLoads()))
	assert.Equal(t, []string{
		"breakfast", "morning-snack", "lunch",
		"afternoon-snack", "dinner", "evening-snack",
	}, Strings(MealNames()))
}

func TestEnumValid(t *testing.T) {
	assert.True(t, Gender("female").Valid())
	assert.False(t, Gender("Female").Valid(), "values are case-sensitive")
	assert.False(t, Gender("unknown").Valid())
	assert.True(t, CarbMode("periodized").Valid())
	assert.False(t, CarbMode("high").Valid())
	assert.True(t, TrainingLoadTomorrow("medium").Valid())
	assert.True(t, MealName("morning-snack").Valid())
	assert.False(t, MealName("morning_snack").Valid())
	assert.False(t, ActivityLevel("").Valid())
}

func TestValueListsAreCopies(t *testing.T) {
	g := Genders()
	g[0] = "other"
	assert.Equal(t, GenderMale, Genders()[0])
}

func TestCanonicalMealOrder(t *testing.T) {
	order := CanonicalMealOrder()
	require.Len(t, order, 6)
	assert.Equal(t, MealNames(), order)
	assert.True(t, IsCanonicalOrder(order))

	order[0] = MealDinner
	assert.Equal(t, MealBreakfast, CanonicalMealOrder()[0], "callers must not mutate the canonical order")
}

func TestIsCanonicalOrderRejectsVariants(t *testing.T) {
	tests := []struct {
		name  string
		meals []MealName
	}{
		{"empty", nil},
		{"omitted", []MealName{MealBreakfast, MealMorningSnack, MealLunch, MealAfternoonSnack, MealDinner}},
		{"swapped", []MealName{MealMorningSnack, MealBreakfast, MealLunch, MealAfternoonSnack, MealDinner, MealEveningSnack}},
		{"duplicated", []MealName{MealBreakfast, MealBreakfast, MealLunch, MealAfternoonSnack, MealDinner, MealEveningSnack}},
		{"extra", append(CanonicalMealOrder(), MealDinner)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, IsCanonicalOrder(tt.meals))
		})
	}
}
