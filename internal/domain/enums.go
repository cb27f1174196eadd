// Package domain holds the canonical enum value sets and orderings shared by
// every layer of mealplan. Values are case-sensitive lowercase strings.
package domain

// Gender is the biological sex label used by the energy equations.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// ActivityLevel buckets daily activity multipliers.
type ActivityLevel string

const (
	ActivityLow    ActivityLevel = "low"
	ActivityMedium ActivityLevel = "medium"
	ActivityHigh   ActivityLevel = "high"
)

// CarbMode selects the carbohydrate planning mode.
type CarbMode string

const (
	CarbLow        CarbMode = "low"
	CarbNormal     CarbMode = "normal"
	CarbPeriodized CarbMode = "periodized"
)

// TrainingLoadTomorrow is the expected next-day workload used for periodization.
type TrainingLoadTomorrow string

const (
	LoadLow    TrainingLoadTomorrow = "low"
	LoadMedium TrainingLoadTomorrow = "medium"
	LoadHigh   TrainingLoadTomorrow = "high"
)

// MealName identifies one of the six meals in output contracts.
type MealName string

const (
	MealBreakfast      MealName = "breakfast"
	MealMorningSnack   MealName = "morning-snack"
	MealLunch          MealName = "lunch"
	MealAfternoonSnack MealName = "afternoon-snack"
	MealDinner         MealName = "dinner"
	MealEveningSnack   MealName = "evening-snack"
)

// Declaration order matters: it drives validation messages.
var (
	genders        = []Gender{GenderMale, GenderFemale}
	activityLevels = []ActivityLevel{ActivityLow, ActivityMedium, ActivityHigh}
	carbModes      = []CarbMode{CarbLow, CarbNormal, CarbPeriodized}
	trainingLoads  = []TrainingLoadTomorrow{LoadLow, LoadMedium, LoadHigh}
	mealNames      = []MealName{
		MealBreakfast, MealMorningSnack, MealLunch,
		MealAfternoonSnack, MealDinner, MealEveningSnack,
	}
)

// Genders returns all valid Gender values in declaration order.
func Genders() []Gender { return append([]Gender(nil), genders...) }

// ActivityLevels returns all valid ActivityLevel values in declaration order.
func ActivityLevels() []ActivityLevel { return append([]ActivityLevel(nil), activityLevels...) }

// CarbModes returns all valid CarbMode values in declaration order.
func CarbModes() []CarbMode { return append([]CarbMode(nil), carbModes...) }

// TrainingLoads returns all valid TrainingLoadTomorrow values in declaration order.
func TrainingLoads() []TrainingLoadTomorrow {
	return append([]TrainingLoadTomorrow(nil), trainingLoads...)
}

// MealNames returns all valid MealName values in declaration order.
func MealNames() []MealName { return append([]MealName(nil), mealNames...) }

func (g Gender) Valid() bool               { return contains(genders, g) }
func (a ActivityLevel) Valid() bool        { return contains(activityLevels, a) }
func (c CarbMode) Valid() bool             { return contains(carbModes, c) }
func (l TrainingLoadTomorrow) Valid() bool { return contains(trainingLoads, l) }
func (m MealName) Valid() bool             { return contains(mealNames, m) }

func contains[T comparable](set []T, v T) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// Strings converts any enum slice to its raw string values.
func Strings[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
