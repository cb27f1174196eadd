// Package contracts defines the boundary models exchanged between the CLI
// and the application layer, and the parser that builds them from untyped
// payloads. Every model is closed-world: undeclared fields are rejected at
// every nesting level and numbers are never coerced from strings.
package contracts

import (
	"sort"

	"mealplan/internal/domain"
	"mealplan/internal/schema"
)

// SimulatedErrorKind names an error path the probe command can exercise.
type SimulatedErrorKind string

const (
	SimulateValidation SimulatedErrorKind = "validation"
	SimulateDomain     SimulatedErrorKind = "domain"
	SimulateConfig     SimulatedErrorKind = "config"
	SimulateOutput     SimulatedErrorKind = "output"
	SimulateRuntime    SimulatedErrorKind = "runtime"
)

// SimulatedErrorKinds returns the accepted kinds in display order.
func SimulatedErrorKinds() []SimulatedErrorKind {
	return []SimulatedErrorKind{SimulateValidation, SimulateDomain, SimulateConfig, SimulateOutput, SimulateRuntime}
}

// ZoneKey is a training-intensity zone, "1" through "5".
type ZoneKey string

// ZoneKeys returns the accepted zone keys in order.
func ZoneKeys() []ZoneKey {
	return []ZoneKey{"1", "2", "3", "4", "5"}
}

var unitsPolicy = map[string]string{
	"age":              "years",
	"weight_kg":        "kg",
	"zones_minutes":    "minutes",
	"TDEE":             "kcal/day (legacy field name retained for compatibility)",
	"training_carbs_g": "g",
	"protein_g":        "g",
	"carbs_g":          "g",
	"fat_g":            "g",
}

// UnitsPolicy returns the unit of every numeric contract field.
func UnitsPolicy() map[string]string {
	out := make(map[string]string, len(unitsPolicy))
	for k, v := range unitsPolicy {
		out[k] = v
	}
	return out
}

// UnitFields returns the fields covered by UnitsPolicy, sorted.
func UnitFields() []string {
	fields := make([]string, 0, len(unitsPolicy))
	for k := range unitsPolicy {
		fields = append(fields, k)
	}
	sort.Strings(fields)
	return fields
}

// TrainingSession describes the training done on the planned day.
type TrainingSession struct {
	ZonesMinutes       map[ZoneKey]int  `json:"zones_minutes" yaml:"zones_minutes"`
	TrainingBeforeMeal *domain.MealName `json:"training_before_meal" yaml:"training_before_meal"`
}

// MealPlanRequest is the input to meal planning.
type MealPlanRequest struct {
	Age                  int                         `json:"age" yaml:"age"`
	Gender               domain.Gender               `json:"gender" yaml:"gender"`
	WeightKg             float64                     `json:"weight_kg" yaml:"weight_kg"`
	ActivityLevel        domain.ActivityLevel        `json:"activity_level" yaml:"activity_level"`
	CarbMode             domain.CarbMode             `json:"carb_mode" yaml:"carb_mode"`
	TrainingLoadTomorrow domain.TrainingLoadTomorrow `json:"training_load_tomorrow" yaml:"training_load_tomorrow"`
	TrainingSession      *TrainingSession            `json:"training_session" yaml:"training_session"`
}

// MealAllocation is the macro split for one meal, in grams.
type MealAllocation struct {
	Meal     domain.MealName `json:"meal" yaml:"meal"`
	CarbsG   float64         `json:"carbs_g" yaml:"carbs_g"`
	ProteinG float64         `json:"protein_g" yaml:"protein_g"`
	FatG     float64         `json:"fat_g" yaml:"fat_g"`
}

// MealPlanResponse is the planning output. TDEE keeps its legacy upper-case
// field name on the wire.
type MealPlanResponse struct {
	TDEE           float64          `json:"TDEE" yaml:"TDEE"`
	TrainingCarbsG float64          `json:"training_carbs_g" yaml:"training_carbs_g"`
	ProteinG       float64          `json:"protein_g" yaml:"protein_g"`
	CarbsG         float64          `json:"carbs_g" yaml:"carbs_g"`
	FatG           float64          `json:"fat_g" yaml:"fat_g"`
	Meals          []MealAllocation `json:"meals" yaml:"meals"`
}

// PlaceholderResponse is the zeroed response shape used until the
// calculation pathway exists.
func PlaceholderResponse() MealPlanResponse {
	order := domain.CanonicalMealOrder()
	meals := make([]MealAllocation, len(order))
	for i, m := range order {
		meals[i] = MealAllocation{Meal: m}
	}
	return MealPlanResponse{Meals: meals}
}

// MealSequence returns the meal identifiers in response order.
func (r MealPlanResponse) MealSequence() []domain.MealName {
	seq := make([]domain.MealName, len(r.Meals))
	for i, m := range r.Meals {
		seq[i] = m.Meal
	}
	return seq
}

// ProbeRequest carries the probe command's input.
type ProbeRequest struct {
	SimulateError *SimulatedErrorKind `json:"simulate_error" yaml:"simulate_error"`
}

// ProbeResponse carries the probe command's output.
type ProbeResponse struct {
	Message string `json:"message" yaml:"message"`
}

func (TrainingSession) Shape() *schema.Shape  { return trainingSessionShape }
func (MealPlanRequest) Shape() *schema.Shape  { return mealPlanRequestShape }
func (MealAllocation) Shape() *schema.Shape   { return mealAllocationShape }
func (MealPlanResponse) Shape() *schema.Shape { return mealPlanResponseShape }
func (ProbeRequest) Shape() *schema.Shape     { return probeRequestShape }
func (ProbeResponse) Shape() *schema.Shape    { return probeResponseShape }
