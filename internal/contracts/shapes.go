package contracts

import (
	"errors"

	"mealplan/internal/domain"
	"mealplan/internal/schema"
)

var errMealOrder = errors.New("meals must match canonical meal order exactly")

var (
	mealEnum = domain.Strings(domain.MealNames())

	trainingSessionShape = &schema.Shape{
		Name: "TrainingSession",
		Fields: []schema.Field{
			{Name: "zones_minutes", Required: true, Value: schema.Value{
				Type: schema.TypeMap,
				Keys: domain.Strings(ZoneKeys()),
				Elem: &schema.Value{Type: schema.TypeInt, NonNegative: true},
			}},
			{Name: "training_before_meal", Value: schema.Value{Type: schema.TypeString, Enum: mealEnum, Nullable: true}},
		},
	}

	mealPlanRequestShape = &schema.Shape{
		Name: "MealPlanRequest",
		Fields: []schema.Field{
			{Name: "age", Required: true, Value: schema.Value{Type: schema.TypeInt}},
			{Name: "gender", Required: true, Value: enumValue(domain.Genders())},
			{Name: "weight_kg", Required: true, Value: schema.Value{Type: schema.TypeFloat}},
			{Name: "activity_level", Required: true, Value: enumValue(domain.ActivityLevels())},
			{Name: "carb_mode", Required: true, Value: enumValue(domain.CarbModes())},
			{Name: "training_load_tomorrow", Required: true, Value: enumValue(domain.TrainingLoads())},
			{Name: "training_session", Value: schema.Value{Type: schema.TypeObject, Shape: trainingSessionShape, Nullable: true}},
		},
	}

	mealAllocationShape = &schema.Shape{
		Name: "MealAllocation",
		Fields: []schema.Field{
			{Name: "meal", Required: true, Value: schema.Value{Type: schema.TypeString, Enum: mealEnum}},
			{Name: "carbs_g", Required: true, Value: schema.Value{Type: schema.TypeFloat}},
			{Name: "protein_g", Required: true, Value: schema.Value{Type: schema.TypeFloat}},
			{Name: "fat_g", Required: true, Value: schema.Value{Type: schema.TypeFloat}},
		},
	}

	mealPlanResponseShape = &schema.Shape{
		Name: "MealPlanResponse",
		Fields: []schema.Field{
			{Name: "TDEE", Required: true, Value: schema.Value{Type: schema.TypeFloat}},
			{Name: "training_carbs_g", Required: true, Value: schema.Value{Type: schema.TypeFloat}},
			{Name: "protein_g", Required: true, Value: schema.Value{Type: schema.TypeFloat}},
			{Name: "carbs_g", Required: true, Value: schema.Value{Type: schema.TypeFloat}},
			{Name: "fat_g", Required: true, Value: schema.Value{Type: schema.TypeFloat}},
			{Name: "meals", Required: true, Value: schema.Value{
				Type: schema.TypeList,
				Elem: &schema.Value{Type: schema.TypeObject, Shape: mealAllocationShape},
			}},
		},
		Checks: []schema.Check{checkCanonicalMealOrder},
	}

	probeRequestShape = &schema.Shape{
		Name: "ProbeRequest",
		Fields: []schema.Field{
			{Name: "simulate_error", Value: schema.Value{
				Type:     schema.TypeString,
				Enum:     domain.Strings(SimulatedErrorKinds()),
				Nullable: true,
			}},
		},
	}

	probeResponseShape = &schema.Shape{
		Name: "ProbeResponse",
		Fields: []schema.Field{
			{Name: "message", Required: true, Value: schema.Value{Type: schema.TypeString}},
		},
	}
)

func enumValue[T ~string](values []T) schema.Value {
	return schema.Value{Type: schema.TypeString, Enum: domain.Strings(values)}
}

// checkCanonicalMealOrder runs after field validation, so every entry is a
// well-formed allocation with a known meal name.
func checkCanonicalMealOrder(obj map[string]any) error {
	items, _ := obj["meals"].([]any)
	seq := make([]domain.MealName, 0, len(items))
	for _, item := range items {
		entry, _ := item.(map[string]any)
		name, _ := entry["meal"].(string)
		seq = append(seq, domain.MealName(name))
	}
	if !domain.IsCanonicalOrder(seq) {
		return errMealOrder
	}
	return nil
}
