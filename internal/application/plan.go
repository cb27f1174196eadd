package application

import (
	"mealplan/internal/contracts"
	"mealplan/internal/failure"
)

// RunPlan produces a meal plan for req. No calculation exists yet, so every
// request yields the zeroed placeholder; the result is still checked against
// the response contract before it leaves the application layer.
func RunPlan(req contracts.MealPlanRequest) (contracts.MealPlanResponse, error) {
	if err := contracts.Check(req); err != nil {
		return contracts.MealPlanResponse{}, err
	}

	resp := contracts.PlaceholderResponse()
	if err := contracts.Check(resp); err != nil {
		return contracts.MealPlanResponse{}, failure.Wrap(failure.KindOutput, err, "invalid meal plan response")
	}
	return resp, nil
}
