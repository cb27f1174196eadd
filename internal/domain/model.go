package domain

// canonicalMealOrder is the fixed meal sequence used by allocation and
// serialization. Every response lists its meals in exactly this order.
var canonicalMealOrder = [6]MealName{
	MealBreakfast,
	MealMorningSnack,
	MealLunch,
	MealAfternoonSnack,
	MealDinner,
	MealEveningSnack,
}

// CanonicalMealOrder returns a copy of the canonical meal sequence.
func CanonicalMealOrder() []MealName {
	order := canonicalMealOrder
	return order[:]
}

// IsCanonicalOrder reports whether meals equals the canonical sequence
// exactly: same length, same identifiers, same positions.
func IsCanonicalOrder(meals []MealName) bool {
	if len(meals) != len(canonicalMealOrder) {
		return false
	}
	for i, m := range meals {
		if m != canonicalMealOrder[i] {
			return false
		}
	}
	return true
}
