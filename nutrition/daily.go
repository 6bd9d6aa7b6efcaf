package nutrition

// SumMeals totals a day's already-scaled meal vectors. Meal nutrients are
// frozen at log time, so this is summation only; nothing here ever reaches
// back into a recipe. An empty day sums to the zero vector.
func SumMeals(meals []Vector) Vector {
	var total Vector
	for _, m := range meals {
		total = total.Add(m)
	}
	return total
}
