package nutrition

// Scale converts a per-100g reference vector into the absolute quantity for
// massGrams. This is the single scaling primitive shared by recipe
// composition and meal logging, so the same portion always computes the same
// way no matter which path asks for it.
func Scale(perHundred Vector, massGrams float64) Vector {
	factor := massGrams / 100.0
	return Vector{
		Calories:      perHundred.Calories * factor,
		Protein:       perHundred.Protein * factor,
		Fats:          perHundred.Fats * factor,
		Carbohydrates: perHundred.Carbohydrates * factor,
	}
}
