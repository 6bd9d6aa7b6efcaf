package nutrition

// Entry is one ingredient's contribution to a recipe: its per-100g reference
// vector and the mass of it the recipe uses.
type Entry struct {
	PerHundredGrams Vector
	MassGrams       float64
}

// Totals is the derived triple cached on a recipe. The three fields are
// always produced together by Aggregate and must never be updated
// independently of each other.
type Totals struct {
	TotalMassGrams  float64
	TotalNutrients  Vector
	PerHundredGrams Vector
}

// Aggregate recomputes a recipe's derived triple wholesale from its entries.
// An empty entry list yields the all-zero identity, and a zero total mass
// yields a zero per-100g vector rather than a division by zero.
func Aggregate(entries []Entry) Totals {
	var t Totals
	for _, e := range entries {
		t.TotalMassGrams += e.MassGrams
		t.TotalNutrients = t.TotalNutrients.Add(Scale(e.PerHundredGrams, e.MassGrams))
	}
	if t.TotalMassGrams > 0 {
		t.PerHundredGrams = Vector{
			Calories:      t.TotalNutrients.Calories * 100.0 / t.TotalMassGrams,
			Protein:       t.TotalNutrients.Protein * 100.0 / t.TotalMassGrams,
			Fats:          t.TotalNutrients.Fats * 100.0 / t.TotalMassGrams,
			Carbohydrates: t.TotalNutrients.Carbohydrates * 100.0 / t.TotalMassGrams,
		}
	}
	return t
}
