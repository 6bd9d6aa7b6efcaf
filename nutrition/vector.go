package nutrition

import "errors"

// Vector is an absolute quantity of the four tracked macros. It is only a
// per-100g reference where a field or parameter says so.
type Vector struct {
	Calories      float64 `json:"calories"`
	Protein       float64 `json:"protein"`
	Fats          float64 `json:"fats"`
	Carbohydrates float64 `json:"carbohydrates"`
}

// ErrMalformedVector is returned when an externally supplied nutrient payload
// is missing one of the four required fields. Missing fields are never
// silently defaulted to zero; that would corrupt totals without signal.
var ErrMalformedVector = errors.New("nutrient vector must contain calories, protein, fats and carbohydrates")

func (v Vector) Add(o Vector) Vector {
	return Vector{
		Calories:      v.Calories + o.Calories,
		Protein:       v.Protein + o.Protein,
		Fats:          v.Fats + o.Fats,
		Carbohydrates: v.Carbohydrates + o.Carbohydrates,
	}
}

func (v Vector) IsZero() bool {
	return v == Vector{}
}

// VectorFromMap decodes a loosely-typed nutrient payload (e.g. parsed LLM
// output or provider JSON flattened to a map). All four fields must be
// present and non-negative.
func VectorFromMap(m map[string]float64) (Vector, error) {
	var v Vector
	for key, dst := range map[string]*float64{
		"calories":      &v.Calories,
		"protein":       &v.Protein,
		"fats":          &v.Fats,
		"carbohydrates": &v.Carbohydrates,
	} {
		val, ok := m[key]
		if !ok || val < 0 {
			return Vector{}, ErrMalformedVector
		}
		*dst = val
	}
	return v, nil
}
