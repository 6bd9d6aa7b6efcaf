package nutrition_test

import (
	"errors"
	"testing"

	"github.com/AthemiS13/nutrix/nutrition"
)

func TestVectorFromMap(t *testing.T) {
	t.Parallel()
	got, err := nutrition.VectorFromMap(map[string]float64{
		"calories": 520, "protein": 24, "fats": 18, "carbohydrates": 61,
	})
	if err != nil {
		t.Fatalf("VectorFromMap: %v", err)
	}
	want := nutrition.Vector{Calories: 520, Protein: 24, Fats: 18, Carbohydrates: 61}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestVectorFromMapRejectsMissingField(t *testing.T) {
	t.Parallel()
	cases := []map[string]float64{
		{"calories": 100, "protein": 5, "fats": 2},
		{"protein": 5, "fats": 2, "carbohydrates": 10},
		{},
		{"calories": -1, "protein": 5, "fats": 2, "carbohydrates": 10},
	}
	for i, m := range cases {
		if _, err := nutrition.VectorFromMap(m); !errors.Is(err, nutrition.ErrMalformedVector) {
			t.Fatalf("case %d: expected ErrMalformedVector, got %v", i, err)
		}
	}
}

func TestVectorAddAndZero(t *testing.T) {
	t.Parallel()
	var zero nutrition.Vector
	if !zero.IsZero() {
		t.Fatalf("zero value should be the additive identity")
	}
	v := nutrition.Vector{Calories: 1, Protein: 2, Fats: 3, Carbohydrates: 4}
	if v.Add(zero) != v {
		t.Fatalf("adding the zero vector should change nothing")
	}
}
