package nutrition_test

import (
	"math"
	"testing"

	"github.com/AthemiS13/nutrix/nutrition"
)

func vectorsClose(a, b nutrition.Vector, tol float64) bool {
	return math.Abs(a.Calories-b.Calories) <= tol &&
		math.Abs(a.Protein-b.Protein) <= tol &&
		math.Abs(a.Fats-b.Fats) <= tol &&
		math.Abs(a.Carbohydrates-b.Carbohydrates) <= tol
}

func TestScale(t *testing.T) {
	t.Parallel()
	per100 := nutrition.Vector{Calories: 200, Protein: 10, Fats: 5, Carbohydrates: 20}
	got := nutrition.Scale(per100, 150)
	want := nutrition.Vector{Calories: 300, Protein: 15, Fats: 7.5, Carbohydrates: 30}
	if got != want {
		t.Fatalf("Scale(150g) = %+v, want %+v", got, want)
	}
}

func TestScaleZeroMass(t *testing.T) {
	t.Parallel()
	per100 := nutrition.Vector{Calories: 99, Protein: 9, Fats: 9, Carbohydrates: 9}
	if got := nutrition.Scale(per100, 0); !got.IsZero() {
		t.Fatalf("Scale(0g) = %+v, want zero vector", got)
	}
}

func TestScaleLinearity(t *testing.T) {
	t.Parallel()
	v := nutrition.Vector{Calories: 123.4, Protein: 8.7, Fats: 3.21, Carbohydrates: 45.6}
	masses := [][2]float64{{0, 0}, {50, 50}, {30, 170}, {0.1, 999.9}}
	for _, m := range masses {
		split := nutrition.Scale(v, m[0]).Add(nutrition.Scale(v, m[1]))
		whole := nutrition.Scale(v, m[0]+m[1])
		if !vectorsClose(split, whole, 1e-9) {
			t.Fatalf("scale(%v)+scale(%v) = %+v, scale(sum) = %+v", m[0], m[1], split, whole)
		}
	}
}
