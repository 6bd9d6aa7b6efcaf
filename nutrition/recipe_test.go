package nutrition_test

import (
	"testing"

	"github.com/AthemiS13/nutrix/nutrition"
)

func TestAggregateEmpty(t *testing.T) {
	t.Parallel()
	got := nutrition.Aggregate(nil)
	if got.TotalMassGrams != 0 || !got.TotalNutrients.IsZero() || !got.PerHundredGrams.IsZero() {
		t.Fatalf("empty aggregate should be the all-zero identity, got %+v", got)
	}
}

func TestAggregateSingleEntry(t *testing.T) {
	t.Parallel()
	per100 := nutrition.Vector{Calories: 200, Protein: 10, Fats: 5, Carbohydrates: 20}
	got := nutrition.Aggregate([]nutrition.Entry{{PerHundredGrams: per100, MassGrams: 150}})

	if got.TotalMassGrams != 150 {
		t.Fatalf("expected total mass 150, got %.2f", got.TotalMassGrams)
	}
	wantTotal := nutrition.Vector{Calories: 300, Protein: 15, Fats: 7.5, Carbohydrates: 30}
	if got.TotalNutrients != wantTotal {
		t.Fatalf("total nutrients = %+v, want %+v", got.TotalNutrients, wantTotal)
	}
	// A single-ingredient recipe's per-100g equals the ingredient's own.
	if !vectorsClose(got.PerHundredGrams, per100, 1e-9) {
		t.Fatalf("per-100g = %+v, want %+v", got.PerHundredGrams, per100)
	}
}

func TestAggregateConsistency(t *testing.T) {
	t.Parallel()
	entries := []nutrition.Entry{
		{PerHundredGrams: nutrition.Vector{Calories: 350, Protein: 12, Fats: 1.2, Carbohydrates: 72}, MassGrams: 80},
		{PerHundredGrams: nutrition.Vector{Calories: 155, Protein: 13, Fats: 11, Carbohydrates: 1.1}, MassGrams: 110},
		{PerHundredGrams: nutrition.Vector{Calories: 884, Protein: 0, Fats: 100, Carbohydrates: 0}, MassGrams: 15},
	}
	got := nutrition.Aggregate(entries)
	if got.TotalMassGrams <= 0 {
		t.Fatalf("expected positive total mass")
	}
	// per-100g scaled back up by the total mass must reproduce the totals.
	back := nutrition.Scale(got.PerHundredGrams, got.TotalMassGrams)
	if !vectorsClose(back, got.TotalNutrients, 1e-6) {
		t.Fatalf("per-100g scaled by total mass = %+v, want totals %+v", back, got.TotalNutrients)
	}
}

func TestAggregateZeroMassEntries(t *testing.T) {
	t.Parallel()
	entries := []nutrition.Entry{
		{PerHundredGrams: nutrition.Vector{Calories: 500, Protein: 20, Fats: 30, Carbohydrates: 40}, MassGrams: 0},
	}
	got := nutrition.Aggregate(entries)
	if got.TotalMassGrams != 0 || !got.PerHundredGrams.IsZero() {
		t.Fatalf("zero-mass recipe must stay well-formed, got %+v", got)
	}
}

func TestSumMeals(t *testing.T) {
	t.Parallel()
	if got := nutrition.SumMeals(nil); !got.IsZero() {
		t.Fatalf("empty day should total zero, got %+v", got)
	}

	a := nutrition.Vector{Calories: 400, Protein: 30, Fats: 10, Carbohydrates: 35}
	b := nutrition.Vector{Calories: 650, Protein: 22, Fats: 28, Carbohydrates: 60}
	c := nutrition.Vector{Calories: 120, Protein: 5, Fats: 2, Carbohydrates: 18}

	forward := nutrition.SumMeals([]nutrition.Vector{a, b, c})
	reversed := nutrition.SumMeals([]nutrition.Vector{c, b, a})
	if !vectorsClose(forward, reversed, 1e-9) {
		t.Fatalf("summation should be order-independent: %+v vs %+v", forward, reversed)
	}
	want := a.Add(b).Add(c)
	if forward != want {
		t.Fatalf("SumMeals = %+v, want %+v", forward, want)
	}
}
