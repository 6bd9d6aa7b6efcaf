package services_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AthemiS13/nutrix/services"
)

func TestSearchFoodsMapsProviderResponse(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("ingr"); got != "egg" {
			t.Errorf("expected ingr=egg, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"hints": [
				{
					"food": {
						"foodId": "food_egg1",
						"label": "Egg",
						"nutrients": {"ENERC_KCAL": 143, "PROCNT": 12.6, "FAT": 9.5, "CHOCDF": 0.7}
					},
					"measures": [
						{"label": "Gram", "weight": 1},
						{"label": "Whole eggs 2345", "weight": 50}
					]
				},
				{
					"food": {
						"foodId": "food_rice1",
						"label": "White Rice",
						"nutrients": {"ENERC_KCAL": 360, "PROCNT": 6.6, "FAT": 0.6, "CHOCDF": 79.3}
					},
					"measures": [
						{"label": "Serving undetermined", "weight": 120}
					]
				}
			]
		}`))
	}))
	defer srv.Close()

	svc := services.NewFoodDataServiceWithBaseURL(srv.URL)
	got, err := svc.SearchFoods("egg")
	if err != nil {
		t.Fatalf("SearchFoods: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 ingredients, got %d", len(got))
	}

	egg := got[0]
	if egg.ProviderFoodID != "food_egg1" || egg.Description != "Egg" {
		t.Fatalf("unexpected identity mapping: %+v", egg)
	}
	if egg.Calories != 143 || egg.Protein != 12.6 || egg.Fats != 9.5 || egg.Carbohydrates != 0.7 {
		t.Fatalf("unexpected macro mapping: %+v", egg)
	}
	// "Gram" is not countable; "Whole eggs 2345" sanitizes to a countable
	// unit with its numeric code stripped and plural singularized.
	if egg.ServingUnit == nil || *egg.ServingUnit != "Whole Egg" {
		t.Fatalf("expected serving unit %q, got %v", "Whole Egg", egg.ServingUnit)
	}
	if egg.ServingSizeGrams == nil || *egg.ServingSizeGrams != 50 {
		t.Fatalf("expected serving size 50 g, got %v", egg.ServingSizeGrams)
	}

	// Rice only has a placeholder measure: no serving metadata survives.
	rice := got[1]
	if rice.ServingUnit != nil || rice.ServingSizeGrams != nil {
		t.Fatalf("placeholder measure should be dropped, got unit=%v size=%v",
			rice.ServingUnit, rice.ServingSizeGrams)
	}
}

func TestSearchFoodsUpstreamError(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"rate limited"}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	svc := services.NewFoodDataServiceWithBaseURL(srv.URL)
	if _, err := svc.SearchFoods("egg"); err == nil {
		t.Fatalf("expected an error for a non-200 upstream response")
	}
}
