package services_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AthemiS13/nutrix/nutrition"
	"github.com/AthemiS13/nutrix/services"
)

func estimateServer(t *testing.T, replyText string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		body, _ := json.Marshal(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]string{{"text": replyText}}}},
			},
		})
		_, _ = w.Write(body)
	}))
}

func TestEstimateNutrientsParsesFencedJSON(t *testing.T) {
	t.Parallel()
	srv := estimateServer(t, "```json\n{\"calories\": 640, \"protein\": 32, \"fats\": 21, \"carbohydrates\": 75}\n```")
	defer srv.Close()

	svc := services.NewEstimateServiceWithBaseURL(srv.URL)
	got, err := svc.EstimateNutrients("chicken burrito with rice", 450)
	if err != nil {
		t.Fatalf("EstimateNutrients: %v", err)
	}
	want := nutrition.Vector{Calories: 640, Protein: 32, Fats: 21, Carbohydrates: 75}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestEstimateNutrientsRejectsIncompleteReply(t *testing.T) {
	t.Parallel()
	srv := estimateServer(t, `{"calories": 640, "protein": 32}`)
	defer srv.Close()

	svc := services.NewEstimateServiceWithBaseURL(srv.URL)
	if _, err := svc.EstimateNutrients("mystery stew", 300); err == nil {
		t.Fatalf("expected rejection of a reply missing macro fields")
	}
}

func TestEstimateNutrientsNoCandidates(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates": []}`))
	}))
	defer srv.Close()

	svc := services.NewEstimateServiceWithBaseURL(srv.URL)
	if _, err := svc.EstimateNutrients("empty", 100); err == nil {
		t.Fatalf("expected an error when the model returns nothing")
	}
}
