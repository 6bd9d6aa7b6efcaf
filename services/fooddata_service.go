package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/AthemiS13/nutrix/models"
	"github.com/AthemiS13/nutrix/nutrition"
)

const defaultFoodDataBaseURL = "https://api.edamam.com/api/food-database/v2"

// FoodDataService is the narrow client for the external food database. Its
// job ends at translating provider JSON into Ingredient records; everything
// downstream works with those.
type FoodDataService struct {
	appID   string
	appKey  string
	baseURL string
	vocab   nutrition.Vocabulary
	client  *http.Client
}

func NewFoodDataService() *FoodDataService {
	return &FoodDataService{
		appID:   os.Getenv("FOOD_APP_ID"),
		appKey:  os.Getenv("FOOD_APP_KEY"),
		baseURL: defaultFoodDataBaseURL,
		vocab:   nutrition.DefaultVocabulary(),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// NewFoodDataServiceWithBaseURL exists for tests that point the client at a
// local httptest server.
func NewFoodDataServiceWithBaseURL(baseURL string) *FoodDataService {
	s := NewFoodDataService()
	s.baseURL = baseURL
	return s
}

type foodParserResponse struct {
	Hints []struct {
		Food struct {
			FoodID    string             `json:"foodId"`
			Label     string             `json:"label"`
			Nutrients map[string]float64 `json:"nutrients"`
		} `json:"food"`
		Measures []struct {
			Label  string  `json:"label"`
			Weight float64 `json:"weight"`
		} `json:"measures"`
	} `json:"hints"`
}

// SearchFoods queries the provider's parser endpoint and maps each hit into
// an Ingredient. Nutrients arrive per 100 g. Serving metadata is kept only
// when the provider supplies both a usable unit label and a positive weight;
// the free-text label goes through SanitizeServingUnitLabel first so
// upstream filler ("undetermined", numeric codes) never reaches storage.
func (s *FoodDataService) SearchFoods(query string) ([]models.Ingredient, error) {
	u := fmt.Sprintf("%s/parser?ingr=%s&app_id=%s&app_key=%s",
		s.baseURL, url.QueryEscape(query), s.appID, s.appKey,
	)

	resp, err := s.client.Get(u)
	if err != nil {
		return nil, fmt.Errorf("failed to call food parser: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read food parser response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("food parser API error %d: %s", resp.StatusCode, string(body))
	}

	var pr foodParserResponse
	if err := json.Unmarshal(body, &pr); err != nil {
		return nil, fmt.Errorf("failed to parse food parser JSON: %w", err)
	}

	results := make([]models.Ingredient, 0, len(pr.Hints))
	for _, h := range pr.Hints {
		ing := models.Ingredient{
			ProviderFoodID: h.Food.FoodID,
			Description:    h.Food.Label,
			Calories:       h.Food.Nutrients["ENERC_KCAL"],
			Protein:        h.Food.Nutrients["PROCNT"],
			Fats:           h.Food.Nutrients["FAT"],
			Carbohydrates:  h.Food.Nutrients["CHOCDF"],
		}
		// Keep the first measure that names a countable item with a known
		// weight; weights and gram/volume measures are redundant with the
		// per-100g data.
		for _, m := range h.Measures {
			if m.Weight <= 0 {
				continue
			}
			unit, ok := nutrition.SanitizeServingUnitLabel(m.Label, s.vocab)
			if !ok || !s.vocab.IsCountable(unit) {
				continue
			}
			weight := m.Weight
			ing.ServingSizeGrams = &weight
			ing.ServingUnit = &unit
			break
		}
		results = append(results, ing)
	}
	return results, nil
}
