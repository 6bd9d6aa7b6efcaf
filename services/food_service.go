package services

import (
	"fmt"

	"github.com/AthemiS13/nutrix/config"
	"github.com/AthemiS13/nutrix/models"

	"gorm.io/gorm/clause"
)

// FoodService fronts the provider client and maintains the local ingredient
// catalog cache.
type FoodService struct {
	provider *FoodDataService
}

func NewFoodService(provider *FoodDataService) *FoodService {
	return &FoodService{provider: provider}
}

// Search fetches matching ingredients from the provider and upserts them
// into the catalog, so recipe building can reference stable rows. Per-100g
// nutrients are immutable facts about the ingredient; an upsert only
// refreshes description and serving metadata.
func (s *FoodService) Search(query string) ([]models.Ingredient, error) {
	found, err := s.provider.SearchFoods(query)
	if err != nil {
		return nil, err
	}

	for i := range found {
		err := config.DB.
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "provider_food_id"}},
				DoUpdates: clause.AssignmentColumns([]string{"description", "serving_size_grams", "serving_unit"}),
			}).
			Create(&found[i]).Error
		if err != nil {
			return nil, fmt.Errorf("failed to cache ingredient %q: %w", found[i].ProviderFoodID, err)
		}
	}
	return found, nil
}

// Lookup returns a cached catalog row by provider id.
func (s *FoodService) Lookup(providerFoodID string) (*models.Ingredient, error) {
	var ing models.Ingredient
	if err := config.DB.Where("provider_food_id = ?", providerFoodID).First(&ing).Error; err != nil {
		return nil, fmt.Errorf("ingredient %q not in catalog: %w", providerFoodID, err)
	}
	return &ing, nil
}
