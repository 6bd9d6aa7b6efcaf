package services

import (
	"errors"
	"fmt"

	"github.com/AthemiS13/nutrix/models"
	"github.com/AthemiS13/nutrix/nutrition"

	"gorm.io/gorm"
)

var ErrRecipeNotFound = errors.New("recipe not found")

type RecipeService struct {
	db *gorm.DB
}

func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

type RecipeEntryRequest struct {
	ProviderFoodID string         `json:"food_id" binding:"required"`
	Amount         float64        `json:"amount" binding:"required,gt=0"`
	Unit           nutrition.Unit `json:"unit" binding:"required"`
}

func (s *RecipeService) Create(userID uint, name string) (*models.Recipe, error) {
	recipe := &models.Recipe{UserID: userID, Name: name}
	if err := s.db.Create(recipe).Error; err != nil {
		return nil, err
	}
	return recipe, nil
}

func (s *RecipeService) List(userID uint) ([]models.Recipe, error) {
	var recipes []models.Recipe
	err := s.db.
		Preload("Entries").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&recipes).Error
	return recipes, err
}

func (s *RecipeService) Get(userID uint, publicID string) (*models.Recipe, error) {
	var recipe models.Recipe
	err := s.db.
		Preload("Entries").
		Where("public_id = ? AND user_id = ?", publicID, userID).
		First(&recipe).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRecipeNotFound
	}
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

// Delete removes a recipe and its entries. Meal logs that referenced the
// recipe keep their snapshotted nutrients; history never changes.
func (s *RecipeService) Delete(userID uint, publicID string) error {
	recipe, err := s.Get(userID, publicID)
	if err != nil {
		return err
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.RecipeEntry{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Recipe{}, recipe.ID).Error
	})
}

// AddEntry resolves the requested amount to grams, snapshots the ingredient
// facts onto a new entry, and recomputes the recipe's derived triple.
func (s *RecipeService) AddEntry(userID uint, publicID string, ing *models.Ingredient, amount float64, unit nutrition.Unit) (*models.Recipe, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("entry amount must be positive")
	}

	var servingSize float64
	if ing.ServingSizeGrams != nil {
		servingSize = *ing.ServingSizeGrams
	}
	massGrams, err := nutrition.ToGrams(amount, unit, servingSize)
	if err != nil {
		return nil, err
	}

	recipe, err := s.Get(userID, publicID)
	if err != nil {
		return nil, err
	}

	entry := models.RecipeEntry{
		RecipeID:         recipe.ID,
		ProviderFoodID:   ing.ProviderFoodID,
		Description:      ing.Description,
		Calories:         ing.Calories,
		Protein:          ing.Protein,
		Fats:             ing.Fats,
		Carbohydrates:    ing.Carbohydrates,
		ServingSizeGrams: ing.ServingSizeGrams,
		ServingUnit:      ing.ServingUnit,
		MassGrams:        massGrams,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}
		return s.recompute(tx, recipe.ID)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(userID, publicID)
}

// UpdateEntryMass resizes one entry and recomputes.
func (s *RecipeService) UpdateEntryMass(userID uint, publicID string, entryID uint, massGrams float64) (*models.Recipe, error) {
	if massGrams <= 0 {
		return nil, fmt.Errorf("entry mass must be positive")
	}
	recipe, err := s.Get(userID, publicID)
	if err != nil {
		return nil, err
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.RecipeEntry{}).
			Where("id = ? AND recipe_id = ?", entryID, recipe.ID).
			Update("mass_grams", massGrams)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("entry %d not found in recipe", entryID)
		}
		return s.recompute(tx, recipe.ID)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(userID, publicID)
}

// RemoveEntry deletes one entry and recomputes.
func (s *RecipeService) RemoveEntry(userID uint, publicID string, entryID uint) (*models.Recipe, error) {
	recipe, err := s.Get(userID, publicID)
	if err != nil {
		return nil, err
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND recipe_id = ?", entryID, recipe.ID).Delete(&models.RecipeEntry{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("entry %d not found in recipe", entryID)
		}
		return s.recompute(tx, recipe.ID)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(userID, publicID)
}

// recompute rebuilds the derived triple wholesale from the surviving
// entries. There is deliberately no incremental path: the three caches are
// written together from one Aggregate call so they can never drift apart.
func (s *RecipeService) recompute(tx *gorm.DB, recipeID uint) error {
	var rows []models.RecipeEntry
	if err := tx.Where("recipe_id = ?", recipeID).Order("id ASC").Find(&rows).Error; err != nil {
		return err
	}

	entries := make([]nutrition.Entry, len(rows))
	for i, row := range rows {
		entries[i] = nutrition.Entry{
			PerHundredGrams: nutrition.Vector{
				Calories:      row.Calories,
				Protein:       row.Protein,
				Fats:          row.Fats,
				Carbohydrates: row.Carbohydrates,
			},
			MassGrams: row.MassGrams,
		}
	}
	t := nutrition.Aggregate(entries)

	return tx.Model(&models.Recipe{}).Where("id = ?", recipeID).Updates(map[string]interface{}{
		"total_mass_grams":     t.TotalMassGrams,
		"total_calories":       t.TotalNutrients.Calories,
		"total_protein":        t.TotalNutrients.Protein,
		"total_fats":           t.TotalNutrients.Fats,
		"total_carbohydrates":  t.TotalNutrients.Carbohydrates,
		"per100_calories":      t.PerHundredGrams.Calories,
		"per100_protein":       t.PerHundredGrams.Protein,
		"per100_fats":          t.PerHundredGrams.Fats,
		"per100_carbohydrates": t.PerHundredGrams.Carbohydrates,
	}).Error
}
