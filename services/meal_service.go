package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/AthemiS13/nutrix/models"
	"github.com/AthemiS13/nutrix/nutrition"

	"gorm.io/gorm"
)

var ErrMealNotFound = errors.New("meal log entry not found")

type MealService struct {
	db  *gorm.DB
	hub *ProgressHub
}

func NewMealService(db *gorm.DB, hub *ProgressHub) *MealService {
	return &MealService{db: db, hub: hub}
}

// LogRecipe records a consumed portion of a recipe. The recipe's per-100g
// vector is scaled once, here, and the result is frozen onto the log row;
// later recipe edits never reach back into it.
func (s *MealService) LogRecipe(userID uint, recipe *models.Recipe, massGrams float64, loggedOn time.Time) (*models.MealLog, error) {
	if massGrams <= 0 {
		return nil, fmt.Errorf("consumed mass must be positive")
	}

	per100 := nutrition.Vector{
		Calories:      recipe.Per100Calories,
		Protein:       recipe.Per100Protein,
		Fats:          recipe.Per100Fats,
		Carbohydrates: recipe.Per100Carbohydrates,
	}
	scaled := nutrition.Scale(per100, massGrams)

	entry := &models.MealLog{
		UserID:        userID,
		RecipeID:      &recipe.ID,
		Label:         recipe.Name,
		MassGrams:     massGrams,
		Calories:      scaled.Calories,
		Protein:       scaled.Protein,
		Fats:          scaled.Fats,
		Carbohydrates: scaled.Carbohydrates,
		LoggedOn:      nutrition.DayOf(loggedOn),
	}
	if err := s.db.Create(entry).Error; err != nil {
		return nil, err
	}
	s.afterMealChange(userID, entry.LoggedOn)
	return entry, nil
}

// LogManual records an ad-hoc entry whose nutrients are already absolute,
// either a user's own numbers or an LLM estimate. No recipe is referenced.
func (s *MealService) LogManual(userID uint, label string, massGrams float64, nutrients nutrition.Vector, loggedOn time.Time) (*models.MealLog, error) {
	if massGrams <= 0 {
		return nil, fmt.Errorf("consumed mass must be positive")
	}
	if label == "" {
		return nil, fmt.Errorf("label is required")
	}

	entry := &models.MealLog{
		UserID:        userID,
		Label:         label,
		MassGrams:     massGrams,
		Calories:      nutrients.Calories,
		Protein:       nutrients.Protein,
		Fats:          nutrients.Fats,
		Carbohydrates: nutrients.Carbohydrates,
		LoggedOn:      nutrition.DayOf(loggedOn),
	}
	if err := s.db.Create(entry).Error; err != nil {
		return nil, err
	}
	s.afterMealChange(userID, entry.LoggedOn)
	return entry, nil
}

func (s *MealService) ListByDate(userID uint, date time.Time) ([]models.MealLog, error) {
	var meals []models.MealLog
	err := s.db.
		Where("user_id = ? AND logged_on = ?", userID, nutrition.DayOf(date)).
		Order("created_at ASC").
		Find(&meals).Error
	return meals, err
}

func (s *MealService) Delete(userID uint, publicID string) error {
	var entry models.MealLog
	err := s.db.Where("public_id = ? AND user_id = ?", publicID, userID).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrMealNotFound
	}
	if err != nil {
		return err
	}
	if err := s.db.Delete(&entry).Error; err != nil {
		return err
	}
	s.afterMealChange(userID, entry.LoggedOn)
	return nil
}

// DayTotals sums the day's frozen meal vectors. Summation only; an empty
// day is the zero vector.
func (s *MealService) DayTotals(userID uint, date time.Time) (nutrition.Vector, []models.MealLog, error) {
	meals, err := s.ListByDate(userID, date)
	if err != nil {
		return nutrition.Vector{}, nil, err
	}
	vectors := make([]nutrition.Vector, len(meals))
	for i, m := range meals {
		vectors[i] = nutrition.Vector{
			Calories:      m.Calories,
			Protein:       m.Protein,
			Fats:          m.Fats,
			Carbohydrates: m.Carbohydrates,
		}
	}
	return nutrition.SumMeals(vectors), meals, nil
}

// afterMealChange refreshes the day's cached progress row and pushes the
// new totals to any connected clients. Failures here are logged away;
// the cache is derived state and the next read recomputes it.
func (s *MealService) afterMealChange(userID uint, date time.Time) {
	totals, _, err := s.DayTotals(userID, date)
	if err != nil {
		return
	}

	dp := models.DailyProgress{
		UserID:        userID,
		Date:          date,
		Calories:      totals.Calories,
		Protein:       totals.Protein,
		Fats:          totals.Fats,
		Carbohydrates: totals.Carbohydrates,
	}
	s.db.
		Where("user_id = ? AND date = ?", userID, date).
		Assign(dp).
		FirstOrCreate(&dp)

	if s.hub != nil {
		s.hub.BroadcastProgress(userID, map[string]any{
			"kind":   "progress.updated",
			"date":   date.Format("2006-01-02"),
			"totals": totals,
		})
	}
}
