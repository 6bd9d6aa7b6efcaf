package services

import (
	"errors"

	"github.com/AthemiS13/nutrix/config"
	"github.com/AthemiS13/nutrix/models"

	"gorm.io/gorm"
)

// GetGoals returns the user's goal row, or a zero-value row if none is
// configured yet.
func GetGoals(userID uint) (*models.Goal, error) {
	var goal models.Goal
	err := config.DB.Where("user_id = ?", userID).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.Goal{UserID: userID}, nil
	}
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

// UpsertGoals validates and stores the daily targets. A zero protein value
// means no protein goal. "Goal is zero" validation lives here, at the
// settings boundary, so progress math downstream never divides by it.
func UpsertGoals(userID uint, calories float64, protein float64) error {
	if calories <= 0 {
		return errors.New("daily calorie goal must be positive")
	}
	if protein < 0 {
		return errors.New("daily protein goal cannot be negative")
	}

	var goal models.Goal
	err := config.DB.Where("user_id = ?", userID).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		goal = models.Goal{UserID: userID, Calories: calories, Protein: protein}
		return config.DB.Create(&goal).Error
	}
	if err != nil {
		return err
	}

	goal.Calories = calories
	goal.Protein = protein
	return config.DB.Save(&goal).Error
}
