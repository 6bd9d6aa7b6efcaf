package services

import (
	"errors"
	"time"

	"github.com/AthemiS13/nutrix/config"
	"github.com/AthemiS13/nutrix/models"
	"github.com/AthemiS13/nutrix/utils"
)

type ProfileInput struct {
	FullName  string  `json:"full_name"`
	Birthday  string  `json:"birthday"` // YYYY-MM-DD
	Height    float64 `json:"height"`
	Weight    float64 `json:"weight"`
	Onboarded bool    `json:"onboarded"`
}

func GetUserProfile(userID uint) (map[string]interface{}, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, errors.New("user not found")
	}

	age := 0
	if !user.Birthday.IsZero() {
		age = utils.CalculateAge(user.Birthday)
	}

	out := map[string]interface{}{
		"id":        user.ID,
		"email":     user.Email,
		"full_name": user.FullName,
		"birthday":  user.Birthday.Format("2006-01-02"),
		"age":       age,
		"height":    user.Height,
		"weight":    user.Weight,
		"onboarded": user.Onboarded,
	}

	if bmi, err := utils.CalculateBMI(user.Height, user.Weight); err == nil {
		out["bmi"] = bmi
		out["bmi_category"] = utils.BMICategory(bmi)
	}
	return out, nil
}

func UpdateUserProfile(userID uint, input ProfileInput) error {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return errors.New("user not found")
	}

	if input.FullName != "" {
		user.FullName = input.FullName
	}
	if input.Birthday != "" {
		if birthday, err := time.Parse("2006-01-02", input.Birthday); err == nil {
			user.Birthday = birthday
		}
	}
	if input.Height > 0 {
		user.Height = input.Height
	}
	if input.Weight > 0 {
		user.Weight = input.Weight
	}
	user.Onboarded = input.Onboarded

	return config.DB.Save(&user).Error
}
