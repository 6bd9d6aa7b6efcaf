package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MealLog is immutable nutritional history: its macros were scaled once at
// log time and are never re-derived. Editing or deleting a source recipe
// must not touch existing rows. RecipeID is nil for ad-hoc and LLM-estimated
// entries.
type MealLog struct {
	gorm.Model
	PublicID string `gorm:"type:varchar(36);uniqueIndex;not null"`
	UserID   uint   `gorm:"index;not null"`
	RecipeID *uint  `gorm:"index"`

	Label     string  `gorm:"not null"`
	MassGrams float64 `gorm:"not null"`

	Calories      float64
	Protein       float64
	Fats          float64
	Carbohydrates float64

	LoggedOn time.Time `gorm:"type:date;index;not null"`
}

func (m *MealLog) BeforeCreate(tx *gorm.DB) error {
	if m.PublicID == "" {
		m.PublicID = uuid.NewString()
	}
	return nil
}
