package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Recipe caches three derived aggregates (total mass, absolute totals,
// per-100g normalization). They are recomputed wholesale from Entries on
// every mutation and never patched individually.
type Recipe struct {
	gorm.Model
	PublicID string `gorm:"type:varchar(36);uniqueIndex;not null"`
	UserID   uint   `gorm:"index;not null"`
	Name     string `gorm:"not null"`
	Entries  []RecipeEntry

	TotalMassGrams float64

	TotalCalories      float64
	TotalProtein       float64
	TotalFats          float64
	TotalCarbohydrates float64

	Per100Calories      float64 `gorm:"column:per100_calories"`
	Per100Protein       float64 `gorm:"column:per100_protein"`
	Per100Fats          float64 `gorm:"column:per100_fats"`
	Per100Carbohydrates float64 `gorm:"column:per100_carbohydrates"`
}

func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.PublicID == "" {
		r.PublicID = uuid.NewString()
	}
	return nil
}

// RecipeEntry is owned by its Recipe and snapshots the ingredient facts it
// was built from, so a recipe keeps computing the same way even if the
// catalog row is refreshed later.
type RecipeEntry struct {
	gorm.Model
	RecipeID uint `gorm:"index;not null"`

	ProviderFoodID string
	Description    string

	Calories      float64 // per 100 g
	Protein       float64 // per 100 g
	Fats          float64 // per 100 g
	Carbohydrates float64 // per 100 g

	ServingSizeGrams *float64
	ServingUnit      *string

	MassGrams float64 `gorm:"not null"`
}
