package models

import "gorm.io/gorm"

// Ingredient is a cached catalog row from the food database provider. The
// per-100g macros are a fact about the ingredient, immutable once fetched.
// ServingSizeGrams and ServingUnit are both set or both null; partial
// serving data from upstream is dropped at ingestion.
type Ingredient struct {
	gorm.Model
	ProviderFoodID   string  `gorm:"type:varchar(255);uniqueIndex;not null"`
	Description      string  `gorm:"not null"`
	Calories         float64 // per 100 g
	Protein          float64 // per 100 g
	Fats             float64 // per 100 g
	Carbohydrates    float64 // per 100 g
	ServingSizeGrams *float64
	ServingUnit      *string
}
