package models

import (
	"gorm.io/gorm"
)

// Goal holds a user's daily targets. Calories is always set (>0 once the
// user configures goals); Protein is optional. Goal changes only affect
// future progress computations; stored daily stats are always recomputed
// from meals, never from goals.
type Goal struct {
	gorm.Model
	UserID   uint    `gorm:"uniqueIndex;not null"`
	Calories float64 // kcal, e.g. 2200
	Protein  float64 // g, 0 = no protein goal configured
}
