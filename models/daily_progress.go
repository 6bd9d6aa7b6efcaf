package models

import (
	"time"

	"gorm.io/gorm"
)

// DailyProgress is a per-day cache of meal totals, upserted after every meal
// mutation. It is derived state: the authoritative answer is always a fresh
// sum over the day's meal logs.
type DailyProgress struct {
	gorm.Model
	UserID uint      `gorm:"index;not null"`
	Date   time.Time `gorm:"index;not null"` // truncated to YYYY-MM-DD

	Calories      float64
	Protein       float64
	Fats          float64
	Carbohydrates float64
}
