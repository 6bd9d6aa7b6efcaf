package models

import (
	"time"

	"gorm.io/gorm"
)

// Streak is mutated at most once per calendar day, and only when evaluating
// the current day. LastDate is nil until the first evaluation.
type Streak struct {
	gorm.Model
	UserID   uint `gorm:"uniqueIndex;not null"`
	Current  int
	Longest  int
	LastDate *time.Time `gorm:"type:date"`
}
