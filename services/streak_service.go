package services

import (
	"time"

	"github.com/AthemiS13/nutrix/models"
	"github.com/AthemiS13/nutrix/nutrition"

	"gorm.io/gorm"
)

type StreakService struct {
	db       *gorm.DB
	mealSvc  *MealService
	statsSvc *StatsService
}

func NewStreakService(db *gorm.DB, mealSvc *MealService, statsSvc *StatsService) *StreakService {
	return &StreakService{db: db, mealSvc: mealSvc, statsSvc: statsSvc}
}

// EvaluateToday applies the once-per-day streak transition for the current
// calendar day. Safe to call repeatedly: the transition is idempotent, so
// retried requests cannot double-increment. Browsing past days must go
// through Snapshot instead; history is read-only.
func (s *StreakService) EvaluateToday(userID uint, now time.Time) (*models.Streak, error) {
	row, err := s.load(userID)
	if err != nil {
		return nil, err
	}

	totals, _, err := s.mealSvc.DayTotals(userID, now)
	if err != nil {
		return nil, err
	}
	goals, err := s.statsSvc.goalSnapshot(userID)
	if err != nil {
		return nil, err
	}

	cur := nutrition.Streak{Current: row.Current, Longest: row.Longest}
	if row.LastDate != nil {
		cur.LastDate = *row.LastDate
	}
	next := nutrition.UpdateStreak(cur, now, nutrition.GoalsMet(totals, goals))
	if cur == next {
		return row, nil
	}

	row.Current = next.Current
	row.Longest = next.Longest
	last := next.LastDate
	row.LastDate = &last
	if err := s.db.Save(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

// Snapshot returns the stored streak without mutating it.
func (s *StreakService) Snapshot(userID uint) (*models.Streak, error) {
	return s.load(userID)
}

func (s *StreakService) load(userID uint) (*models.Streak, error) {
	row := &models.Streak{UserID: userID}
	if err := s.db.Where("user_id = ?", userID).FirstOrCreate(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}
