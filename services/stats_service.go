package services

import (
	"errors"
	"math"
	"time"

	"github.com/AthemiS13/nutrix/models"
	"github.com/AthemiS13/nutrix/nutrition"

	"gorm.io/gorm"
)

type StatsService struct {
	db      *gorm.DB
	mealSvc *MealService
}

func NewStatsService(db *gorm.DB, mealSvc *MealService) *StatsService {
	return &StatsService{db: db, mealSvc: mealSvc}
}

// MetricProgress is one progress bar's worth of data. Hue comes from the
// single shared mapping so "on goal" renders identically for every metric.
type MetricProgress struct {
	Consumed  float64 `json:"consumed"`
	Goal      float64 `json:"goal"`
	Percent   float64 `json:"percent"`
	Hue       float64 `json:"hue"`
	Remaining float64 `json:"remaining"` // negative = over goal
}

type DailyStats struct {
	Date     string                    `json:"date"`
	Totals   nutrition.Vector          `json:"totals"`
	Meals    []models.MealLog          `json:"meals"`
	Progress map[string]MetricProgress `json:"progress"`
}

// Daily recomputes the day's totals from its meal logs and derives progress
// against the user's current goals. Totals come from meals, never from the
// cached DailyProgress row.
func (s *StatsService) Daily(userID uint, date time.Time) (*DailyStats, error) {
	totals, meals, err := s.mealSvc.DayTotals(userID, date)
	if err != nil {
		return nil, err
	}

	goal, err := s.goalSnapshot(userID)
	if err != nil {
		return nil, err
	}

	out := &DailyStats{
		Date:     nutrition.DayOf(date).Format("2006-01-02"),
		Totals:   totals,
		Meals:    meals,
		Progress: map[string]MetricProgress{},
	}
	out.Progress["calories"] = metricProgress(totals.Calories, goal.Calories)
	if goal.Protein > 0 {
		out.Progress["protein"] = metricProgress(totals.Protein, goal.Protein)
	}
	return out, nil
}

func metricProgress(consumed, goal float64) MetricProgress {
	pct := nutrition.ProgressPercent(consumed, goal)
	return MetricProgress{
		Consumed:  round2(consumed),
		Goal:      round2(goal),
		Percent:   round2(pct),
		Hue:       round2(nutrition.HueForProgress(pct)),
		Remaining: round2(goal - consumed),
	}
}

// ---------- Weekly Overview ----------

type WeekDay struct {
	Date        string             `json:"date"`
	Percentages map[string]float64 `json:"percentages"`
}

type WeeklyOverview struct {
	WeekStart string    `json:"week_start"`
	Days      []WeekDay `json:"days"`
}

// Weekly builds the seven-day percent chart from the cached DailyProgress
// rows; missing days read as zero.
func (s *StatsService) Weekly(userID uint, weekStart time.Time) (*WeeklyOverview, error) {
	from := nutrition.DayOf(weekStart)
	to := from.AddDate(0, 0, 6)

	var rows []models.DailyProgress
	if err := s.db.
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, from, to).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	idx := map[string]models.DailyProgress{}
	for _, r := range rows {
		idx[r.Date.Format("2006-01-02")] = r
	}

	goal, err := s.goalSnapshot(userID)
	if err != nil {
		return nil, err
	}

	out := &WeeklyOverview{WeekStart: from.Format("2006-01-02")}
	for i := 0; i < 7; i++ {
		d := from.AddDate(0, 0, i)
		key := d.Format("2006-01-02")
		dp := idx[key] // zero value if not found
		out.Days = append(out.Days, WeekDay{
			Date: key,
			Percentages: map[string]float64{
				"calories": round2(nutrition.ProgressPercent(dp.Calories, goal.Calories)),
				"protein":  round2(nutrition.ProgressPercent(dp.Protein, goal.Protein)),
			},
		})
	}
	return out, nil
}

// History returns the stored daily snapshots, newest first.
func (s *StatsService) History(userID uint) ([]models.DailyProgress, error) {
	var logs []models.DailyProgress
	err := s.db.
		Where("user_id = ?", userID).
		Order("date desc").
		Find(&logs).Error
	return logs, err
}

func (s *StatsService) goalSnapshot(userID uint) (nutrition.Goals, error) {
	var g models.Goal
	if err := s.db.Where("user_id = ?", userID).First(&g).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nutrition.Goals{}, nil
		}
		return nutrition.Goals{}, err
	}
	return nutrition.Goals{Calories: g.Calories, Protein: g.Protein}, nil
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
