package controllers

import (
	"net/http"
	"time"

	"github.com/AthemiS13/nutrix/config"
	"github.com/AthemiS13/nutrix/nutrition"
	"github.com/AthemiS13/nutrix/services"

	"github.com/gin-gonic/gin"
)

func newStatsService() (*services.StatsService, *services.StreakService) {
	mealSvc := services.NewMealService(config.DB, hub)
	statsSvc := services.NewStatsService(config.DB, mealSvc)
	streakSvc := services.NewStreakService(config.DB, mealSvc, statsSvc)
	return statsSvc, streakSvc
}

// GET /stats/daily?date=YYYY-MM-DD
//
// Viewing today also advances the streak (idempotently). Browsing any other
// day is read-only: the stored streak is reported but never mutated.
func GetDailyStats(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	date, ok := parseDateOrToday(c, c.Query("date"))
	if !ok {
		return
	}

	statsSvc, streakSvc := newStatsService()
	stats, err := statsSvc.Daily(userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	now := time.Now()
	var streak *streakView
	if nutrition.DayOf(date).Equal(nutrition.DayOf(now)) {
		row, err := streakSvc.EvaluateToday(userID, now)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		streak = streakPayload(row.Current, row.Longest, row.LastDate)
	} else {
		row, err := streakSvc.Snapshot(userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		streak = streakPayload(row.Current, row.Longest, row.LastDate)
	}

	c.JSON(http.StatusOK, gin.H{
		"date":     stats.Date,
		"totals":   stats.Totals,
		"meals":    stats.Meals,
		"progress": stats.Progress,
		"streak":   streak,
	})
}

type streakView struct {
	Current  int    `json:"current"`
	Longest  int    `json:"longest"`
	LastDate string `json:"last_date,omitempty"`
}

func streakPayload(current, longest int, lastDate *time.Time) *streakView {
	out := &streakView{Current: current, Longest: longest}
	if lastDate != nil {
		out.LastDate = lastDate.Format("2006-01-02")
	}
	return out
}

// GET /stats/weekly?start=YYYY-MM-DD
func GetWeeklyStats(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	startStr := c.Query("start")
	if startStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing 'start' query param"})
		return
	}
	start, err := time.Parse("2006-01-02", startStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
		return
	}

	statsSvc, _ := newStatsService()
	overview, err := statsSvc.Weekly(userID, start)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, overview)
}

// GET /stats/history
func GetProgressHistory(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	statsSvc, _ := newStatsService()
	history, err := statsSvc.History(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, history)
}
