package nutrition_test

import (
	"math"
	"testing"
	"time"

	"github.com/AthemiS13/nutrix/nutrition"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestProgressPercent(t *testing.T) {
	t.Parallel()
	cases := []struct {
		consumed, goal, want float64
	}{
		{1000, 2000, 50},
		{2000, 2000, 100},
		{3000, 2000, 150},
		{0, 2000, 0},
		{500, 0, 0}, // zero goal is defined away, never a division by zero
	}
	for _, tc := range cases {
		if got := nutrition.ProgressPercent(tc.consumed, tc.goal); got != tc.want {
			t.Fatalf("ProgressPercent(%v, %v) = %v, want %v", tc.consumed, tc.goal, got, tc.want)
		}
	}
}

func TestHueForProgressBoundaries(t *testing.T) {
	t.Parallel()
	cases := []struct {
		pct, want float64
	}{
		{0, 0},
		{100, 120},
		{200, 0},
		{150, 60},
		{50, 60},
		{-10, 0},  // clamped below
		{1000, 0}, // clamped above
	}
	for _, tc := range cases {
		if got := nutrition.HueForProgress(tc.pct); math.Abs(got-tc.want) > 1e-9 {
			t.Fatalf("HueForProgress(%v) = %v, want %v", tc.pct, got, tc.want)
		}
	}
}

func TestGoalsMet(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name   string
		totals nutrition.Vector
		goals  nutrition.Goals
		want   bool
	}{
		{"under calorie goal", nutrition.Vector{Calories: 1800}, nutrition.Goals{Calories: 2000}, true},
		{"exactly on calorie goal", nutrition.Vector{Calories: 2000}, nutrition.Goals{Calories: 2000}, true},
		{"over calorie goal", nutrition.Vector{Calories: 2100}, nutrition.Goals{Calories: 2000}, false},
		{"protein goal met", nutrition.Vector{Calories: 1800, Protein: 130}, nutrition.Goals{Calories: 2000, Protein: 120}, true},
		{"protein goal missed", nutrition.Vector{Calories: 1800, Protein: 90}, nutrition.Goals{Calories: 2000, Protein: 120}, false},
		{"no protein goal configured", nutrition.Vector{Calories: 1800, Protein: 0}, nutrition.Goals{Calories: 2000}, true},
		{"no calorie goal configured", nutrition.Vector{Calories: 0}, nutrition.Goals{}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := nutrition.GoalsMet(tc.totals, tc.goals); got != tc.want {
				t.Fatalf("GoalsMet = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestUpdateStreakContinuation(t *testing.T) {
	t.Parallel()
	s := nutrition.Streak{Current: 3, Longest: 5, LastDate: date(2024, time.January, 5)}
	got := nutrition.UpdateStreak(s, date(2024, time.January, 6), true)
	if got.Current != 4 || got.Longest != 5 || !got.LastDate.Equal(date(2024, time.January, 6)) {
		t.Fatalf("continuation: got %+v", got)
	}
}

func TestUpdateStreakBreak(t *testing.T) {
	t.Parallel()
	s := nutrition.Streak{Current: 3, Longest: 5, LastDate: date(2024, time.January, 5)}
	got := nutrition.UpdateStreak(s, date(2024, time.January, 6), false)
	if got.Current != 0 || got.Longest != 5 || !got.LastDate.Equal(date(2024, time.January, 6)) {
		t.Fatalf("break: got %+v", got)
	}
}

func TestUpdateStreakGapRestarts(t *testing.T) {
	t.Parallel()
	s := nutrition.Streak{Current: 3, Longest: 5, LastDate: date(2024, time.January, 5)}
	got := nutrition.UpdateStreak(s, date(2024, time.January, 9), true)
	if got.Current != 1 || got.Longest != 5 {
		t.Fatalf("gap restart: got %+v", got)
	}
}

func TestUpdateStreakFirstDay(t *testing.T) {
	t.Parallel()
	got := nutrition.UpdateStreak(nutrition.Streak{}, date(2024, time.March, 1), true)
	if got.Current != 1 || got.Longest != 1 {
		t.Fatalf("first day: got %+v", got)
	}
}

func TestUpdateStreakIdempotentSameDay(t *testing.T) {
	t.Parallel()
	s := nutrition.Streak{Current: 3, Longest: 5, LastDate: date(2024, time.January, 5)}
	today := date(2024, time.January, 6)
	once := nutrition.UpdateStreak(s, today, true)
	twice := nutrition.UpdateStreak(once, today, true)
	if once != twice {
		t.Fatalf("same-day update must be a no-op: %+v vs %+v", once, twice)
	}
	// Even a conflicting outcome on the same day must not change anything.
	again := nutrition.UpdateStreak(once, today, false)
	if once != again {
		t.Fatalf("same-day update with different outcome must be a no-op: %+v vs %+v", once, again)
	}
}

func TestUpdateStreakNewLongest(t *testing.T) {
	t.Parallel()
	s := nutrition.Streak{Current: 5, Longest: 5, LastDate: date(2024, time.January, 5)}
	got := nutrition.UpdateStreak(s, date(2024, time.January, 6), true)
	if got.Current != 6 || got.Longest != 6 {
		t.Fatalf("longest should track a new record: got %+v", got)
	}
}
