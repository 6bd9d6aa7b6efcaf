package nutrition

import "time"

// Goals is a user's daily targets. A Protein of zero means no protein goal
// is configured.
type Goals struct {
	Calories float64
	Protein  float64
}

// Streak tracks consecutive days of met goals. A zero LastDate means no day
// has been evaluated yet.
type Streak struct {
	Current  int
	Longest  int
	LastDate time.Time
}

// ProgressPercent returns consumed as an unclamped percentage of goal.
// A goal of zero or less yields 0 so the result is always finite.
func ProgressPercent(consumed, goal float64) float64 {
	if goal <= 0 {
		return 0
	}
	return consumed / goal * 100.0
}

// HueForProgress maps a progress percentage onto a hue in [0,120] degrees
// for a red-green-red gradient: 0% is red, 100% is green, and overshoot
// fades back to red at 200%. Every progress bar shares this one mapping so
// "on goal" renders identically for every metric.
func HueForProgress(pct float64) float64 {
	if pct < 0 {
		pct = 0
	}
	if pct > 200 {
		pct = 200
	}
	if pct <= 100 {
		return pct / 100.0 * 120.0
	}
	return (1.0 - (pct-100.0)/100.0) * 120.0
}

// GoalsMet reports whether a day's totals satisfy the user's goals: calories
// at or under the calorie goal, and protein at or above the protein goal
// when one is configured. A day with no calorie goal configured never
// counts.
func GoalsMet(totals Vector, g Goals) bool {
	if g.Calories <= 0 {
		return false
	}
	if totals.Calories > g.Calories {
		return false
	}
	if g.Protein > 0 && totals.Protein < g.Protein {
		return false
	}
	return true
}

// UpdateStreak applies the at-most-once-per-day streak transition. Calling
// it again with the same day is a no-op, so retried writes cannot
// double-increment. It must only be invoked when evaluating the current
// calendar day; browsing history is read-only.
func UpdateStreak(s Streak, today time.Time, met bool) Streak {
	if !s.LastDate.IsZero() && sameDay(s.LastDate, today) {
		return s
	}
	switch {
	case met && !s.LastDate.IsZero() && sameDay(s.LastDate.AddDate(0, 0, 1), today):
		s.Current++
	case met:
		s.Current = 1
	default:
		s.Current = 0
	}
	if s.Current > s.Longest {
		s.Longest = s.Current
	}
	s.LastDate = DayOf(today)
	return s
}

// DayOf truncates a timestamp to its calendar day.
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
