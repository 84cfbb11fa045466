package models

import (
	"fmt"
	"math"
)

// DashboardStats is the derived aggregate snapshot shown on the dashboard.
// It is not authoritative: the ledger is. The snapshot is rebuilt from a
// lookback scan at load time and patched incrementally on the first quick
// check-in of a day.
//
// StreakDays is intentionally equal to the count of days with an entry in
// the lookback window rather than a consecutive-day streak. This mirrors
// the behavior users already see; fixing it would change displayed numbers.
type DashboardStats struct {
	AverageMood       float64 `json:"averageMood"`
	SessionsCompleted int     `json:"sessionsCompleted"`
	StreakDays        int     `json:"streakDays"`
	TotalMinutes      int     `json:"totalMinutes"`
}

// Round1 rounds to one decimal place, the precision every mood average is
// stored and displayed with.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// FormatAverageMood renders an average for display; zero means "no data".
func FormatAverageMood(mood float64) string {
	if mood == 0 {
		return "--"
	}
	return fmt.Sprintf("%.1f/10", mood)
}

// FormatMinutes renders a minute total as "Xm", "Xh" or "Xh Ym".
func FormatMinutes(minutes int) string {
	if minutes == 0 {
		return "0m"
	}
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	hours := minutes / 60
	rest := minutes % 60
	if rest > 0 {
		return fmt.Sprintf("%dh %dm", hours, rest)
	}
	return fmt.Sprintf("%dh", hours)
}

// FormatStreak renders a streak day count.
func FormatStreak(days int) string {
	if days == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", days)
}
