package cli

import (
	"context"
	"fmt"

	"github.com/mindcare-app/mindcare/internal/models"
)

// greeting picks the salutation for the current hour, matching the dashboard
// banner users know: morning before noon, afternoon before five, evening after.
func greeting(hour int) string {
	switch {
	case hour < 12:
		return "Good morning"
	case hour < 17:
		return "Good afternoon"
	default:
		return "Good evening"
	}
}

// Dashboard rebuilds and prints the aggregate stats, today's quick check-in
// and the most recent ledger entries.
func (a *App) Dashboard(ctx context.Context) error {
	if !a.requireSession() {
		return nil
	}

	stats, err := a.dashboard.Load(ctx, a.userID())
	if err != nil {
		a.log.Error(ctx, "dashboard load failed", "error", err)
		return err
	}

	printlnFn(fmt.Sprintf("%s, %s!", greeting(a.clock.Now().Hour()), a.session.User.Name))
	printlnFn("How are you feeling today?")
	printlnFn("")
	printlnFn("  Average mood:   " + models.FormatAverageMood(stats.AverageMood))
	printlnFn(fmt.Sprintf("  Sessions:       %d", stats.SessionsCompleted))
	printlnFn("  Streak:         " + models.FormatStreak(stats.StreakDays))
	printlnFn("  Time invested:  " + models.FormatMinutes(stats.TotalMinutes))

	if today, ok, err := a.mood.TodayQuickMood(ctx, a.userID()); err == nil && ok {
		printlnFn("")
		printlnFn("  Today's check-in: " + string(today))
	}

	recent, err := a.mood.ListRecent(ctx, a.userID(), 3)
	if err != nil {
		a.log.Error(ctx, "recent entries load failed", "error", err)
		return err
	}
	if len(recent) > 0 {
		printlnFn("")
		printlnFn("Recent entries:")
		for _, e := range recent {
			printlnFn(fmt.Sprintf("  %s  %2d/10  %s", e.Date, e.Mood, e.Note))
		}
	}
	return nil
}
