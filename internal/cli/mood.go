package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mindcare-app/mindcare/internal/common"
	"github.com/mindcare-app/mindcare/internal/models"
)

// QuickMood records the single-tap category for today and prints the
// aggregates as the service reports them afterwards.
func (a *App) QuickMood(ctx context.Context, category string) error {
	if !a.requireSession() {
		return nil
	}

	mood, err := models.ParseQuickMood(category)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	stats, err := a.mood.QuickMoodUpdate(ctx, a.userID(), mood)
	if err != nil {
		a.log.Error(ctx, "quick check-in failed", "error", err)
		return err
	}

	printlnFn(fmt.Sprintf("Noted: feeling %s today.", mood))
	printlnFn(fmt.Sprintf("Average mood %s over %d sessions.",
		models.FormatAverageMood(stats.AverageMood), stats.SessionsCompleted))
	return nil
}

// LogMood walks the detailed entry form: a 1-10 score, an optional emotion
// pick from the fixed label set, and an optional free-text note. The entry
// replaces any earlier one for the same day, and a supportive tip keyed on
// the score is printed afterwards.
func (a *App) LogMood(ctx context.Context) error {
	if !a.requireSession() {
		return nil
	}

	raw, err := getSimpleText(a.reader, "How would you rate your mood? (1-10)", os.Stdout)
	if err != nil {
		return err
	}
	score, err := strconv.Atoi(raw)
	if err != nil {
		printlnFn("Please enter a number between 1 and 10.")
		return err
	}

	printlnFn("Which emotions apply? Enter numbers separated by spaces, or leave empty:")
	for i, label := range models.Emotions {
		printlnFn(fmt.Sprintf("  %d. %s", i+1, label))
	}
	picks, err := getSimpleText(a.reader, "", os.Stdout)
	if err != nil {
		return err
	}
	var emotions []string
	for _, tok := range strings.Fields(picks) {
		n, err := strconv.Atoi(tok)
		if err != nil || n < 1 || n > len(models.Emotions) {
			printlnFn("Skipping " + tok)
			continue
		}
		emotions = append(emotions, models.Emotions[n-1])
	}

	note, err := GetMultiline(a.reader, "Anything on your mind? (optional note)", os.Stdout)
	if err != nil {
		return err
	}

	entry, err := a.mood.UpsertDailyMood(ctx, a.userID(), a.clock.Now(), score, emotions, note)
	if err != nil {
		if errors.Is(err, common.ErrValidation) {
			printlnFn(err.Error())
		} else {
			a.log.Error(ctx, "mood entry failed", "error", err)
		}
		return err
	}

	printlnFn("Entry saved for " + entry.Date + ".")
	printlnFn(models.MoodTip(score))
	return nil
}

// Entries lists the ledger, newest first.
func (a *App) Entries(ctx context.Context) error {
	if !a.requireSession() {
		return nil
	}

	entries, err := a.mood.ListRecent(ctx, a.userID(), 0)
	if err != nil {
		a.log.Error(ctx, "entries load failed", "error", err)
		return err
	}
	if len(entries) == 0 {
		printlnFn("No mood entries yet. Try 'log' to record one.")
		return nil
	}

	for _, e := range entries {
		line := fmt.Sprintf("%s  %2d/10", e.Date, e.Mood)
		if len(e.Emotions) > 0 {
			line += "  [" + strings.Join(e.Emotions, ", ") + "]"
		}
		if e.Note != "" {
			line += "  " + e.Note
		}
		printlnFn(line)
	}
	return nil
}
