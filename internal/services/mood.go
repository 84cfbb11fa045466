package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/mindcare-app/mindcare/internal/common"
	"github.com/mindcare-app/mindcare/internal/dbx"
	"github.com/mindcare-app/mindcare/internal/models"
	"github.com/mindcare-app/mindcare/internal/repositories/kv"
)

// MoodService is the mood ledger: at most one entry per (owner, day),
// plus the quick-check shortcut and its aggregate bookkeeping.
//
// The quick check deliberately splits its write semantics: the displayed
// per-day category is last-write-wins, while the aggregate counters only
// move on the first check-in of a day. Re-checking the same day changes
// what the dashboard shows for "today" without double-counting the session.
type MoodService interface {
	// UpsertDailyMood replaces the entry for (owner, date) wholesale and
	// returns the stored entry. Partial updates must read-modify-write.
	UpsertDailyMood(ctx context.Context, ownerID string, date time.Time, score int, emotions []string, note string) (*models.MoodEntry, error)

	// QuickMoodUpdate records the single-tap category for today and, only on
	// the first check-in of the day, patches the aggregate snapshot. Returns
	// the aggregates as they stand after the call.
	QuickMoodUpdate(ctx context.Context, ownerID string, category models.QuickMood) (*models.DashboardStats, error)

	// TodayQuickMood returns today's displayed category, if any.
	TodayQuickMood(ctx context.Context, ownerID string) (models.QuickMood, bool, error)

	// Entries returns the full ledger for the owner.
	Entries(ctx context.Context, ownerID string) ([]models.MoodEntry, error)

	// ListRecent returns up to limit entries, newest date first.
	ListRecent(ctx context.Context, ownerID string, limit int) ([]models.MoodEntry, error)

	// AverageOf returns the mean ledger score rounded to one decimal.
	// ok is false when the ledger is empty.
	AverageOf(ctx context.Context, ownerID string) (avg float64, ok bool, err error)
}

type moodService struct {
	d Deps
	k keys
}

// NewMoodService constructs a MoodService over the given dependencies.
func NewMoodService(d Deps) MoodService {
	d = d.normalize()
	return &moodService{d: d, k: keys{prefix: d.KeyPrefix}}
}

func (s *moodService) loadEntries(ctx context.Context, repo kv.Repository, ownerID string) ([]models.MoodEntry, error) {
	var entries []models.MoodEntry
	if _, err := getJSON(ctx, repo, s.d.Log, s.k.entries(ownerID), &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *moodService) UpsertDailyMood(ctx context.Context, ownerID string, date time.Time, score int, emotions []string, note string) (*models.MoodEntry, error) {
	if score < 1 || score > 10 {
		return nil, fmt.Errorf("%w: mood score must be between 1 and 10", common.ErrValidation)
	}

	entry := models.MoodEntry{
		Date:     models.Day(date),
		Mood:     score,
		Note:     note,
		Emotions: emotions,
	}

	err := dbx.WithTx(ctx, s.d.DB, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := kv.NewSQLiteRepository(tx)

		entries, err := s.loadEntries(ctx, repo, ownerID)
		if err != nil {
			return err
		}

		// Replace, not merge: drop any entry for the same day.
		kept := entries[:0]
		for _, e := range entries {
			if e.Date != entry.Date {
				kept = append(kept, e)
			}
		}
		kept = append(kept, entry)

		return setJSON(ctx, repo, s.k.entries(ownerID), kept)
	})
	if err != nil {
		return nil, err
	}

	s.d.Log.Info(ctx, "mood entry stored", "owner", ownerID, "date", entry.Date)
	return &entry, nil
}

func (s *moodService) QuickMoodUpdate(ctx context.Context, ownerID string, category models.QuickMood) (*models.DashboardStats, error) {
	day := models.Day(s.d.Clock.Now())
	key := s.k.quickMood(ownerID, day)

	var stats models.DashboardStats
	err := dbx.WithTx(ctx, s.d.DB, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := kv.NewSQLiteRepository(tx)

		existing, err := repo.Get(ctx, key)
		if err != nil {
			return err
		}
		firstToday := existing == nil

		// Displayed category: last write wins.
		if err := repo.Set(ctx, key, []byte(category)); err != nil {
			return err
		}

		if _, err := getJSON(ctx, repo, s.d.Log, s.k.stats(ownerID), &stats); err != nil {
			return err
		}
		if !firstToday {
			return nil
		}

		// Aggregates: first write of the day wins.
		score := category.Score()
		newCount := stats.SessionsCompleted + 1

		avg := float64(score)
		if newCount > 1 {
			avg = (stats.AverageMood*float64(stats.SessionsCompleted) + float64(score)) / float64(newCount)
		}

		stats = models.DashboardStats{
			AverageMood:       models.Round1(avg),
			SessionsCompleted: newCount,
			StreakDays:        stats.StreakDays + 1,
			TotalMinutes:      stats.TotalMinutes + s.d.Rand.Intn(2) + 1,
		}
		return setJSON(ctx, repo, s.k.stats(ownerID), stats)
	})
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (s *moodService) TodayQuickMood(ctx context.Context, ownerID string) (models.QuickMood, bool, error) {
	repo := kv.NewSQLiteRepository(s.d.DB)
	raw, err := repo.Get(ctx, s.k.quickMood(ownerID, models.Day(s.d.Clock.Now())))
	if err != nil || raw == nil {
		return "", false, err
	}
	return models.QuickMood(raw), true, nil
}

func (s *moodService) Entries(ctx context.Context, ownerID string) ([]models.MoodEntry, error) {
	return s.loadEntries(ctx, kv.NewSQLiteRepository(s.d.DB), ownerID)
}

func (s *moodService) ListRecent(ctx context.Context, ownerID string, limit int) ([]models.MoodEntry, error) {
	entries, err := s.Entries(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	// Date strings are ISO-ordered, lexical sort is chronological.
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date > entries[j].Date
	})

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

func (s *moodService) AverageOf(ctx context.Context, ownerID string) (float64, bool, error) {
	entries, err := s.Entries(ctx, ownerID)
	if err != nil {
		return 0, false, err
	}
	if len(entries) == 0 {
		return 0, false, nil
	}

	sum := 0
	for _, e := range entries {
		sum += e.Mood
	}
	return models.Round1(float64(sum) / float64(len(entries))), true, nil
}
