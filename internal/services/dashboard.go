package services

import (
	"context"

	"github.com/mindcare-app/mindcare/internal/dbx"
	"github.com/mindcare-app/mindcare/internal/models"
	"github.com/mindcare-app/mindcare/internal/repositories/kv"
)

// DashboardService rebuilds and resets the derived aggregate snapshot.
//
// Load scans the lookback window from scratch; the quick check-in path in
// MoodService patches the same snapshot incrementally between loads. The two
// paths are independent and last write in time wins, which matches how the
// dashboard has always behaved: a load refreshes the numbers, a check-in
// afterwards moves them again.
type DashboardService interface {
	// Load rebuilds the stats from the last LookbackDays of quick-mood keys,
	// persists the snapshot, and returns it.
	Load(ctx context.Context, ownerID string) (*models.DashboardStats, error)

	// ResetAll irreversibly deletes everything the owner has stored: quick
	// moods, the ledger, the stats snapshot, and preferences.
	ResetAll(ctx context.Context, ownerID string) (*models.DashboardStats, error)
}

type dashboardService struct {
	d        Deps
	k        keys
	lookback int
}

// DefaultLookbackDays is the scan window for the stats rebuild.
const DefaultLookbackDays = 30

// NewDashboardService constructs a DashboardService. lookbackDays <= 0 means
// DefaultLookbackDays.
func NewDashboardService(d Deps, lookbackDays int) DashboardService {
	d = d.normalize()
	if lookbackDays <= 0 {
		lookbackDays = DefaultLookbackDays
	}
	return &dashboardService{d: d, k: keys{prefix: d.KeyPrefix}, lookback: lookbackDays}
}

func (s *dashboardService) Load(ctx context.Context, ownerID string) (*models.DashboardStats, error) {
	repo := kv.NewSQLiteRepository(s.d.DB)
	now := s.d.Clock.Now()

	days := 0
	total := 0
	minutes := 0

	for i := 0; i < s.lookback; i++ {
		day := models.Day(now.AddDate(0, 0, -i))
		raw, err := repo.Get(ctx, s.k.quickMood(ownerID, day))
		if err != nil {
			return nil, err
		}
		if raw == nil {
			continue
		}
		days++
		total += models.QuickMood(raw).Score()
		minutes += s.d.Rand.Intn(2) + 1
	}

	stats := models.DashboardStats{}
	if days > 0 {
		stats = models.DashboardStats{
			AverageMood:       models.Round1(float64(total) / float64(days)),
			SessionsCompleted: days,
			StreakDays:        days, // day count, not consecutive days; see models.DashboardStats
			TotalMinutes:      minutes,
		}
	}

	if err := setJSON(ctx, repo, s.k.stats(ownerID), stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (s *dashboardService) ResetAll(ctx context.Context, ownerID string) (*models.DashboardStats, error) {
	err := dbx.WithTx(ctx, s.d.DB, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := kv.NewSQLiteRepository(tx)

		if err := repo.DeleteByPrefix(ctx, s.k.quickMoodPrefix(ownerID)); err != nil {
			return err
		}
		for _, key := range []string{s.k.entries(ownerID), s.k.stats(ownerID), s.k.prefs(ownerID)} {
			if err := repo.Delete(ctx, key); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.d.Log.Info(ctx, "owner data reset", "owner", ownerID)
	return &models.DashboardStats{}, nil
}
