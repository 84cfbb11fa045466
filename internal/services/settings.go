package services

import (
	"context"
	"strings"

	"github.com/mindcare-app/mindcare/internal/common"
	"github.com/mindcare-app/mindcare/internal/models"
	"github.com/mindcare-app/mindcare/internal/repositories/kv"
)

// SettingsService covers the account-settings surface: notification
// preferences, invite links, the data export document, and full account
// deletion. Profile and password changes live on AuthService.
type SettingsService interface {
	// Prefs returns the owner's notification preferences, falling back to
	// the defaults when none are stored yet.
	Prefs(ctx context.Context, ownerID string) (models.NotificationPrefs, error)

	// SavePrefs stores the owner's notification preferences.
	SavePrefs(ctx context.Context, ownerID string, prefs models.NotificationPrefs) error

	// InviteLink builds a shareable invite URL with a fresh 8-character code.
	InviteLink() string

	// Export assembles the full export document for the active identity.
	Export(ctx context.Context) (*models.ExportDocument, error)

	// DeleteAccount wipes the entire local store. Requires a session.
	DeleteAccount(ctx context.Context) error
}

type settingsService struct {
	d    Deps
	k    keys
	auth AuthService
	mood MoodService
}

// NewSettingsService constructs a SettingsService collaborating with the
// given auth and mood services.
func NewSettingsService(d Deps, auth AuthService, mood MoodService) SettingsService {
	d = d.normalize()
	return &settingsService{d: d, k: keys{prefix: d.KeyPrefix}, auth: auth, mood: mood}
}

func (s *settingsService) Prefs(ctx context.Context, ownerID string) (models.NotificationPrefs, error) {
	repo := kv.NewSQLiteRepository(s.d.DB)

	prefs := models.DefaultNotificationPrefs()
	stored := models.NotificationPrefs{}
	ok, err := getJSON(ctx, repo, s.d.Log, s.k.prefs(ownerID), &stored)
	if err != nil {
		return models.NotificationPrefs{}, err
	}
	if ok {
		prefs = stored
	}
	return prefs, nil
}

func (s *settingsService) SavePrefs(ctx context.Context, ownerID string, prefs models.NotificationPrefs) error {
	return setJSON(ctx, kv.NewSQLiteRepository(s.d.DB), s.k.prefs(ownerID), prefs)
}

const inviteCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func (s *settingsService) InviteLink() string {
	var b strings.Builder
	for i := 0; i < 8; i++ {
		b.WriteByte(inviteCodeAlphabet[s.d.Rand.Intn(len(inviteCodeAlphabet))])
	}
	return "https://mindcare.app/invite/" + b.String()
}

func (s *settingsService) Export(ctx context.Context) (*models.ExportDocument, error) {
	session, err := s.auth.CurrentSession(ctx)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, common.ErrNotAuthenticated
	}

	entries, err := s.mood.Entries(ctx, session.User.ID)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []models.MoodEntry{}
	}

	prefs, err := s.Prefs(ctx, session.User.ID)
	if err != nil {
		return nil, err
	}

	return &models.ExportDocument{
		SchemaVersion: models.ExportSchemaVersion,
		Profile:       session.User,
		MoodEntries:   entries,
		Settings:      prefs,
		ExportDate:    s.d.Clock.Now(),
	}, nil
}

func (s *settingsService) DeleteAccount(ctx context.Context) error {
	session, err := s.auth.CurrentSession(ctx)
	if err != nil {
		return err
	}
	if session == nil {
		return common.ErrNotAuthenticated
	}

	s.d.Log.Warn(ctx, "deleting account and local store", "id", session.User.ID)
	return kv.NewSQLiteRepository(s.d.DB).Clear(ctx)
}
