package cli

import (
	"bufio"
	"context"
	"database/sql"
	"os"

	"github.com/mindcare-app/mindcare/internal/chat"
	"github.com/mindcare-app/mindcare/internal/config"
	"github.com/mindcare-app/mindcare/internal/logging"
	"github.com/mindcare-app/mindcare/internal/models"
	"github.com/mindcare-app/mindcare/internal/repositories/kv"
	"github.com/mindcare-app/mindcare/internal/services"
)

// App wires the services behind the REPL commands and carries the active
// session between them.
type App struct {
	config    *config.Config
	log       logging.Logger
	db        *sql.DB
	auth      services.AuthService
	mood      services.MoodService
	dashboard services.DashboardService
	settings  services.SettingsService
	selector  *chat.Selector
	clock     services.Clock
	session   *models.Session
	reader    *bufio.Reader
}

// NewApp opens the local store and builds the full service graph.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := kv.Open(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing store", "error", err)
		return nil, err
	}

	deps := services.Deps{DB: db, Log: log, KeyPrefix: c.KeyPrefix}
	auth := services.NewAuthService(deps)
	mood := services.NewMoodService(deps)

	return &App{
		config:    c,
		log:       log,
		db:        db,
		auth:      auth,
		mood:      mood,
		dashboard: services.NewDashboardService(deps, c.LookbackDays),
		settings:  services.NewSettingsService(deps, auth, mood),
		selector:  chat.NewSelector(services.SystemRand(), c.TypingDelay),
		clock:     services.SystemClock(),
		reader:    bufio.NewReader(os.Stdin),
	}, nil
}

// Run restores a previously persisted session, then hands control to the
// REPL until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	session, err := a.auth.CurrentSession(ctx)
	if err != nil {
		a.log.Warn(ctx, "could not restore session", "error", err)
	}
	a.session = session

	printlnFn("MindCare CLI (type 'help' for commands)")
	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn() bool {
	return a.session != nil
}

func (a *App) status() string {
	if a.session == nil {
		return ""
	}
	return "(" + a.session.User.Name + ")"
}

// userID panics when no session is set; callers go through requireSession.
func (a *App) userID() string {
	return a.session.User.ID
}

// requireSession reports whether a session is active, printing a hint when
// it is not. Handlers for authenticated commands call this first.
func (a *App) requireSession() bool {
	if a.session == nil {
		printlnFn("Please log in first.")
		return false
	}
	return true
}
