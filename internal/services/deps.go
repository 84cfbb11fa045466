// Package services contains the application services of the MindCare client:
// identity/session management, the mood ledger, the dashboard aggregator,
// and account settings. Services read-modify-write the key/value store
// synchronously; there is no server and no background work.
package services

import (
	"database/sql"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/mindcare-app/mindcare/internal/logging"
)

// Clock supplies the current time. Injected so date-keyed entries and
// timestamps are reproducible under test.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock { return systemClock{} }

// Rand supplies small random integers (per-session minute increments, canned
// reply choice, invite codes). Injected for the same reason as Clock.
type Rand interface {
	Intn(n int) int
}

type systemRand struct {
	r *rand.Rand
}

func (s *systemRand) Intn(n int) int { return s.r.Intn(n) }

// SystemRand returns a time-seeded Rand.
func SystemRand() Rand {
	return &systemRand{r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// IDSource mints opaque identifiers for new identities.
type IDSource func() string

// Deps bundles the collaborators every service needs. Zero fields are filled
// with production defaults by normalize, so tests only override the seams
// they care about.
type Deps struct {
	DB          *sql.DB
	Log         logging.Logger
	Clock       Clock
	Rand        Rand
	IDs         IDSource
	KeyPrefix   string
	TokenSecret []byte
}

// DefaultKeyPrefix scopes the application-level keys (identity collection and
// session keys) in the store.
const DefaultKeyPrefix = "mindcare"

func (d Deps) normalize() Deps {
	if d.Log == nil {
		d.Log = logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	}
	if d.Clock == nil {
		d.Clock = SystemClock()
	}
	if d.Rand == nil {
		d.Rand = SystemRand()
	}
	if d.IDs == nil {
		d.IDs = uuid.NewString
	}
	if d.KeyPrefix == "" {
		d.KeyPrefix = DefaultKeyPrefix
	}
	if len(d.TokenSecret) == 0 {
		// Demo secret: the token gates nothing, it only fills the session key.
		d.TokenSecret = []byte("mindcare-local-session")
	}
	return d
}
