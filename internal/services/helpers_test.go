package services

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/mindcare-app/mindcare/internal/repositories/kv"
)

// ---- deterministic seams ----

// fakeClock is a settable Clock so tests can move across calendar days.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) advanceDays(n int) { c.t = c.t.AddDate(0, 0, n) }

// zeroRand always returns 0, so every "1–2 minute" increment is exactly 1.
type zeroRand struct{}

func (zeroRand) Intn(int) int { return 0 }

// seqIDs mints u-1, u-2, ... deterministically.
func seqIDs() IDSource {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("u-%d", n)
	}
}

// ---- fixtures ----

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE kv (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`)
	require.NoError(t, err)
	return db
}

func testDeps(t *testing.T) (Deps, *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: time.Date(2025, 6, 15, 10, 0, 0, 0, time.Local)}
	return Deps{
		DB:    setupDB(t),
		Clock: clock,
		Rand:  zeroRand{},
		IDs:   seqIDs(),
	}, clock
}

func putRaw(t *testing.T, db *sql.DB, key string, value []byte) {
	t.Helper()
	require.NoError(t, kv.NewSQLiteRepository(db).Set(context.Background(), key, value))
}

func getRaw(t *testing.T, db *sql.DB, key string) []byte {
	t.Helper()
	v, err := kv.NewSQLiteRepository(db).Get(context.Background(), key)
	require.NoError(t, err)
	return v
}
