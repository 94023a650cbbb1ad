// Package testutil provides shared helpers for tests that need a real store.
// The SQLite driver is pure Go, so these helpers never skip — every test
// gets its own freshly migrated database in a temporary directory.
package testutil

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/jvieri/pack-buddy/internal/repo"
)

// NewDB opens a fresh SQLite database in a per-test temporary directory and
// applies all embedded migrations. Each test gets its own file, giving full
// isolation with no cleanup SQL. The database is closed automatically when
// the test (and all its subtests) finish.
func NewDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "packbuddy_test.db")
	db, err := repo.Open(context.Background(), path)
	if err != nil {
		t.Fatalf("testutil.NewDB: open %q: %v", path, err)
	}

	t.Cleanup(func() { db.Close() })
	return db
}
