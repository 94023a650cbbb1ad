// Package repo contains all database access logic for the Pack Buddy store.
// Each entity has its own file with an interface and a SQLite implementation.
// No business logic lives here — only SQL and type mapping.
package repo

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // Pure-Go SQLite driver.

	"github.com/jvieri/pack-buddy/migrations"
)

// Open opens (or creates) the SQLite database at path, applies PRAGMAs,
// and brings the schema up to date with the embedded goose migrations.
//
// The connection pool is limited to one connection: SQLite only supports a
// single writer, and every persistence operation in this application is
// synchronous, so a second connection would only introduce SQLITE_BUSY
// contention. WAL mode still gives crash-safe writes.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	// Ensure the parent directory exists to avoid SQLITE_CANTOPEN errors.
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("repo.Open: create directory: %w", err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("repo.Open: open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("repo.Open: ping: %w", err)
	}

	if err := migrate(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// migrate applies all pending embedded migrations. Safe to run on every
// open — goose tracks the current version in the database itself.
func migrate(ctx context.Context, db *sql.DB) error {
	provider, err := goose.NewProvider(goose.DialectSQLite3, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("repo.Open: create goose provider: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("repo.Open: run migrations: %w", err)
	}
	return nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows, allowing the scan
// helpers to be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}
