package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jvieri/pack-buddy/internal/domain"
)

// PackingRepo defines the persistence operations for Packings.
// The service layer depends on this interface, not the concrete SQLite
// implementation, which allows the service to be unit-tested with a mock.
type PackingRepo interface {
	// Create inserts a new packing and returns the persisted record (with
	// id and created_at populated when the caller left them zero).
	Create(ctx context.Context, packing domain.Packing) (domain.Packing, error)

	// GetByID retrieves a single packing by its UUID primary key.
	// Returns domain.ErrNotFound if no packing with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Packing, error)

	// List returns all packings in unspecified order (a full scan).
	// An empty store yields an empty slice, not an error.
	List(ctx context.Context) ([]domain.Packing, error)

	// ListSorted returns all packings ordered ascending by creation time.
	ListSorted(ctx context.Context) ([]domain.Packing, error)

	// Update overwrites the mutable fields of an existing packing and returns
	// the updated record. Returns domain.ErrNotFound if it does not exist.
	Update(ctx context.Context, packing domain.Packing) (domain.Packing, error)

	// Delete removes a packing and cascades to all of its categories and
	// their items, in a single transaction.
	// Returns domain.ErrNotFound if the packing does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// sqlitePackingRepo is the SQLite implementation of PackingRepo.
type sqlitePackingRepo struct {
	db *sql.DB
}

// NewPackingRepo constructs a PackingRepo backed by the provided database.
func NewPackingRepo(db *sql.DB) PackingRepo {
	return &sqlitePackingRepo{db: db}
}

const packingColumns = `id, title, location, start_date, end_date, color, created_at`

// Create inserts a new packing row and returns the full persisted record.
// Empty required fields are rejected by the table's CHECK constraints even
// if a caller bypasses service-level validation.
func (r *sqlitePackingRepo) Create(ctx context.Context, packing domain.Packing) (domain.Packing, error) {
	if packing.ID == uuid.Nil {
		packing.ID = uuid.New()
	}
	if packing.CreatedAt.IsZero() {
		packing.CreatedAt = time.Now().UTC()
	}

	const q = `
		INSERT INTO packings (` + packingColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, q,
		packing.ID.String(),
		packing.Title,
		packing.Location,
		packing.StartDate.UnixNano(),
		packing.EndDate.UnixNano(),
		string(packing.Color),
		packing.CreatedAt.UnixNano(),
	)
	if err != nil {
		return domain.Packing{}, fmt.Errorf("repo.PackingRepo.Create: %w", err)
	}
	return packing, nil
}

// GetByID retrieves a packing by primary key.
func (r *sqlitePackingRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Packing, error) {
	const q = `SELECT ` + packingColumns + ` FROM packings WHERE id = ?`

	row := r.db.QueryRowContext(ctx, q, id.String())
	result, err := scanPacking(row)
	if err != nil {
		return domain.Packing{}, fmt.Errorf("repo.PackingRepo.GetByID: %w", err)
	}
	return result, nil
}

// List returns all packings as stored, with no ordering guarantee.
func (r *sqlitePackingRepo) List(ctx context.Context) ([]domain.Packing, error) {
	return r.list(ctx, `SELECT `+packingColumns+` FROM packings`)
}

// ListSorted returns all packings ordered ascending by creation time.
// Ties are broken by id so the order is stable across calls.
func (r *sqlitePackingRepo) ListSorted(ctx context.Context) ([]domain.Packing, error) {
	return r.list(ctx, `SELECT `+packingColumns+` FROM packings ORDER BY created_at ASC, id ASC`)
}

func (r *sqlitePackingRepo) list(ctx context.Context, q string) ([]domain.Packing, error) {
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.PackingRepo.List: %w", err)
	}
	defer rows.Close()

	var packings []domain.Packing
	for rows.Next() {
		p, err := scanPacking(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.PackingRepo.List: scan: %w", err)
		}
		packings = append(packings, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.PackingRepo.List: rows: %w", err)
	}

	return packings, nil
}

// Update overwrites the mutable fields of a packing and returns the updated record.
func (r *sqlitePackingRepo) Update(ctx context.Context, packing domain.Packing) (domain.Packing, error) {
	const q = `
		UPDATE packings
		SET title      = ?,
		    location   = ?,
		    start_date = ?,
		    end_date   = ?,
		    color      = ?
		WHERE id = ?`

	res, err := r.db.ExecContext(ctx, q,
		packing.Title,
		packing.Location,
		packing.StartDate.UnixNano(),
		packing.EndDate.UnixNano(),
		string(packing.Color),
		packing.ID.String(),
	)
	if err != nil {
		return domain.Packing{}, fmt.Errorf("repo.PackingRepo.Update: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.Packing{}, fmt.Errorf("repo.PackingRepo.Update: %w", domain.ErrNotFound)
	}
	return r.GetByID(ctx, packing.ID)
}

// Delete removes a packing and all of its descendants in one transaction:
// items of its categories first, then the categories, then the packing.
// The explicit ordering keeps the delete valid under foreign key enforcement.
func (r *sqlitePackingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("repo.PackingRepo.Delete: begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM items WHERE category_id IN (SELECT id FROM categories WHERE packing_id = ?)`,
		id.String(),
	); err != nil {
		return fmt.Errorf("repo.PackingRepo.Delete: items: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM categories WHERE packing_id = ?`, id.String(),
	); err != nil {
		return fmt.Errorf("repo.PackingRepo.Delete: categories: %w", err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM packings WHERE id = ?`, id.String())
	if err != nil {
		return fmt.Errorf("repo.PackingRepo.Delete: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("repo.PackingRepo.Delete: %w", domain.ErrNotFound)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("repo.PackingRepo.Delete: commit: %w", err)
	}
	return nil
}

// scanPacking maps a single database row into a domain.Packing.
// Timestamps are stored as Unix nanoseconds and converted back to UTC.
func scanPacking(s scanner) (domain.Packing, error) {
	var (
		p         domain.Packing
		id        string
		color     string
		startDate int64
		endDate   int64
		createdAt int64
	)

	err := s.Scan(&id, &p.Title, &p.Location, &startDate, &endDate, &color, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Packing{}, domain.ErrNotFound
		}
		return domain.Packing{}, err
	}

	p.ID, err = uuid.Parse(id)
	if err != nil {
		return domain.Packing{}, fmt.Errorf("parse id: %w", err)
	}
	p.Color = domain.Color(color)
	p.StartDate = time.Unix(0, startDate).UTC()
	p.EndDate = time.Unix(0, endDate).UTC()
	p.CreatedAt = time.Unix(0, createdAt).UTC()

	return p, nil
}
