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

// CategoryRepo defines the persistence operations for Categories.
type CategoryRepo interface {
	// Create inserts a new category linked to its parent packing and returns
	// the persisted record. The parent must already exist — the foreign key
	// rejects orphan categories.
	Create(ctx context.Context, category domain.Category) (domain.Category, error)

	// GetByID retrieves a single category by its UUID primary key.
	// Returns domain.ErrNotFound if no category with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Category, error)

	// ListByPacking returns all categories of a packing ordered ascending by
	// creation time. A packing with no categories yields an empty slice.
	ListByPacking(ctx context.Context, packingID uuid.UUID) ([]domain.Category, error)

	// Update overwrites the mutable fields (title, symbol, open) of an
	// existing category. Returns domain.ErrNotFound if it does not exist.
	Update(ctx context.Context, category domain.Category) (domain.Category, error)

	// Delete removes a category and all of its items in a single transaction.
	// Returns domain.ErrNotFound if the category does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// sqliteCategoryRepo is the SQLite implementation of CategoryRepo.
type sqliteCategoryRepo struct {
	db *sql.DB
}

// NewCategoryRepo constructs a CategoryRepo backed by the provided database.
func NewCategoryRepo(db *sql.DB) CategoryRepo {
	return &sqliteCategoryRepo{db: db}
}

const categoryColumns = `id, packing_id, title, symbol, open, created_at`

func (r *sqliteCategoryRepo) Create(ctx context.Context, category domain.Category) (domain.Category, error) {
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	if category.CreatedAt.IsZero() {
		category.CreatedAt = time.Now().UTC()
	}

	const q = `
		INSERT INTO categories (` + categoryColumns + `)
		VALUES (?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, q,
		category.ID.String(),
		category.PackingID.String(),
		category.Title,
		category.Symbol,
		category.Open,
		category.CreatedAt.UnixNano(),
	)
	if err != nil {
		return domain.Category{}, fmt.Errorf("repo.CategoryRepo.Create: %w", err)
	}
	return category, nil
}

func (r *sqliteCategoryRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Category, error) {
	const q = `SELECT ` + categoryColumns + ` FROM categories WHERE id = ?`

	row := r.db.QueryRowContext(ctx, q, id.String())
	result, err := scanCategory(row)
	if err != nil {
		return domain.Category{}, fmt.Errorf("repo.CategoryRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *sqliteCategoryRepo) ListByPacking(ctx context.Context, packingID uuid.UUID) ([]domain.Category, error) {
	const q = `
		SELECT ` + categoryColumns + `
		FROM categories
		WHERE packing_id = ?
		ORDER BY created_at ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, q, packingID.String())
	if err != nil {
		return nil, fmt.Errorf("repo.CategoryRepo.ListByPacking: %w", err)
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.CategoryRepo.ListByPacking: scan: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.CategoryRepo.ListByPacking: rows: %w", err)
	}

	return categories, nil
}

func (r *sqliteCategoryRepo) Update(ctx context.Context, category domain.Category) (domain.Category, error) {
	const q = `
		UPDATE categories
		SET title  = ?,
		    symbol = ?,
		    open   = ?
		WHERE id = ?`

	res, err := r.db.ExecContext(ctx, q,
		category.Title,
		category.Symbol,
		category.Open,
		category.ID.String(),
	)
	if err != nil {
		return domain.Category{}, fmt.Errorf("repo.CategoryRepo.Update: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.Category{}, fmt.Errorf("repo.CategoryRepo.Update: %w", domain.ErrNotFound)
	}
	return r.GetByID(ctx, category.ID)
}

// Delete removes a category and its items in one transaction, items first
// so the delete stays valid under foreign key enforcement.
func (r *sqliteCategoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("repo.CategoryRepo.Delete: begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM items WHERE category_id = ?`, id.String()); err != nil {
		return fmt.Errorf("repo.CategoryRepo.Delete: items: %w", err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id.String())
	if err != nil {
		return fmt.Errorf("repo.CategoryRepo.Delete: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("repo.CategoryRepo.Delete: %w", domain.ErrNotFound)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("repo.CategoryRepo.Delete: commit: %w", err)
	}
	return nil
}

// scanCategory maps a single database row into a domain.Category.
func scanCategory(s scanner) (domain.Category, error) {
	var (
		c         domain.Category
		id        string
		packingID string
		createdAt int64
	)

	err := s.Scan(&id, &packingID, &c.Title, &c.Symbol, &c.Open, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Category{}, domain.ErrNotFound
		}
		return domain.Category{}, err
	}

	if c.ID, err = uuid.Parse(id); err != nil {
		return domain.Category{}, fmt.Errorf("parse id: %w", err)
	}
	if c.PackingID, err = uuid.Parse(packingID); err != nil {
		return domain.Category{}, fmt.Errorf("parse packing_id: %w", err)
	}
	c.CreatedAt = time.Unix(0, createdAt).UTC()

	return c, nil
}
