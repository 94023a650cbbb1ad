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

// ItemRepo defines the persistence operations for Items.
type ItemRepo interface {
	// Create inserts a new item linked to its parent category and returns
	// the persisted record. The parent must already exist.
	Create(ctx context.Context, item domain.Item) (domain.Item, error)

	// GetByID retrieves a single item by its UUID primary key.
	// Returns domain.ErrNotFound if no item with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Item, error)

	// ListByCategory returns all items of a category ordered ascending by
	// creation time. A category with no items yields an empty slice.
	ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]domain.Item, error)

	// Update overwrites the mutable fields (title, done) of an existing item.
	// Returns domain.ErrNotFound if it does not exist.
	Update(ctx context.Context, item domain.Item) (domain.Item, error)

	// Delete removes an item by ID.
	// Returns domain.ErrNotFound if the item does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// sqliteItemRepo is the SQLite implementation of ItemRepo.
type sqliteItemRepo struct {
	db *sql.DB
}

// NewItemRepo constructs an ItemRepo backed by the provided database.
func NewItemRepo(db *sql.DB) ItemRepo {
	return &sqliteItemRepo{db: db}
}

const itemColumns = `id, category_id, title, done, created_at`

func (r *sqliteItemRepo) Create(ctx context.Context, item domain.Item) (domain.Item, error) {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now().UTC()
	}

	const q = `
		INSERT INTO items (` + itemColumns + `)
		VALUES (?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, q,
		item.ID.String(),
		item.CategoryID.String(),
		item.Title,
		item.Done,
		item.CreatedAt.UnixNano(),
	)
	if err != nil {
		return domain.Item{}, fmt.Errorf("repo.ItemRepo.Create: %w", err)
	}
	return item, nil
}

func (r *sqliteItemRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Item, error) {
	const q = `SELECT ` + itemColumns + ` FROM items WHERE id = ?`

	row := r.db.QueryRowContext(ctx, q, id.String())
	result, err := scanItem(row)
	if err != nil {
		return domain.Item{}, fmt.Errorf("repo.ItemRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *sqliteItemRepo) ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]domain.Item, error) {
	const q = `
		SELECT ` + itemColumns + `
		FROM items
		WHERE category_id = ?
		ORDER BY created_at ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, q, categoryID.String())
	if err != nil {
		return nil, fmt.Errorf("repo.ItemRepo.ListByCategory: %w", err)
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ItemRepo.ListByCategory: scan: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ItemRepo.ListByCategory: rows: %w", err)
	}

	return items, nil
}

func (r *sqliteItemRepo) Update(ctx context.Context, item domain.Item) (domain.Item, error) {
	const q = `
		UPDATE items
		SET title = ?,
		    done  = ?
		WHERE id = ?`

	res, err := r.db.ExecContext(ctx, q, item.Title, item.Done, item.ID.String())
	if err != nil {
		return domain.Item{}, fmt.Errorf("repo.ItemRepo.Update: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.Item{}, fmt.Errorf("repo.ItemRepo.Update: %w", domain.ErrNotFound)
	}
	return r.GetByID(ctx, item.ID)
}

func (r *sqliteItemRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id.String())
	if err != nil {
		return fmt.Errorf("repo.ItemRepo.Delete: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("repo.ItemRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanItem maps a single database row into a domain.Item.
func scanItem(s scanner) (domain.Item, error) {
	var (
		it         domain.Item
		id         string
		categoryID string
		createdAt  int64
	)

	err := s.Scan(&id, &categoryID, &it.Title, &it.Done, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Item{}, domain.ErrNotFound
		}
		return domain.Item{}, err
	}

	if it.ID, err = uuid.Parse(id); err != nil {
		return domain.Item{}, fmt.Errorf("parse id: %w", err)
	}
	if it.CategoryID, err = uuid.Parse(categoryID); err != nil {
		return domain.Item{}, fmt.Errorf("parse category_id: %w", err)
	}
	it.CreatedAt = time.Unix(0, createdAt).UTC()

	return it, nil
}
