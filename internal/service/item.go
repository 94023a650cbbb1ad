package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jvieri/pack-buddy/internal/domain"
	"github.com/jvieri/pack-buddy/internal/repo"
)

// ItemService implements business logic for Item operations.
// It holds the category repo because creating an item requires verifying
// the parent category exists.
type ItemService struct {
	categories repo.CategoryRepo
	items      repo.ItemRepo
}

// NewItemService constructs an ItemService backed by the provided repos.
func NewItemService(categories repo.CategoryRepo, items repo.ItemRepo) *ItemService {
	return &ItemService{categories: categories, items: items}
}

// Create validates the item, verifies the parent category exists, then
// persists. New items always start not-done.
// Returns domain.ErrValidation if the title is missing, domain.ErrNotFound
// if the parent category does not exist.
func (s *ItemService) Create(ctx context.Context, item domain.Item) (domain.Item, error) {
	if _, err := s.categories.GetByID(ctx, item.CategoryID); err != nil {
		return domain.Item{}, fmt.Errorf("service.ItemService.Create: %w", err)
	}
	if err := validateItem(item); err != nil {
		return domain.Item{}, err
	}
	result, err := s.items.Create(ctx, item)
	if err != nil {
		return domain.Item{}, fmt.Errorf("service.ItemService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single item by ID.
func (s *ItemService) GetByID(ctx context.Context, id uuid.UUID) (domain.Item, error) {
	result, err := s.items.GetByID(ctx, id)
	if err != nil {
		return domain.Item{}, fmt.Errorf("service.ItemService.GetByID: %w", err)
	}
	return result, nil
}

// ListByCategory returns all items of a category ordered ascending by
// creation time. Always returns a non-nil slice so callers can safely
// range over it.
func (s *ItemService) ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]domain.Item, error) {
	items, err := s.items.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("service.ItemService.ListByCategory: %w", err)
	}
	if items == nil {
		return []domain.Item{}, nil
	}
	return items, nil
}

// UpdateTitle renames an item, keeping its done state.
// Returns domain.ErrValidation if the new title is empty.
func (s *ItemService) UpdateTitle(ctx context.Context, id uuid.UUID, title string) (domain.Item, error) {
	if strings.TrimSpace(title) == "" {
		return domain.Item{}, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		return domain.Item{}, fmt.Errorf("service.ItemService.UpdateTitle: %w", err)
	}
	item.Title = title
	result, err := s.items.Update(ctx, item)
	if err != nil {
		return domain.Item{}, fmt.Errorf("service.ItemService.UpdateTitle: %w", err)
	}
	return result, nil
}

// ToggleDone flips the item's done flag and persists it.
// Returns the updated item.
func (s *ItemService) ToggleDone(ctx context.Context, id uuid.UUID) (domain.Item, error) {
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		return domain.Item{}, fmt.Errorf("service.ItemService.ToggleDone: %w", err)
	}
	item.Done = !item.Done
	result, err := s.items.Update(ctx, item)
	if err != nil {
		return domain.Item{}, fmt.Errorf("service.ItemService.ToggleDone: %w", err)
	}
	return result, nil
}

// Delete removes an item by ID.
func (s *ItemService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.items.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.ItemService.Delete: %w", err)
	}
	return nil
}

// Counts returns the total and done item counts for a category, freshly
// computed from the item list.
func (s *ItemService) Counts(ctx context.Context, categoryID uuid.UUID) (domain.CompletionStats, error) {
	items, err := s.items.ListByCategory(ctx, categoryID)
	if err != nil {
		return domain.CompletionStats{}, fmt.Errorf("service.ItemService.Counts: %w", err)
	}
	return countItems(items), nil
}

// validateItem enforces the rules common to Create and Update.
// Title must be non-empty (whitespace-only is rejected).
func validateItem(item domain.Item) error {
	if strings.TrimSpace(item.Title) == "" {
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	return nil
}
