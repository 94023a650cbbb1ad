// Package service contains the business logic for the Pack Buddy data core.
// Services validate inputs, enforce business rules, and orchestrate repo
// calls. No SQL lives here — services depend on repo interfaces, not
// implementations.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jvieri/pack-buddy/internal/domain"
	"github.com/jvieri/pack-buddy/internal/repo"
)

// PackingService implements business logic for Packing operations,
// including title search and packing-level completion statistics.
type PackingService struct {
	packings   repo.PackingRepo
	categories repo.CategoryRepo
	items      repo.ItemRepo
}

// NewPackingService constructs a PackingService backed by the provided repos.
// The category and item repos are needed for cross-entity aggregation.
func NewPackingService(packings repo.PackingRepo, categories repo.CategoryRepo, items repo.ItemRepo) *PackingService {
	return &PackingService{packings: packings, categories: categories, items: items}
}

// Create validates and persists a new packing.
// An unset color gets a random palette color, the same default a user gets
// when they never touch the color selector.
// Returns domain.ErrValidation if a required field is missing.
func (s *PackingService) Create(ctx context.Context, packing domain.Packing) (domain.Packing, error) {
	if packing.Color == "" {
		packing.Color = domain.RandomColor()
	}
	if err := validatePacking(packing); err != nil {
		return domain.Packing{}, err
	}
	result, err := s.packings.Create(ctx, packing)
	if err != nil {
		return domain.Packing{}, fmt.Errorf("service.PackingService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single packing by ID.
func (s *PackingService) GetByID(ctx context.Context, id uuid.UUID) (domain.Packing, error) {
	result, err := s.packings.GetByID(ctx, id)
	if err != nil {
		return domain.Packing{}, fmt.Errorf("service.PackingService.GetByID: %w", err)
	}
	return result, nil
}

// List returns all packings ordered ascending by creation time.
// Always returns a non-nil slice so callers can safely range over it.
func (s *PackingService) List(ctx context.Context) ([]domain.Packing, error) {
	packings, err := s.packings.ListSorted(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.PackingService.List: %w", err)
	}
	if packings == nil {
		return []domain.Packing{}, nil
	}
	return packings, nil
}

// Search returns the packings whose title contains query, case-insensitively.
// An empty query resets the filter and returns the full sorted list.
func (s *PackingService) Search(ctx context.Context, query string) ([]domain.Packing, error) {
	packings, err := s.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.PackingService.Search: %w", err)
	}
	if query == "" {
		return packings, nil
	}

	needle := strings.ToLower(query)
	matched := []domain.Packing{}
	for _, p := range packings {
		if strings.Contains(strings.ToLower(p.Title), needle) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

// Update validates and persists changes to an existing packing.
func (s *PackingService) Update(ctx context.Context, packing domain.Packing) (domain.Packing, error) {
	if err := validatePacking(packing); err != nil {
		return domain.Packing{}, err
	}
	result, err := s.packings.Update(ctx, packing)
	if err != nil {
		return domain.Packing{}, fmt.Errorf("service.PackingService.Update: %w", err)
	}
	return result, nil
}

// Delete removes a packing and, transitively, all of its categories and items.
func (s *PackingService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.packings.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.PackingService.Delete: %w", err)
	}
	return nil
}

// Stats computes the completion summary for a packing by summing the item
// counts of every category under it. The result is always derived from a
// fresh scan of the entity graph.
func (s *PackingService) Stats(ctx context.Context, packingID uuid.UUID) (domain.CompletionStats, error) {
	categories, err := s.categories.ListByPacking(ctx, packingID)
	if err != nil {
		return domain.CompletionStats{}, fmt.Errorf("service.PackingService.Stats: %w", err)
	}

	var stats domain.CompletionStats
	for _, c := range categories {
		items, err := s.items.ListByCategory(ctx, c.ID)
		if err != nil {
			return domain.CompletionStats{}, fmt.Errorf("service.PackingService.Stats: %w", err)
		}
		stats = stats.Add(countItems(items))
	}
	return stats, nil
}

// countItems tallies total and done counts for a slice of items.
func countItems(items []domain.Item) domain.CompletionStats {
	stats := domain.CompletionStats{Total: len(items)}
	for _, it := range items {
		if it.Done {
			stats.Done++
		}
	}
	return stats
}

// validatePacking enforces the rules common to both Create and Update.
//   - Title and location must be non-empty (whitespace-only is rejected).
//   - Start and end dates must be set. Their relative order is a UI-layer
//     concern and is checked where the dates are entered, not here.
//   - Color must be a palette member.
func validatePacking(packing domain.Packing) error {
	if strings.TrimSpace(packing.Title) == "" {
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if strings.TrimSpace(packing.Location) == "" {
		return fmt.Errorf("%w: location is required", domain.ErrValidation)
	}
	if packing.StartDate.IsZero() {
		return fmt.Errorf("%w: start date is required", domain.ErrValidation)
	}
	if packing.EndDate.IsZero() {
		return fmt.Errorf("%w: end date is required", domain.ErrValidation)
	}
	if !packing.Color.Valid() {
		return fmt.Errorf("%w: unknown color %q", domain.ErrValidation, packing.Color)
	}
	return nil
}
