package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/jvieri/pack-buddy/internal/domain"
	"github.com/jvieri/pack-buddy/internal/repo"
)

// CategoryService implements business logic for Category operations.
// It holds the packing repo as well because creating a category requires
// verifying the parent packing exists, and the item repo for template
// seeding and per-category counts.
type CategoryService struct {
	packings   repo.PackingRepo
	categories repo.CategoryRepo
	items      repo.ItemRepo
}

// NewCategoryService constructs a CategoryService backed by the provided repos.
func NewCategoryService(packings repo.PackingRepo, categories repo.CategoryRepo, items repo.ItemRepo) *CategoryService {
	return &CategoryService{packings: packings, categories: categories, items: items}
}

// Create validates the category, verifies the parent packing exists, then
// persists. Returns domain.ErrValidation if title or symbol is missing,
// domain.ErrNotFound if the parent packing does not exist.
func (s *CategoryService) Create(ctx context.Context, category domain.Category) (domain.Category, error) {
	if _, err := s.packings.GetByID(ctx, category.PackingID); err != nil {
		return domain.Category{}, fmt.Errorf("service.CategoryService.Create: %w", err)
	}
	if err := validateCategory(category); err != nil {
		return domain.Category{}, err
	}
	result, err := s.categories.Create(ctx, category)
	if err != nil {
		return domain.Category{}, fmt.Errorf("service.CategoryService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single category by ID.
func (s *CategoryService) GetByID(ctx context.Context, id uuid.UUID) (domain.Category, error) {
	result, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return domain.Category{}, fmt.Errorf("service.CategoryService.GetByID: %w", err)
	}
	return result, nil
}

// ListByPacking returns all categories of a packing ordered ascending by
// creation time. Always returns a non-nil slice so callers can safely
// range over it.
func (s *CategoryService) ListByPacking(ctx context.Context, packingID uuid.UUID) ([]domain.Category, error) {
	categories, err := s.categories.ListByPacking(ctx, packingID)
	if err != nil {
		return nil, fmt.Errorf("service.CategoryService.ListByPacking: %w", err)
	}
	if categories == nil {
		return []domain.Category{}, nil
	}
	return categories, nil
}

// Update validates and persists changes to an existing category.
func (s *CategoryService) Update(ctx context.Context, category domain.Category) (domain.Category, error) {
	if err := validateCategory(category); err != nil {
		return domain.Category{}, err
	}
	result, err := s.categories.Update(ctx, category)
	if err != nil {
		return domain.Category{}, fmt.Errorf("service.CategoryService.Update: %w", err)
	}
	return result, nil
}

// ToggleOpen flips the category's expanded flag and persists it.
// Returns the updated category.
func (s *CategoryService) ToggleOpen(ctx context.Context, id uuid.UUID) (domain.Category, error) {
	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return domain.Category{}, fmt.Errorf("service.CategoryService.ToggleOpen: %w", err)
	}
	category.Open = !category.Open
	result, err := s.categories.Update(ctx, category)
	if err != nil {
		return domain.Category{}, fmt.Errorf("service.CategoryService.ToggleOpen: %w", err)
	}
	return result, nil
}

// Delete removes a category and all of its items.
func (s *CategoryService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.categories.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.CategoryService.Delete: %w", err)
	}
	return nil
}

// SeedTemplates bulk-creates one category per named built-in template under
// the given packing, each populated with the template's fixed starter items
// and collapsed by default. Unknown template names are skipped with a log
// line — they are not an error and create nothing.
//
// Returns the created categories in the order the names were given.
func (s *CategoryService) SeedTemplates(ctx context.Context, packingID uuid.UUID, names []string) ([]domain.Category, error) {
	if _, err := s.packings.GetByID(ctx, packingID); err != nil {
		return nil, fmt.Errorf("service.CategoryService.SeedTemplates: %w", err)
	}

	created := []domain.Category{}
	for _, name := range names {
		template, ok := domain.TemplateByTitle(name)
		if !ok {
			slog.Warn("template not found", "name", name)
			continue
		}

		category, err := s.categories.Create(ctx, domain.Category{
			PackingID: packingID,
			Title:     template.Title,
			Symbol:    template.Icon,
			Open:      false,
		})
		if err != nil {
			return created, fmt.Errorf("service.CategoryService.SeedTemplates: %w", err)
		}

		for _, title := range domain.TemplateItems(template.Title) {
			if _, err := s.items.Create(ctx, domain.Item{
				CategoryID: category.ID,
				Title:      title,
				Done:       false,
			}); err != nil {
				return created, fmt.Errorf("service.CategoryService.SeedTemplates: %w", err)
			}
		}
		created = append(created, category)
	}
	return created, nil
}

// validateCategory enforces the rules common to both Create and Update.
// Title and symbol must be non-empty (whitespace-only is rejected).
func validateCategory(category domain.Category) error {
	if strings.TrimSpace(category.Title) == "" {
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if strings.TrimSpace(category.Symbol) == "" {
		return fmt.Errorf("%w: symbol is required", domain.ErrValidation)
	}
	return nil
}
