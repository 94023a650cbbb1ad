package service

import (
	"context"
	"fmt"

	"github.com/jvieri/pack-buddy/internal/domain"
	"github.com/jvieri/pack-buddy/internal/repo"
)

// ExportService assembles a full flat export of all packings, categories,
// and items.
type ExportService struct {
	packings   repo.PackingRepo
	categories repo.CategoryRepo
	items      repo.ItemRepo
}

// NewExportService constructs an ExportService backed by the provided repos.
func NewExportService(packings repo.PackingRepo, categories repo.CategoryRepo, items repo.ItemRepo) *ExportService {
	return &ExportService{packings: packings, categories: categories, items: items}
}

// Export returns one ExportRow per item across all packings.
// Categories with no items contribute one row with empty item fields, and
// packings with no categories contribute one row with empty category and
// item fields, so every record in the store is represented.
func (s *ExportService) Export(ctx context.Context) ([]domain.ExportRow, error) {
	packings, err := s.packings.ListSorted(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	rows := []domain.ExportRow{}
	for _, p := range packings {
		base := domain.ExportRow{
			PackingID:       p.ID.String(),
			PackingTitle:    p.Title,
			PackingLocation: p.Location,
			StartDate:       p.StartDate.Format("2006-01-02"),
			EndDate:         p.EndDate.Format("2006-01-02"),
			Color:           string(p.Color),
		}

		categories, err := s.categories.ListByPacking(ctx, p.ID)
		if err != nil {
			return nil, fmt.Errorf("service.ExportService.Export: %w", err)
		}
		if len(categories) == 0 {
			rows = append(rows, base)
			continue
		}

		for _, c := range categories {
			row := base
			row.CategoryTitle = c.Title
			row.CategorySymbol = c.Symbol

			items, err := s.items.ListByCategory(ctx, c.ID)
			if err != nil {
				return nil, fmt.Errorf("service.ExportService.Export: %w", err)
			}
			if len(items) == 0 {
				rows = append(rows, row)
				continue
			}

			for _, it := range items {
				itemRow := row
				itemRow.ItemTitle = it.Title
				done := it.Done
				itemRow.ItemDone = &done
				rows = append(rows, itemRow)
			}
		}
	}

	return rows, nil
}
