package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jvieri/pack-buddy/internal/domain"
	"github.com/jvieri/pack-buddy/internal/repo"
	"github.com/jvieri/pack-buddy/internal/service"
	"github.com/jvieri/pack-buddy/testutil"
)

// services wires the full service stack against a real, freshly migrated
// SQLite database in a temp dir.
type services struct {
	packings   *service.PackingService
	categories *service.CategoryService
	items      *service.ItemService
	export     *service.ExportService
}

func newServices(t *testing.T) services {
	t.Helper()
	db := testutil.NewDB(t)
	packings := repo.NewPackingRepo(db)
	categories := repo.NewCategoryRepo(db)
	items := repo.NewItemRepo(db)
	return services{
		packings:   service.NewPackingService(packings, categories, items),
		categories: service.NewCategoryService(packings, categories, items),
		items:      service.NewItemService(categories, items),
		export:     service.NewExportService(packings, categories, items),
	}
}

// TestScenario_TripToBali walks the full stack through the canonical flow:
// create a packing, add a category, add two items (one packed), and check
// the derived statistics at both levels.
func TestScenario_TripToBali(t *testing.T) {
	svcs := newServices(t)
	ctx := context.Background()

	start := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	packing, err := svcs.packings.Create(ctx, domain.Packing{
		Title:     "Trip to Bali",
		Location:  "Bali",
		StartDate: start,
		EndDate:   start.AddDate(0, 0, 7),
		Color:     domain.ColorBlue,
	})
	require.NoError(t, err)
	assert.Equal(t, 7, packing.Nights())

	category, err := svcs.categories.Create(ctx, domain.Category{
		PackingID: packing.ID,
		Title:     "Documents",
		Symbol:    "folder",
	})
	require.NoError(t, err)

	passport, err := svcs.items.Create(ctx, domain.Item{CategoryID: category.ID, Title: "Passport"})
	require.NoError(t, err)
	assert.False(t, passport.Done)

	visa, err := svcs.items.Create(ctx, domain.Item{CategoryID: category.ID, Title: "Visa"})
	require.NoError(t, err)

	_, err = svcs.items.ToggleDone(ctx, visa.ID)
	require.NoError(t, err)

	counts, err := svcs.items.Counts(ctx, category.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CompletionStats{Total: 2, Done: 1}, counts)

	stats, err := svcs.packings.Stats(ctx, packing.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CompletionStats{Total: 2, Done: 1}, stats)
	assert.Equal(t, 0.5, stats.Percentage())
}

// TestScenario_SeededPackingLifecycle seeds a packing from two templates,
// checks the seeded tree, searches for it, then deletes it and verifies the
// cascade emptied the store.
func TestScenario_SeededPackingLifecycle(t *testing.T) {
	svcs := newServices(t)
	ctx := context.Background()

	start := time.Date(2025, 12, 20, 0, 0, 0, 0, time.UTC)
	packing, err := svcs.packings.Create(ctx, domain.Packing{
		Title:     "Christmas in the Alps",
		Location:  "Mountain",
		StartDate: start,
		EndDate:   start.AddDate(0, 0, 10),
	})
	require.NoError(t, err)
	assert.True(t, packing.Color.Valid(), "omitted color defaults to a palette member")

	seeded, err := svcs.categories.SeedTemplates(ctx, packing.ID, []string{"Clothing", "Documents"})
	require.NoError(t, err)
	require.Len(t, seeded, 2)

	categories, err := svcs.categories.ListByPacking(ctx, packing.ID)
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Clothing", categories[0].Title)
	assert.Equal(t, "Documents", categories[1].Title)

	stats, err := svcs.packings.Stats(ctx, packing.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CompletionStats{Total: 18, Done: 0}, stats, "10 clothing + 8 document items, none packed")

	// Search finds the packing case-insensitively.
	found, err := svcs.packings.Search(ctx, "alps")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, packing.ID, found[0].ID)

	// The export carries one row per seeded item.
	rows, err := svcs.export.Export(ctx)
	require.NoError(t, err)
	assert.Len(t, rows, 18)

	// Deleting the packing cascades through both levels.
	require.NoError(t, svcs.packings.Delete(ctx, packing.ID))

	remaining, err := svcs.packings.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, remaining)

	rows, err = svcs.export.Export(ctx)
	require.NoError(t, err)
	assert.Empty(t, rows, "the cascade must leave no orphan rows behind")
}
