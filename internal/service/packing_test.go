package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jvieri/pack-buddy/internal/domain"
	"github.com/jvieri/pack-buddy/internal/repo"
	"github.com/jvieri/pack-buddy/internal/service"
)

// mockPackingRepo is a hand-written test double for repo.PackingRepo.
// Each method is a function field — set only the ones your test needs.
type mockPackingRepo struct {
	create     func(ctx context.Context, packing domain.Packing) (domain.Packing, error)
	getByID    func(ctx context.Context, id uuid.UUID) (domain.Packing, error)
	list       func(ctx context.Context) ([]domain.Packing, error)
	listSorted func(ctx context.Context) ([]domain.Packing, error)
	update     func(ctx context.Context, packing domain.Packing) (domain.Packing, error)
	delete     func(ctx context.Context, id uuid.UUID) error
}

func (m *mockPackingRepo) Create(ctx context.Context, p domain.Packing) (domain.Packing, error) {
	return m.create(ctx, p)
}
func (m *mockPackingRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Packing, error) {
	return m.getByID(ctx, id)
}
func (m *mockPackingRepo) List(ctx context.Context) ([]domain.Packing, error) {
	return m.list(ctx)
}
func (m *mockPackingRepo) ListSorted(ctx context.Context) ([]domain.Packing, error) {
	return m.listSorted(ctx)
}
func (m *mockPackingRepo) Update(ctx context.Context, p domain.Packing) (domain.Packing, error) {
	return m.update(ctx, p)
}
func (m *mockPackingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

// compile-time check: mockPackingRepo must satisfy repo.PackingRepo.
var _ repo.PackingRepo = (*mockPackingRepo)(nil)

// ---- helpers ---------------------------------------------------------------

func validPacking() domain.Packing {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	return domain.Packing{
		Title:     "Summer Trip",
		Location:  "Beach",
		StartDate: start,
		EndDate:   start.AddDate(0, 0, 14),
		Color:     domain.ColorBlue,
	}
}

// echoPackingRepo echoes whatever it receives back — useful for Create/Update
// tests that only care about validation logic, not what the store returns.
func echoPackingRepo() *mockPackingRepo {
	return &mockPackingRepo{
		create: func(_ context.Context, p domain.Packing) (domain.Packing, error) { return p, nil },
		update: func(_ context.Context, p domain.Packing) (domain.Packing, error) { return p, nil },
	}
}

// emptyChildRepos returns category and item mocks that report no children,
// for PackingService tests that never touch aggregation.
func emptyChildRepos() (*mockCategoryRepo, *mockItemRepo) {
	categories := &mockCategoryRepo{
		listByPacking: func(_ context.Context, _ uuid.UUID) ([]domain.Category, error) { return nil, nil },
	}
	items := &mockItemRepo{
		listByCategory: func(_ context.Context, _ uuid.UUID) ([]domain.Item, error) { return nil, nil },
	}
	return categories, items
}

func newPackingService(packings repo.PackingRepo) *service.PackingService {
	categories, items := emptyChildRepos()
	return service.NewPackingService(packings, categories, items)
}

// ---- Create ----------------------------------------------------------------

func TestPackingService_Create_Valid(t *testing.T) {
	svc := newPackingService(echoPackingRepo())

	got, err := svc.Create(context.Background(), validPacking())

	require.NoError(t, err)
	assert.Equal(t, "Summer Trip", got.Title)
	assert.Equal(t, domain.ColorBlue, got.Color)
}

func TestPackingService_Create_MissingTitle(t *testing.T) {
	svc := newPackingService(echoPackingRepo())

	p := validPacking()
	p.Title = "   " // whitespace-only should be treated as empty

	_, err := svc.Create(context.Background(), p)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPackingService_Create_MissingLocation(t *testing.T) {
	svc := newPackingService(echoPackingRepo())

	p := validPacking()
	p.Location = ""

	_, err := svc.Create(context.Background(), p)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPackingService_Create_MissingDates(t *testing.T) {
	svc := newPackingService(echoPackingRepo())

	p := validPacking()
	p.StartDate = time.Time{}

	_, err := svc.Create(context.Background(), p)
	assert.ErrorIs(t, err, domain.ErrValidation)

	p = validPacking()
	p.EndDate = time.Time{}

	_, err = svc.Create(context.Background(), p)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPackingService_Create_UnknownColor(t *testing.T) {
	svc := newPackingService(echoPackingRepo())

	p := validPacking()
	p.Color = "chartreuse"

	_, err := svc.Create(context.Background(), p)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPackingService_Create_DefaultsToRandomPaletteColor(t *testing.T) {
	svc := newPackingService(echoPackingRepo())

	p := validPacking()
	p.Color = ""

	got, err := svc.Create(context.Background(), p)

	require.NoError(t, err)
	assert.True(t, got.Color.Valid(), "unset color should default to a palette member")
}

func TestPackingService_Create_RepoError(t *testing.T) {
	repoErr := errors.New("disk full")
	r := &mockPackingRepo{
		create: func(_ context.Context, _ domain.Packing) (domain.Packing, error) {
			return domain.Packing{}, repoErr
		},
	}
	svc := newPackingService(r)

	_, err := svc.Create(context.Background(), validPacking())

	// Storage failures are reported to the caller, never fatal.
	assert.ErrorIs(t, err, repoErr)
}

// ---- List / Search ---------------------------------------------------------

func TestPackingService_List_NilBecomesEmptySlice(t *testing.T) {
	r := &mockPackingRepo{
		listSorted: func(_ context.Context) ([]domain.Packing, error) { return nil, nil },
	}
	svc := newPackingService(r)

	got, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestPackingService_Search(t *testing.T) {
	bali := validPacking()
	bali.Title = "Trip to Bali"
	tokyo := validPacking()
	tokyo.Title = "Tokyo Adventure"

	r := &mockPackingRepo{
		listSorted: func(_ context.Context) ([]domain.Packing, error) {
			return []domain.Packing{bali, tokyo}, nil
		},
	}
	svc := newPackingService(r)
	ctx := context.Background()

	// Case-insensitive substring match.
	got, err := svc.Search(ctx, "BALI")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Trip to Bali", got[0].Title)

	// Empty query resets to the full list.
	got, err = svc.Search(ctx, "")
	require.NoError(t, err)
	assert.Len(t, got, 2)

	// No match is an empty result, not an error.
	got, err = svc.Search(ctx, "antarctica")
	require.NoError(t, err)
	assert.Empty(t, got)
}

// ---- Stats -----------------------------------------------------------------

func TestPackingService_Stats_SumsAcrossCategories(t *testing.T) {
	packingID := uuid.New()
	catA, catB := uuid.New(), uuid.New()

	categories := &mockCategoryRepo{
		listByPacking: func(_ context.Context, id uuid.UUID) ([]domain.Category, error) {
			require.Equal(t, packingID, id)
			return []domain.Category{{ID: catA}, {ID: catB}}, nil
		},
	}
	items := &mockItemRepo{
		listByCategory: func(_ context.Context, id uuid.UUID) ([]domain.Item, error) {
			if id == catA {
				return []domain.Item{{Done: true}, {Done: false}, {Done: true}}, nil
			}
			return []domain.Item{{Done: false}}, nil
		},
	}
	svc := service.NewPackingService(&mockPackingRepo{}, categories, items)

	stats, err := svc.Stats(context.Background(), packingID)

	require.NoError(t, err)
	assert.Equal(t, domain.CompletionStats{Total: 4, Done: 2}, stats)
	assert.Equal(t, 0.5, stats.Percentage())
}

func TestPackingService_Stats_EmptyPacking(t *testing.T) {
	categories, items := emptyChildRepos()
	svc := service.NewPackingService(&mockPackingRepo{}, categories, items)

	stats, err := svc.Stats(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.Equal(t, domain.CompletionStats{}, stats)
	assert.Equal(t, 0.0, stats.Percentage(), "empty packing is 0%, not a division by zero")
}

// ---- Delete ----------------------------------------------------------------

func TestPackingService_Delete_NotFound(t *testing.T) {
	r := &mockPackingRepo{
		delete: func(_ context.Context, _ uuid.UUID) error { return domain.ErrNotFound },
	}
	svc := newPackingService(r)

	err := svc.Delete(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
