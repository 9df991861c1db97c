package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cachinadev/turismo-app/internal/domain"
	"github.com/cachinadev/turismo-app/internal/service/ports/mocks"
)

func TestCatalogService_Create_AppliesDefaults(t *testing.T) {
	repo := mocks.NewMockPackageRepo(t)
	svc := NewCatalogService(repo, false)

	repo.EXPECT().SlugExists(mock.Anything, "islas-uros", "").Return(false, nil)
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	pkg, err := svc.Create(context.Background(), domain.CreatePackageInput{
		Title:       "  Islas Uros  ",
		Description: "Visita a las islas flotantes",
		Price:       150,
	})

	require.NoError(t, err)
	assert.Equal(t, "Islas Uros", pkg.Title)
	assert.Equal(t, "islas-uros", pkg.Slug)
	assert.Equal(t, domain.DefaultCity, pkg.City)
	assert.Equal(t, domain.DefaultCountry, pkg.Country)
	assert.Equal(t, domain.DefaultCategory, pkg.Category)
	assert.Equal(t, domain.DefaultCurrency, pkg.Currency)
	assert.Equal(t, 8, pkg.DurationHours)
	assert.Equal(t, []string{"es", "en"}, pkg.Languages)
	assert.True(t, pkg.Active)
	assert.NotEmpty(t, pkg.ID)
}

func TestCatalogService_Create_SlugCollisionProbing(t *testing.T) {
	repo := mocks.NewMockPackageRepo(t)
	svc := NewCatalogService(repo, false)

	repo.EXPECT().SlugExists(mock.Anything, "lago-titicaca", "").Return(true, nil)
	repo.EXPECT().SlugExists(mock.Anything, "lago-titicaca-2", "").Return(true, nil)
	repo.EXPECT().SlugExists(mock.Anything, "lago-titicaca-3", "").Return(false, nil)
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	pkg, err := svc.Create(context.Background(), domain.CreatePackageInput{
		Title:       "Lago Titicaca",
		Description: "Tour de dia completo",
		Price:       200,
	})

	require.NoError(t, err)
	assert.Equal(t, "lago-titicaca-3", pkg.Slug)
}

func TestCatalogService_Create_UnknownCity(t *testing.T) {
	t.Run("lenient substitutes the default", func(t *testing.T) {
		repo := mocks.NewMockPackageRepo(t)
		svc := NewCatalogService(repo, false)

		repo.EXPECT().SlugExists(mock.Anything, mock.Anything, "").Return(false, nil)
		repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

		pkg, err := svc.Create(context.Background(), domain.CreatePackageInput{
			Title:       "Tour misterioso",
			Description: "Destino desconocido",
			City:        "Narnia",
			Price:       100,
		})

		require.NoError(t, err)
		assert.Equal(t, domain.DefaultCity, pkg.City)
	})

	t.Run("strict rejects", func(t *testing.T) {
		repo := mocks.NewMockPackageRepo(t)
		svc := NewCatalogService(repo, true)

		_, err := svc.Create(context.Background(), domain.CreatePackageInput{
			Title:       "Tour misterioso",
			Description: "Destino desconocido",
			City:        "Narnia",
			Price:       100,
		})

		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestCatalogService_Create_NegativePrice(t *testing.T) {
	repo := mocks.NewMockPackageRepo(t)
	svc := NewCatalogService(repo, false)

	_, err := svc.Create(context.Background(), domain.CreatePackageInput{
		Title:       "Tour",
		Description: "desc",
		Price:       -5,
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCatalogService_Update_TitleChangeRecomputesSlug(t *testing.T) {
	repo := mocks.NewMockPackageRepo(t)
	svc := NewCatalogService(repo, false)

	existing := &domain.Package{
		ID:          "p1",
		Title:       "Islas Uros",
		Slug:        "islas-uros",
		Description: "desc",
		Price:       100,
		Currency:    "PEN",
	}

	repo.EXPECT().GetByID(mock.Anything, "p1").Return(existing, nil)
	repo.EXPECT().SlugExists(mock.Anything, "taquile-y-uros", "p1").Return(false, nil)
	repo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

	title := "Taquile y Uros"
	pkg, err := svc.Update(context.Background(), "p1", domain.UpdatePackageInput{Title: &title})

	require.NoError(t, err)
	assert.Equal(t, "Taquile y Uros", pkg.Title)
	assert.Equal(t, "taquile-y-uros", pkg.Slug)
}

func TestCatalogService_Update_MediaOnlyWhenSent(t *testing.T) {
	repo := mocks.NewMockPackageRepo(t)
	svc := NewCatalogService(repo, false)

	existing := &domain.Package{
		ID:    "p1",
		Title: "Tour",
		Media: []domain.MediaItem{{Type: domain.MediaImage, URL: "/uploads/a.jpg"}},
	}

	repo.EXPECT().GetByID(mock.Anything, "p1").Return(existing, nil)
	repo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

	price := 120.0
	pkg, err := svc.Update(context.Background(), "p1", domain.UpdatePackageInput{Price: &price})

	require.NoError(t, err)
	assert.Len(t, pkg.Media, 1) // untouched without HasMedia
	assert.Equal(t, 120.0, pkg.Price)
}

func TestCatalogService_List_DefaultsAndPromoFilter(t *testing.T) {
	repo := mocks.NewMockPackageRepo(t)
	svc := NewCatalogService(repo, false)
	svc.now = func() time.Time { return time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC) }

	promo := &domain.Package{ID: "a", IsPromo: true, PromoPercent: 10, Price: 100}
	plain := &domain.Package{ID: "b", Price: 100}

	var captured domain.PackageFilter
	repo.EXPECT().List(mock.Anything, mock.Anything).
		Run(func(_ context.Context, f domain.PackageFilter) { captured = f }).
		Return([]*domain.Package{promo, plain}, 2, nil)

	items, total, err := svc.List(context.Background(), domain.PackageFilter{Promo: "active", Sort: "bogus"})

	require.NoError(t, err)
	assert.Equal(t, 1, captured.Page)
	assert.Equal(t, 20, captured.Limit)
	assert.Equal(t, domain.SortRecent, captured.Sort)
	assert.Equal(t, 2, total)
	require.Len(t, items, 1)
	assert.Equal(t, "a", items[0].ID)
}

func TestCatalogService_GetBySlug_PreviewLiftsActiveFilter(t *testing.T) {
	repo := mocks.NewMockPackageRepo(t)
	svc := NewCatalogService(repo, false)

	pkg := &domain.Package{ID: "p1", Slug: "islas-uros", Active: false}
	repo.EXPECT().GetBySlug(mock.Anything, "islas-uros", false).Return(pkg, nil)

	got, err := svc.GetBySlug(context.Background(), "islas-uros", true)

	require.NoError(t, err)
	assert.Equal(t, "p1", got.ID)
}
