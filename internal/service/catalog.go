package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"github.com/cachinadev/turismo-app/internal/domain"
	"github.com/cachinadev/turismo-app/internal/pricing"
	"github.com/cachinadev/turismo-app/internal/service/ports"
)

const (
	defaultDurationHours = 8
	defaultLimit         = 20
	maxLimit             = 100

	// slugRetryBudget bounds the collision probe; the unique index backstops
	// the probe race anyway.
	slugRetryBudget = 50

	fallbackSlug = "paquete"
)

var defaultLanguages = []string{"es", "en"}

type CatalogService struct {
	repo   ports.PackageRepo
	strict bool
	now    func() time.Time
}

// NewCatalogService builds the catalog service. strictEnums selects the
// validation policy for unknown city/currency values: reject when true,
// substitute the defaults when false (the shipped product behavior).
func NewCatalogService(repo ports.PackageRepo, strictEnums bool) *CatalogService {
	return &CatalogService{
		repo:   repo,
		strict: strictEnums,
		now:    time.Now,
	}
}

func (s *CatalogService) normalizeCity(city string) (string, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return domain.DefaultCity, nil
	}
	if !domain.IsValidCity(city) {
		if s.strict {
			return "", fmt.Errorf("%w: unknown city %q", domain.ErrValidation, city)
		}
		return domain.DefaultCity, nil
	}
	return city, nil
}

func (s *CatalogService) normalizeCurrency(currency string) (string, error) {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		return domain.DefaultCurrency, nil
	}
	if !domain.IsValidCurrency(currency) {
		if s.strict {
			return "", fmt.Errorf("%w: unknown currency %q", domain.ErrValidation, currency)
		}
		return domain.DefaultCurrency, nil
	}
	return currency, nil
}

func (s *CatalogService) Create(ctx context.Context, input domain.CreatePackageInput) (*domain.Package, error) {
	title := strings.TrimSpace(input.Title)
	if len(title) < 2 {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	description := strings.TrimSpace(input.Description)
	if description == "" {
		return nil, fmt.Errorf("%w: description is required", domain.ErrValidation)
	}
	if input.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
	}

	city, err := s.normalizeCity(input.City)
	if err != nil {
		return nil, err
	}
	currency, err := s.normalizeCurrency(input.Currency)
	if err != nil {
		return nil, err
	}

	duration := input.DurationHours
	if duration == 0 {
		duration = defaultDurationHours
	}
	if duration < 1 || duration > 240 {
		return nil, fmt.Errorf("%w: durationHours must be within 1..240", domain.ErrValidation)
	}

	country := strings.TrimSpace(input.Country)
	if country == "" {
		country = domain.DefaultCountry
	}
	category := strings.TrimSpace(input.Category)
	if category == "" {
		category = domain.DefaultCategory
	}

	languages := domain.NormalizeLanguages(input.Languages)
	if len(languages) == 0 {
		languages = append([]string(nil), defaultLanguages...)
	}

	active := true
	if input.Active != nil {
		active = *input.Active
	}

	now := s.now().UTC()
	p := &domain.Package{
		ID:            uuid.New().String(),
		Title:         title,
		Description:   description,
		City:          city,
		Country:       country,
		Category:      category,
		Price:         input.Price,
		Currency:      currency,
		DurationHours: duration,
		Languages:     languages,
		Highlights:    domain.CleanStringList(input.Highlights),
		Includes:      domain.CleanStringList(input.Includes),
		Excludes:      domain.CleanStringList(input.Excludes),
		Media:         domain.NormalizeMedia(input.Media),
		Location:      domain.NormalizeLocation(input.Location),
		IsPromo:       input.IsPromo,
		PromoPercent:  input.PromoPercent,
		PromoPrice:    input.PromoPrice,
		PromoStartAt:  input.PromoStartAt,
		PromoEndAt:    input.PromoEndAt,
		Active:        active,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	p.NormalizePromo()

	p.Slug, err = s.uniqueSlug(ctx, title, "")
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create package: %w", err)
	}

	return p, nil
}

func (s *CatalogService) Update(ctx context.Context, id string, input domain.UpdatePackageInput) (*domain.Package, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load package: %w", err)
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if len(title) < 2 {
			return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
		}
		if title != p.Title {
			p.Slug, err = s.uniqueSlug(ctx, title, p.ID)
			if err != nil {
				return nil, err
			}
		}
		p.Title = title
	}
	if input.Description != nil {
		description := strings.TrimSpace(*input.Description)
		if description == "" {
			return nil, fmt.Errorf("%w: description is required", domain.ErrValidation)
		}
		p.Description = description
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return nil, fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
		}
		p.Price = *input.Price
	}
	if input.City != nil {
		if p.City, err = s.normalizeCity(*input.City); err != nil {
			return nil, err
		}
	}
	if input.Currency != nil {
		if p.Currency, err = s.normalizeCurrency(*input.Currency); err != nil {
			return nil, err
		}
	}
	if input.Country != nil {
		if country := strings.TrimSpace(*input.Country); country != "" {
			p.Country = country
		}
	}
	if input.Category != nil {
		if category := strings.TrimSpace(*input.Category); category != "" {
			p.Category = category
		}
	}
	if input.DurationHours != nil {
		if *input.DurationHours < 1 || *input.DurationHours > 240 {
			return nil, fmt.Errorf("%w: durationHours must be within 1..240", domain.ErrValidation)
		}
		p.DurationHours = *input.DurationHours
	}
	if input.Languages != nil {
		if languages := domain.NormalizeLanguages(input.Languages); len(languages) > 0 {
			p.Languages = languages
		}
	}
	if input.Highlights != nil {
		p.Highlights = domain.CleanStringList(input.Highlights)
	}
	if input.Includes != nil {
		p.Includes = domain.CleanStringList(input.Includes)
	}
	if input.Excludes != nil {
		p.Excludes = domain.CleanStringList(input.Excludes)
	}
	if input.HasMedia {
		p.Media = domain.NormalizeMedia(input.Media)
	}
	if input.Location != nil {
		p.Location = domain.NormalizeLocation(input.Location)
	}
	if input.IsPromo != nil {
		p.IsPromo = *input.IsPromo
	}
	if input.PromoPercent != nil {
		p.PromoPercent = *input.PromoPercent
	}
	if input.PromoPrice != nil {
		p.PromoPrice = *input.PromoPrice
	}
	if input.PromoStartAt != nil {
		p.PromoStartAt = input.PromoStartAt
	}
	if input.PromoEndAt != nil {
		p.PromoEndAt = input.PromoEndAt
	}
	if input.Active != nil {
		p.Active = *input.Active
	}
	p.NormalizePromo()
	p.UpdatedAt = s.now().UTC()

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("update package: %w", err)
	}

	return p, nil
}

// uniqueSlug derives the url-safe slug from the title and probes for a free
// candidate, appending -2, -3, ... on collision. Own rows are excluded via
// excludeID during renames.
func (s *CatalogService) uniqueSlug(ctx context.Context, title, excludeID string) (string, error) {
	base := slug.Make(title)
	if base == "" {
		base = fallbackSlug
	}

	candidate := base
	for i := 2; ; i++ {
		exists, err := s.repo.SlugExists(ctx, candidate, excludeID)
		if err != nil {
			return "", fmt.Errorf("probe slug: %w", err)
		}
		if !exists {
			return candidate, nil
		}
		if i > slugRetryBudget {
			return "", domain.ErrSlugTaken
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}

// List applies defaults to the filter, fetches one page and finalizes the
// promo=active window check against the current clock post-fetch, so promo
// windows self-expire without a background job.
func (s *CatalogService) List(ctx context.Context, f domain.PackageFilter) ([]*domain.Package, int, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = defaultLimit
	}
	if f.Limit > maxLimit {
		f.Limit = maxLimit
	}
	switch f.Sort {
	case domain.SortPriceAsc, domain.SortPriceDesc, domain.SortRecent:
	default:
		f.Sort = domain.SortRecent
	}

	items, total, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, 0, fmt.Errorf("list packages: %w", err)
	}

	if f.Promo == "active" {
		now := s.now()
		filtered := make([]*domain.Package, 0, len(items))
		for _, p := range items {
			if pricing.IsPromoActive(p, now) {
				filtered = append(filtered, p)
			}
		}
		items = filtered
	}

	return items, total, nil
}

func (s *CatalogService) GetBySlug(ctx context.Context, slugValue string, preview bool) (*domain.Package, error) {
	return s.repo.GetBySlug(ctx, slugValue, !preview)
}

func (s *CatalogService) GetByID(ctx context.Context, id string) (*domain.Package, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *CatalogService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
