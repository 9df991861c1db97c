package dto

import (
	"strings"
	"time"

	"github.com/cachinadev/turismo-app/internal/domain"
	"github.com/cachinadev/turismo-app/internal/pricing"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type MediaItemResponse struct {
	Type    string `json:"type"`
	URL     string `json:"url"`
	Caption string `json:"caption,omitempty"`
}

type PackageResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description"`

	City     string `json:"city"`
	Country  string `json:"country"`
	Category string `json:"category"`

	Price    float64 `json:"price"`
	Currency string  `json:"currency"`

	DurationHours int      `json:"durationHours"`
	Languages     []string `json:"languages"`
	Highlights    []string `json:"highlights"`
	Includes      []string `json:"includes"`
	Excludes      []string `json:"excludes"`

	Media     []MediaItemResponse `json:"media"`
	MainImage string              `json:"mainImage,omitempty"`
	Location  *domain.Location    `json:"location,omitempty"`

	IsPromo      bool    `json:"isPromo"`
	PromoPercent float64 `json:"promoPercent"`
	PromoPrice   float64 `json:"promoPrice"`
	PromoStartAt *string `json:"promoStartAt,omitempty"`
	PromoEndAt   *string `json:"promoEndAt,omitempty"`

	// Derived at serialization time, never stored.
	IsPromoActive   bool     `json:"isPromoActive"`
	EffectivePrice  *float64 `json:"effectivePrice,omitempty"`
	DiscountPercent int      `json:"discountPercent"`

	Active    bool   `json:"active"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type PackageListResponse struct {
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
	Total int               `json:"total"`
	Pages int               `json:"pages"`
	Items []PackageResponse `json:"items"`
}

type BookingResponse struct {
	ID         string          `json:"id"`
	PackageID  string          `json:"packageId"`
	Status     string          `json:"status"`
	Date       string          `json:"date"`
	People     domain.People   `json:"people"`
	Customer   domain.Customer `json:"customer"`
	Notes      string          `json:"notes,omitempty"`
	TotalPrice float64         `json:"totalPrice"`
	CreatedAt  string          `json:"createdAt"`
	UpdatedAt  string          `json:"updatedAt"`
}

type BookingPackageBlock struct {
	Title    string  `json:"title"`
	Slug     string  `json:"slug"`
	City     string  `json:"city"`
	Price    float64 `json:"price"`
	Currency string  `json:"currency"`
}

type BookingAdminResponse struct {
	BookingResponse
	Package *BookingPackageBlock `json:"package,omitempty"`
}

type BookingListResponse struct {
	Page  int                    `json:"page"`
	Limit int                    `json:"limit"`
	Total int                    `json:"total"`
	Pages int                    `json:"pages"`
	Items []BookingAdminResponse `json:"items"`
}

type UserResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Role        string  `json:"role"`
	LastLoginAt *string `json:"lastLoginAt,omitempty"`
}

type LoginResponse struct {
	User        UserResponse `json:"user"`
	AccessToken string       `json:"accessToken"`
}

type UploadResponse struct {
	URL  string `json:"url"`
	Type string `json:"type"`
}

func ToPackageResponse(p *domain.Package, baseURL string, now time.Time) PackageResponse {
	media := make([]MediaItemResponse, 0, len(p.Media))
	for _, m := range p.Media {
		media = append(media, MediaItemResponse{
			Type:    string(m.Type),
			URL:     AbsoluteURL(baseURL, m.URL),
			Caption: m.Caption,
		})
	}

	resp := PackageResponse{
		ID:          p.ID,
		Title:       p.Title,
		Slug:        p.Slug,
		Description: p.Description,

		City:     p.City,
		Country:  p.Country,
		Category: p.Category,

		Price:    p.Price,
		Currency: p.Currency,

		DurationHours: p.DurationHours,
		Languages:     p.Languages,
		Highlights:    p.Highlights,
		Includes:      p.Includes,
		Excludes:      p.Excludes,

		Media:     media,
		MainImage: AbsoluteURL(baseURL, p.MainImage()),
		Location:  p.Location,

		IsPromo:      p.IsPromo,
		PromoPercent: p.PromoPercent,
		PromoPrice:   p.PromoPrice,
		PromoStartAt: formatTimePtr(p.PromoStartAt),
		PromoEndAt:   formatTimePtr(p.PromoEndAt),

		IsPromoActive:   pricing.IsPromoActive(p, now),
		EffectivePrice:  pricing.EffectivePrice(p, now),
		DiscountPercent: pricing.DiscountPercent(p, now),

		Active:    p.Active,
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
		UpdatedAt: p.UpdatedAt.Format(time.RFC3339),
	}
	return resp
}

func ToPackageListResponse(items []*domain.Package, page, limit, total int, baseURL string, now time.Time) PackageListResponse {
	resp := PackageListResponse{
		Page:  page,
		Limit: limit,
		Total: total,
		Pages: pageCount(total, limit),
		Items: make([]PackageResponse, 0, len(items)),
	}
	for _, p := range items {
		resp.Items = append(resp.Items, ToPackageResponse(p, baseURL, now))
	}
	return resp
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:         b.ID,
		PackageID:  b.PackageID,
		Status:     string(b.Status),
		Date:       b.Date.Format(time.RFC3339),
		People:     b.People,
		Customer:   b.Customer,
		Notes:      b.Notes,
		TotalPrice: b.TotalPrice,
		CreatedAt:  b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  b.UpdatedAt.Format(time.RFC3339),
	}
}

func ToBookingAdminResponse(b *domain.BookingWithPackage) BookingAdminResponse {
	resp := BookingAdminResponse{BookingResponse: ToBookingResponse(&b.Booking)}
	if b.PackageTitle != "" {
		resp.Package = &BookingPackageBlock{
			Title:    b.PackageTitle,
			Slug:     b.PackageSlug,
			City:     b.PackageCity,
			Price:    b.PackagePrice,
			Currency: b.PackageCurrency,
		}
	}
	return resp
}

func ToBookingListResponse(items []*domain.BookingWithPackage, page, limit, total int) BookingListResponse {
	resp := BookingListResponse{
		Page:  page,
		Limit: limit,
		Total: total,
		Pages: pageCount(total, limit),
		Items: make([]BookingAdminResponse, 0, len(items)),
	}
	for _, b := range items {
		resp.Items = append(resp.Items, ToBookingAdminResponse(b))
	}
	return resp
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Role:        u.Role,
		LastLoginAt: formatTimePtr(u.LastLoginAt),
	}
}

// AbsoluteURL prefixes server-relative media paths with the public base URL.
// Already-absolute URLs pass through untouched.
func AbsoluteURL(baseURL, u string) string {
	if u == "" || baseURL == "" || !strings.HasPrefix(u, "/") {
		return u
	}
	return strings.TrimRight(baseURL, "/") + u
}

func pageCount(total, limit int) int {
	if limit <= 0 || total <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
