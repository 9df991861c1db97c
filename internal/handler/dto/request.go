package dto

import "github.com/cachinadev/turismo-app/internal/domain"

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest is the body fallback for clients that cannot use the
// httpOnly refresh cookie.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type MediaItemPayload struct {
	Type    string `json:"type"`
	URL     string `json:"url"`
	Caption string `json:"caption"`
}

type LocationPayload struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type CreatePackageRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	City        string `json:"city"`
	Country     string `json:"country"`
	Category    string `json:"category"`

	Price    float64 `json:"price" binding:"required,gt=0"`
	Currency string  `json:"currency"`

	DurationHours int      `json:"durationHours"`
	Languages     []string `json:"languages"`
	Highlights    []string `json:"highlights"`
	Includes      []string `json:"includes"`
	Excludes      []string `json:"excludes"`

	Media    []MediaItemPayload `json:"media"`
	Location *LocationPayload   `json:"location"`

	IsPromo      bool     `json:"isPromo"`
	PromoPercent float64  `json:"promoPercent"`
	PromoPrice   float64  `json:"promoPrice"`
	PromoStartAt *string  `json:"promoStartAt"`
	PromoEndAt   *string  `json:"promoEndAt"`

	Active *bool `json:"active"`
}

// UpdatePackageRequest is a partial update: absent fields stay untouched.
// Media uses a pointer slice so "not sent" and "clear the gallery" differ.
type UpdatePackageRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	City        *string `json:"city"`
	Country     *string `json:"country"`
	Category    *string `json:"category"`

	Price    *float64 `json:"price"`
	Currency *string  `json:"currency"`

	DurationHours *int     `json:"durationHours"`
	Languages     []string `json:"languages"`
	Highlights    []string `json:"highlights"`
	Includes      []string `json:"includes"`
	Excludes      []string `json:"excludes"`

	Media    *[]MediaItemPayload `json:"media"`
	Location *LocationPayload    `json:"location"`

	IsPromo      *bool    `json:"isPromo"`
	PromoPercent *float64 `json:"promoPercent"`
	PromoPrice   *float64 `json:"promoPrice"`
	PromoStartAt *string  `json:"promoStartAt"`
	PromoEndAt   *string  `json:"promoEndAt"`

	Active *bool `json:"active"`
}

type PeoplePayload struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
}

type CustomerPayload struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Phone    string `json:"phone"`
	Country  string `json:"country"`
	Language string `json:"language"`
}

type CreateBookingRequest struct {
	PackageID string          `json:"packageId" binding:"required,uuid"`
	Date      string          `json:"date" binding:"required"`
	People    PeoplePayload   `json:"people"`
	Customer  CustomerPayload `json:"customer" binding:"required"`
	Notes     string          `json:"notes"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}

func ToMediaItems(in []MediaItemPayload) []domain.MediaItem {
	if in == nil {
		return nil
	}
	out := make([]domain.MediaItem, 0, len(in))
	for _, m := range in {
		out = append(out, domain.MediaItem{
			Type:    domain.MediaType(m.Type),
			URL:     m.URL,
			Caption: m.Caption,
		})
	}
	return out
}

func ToLocation(in *LocationPayload) *domain.Location {
	if in == nil {
		return nil
	}
	return &domain.Location{Lat: in.Lat, Lng: in.Lng}
}
