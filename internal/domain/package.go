package domain

import (
	"strings"
	"time"
)

type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

// MaxMediaItems bounds the media list of a single package.
const MaxMediaItems = 60

const maxCaptionLen = 500

var ValidCities = []string{"Puno", "Cusco", "Lima", "Arequipa", "Otros"}

var ValidCurrencies = []string{"PEN", "USD", "EUR"}

const (
	DefaultCity     = "Puno"
	DefaultCountry  = "Perú"
	DefaultCategory = "Tour"
	DefaultCurrency = "PEN"
)

type MediaItem struct {
	Type    MediaType `json:"type"`
	URL     string    `json:"url"`
	Caption string    `json:"caption,omitempty"`
}

type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Package struct {
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

	Media    []MediaItem `json:"media"`
	Location *Location   `json:"location,omitempty"`

	IsPromo      bool       `json:"isPromo"`
	PromoPercent float64    `json:"promoPercent"`
	PromoPrice   float64    `json:"promoPrice"`
	PromoStartAt *time.Time `json:"promoStartAt,omitempty"`
	PromoEndAt   *time.Time `json:"promoEndAt,omitempty"`

	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// MainImage returns the URL of the first image entry, the conventional cover.
func (p *Package) MainImage() string {
	for _, m := range p.Media {
		if m.Type == MediaImage && strings.TrimSpace(m.URL) != "" {
			return m.URL
		}
	}
	return ""
}

// NormalizePromo clamps the discount fields and restores promo window
// coherence: promoStartAt never ends up after promoEndAt.
func (p *Package) NormalizePromo() {
	if p.PromoPercent < 0 {
		p.PromoPercent = 0
	}
	if p.PromoPercent > 100 {
		p.PromoPercent = 100
	}
	if p.PromoPrice < 0 {
		p.PromoPrice = 0
	}
	if p.PromoStartAt != nil && p.PromoEndAt != nil && p.PromoStartAt.After(*p.PromoEndAt) {
		p.PromoStartAt, p.PromoEndAt = p.PromoEndAt, p.PromoStartAt
	}
}

// CleanStringList trims entries, drops empties and de-duplicates while
// preserving first-occurrence order.
func CleanStringList(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, s := range in {
		v := strings.TrimSpace(s)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// NormalizeLanguages lowercases and de-duplicates language codes. Entries may
// arrive comma-joined ("es, en") from form inputs and are split apart.
func NormalizeLanguages(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, raw := range in {
		for _, s := range strings.Split(raw, ",") {
			v := strings.ToLower(strings.TrimSpace(s))
			if v == "" {
				continue
			}
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	return out
}

// NormalizeMedia coerces entries to the image/video pair, drops entries
// without a URL, de-duplicates by (type, lowercased url) keeping the first
// occurrence and caps the list at MaxMediaItems. Applying it twice yields the
// same list.
func NormalizeMedia(in []MediaItem) []MediaItem {
	out := make([]MediaItem, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, m := range in {
		t := MediaImage
		if m.Type == MediaVideo {
			t = MediaVideo
		}
		url := strings.TrimSpace(m.URL)
		if url == "" {
			continue
		}
		key := string(t) + "|" + strings.ToLower(url)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		caption := strings.TrimSpace(m.Caption)
		if len(caption) > maxCaptionLen {
			caption = caption[:maxCaptionLen]
		}
		out = append(out, MediaItem{Type: t, URL: url, Caption: caption})
		if len(out) >= MaxMediaItems {
			break
		}
	}
	return out
}

// NormalizeLocation drops coordinates outside the valid ranges.
func NormalizeLocation(loc *Location) *Location {
	if loc == nil {
		return nil
	}
	if loc.Lat < -90 || loc.Lat > 90 || loc.Lng < -180 || loc.Lng > 180 {
		return nil
	}
	return &Location{Lat: loc.Lat, Lng: loc.Lng}
}

func IsValidCity(city string) bool {
	for _, c := range ValidCities {
		if c == city {
			return true
		}
	}
	return false
}

func IsValidCurrency(currency string) bool {
	for _, c := range ValidCurrencies {
		if c == currency {
			return true
		}
	}
	return false
}

type CreatePackageInput struct {
	Title       string
	Description string
	City        string
	Country     string
	Category    string

	Price    float64
	Currency string

	DurationHours int
	Languages     []string
	Highlights    []string
	Includes      []string
	Excludes      []string

	Media    []MediaItem
	Location *Location

	IsPromo      bool
	PromoPercent float64
	PromoPrice   float64
	PromoStartAt *time.Time
	PromoEndAt   *time.Time

	Active *bool
}

// UpdatePackageInput carries a partial update: nil means "leave unchanged".
type UpdatePackageInput struct {
	Title       *string
	Description *string
	City        *string
	Country     *string
	Category    *string

	Price    *float64
	Currency *string

	DurationHours *int
	Languages     []string
	Highlights    []string
	Includes      []string
	Excludes      []string

	Media    []MediaItem
	HasMedia bool
	Location *Location

	IsPromo      *bool
	PromoPercent *float64
	PromoPrice   *float64
	PromoStartAt *time.Time
	PromoEndAt   *time.Time

	Active *bool
}

const (
	SortRecent    = "recent"
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
)

// PackageFilter describes the catalog listing query. All filters are ANDed;
// Active == nil means "do not filter on the active flag".
type PackageFilter struct {
	Query    string
	City     string
	Category string

	MinPrice         *float64
	MaxPrice         *float64
	MaxDurationHours *int

	// Promo: "" (no filter), "any" (has promotion data) or "active"
	// (currently inside the promo window, checked post-fetch).
	Promo string

	Active *bool

	Sort  string
	Page  int
	Limit int
}
