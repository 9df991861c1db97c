// Package pricing computes promotion state and effective prices. Every
// function takes the current time as a parameter so callers control the
// clock; nothing here is ever persisted.
package pricing

import (
	"math"
	"time"

	"github.com/cachinadev/turismo-app/internal/domain"
)

// round2 rounds to 2 decimal places, half away from zero.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// IsPromoActive reports whether the package's promotion applies at now.
// A promotion without start/end bounds is active as soon as it is enabled.
func IsPromoActive(p *domain.Package, now time.Time) bool {
	if !p.IsPromo {
		return false
	}
	if p.PromoStartAt != nil && now.Before(*p.PromoStartAt) {
		return false
	}
	if p.PromoEndAt != nil && now.After(*p.PromoEndAt) {
		return false
	}
	return true
}

// EffectivePrice returns the discounted price at now, or nil when no
// discount applies. A fixed promo price takes precedence over a percentage.
func EffectivePrice(p *domain.Package, now time.Time) *float64 {
	if !IsPromoActive(p, now) {
		return nil
	}
	if p.PromoPrice > 0 {
		v := round2(math.Max(0, p.PromoPrice))
		return &v
	}
	if p.PromoPercent > 0 && p.PromoPercent <= 100 {
		v := round2(math.Max(0, p.Price*(1-p.PromoPercent/100)))
		return &v
	}
	return nil
}

// DiscountPercent returns the rounded discount relative to the base price,
// clamped to [0,100]. Zero when no promotion applies or the base price is
// not positive.
func DiscountPercent(p *domain.Package, now time.Time) int {
	eff := EffectivePrice(p, now)
	if eff == nil || p.Price <= 0 {
		return 0
	}
	pct := int(math.Round((1 - *eff/p.Price) * 100))
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
