package pricing

import (
	"testing"
	"time"

	"github.com/cachinadev/turismo-app/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func tp(t time.Time) *time.Time { return &t }

func TestIsPromoActive_Disabled(t *testing.T) {
	p := &domain.Package{
		IsPromo:      false,
		PromoPercent: 50,
		PromoPrice:   10,
	}

	assert.False(t, IsPromoActive(p, now))
	assert.Nil(t, EffectivePrice(p, now))
	assert.Equal(t, 0, DiscountPercent(p, now))
}

func TestIsPromoActive_NoBounds(t *testing.T) {
	p := &domain.Package{IsPromo: true}

	assert.True(t, IsPromoActive(p, now))
}

func TestIsPromoActive_Window(t *testing.T) {
	day := 24 * time.Hour

	notStarted := &domain.Package{IsPromo: true, PromoStartAt: tp(now.Add(day))}
	assert.False(t, IsPromoActive(notStarted, now))

	inside := &domain.Package{
		IsPromo:      true,
		PromoStartAt: tp(now.Add(-day)),
		PromoEndAt:   tp(now.Add(day)),
	}
	assert.True(t, IsPromoActive(inside, now))

	ended := &domain.Package{IsPromo: true, PromoEndAt: tp(now.Add(-day))}
	assert.False(t, IsPromoActive(ended, now))
}

func TestIsPromoActive_BoundaryInclusive(t *testing.T) {
	p := &domain.Package{
		IsPromo:      true,
		PromoStartAt: tp(now),
		PromoEndAt:   tp(now),
	}

	assert.True(t, IsPromoActive(p, now))
}

func TestEffectivePrice_Percent(t *testing.T) {
	p := &domain.Package{IsPromo: true, Price: 100, PromoPercent: 20}

	eff := EffectivePrice(p, now)
	require.NotNil(t, eff)
	assert.InDelta(t, 80.00, *eff, 1e-9)
	assert.Equal(t, 20, DiscountPercent(p, now))
}

func TestEffectivePrice_FixedWinsOverPercent(t *testing.T) {
	p := &domain.Package{
		IsPromo:      true,
		Price:        100,
		PromoPercent: 50,
		PromoPrice:   59.90,
	}

	eff := EffectivePrice(p, now)
	require.NotNil(t, eff)
	assert.InDelta(t, 59.90, *eff, 1e-9)
	assert.Equal(t, 40, DiscountPercent(p, now))
}

func TestEffectivePrice_NoDiscountData(t *testing.T) {
	p := &domain.Package{IsPromo: true, Price: 100}

	assert.Nil(t, EffectivePrice(p, now))
	assert.Equal(t, 0, DiscountPercent(p, now))
}

func TestEffectivePrice_Rounding(t *testing.T) {
	p := &domain.Package{IsPromo: true, Price: 99.99, PromoPercent: 33}

	eff := EffectivePrice(p, now)
	require.NotNil(t, eff)
	// 99.99 * 0.67 = 66.9933 -> 66.99
	assert.InDelta(t, 66.99, *eff, 1e-9)
}

func TestEffectivePrice_FullDiscount(t *testing.T) {
	p := &domain.Package{IsPromo: true, Price: 40, PromoPercent: 100}

	eff := EffectivePrice(p, now)
	require.NotNil(t, eff)
	assert.InDelta(t, 0, *eff, 1e-9)
	assert.Equal(t, 100, DiscountPercent(p, now))
}

func TestDiscountPercent_ZeroBasePrice(t *testing.T) {
	p := &domain.Package{IsPromo: true, Price: 0, PromoPrice: 10}

	assert.Equal(t, 0, DiscountPercent(p, now))
}
