package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCleanStringList(t *testing.T) {
	in := []string{"  Lago Titicaca ", "", "Lago Titicaca", "Uros", "  "}

	assert.Equal(t, []string{"Lago Titicaca", "Uros"}, CleanStringList(in))
}

func TestNormalizeLanguages(t *testing.T) {
	in := []string{"ES, en", "EN", " fr "}

	assert.Equal(t, []string{"es", "en", "fr"}, NormalizeLanguages(in))
}

func TestNormalizeMedia_DedupeAndCoerce(t *testing.T) {
	in := []MediaItem{
		{Type: "banner", URL: " /img/a.jpg "},
		{Type: MediaImage, URL: "/img/A.JPG"},
		{Type: MediaVideo, URL: "/img/a.jpg"},
		{Type: MediaImage, URL: ""},
	}

	out := NormalizeMedia(in)

	assert.Equal(t, []MediaItem{
		{Type: MediaImage, URL: "/img/a.jpg"},
		{Type: MediaVideo, URL: "/img/a.jpg"},
	}, out)
}

func TestNormalizeMedia_Idempotent(t *testing.T) {
	in := []MediaItem{
		{Type: MediaImage, URL: "/img/a.jpg", Caption: "cover"},
		{Type: MediaVideo, URL: "https://cdn.example.com/v.mp4"},
	}

	once := NormalizeMedia(in)
	twice := NormalizeMedia(once)

	assert.Equal(t, once, twice)
}

func TestNormalizeMedia_Cap(t *testing.T) {
	in := make([]MediaItem, 0, MaxMediaItems+10)
	for i := 0; i < MaxMediaItems+10; i++ {
		in = append(in, MediaItem{Type: MediaImage, URL: "/img/" + string(rune('a'+i%26)) + string(rune('0'+i/26)) + ".jpg"})
	}

	assert.Len(t, NormalizeMedia(in), MaxMediaItems)
}

func TestNormalizeLocation(t *testing.T) {
	assert.Nil(t, NormalizeLocation(nil))
	assert.Nil(t, NormalizeLocation(&Location{Lat: 91, Lng: 0}))
	assert.Nil(t, NormalizeLocation(&Location{Lat: 0, Lng: -181}))

	loc := NormalizeLocation(&Location{Lat: -15.84, Lng: -70.02})
	assert.Equal(t, &Location{Lat: -15.84, Lng: -70.02}, loc)
}

func TestPackage_NormalizePromo_SwapsWindow(t *testing.T) {
	start := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	p := &Package{PromoStartAt: &start, PromoEndAt: &end, PromoPercent: 150, PromoPrice: -5}

	p.NormalizePromo()

	assert.True(t, p.PromoStartAt.Before(*p.PromoEndAt))
	assert.Equal(t, float64(100), p.PromoPercent)
	assert.Equal(t, float64(0), p.PromoPrice)
}

func TestPackage_MainImage(t *testing.T) {
	p := &Package{Media: []MediaItem{
		{Type: MediaVideo, URL: "/v.mp4"},
		{Type: MediaImage, URL: "/cover.jpg"},
		{Type: MediaImage, URL: "/second.jpg"},
	}}

	assert.Equal(t, "/cover.jpg", p.MainImage())
	assert.Equal(t, "", (&Package{}).MainImage())
}
