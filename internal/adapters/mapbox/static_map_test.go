package mapbox

import (
	"testing"
	"town-info-service/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestStaticMaps_StaticMap(t *testing.T) {
	m := NewStaticMaps("pk.token", "", "", "")

	view := m.StaticMap(domain.Coordinates{Lon: 12.5655, Lat: 55.6759}, 572)

	assert.Equal(t,
		"https://api.mapbox.com/styles/v1/mapbox/streets-v11/static/12.5655,55.6759,12,0,60/572x200?access_token=pk.token",
		view.URL,
	)
	assert.Equal(t, 572, view.Width)
	assert.Equal(t, 200, view.Height)
}

func TestStaticMaps_NegativeCoordinates(t *testing.T) {
	m := NewStaticMaps("k", "http://maps.local/", "me", "dark-v10")

	view := m.StaticMap(domain.Coordinates{Lon: -74.006, Lat: -33.8688}, 300)

	assert.Equal(t, "http://maps.local/styles/v1/me/dark-v10/static/-74.006,-33.8688,12,0,60/300x200?access_token=k", view.URL)
}

func TestStaticMaps_ClampsWidth(t *testing.T) {
	m := NewStaticMaps("k", "", "", "")

	assert.Equal(t, 1, m.StaticMap(domain.Coordinates{Lon: 1, Lat: 1}, -40).Width)
	assert.Equal(t, 1280, m.StaticMap(domain.Coordinates{Lon: 1, Lat: 1}, 4000).Width)
}
