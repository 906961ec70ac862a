package mapbox

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"town-info-service/internal/domain"
)

// Fixed camera and image settings of the town map.
const (
	Zoom    = 12
	Bearing = 0
	Pitch   = 60
	Height  = 200

	// Provider limits for static image dimensions.
	minWidth = 1
	maxWidth = 1280
)

// StaticMaps implements MapProvider for the Mapbox Static Images API.
type StaticMaps struct {
	accessToken string
	baseURL     string
	username    string
	style       string
}

func NewStaticMaps(accessToken, baseURL, username, style string) *StaticMaps {
	if baseURL == "" {
		baseURL = "https://api.mapbox.com"
	}
	if username == "" {
		username = "mapbox"
	}
	if style == "" {
		style = "streets-v11"
	}

	return &StaticMaps{
		accessToken: accessToken,
		baseURL:     strings.TrimRight(baseURL, "/"),
		username:    username,
		style:       style,
	}
}

// StaticMap builds the image view centred on c with the given width.
// Width is clamped to the provider's accepted range.
func (m *StaticMaps) StaticMap(c domain.Coordinates, width int) domain.MapView {
	width = max(minWidth, min(width, maxWidth))

	u := fmt.Sprintf(
		"%s/styles/v1/%s/%s/static/%s,%s,%d,%d,%d/%dx%d?access_token=%s",
		m.baseURL,
		url.PathEscape(m.username),
		url.PathEscape(m.style),
		formatCoord(c.Lon),
		formatCoord(c.Lat),
		Zoom, Bearing, Pitch,
		width, Height,
		url.QueryEscape(m.accessToken),
	)

	return domain.MapView{URL: u, Width: width, Height: Height}
}

// formatCoord renders the shortest decimal form, as the provider echoes it.
func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
