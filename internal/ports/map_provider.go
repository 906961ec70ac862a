package ports

import "town-info-service/internal/domain"

// Builds static map images. Building is local; the image itself is
// fetched by the browser.
type MapProvider interface {
	StaticMap(center domain.Coordinates, width int) domain.MapView
}
