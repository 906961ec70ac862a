package ports

import (
	"context"
	"town-info-service/internal/domain"
)

// Contract for retrieving current weather conditions for a town.
type WeatherProvider interface {
	// Return current conditions and coordinates for the named town.
	CurrentWeather(ctx context.Context, town string) (domain.WeatherReport, error)
}
