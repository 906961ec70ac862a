package ports

import (
	"context"
	"town-info-service/internal/domain"
)

// Contract for discovering scheduled events in a city.
type EventsProvider interface {
	// Return events in provider order. An empty slice means none are scheduled.
	EventsInCity(ctx context.Context, city string) ([]domain.Event, error)
}
