package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"town-info-service/internal/domain"
	"town-info-service/internal/platform/obs"
	"town-info-service/internal/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// EventsPanel is the outcome of the secondary events lookup.
// Hidden means the lookup failed; the failure is logged, never shown.
type EventsPanel struct {
	Hidden bool
	Events []domain.Event
}

// Empty reports whether the placeholder row should be rendered.
func (p EventsPanel) Empty() bool {
	return !p.Hidden && len(p.Events) == 0
}

// TownInfo is everything one successful town-info action produced.
type TownInfo struct {
	Weather domain.WeatherReport
	Map     domain.MapView
	Events  EventsPanel
}

// TownInfoService runs the town-info action against the providers.
type TownInfoService struct {
	Weather ports.WeatherProvider
	Events  ports.EventsProvider
	Maps    ports.MapProvider
	Journal ports.LookupJournal

	now func() time.Time
}

func NewTownInfoService(
	weather ports.WeatherProvider,
	events ports.EventsProvider,
	maps ports.MapProvider,
	journal ports.LookupJournal,
) *TownInfoService {
	return &TownInfoService{
		Weather: weather,
		Events:  events,
		Maps:    maps,
		Journal: journal,
		now:     time.Now,
	}
}

// Lookup validates town, awaits the weather lookup and then renders the
// map and fetches the events independently of each other.
//
// Errors from the weather lookup are returned; an events failure only
// hides the events panel.
func (s *TownInfoService) Lookup(ctx context.Context, town string, layout domain.Layout) (_ *TownInfo, err error) {
	town = strings.TrimSpace(town)
	if town == "" {
		return nil, ErrEmptyInput
	}

	defer obs.Time(ctx, "services.Lookup")(&err)

	report, err := s.Weather.CurrentWeather(ctx, town)
	if err != nil {
		s.record(ctx, town, err, 0)
		return nil, fmt.Errorf("lookup %q: %w", town, err)
	}

	info := &TownInfo{Weather: report}

	// The goroutines write disjoint fields of info. Only events can fail.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		info.Map = s.Maps.StaticMap(report.Coordinates, layout.MapWidth())
		return nil
	})
	g.Go(func() error {
		events, err := s.Events.EventsInCity(gctx, report.Town)
		if err != nil {
			return fmt.Errorf("events in %q: %w", report.Town, err)
		}
		info.Events = EventsPanel{Events: events}
		return nil
	})
	if err := g.Wait(); err != nil {
		log.Error().
			Err(err).
			Str("req_id", obs.RequestID(ctx)).
			Msg("events lookup failed; hiding events panel")
		info.Events = EventsPanel{Hidden: true}
	}

	s.record(ctx, town, nil, len(info.Events.Events))

	return info, nil
}

// MapFor renders the map for coordinates from an earlier lookup.
func (s *TownInfoService) MapFor(c domain.Coordinates, layout domain.Layout) domain.MapView {
	return s.Maps.StaticMap(c, layout.MapWidth())
}

func (s *TownInfoService) record(ctx context.Context, town string, lookupErr error, events int) {
	if s.Journal == nil {
		return
	}

	entry := domain.LookupEntry{
		ID:          uuid.New(),
		Town:        town,
		Outcome:     domain.OutcomeOK,
		EventCount:  events,
		RequestedAt: s.now().UTC(),
	}
	if lookupErr != nil {
		entry.Outcome = domain.OutcomeFailed
		var le *domain.WeatherLookupError
		if errors.As(lookupErr, &le) {
			entry.ProviderCode = le.Code
			if le.NotFound() {
				entry.Outcome = domain.OutcomeNotFound
			}
		}
	}

	if err := s.Journal.Record(ctx, entry); err != nil {
		log.Warn().Err(err).Str("town", town).Msg("lookup journal write failed")
	}
}
