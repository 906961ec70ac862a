package mock

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"town-info-service/internal/domain"
)

// WeatherProvider serves canned reports keyed by lower-cased town name.
// Unknown towns fail with provider code 404.
type WeatherProvider struct {
	m     map[string]domain.WeatherReport
	Err   error // when set, returned for every call
	calls atomic.Int64
}

func NewWeatherProvider(reports ...domain.WeatherReport) *WeatherProvider {
	m := make(map[string]domain.WeatherReport, len(reports))
	for _, r := range reports {
		m[strings.ToLower(r.Town)] = r
	}
	return &WeatherProvider{m: m}
}

func (p *WeatherProvider) CurrentWeather(ctx context.Context, town string) (domain.WeatherReport, error) {
	p.calls.Add(1)
	if p.Err != nil {
		return domain.WeatherReport{}, p.Err
	}

	r, ok := p.m[strings.ToLower(town)]
	if !ok {
		return domain.WeatherReport{}, &domain.WeatherLookupError{Code: domain.ProviderNotFound, Message: "city not found"}
	}
	return r, nil
}

func (p *WeatherProvider) Calls() int { return int(p.calls.Load()) }

// EventsProvider serves canned events keyed by lower-cased city name.
// Unknown cities have no events.
type EventsProvider struct {
	m     map[string][]domain.Event
	Err   error
	calls atomic.Int64

	mu     sync.Mutex
	cities []string
}

func NewEventsProvider(byCity map[string][]domain.Event) *EventsProvider {
	m := make(map[string][]domain.Event, len(byCity))
	for city, evs := range byCity {
		m[strings.ToLower(city)] = evs
	}
	return &EventsProvider{m: m}
}

func (p *EventsProvider) EventsInCity(ctx context.Context, city string) ([]domain.Event, error) {
	p.calls.Add(1)
	p.mu.Lock()
	p.cities = append(p.cities, city)
	p.mu.Unlock()

	if p.Err != nil {
		return nil, p.Err
	}
	evs, ok := p.m[strings.ToLower(city)]
	if !ok {
		return []domain.Event{}, nil
	}
	return evs, nil
}

func (p *EventsProvider) Calls() int { return int(p.calls.Load()) }

// Cities returns the city names requested so far, in call order.
func (p *EventsProvider) Cities() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.cities...)
}

// MapProvider renders a predictable fake URL.
type MapProvider struct {
	calls atomic.Int64
}

func (p *MapProvider) StaticMap(c domain.Coordinates, width int) domain.MapView {
	p.calls.Add(1)
	return domain.MapView{
		URL:    fmt.Sprintf("map://%g,%g/%dx200", c.Lon, c.Lat, width),
		Width:  width,
		Height: 200,
	}
}

func (p *MapProvider) Calls() int { return int(p.calls.Load()) }

// Journal keeps recorded entries in memory.
type Journal struct {
	mu      sync.Mutex
	entries []domain.LookupEntry
	Err     error
}

func (j *Journal) Record(ctx context.Context, e domain.LookupEntry) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.Err != nil {
		return j.Err
	}
	j.entries = append(j.entries, e)
	return nil
}

func (j *Journal) Entries() []domain.LookupEntry {
	j.mu.Lock()
	defer j.mu.Unlock()
	return append([]domain.LookupEntry(nil), j.entries...)
}
