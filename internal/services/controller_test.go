package services

import (
	"context"
	"sync"
	"testing"
	"town-info-service/internal/adapters/mock"
	"town-info-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gatedWeather blocks lookups for one town until released.
type gatedWeather struct {
	*mock.WeatherProvider
	town    string
	started chan struct{}
	release chan struct{}
}

func (g *gatedWeather) CurrentWeather(ctx context.Context, town string) (domain.WeatherReport, error) {
	if town == g.town {
		close(g.started)
		<-g.release
	}
	return g.WeatherProvider.CurrentWeather(ctx, town)
}

func TestControllerStartsIdle(t *testing.T) {
	f := newFixture()
	c := NewController(f.svc)

	assert.Equal(t, domain.Idle, c.State())
	assert.False(t, c.View().ShowWeather())
	assert.False(t, c.View().ShowError())
}

func TestControllerEmptyInput(t *testing.T) {
	f := newFixture()
	c := NewController(f.svc)

	v, err := c.Submit(context.Background(), "   ", domain.DefaultLayout)
	require.ErrorIs(t, err, ErrEmptyInput)

	assert.Equal(t, domain.ShowingError, v.State)
	assert.Equal(t, MsgEmptyInput, v.ErrorMessage)
	assert.True(t, v.ShowError())
	assert.Zero(t, f.weather.Calls())
	assert.Zero(t, f.events.Calls())
}

func TestControllerResizeIgnoredWithoutResults(t *testing.T) {
	f := newFixture()
	c := NewController(f.svc)

	_, ok := c.Resize(domain.DefaultLayout)
	assert.False(t, ok, "idle")

	_, _ = c.Submit(context.Background(), "Atlantis", domain.DefaultLayout)
	require.Equal(t, domain.ShowingError, c.State())
	assert.Equal(t, MsgNotFound, c.View().ErrorMessage)

	_, ok = c.Resize(domain.DefaultLayout)
	assert.False(t, ok, "error")
	assert.Zero(t, f.maps.Calls())
}

func TestControllerResizeReusesLastCoordinates(t *testing.T) {
	f := newFixture()
	c := NewController(f.svc)

	v, err := c.Submit(context.Background(), "Copenhagen", domain.DefaultLayout)
	require.NoError(t, err)
	require.True(t, v.ShowWeather())
	assert.True(t, v.ShowEvents())
	assert.Equal(t, copenhagen.Coordinates, c.Coordinates())

	mv, ok := c.Resize(domain.Layout{BodyWidth: 600, ContainerWidth: 580})
	require.True(t, ok)
	assert.Equal(t, 528, mv.Width)
	assert.Equal(t, "map://12.5655,55.6759/528x200", mv.URL)
	assert.Equal(t, mv, c.View().Info.Map)

	// The view returned by Submit is not mutated by the resize.
	assert.Equal(t, 572, v.Info.Map.Width)

	// A later failed lookup stops resizes again.
	_, _ = c.Submit(context.Background(), "Atlantis", domain.DefaultLayout)
	_, ok = c.Resize(domain.DefaultLayout)
	assert.False(t, ok)
}

func TestControllerResizeAtZeroCoordinates(t *testing.T) {
	f := newFixture()
	nullIsland := domain.WeatherReport{Town: "Null Island", Condition: "Clear"}
	f.svc.Weather = mock.NewWeatherProvider(nullIsland)
	c := NewController(f.svc)

	_, err := c.Submit(context.Background(), "Null Island", domain.DefaultLayout)
	require.NoError(t, err)
	require.Equal(t, domain.ShowingResults, c.State())

	mv, ok := c.Resize(domain.Layout{BodyWidth: 600, ContainerWidth: 580})
	require.True(t, ok)
	assert.Equal(t, "map://0,0/528x200", mv.URL)
	assert.Equal(t, 2, f.maps.Calls())
}

func TestControllerLastSubmissionWins(t *testing.T) {
	f := newFixture()
	aarhus := copenhagen
	aarhus.Town = "Aarhus"
	aarhus.Coordinates = domain.Coordinates{Lon: 10.2039, Lat: 56.1567}

	gated := &gatedWeather{
		WeatherProvider: mock.NewWeatherProvider(copenhagen, aarhus),
		town:            "Copenhagen",
		started:         make(chan struct{}),
		release:         make(chan struct{}),
	}
	f.svc.Weather = gated
	c := NewController(f.svc)

	var wg sync.WaitGroup
	var slowErr error
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, slowErr = c.Submit(context.Background(), "Copenhagen", domain.DefaultLayout)
	}()

	<-gated.started
	assert.Equal(t, domain.Fetching, c.State())

	_, ok := c.Resize(domain.DefaultLayout)
	assert.False(t, ok, "resize while fetching")

	v, err := c.Submit(context.Background(), "Aarhus", domain.DefaultLayout)
	require.NoError(t, err)
	assert.Equal(t, "Aarhus", v.Info.Weather.Town)

	close(gated.release)
	wg.Wait()

	assert.ErrorIs(t, slowErr, ErrSuperseded)
	assert.Equal(t, "Aarhus", c.View().Info.Weather.Town)
	assert.Equal(t, aarhus.Coordinates, c.Coordinates())
}
