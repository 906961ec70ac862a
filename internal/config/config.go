package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config holds application configuration.
type Config struct {
	Port        string
	DatabaseURL string // optional; empty disables the lookup journal

	WeatherAPIKey  string
	WeatherBaseURL string

	MapAPIKey   string
	MapBaseURL  string
	MapUsername string
	MapStyle    string

	EventsAPIKey  string
	EventsBaseURL string

	HTTPTimeout time.Duration
	SessionIdle time.Duration

	LogLevel  string
	LogFormat string
}

type ErrMissingRequiredEnvVar struct {
	Name string
}

func (e *ErrMissingRequiredEnvVar) Error() string {
	return fmt.Sprintf("required environment variable %q is not set", e.Name)
}

// Get returns the environment value for key, or fallback when unset.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// Load reads configuration from environment variables.
// The three provider API keys are required.
func Load() (*Config, error) {
	cfg := Config{
		Port:           Get("PORT", "8080"),
		DatabaseURL:    Get("DATABASE_URL", ""),
		WeatherBaseURL: Get("WEATHER_BASE_URL", "https://api.openweathermap.org"),
		MapBaseURL:     Get("MAP_BASE_URL", "https://api.mapbox.com"),
		MapUsername:    Get("MAP_USERNAME", "mapbox"),
		MapStyle:       Get("MAP_STYLE", "streets-v11"),
		EventsBaseURL:  Get("EVENTS_BASE_URL", "https://app.ticketmaster.com"),
		LogLevel:       Get("LOG_LEVEL", "info"),
		LogFormat:      Get("LOG_FORMAT", "json"),
	}

	required := []struct {
		name string
		dst  *string
	}{
		{"WEATHER_API_KEY", &cfg.WeatherAPIKey},
		{"MAP_API_KEY", &cfg.MapAPIKey},
		{"EVENTS_API_KEY", &cfg.EventsAPIKey},
	}
	for _, r := range required {
		*r.dst = Get(r.name, "")
		if *r.dst == "" {
			return nil, &ErrMissingRequiredEnvVar{Name: r.name}
		}
	}

	var err error
	if cfg.HTTPTimeout, err = duration("HTTP_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.SessionIdle, err = duration("SESSION_IDLE", 30*time.Minute); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func duration(key string, fallback time.Duration) (time.Duration, error) {
	raw := Get(key, "")
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("parse %s: must be positive, got %s", key, d)
	}
	return d, nil
}
