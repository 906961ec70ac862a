package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"town-info-service/internal/adapters/mapbox"
	"town-info-service/internal/adapters/openweather"
	"town-info-service/internal/adapters/repositories"
	"town-info-service/internal/adapters/ticketmaster"
	"town-info-service/internal/api"
	"town-info-service/internal/config"
	"town-info-service/internal/platform/db"
	"town-info-service/internal/platform/logging"
	"town-info-service/internal/ports"
	"town-info-service/internal/services"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// main is the application composition root.
// It wires the provider adapters behind ports and starts the HTTP server.
func main() {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logging.Setup(logging.Config{})
		log.Fatal().Err(err).Msg("load config")
	}

	logging.Setup(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if envErr != nil {
		log.Info().Msg("No .env file found (using environment variables)")
	}

	weather, err := openweather.NewClient(cfg.WeatherAPIKey, cfg.WeatherBaseURL, cfg.HTTPTimeout)
	if err != nil {
		log.Fatal().Err(err).Msg("weather client")
	}
	events, err := ticketmaster.NewClient(cfg.EventsAPIKey, cfg.EventsBaseURL, cfg.HTTPTimeout)
	if err != nil {
		log.Fatal().Err(err).Msg("events client")
	}
	maps := mapbox.NewStaticMaps(cfg.MapAPIKey, cfg.MapBaseURL, cfg.MapUsername, cfg.MapStyle)

	journal, conn, err := openJournal(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("lookup journal")
	}
	if conn != nil {
		defer conn.Close()
	}

	svc := services.NewTownInfoService(weather, events, maps, journal)
	sessions := services.NewSessionRegistry(svc)
	router := api.NewRouter(svc, sessions)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go sweepSessions(ctx, sessions, cfg.SessionIdle)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("listen and serve")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown: signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("shutdown complete")
}

// openJournal returns the Postgres journal when a database is configured
// and a no-op journal otherwise.
func openJournal(databaseURL string) (ports.LookupJournal, *sql.DB, error) {
	if databaseURL == "" {
		log.Info().Msg("DATABASE_URL not set; lookup journal disabled")
		return repositories.NopJournal{}, nil, nil
	}

	conn, err := db.Open(databaseURL)
	if err != nil {
		return nil, nil, err
	}
	return repositories.NewPgLookupJournal(conn), conn, nil
}

func sweepSessions(ctx context.Context, sessions *services.SessionRegistry, maxIdle time.Duration) {
	ticker := time.NewTicker(maxIdle / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := sessions.Sweep(maxIdle); n > 0 {
				log.Debug().Int("dropped", n).Int("live", sessions.Len()).Msg("swept idle sessions")
			}
		}
	}
}
