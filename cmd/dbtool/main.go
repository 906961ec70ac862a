package main

import (
	"os"
	"town-info-service/internal/adapters/repositories"
	"town-info-service/internal/config"
	"town-info-service/internal/platform/db"
	"town-info-service/internal/platform/logging"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	logging.Setup(logging.Config{Level: config.Get("LOG_LEVEL", "info"), Format: config.Get("LOG_FORMAT", "text")})

	dir := repositories.Up
	if len(os.Args) > 1 {
		dir = repositories.Direction(os.Args[1])
	}
	if dir != repositories.Up && dir != repositories.Down {
		log.Fatal().Msg("usage: dbtool [up|down]")
	}

	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found (using environment variables)")
	}

	databaseURL := config.Get("DATABASE_URL", "")
	if databaseURL == "" {
		log.Fatal().Msg("DATABASE_URL is required")
	}

	conn, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("open database")
	}
	defer conn.Close()

	log.Info().Str("direction", string(dir)).Msg("Migrating lookup journal schema...")
	if err := repositories.Migrate(conn, dir); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}
	log.Info().Msg("Schema ready.")
}
