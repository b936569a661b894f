package main

import (
	"os"

	"github.com/emre/classpulse/internal/pkg/logger"
	"github.com/emre/classpulse/internal/server"
	"github.com/joho/godotenv"
)

func main() {
	// Local development convenience; missing .env is fine
	_ = godotenv.Load()

	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully")
}
