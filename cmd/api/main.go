package main

import (
	"context"
	"os"

	"github.com/qmexai/ramadandata/internal/pkg/logger"
	"github.com/qmexai/ramadandata/internal/server"
)

// @title Ramadan Data Collection API
// @version 1.0
// @description Admin API for collecting and exporting Ramadan student records. Authentication uses the HttpOnly session cookie set by /auth/login.

// @BasePath /api

func main() {
	srv, err := server.NewServer(context.Background())
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
