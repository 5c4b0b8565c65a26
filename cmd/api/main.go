package main

import (
	"os"

	"github.com/ets-hub/etshub-backend/internal/pkg/logger"
	"github.com/ets-hub/etshub-backend/internal/server"
)

// @title ETS Hub API
// @version 1.0
// @description Backend for the ETS Hub community site and admin dashboard.

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT session token

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully")
}
