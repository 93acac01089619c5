package main

import (
	"os"

	"github.com/calwells/degreeplanner/internal/pkg/logger"
	"github.com/calwells/degreeplanner/internal/server"
)

// @title Degree Planner API
// @version 1.0
// @description API for the degree planning application: accounts, plans and catalog data.

// @host localhost:3001
// @BasePath /
// @schemes http

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	srv, err := server.NewServer()
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
