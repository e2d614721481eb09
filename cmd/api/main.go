package main

import (
	"os"

	"github.com/yigit/mergington/internal/pkg/logger"
	"github.com/yigit/mergington/internal/server"
)

// @title Mergington Activities API
// @version 1.0
// @description API for signing up to Mergington High School extracurricular activities

// @contact.name Mergington High School IT
// @contact.email it@mergington.edu

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run blocks until a shutdown signal arrives
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
