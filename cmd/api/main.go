package main

import (
	"os"

	"github.com/2403A51L17/SESD-Project/internal/pkg/logger"
	"github.com/2403A51L17/SESD-Project/internal/server"
)

// @title Student Mentorship Platform API
// @version 1.0
// @description API for the student and mentor collaboration platform

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Session token for authorization

func main() {
	srv, err := server.NewServer()
	if err != nil {
		// Error details are logged within NewServer's setup functions
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
