package main

import (
	"os"

	"github.com/eduadvisor/backoffice/internal/pkg/logger"
	"github.com/eduadvisor/backoffice/internal/server"
)

// @title EduAdvisor Back Office API
// @version 1.0
// @description Inquiry intake, consultant portal, admin dashboard and advisor chat
// @BasePath /api
// @schemes http https

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
