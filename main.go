package main

import (
	api "mailtriage-backend/cmd/api"
	"mailtriage-backend/pkg/config"
	"mailtriage-backend/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.New()

	handler := api.NewHandler(cfg, log)

	log.Info().Str("port", cfg.Port).Msg("server starting")
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
