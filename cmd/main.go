// Package finapi provides the API to manage customer accounts and their statements.
package main

import (
	"github.com/rs/zerolog/log"

	"github.com/go-fin/fin-api/cmd/httpserver"
	"github.com/go-fin/fin-api/internal/middleware"
	"github.com/go-fin/fin-api/pkg/configpkg"
)

func main() {
	config, err := configpkg.Load("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := middleware.CreateLogger(config)

	server := httpserver.New(logger, config)

	logger.Info().Str("address", config.ServerAddress).Msg("FIN API SERVER HAS STARTED")

	err = server.Engine.Run(config.ServerAddress)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot start server")
	}
}
