// Package main runs the mini bank HTTP API over an in-memory ledger.
package main

import (
	"github.com/rs/zerolog/log"

	"github.com/go-petr/mini-bank/cmd/httpserver"
	"github.com/go-petr/mini-bank/internal/middleware"
	"github.com/go-petr/mini-bank/pkg/configpkg"
)

func main() {
	config, err := configpkg.Load("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := middleware.GetLogger(config)

	server, err := httpserver.New(logger, config)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot create server")
	}

	logger.Info().Str("address", config.ServerAddress).Msg("MINI BANK SERVER HAS STARTED")

	err = server.Engine.Run(config.ServerAddress)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot start server")
	}
}
