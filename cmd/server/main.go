package main

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/go-card/card-bank/cmd/httpserver"
	"github.com/go-card/card-bank/internal/middleware"
	"github.com/go-card/card-bank/pkg/clockpkg"
	"github.com/go-card/card-bank/pkg/configpkg"
)

func main() {
	config, err := configpkg.Load("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := middleware.GetLogger(config)

	server, err := httpserver.New(clockpkg.Real{}, logger, config)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot create server")
	}

	err = http.ListenAndServe(config.ServerAddress, server)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot start server")
	}
}
