package main

import (
	"net/http"
	"os"

	"github.com/bkraemer/tde-import/internal/config"
	"github.com/bkraemer/tde-import/internal/fetch"
	"github.com/bkraemer/tde-import/internal/logger"
	"github.com/bkraemer/tde-import/internal/server"
	"github.com/bkraemer/tde-import/internal/tde"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Error("loading configuration", nil, err)
		os.Exit(1)
	}

	logger.SetDefault(logger.New(logger.ParseLevel(cfg.LogLevel), os.Stderr))

	client := fetch.New(
		fetch.WithTimeout(cfg.FetchTimeout),
		fetch.WithRetries(cfg.FetchRetries),
		fetch.WithUserAgent(cfg.UserAgent),
	)
	importer := tde.NewImporter(client)
	srv := server.New(importer, cfg.AllowedOrigins)

	logger.Info("tde-import server listening", logger.Fields{"addr": cfg.Addr})
	if err := http.ListenAndServe(cfg.Addr, srv.Router()); err != nil {
		logger.Error("server stopped", nil, err)
		os.Exit(1)
	}
}
