package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"walletscan/internal/cache"
	"walletscan/internal/config"
	"walletscan/internal/core"
	"walletscan/internal/db"
	"walletscan/internal/etherscan"
	"walletscan/internal/http/handler"
	"walletscan/internal/http/middleware"
	"walletscan/internal/http/payload"
	"walletscan/internal/http/server"
	"walletscan/internal/metrics"
	"walletscan/internal/repository"
	"walletscan/pkg/log"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/afero"
)

const serviceName = "walletscan"

func Start() error {
	config, err := config.NewApp(context.Background())
	if err != nil {
		return fmt.Errorf("create config: %w", err)
	}

	logger := log.NewZapLogger(serviceName, log.ParseLevel(config.LogLevel))
	defer logger.Sync() //nolint:errcheck

	if config.Explorer.APIKey == "" {
		logger.Warnw("ETHERSCAN_API_KEY is not set, ingestion requests will fail")
	}

	dbConn, err := db.NewPostgresDB(config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// repository
	repo := repository.NewTransactionRepository(dbConn)

	err = repo.MigrateTables()
	if err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	collector := metrics.NewCollector(prometheus.DefaultRegisterer)

	// explorer client; per-call timeouts come from the options
	explorer := etherscan.NewClient(
		logger,
		&http.Client{},
		etherscan.Options{
			BaseURL:      config.Explorer.BaseURL,
			APIKey:       config.Explorer.APIKey,
			ChainID:      config.Explorer.ChainID,
			HeadTimeout:  config.Explorer.HeadTimeout,
			FetchTimeout: config.Explorer.FetchTimeout,
		},
		collector)

	payloadCache := cache.NewFileCache(afero.NewOsFs(), config.CacheDir)

	// ingester
	ingester := core.NewIngester(
		logger,
		repo,
		explorer,
		explorer,
		payloadCache,
		collector,
		core.Options{
			RecentBlockThreshold: config.Explorer.RecentBlockThreshold,
			PageSize:             config.PageSize,
		})

	// handler
	queryHlr := handler.NewQueryHandler(
		logger,
		payload.DecodeValidator{},
		ingester,
		dbConn)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger, collector).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes
	mux.HandleFunc(handler.SubmitQuery, queryHlr.HandleSubmitQuery)
	mux.HandleFunc(handler.DeleteQuery, queryHlr.HandleDeleteQuery)
	mux.HandleFunc(handler.GetTransactions, queryHlr.HandleGetTransactions)
	mux.HandleFunc(handler.GetCache, queryHlr.HandleGetCachedPayload)
	mux.HandleFunc(handler.Health, queryHlr.HandleHealth)
	mux.Handle("GET /metrics", promhttp.Handler())

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == nil || err == http.ErrServerClosed {
		if sdErr != nil {
			return fmt.Errorf("server shutdown: %w", sdErr)
		}
		return nil
	}

	return err
}
