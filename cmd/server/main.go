// MovieHub - Movie Catalog, Reviews, and Recommendations
// Copyright 2026 MovieHub Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moviehub/moviehub

// Package main is the entry point for the MovieHub recommendation server.
//
// The server initializes components in the following order:
//
//  1. Configuration: layered loading via Koanf v2 (ENV > file > defaults)
//  2. Logging: global zerolog logger
//  3. Store: in-memory catalog, optionally seeded from a JSON fixture
//  4. Engine: the recommendation engine over the store
//  5. HTTP server: chi router with the /api/v1 surface and /metrics
//
// # Configuration
//
// Common environment variables:
//   - HTTP_PORT: listen port (default 8080)
//   - LOG_LEVEL, LOG_FORMAT: logging settings
//   - STORE_SEED_PATH: JSON fixture with movies, users, reviews, favorites
//   - RECOMMEND_LIKE_THRESHOLD: minimum rating counted as a like (default 7)
//
// # Signal Handling
//
// The server shuts down gracefully on SIGINT and SIGTERM, waiting for
// in-flight requests up to the configured shutdown timeout.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/moviehub/moviehub/internal/api"
	"github.com/moviehub/moviehub/internal/config"
	"github.com/moviehub/moviehub/internal/logging"
	"github.com/moviehub/moviehub/internal/metrics"
	"github.com/moviehub/moviehub/internal/recommend"
	"github.com/moviehub/moviehub/internal/store"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("version", version).
		Str("addr", cfg.Server.Addr()).
		Msg("Starting MovieHub")

	st := store.NewMemStore()
	if cfg.Store.SeedPath != "" {
		if err := st.LoadFixture(cfg.Store.SeedPath); err != nil {
			logging.Fatal().Err(err).Str("path", cfg.Store.SeedPath).Msg("Failed to load seed fixture")
		}
		movies, users, reviews := st.Counts()
		metrics.SetCatalogSize(movies, users, reviews)
		logging.Info().
			Int("movies", movies).
			Int("users", users).
			Int("reviews", reviews).
			Msg("Catalog seeded")
	} else {
		logging.Warn().Msg("No seed fixture configured, starting with an empty catalog")
	}

	engine, err := recommend.NewEngine(st, recommend.DefaultMoodTaxonomy(), &cfg.Recommend, logging.Logger())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create recommendation engine")
	}

	handler := api.NewHandler(engine, st, version)
	router := api.NewRouter(handler, cfg.Security)

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", srv.Addr).Msg("HTTP server listening")
		errCh <- srv.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logging.Info().Str("signal", sig.String()).Msg("Shutdown signal received")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("HTTP server failed")
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("Graceful shutdown failed")
		return
	}

	logging.Info().Msg("Server stopped")
}
