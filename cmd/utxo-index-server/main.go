package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/go-edu/utxo-merkle-index/internal/config"
	"github.com/go-edu/utxo-merkle-index/internal/forest"
	"github.com/go-edu/utxo-merkle-index/internal/handlers"
	"github.com/go-edu/utxo-merkle-index/internal/metrics"
	"github.com/go-edu/utxo-merkle-index/internal/middleware"
	"github.com/go-edu/utxo-merkle-index/internal/store"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logger := setupLogger(&cfg.Logging)
	logger.Info().Msg("starting utxo index server")

	m := metrics.New()

	st, err := store.Open(cfg.Data)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open store")
	}
	defer st.Close()

	ctx := context.Background()
	records, err := st.LoadInitial(ctx)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load initial rows")
	}

	f, err := forest.Build(records)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build forest")
	}
	root, idx := f.TopRoot()
	logger.Info().Str("root", root.Hex()).Uint64("idx", idx).Msg("forest built")

	state := handlers.NewState(f, st, logger, m)

	router := setupRouter(cfg, state, logger, m)

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info().Msgf("server starting on %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("server shutdown failed")
	}

	logger.Info().Msg("server stopped gracefully")
}

func setupLogger(cfg *config.LoggingConfig) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	var logger zerolog.Logger
	if cfg.Format == "console" {
		logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	} else {
		logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	}
	return logger
}

func setupRouter(cfg *config.Config, state *handlers.State, logger zerolog.Logger, m *metrics.Metrics) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", handlers.Health(logger))
	mux.HandleFunc("/ready", handlers.Ready(state))
	if cfg.Metrics.Enabled {
		mux.Handle("/metrics", promhttp.Handler())
	}

	mux.HandleFunc("/getroot", handlers.GetRoot(state))
	mux.HandleFunc("/getout", handlers.GetOut(state))
	mux.HandleFunc("/getouts", handlers.GetOuts(state))
	mux.HandleFunc("/getchildren", handlers.GetChildren(state))
	mux.HandleFunc("/getnumleaves", handlers.GetNumLeaves(state))
	mux.HandleFunc("/update", handlers.Update(state))

	return middleware.Chain(
		mux,
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logging(logger),
		middleware.Metrics(m),
		middleware.RateLimit(cfg.RateLimit),
	)
}
