package cmd

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"finance-engine/config"
	httpLayer "finance-engine/http"
	"finance-engine/service"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Start the JSON HTTP API.

Settings come from the config file given with --config and can be
overridden with FINANCE_ADDR, FINANCE_REDIS_ADDR, FINANCE_DB_DSN,
GIN_MODE, LOG_FORMAT, LOG_LEVEL and CORS_ALLOW_ORIGINS.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	setupLogging(cfg, os.Stdout)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cache, closeCache, err := openCache(ctx, cfg.Cache)
	if err != nil {
		return err
	}
	defer closeQuietly("cache", closeCache)

	repo, closeStore, err := openStore(cfg.Store)
	if err != nil {
		return err
	}
	defer closeQuietly("store", closeStore)

	toolService := service.NewToolService(cache, repo, service.Limits{
		MaxSimulationMonths: cfg.Limits.MaxSimulationMonths,
	})
	loanService := service.NewLoanService(repo)

	opts := httpLayer.RouterOptions{AllowOrigins: cfg.CORS.AllowOrigins}
	if cfg.RateLimit.Enabled {
		limiter := httpLayer.NewRateLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window.Duration)
		defer limiter.Stop()
		opts.Limiter = limiter
	}

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      httpLayer.NewRouter(opts, toolService, loanService),
		ReadTimeout:  cfg.Server.ReadTimeout.Duration,
		WriteTimeout: cfg.Server.WriteTimeout.Duration,
		IdleTimeout:  cfg.Server.IdleTimeout.Duration,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Server.Addr).Str("cache", cfg.Cache.Driver).Str("store", cfg.Store.Driver).Msg("API listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return errors.Wrap(err, "starting server")
	case <-ctx.Done():
		log.Info().Msg("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout.Duration)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "server shutdown")
	}

	log.Info().Msg("server exited")
	return nil
}

func closeQuietly(name string, fn closer) {
	if err := fn(); err != nil {
		log.Warn().Err(err).Str("component", name).Msg("close failed")
	}
}
