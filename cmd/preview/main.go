package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dfryer1193/factsdaily/blog/persistence"
	"github.com/dfryer1193/factsdaily/internal/config"
	"github.com/dfryer1193/factsdaily/internal/logging"
	"github.com/dfryer1193/factsdaily/internal/middleware"
	"github.com/dfryer1193/factsdaily/internal/rest"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const shutdownTimeout = 5 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	if err := logging.Setup(cfg.LogLevel, cfg.LogPretty); err != nil {
		log.Fatal().Err(err).Msg("Failed to configure logging")
	}

	site := persistence.NewPageStore(cfg.OutputDir, cfg.Site.FactLabel)
	if _, err := os.Stat(site.IndexPath()); err != nil {
		log.Warn().Err(err).Str("output", cfg.OutputDir).Msg("No generated index found; run factsdaily first")
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(middleware.LoggingMiddleware())
	router.Use(gin.CustomRecovery(middleware.HandlePanics()))
	rest.NewApi(router, site)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.PreviewPort),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Str("output", cfg.OutputDir).Msg("Serving preview")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down preview server...")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to shutdown server")
	}

	log.Info().Msg("Preview server stopped")
}
