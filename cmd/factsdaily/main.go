package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dfryer1193/factsdaily/blog/application"
	"github.com/dfryer1193/factsdaily/blog/domain"
	"github.com/dfryer1193/factsdaily/blog/persistence"
	"github.com/dfryer1193/factsdaily/internal/config"
	"github.com/dfryer1193/factsdaily/internal/logging"
	"github.com/dfryer1193/factsdaily/shared/db/sqlite"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	if err := logging.Setup(cfg.LogLevel, cfg.LogPretty); err != nil {
		log.Fatal().Err(err).Msg("Failed to configure logging")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, cfg)
	stop()

	if err != nil {
		log.Error().Err(err).
			Str("facts", cfg.FactsPath).
			Str("state", cfg.StatePath).
			Msg(failureMessage(err))
	}
	os.Exit(exitCode(err))
}

func run(ctx context.Context, cfg config.Config) error {
	renderer, err := application.NewPageRenderer(cfg.Site, application.NewMarkdownRenderer())
	if err != nil {
		return err
	}

	var opts []application.GeneratorOption
	if cfg.Ledger.Enabled() {
		opts = append(opts, application.WithLedgerOpener(ledgerOpener(cfg.Ledger)))
	}

	generator := application.NewPostGenerator(
		persistence.NewFileFactSource(cfg.FactsPath),
		persistence.NewStateRepository(cfg.StatePath),
		persistence.NewPageStore(cfg.OutputDir, cfg.Site.FactLabel),
		renderer,
		cfg.Site.FactLabel,
		opts...,
	)

	_, err = generator.Generate(ctx)
	return err
}

// ledgerOpener defers connecting to the ledger database until the generator
// asks for it.
func ledgerOpener(cfg sqlite.SQLiteConfig) application.LedgerOpener {
	return func(ctx context.Context) (domain.PostLedger, func() error, error) {
		ledgerDB := sqlite.NewSQLiteDB(&cfg)
		if err := ledgerDB.Connect(); err != nil {
			return nil, nil, fmt.Errorf("%w: %w", domain.ErrIO, err)
		}
		return persistence.NewPostRepository(ledgerDB.DB()), ledgerDB.Close, nil
	}
}

func failureMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrNoFacts):
		return "Cannot generate a post: add at least one fact per line to the facts file"
	case errors.Is(err, domain.ErrConfiguration):
		return "Cannot generate a post: check the state file and site configuration"
	case errors.Is(err, domain.ErrIO):
		return "Failed to write site files"
	default:
		return "Failed to generate post"
	}
}

func exitCode(err error) int {
	if err != nil {
		return 1
	}
	return 0
}
