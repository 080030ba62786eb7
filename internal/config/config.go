// Package config loads runtime configuration from environment variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/dfryer1193/factsdaily/blog/domain"
	"github.com/dfryer1193/factsdaily/shared/db/sqlite"
	"github.com/rs/zerolog"
)

// Config is shared by the generator and the preview server.
type Config struct {
	FactsPath   string `env:"FACTS_PATH"`
	StatePath   string `env:"STATE_PATH"`
	OutputDir   string `env:"OUTPUT_DIR"`
	LogLevel    string `env:"LOG_LEVEL"`
	LogPretty   bool   `env:"LOG_PRETTY"`
	PreviewPort int    `env:"PREVIEW_PORT"`

	Ledger sqlite.SQLiteConfig
	Site   domain.SiteConfig `envPrefix:"SITE_"`
}

// Default returns the configuration used when no variables are set.
func Default() Config {
	return Config{
		FactsPath:   defaultFactsPath,
		StatePath:   defaultStatePath,
		OutputDir:   defaultOutputDir,
		LogLevel:    defaultLogLevel,
		PreviewPort: defaultPreviewPort,
		Site: domain.SiteConfig{
			Title:          defaultSiteTitle,
			Description:    defaultSiteDescription,
			AffiliateURL:   defaultAffiliateURL,
			AffiliateLabel: defaultAffiliateLabel,
			Disclosure:     defaultDisclosure,
			StyleSheet:     defaultStyleSheet,
			FactLabel:      defaultFactLabel,
		},
	}
}

// Load overlays the process environment on Default.
func Load() (Config, error) {
	return parse(env.Options{})
}

// LoadFrom overlays environ on Default instead of the process environment.
func LoadFrom(environ map[string]string) (Config, error) {
	return parse(env.Options{Environment: environ})
}

func parse(opts env.Options) (Config, error) {
	cfg := Default()
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("%w: parse env: %w", domain.ErrConfiguration, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate rejects configurations the generator cannot run with.
func (c Config) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"FACTS_PATH", c.FactsPath},
		{"STATE_PATH", c.StatePath},
		{"OUTPUT_DIR", c.OutputDir},
		{"SITE_TITLE", c.Site.Title},
		{"SITE_FACT_LABEL", c.Site.FactLabel},
	}
	for _, r := range required {
		if r.value == "" {
			return fmt.Errorf("%w: %s must not be empty", domain.ErrConfiguration, r.name)
		}
	}

	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: invalid LOG_LEVEL %q", domain.ErrConfiguration, c.LogLevel)
	}

	if c.PreviewPort <= 0 || c.PreviewPort > 65535 {
		return fmt.Errorf("%w: invalid PREVIEW_PORT %d", domain.ErrConfiguration, c.PreviewPort)
	}

	return nil
}
