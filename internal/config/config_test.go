package config

import (
	"errors"
	"testing"

	"github.com/dfryer1193/factsdaily/blog/domain"
)

func TestLoadFromDefaults(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{})
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	if cfg.FactsPath != "data/facts.txt" {
		t.Errorf("FactsPath = %q, want %q", cfg.FactsPath, "data/facts.txt")
	}
	if cfg.StatePath != "data/state.json" {
		t.Errorf("StatePath = %q, want %q", cfg.StatePath, "data/state.json")
	}
	if cfg.OutputDir != "docs" {
		t.Errorf("OutputDir = %q, want %q", cfg.OutputDir, "docs")
	}
	if cfg.Ledger.Enabled() {
		t.Error("ledger should be disabled by default")
	}
	if cfg.Site.Title != "AI Facts Daily" {
		t.Errorf("Site.Title = %q, want %q", cfg.Site.Title, "AI Facts Daily")
	}
	if cfg.Site.StyleSheet == "" {
		t.Error("Site.StyleSheet should have a default")
	}
	if cfg.PreviewPort != 8080 {
		t.Errorf("PreviewPort = %d, want 8080", cfg.PreviewPort)
	}
}

func TestLoadFromOverrides(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{
		"FACTS_PATH":         "/srv/facts.txt",
		"STATE_PATH":         "/srv/state.json",
		"OUTPUT_DIR":         "/srv/site",
		"LEDGER_DB_PATH":     "/srv/ledger.db",
		"LOG_LEVEL":          "debug",
		"LOG_PRETTY":         "true",
		"PREVIEW_PORT":       "9090",
		"SITE_TITLE":         "Go Facts",
		"SITE_FACT_LABEL":    "Go Fact",
		"SITE_AFFILIATE_URL": "https://example.com/books",
		"SITE_ABOUT":         "Curated **Go** trivia.",
	})
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	if cfg.FactsPath != "/srv/facts.txt" || cfg.StatePath != "/srv/state.json" || cfg.OutputDir != "/srv/site" {
		t.Errorf("paths not overridden: %+v", cfg)
	}
	if !cfg.Ledger.Enabled() || cfg.Ledger.Path != "/srv/ledger.db" {
		t.Errorf("Ledger.Path = %q, want %q", cfg.Ledger.Path, "/srv/ledger.db")
	}
	if cfg.LogLevel != "debug" || !cfg.LogPretty {
		t.Errorf("logging = (%q, %v), want (debug, true)", cfg.LogLevel, cfg.LogPretty)
	}
	if cfg.PreviewPort != 9090 {
		t.Errorf("PreviewPort = %d, want 9090", cfg.PreviewPort)
	}
	if cfg.Site.Title != "Go Facts" || cfg.Site.FactLabel != "Go Fact" {
		t.Errorf("site = %+v", cfg.Site)
	}
	if cfg.Site.AffiliateURL != "https://example.com/books" {
		t.Errorf("Site.AffiliateURL = %q", cfg.Site.AffiliateURL)
	}
	if cfg.Site.About != "Curated **Go** trivia." {
		t.Errorf("Site.About = %q", cfg.Site.About)
	}
	if cfg.Site.Disclosure == "" {
		t.Error("unset site fields should keep their defaults")
	}
}

func TestLoadFromInvalid(t *testing.T) {
	tests := []struct {
		name    string
		environ map[string]string
	}{
		{name: "Bad log level", environ: map[string]string{"LOG_LEVEL": "loud"}},
		{name: "Port not a number", environ: map[string]string{"PREVIEW_PORT": "http"}},
		{name: "Port out of range", environ: map[string]string{"PREVIEW_PORT": "70000"}},
		{name: "Bad bool", environ: map[string]string{"LOG_PRETTY": "maybe"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFrom(tt.environ)
			if !errors.Is(err, domain.ErrConfiguration) {
				t.Errorf("LoadFrom() error = %v, want ErrConfiguration", err)
			}
		})
	}
}

func TestValidateRequiresPaths(t *testing.T) {
	cfg := Default()
	cfg.FactsPath = ""

	if err := cfg.Validate(); !errors.Is(err, domain.ErrConfiguration) {
		t.Errorf("Validate() error = %v, want ErrConfiguration", err)
	}
}

func TestLoadReadsProcessEnvironment(t *testing.T) {
	t.Setenv("OUTPUT_DIR", "public")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.OutputDir != "public" {
		t.Errorf("OutputDir = %q, want %q", cfg.OutputDir, "public")
	}
}
