package domain

// SiteConfig holds the fixed content rendered into every page.
type SiteConfig struct {
	Title          string `env:"TITLE"`
	Description    string `env:"DESCRIPTION"`
	AffiliateURL   string `env:"AFFILIATE_URL"`
	AffiliateLabel string `env:"AFFILIATE_LABEL"`
	Disclosure     string `env:"DISCLOSURE"`
	StyleSheet     string `env:"STYLE_SHEET"`
	// FactLabel prefixes post titles, e.g. "AI Fact #3".
	FactLabel string `env:"FACT_LABEL"`
	// About is markdown shown on the index page. Falls back to Description.
	About string `env:"ABOUT"`
}
