package application

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"time"

	"github.com/dfryer1193/factsdaily/blog/domain"
)

//go:embed templates/*.html.tmpl
var templateFS embed.FS

const (
	postTemplate  = "post.html.tmpl"
	indexTemplate = "index.html.tmpl"
)

// siteView is SiteConfig as seen by templates. The style sheet comes from
// operator configuration and is trusted.
type siteView struct {
	Title          string
	Description    string
	AffiliateURL   string
	AffiliateLabel string
	Disclosure     string
	StyleSheet     template.CSS
}

type postPage struct {
	Site        siteView
	Date        string
	Title       string
	Fact        string
	Description string
	Year        int
}

type indexPage struct {
	Site  siteView
	Posts []domain.PostEntry
	About template.HTML
	Year  int
}

// PageRenderer renders post and index pages for one site.
// All fact and title text is HTML-escaped by html/template.
type PageRenderer struct {
	site      siteView
	about     template.HTML
	templates *template.Template
}

// NewPageRenderer parses the embedded templates and renders the site's about
// copy once up front.
func NewPageRenderer(site domain.SiteConfig, markdown MarkdownRenderer) (*PageRenderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	about := site.About
	if about == "" {
		about = site.Description
	}
	aboutHTML, err := markdown.Render([]byte(about))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to render about text: %w", domain.ErrConfiguration, err)
	}

	return &PageRenderer{
		site: siteView{
			Title:          site.Title,
			Description:    site.Description,
			AffiliateURL:   site.AffiliateURL,
			AffiliateLabel: site.AffiliateLabel,
			Disclosure:     site.Disclosure,
			StyleSheet:     template.CSS(site.StyleSheet),
		},
		about:     aboutHTML,
		templates: tmpl,
	}, nil
}

// RenderPost renders the page for p. now supplies the footer year.
func (r *PageRenderer) RenderPost(p *domain.Post, now time.Time) ([]byte, error) {
	return r.execute(postTemplate, postPage{
		Site:        r.site,
		Date:        p.Date,
		Title:       p.Title,
		Fact:        p.Fact,
		Description: snippet(p.Fact, maxSnippetLength),
		Year:        now.Year(),
	})
}

// RenderIndex renders the index page listing posts in the order given.
func (r *PageRenderer) RenderIndex(posts []domain.PostEntry, now time.Time) ([]byte, error) {
	return r.execute(indexTemplate, indexPage{
		Site:  r.site,
		Posts: posts,
		About: r.about,
		Year:  now.Year(),
	})
}

func (r *PageRenderer) execute(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", name, err)
	}
	return buf.Bytes(), nil
}
