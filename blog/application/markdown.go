package application

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"unicode/utf8"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

const maxSnippetLength = 160

// externalLinkTransformer opens absolute links in a new tab without passing
// referrer or ranking signals to the target.
type externalLinkTransformer struct{}

func (t *externalLinkTransformer) Transform(node *ast.Document, reader text.Reader, pc parser.Context) {
	ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		var dest string
		switch l := n.(type) {
		case *ast.Link:
			dest = string(l.Destination)
		case *ast.AutoLink:
			dest = string(l.URL(reader.Source()))
		default:
			return ast.WalkContinue, nil
		}

		if isExternalLink(dest) {
			n.SetAttributeString("target", []byte("_blank"))
			n.SetAttributeString("rel", []byte("nofollow noopener"))
		}

		return ast.WalkContinue, nil
	})
}

func isExternalLink(dest string) bool {
	return strings.HasPrefix(dest, "http://") ||
		strings.HasPrefix(dest, "https://") ||
		strings.HasPrefix(dest, "//")
}

// MarkdownRenderer converts trusted site copy written in markdown to HTML.
type MarkdownRenderer interface {
	Render(markdown []byte) (template.HTML, error)
}

type goldmarkRenderer struct {
	md goldmark.Markdown
}

// NewMarkdownRenderer returns a renderer that drops raw HTML from its input.
func NewMarkdownRenderer() MarkdownRenderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.Linkify,
			extension.Strikethrough,
		),
		goldmark.WithParserOptions(
			parser.WithASTTransformers(
				util.Prioritized(&externalLinkTransformer{}, 100),
			),
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
		),
	)

	return &goldmarkRenderer{md: md}
}

func (r *goldmarkRenderer) Render(markdown []byte) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.md.Convert(markdown, &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown to HTML: %w", err)
	}

	// goldmark escapes text and omits raw HTML unless html.WithUnsafe is set.
	return template.HTML(buf.String()), nil
}

// snippet collapses whitespace in s and truncates it on a word boundary.
func snippet(s string, maxLength int) string {
	s = strings.Join(strings.Fields(s), " ")
	if len(s) <= maxLength {
		return s
	}

	for maxLength > 0 && !utf8.RuneStart(s[maxLength]) {
		maxLength--
	}
	s = s[:maxLength]
	if lastSpace := strings.LastIndexAny(s, " \t"); lastSpace > 0 {
		s = s[:lastSpace]
	}
	return strings.TrimRight(s, " ,.;:") + "..."
}
