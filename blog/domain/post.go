package domain

import (
	"context"
	"time"
)

// DateLayout is the ISO 8601 calendar date used for post identifiers and filenames.
const DateLayout = "2006-01-02"

// PostExt is the extension of every generated post file.
const PostExt = ".html"

// Post represents a generated daily post.
// A post is identified by its date; generating twice on the same date replaces it.
type Post struct {
	Date        string
	Title       string
	Fact        string
	FactIndex   int
	Filename    string
	HTMLContent []byte
	CreatedAt   time.Time
}

// PostEntry is a post as discovered on disk, used to build the index page.
type PostEntry struct {
	Date     string
	Filename string
	Title    string
}

// PostFilename returns the filename for a post published on date.
func PostFilename(date string) string {
	return date + PostExt
}

// PageStore owns the generated site on disk.
type PageStore interface {
	EnsureLayout(ctx context.Context) error
	WritePost(ctx context.Context, filename string, content []byte) error
	// ListPosts returns every post file present, newest first.
	ListPosts(ctx context.Context) ([]PostEntry, error)
	WriteIndex(ctx context.Context, content []byte) error
}

// PostLedger keeps a durable history of generated posts and rotation advances.
type PostLedger interface {
	RecordPost(ctx context.Context, p *Post) error
}
