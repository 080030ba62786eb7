package persistence

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/dfryer1193/factsdaily/blog/domain"
	"github.com/rs/zerolog/log"
)

var _ domain.PageStore = (*FilePageStore)(nil)

const (
	postsDirName  = "posts"
	indexFilename = "index.html"
)

// FilePageStore writes the site into outputDir:
//
//	outputDir/index.html
//	outputDir/posts/YYYY-MM-DD.html
type FilePageStore struct {
	outputDir string
	postsDir  string
	label     string
}

// NewPageStore creates a store rooted at outputDir. label is used to derive
// index display titles for posts found on disk.
func NewPageStore(outputDir, label string) *FilePageStore {
	return &FilePageStore{
		outputDir: outputDir,
		postsDir:  filepath.Join(outputDir, postsDirName),
		label:     label,
	}
}

func (s *FilePageStore) OutputDir() string {
	return s.outputDir
}

func (s *FilePageStore) PostsDir() string {
	return s.postsDir
}

func (s *FilePageStore) IndexPath() string {
	return filepath.Join(s.outputDir, indexFilename)
}

// EnsureLayout creates the output and posts directories if absent.
func (s *FilePageStore) EnsureLayout(ctx context.Context) error {
	if err := os.MkdirAll(s.postsDir, 0755); err != nil {
		return fmt.Errorf("%w: failed to create posts directory: %w", domain.ErrIO, err)
	}
	return nil
}

// WritePost writes a post file, replacing any existing file of the same name.
func (s *FilePageStore) WritePost(ctx context.Context, filename string, content []byte) error {
	if filename == "" || filename != filepath.Base(filename) {
		return fmt.Errorf("invalid post filename %q", filename)
	}

	if err := os.WriteFile(filepath.Join(s.postsDir, filename), content, 0644); err != nil {
		return fmt.Errorf("%w: failed to write post file: %w", domain.ErrIO, err)
	}
	return nil
}

func (s *FilePageStore) WriteIndex(ctx context.Context, content []byte) error {
	if err := os.WriteFile(s.IndexPath(), content, 0644); err != nil {
		return fmt.Errorf("%w: failed to write index file: %w", domain.ErrIO, err)
	}
	return nil
}

// ListPosts returns every dated post file in the posts directory, newest first.
// Filenames are ISO dates, so lexicographic order is chronological order.
func (s *FilePageStore) ListPosts(ctx context.Context) ([]domain.PostEntry, error) {
	dirEntries, err := os.ReadDir(s.postsDir)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list posts directory: %w", domain.ErrIO, err)
	}

	posts := make([]domain.PostEntry, 0, len(dirEntries))
	for _, e := range dirEntries {
		if e.IsDir() {
			continue
		}

		name := e.Name()
		date, ok := strings.CutSuffix(name, domain.PostExt)
		if !ok {
			continue
		}
		if _, err := time.Parse(domain.DateLayout, date); err != nil {
			log.Debug().Str("file", name).Msg("Skipping non-dated file in posts directory")
			continue
		}

		posts = append(posts, domain.PostEntry{
			Date:     date,
			Filename: name,
			Title:    EntryTitle(s.label, date),
		})
	}

	sort.Slice(posts, func(i, j int) bool {
		return posts[i].Filename > posts[j].Filename
	})

	return posts, nil
}

// EntryTitle derives the index display title for a post from its date.
func EntryTitle(label, date string) string {
	return fmt.Sprintf("%s (%s)", label, date)
}
