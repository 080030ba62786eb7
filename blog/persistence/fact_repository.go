package persistence

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/dfryer1193/factsdaily/blog/domain"
)

var _ domain.FactSource = (*FileFactSource)(nil)

// FileFactSource reads facts from a plain text file, one per line.
type FileFactSource struct {
	path string
}

func NewFileFactSource(path string) *FileFactSource {
	return &FileFactSource{path: path}
}

func (s *FileFactSource) Location() string {
	return s.path
}

// LoadFacts reads the file, trimming each line and skipping blank ones.
func (s *FileFactSource) LoadFacts(ctx context.Context) (domain.FactList, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %w: fact source %s does not exist", domain.ErrConfiguration, domain.ErrNoFacts, s.path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open fact source: %w", domain.ErrIO, err)
	}
	defer f.Close()

	facts := make(domain.FactList, 0)
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		facts = append(facts, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to read fact source: %w", domain.ErrIO, err)
	}

	if len(facts) == 0 {
		return nil, fmt.Errorf("%w: %w: fact source %s is empty", domain.ErrConfiguration, domain.ErrNoFacts, s.path)
	}

	return facts, nil
}
