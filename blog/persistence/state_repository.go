package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dfryer1193/factsdaily/blog/domain"
)

var _ domain.StateRepository = (*JSONStateRepository)(nil)

// JSONStateRepository persists the rotation cursor as a small JSON document.
type JSONStateRepository struct {
	path string
}

func NewStateRepository(path string) *JSONStateRepository {
	return &JSONStateRepository{path: path}
}

// Load reads the state file. A missing file is a fresh start.
func (r *JSONStateRepository) Load(ctx context.Context) (domain.RotationState, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return domain.NewRotationState(), nil
	}
	if err != nil {
		return domain.RotationState{}, fmt.Errorf("%w: failed to read state file: %w", domain.ErrIO, err)
	}

	// Absent keys keep the fresh-start default.
	st := domain.NewRotationState()
	if err := json.Unmarshal(data, &st); err != nil {
		return domain.RotationState{}, fmt.Errorf("%w: malformed state file %s: %w", domain.ErrConfiguration, r.path, err)
	}

	if st.LastIndex < -1 {
		return domain.RotationState{}, fmt.Errorf("%w: state file %s has invalid last_index %d", domain.ErrConfiguration, r.path, st.LastIndex)
	}

	return st, nil
}

// Save replaces the state file atomically: the new content is written to a
// temporary file in the same directory and renamed over the old one.
func (r *JSONStateRepository) Save(ctx context.Context, st domain.RotationState) error {
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w: failed to create state directory: %w", domain.ErrIO, err)
	}

	tmp, err := os.CreateTemp(dir, ".state-*.json")
	if err != nil {
		return fmt.Errorf("%w: failed to create temp state file: %w", domain.ErrIO, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("%w: failed to write state: %w", domain.ErrIO, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: failed to close temp state file: %w", domain.ErrIO, err)
	}

	if err := os.Rename(tmpPath, r.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: failed to replace state file: %w", domain.ErrIO, err)
	}

	return nil
}
