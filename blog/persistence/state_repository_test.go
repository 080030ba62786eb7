package persistence

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dfryer1193/factsdaily/blog/domain"
)

func TestJSONStateRepository_LoadMissing(t *testing.T) {
	repo := NewStateRepository(filepath.Join(t.TempDir(), "state.json"))

	st, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if st.LastIndex != -1 {
		t.Errorf("LastIndex = %d, want -1", st.LastIndex)
	}
}

func TestJSONStateRepository_Load(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected int
	}{
		{name: "Index", content: `{"last_index": 4}`, expected: 4},
		{name: "Fresh", content: `{"last_index": -1}`, expected: -1},
		{name: "Missing key", content: `{}`, expected: -1},
		{name: "Unknown keys ignored", content: `{"last_index": 2, "extra": true}`, expected: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "state.json")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatalf("failed to write state: %v", err)
			}

			st, err := NewStateRepository(path).Load(context.Background())
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if st.LastIndex != tt.expected {
				t.Errorf("LastIndex = %d, want %d", st.LastIndex, tt.expected)
			}
		})
	}
}

func TestJSONStateRepository_LoadMalformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "Not JSON", content: "last_index=3"},
		{name: "Wrong type", content: `{"last_index": "three"}`},
		{name: "Below fresh", content: `{"last_index": -5}`},
		{name: "Empty file", content: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "state.json")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatalf("failed to write state: %v", err)
			}

			_, err := NewStateRepository(path).Load(context.Background())
			if !errors.Is(err, domain.ErrConfiguration) {
				t.Errorf("Load() error = %v, want ErrConfiguration", err)
			}
		})
	}
}

func TestJSONStateRepository_SaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "state.json")
	repo := NewStateRepository(path)
	ctx := context.Background()

	if err := repo.Save(ctx, domain.RotationState{LastIndex: 3}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := repo.Save(ctx, domain.RotationState{LastIndex: 4}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	st, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if st.LastIndex != 4 {
		t.Errorf("LastIndex = %d, want 4", st.LastIndex)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read state: %v", err)
	}
	if !strings.Contains(string(data), `"last_index": 4`) {
		t.Errorf("state file = %s, want last_index key", data)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("failed to list state dir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("state dir has %d entries, want 1 (no leftover temp files)", len(entries))
	}
}
