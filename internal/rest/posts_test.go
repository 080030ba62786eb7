package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dfryer1193/factsdaily/api"
	"github.com/dfryer1193/factsdaily/blog/domain"
	"github.com/dfryer1193/factsdaily/blog/persistence"
	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupSite(t *testing.T) *persistence.FilePageStore {
	t.Helper()

	store := persistence.NewPageStore(t.TempDir(), "AI Fact")
	ctx := context.Background()
	if err := store.EnsureLayout(ctx); err != nil {
		t.Fatalf("EnsureLayout() error = %v", err)
	}
	if err := store.WriteIndex(ctx, []byte("<h1>index</h1>")); err != nil {
		t.Fatalf("WriteIndex() error = %v", err)
	}
	for _, date := range []string{"2026-10-17", "2026-10-18"} {
		if err := store.WritePost(ctx, date+".html", []byte("<p>"+date+"</p>")); err != nil {
			t.Fatalf("WritePost() error = %v", err)
		}
	}
	return store
}

func newRouter(site Site) *gin.Engine {
	router := gin.New()
	NewApi(router, site)
	return router
}

func serve(router *gin.Engine, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestGetPosts(t *testing.T) {
	router := newRouter(setupSite(t))

	w := serve(router, "/api/v1/posts")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var posts []api.Post
	if err := json.Unmarshal(w.Body.Bytes(), &posts); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	expected := []api.Post{
		{Date: "2026-10-18", Title: "AI Fact (2026-10-18)", Path: "/posts/2026-10-18.html"},
		{Date: "2026-10-17", Title: "AI Fact (2026-10-17)", Path: "/posts/2026-10-17.html"},
	}
	if len(posts) != len(expected) {
		t.Fatalf("got %d posts, want %d", len(posts), len(expected))
	}
	for i := range expected {
		if posts[i] != expected[i] {
			t.Errorf("posts[%d] = %+v, want %+v", i, posts[i], expected[i])
		}
	}
}

func TestGetPost(t *testing.T) {
	router := newRouter(setupSite(t))

	tests := []struct {
		name     string
		target   string
		expected int
	}{
		{name: "Existing post", target: "/api/v1/posts/2026-10-17", expected: http.StatusOK},
		{name: "Unknown date", target: "/api/v1/posts/2020-01-01", expected: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(router, tt.target)
			if w.Code != tt.expected {
				t.Errorf("status = %d, want %d", w.Code, tt.expected)
			}
		})
	}
}

func TestServesGeneratedFiles(t *testing.T) {
	router := newRouter(setupSite(t))

	tests := []struct {
		target   string
		contains string
	}{
		{target: "/", contains: "<h1>index</h1>"},
		{target: "/posts/2026-10-18.html", contains: "<p>2026-10-18</p>"},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			w := serve(router, tt.target)
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
			}
			if !strings.Contains(w.Body.String(), tt.contains) {
				t.Errorf("body = %q, want %q", w.Body.String(), tt.contains)
			}
		})
	}
}

type brokenSite struct {
	*persistence.FilePageStore
}

func (brokenSite) ListPosts(ctx context.Context) ([]domain.PostEntry, error) {
	return nil, errors.New("disk unavailable")
}

func TestGetPostsListFailure(t *testing.T) {
	store := persistence.NewPageStore(filepath.Join(t.TempDir(), "docs"), "AI Fact")
	router := newRouter(brokenSite{store})

	w := serve(router, "/api/v1/posts")
	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", w.Code, http.StatusInternalServerError)
	}
}

func TestPostFilesNotFoundWhenMissing(t *testing.T) {
	store := setupSite(t)
	if err := os.Remove(filepath.Join(store.PostsDir(), "2026-10-18.html")); err != nil {
		t.Fatalf("failed to remove post: %v", err)
	}
	router := newRouter(store)

	w := serve(router, "/posts/2026-10-18.html")
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestRoutes(t *testing.T) {
	router := newRouter(setupSite(t))

	tests := []struct {
		target string
		status int
	}{
		{target: "/api/v1/posts", status: http.StatusOK},
		{target: "/api/v1/posts/2026-10-17", status: http.StatusOK},
		{target: "/index.html", status: http.StatusOK},
		// /posts/* belongs to the static post files
		{target: "/posts/v1/", status: http.StatusNotFound},
		{target: "/posts/v1/2026-10-17", status: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			if w := serve(router, tt.target); w.Code != tt.status {
				t.Errorf("GET %s status = %d, want %d", tt.target, w.Code, tt.status)
			}
		})
	}
}
