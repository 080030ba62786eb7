package rest

import (
	"context"

	"github.com/dfryer1193/factsdaily/blog/domain"
	"github.com/gin-gonic/gin"
)

// PostLister lists the posts currently present in the output directory.
type PostLister interface {
	ListPosts(ctx context.Context) ([]domain.PostEntry, error)
}

// Site locates the generated output to serve.
type Site interface {
	PostLister
	IndexPath() string
	PostsDir() string
}

// NewApi serves the generated site and a read-only JSON listing of its posts.
func NewApi(router *gin.Engine, site Site) {
	router.StaticFile("/", site.IndexPath())
	router.StaticFile("/index.html", site.IndexPath())
	router.Static("/posts", site.PostsDir())

	posts := NewPostsHandler(site)
	postsV1 := router.Group("api/v1/posts")
	{
		postsV1.GET("", posts.GetPosts)
		postsV1.GET("/:date", posts.GetPost)
	}
}
