package rest

import (
	"net/http"
	"path"

	"github.com/dfryer1193/factsdaily/api"
	"github.com/dfryer1193/factsdaily/blog/domain"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type PostsHandler struct {
	lister PostLister
}

func NewPostsHandler(lister PostLister) *PostsHandler {
	return &PostsHandler{lister: lister}
}

// GetPosts lists every post on disk, newest first.
func (h *PostsHandler) GetPosts(c *gin.Context) {
	entries, err := h.lister.ListPosts(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to list posts")
		c.JSON(http.StatusInternalServerError, api.Error{Error: "failed to list posts"})
		return
	}

	posts := make([]api.Post, 0, len(entries))
	for _, e := range entries {
		posts = append(posts, toAPIPost(e))
	}

	c.JSON(http.StatusOK, posts)
}

func (h *PostsHandler) GetPost(c *gin.Context) {
	date := c.Param("date")

	entries, err := h.lister.ListPosts(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Str("date", date).Msg("Failed to list posts")
		c.JSON(http.StatusInternalServerError, api.Error{Error: "failed to list posts"})
		return
	}

	for _, e := range entries {
		if e.Date == date {
			c.JSON(http.StatusOK, toAPIPost(e))
			return
		}
	}

	c.JSON(http.StatusNotFound, api.Error{Error: "post not found"})
}

func toAPIPost(e domain.PostEntry) api.Post {
	return api.Post{
		Date:  e.Date,
		Title: e.Title,
		Path:  path.Join("/posts", e.Filename),
	}
}
