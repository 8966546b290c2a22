package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/ZeroDay-Lk/vuldb/api"
	"github.com/ZeroDay-Lk/vuldb/blog/application"
	"github.com/ZeroDay-Lk/vuldb/blog/domain"
)

const (
	defaultRecentLimit  = 3
	defaultRelatedLimit = 3
)

// PostsHandler serves the public read side of the blog.
type PostsHandler struct {
	service *application.PostService
	parser  application.ContentParser
}

func NewPostsHandler(service *application.PostService, parser application.ContentParser) *PostsHandler {
	return &PostsHandler{service: service, parser: parser}
}

// GetPosts lists every post. A store failure is logged and collapsed into an
// empty list so the landing page always renders.
func (h *PostsHandler) GetPosts(c *gin.Context) {
	posts, err := h.service.All(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to list posts")
		c.JSON(http.StatusOK, []api.Post{})
		return
	}

	c.JSON(http.StatusOK, toAPIPosts(posts))
}

// GetFeatured returns the featured post, or 204 when no post is flagged.
func (h *PostsHandler) GetFeatured(c *gin.Context) {
	post, err := h.service.Featured(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to resolve featured post")
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load featured post"})
		return
	}

	if post == nil {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, toAPIPost(*post))
}

// GetRecent returns the most recent posts, excluding the featured one unless
// includeFeatured=true is passed.
func (h *PostsHandler) GetRecent(c *gin.Context) {
	limit := queryInt(c, "limit", defaultRecentLimit)
	includeFeatured := c.Query("includeFeatured") == "true"

	posts, err := h.service.Recent(c.Request.Context(), !includeFeatured, limit)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list recent posts")
		c.JSON(http.StatusOK, []api.Post{})
		return
	}

	c.JSON(http.StatusOK, toAPIPosts(posts))
}

// GetPost returns the full detail payload for one post: the post itself, its
// body parsed into content blocks, and related posts from the same category.
func (h *PostsHandler) GetPost(c *gin.Context) {
	postID := c.Param("postId")

	post, err := h.service.Get(c.Request.Context(), postID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "post not found"})
			return
		}
		log.Error().Err(err).Str("postId", postID).Msg("Failed to get post")
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load post"})
		return
	}

	related, err := h.service.Related(c.Request.Context(), postID, defaultRelatedLimit)
	if err != nil {
		// The post itself loaded; a failed related lookup should not take
		// down the detail page.
		log.Error().Err(err).Str("postId", postID).Msg("Failed to list related posts")
		related = nil
	}

	c.JSON(http.StatusOK, api.PostDetail{
		Post:    toAPIPost(*post),
		Blocks:  toAPIBlocks(h.parser.Parse(post.Content)),
		Related: toAPIPosts(related),
	})
}

// GetCategories returns the derived category index.
func (h *PostsHandler) GetCategories(c *gin.Context) {
	entries, err := h.service.Categories(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to build category index")
		c.JSON(http.StatusOK, []api.Category{})
		return
	}

	c.JSON(http.StatusOK, toAPICategories(entries))
}

// GetCategoryPosts lists the posts under one category slug.
func (h *PostsHandler) GetCategoryPosts(c *gin.Context) {
	slug := c.Param("categorySlug")

	posts, err := h.service.ByCategorySlug(c.Request.Context(), slug)
	if err != nil {
		log.Error().Err(err).Str("slug", slug).Msg("Failed to list posts by category")
		c.JSON(http.StatusOK, []api.Post{})
		return
	}

	c.JSON(http.StatusOK, toAPIPosts(posts))
}

func queryInt(c *gin.Context, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return fallback
	}

	return value
}
