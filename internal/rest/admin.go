package rest

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/ZeroDay-Lk/vuldb/api"
	"github.com/ZeroDay-Lk/vuldb/blog/domain"
	"github.com/ZeroDay-Lk/vuldb/internal/auth"
)

// AdminHandler owns the session-gated write side: login/logout and post CRUD.
type AdminHandler struct {
	repo     domain.PostRepository
	sessions *auth.Sessions
	password string
}

func NewAdminHandler(repo domain.PostRepository, sessions *auth.Sessions, password string) *AdminHandler {
	return &AdminHandler{repo: repo, sessions: sessions, password: password}
}

// Login exchanges the admin password for a session token.
func (h *AdminHandler) Login(c *gin.Context) {
	var req api.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "password is required"})
		return
	}

	if subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.password)) != 1 {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "invalid password"})
		return
	}

	token, expiry := h.sessions.Issue()
	c.JSON(http.StatusOK, api.LoginResponse{
		Token:     token,
		ExpiresAt: expiry.UTC().Format(time.RFC3339),
	})
}

// Logout revokes the caller's session token.
func (h *AdminHandler) Logout(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if token, found := cutBearer(header); found {
		h.sessions.Revoke(token)
	}

	c.Status(http.StatusNoContent)
}

// CreatePost inserts a new post and returns its assigned id.
func (h *AdminHandler) CreatePost(c *gin.Context) {
	var req api.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "title, excerpt, content, and category are required"})
		return
	}

	id, err := h.repo.Create(c.Request.Context(), domain.PostDraft{
		Title:    req.Title,
		Excerpt:  req.Excerpt,
		Content:  req.Content,
		Category: req.Category,
		ReadTime: req.ReadTime,
		ImageSrc: req.ImageSrc,
		Featured: req.Featured,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNoAuthor) {
			c.JSON(http.StatusUnprocessableEntity, api.ErrorResponse{Error: "no author record available"})
			return
		}
		log.Error().Err(err).Msg("Failed to create post")
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to create post"})
		return
	}

	c.JSON(http.StatusCreated, api.CreatePostResponse{ID: id})
}

// UpdatePost applies a partial update to an existing post.
func (h *AdminHandler) UpdatePost(c *gin.Context) {
	postID := c.Param("postId")

	var req api.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid update payload"})
		return
	}

	patch := domain.PostPatch{
		Title:    req.Title,
		Excerpt:  req.Excerpt,
		Content:  req.Content,
		Category: req.Category,
		ReadTime: req.ReadTime,
		ImageSrc: req.ImageSrc,
		Featured: req.Featured,
	}

	if err := h.repo.Update(c.Request.Context(), postID, patch); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "post not found"})
			return
		}
		log.Error().Err(err).Str("postId", postID).Msg("Failed to update post")
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to update post"})
		return
	}

	c.Status(http.StatusNoContent)
}

// DeletePost removes a post. Deleting an already-absent id succeeds.
func (h *AdminHandler) DeletePost(c *gin.Context) {
	postID := c.Param("postId")

	if err := h.repo.Delete(c.Request.Context(), postID); err != nil {
		log.Error().Err(err).Str("postId", postID).Msg("Failed to delete post")
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to delete post"})
		return
	}

	c.Status(http.StatusNoContent)
}

func cutBearer(header string) (string, bool) {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || header[:len(prefix)] != prefix {
		return "", false
	}
	return header[len(prefix):], true
}
