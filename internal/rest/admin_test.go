package rest

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZeroDay-Lk/vuldb/api"
	"github.com/ZeroDay-Lk/vuldb/internal/auth"
)

func TestLoginIssuesToken(t *testing.T) {
	router := newTestRouter(sampleRepo(), auth.NewSessions(time.Hour))

	w := doRequest(t, router, http.MethodPost, "/api/v1/admin/login", `{"password":"admin123"}`, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp api.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.NotEmpty(t, resp.ExpiresAt)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	router := newTestRouter(sampleRepo(), auth.NewSessions(time.Hour))

	w := doRequest(t, router, http.MethodPost, "/api/v1/admin/login", `{"password":"letmein"}`, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminRoutesRequireSession(t *testing.T) {
	router := newTestRouter(sampleRepo(), auth.NewSessions(time.Hour))

	w := doRequest(t, router, http.MethodPost, "/api/v1/admin/posts", `{"title":"t","excerpt":"e","content":"c","category":"XSS"}`, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(t, router, http.MethodDelete, "/api/v1/admin/posts/blog_posts:xss101", "", "stale-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreatePost(t *testing.T) {
	repo := sampleRepo()
	sessions := auth.NewSessions(time.Hour)
	router := newTestRouter(repo, sessions)
	token, _ := sessions.Issue()

	body := `{"title":"New","excerpt":"E","content":"C","category":"CSRF","featured":true}`
	w := doRequest(t, router, http.MethodPost, "/api/v1/admin/posts", body, token)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp api.CreatePostResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "blog_posts:new1", resp.ID)

	require.Len(t, repo.created, 1)
	assert.Equal(t, "New", repo.created[0].Title)
	assert.True(t, repo.created[0].Featured)
}

func TestCreatePostValidatesRequiredFields(t *testing.T) {
	sessions := auth.NewSessions(time.Hour)
	router := newTestRouter(sampleRepo(), sessions)
	token, _ := sessions.Issue()

	w := doRequest(t, router, http.MethodPost, "/api/v1/admin/posts", `{"title":"only a title"}`, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreatePostWithoutAuthorRecord(t *testing.T) {
	repo := sampleRepo()
	repo.createdID = "" // makes the fake fail with ErrNoAuthor
	sessions := auth.NewSessions(time.Hour)
	router := newTestRouter(repo, sessions)
	token, _ := sessions.Issue()

	body := `{"title":"New","excerpt":"E","content":"C","category":"CSRF"}`
	w := doRequest(t, router, http.MethodPost, "/api/v1/admin/posts", body, token)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestUpdatePostPartial(t *testing.T) {
	repo := sampleRepo()
	sessions := auth.NewSessions(time.Hour)
	router := newTestRouter(repo, sessions)
	token, _ := sessions.Issue()

	w := doRequest(t, router, http.MethodPut, "/api/v1/admin/posts/blog_posts:xss101", `{"title":"Renamed"}`, token)
	require.Equal(t, http.StatusNoContent, w.Code)

	patch := repo.updated["blog_posts:xss101"]
	require.NotNil(t, patch.Title)
	assert.Equal(t, "Renamed", *patch.Title)
	assert.Nil(t, patch.Excerpt)
	assert.Nil(t, patch.Content)
	assert.Nil(t, patch.Featured)
}

func TestUpdatePostNotFound(t *testing.T) {
	sessions := auth.NewSessions(time.Hour)
	router := newTestRouter(sampleRepo(), sessions)
	token, _ := sessions.Issue()

	w := doRequest(t, router, http.MethodPut, "/api/v1/admin/posts/blog_posts:nope", `{"title":"x"}`, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeletePost(t *testing.T) {
	repo := sampleRepo()
	sessions := auth.NewSessions(time.Hour)
	router := newTestRouter(repo, sessions)
	token, _ := sessions.Issue()

	w := doRequest(t, router, http.MethodDelete, "/api/v1/admin/posts/blog_posts:xss101", "", token)
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, []string{"blog_posts:xss101"}, repo.deleted)
}

func TestLogoutRevokesSession(t *testing.T) {
	repo := sampleRepo()
	sessions := auth.NewSessions(time.Hour)
	router := newTestRouter(repo, sessions)
	token, _ := sessions.Issue()

	w := doRequest(t, router, http.MethodPost, "/api/v1/admin/logout", "", token)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(t, router, http.MethodDelete, "/api/v1/admin/posts/blog_posts:xss101", "", token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
