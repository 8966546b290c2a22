// Package rest exposes the blog core over a JSON HTTP API.
package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/ZeroDay-Lk/vuldb/api"
	"github.com/ZeroDay-Lk/vuldb/blog/domain"
	"github.com/ZeroDay-Lk/vuldb/internal/auth"
	"github.com/ZeroDay-Lk/vuldb/internal/middleware"
)

// NewAPI registers every route on the router. The public group serves the
// read side; the admin group is session-gated and owns the mutations.
func NewAPI(
	router *gin.Engine,
	posts *PostsHandler,
	admin *AdminHandler,
	sessions *auth.Sessions,
) {
	v1 := router.Group("api/v1")
	{
		v1.GET("/posts", posts.GetPosts)
		v1.GET("/posts/featured", posts.GetFeatured)
		v1.GET("/posts/recent", posts.GetRecent)
		v1.GET("/posts/:postId", posts.GetPost)
		v1.GET("/categories", posts.GetCategories)
		v1.GET("/categories/:categorySlug/posts", posts.GetCategoryPosts)
	}

	adminV1 := v1.Group("/admin")
	{
		adminV1.POST("/login", admin.Login)

		guarded := adminV1.Group("", middleware.RequireAdmin(sessions))
		{
			guarded.POST("/logout", admin.Logout)
			guarded.POST("/posts", admin.CreatePost)
			guarded.PUT("/posts/:postId", admin.UpdatePost)
			guarded.DELETE("/posts/:postId", admin.DeletePost)
		}
	}
}

func toAPIPost(p domain.Post) api.Post {
	return api.Post{
		ID:       p.ID,
		Title:    p.Title,
		Excerpt:  p.Excerpt,
		Content:  p.Content,
		Category: p.Category,
		Date:     p.Date,
		ReadTime: p.ReadTime,
		ImageSrc: p.ImageSrc,
		Featured: p.Featured,
		Author:   api.Author{Name: p.Author.Name, Avatar: p.Author.AvatarURL},
	}
}

func toAPIPosts(posts []domain.Post) []api.Post {
	out := make([]api.Post, 0, len(posts))
	for _, p := range posts {
		out = append(out, toAPIPost(p))
	}
	return out
}

func toAPIBlocks(blocks []domain.ContentBlock) []api.ContentBlock {
	out := make([]api.ContentBlock, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, api.ContentBlock{
			Type:     string(b.Kind),
			Level:    b.Level,
			Text:     b.Text,
			Items:    b.Items,
			Language: b.Language,
			Code:     b.Code,
		})
	}
	return out
}

func toAPICategories(entries []domain.CategoryEntry) []api.Category {
	out := make([]api.Category, 0, len(entries))
	for _, e := range entries {
		out = append(out, api.Category{Name: e.Name, Slug: e.Slug, Count: e.Count})
	}
	return out
}
