// Package api holds the JSON shapes exchanged with clients.
package api

type Author struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

type Post struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	Content  string `json:"content,omitempty"`
	Category string `json:"category"`
	Date     string `json:"date"`
	ReadTime string `json:"readTime"`
	ImageSrc string `json:"imageSrc,omitempty"`
	Featured bool   `json:"featured"`
	Author   Author `json:"author"`
}

// ContentBlock is one parsed unit of a post body. Type is one of "heading",
// "paragraph", "list", "code"; the other fields are populated per type.
type ContentBlock struct {
	Type     string   `json:"type"`
	Level    int      `json:"level,omitempty"`
	Text     string   `json:"text,omitempty"`
	Items    []string `json:"items,omitempty"`
	Language string   `json:"language,omitempty"`
	Code     string   `json:"code,omitempty"`
}

// PostDetail is the full payload for a single-post page: the post, its body
// parsed into blocks, and related posts from the same category.
type PostDetail struct {
	Post    Post           `json:"post"`
	Blocks  []ContentBlock `json:"blocks"`
	Related []Post         `json:"related"`
}

type Category struct {
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Count int    `json:"count"`
}

type CreatePostRequest struct {
	Title    string `json:"title" binding:"required"`
	Excerpt  string `json:"excerpt" binding:"required"`
	Content  string `json:"content" binding:"required"`
	Category string `json:"category" binding:"required"`
	ReadTime string `json:"readTime"`
	ImageSrc string `json:"imageSrc"`
	Featured bool   `json:"featured"`
}

type CreatePostResponse struct {
	ID string `json:"id"`
}

// UpdatePostRequest is a partial update: absent fields are left unchanged.
type UpdatePostRequest struct {
	Title    *string `json:"title"`
	Excerpt  *string `json:"excerpt"`
	Content  *string `json:"content"`
	Category *string `json:"category"`
	ReadTime *string `json:"readTime"`
	ImageSrc *string `json:"imageSrc"`
	Featured *bool   `json:"featured"`
}

type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expiresAt"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
