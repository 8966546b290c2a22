package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/surrealdb/surrealdb.go/pkg/marshal"

	"github.com/ZeroDay-Lk/vuldb/blog/domain"
	"github.com/ZeroDay-Lk/vuldb/shared/store"
)

var _ domain.PostRepository = (*SurrealPostRepository)(nil)

const (
	defaultImageSrc = "/placeholder.svg"
	defaultReadTime = "5 min read"

	// Display format for post dates, matching the site's en-US long form.
	displayDateFormat = "January 2, 2006"
)

// SurrealPostRepository implements domain.PostRepository against a SurrealDB
// backend. Every call re-queries the store; there is no local caching, no
// retry, and no transaction layer.
type SurrealPostRepository struct {
	conn store.Conn
}

func NewPostRepository(conn store.Conn) *SurrealPostRepository {
	return &SurrealPostRepository{conn: conn}
}

const listPostsQuery = `
	SELECT * FROM blog_posts
	ORDER BY featured DESC, date DESC
	FETCH author
`

// List retrieves every post with its author record fetched, featured posts
// first, newest first within each group.
func (r *SurrealPostRepository) List(ctx context.Context) ([]domain.Post, error) {
	rows, err := r.queryRows(listPostsQuery, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w: %v", domain.ErrStoreUnavailable, err)
	}

	posts := make([]domain.Post, 0, len(rows))
	for _, row := range rows {
		posts = append(posts, row.toDomain())
	}

	return posts, nil
}

const getPostQuery = `
	SELECT * FROM type::thing($id)
	FETCH author
`

// GetByID retrieves a single post. A missing id yields domain.ErrNotFound,
// distinct from backend failure.
func (r *SurrealPostRepository) GetByID(ctx context.Context, id string) (*domain.Post, error) {
	if id == "" {
		return nil, fmt.Errorf("post id cannot be empty: %w", domain.ErrNotFound)
	}

	rows, err := r.queryRows(getPostQuery, map[string]any{"id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to get post %s: %w: %v", id, domain.ErrStoreUnavailable, err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("post %s: %w", id, domain.ErrNotFound)
	}

	post := rows[0].toDomain()
	return &post, nil
}

const firstAuthorQuery = `
	SELECT * FROM authors LIMIT 1
`

const createPostQuery = `
	CREATE blog_posts CONTENT {
		title: $title,
		excerpt: $excerpt,
		content: $content,
		category: $category,
		image_src: $image_src,
		read_time: $read_time,
		featured: $featured,
		author: type::thing($author),
		date: time::now()
	}
`

// Create inserts a new post attributed to the first available author record.
// The store assigns the id and the creation date.
func (r *SurrealPostRepository) Create(ctx context.Context, draft domain.PostDraft) (string, error) {
	authors, err := r.queryAuthors(firstAuthorQuery)
	if err != nil {
		return "", fmt.Errorf("failed to look up default author: %w: %v", domain.ErrStoreUnavailable, err)
	}

	if len(authors) == 0 {
		return "", fmt.Errorf("cannot create post: %w", domain.ErrNoAuthor)
	}

	imageSrc := draft.ImageSrc
	if imageSrc == "" {
		imageSrc = defaultImageSrc
	}

	readTime := draft.ReadTime
	if readTime == "" {
		readTime = defaultReadTime
	}

	rows, err := r.queryRows(createPostQuery, map[string]any{
		"title":     draft.Title,
		"excerpt":   draft.Excerpt,
		"content":   draft.Content,
		"category":  draft.Category,
		"image_src": imageSrc,
		"read_time": readTime,
		"featured":  draft.Featured,
		"author":    authors[0].ID,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create post: %w: %v", domain.ErrStoreUnavailable, err)
	}

	if len(rows) == 0 {
		return "", fmt.Errorf("store returned no record for created post: %w", domain.ErrStoreUnavailable)
	}

	return rows[0].ID, nil
}

const postExistsQuery = `
	SELECT id FROM type::thing($id)
`

const updatePostQuery = `
	UPDATE type::thing($id) MERGE $patch
`

// Update applies the non-nil patch fields to the stored post. The existence
// check runs first because a bare UPDATE on a record id would create it.
func (r *SurrealPostRepository) Update(ctx context.Context, id string, patch domain.PostPatch) error {
	rows, err := r.queryRows(postExistsQuery, map[string]any{"id": id})
	if err != nil {
		return fmt.Errorf("failed to check post %s: %w: %v", id, domain.ErrStoreUnavailable, err)
	}

	if len(rows) == 0 {
		return fmt.Errorf("post %s: %w", id, domain.ErrNotFound)
	}

	fields := patchFields(patch)
	fields["updated_at"] = time.Now().UTC().Format(time.RFC3339)

	if _, err := r.queryRows(updatePostQuery, map[string]any{
		"id":    id,
		"patch": fields,
	}); err != nil {
		return fmt.Errorf("failed to update post %s: %w: %v", id, domain.ErrStoreUnavailable, err)
	}

	return nil
}

const deletePostQuery = `
	DELETE type::thing($id)
`

// Delete removes the post. Deleting an id that is already absent succeeds.
func (r *SurrealPostRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.conn.Query(deletePostQuery, map[string]any{"id": id}); err != nil {
		return fmt.Errorf("failed to delete post %s: %w: %v", id, domain.ErrStoreUnavailable, err)
	}

	return nil
}

func (r *SurrealPostRepository) queryRows(sql string, vars map[string]any) ([]postRow, error) {
	res, err := r.conn.Query(sql, vars)
	if err != nil {
		return nil, err
	}

	var raw []marshal.RawQuery[[]postRow]
	if err := marshal.UnmarshalRaw(res, &raw); err != nil {
		return nil, err
	}

	if len(raw) == 0 {
		return nil, nil
	}

	return raw[0].Result, nil
}

func (r *SurrealPostRepository) queryAuthors(sql string) ([]authorRow, error) {
	res, err := r.conn.Query(sql, nil)
	if err != nil {
		return nil, err
	}

	var raw []marshal.RawQuery[[]authorRow]
	if err := marshal.UnmarshalRaw(res, &raw); err != nil {
		return nil, err
	}

	if len(raw) == 0 {
		return nil, nil
	}

	return raw[0].Result, nil
}

// patchFields maps the non-nil patch fields to their underscore column names.
func patchFields(patch domain.PostPatch) map[string]any {
	fields := make(map[string]any)

	if patch.Title != nil {
		fields["title"] = *patch.Title
	}
	if patch.Excerpt != nil {
		fields["excerpt"] = *patch.Excerpt
	}
	if patch.Content != nil {
		fields["content"] = *patch.Content
	}
	if patch.Category != nil {
		fields["category"] = *patch.Category
	}
	if patch.ReadTime != nil {
		fields["read_time"] = *patch.ReadTime
	}
	if patch.ImageSrc != nil {
		fields["image_src"] = *patch.ImageSrc
	}
	if patch.Featured != nil {
		fields["featured"] = *patch.Featured
	}

	return fields
}

// postRow mirrors the store's underscore-named schema and converts to the
// camel-case domain shape.
type postRow struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Excerpt   string    `json:"excerpt"`
	Content   string    `json:"content"`
	Category  string    `json:"category"`
	Date      string    `json:"date"`
	ReadTime  string    `json:"read_time"`
	ImageSrc  string    `json:"image_src"`
	Featured  bool      `json:"featured"`
	Author    authorRow `json:"author"`
	UpdatedAt string    `json:"updated_at,omitempty"`
}

type authorRow struct {
	ID     string `json:"id,omitempty"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

func (pr *postRow) toDomain() domain.Post {
	return domain.Post{
		ID:       pr.ID,
		Title:    pr.Title,
		Excerpt:  pr.Excerpt,
		Content:  pr.Content,
		Category: pr.Category,
		Date:     formatDisplayDate(pr.Date),
		ReadTime: pr.ReadTime,
		ImageSrc: pr.ImageSrc,
		Featured: pr.Featured,
		Author: domain.Author{
			Name:      pr.Author.Name,
			AvatarURL: pr.Author.Avatar,
		},
	}
}

// formatDisplayDate converts a stored RFC 3339 timestamp to the site's
// display form. Unparseable values pass through untouched.
func formatDisplayDate(raw string) string {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		if t, err = time.Parse(time.RFC3339Nano, raw); err != nil {
			return raw
		}
	}

	return t.Format(displayDateFormat)
}
