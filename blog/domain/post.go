package domain

import (
	"context"
	"errors"
)

// Author is the byline embedded in a post. The core only ever reads it;
// authors are managed directly in the store.
type Author struct {
	Name      string
	AvatarURL string
}

// Post represents one published article.
// ID is assigned by the store on creation and never changes afterwards.
type Post struct {
	ID       string
	Title    string
	Excerpt  string
	Content  string
	Category string
	Date     string // display-formatted, e.g. "April 25, 2025"
	ReadTime string
	ImageSrc string
	Featured bool
	Author   Author
}

// PostDraft carries the caller-supplied fields for a new post.
// The store assigns the id and creation date; the author is resolved to the
// default author record at creation time.
type PostDraft struct {
	Title    string
	Excerpt  string
	Content  string
	Category string
	ReadTime string
	ImageSrc string
	Featured bool
}

// PostPatch is a partial update. A nil field is left unchanged; a non-nil
// field replaces the stored value.
type PostPatch struct {
	Title    *string
	Excerpt  *string
	Content  *string
	Category *string
	ReadTime *string
	ImageSrc *string
	Featured *bool
}

// IsEmpty reports whether the patch changes nothing.
func (p PostPatch) IsEmpty() bool {
	return p.Title == nil && p.Excerpt == nil && p.Content == nil &&
		p.Category == nil && p.ReadTime == nil && p.ImageSrc == nil &&
		p.Featured == nil
}

var (
	// ErrNotFound indicates the requested post id does not exist.
	ErrNotFound = errors.New("post not found")

	// ErrStoreUnavailable indicates the backing store could not be reached
	// or rejected the request.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrNoAuthor indicates post creation failed because no author record
	// exists to attribute the post to.
	ErrNoAuthor = errors.New("no author record available")
)

type PostRepository interface {
	// List returns all posts ordered by featured descending, then date
	// descending. An unreachable store yields an error, not a nil slice
	// masquerading as success; callers decide whether to collapse it.
	List(ctx context.Context) ([]Post, error)

	// GetByID returns the matching post, ErrNotFound when the id is absent,
	// or ErrStoreUnavailable on backend failure.
	GetByID(ctx context.Context, id string) (*Post, error)

	// Create inserts a new post attributed to the default author and stamped
	// with the current time, returning the assigned id.
	Create(ctx context.Context, draft PostDraft) (string, error)

	// Update applies the non-nil fields of patch to the stored post.
	Update(ctx context.Context, id string, patch PostPatch) error

	// Delete removes the post. Deleting an absent id is success.
	Delete(ctx context.Context, id string) error
}
