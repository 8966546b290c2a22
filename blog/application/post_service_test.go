package application

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZeroDay-Lk/vuldb/blog/domain"
)

// fakePostRepository serves a fixed post list, already in store order.
type fakePostRepository struct {
	posts   []domain.Post
	listErr error
}

func (f *fakePostRepository) List(ctx context.Context) ([]domain.Post, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.posts, nil
}

func (f *fakePostRepository) GetByID(ctx context.Context, id string) (*domain.Post, error) {
	for _, p := range f.posts {
		if p.ID == id {
			post := p
			return &post, nil
		}
	}
	return nil, fmt.Errorf("post %s: %w", id, domain.ErrNotFound)
}

func (f *fakePostRepository) Create(ctx context.Context, draft domain.PostDraft) (string, error) {
	return "", errors.New("not implemented")
}

func (f *fakePostRepository) Update(ctx context.Context, id string, patch domain.PostPatch) error {
	return errors.New("not implemented")
}

func (f *fakePostRepository) Delete(ctx context.Context, id string) error {
	return errors.New("not implemented")
}

func testPosts() []domain.Post {
	// Store order: featured first, then date descending.
	return []domain.Post{
		{ID: "p1", Category: "XSS", Featured: true},
		{ID: "p2", Category: "SQL Injection", Featured: true},
		{ID: "p3", Category: "XSS"},
		{ID: "p4", Category: "CSRF"},
		{ID: "p5", Category: "XSS"},
	}
}

func newTestService(posts []domain.Post) *PostService {
	return NewPostService(&fakePostRepository{posts: posts})
}

func TestFeaturedPicksFirstInOrder(t *testing.T) {
	service := newTestService(testPosts())

	post, err := service.Featured(context.Background())
	require.NoError(t, err)
	require.NotNil(t, post)
	assert.Equal(t, "p1", post.ID)
}

func TestFeaturedNoneFlagged(t *testing.T) {
	service := newTestService([]domain.Post{{ID: "p1"}, {ID: "p2"}})

	post, err := service.Featured(context.Background())
	require.NoError(t, err)
	assert.Nil(t, post)
}

func TestRecentExcludesFeatured(t *testing.T) {
	service := newTestService(testPosts())

	posts, err := service.Recent(context.Background(), true, 2)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "p3", posts[0].ID)
	assert.Equal(t, "p4", posts[1].ID)
}

func TestRecentIncludesFeatured(t *testing.T) {
	service := newTestService(testPosts())

	posts, err := service.Recent(context.Background(), false, 3)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, "p1", posts[0].ID)
}

func TestRecentZeroLimit(t *testing.T) {
	service := newTestService(testPosts())

	posts, err := service.Recent(context.Background(), false, 0)
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestRelatedExcludesSelfAndHonorsLimit(t *testing.T) {
	service := newTestService(testPosts())

	for limit := 0; limit <= 4; limit++ {
		related, err := service.Related(context.Background(), "p1", limit)
		require.NoError(t, err)
		assert.LessOrEqual(t, len(related), limit)
		for _, p := range related {
			assert.NotEqual(t, "p1", p.ID)
			assert.Equal(t, "XSS", p.Category)
		}
	}

	related, err := service.Related(context.Background(), "p1", 10)
	require.NoError(t, err)
	require.Len(t, related, 2)
	assert.Equal(t, "p3", related[0].ID, "list order must be preserved")
	assert.Equal(t, "p5", related[1].ID)
}

func TestRelatedUnknownPost(t *testing.T) {
	service := newTestService(testPosts())

	_, err := service.Related(context.Background(), "missing", 3)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestByCategorySlugPartitionsPosts(t *testing.T) {
	posts := testPosts()
	service := newTestService(posts)

	entries, err := service.Categories(context.Background())
	require.NoError(t, err)

	seen := make(map[string]bool)
	total := 0
	for _, entry := range entries {
		matched, err := service.ByCategorySlug(context.Background(), entry.Slug)
		require.NoError(t, err)
		assert.NotEmpty(t, matched)
		assert.Equal(t, entry.Count, len(matched))

		for _, p := range matched {
			assert.False(t, seen[p.ID], "post %s matched more than one slug", p.ID)
			seen[p.ID] = true
		}
		total += len(matched)
	}

	assert.Equal(t, len(posts), total)
}

func TestByCategorySlugUnknown(t *testing.T) {
	service := newTestService(testPosts())

	posts, err := service.ByCategorySlug(context.Background(), "no-such-category")
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestAllPropagatesStoreError(t *testing.T) {
	repo := &fakePostRepository{listErr: fmt.Errorf("boom: %w", domain.ErrStoreUnavailable)}
	service := NewPostService(repo)

	_, err := service.All(context.Background())
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}
