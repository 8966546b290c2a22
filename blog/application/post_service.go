package application

import (
	"context"
	"fmt"

	"github.com/ZeroDay-Lk/vuldb/blog/domain"
)

// PostService serves the read-side query shapes pages need: full list,
// single post, featured post, recent posts, related posts, and
// category-filtered views. It never mutates repository state; every call
// re-queries the store.
type PostService struct {
	repo domain.PostRepository
}

func NewPostService(repo domain.PostRepository) *PostService {
	return &PostService{repo: repo}
}

// All returns every post in the repository's sorted order.
func (s *PostService) All(ctx context.Context) ([]domain.Post, error) {
	return s.repo.List(ctx)
}

// Get returns a single post by id.
func (s *PostService) Get(ctx context.Context, id string) (*domain.Post, error) {
	return s.repo.GetByID(ctx, id)
}

// Featured returns the first featured post in sorted order, or nil when no
// post is flagged. With several featured posts the sort order makes "first"
// the most recently dated one.
func (s *PostService) Featured(ctx context.Context) (*domain.Post, error) {
	posts, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	for _, post := range posts {
		if post.Featured {
			p := post
			return &p, nil
		}
	}

	return nil, nil
}

// Recent returns the first limit posts, optionally skipping featured ones,
// preserving list order.
func (s *PostService) Recent(ctx context.Context, excludeFeatured bool, limit int) ([]domain.Post, error) {
	posts, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	selected := make([]domain.Post, 0, limit)
	for _, post := range posts {
		if len(selected) >= limit {
			break
		}
		if excludeFeatured && post.Featured {
			continue
		}
		selected = append(selected, post)
	}

	return selected, nil
}

// Related returns up to limit posts sharing a category with the identified
// post, excluding the post itself, preserving list order.
func (s *PostService) Related(ctx context.Context, postID string, limit int) ([]domain.Post, error) {
	post, err := s.repo.GetByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve post for related lookup: %w", err)
	}

	posts, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	related := make([]domain.Post, 0, limit)
	for _, candidate := range posts {
		if len(related) >= limit {
			break
		}
		if candidate.ID == postID || candidate.Category != post.Category {
			continue
		}
		related = append(related, candidate)
	}

	return related, nil
}

// ByCategorySlug returns the posts whose derived category slug matches slug,
// preserving list order.
func (s *PostService) ByCategorySlug(ctx context.Context, slug string) ([]domain.Post, error) {
	posts, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]domain.Post, 0)
	for _, post := range posts {
		if Slugify(post.Category) == slug {
			matched = append(matched, post)
		}
	}

	return matched, nil
}

// Categories derives the category index from the current post list.
func (s *PostService) Categories(ctx context.Context) ([]domain.CategoryEntry, error) {
	posts, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	return BuildCategoryIndex(posts), nil
}
