package application

import (
	"reflect"
	"testing"

	"github.com/ZeroDay-Lk/vuldb/blog/domain"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		category string
		expected string
	}{
		{
			name:     "Single word",
			category: "XSS",
			expected: "xss",
		},
		{
			name:     "Two words",
			category: "SQL Injection",
			expected: "sql-injection",
		},
		{
			name:     "More than one space",
			category: "Insecure Direct Object References",
			expected: "insecure-direct-object-references",
		},
		{
			name:     "Repeated spaces collapse",
			category: "Broken  Access   Control",
			expected: "broken-access-control",
		},
		{
			name:     "Surrounding whitespace trimmed",
			category: "  CSRF ",
			expected: "csrf",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Slugify(tt.category)
			if result != tt.expected {
				t.Errorf("Slugify(%q) = %q, want %q", tt.category, result, tt.expected)
			}
		})
	}
}

func TestBuildCategoryIndex(t *testing.T) {
	posts := []domain.Post{
		{ID: "1", Category: "XSS"},
		{ID: "2", Category: "SQL Injection"},
		{ID: "3", Category: "XSS"},
		{ID: "4", Category: "CSRF"},
		{ID: "5", Category: "XSS"},
		{ID: "6", Category: "CSRF"},
	}

	expected := []domain.CategoryEntry{
		{Name: "XSS", Slug: "xss", Count: 3},
		{Name: "CSRF", Slug: "csrf", Count: 2},
		{Name: "SQL Injection", Slug: "sql-injection", Count: 1},
	}

	result := BuildCategoryIndex(posts)
	if !reflect.DeepEqual(result, expected) {
		t.Errorf("BuildCategoryIndex() = %+v, want %+v", result, expected)
	}
}

func TestBuildCategoryIndexEmpty(t *testing.T) {
	if result := BuildCategoryIndex(nil); len(result) != 0 {
		t.Errorf("BuildCategoryIndex(nil) = %+v, want empty", result)
	}
}

// Every post lands in exactly one category bucket: the per-category counts
// sum to the number of posts.
func TestCategoryIndexPartition(t *testing.T) {
	posts := []domain.Post{
		{ID: "1", Category: "XSS"},
		{ID: "2", Category: "SQL Injection"},
		{ID: "3", Category: "IDOR"},
		{ID: "4", Category: "SQL Injection"},
	}

	total := 0
	for _, entry := range BuildCategoryIndex(posts) {
		total += entry.Count
	}

	if total != len(posts) {
		t.Errorf("category counts sum to %d, want %d", total, len(posts))
	}
}
