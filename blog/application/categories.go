package application

import (
	"sort"
	"strings"

	"github.com/ZeroDay-Lk/vuldb/blog/domain"
)

// Slugify derives the URL-safe identifier for a category label: lowercase
// with every run of spaces collapsed to a single hyphen. "SQL Injection"
// becomes "sql-injection".
func Slugify(category string) string {
	slug := strings.ToLower(strings.TrimSpace(category))
	return strings.Join(strings.Fields(slug), "-")
}

// BuildCategoryIndex counts the posts under each distinct category label.
// Entries are ordered by count descending, ties broken by name, so the index
// is deterministic for a given post list.
func BuildCategoryIndex(posts []domain.Post) []domain.CategoryEntry {
	counts := make(map[string]int)
	for _, post := range posts {
		counts[post.Category]++
	}

	entries := make([]domain.CategoryEntry, 0, len(counts))
	for name, count := range counts {
		entries = append(entries, domain.CategoryEntry{
			Name:  name,
			Slug:  Slugify(name),
			Count: count,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Name < entries[j].Name
	})

	return entries
}
