package domain

// CategoryEntry is a derived view over the post list: one row per distinct
// category label. It has no identity of its own and is recomputed whenever
// the post list changes.
type CategoryEntry struct {
	Name  string
	Slug  string
	Count int
}
