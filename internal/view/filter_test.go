package view

import (
	"testing"

	"blogpress/internal/models"
)

// fixture returns a mixed collection: two published, one draft, across two
// categories.
func fixture() []models.Post {
	return []models.Post{
		{ID: "1", Title: "Getting Started with Go", Excerpt: "A gentle introduction", CategoryID: "1", Published: true},
		{ID: "2", Title: "Modern UI Design", Excerpt: "Principles that work", CategoryID: "2", Published: true},
		{ID: "3", Title: "Unfinished Draft", Excerpt: "Work in progress on Go generics", CategoryID: "1", Published: false},
	}
}

func ids(posts []models.Post) []string {
	out := make([]string, len(posts))
	for i, p := range posts {
		out[i] = p.ID
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name       string
		searchTerm string
		categoryID string
		showDrafts bool
		want       []string
	}{
		{
			name:       "no filters returns everything in order",
			categoryID: AllCategories,
			showDrafts: true,
			want:       []string{"1", "2", "3"},
		},
		{
			name:       "hiding drafts keeps only published",
			categoryID: AllCategories,
			showDrafts: false,
			want:       []string{"1", "2"},
		},
		{
			name:       "category filter",
			categoryID: "1",
			showDrafts: true,
			want:       []string{"1", "3"},
		},
		{
			name:       "empty category id behaves like all",
			categoryID: "",
			showDrafts: true,
			want:       []string{"1", "2", "3"},
		},
		{
			name:       "search matches title case-insensitively",
			searchTerm: "MODERN",
			categoryID: AllCategories,
			showDrafts: true,
			want:       []string{"2"},
		},
		{
			name:       "search matches excerpt too",
			searchTerm: "generics",
			categoryID: AllCategories,
			showDrafts: true,
			want:       []string{"3"},
		},
		{
			name:       "search term is trimmed",
			searchTerm: "  go  ",
			categoryID: AllCategories,
			showDrafts: true,
			want:       []string{"1", "3"},
		},
		{
			name:       "all filters combine with AND",
			searchTerm: "go",
			categoryID: "1",
			showDrafts: false,
			want:       []string{"1"},
		},
		{
			name:       "no matches yields empty",
			searchTerm: "kubernetes",
			categoryID: AllCategories,
			showDrafts: true,
			want:       []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(fixture(), tt.searchTerm, tt.categoryID, tt.showDrafts)
			if !equal(ids(got), tt.want) {
				t.Errorf("Filter(%q, %q, %v) = %v, want %v",
					tt.searchTerm, tt.categoryID, tt.showDrafts, ids(got), tt.want)
			}
		})
	}
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	posts := fixture()
	Filter(posts, "go", "1", false)

	if !equal(ids(posts), []string{"1", "2", "3"}) {
		t.Errorf("input slice was reordered: %v", ids(posts))
	}
}

func TestFilter_EmptyInput(t *testing.T) {
	if got := Filter(nil, "", AllCategories, true); len(got) != 0 {
		t.Errorf("nil input should yield empty output, got %v", got)
	}
}
