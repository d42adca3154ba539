// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package view derives display-ready post lists from a content snapshot.
// It holds no state of its own; callers re-run Filter on every snapshot change.
package view

import (
	"strings"

	"blogpress/internal/models"
)

// AllCategories selects every category in Filter.
const AllCategories = "all"

// Filter returns the subsequence of posts matching the search term
// (case-insensitive, against title or excerpt), the selected category
// ("all" or empty selects every category), and the draft visibility flag.
// Order is stable: posts keep the order they have in the snapshot.
func Filter(posts []models.Post, searchTerm, categoryID string, showDrafts bool) []models.Post {
	term := strings.ToLower(strings.TrimSpace(searchTerm))
	allCategories := categoryID == "" || categoryID == AllCategories

	result := make([]models.Post, 0, len(posts))
	for _, p := range posts {
		if term != "" &&
			!strings.Contains(strings.ToLower(p.Title), term) &&
			!strings.Contains(strings.ToLower(p.Excerpt), term) {
			continue
		}
		if !allCategories && p.CategoryID != categoryID {
			continue
		}
		if !showDrafts && !p.Published {
			continue
		}
		result = append(result, p)
	}
	return result
}
