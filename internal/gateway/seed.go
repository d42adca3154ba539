package gateway

import (
	"time"

	"blogpress/internal/models"
)

// DefaultCategories returns the fixed category set used when the caller has
// no categories of its own.
func DefaultCategories() []models.Category {
	return []models.Category{
		{ID: "1", Name: "Technology", Slug: "technology", Color: "bg-blue-500"},
		{ID: "2", Name: "Design", Slug: "design", Color: "bg-purple-500"},
		{ID: "3", Name: "Business", Slug: "business", Color: "bg-green-500"},
		{ID: "4", Name: "Lifestyle", Slug: "lifestyle", Color: "bg-pink-500"},
	}
}

// DefaultPosts returns the seed posts served while the blob has never been
// written, so a fresh install has content to show.
func DefaultPosts() []models.Post {
	return []models.Post{
		{
			ID:            "1",
			Title:         "Getting Started with Go Web Services",
			Content:       "Go makes it straightforward to build small, reliable web services...",
			Excerpt:       "Learn how to structure a Go web service for maintainability.",
			Author:        "John Doe",
			CategoryID:    "1",
			FeaturedImage: "https://images.unsplash.com/photo-1633356122544-f134324a6cee?w=800",
			CreatedAt:     time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
			UpdatedAt:     time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
			Published:     true,
		},
		{
			ID:            "2",
			Title:         "Modern UI Design Principles",
			Content:       "Creating beautiful and functional user interfaces...",
			Excerpt:       "Explore the key principles that make modern UI designs effective.",
			Author:        "Jane Smith",
			CategoryID:    "2",
			FeaturedImage: "https://images.unsplash.com/photo-1558655146-9f40138edfeb?w=800",
			CreatedAt:     time.Date(2024, 1, 14, 15, 30, 0, 0, time.UTC),
			UpdatedAt:     time.Date(2024, 1, 14, 15, 30, 0, 0, time.UTC),
			Published:     true,
		},
	}
}
