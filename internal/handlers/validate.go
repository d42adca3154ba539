package handlers

import (
	"strings"
	"unicode/utf8"

	"blogpress/internal/models"
)

// Validation limits for post fields.
const (
	maxTitleLen   = 300
	maxExcerptLen = 1_000
	maxContentLen = 100_000
	maxAuthorLen  = 200
)

// validateCreate checks a new post's inputs and returns the first error found.
func validateCreate(data models.CreatePostData) string {
	if strings.TrimSpace(data.Title) == "" {
		return "Title is required."
	}
	if utf8.RuneCountInString(data.Title) > maxTitleLen {
		return "Title is too long (max 300 characters)."
	}
	if strings.TrimSpace(data.Author) == "" {
		return "Author is required."
	}
	if utf8.RuneCountInString(data.Author) > maxAuthorLen {
		return "Author is too long (max 200 characters)."
	}
	if strings.TrimSpace(data.CategoryID) == "" {
		return "Category is required."
	}
	if utf8.RuneCountInString(data.Excerpt) > maxExcerptLen {
		return "Excerpt is too long (max 1,000 characters)."
	}
	if utf8.RuneCountInString(data.Content) > maxContentLen {
		return "Content is too long (max 100,000 characters)."
	}
	return ""
}

// validateUpdate checks the fields present in a partial update.
func validateUpdate(data models.UpdatePostData) string {
	if data.Title != nil {
		if strings.TrimSpace(*data.Title) == "" {
			return "Title cannot be empty."
		}
		if utf8.RuneCountInString(*data.Title) > maxTitleLen {
			return "Title is too long (max 300 characters)."
		}
	}
	if data.Author != nil {
		if strings.TrimSpace(*data.Author) == "" {
			return "Author cannot be empty."
		}
		if utf8.RuneCountInString(*data.Author) > maxAuthorLen {
			return "Author is too long (max 200 characters)."
		}
	}
	if data.CategoryID != nil && strings.TrimSpace(*data.CategoryID) == "" {
		return "Category cannot be empty."
	}
	if data.Excerpt != nil && utf8.RuneCountInString(*data.Excerpt) > maxExcerptLen {
		return "Excerpt is too long (max 1,000 characters)."
	}
	if data.Content != nil && utf8.RuneCountInString(*data.Content) > maxContentLen {
		return "Content is too long (max 100,000 characters)."
	}
	return ""
}
