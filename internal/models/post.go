// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// Post is a blog post. CategoryID is the stored reference; Category is a
// derived view of it, populated by the persistence gateway at read time by
// joining CategoryID against the category set. It is never written to the
// backing store and is left nil when the reference does not resolve.
type Post struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	Excerpt       string    `json:"excerpt"`
	Author        string    `json:"author"`
	CategoryID    string    `json:"categoryId"`
	Category      *Category `json:"category,omitempty"`
	FeaturedImage string    `json:"featuredImage,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
	Published     bool      `json:"published"`
}

// CreatePostData carries the caller-supplied fields for a new post.
// The gateway assigns the ID and both timestamps.
type CreatePostData struct {
	Title         string `json:"title"`
	Content       string `json:"content"`
	Excerpt       string `json:"excerpt"`
	Author        string `json:"author"`
	CategoryID    string `json:"categoryId"`
	FeaturedImage string `json:"featuredImage,omitempty"`
	Published     bool   `json:"published"`
}

// UpdatePostData identifies a post and carries a partial set of changes.
// Nil fields are left untouched by the merge.
type UpdatePostData struct {
	ID            string  `json:"id"`
	Title         *string `json:"title,omitempty"`
	Content       *string `json:"content,omitempty"`
	Excerpt       *string `json:"excerpt,omitempty"`
	Author        *string `json:"author,omitempty"`
	CategoryID    *string `json:"categoryId,omitempty"`
	FeaturedImage *string `json:"featuredImage,omitempty"`
	Published     *bool   `json:"published,omitempty"`
}
