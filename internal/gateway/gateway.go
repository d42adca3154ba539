// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package gateway implements the persistence gateway for posts and
// categories. It owns id generation, timestamping, and category
// denormalization: every post returned to callers carries an embedded copy
// of its category, joined by CategoryID at read time and never stored.
//
// Two implementations exist: Store persists the post collection as a JSON
// blob in a blob.Store, and Remote speaks the posts HTTP API. Both satisfy
// the Gateway interface.
package gateway

import (
	"context"
	"errors"

	"blogpress/internal/models"
)

// PostsBlob is the fixed blob name under which the post collection lives.
const PostsBlob = "blog_posts"

// ErrNotFound reports that a mutation targeted a post id that does not
// exist. Benign absent reads (GetPost) return nil instead.
var ErrNotFound = errors.New("post not found")

// PersistenceError wraps a storage or transport fault from the backing
// store. Callers can unwrap it with errors.As to distinguish infrastructure
// failures from ErrNotFound.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Gateway is the persistence contract consumed by the content store and the
// HTTP handlers. All operations take a context since every implementation
// may block on I/O.
type Gateway interface {
	// ListPosts returns the full collection with embedded categories,
	// falling back to the seed set when nothing has been stored yet.
	ListPosts(ctx context.Context) ([]models.Post, error)

	// GetPost returns the post with the given id, or nil when absent.
	GetPost(ctx context.Context, id string) (*models.Post, error)

	// CreatePost assigns a fresh id, stamps CreatedAt = UpdatedAt = now,
	// appends to the collection, and returns the new post.
	CreatePost(ctx context.Context, data models.CreatePostData) (*models.Post, error)

	// UpdatePost merges the non-nil fields of data over the stored post,
	// bumps UpdatedAt, and returns the result. Fails with ErrNotFound when
	// no post has data.ID.
	UpdatePost(ctx context.Context, data models.UpdatePostData) (*models.Post, error)

	// DeletePost removes the post with the given id. Deleting an absent id
	// is a no-op, not an error.
	DeletePost(ctx context.Context, id string) error

	// ListCategories returns the fixed category set.
	ListCategories(ctx context.Context) ([]models.Category, error)
}
