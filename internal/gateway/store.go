// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package gateway

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"blogpress/internal/blob"
	"blogpress/internal/models"
)

// Store is a blob-backed Gateway. The whole post collection is one JSON
// array that is rewritten on every mutation. There is no partial-write
// protection between load and save; the intended caller is a single active
// writer that serializes its own mutations.
type Store struct {
	blob       blob.Store
	categories []models.Category
	seed       []models.Post
}

// NewStore returns a Store over the given blob. The category set is fixed
// for the lifetime of the store; seed is the post collection used when the
// blob has never been written.
func NewStore(b blob.Store, categories []models.Category, seed []models.Post) *Store {
	return &Store{blob: b, categories: categories, seed: seed}
}

// load reads the stored collection, falling back to the seed set when the
// blob is absent. Returned posts have no embedded category.
func (s *Store) load(ctx context.Context) ([]models.Post, error) {
	data, ok, err := s.blob.Load(ctx)
	if err != nil {
		return nil, &PersistenceError{Op: "load posts", Err: err}
	}
	if !ok {
		return append([]models.Post(nil), s.seed...), nil
	}
	var posts []models.Post
	if err := json.Unmarshal(data, &posts); err != nil {
		return nil, &PersistenceError{Op: "decode posts", Err: err}
	}
	return posts, nil
}

// save rewrites the whole collection. Embedded categories are stripped
// first: they are derived at read time, never stored.
func (s *Store) save(ctx context.Context, posts []models.Post) error {
	for i := range posts {
		posts[i].Category = nil
	}
	data, err := json.Marshal(posts)
	if err != nil {
		return &PersistenceError{Op: "encode posts", Err: err}
	}
	if err := s.blob.Save(ctx, data); err != nil {
		return &PersistenceError{Op: "save posts", Err: err}
	}
	return nil
}

// denormalize joins a post's CategoryID against the category set. A
// dangling reference leaves Category nil rather than failing.
func (s *Store) denormalize(p models.Post) models.Post {
	p.Category = nil
	for i := range s.categories {
		if s.categories[i].ID == p.CategoryID {
			c := s.categories[i]
			p.Category = &c
			break
		}
	}
	return p
}

// ListPosts returns the stored collection with embedded categories, in
// insertion order.
func (s *Store) ListPosts(ctx context.Context) ([]models.Post, error) {
	posts, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.Post, len(posts))
	for i, p := range posts {
		out[i] = s.denormalize(p)
	}
	return out, nil
}

// GetPost returns the post with the given id, or nil when absent.
func (s *Store) GetPost(ctx context.Context, id string) (*models.Post, error) {
	posts, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range posts {
		if p.ID == id {
			found := s.denormalize(p)
			return &found, nil
		}
	}
	return nil, nil
}

// CreatePost assigns a fresh uuid, stamps both timestamps with the same
// instant, appends, and rewrites the collection.
func (s *Store) CreatePost(ctx context.Context, data models.CreatePostData) (*models.Post, error) {
	posts, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	post := models.Post{
		ID:            uuid.NewString(),
		Title:         data.Title,
		Content:       data.Content,
		Excerpt:       data.Excerpt,
		Author:        data.Author,
		CategoryID:    data.CategoryID,
		FeaturedImage: data.FeaturedImage,
		CreatedAt:     now,
		UpdatedAt:     now,
		Published:     data.Published,
	}

	posts = append(posts, post)
	if err := s.save(ctx, posts); err != nil {
		return nil, err
	}

	created := s.denormalize(post)
	return &created, nil
}

// UpdatePost merges the non-nil fields of data over the stored post and
// bumps UpdatedAt. CreatedAt is never touched.
func (s *Store) UpdatePost(ctx context.Context, data models.UpdatePostData) (*models.Post, error) {
	posts, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range posts {
		if posts[i].ID == data.ID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrNotFound
	}

	post := posts[idx]
	if data.Title != nil {
		post.Title = *data.Title
	}
	if data.Content != nil {
		post.Content = *data.Content
	}
	if data.Excerpt != nil {
		post.Excerpt = *data.Excerpt
	}
	if data.Author != nil {
		post.Author = *data.Author
	}
	if data.CategoryID != nil {
		post.CategoryID = *data.CategoryID
	}
	if data.FeaturedImage != nil {
		post.FeaturedImage = *data.FeaturedImage
	}
	if data.Published != nil {
		post.Published = *data.Published
	}
	post.UpdatedAt = time.Now().UTC()

	posts[idx] = post
	if err := s.save(ctx, posts); err != nil {
		return nil, err
	}

	updated := s.denormalize(post)
	return &updated, nil
}

// DeletePost removes the matching post and rewrites the remainder.
// Deleting an id that is not present is a no-op.
func (s *Store) DeletePost(ctx context.Context, id string) error {
	posts, err := s.load(ctx)
	if err != nil {
		return err
	}

	remaining := posts[:0:0]
	for _, p := range posts {
		if p.ID != id {
			remaining = append(remaining, p)
		}
	}
	return s.save(ctx, remaining)
}

// ListCategories returns a copy of the fixed category set.
func (s *Store) ListCategories(ctx context.Context) ([]models.Category, error) {
	return append([]models.Category(nil), s.categories...), nil
}
