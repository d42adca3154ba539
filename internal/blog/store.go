// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package blog

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"blogpress/internal/gateway"
	"blogpress/internal/models"
)

// Store drives the content snapshot through its intents. Each I/O-backed
// intent records its own failure in the snapshot's Error field and still
// returns the raw gateway error, so a caller that needs to react to a
// specific failure (a delete-confirmation dialog, say) can inspect it
// without the failure ever escaping the store uncaught.
type Store struct {
	gw gateway.Gateway

	mu   sync.RWMutex
	snap Snapshot
}

// NewStore returns a content store over the given gateway with an empty
// initial snapshot.
func NewStore(gw gateway.Gateway) *Store {
	return &Store{gw: gw}
}

// Snapshot returns a copy of the current state. Slices and the current post
// are copied so the caller can hold the result across later transitions.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snap
	snap.Posts = slices.Clone(s.snap.Posts)
	snap.Categories = slices.Clone(s.snap.Categories)
	if s.snap.CurrentPost != nil {
		p := *s.snap.CurrentPost
		snap.CurrentPost = &p
	}
	return snap
}

// dispatch applies one action atomically.
func (s *Store) dispatch(a action) {
	s.mu.Lock()
	s.snap = reduce(s.snap, a)
	s.mu.Unlock()
}

// Activate issues the initial fetchPosts and fetchCategories concurrently
// and returns once both have settled. Failures land in the snapshot's
// Error field like any other intent.
func (s *Store) Activate(ctx context.Context) {
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		s.FetchPosts(ctx)
	}()
	go func() {
		defer wg.Done()
		s.FetchCategories(ctx)
	}()
	wg.Wait()
}

// FetchPosts replaces the posts collection from the gateway. The loading
// flag is visible to readers while the call is in flight.
func (s *Store) FetchPosts(ctx context.Context) error {
	s.dispatch(setLoading{true})
	posts, err := s.gw.ListPosts(ctx)
	if err != nil {
		slog.Warn("fetch posts failed", "error", err)
		s.dispatch(setError{"failed to fetch posts"})
		return err
	}
	s.dispatch(setPosts{posts})
	return nil
}

// FetchCategories replaces the category set. No loading flag change.
func (s *Store) FetchCategories(ctx context.Context) error {
	categories, err := s.gw.ListCategories(ctx)
	if err != nil {
		slog.Warn("fetch categories failed", "error", err)
		s.dispatch(setError{"failed to fetch categories"})
		return err
	}
	s.dispatch(setCategories{categories})
	return nil
}

// FetchPost loads one post into CurrentPost. An absent id sets CurrentPost
// to nil; only a gateway fault records an error.
func (s *Store) FetchPost(ctx context.Context, id string) error {
	s.dispatch(setLoading{true})
	post, err := s.gw.GetPost(ctx, id)
	if err != nil {
		slog.Warn("fetch post failed", "id", id, "error", err)
		s.dispatch(setError{"failed to fetch post"})
		return err
	}
	s.dispatch(setCurrentPost{post})
	s.dispatch(setLoading{false})
	return nil
}

// CreatePost persists a new post and appends the result to the snapshot.
func (s *Store) CreatePost(ctx context.Context, data models.CreatePostData) error {
	post, err := s.gw.CreatePost(ctx, data)
	if err != nil {
		slog.Warn("create post failed", "error", err)
		s.dispatch(setError{"failed to create post"})
		return err
	}
	s.dispatch(addPost{post: *post})
	return nil
}

// UpdatePost persists a partial update and replaces the matching snapshot
// element. A gateway.ErrNotFound is recorded like any other failure and
// returned to the caller.
func (s *Store) UpdatePost(ctx context.Context, data models.UpdatePostData) error {
	post, err := s.gw.UpdatePost(ctx, data)
	if err != nil {
		slog.Warn("update post failed", "id", data.ID, "error", err)
		s.dispatch(setError{"failed to update post"})
		return err
	}
	s.dispatch(replacePost{post: *post})
	return nil
}

// DeletePost removes the post from persistence and from the snapshot.
// Clearing CurrentPost when it was the deleted post is the consuming
// view's responsibility.
func (s *Store) DeletePost(ctx context.Context, id string) error {
	if err := s.gw.DeletePost(ctx, id); err != nil {
		slog.Warn("delete post failed", "id", id, "error", err)
		s.dispatch(setError{"failed to delete post"})
		return err
	}
	s.dispatch(removePost{id: id})
	return nil
}

// SetCurrentPost replaces the current selection directly, no I/O.
func (s *Store) SetCurrentPost(post *models.Post) {
	s.dispatch(setCurrentPost{post})
}
