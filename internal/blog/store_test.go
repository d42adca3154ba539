// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package blog

import (
	"context"
	"errors"
	"testing"

	"blogpress/internal/blob"
	"blogpress/internal/gateway"
	"blogpress/internal/models"
	"blogpress/internal/view"
)

// newTestBlog returns a content store over a memory-backed gateway seeded
// with two categories and no posts.
func newTestBlog(t *testing.T) *Store {
	t.Helper()
	categories := []models.Category{
		{ID: "1", Name: "Technology", Slug: "technology", Color: "bg-blue-500"},
		{ID: "2", Name: "Design", Slug: "design", Color: "bg-purple-500"},
	}
	gw := gateway.NewStore(blob.NewMemoryStore(), categories, nil)
	return NewStore(gw)
}

func TestStoreInitialSnapshot(t *testing.T) {
	s := newTestBlog(t)
	snap := s.Snapshot()

	if len(snap.Posts) != 0 || len(snap.Categories) != 0 {
		t.Errorf("initial snapshot should be empty: %+v", snap)
	}
	if snap.Loading {
		t.Error("initial loading should be false")
	}
	if snap.Error != "" {
		t.Errorf("initial error should be empty, got %q", snap.Error)
	}
	if snap.CurrentPost != nil {
		t.Errorf("initial current post should be nil, got %+v", snap.CurrentPost)
	}
}

func TestStoreActivate(t *testing.T) {
	s := newTestBlog(t)

	s.Activate(context.Background())

	snap := s.Snapshot()
	if len(snap.Categories) != 2 {
		t.Errorf("categories after activate: got %d, want 2", len(snap.Categories))
	}
	if snap.Posts == nil {
		t.Error("posts should be set (empty, not nil) after activate")
	}
	if snap.Loading {
		t.Error("loading should be false once activate settles")
	}
}

// TestStoreDraftLifecycle walks a post from draft to published and checks
// the filtered read model at each step.
func TestStoreDraftLifecycle(t *testing.T) {
	s := newTestBlog(t)
	ctx := context.Background()

	if err := s.CreatePost(ctx, models.CreatePostData{
		Title:      "Hello World",
		Author:     "John Doe",
		CategoryID: "1",
		Published:  false,
	}); err != nil {
		t.Fatalf("CreatePost: %v", err)
	}

	if err := s.FetchPosts(ctx); err != nil {
		t.Fatalf("FetchPosts: %v", err)
	}

	snap := s.Snapshot()
	if len(snap.Posts) != 1 {
		t.Fatalf("posts: got %d, want 1", len(snap.Posts))
	}
	post := snap.Posts[0]
	if post.Category == nil || post.Category.Name != "Technology" {
		t.Errorf("embedded category: got %+v, want Technology", post.Category)
	}

	// Drafts are hidden when showDrafts is false.
	if got := view.Filter(snap.Posts, "", view.AllCategories, false); len(got) != 0 {
		t.Errorf("draft should be hidden, got %d posts", len(got))
	}

	// Publish via partial update.
	published := true
	if err := s.UpdatePost(ctx, models.UpdatePostData{ID: post.ID, Published: &published}); err != nil {
		t.Fatalf("UpdatePost: %v", err)
	}

	snap = s.Snapshot()
	got := view.Filter(snap.Posts, "", view.AllCategories, false)
	if len(got) != 1 || got[0].ID != post.ID {
		t.Errorf("published post should be visible: got %+v", got)
	}
}

func TestStoreCreateAppendsToSnapshot(t *testing.T) {
	s := newTestBlog(t)
	ctx := context.Background()

	for _, title := range []string{"First", "Second", "Third"} {
		if err := s.CreatePost(ctx, models.CreatePostData{
			Title: title, Author: "A", CategoryID: "1",
		}); err != nil {
			t.Fatalf("CreatePost %q: %v", title, err)
		}
	}

	snap := s.Snapshot()
	if len(snap.Posts) != 3 {
		t.Fatalf("posts: got %d, want 3", len(snap.Posts))
	}
	// Insertion order is preserved.
	for i, want := range []string{"First", "Second", "Third"} {
		if snap.Posts[i].Title != want {
			t.Errorf("posts[%d]: got %q, want %q", i, snap.Posts[i].Title, want)
		}
	}
}

func TestStoreUpdateNotFound(t *testing.T) {
	s := newTestBlog(t)
	ctx := context.Background()

	if err := s.CreatePost(ctx, models.CreatePostData{Title: "Keep", Author: "A", CategoryID: "1"}); err != nil {
		t.Fatalf("CreatePost: %v", err)
	}
	before := s.Snapshot()

	title := "x"
	err := s.UpdatePost(ctx, models.UpdatePostData{ID: "nonexistent", Title: &title})
	if !errors.Is(err, gateway.ErrNotFound) {
		t.Fatalf("expected raw ErrNotFound from intent, got %v", err)
	}

	after := s.Snapshot()
	if after.Error == "" {
		t.Error("snapshot error should be recorded")
	}
	if len(after.Posts) != len(before.Posts) || after.Posts[0].Title != "Keep" {
		t.Errorf("posts must be unchanged after failed update: %+v", after.Posts)
	}
}

func TestStoreDeleteRemovesFromSnapshot(t *testing.T) {
	s := newTestBlog(t)
	ctx := context.Background()

	s.CreatePost(ctx, models.CreatePostData{Title: "Keep", Author: "A", CategoryID: "1"})
	s.CreatePost(ctx, models.CreatePostData{Title: "Gone", Author: "A", CategoryID: "1"})

	snap := s.Snapshot()
	var goneID string
	for _, p := range snap.Posts {
		if p.Title == "Gone" {
			goneID = p.ID
		}
	}

	if err := s.DeletePost(ctx, goneID); err != nil {
		t.Fatalf("DeletePost: %v", err)
	}

	snap = s.Snapshot()
	if len(snap.Posts) != 1 || snap.Posts[0].Title != "Keep" {
		t.Errorf("posts after delete: %+v", snap.Posts)
	}
}

func TestStoreFetchPostSetsCurrent(t *testing.T) {
	s := newTestBlog(t)
	ctx := context.Background()

	s.CreatePost(ctx, models.CreatePostData{Title: "Current", Author: "A", CategoryID: "2"})
	id := s.Snapshot().Posts[0].ID

	if err := s.FetchPost(ctx, id); err != nil {
		t.Fatalf("FetchPost: %v", err)
	}

	snap := s.Snapshot()
	if snap.CurrentPost == nil || snap.CurrentPost.ID != id {
		t.Fatalf("current post: got %+v, want id %q", snap.CurrentPost, id)
	}
	if snap.Loading {
		t.Error("loading should be false after fetch")
	}

	// An absent id clears the selection without recording an error.
	if err := s.FetchPost(ctx, "nonexistent"); err != nil {
		t.Fatalf("FetchPost absent: %v", err)
	}
	snap = s.Snapshot()
	if snap.CurrentPost != nil {
		t.Errorf("current post should be nil for absent id, got %+v", snap.CurrentPost)
	}
}

func TestStoreSetCurrentPost(t *testing.T) {
	s := newTestBlog(t)

	post := &models.Post{ID: "42", Title: "Picked"}
	s.SetCurrentPost(post)
	if got := s.Snapshot().CurrentPost; got == nil || got.ID != "42" {
		t.Fatalf("current post: got %+v", got)
	}

	s.SetCurrentPost(nil)
	if got := s.Snapshot().CurrentPost; got != nil {
		t.Errorf("current post should be cleared, got %+v", got)
	}
}

// faultGateway fails every operation, simulating a dead backend.
type faultGateway struct{}

var errOffline = errors.New("backend offline")

func (faultGateway) ListPosts(ctx context.Context) ([]models.Post, error) { return nil, errOffline }
func (faultGateway) GetPost(ctx context.Context, id string) (*models.Post, error) {
	return nil, errOffline
}
func (faultGateway) CreatePost(ctx context.Context, data models.CreatePostData) (*models.Post, error) {
	return nil, errOffline
}
func (faultGateway) UpdatePost(ctx context.Context, data models.UpdatePostData) (*models.Post, error) {
	return nil, errOffline
}
func (faultGateway) DeletePost(ctx context.Context, id string) error { return errOffline }
func (faultGateway) ListCategories(ctx context.Context) ([]models.Category, error) {
	return nil, errOffline
}

func TestStoreFailureSemantics(t *testing.T) {
	s := NewStore(faultGateway{})
	ctx := context.Background()

	err := s.FetchPosts(ctx)
	if !errors.Is(err, errOffline) {
		t.Fatalf("intent should return the raw error, got %v", err)
	}

	snap := s.Snapshot()
	if snap.Error == "" {
		t.Error("snapshot error should be recorded")
	}
	if snap.Loading {
		t.Error("loading must be forced false on failure")
	}
}

// TestStoreStaleButAvailable verifies that a failed refresh keeps the
// previously loaded posts.
func TestStoreStaleButAvailable(t *testing.T) {
	good := newTestBlog(t)
	ctx := context.Background()
	good.CreatePost(ctx, models.CreatePostData{Title: "Loaded", Author: "A", CategoryID: "1"})
	good.FetchPosts(ctx)

	// Swap the gateway out for a dead one and refresh.
	good.gw = faultGateway{}
	if err := good.FetchPosts(ctx); err == nil {
		t.Fatal("expected refresh to fail")
	}

	snap := good.Snapshot()
	if len(snap.Posts) != 1 || snap.Posts[0].Title != "Loaded" {
		t.Errorf("previously loaded posts must survive a failed refresh: %+v", snap.Posts)
	}
	if snap.Error == "" {
		t.Error("snapshot error should be recorded")
	}
}

// TestSnapshotIsolation verifies that a snapshot taken before a transition
// does not observe it.
func TestSnapshotIsolation(t *testing.T) {
	s := newTestBlog(t)
	ctx := context.Background()

	s.CreatePost(ctx, models.CreatePostData{Title: "One", Author: "A", CategoryID: "1"})
	before := s.Snapshot()

	s.CreatePost(ctx, models.CreatePostData{Title: "Two", Author: "A", CategoryID: "1"})

	if len(before.Posts) != 1 {
		t.Errorf("old snapshot mutated: %+v", before.Posts)
	}
	if len(s.Snapshot().Posts) != 2 {
		t.Errorf("new snapshot should have both posts")
	}
}
