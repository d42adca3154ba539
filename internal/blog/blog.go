// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package blog holds the client-side content state machine. A Store keeps
// the canonical in-memory snapshot of posts and categories and is the only
// thing that mutates it: every intent dispatches a tagged action through a
// pure reducer, so readers always observe a complete snapshot, never a
// half-applied transition.
package blog

import "blogpress/internal/models"

// Snapshot is the complete state of the content store at a point in time.
// Error holds the message from the most recent failed intent; a failed
// intent never clears previously loaded Posts or Categories.
type Snapshot struct {
	Posts       []models.Post
	Categories  []models.Category
	Loading     bool
	Error       string
	CurrentPost *models.Post
}

// action is a tagged state transition. Each variant replaces whole snapshot
// fields; none mutates in place.
type action interface {
	isAction()
}

type setLoading struct{ loading bool }
type setError struct{ msg string }
type setPosts struct{ posts []models.Post }
type setCategories struct{ categories []models.Category }
type setCurrentPost struct{ post *models.Post }
type addPost struct{ post models.Post }
type replacePost struct{ post models.Post }
type removePost struct{ id string }

func (setLoading) isAction()     {}
func (setError) isAction()       {}
func (setPosts) isAction()       {}
func (setCategories) isAction()  {}
func (setCurrentPost) isAction() {}
func (addPost) isAction()        {}
func (replacePost) isAction()    {}
func (removePost) isAction()     {}

// reduce maps (snapshot, action) to the next snapshot. It is pure: the
// input snapshot is taken by value and post slices are rebuilt, never
// modified, so an old snapshot stays valid after any number of transitions.
func reduce(s Snapshot, a action) Snapshot {
	switch a := a.(type) {
	case setLoading:
		s.Loading = a.loading
	case setError:
		s.Error = a.msg
		s.Loading = false
	case setPosts:
		s.Posts = a.posts
		s.Loading = false
	case setCategories:
		s.Categories = a.categories
	case setCurrentPost:
		s.CurrentPost = a.post
	case addPost:
		posts := make([]models.Post, 0, len(s.Posts)+1)
		posts = append(posts, s.Posts...)
		s.Posts = append(posts, a.post)
	case replacePost:
		posts := make([]models.Post, len(s.Posts))
		for i, p := range s.Posts {
			if p.ID == a.post.ID {
				posts[i] = a.post
			} else {
				posts[i] = p
			}
		}
		s.Posts = posts
	case removePost:
		posts := make([]models.Post, 0, len(s.Posts))
		for _, p := range s.Posts {
			if p.ID != a.id {
				posts = append(posts, p)
			}
		}
		s.Posts = posts
	}
	return s
}
