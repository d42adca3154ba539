// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers for the posts API. The API is
// a thin pass-through over the persistence gateway: the gateway owns ids,
// timestamps, and category denormalization; handlers translate requests and
// write JSON.
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"blogpress/internal/gateway"
	"blogpress/internal/models"
	"blogpress/internal/slug"
)

// API groups the posts API handlers around a gateway.
type API struct {
	gw gateway.Gateway
}

// NewAPI creates the API handler group over the given gateway.
func NewAPI(gw gateway.Gateway) *API {
	return &API{gw: gw}
}

// writeJSON writes v as a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("write json response failed", "error", err)
	}
}

// writeError writes an {"error": msg} body with the given status.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// ListPosts handles GET /posts.
func (a *API) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := a.gw.ListPosts(r.Context())
	if err != nil {
		slog.Error("list posts failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list posts")
		return
	}
	if posts == nil {
		posts = []models.Post{}
	}
	writeJSON(w, http.StatusOK, posts)
}

// GetPost handles GET /posts/{slugOrId}. The parameter matches a post id
// first; failing that, the slug derived from a post title.
func (a *API) GetPost(w http.ResponseWriter, r *http.Request) {
	param := chi.URLParam(r, "slugOrId")

	post, err := a.gw.GetPost(r.Context(), param)
	if err != nil {
		slog.Error("get post failed", "param", param, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to get post")
		return
	}
	if post == nil {
		post, err = a.findBySlug(r, param)
		if err != nil {
			slog.Error("get post by slug failed", "param", param, "error", err)
			writeError(w, http.StatusInternalServerError, "failed to get post")
			return
		}
	}
	if post == nil {
		writeError(w, http.StatusNotFound, "Post not found")
		return
	}
	writeJSON(w, http.StatusOK, post)
}

// findBySlug scans the collection for a post whose title slugifies to the
// given value.
func (a *API) findBySlug(r *http.Request, s string) (*models.Post, error) {
	posts, err := a.gw.ListPosts(r.Context())
	if err != nil {
		return nil, err
	}
	for i := range posts {
		if slug.Generate(posts[i].Title) == s {
			return &posts[i], nil
		}
	}
	return nil, nil
}

// CreatePost handles POST /posts.
func (a *API) CreatePost(w http.ResponseWriter, r *http.Request) {
	var data models.CreatePostData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if msg := validateCreate(data); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	if msg := a.checkCategory(r, data.CategoryID); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	post, err := a.gw.CreatePost(r.Context(), data)
	if err != nil {
		slog.Error("create post failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to create post")
		return
	}
	writeJSON(w, http.StatusCreated, post)
}

// checkCategory verifies that the given category id references an existing
// category. The gateway itself tolerates dangling references; rejecting
// them at the API boundary keeps stored data clean.
func (a *API) checkCategory(r *http.Request, categoryID string) string {
	categories, err := a.gw.ListCategories(r.Context())
	if err != nil {
		slog.Warn("category check skipped", "error", err)
		return ""
	}
	for _, c := range categories {
		if c.ID == categoryID {
			return ""
		}
	}
	return "Unknown category."
}

// UpdatePost handles PATCH /posts/{id}.
func (a *API) UpdatePost(w http.ResponseWriter, r *http.Request) {
	var data models.UpdatePostData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	data.ID = chi.URLParam(r, "id")

	if msg := validateUpdate(data); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	if data.CategoryID != nil {
		if msg := a.checkCategory(r, *data.CategoryID); msg != "" {
			writeError(w, http.StatusBadRequest, msg)
			return
		}
	}

	post, err := a.gw.UpdatePost(r.Context(), data)
	if err != nil {
		if errors.Is(err, gateway.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Post not found")
			return
		}
		slog.Error("update post failed", "id", data.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to update post")
		return
	}
	writeJSON(w, http.StatusOK, post)
}

// DeletePost handles DELETE /posts/{id}. The gateway's delete is
// idempotent, so absence is checked here to answer 404 per the API contract.
func (a *API) DeletePost(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	post, err := a.gw.GetPost(r.Context(), id)
	if err != nil {
		slog.Error("delete post lookup failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete post")
		return
	}
	if post == nil {
		writeError(w, http.StatusNotFound, "Post not found")
		return
	}

	if err := a.gw.DeletePost(r.Context(), id); err != nil {
		slog.Error("delete post failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete post")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListCategories handles GET /categories.
func (a *API) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := a.gw.ListCategories(r.Context())
	if err != nil {
		slog.Error("list categories failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list categories")
		return
	}
	if categories == nil {
		categories = []models.Category{}
	}
	writeJSON(w, http.StatusOK, categories)
}
