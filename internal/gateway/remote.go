// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"blogpress/internal/models"
)

// Remote is a Gateway over the posts HTTP API. The server owns id
// generation and timestamping; Remote only translates calls to requests and
// status codes back to gateway semantics.
type Remote struct {
	baseURL string
	client  *http.Client
}

// NewRemote returns a Remote gateway for the API at baseURL (no trailing slash).
func NewRemote(baseURL string) *Remote {
	return &Remote{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// apiError is the error body the posts API returns on failure.
type apiError struct {
	Error string `json:"error"`
}

// do performs a request and returns the response body for accepted status
// codes. Any transport fault or unexpected status becomes a PersistenceError.
func (r *Remote) do(ctx context.Context, method, path string, body any, accept ...int) (int, []byte, error) {
	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return 0, nil, &PersistenceError{Op: method + " " + path, Err: err}
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, r.baseURL+path, payload)
	if err != nil {
		return 0, nil, &PersistenceError{Op: method + " " + path, Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return 0, nil, &PersistenceError{Op: method + " " + path, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, &PersistenceError{Op: method + " " + path, Err: err}
	}

	for _, code := range accept {
		if resp.StatusCode == code {
			return resp.StatusCode, respBody, nil
		}
	}

	var apiErr apiError
	msg := string(respBody)
	if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Error != "" {
		msg = apiErr.Error
	}
	return resp.StatusCode, respBody, &PersistenceError{
		Op:  method + " " + path,
		Err: fmt.Errorf("status %d: %s", resp.StatusCode, msg),
	}
}

// ListPosts fetches the full collection. Embedded categories come from the
// server, which performs the join.
func (r *Remote) ListPosts(ctx context.Context) ([]models.Post, error) {
	_, body, err := r.do(ctx, http.MethodGet, "/posts", nil, http.StatusOK)
	if err != nil {
		return nil, err
	}
	var posts []models.Post
	if err := json.Unmarshal(body, &posts); err != nil {
		return nil, &PersistenceError{Op: "decode posts", Err: err}
	}
	return posts, nil
}

// GetPost fetches a single post. A 404 reports absence, not an error.
func (r *Remote) GetPost(ctx context.Context, id string) (*models.Post, error) {
	status, body, err := r.do(ctx, http.MethodGet, "/posts/"+id, nil, http.StatusOK, http.StatusNotFound)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, nil
	}
	var post models.Post
	if err := json.Unmarshal(body, &post); err != nil {
		return nil, &PersistenceError{Op: "decode post", Err: err}
	}
	return &post, nil
}

// CreatePost posts the new record and returns the server's created post.
func (r *Remote) CreatePost(ctx context.Context, data models.CreatePostData) (*models.Post, error) {
	_, body, err := r.do(ctx, http.MethodPost, "/posts", data, http.StatusCreated)
	if err != nil {
		return nil, err
	}
	var post models.Post
	if err := json.Unmarshal(body, &post); err != nil {
		return nil, &PersistenceError{Op: "decode post", Err: err}
	}
	return &post, nil
}

// UpdatePost patches the partial fields. A 404 maps to ErrNotFound.
func (r *Remote) UpdatePost(ctx context.Context, data models.UpdatePostData) (*models.Post, error) {
	status, body, err := r.do(ctx, http.MethodPatch, "/posts/"+data.ID, data, http.StatusOK, http.StatusNotFound)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, ErrNotFound
	}
	var post models.Post
	if err := json.Unmarshal(body, &post); err != nil {
		return nil, &PersistenceError{Op: "decode post", Err: err}
	}
	return &post, nil
}

// DeletePost removes the post. The server answers 404 for an absent id, but
// the gateway contract makes delete idempotent, so both outcomes succeed.
func (r *Remote) DeletePost(ctx context.Context, id string) error {
	_, _, err := r.do(ctx, http.MethodDelete, "/posts/"+id, nil, http.StatusNoContent, http.StatusNotFound)
	return err
}

// ListCategories fetches the fixed category set.
func (r *Remote) ListCategories(ctx context.Context) ([]models.Category, error) {
	_, body, err := r.do(ctx, http.MethodGet, "/categories", nil, http.StatusOK)
	if err != nil {
		return nil, err
	}
	var categories []models.Category
	if err := json.Unmarshal(body, &categories); err != nil {
		return nil, &PersistenceError{Op: "decode categories", Err: err}
	}
	return categories, nil
}
