// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the shared entity types for the blog platform.
// The types are plain data contracts consumed by the gateway, the content
// store, and the HTTP handlers; they carry no behavior of their own.
package models

// Category is a fixed content category. Categories are seeded once and
// immutable for the lifetime of the store.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Color string `json:"color"`
}
