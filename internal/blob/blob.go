// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package blob provides the backing store for the persistence gateway: a
// single named blob that is always read and written as a whole value.
// Three implementations are available: in-memory (development and tests),
// Valkey, and PostgreSQL.
package blob

import (
	"context"
	"sync"
)

// Store is a whole-value blob store. Load reports whether a value has ever
// been saved; a missing value is not an error. Save overwrites the entire
// value. There is no partial-write protection between Load and Save; the
// gateway assumes a single active writer.
type Store interface {
	Load(ctx context.Context) ([]byte, bool, error)
	Save(ctx context.Context, data []byte) error
}

// MemoryStore keeps the blob in process memory. Contents are lost on
// restart, so it is only suitable for development and tests.
type MemoryStore struct {
	mu   sync.Mutex
	data []byte
	set  bool
}

// NewMemoryStore returns an empty in-memory blob store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load returns a copy of the stored value, or ok=false if nothing has been
// saved yet.
func (s *MemoryStore) Load(ctx context.Context) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.set {
		return nil, false, nil
	}
	out := make([]byte, len(s.data))
	copy(out, s.data)
	return out, true, nil
}

// Save replaces the stored value.
func (s *MemoryStore) Save(ctx context.Context, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = make([]byte, len(data))
	copy(s.data, data)
	s.set = true
	return nil
}
