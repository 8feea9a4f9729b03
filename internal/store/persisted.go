// Package store implements the best-effort persisted document contract that
// backs cart, theme and favorites state: read once at initialization, hold in
// memory, write the whole document back on every accepted mutation. Storage
// trouble is never surfaced to callers; a failed read is "absent" and a failed
// write is a no-op for that session.
package store

import (
	"encoding/json"
	"sync"
)

// KV is the durable key-value storage a Persisted document sits on. Both
// methods are synchronous and best-effort: Get reports false for a missing
// key or an unavailable backend, Set swallows failures.
type KV interface {
	Get(key string) (string, bool)
	Set(key, value string)
}

// Persisted holds one JSON document under a fixed key.
type Persisted[T any] struct {
	kv  KV
	key string
}

func NewPersisted[T any](kv KV, key string) *Persisted[T] {
	return &Persisted[T]{kv: kv, key: key}
}

// Load reads and decodes the document. A missing key or an unparseable value
// both report absent, so a corrupt document re-initializes to defaults.
func (p *Persisted[T]) Load() (T, bool) {
	var v T
	raw, ok := p.kv.Get(p.key)
	if !ok {
		return v, false
	}
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return v, false
	}
	return v, true
}

// Save encodes and writes the document. No batching or debouncing: writes are
// small and infrequent, so every mutation goes straight through.
func (p *Persisted[T]) Save(v T) {
	b, err := json.Marshal(v)
	if err != nil {
		return
	}
	p.kv.Set(p.key, string(b))
}

// MemKV is an in-memory KV used by tests and as the fallback when durable
// storage could not be opened.
type MemKV struct {
	mu sync.Mutex
	m  map[string]string
}

func NewMemKV() *MemKV { return &MemKV{m: map[string]string{}} }

func (s *MemKV) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.m[key]
	return v, ok
}

func (s *MemKV) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = value
}
