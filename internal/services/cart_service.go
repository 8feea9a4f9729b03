package services

import (
	"sync"

	"ecycle/internal/domain"
	"ecycle/internal/store"
)

// CartStore holds one session's line items in memory and writes the full list
// through its persisted document on every accepted mutation. Totals are
// recomputed on every read, never cached.
type CartStore struct {
	mu    sync.Mutex
	lines []domain.CartLine
	doc   *store.Persisted[[]domain.CartLine]
}

func NewCartStore(kv store.KV, key string) *CartStore {
	cs := &CartStore{doc: store.NewPersisted[[]domain.CartLine](kv, key)}
	if lines, ok := cs.doc.Load(); ok {
		cs.lines = lines
	}
	return cs
}

// Add merges quantity into an existing line for the same product id, or
// appends a new line. The quantity delta is applied as given; HTTP callers
// clamp it to a positive range before it gets here.
func (s *CartStore) Add(item domain.CartLine, qty int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.lines {
		if s.lines[i].ProductID == item.ProductID {
			s.lines[i].Quantity += qty
			s.doc.Save(s.lines)
			return
		}
	}
	item.Quantity = qty
	s.lines = append(s.lines, item)
	s.doc.Save(s.lines)
}

func (s *CartStore) Remove(productID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.lines[:0]
	for _, l := range s.lines {
		if l.ProductID != productID {
			kept = append(kept, l)
		}
	}
	s.lines = kept
	s.doc.Save(s.lines)
}

// UpdateQuantity sets a line's quantity exactly. A quantity below 1 is a
// documented no-op, not a removal and not an error; an unknown id is also a
// no-op.
func (s *CartStore) UpdateQuantity(productID int64, qty int) {
	if qty < 1 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.lines {
		if s.lines[i].ProductID == productID {
			s.lines[i].Quantity = qty
			s.doc.Save(s.lines)
			return
		}
	}
}

func (s *CartStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
	s.doc.Save([]domain.CartLine{})
}

// Lines returns a copy; callers never see or touch the backing slice.
func (s *CartStore) Lines() []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

func (s *CartStore) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0.0
	for _, l := range s.lines {
		total += l.Price * float64(l.Quantity)
	}
	return total
}

func (s *CartStore) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, l := range s.lines {
		n += l.Quantity
	}
	return n
}

// CartService hands out one CartStore per session, loading each from durable
// storage the first time the session touches its cart.
type CartService struct {
	mu     sync.Mutex
	kv     store.KV
	stores map[string]*CartStore
}

func NewCartService(kv store.KV) *CartService {
	return &CartService{kv: kv, stores: map[string]*CartStore{}}
}

func (s *CartService) ForSession(sid string) *CartStore {
	s.mu.Lock()
	defer s.mu.Unlock()
	cs, ok := s.stores[sid]
	if !ok {
		cs = NewCartStore(s.kv, "cart:"+sid)
		s.stores[sid] = cs
	}
	return cs
}
