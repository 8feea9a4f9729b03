package services

import (
	"sync"

	"ecycle/internal/store"
)

// FavoritesStore tracks the product ids a session has saved from the listing
// page, persisted like the cart.
type FavoritesStore struct {
	mu  sync.Mutex
	ids []int64
	doc *store.Persisted[[]int64]
}

func NewFavoritesStore(kv store.KV, key string) *FavoritesStore {
	fs := &FavoritesStore{doc: store.NewPersisted[[]int64](kv, key)}
	if ids, ok := fs.doc.Load(); ok {
		fs.ids = ids
	}
	return fs
}

func (s *FavoritesStore) Save(productID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range s.ids {
		if id == productID {
			return
		}
	}
	s.ids = append(s.ids, productID)
	s.doc.Save(s.ids)
}

func (s *FavoritesStore) Unsave(productID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.ids[:0]
	for _, id := range s.ids {
		if id != productID {
			kept = append(kept, id)
		}
	}
	s.ids = kept
	s.doc.Save(s.ids)
}

func (s *FavoritesStore) List() []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]int64, len(s.ids))
	copy(out, s.ids)
	return out
}

type FavoritesService struct {
	mu     sync.Mutex
	kv     store.KV
	stores map[string]*FavoritesStore
}

func NewFavoritesService(kv store.KV) *FavoritesService {
	return &FavoritesService{kv: kv, stores: map[string]*FavoritesStore{}}
}

func (s *FavoritesService) ForSession(sid string) *FavoritesStore {
	s.mu.Lock()
	defer s.mu.Unlock()
	fs, ok := s.stores[sid]
	if !ok {
		fs = NewFavoritesStore(s.kv, "favorites:"+sid)
		s.stores[sid] = fs
	}
	return fs
}
