package services

import (
	"sync"

	"ecycle/internal/domain"
	"ecycle/internal/store"
)

// ThemeStore holds one session's display mode. Initialization resolves the
// mode exactly once: persisted value, then the ambient prefers-dark signal,
// then dark. Toggle persists only after initialization so a default never
// overwrites a preference that has not been loaded yet.
type ThemeStore struct {
	mu          sync.Mutex
	mode        domain.ThemeMode
	initialized bool
	doc         *store.Persisted[domain.ThemeMode]
}

func NewThemeStore(kv store.KV, key string) *ThemeStore {
	return &ThemeStore{mode: domain.ThemeDark, doc: store.NewPersisted[domain.ThemeMode](kv, key)}
}

// Initialize resolves the starting mode. ambientDark is the host's reported
// color-scheme preference; nil means the signal is unavailable. Calls after
// the first are no-ops.
func (s *ThemeStore) Initialize(ambientDark *bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.initialized {
		return
	}
	if m, ok := s.doc.Load(); ok && (m == domain.ThemeLight || m == domain.ThemeDark) {
		s.mode = m
	} else if ambientDark != nil {
		if *ambientDark {
			s.mode = domain.ThemeDark
		} else {
			s.mode = domain.ThemeLight
		}
	} else {
		s.mode = domain.ThemeDark
	}
	s.initialized = true
}

func (s *ThemeStore) Toggle() domain.ThemeMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mode == domain.ThemeLight {
		s.mode = domain.ThemeDark
	} else {
		s.mode = domain.ThemeLight
	}
	if s.initialized {
		s.doc.Save(s.mode)
	}
	return s.mode
}

func (s *ThemeStore) Mode() domain.ThemeMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

func (s *ThemeStore) IsDark() bool { return s.Mode() == domain.ThemeDark }

// ThemeService hands out one ThemeStore per session.
type ThemeService struct {
	mu     sync.Mutex
	kv     store.KV
	stores map[string]*ThemeStore
}

func NewThemeService(kv store.KV) *ThemeService {
	return &ThemeService{kv: kv, stores: map[string]*ThemeStore{}}
}

func (s *ThemeService) ForSession(sid string) *ThemeStore {
	s.mu.Lock()
	defer s.mu.Unlock()
	ts, ok := s.stores[sid]
	if !ok {
		ts = NewThemeStore(s.kv, "theme:"+sid)
		s.stores[sid] = ts
	}
	return ts
}
