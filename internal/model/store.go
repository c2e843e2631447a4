package model

import (
	"log/slog"
	"sync"
)

// Store holds the process-wide model artifact. The artifact itself is
// immutable; Reload builds a whole replacement and swaps it under the write
// lock, so readers never observe a partially loaded model.
type Store struct {
	mu     sync.RWMutex
	dir    string
	logger *slog.Logger
	m      *Model
}

func NewStore(dir string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{dir: dir, logger: logger}
}

// Get returns the current model snapshot, which may be an unfitted nil.
func (s *Store) Get() *Model {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m
}

// Load reads the artifact from the store directory. A failed load leaves any
// previously held model in place and is reported as a warning: an absent
// artifact is an expected startup state, not an error.
func (s *Store) Load() error {
	m, err := Load(s.dir)
	if err != nil {
		s.logger.Warn("clearance model unavailable; predictions fall back to keywords",
			"model_dir", s.dir, "error", err)
		return err
	}
	s.Swap(m)
	s.logger.Info("clearance model loaded", "model_dir", s.dir, "labels", len(m.Binarizer.Classes))
	return nil
}

// Reload is the explicit operator-driven refresh path.
func (s *Store) Reload() error {
	return s.Load()
}

// Swap installs a replacement model.
func (s *Store) Swap(m *Model) {
	s.mu.Lock()
	s.m = m
	s.mu.Unlock()
}
