package server

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/cenkalti/backoff/v5"

	"github.com/DiD92/map-generator/internal/mapgen"
)

// Store keeps generated artifacts in memory, keyed by ID. When a data
// directory is configured the rendered drawing is also persisted to disk so
// artifacts survive restarts of the serving process.
type Store struct {
	mu   sync.RWMutex
	byID map[string]*mapgen.Artifact
	dir  string
}

// NewStore creates a store. An empty dir disables disk persistence.
func NewStore(dir string) *Store {
	return &Store{
		byID: make(map[string]*mapgen.Artifact),
		dir:  dir,
	}
}

// Put records an artifact. Disk writes are retried with exponential backoff
// since transient filesystem errors should not fail the request.
func (s *Store) Put(ctx context.Context, artifact *mapgen.Artifact) error {
	if s.dir != "" {
		path := filepath.Join(s.dir, artifact.ID.String()+".svg")
		write := func() (struct{}, error) {
			return struct{}{}, os.WriteFile(path, artifact.SVG, 0o644)
		}
		if _, err := backoff.Retry(ctx, write,
			backoff.WithBackOff(backoff.NewExponentialBackOff()),
			backoff.WithMaxTries(3),
		); err != nil {
			return fmt.Errorf("failed to persist drawing for %s: %w", artifact.ID, err)
		}
	}

	s.mu.Lock()
	s.byID[artifact.ID.String()] = artifact
	s.mu.Unlock()
	return nil
}

// Get returns the artifact with the given ID, if present.
func (s *Store) Get(id string) (*mapgen.Artifact, bool) {
	s.mu.RLock()
	artifact, ok := s.byID[id]
	s.mu.RUnlock()
	return artifact, ok
}

// Len returns the number of stored artifacts.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}
