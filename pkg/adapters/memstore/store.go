// Package memstore provides an in-memory DesignStore for tests and
// ephemeral sessions.
package memstore

import (
	"context"
	"sort"
	"sync"

	"github.com/user/breakstudio/pkg/design"
	"github.com/user/breakstudio/pkg/ports"
)

// Store keeps designs in a map. Safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	designs map[string]design.Design
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{designs: make(map[string]design.Design)}
}

// List implements ports.DesignStore. Summaries are ordered by most
// recent update first, matching the store listings users see.
func (s *Store) List(ctx context.Context) ([]design.Summary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	summaries := make([]design.Summary, 0, len(s.designs))
	for _, d := range s.designs {
		summaries = append(summaries, d.Summary())
	}
	sort.Slice(summaries, func(i, j int) bool {
		if !summaries[i].UpdatedAt.Equal(summaries[j].UpdatedAt) {
			return summaries[i].UpdatedAt.After(summaries[j].UpdatedAt)
		}
		return summaries[i].ID < summaries[j].ID
	})
	return summaries, nil
}

// Get implements ports.DesignStore.
func (s *Store) Get(ctx context.Context, id string) (design.Design, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.designs[id]
	if !ok {
		return design.Design{}, ports.ErrDesignNotFound
	}
	return d.Clone(), nil
}

// Put implements ports.DesignStore.
func (s *Store) Put(ctx context.Context, d design.Design) error {
	if err := d.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.designs[d.ID] = d.Clone()
	return nil
}

// Delete implements ports.DesignStore.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.designs[id]; !ok {
		return ports.ErrDesignNotFound
	}
	delete(s.designs, id)
	return nil
}

var _ ports.DesignStore = (*Store)(nil)
