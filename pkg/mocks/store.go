package mocks

import (
	"context"
	"sort"
	"sync"

	"github.com/user/breakstudio/pkg/design"
	"github.com/user/breakstudio/pkg/ports"
)

// DesignStore is a mock implementation of ports.DesignStore backed by
// an in-memory map.
type DesignStore struct {
	mu      sync.RWMutex
	designs map[string]design.Design

	ListFunc   func(ctx context.Context) ([]design.Summary, error)
	GetFunc    func(ctx context.Context, id string) (design.Design, error)
	PutFunc    func(ctx context.Context, d design.Design) error
	DeleteFunc func(ctx context.Context, id string) error
}

// NewDesignStore creates a new mock DesignStore.
func NewDesignStore() *DesignStore {
	return &DesignStore{designs: make(map[string]design.Design)}
}

func (m *DesignStore) List(ctx context.Context) ([]design.Summary, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	summaries := make([]design.Summary, 0, len(m.designs))
	for _, d := range m.designs {
		summaries = append(summaries, d.Summary())
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].ID < summaries[j].ID })
	return summaries, nil
}

func (m *DesignStore) Get(ctx context.Context, id string) (design.Design, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	d, ok := m.designs[id]
	if !ok {
		return design.Design{}, ports.ErrDesignNotFound
	}
	return d.Clone(), nil
}

func (m *DesignStore) Put(ctx context.Context, d design.Design) error {
	if m.PutFunc != nil {
		return m.PutFunc(ctx, d)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.designs[d.ID] = d.Clone()
	return nil
}

func (m *DesignStore) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.designs[id]; !ok {
		return ports.ErrDesignNotFound
	}
	delete(m.designs, id)
	return nil
}

// Count returns the number of stored designs (for test verification).
func (m *DesignStore) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.designs)
}

var _ ports.DesignStore = (*DesignStore)(nil)
