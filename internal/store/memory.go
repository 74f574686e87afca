// internal/store/memory.go
//
// In-memory implementation of the result Store interface. Collects finished
// game results during a run; durable persistence (SQLite) lives at the
// command layer. Safe for the concurrent writers of a batch run.

package store

import (
	"context"
	"errors"
	"sync"

	"github.com/dsalas/wordle-solver/internal/sim"
)

// Store is the persistence interface for game results. Implementations may
// be backed by memory (this package) or SQL.
type Store interface {
	// Save persists one finished game result.
	Save(ctx context.Context, r *sim.Result) error

	// Get retrieves a result by game ID.
	// Returns an error if the result is not found.
	Get(ctx context.Context, id string) (*sim.Result, error)

	// List returns every stored result in insertion order.
	List(ctx context.Context) ([]*sim.Result, error)
}

// memory is a map-backed Store implementation.
type memory struct {
	mu      sync.RWMutex
	byID    map[string]*sim.Result
	ordered []*sim.Result
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{byID: make(map[string]*sim.Result)}
}

func (m *memory) Save(ctx context.Context, r *sim.Result) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, dup := m.byID[r.ID]; !dup {
		m.ordered = append(m.ordered, r)
	} else {
		for i, old := range m.ordered {
			if old.ID == r.ID {
				m.ordered[i] = r
				break
			}
		}
	}
	m.byID[r.ID] = r
	return nil
}

func (m *memory) Get(ctx context.Context, id string) (*sim.Result, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if r, ok := m.byID[id]; ok {
		return r, nil
	}
	return nil, errors.New("not found")
}

func (m *memory) List(ctx context.Context) ([]*sim.Result, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*sim.Result, len(m.ordered))
	copy(out, m.ordered)
	return out, nil
}
