// internal/store/memory_test.go

package store

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsalas/wordle-solver/internal/sim"
)

func TestMemoryStoreSaveGetList(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	a := &sim.Result{ID: "a", Secret: "crane", Status: sim.StatusWon, Turns: 3}
	b := &sim.Result{ID: "b", Secret: "slate", Status: sim.StatusLost, Turns: 6}

	require.NoError(t, s.Save(ctx, a))
	require.NoError(t, s.Save(ctx, b))

	got, err := s.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, a, got)

	_, err = s.Get(ctx, "missing")
	assert.Error(t, err)

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	// Insertion order.
	assert.Equal(t, "a", list[0].ID)
	assert.Equal(t, "b", list[1].ID)
}

func TestMemoryStoreOverwriteByID(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	require.NoError(t, s.Save(ctx, &sim.Result{ID: "a", Turns: 3}))
	require.NoError(t, s.Save(ctx, &sim.Result{ID: "a", Turns: 5}))

	got, err := s.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, 5, got.Turns)

	list, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestMemoryStoreListIsACopy(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	require.NoError(t, s.Save(ctx, &sim.Result{ID: "a"}))

	list, err := s.List(ctx)
	require.NoError(t, err)
	list[0] = nil

	again, err := s.List(ctx)
	require.NoError(t, err)
	require.NotNil(t, again[0])
}

func TestMemoryStoreConcurrentSaves(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = s.Save(ctx, &sim.Result{ID: fmt.Sprintf("g%d", i)})
		}(i)
	}
	wg.Wait()

	list, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 50)
}
