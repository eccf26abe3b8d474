package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"
	errorvalues "github.com/rpillai/daytrack/internal/error_values"
)

// MemoryStore keeps a record family in an id-keyed map plus an insertion
// order list. It is the default backend when no database is configured.
type MemoryStore[R Record] struct {
	mu    sync.RWMutex
	items map[string]R
	order []string
}

func NewMemoryStore[R Record]() *MemoryStore[R] {
	return &MemoryStore[R]{
		items: make(map[string]R),
	}
}

func (ms *MemoryStore[R]) Create(_ context.Context, rec R) (R, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	rec.SetID(uuid.NewString())
	ms.items[rec.GetID()] = rec
	ms.order = append(ms.order, rec.GetID())
	return rec, nil
}

func (ms *MemoryStore[R]) List(_ context.Context) ([]R, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	records := make([]R, 0, len(ms.order))
	for _, id := range ms.order {
		records = append(records, ms.items[id])
	}
	return records, nil
}

func (ms *MemoryStore[R]) ListBy(_ context.Context, match func(R) bool) ([]R, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	records := make([]R, 0)
	for _, id := range ms.order {
		if match(ms.items[id]) {
			records = append(records, ms.items[id])
		}
	}
	return records, nil
}

func (ms *MemoryStore[R]) Get(_ context.Context, id string) (R, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	rec, ok := ms.items[id]
	if !ok {
		var zero R
		return zero, errorvalues.ErrRecordNotFound
	}
	return rec, nil
}

func (ms *MemoryStore[R]) Update(_ context.Context, id string, apply func(R)) (R, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	rec, ok := ms.items[id]
	if !ok {
		var zero R
		return zero, errorvalues.ErrRecordNotFound
	}
	apply(rec)
	return rec, nil
}

func (ms *MemoryStore[R]) Delete(_ context.Context, id string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	if _, ok := ms.items[id]; !ok {
		return nil
	}
	delete(ms.items, id)
	for i, ordered := range ms.order {
		if ordered == id {
			ms.order = append(ms.order[:i], ms.order[i+1:]...)
			break
		}
	}
	return nil
}
