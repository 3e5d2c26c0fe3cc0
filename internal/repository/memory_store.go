package repository

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/lifeboard/internal/error_values"
)

// MemoryStore keeps rows of one table in process memory. It backs guest mode
// and honors the same filters and order as PostgresStore.
type MemoryStore[T any] struct {
	mu    sync.RWMutex
	table *Table[T]
	rows  []T
}

func NewMemoryStore[T any](table *Table[T]) *MemoryStore[T] {
	return &MemoryStore[T]{
		table: table,
		rows:  make([]T, 0, 16),
	}
}

func (store *MemoryStore[T]) List(_ context.Context, uid uuid.UUID, filter Filter) ([]T, error) {
	tbl := store.table
	if filter.From != nil || filter.To != nil {
		if tbl.DateColumn == "" {
			return nil, fmt.Errorf("%w: %s has no date column", errorvalues.ErrInvalidRange, tbl.Name)
		}
		if filter.From != nil && filter.To != nil && filter.From.After(*filter.To) {
			return nil, fmt.Errorf("%w: %s is after %s", errorvalues.ErrInvalidRange, filter.From, filter.To)
		}
	}
	for key := range filter.Eq {
		if !tbl.hasColumn(key) {
			return nil, fmt.Errorf("%w: %s.%s", errorvalues.ErrUnknownColumn, tbl.Name, key)
		}
	}

	store.mu.RLock()
	result := make([]T, 0, len(store.rows))
	for i := range store.rows {
		row := &store.rows[i]
		if tbl.Base(row).UserID != uid || !store.matches(row, filter) {
			continue
		}
		result = append(result, *row)
	}
	store.mu.RUnlock()

	slices.SortStableFunc(result, func(a, b T) int { return tbl.Compare(&a, &b) })
	if filter.Offset > 0 {
		if filter.Offset >= len(result) {
			return result[:0], nil
		}
		result = result[filter.Offset:]
	}
	if filter.Limit > 0 && filter.Limit < len(result) {
		result = result[:filter.Limit]
	}
	return result, nil
}

func (store *MemoryStore[T]) matches(row *T, filter Filter) bool {
	tbl := store.table
	if filter.From != nil || filter.To != nil {
		day := tbl.Day(row, filter.Location)
		if filter.From != nil && day.Before(*filter.From) {
			return false
		}
		if filter.To != nil && day.After(*filter.To) {
			return false
		}
	}
	for key, want := range filter.Eq {
		got, _ := tbl.value(row, key)
		if got != want {
			return false
		}
	}
	return true
}

func (store *MemoryStore[T]) find(uid, id uuid.UUID) int {
	for i := range store.rows {
		base := store.table.Base(&store.rows[i])
		if base.ID == id && base.UserID == uid {
			return i
		}
	}
	return -1
}

func (store *MemoryStore[T]) Get(_ context.Context, uid uuid.UUID, id uuid.UUID) (*T, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()
	i := store.find(uid, id)
	if i < 0 {
		return nil, errorvalues.ErrRecordNotFound
	}
	row := store.rows[i]
	return &row, nil
}

func (store *MemoryStore[T]) Insert(_ context.Context, uid uuid.UUID, row *T) error {
	base := store.table.Base(row)
	store.mu.Lock()
	defer store.mu.Unlock()
	base.ID = uuid.New()
	base.UserID = uid
	store.rows = append(store.rows, *row)
	return nil
}

func (store *MemoryStore[T]) Update(_ context.Context, uid uuid.UUID, id uuid.UUID, patch Patch) (*T, error) {
	if len(patch) == 0 {
		return nil, fmt.Errorf("%w: nothing to update", errorvalues.ErrInvalidPatch)
	}
	store.mu.Lock()
	defer store.mu.Unlock()
	i := store.find(uid, id)
	if i < 0 {
		return nil, errorvalues.ErrRecordNotFound
	}
	updated := store.rows[i]
	if err := ApplyPatch(store.table, &updated, patch); err != nil {
		return nil, err
	}
	store.rows[i] = updated
	return &updated, nil
}

func (store *MemoryStore[T]) Delete(_ context.Context, uid uuid.UUID, id uuid.UUID) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	i := store.find(uid, id)
	if i < 0 {
		return errorvalues.ErrRecordNotFound
	}
	store.rows = slices.Delete(store.rows, i, i+1)
	return nil
}
