package service_test

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/lifeboard/internal/error_values"
	"github.com/limbo/lifeboard/internal/repository"
	"github.com/limbo/lifeboard/pkg/dates"
)

type mockState int

const (
	stateSuccess mockState = iota
	stateDBError
)

// Variables for tests
var (
	userID    = uuid.New()
	otherUser = uuid.New()
	// Friday 2024-01-05 10:30 UTC
	testNow   = time.Date(2024, time.January, 5, 10, 30, 0, 0, time.UTC)
	testClock = dates.FixedClock{At: testNow}
	today     = dates.New(2024, time.January, 5)
)

// faultyStore passes calls to the wrapped store until its state is switched
// to stateDBError, then fails every one of them like an unreachable remote.
type faultyStore[T any] struct {
	repository.Store[T]
	state mockState
}

func (fs *faultyStore[T]) fail(op string) error {
	if fs.state == stateDBError {
		return fmt.Errorf("%w: %s: db error", errorvalues.ErrSync, op)
	}
	return nil
}

func (fs *faultyStore[T]) List(ctx context.Context, uid uuid.UUID, filter repository.Filter) ([]T, error) {
	if err := fs.fail("list"); err != nil {
		return nil, err
	}
	return fs.Store.List(ctx, uid, filter)
}

func (fs *faultyStore[T]) Get(ctx context.Context, uid, id uuid.UUID) (*T, error) {
	if err := fs.fail("get"); err != nil {
		return nil, err
	}
	return fs.Store.Get(ctx, uid, id)
}

func (fs *faultyStore[T]) Insert(ctx context.Context, uid uuid.UUID, row *T) error {
	if err := fs.fail("insert"); err != nil {
		return err
	}
	return fs.Store.Insert(ctx, uid, row)
}

func (fs *faultyStore[T]) Update(ctx context.Context, uid, id uuid.UUID, patch repository.Patch) (*T, error) {
	if err := fs.fail("update"); err != nil {
		return nil, err
	}
	return fs.Store.Update(ctx, uid, id, patch)
}

func (fs *faultyStore[T]) Delete(ctx context.Context, uid, id uuid.UUID) error {
	if err := fs.fail("delete"); err != nil {
		return err
	}
	return fs.Store.Delete(ctx, uid, id)
}

func newFaulty[T any](tbl *repository.Table[T]) *faultyStore[T] {
	return &faultyStore[T]{Store: repository.NewMemoryStore(tbl)}
}
