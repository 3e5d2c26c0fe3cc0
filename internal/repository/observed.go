package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/lifeboard/pkg/events"
)

// Observed publishes a change notification after every successful mutation
// of the wrapped store.
type Observed[T any] struct {
	Store[T]
	table *Table[T]
	pub   events.Publisher
}

func NewObserved[T any](store Store[T], table *Table[T], pub events.Publisher) *Observed[T] {
	return &Observed[T]{
		Store: store,
		table: table,
		pub:   pub,
	}
}

func (o *Observed[T]) Insert(ctx context.Context, uid uuid.UUID, row *T) error {
	if err := o.Store.Insert(ctx, uid, row); err != nil {
		return err
	}
	o.publish(uid, events.OpInsert, o.table.Base(row).ID)
	return nil
}

func (o *Observed[T]) Update(ctx context.Context, uid uuid.UUID, id uuid.UUID, patch Patch) (*T, error) {
	row, err := o.Store.Update(ctx, uid, id, patch)
	if err != nil {
		return nil, err
	}
	o.publish(uid, events.OpUpdate, id)
	return row, nil
}

func (o *Observed[T]) Delete(ctx context.Context, uid uuid.UUID, id uuid.UUID) error {
	if err := o.Store.Delete(ctx, uid, id); err != nil {
		return err
	}
	o.publish(uid, events.OpDelete, id)
	return nil
}

func (o *Observed[T]) publish(uid uuid.UUID, op events.Op, id uuid.UUID) {
	o.pub.Publish(events.Change{
		Table:  o.table.Name,
		UserID: uid,
		Op:     op,
		ID:     id,
		At:     time.Now(),
	})
}
