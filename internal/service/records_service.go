package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/lifeboard/internal/repository"
	"github.com/limbo/lifeboard/pkg/dates"
	"github.com/limbo/lifeboard/pkg/entity"
)

type RecordsServiceI[T any] interface {
	List(ctx context.Context, uid uuid.UUID, filter repository.Filter) ([]T, error)
	// Fills defaults, validates and inserts row
	Create(ctx context.Context, uid uuid.UUID, row *T, loc *time.Location) (*T, error)
	// Applies a decoded JSON patch. The patched row is validated before it's written
	Update(ctx context.Context, uid uuid.UUID, id uuid.UUID, raw map[string]any) (*T, error)
	Delete(ctx context.Context, uid uuid.UUID, id uuid.UUID) error
}

// Defaults fills zero fields of a new row. now is already in the caller's location.
type Defaults[T any] func(row *T, now time.Time)

// RecordsService is plain validated CRUD over one table.
type RecordsService[T any] struct {
	store    repository.Store[T]
	table    *repository.Table[T]
	clock    dates.Clock
	defaults Defaults[T]
}

func NewRecordsService[T any](store repository.Store[T], table *repository.Table[T], clock dates.Clock, defaults Defaults[T]) *RecordsService[T] {
	if store == nil || table == nil {
		log.Fatal("provided nil store for records service")
	}
	if clock == nil {
		clock = dates.SystemClock{}
	}
	return &RecordsService[T]{
		store:    store,
		table:    table,
		clock:    clock,
		defaults: defaults,
	}
}

func (rs *RecordsService[T]) List(ctx context.Context, uid uuid.UUID, filter repository.Filter) ([]T, error) {
	rows, err := rs.store.List(ctx, uid, filter)
	if err != nil {
		return nil, fmt.Errorf("%s repository error: %w", rs.table.Name, err)
	}
	return rows, nil
}

func (rs *RecordsService[T]) Create(ctx context.Context, uid uuid.UUID, row *T, loc *time.Location) (*T, error) {
	if loc == nil {
		loc = time.Local
	}
	*rs.table.Base(row) = entity.Base{}
	if rs.defaults != nil {
		rs.defaults(row, rs.clock.Now().In(loc))
	}
	if err := validateStruct(row); err != nil {
		return nil, err
	}
	if err := rs.store.Insert(ctx, uid, row); err != nil {
		return nil, fmt.Errorf("%s repository error: %w", rs.table.Name, err)
	}
	return row, nil
}

func (rs *RecordsService[T]) Update(ctx context.Context, uid uuid.UUID, id uuid.UUID, raw map[string]any) (*T, error) {
	patch, err := repository.NormalizePatch(rs.table, raw)
	if err != nil {
		return nil, err
	}
	current, err := rs.store.Get(ctx, uid, id)
	if err != nil {
		return nil, fmt.Errorf("%s repository error: %w", rs.table.Name, err)
	}
	if err = repository.ApplyPatch(rs.table, current, patch); err != nil {
		return nil, err
	}
	if err = validateStruct(current); err != nil {
		return nil, err
	}
	row, err := rs.store.Update(ctx, uid, id, patch)
	if err != nil {
		return nil, fmt.Errorf("%s repository error: %w", rs.table.Name, err)
	}
	return row, nil
}

func (rs *RecordsService[T]) Delete(ctx context.Context, uid uuid.UUID, id uuid.UUID) error {
	if err := rs.store.Delete(ctx, uid, id); err != nil {
		return fmt.Errorf("%s repository error: %w", rs.table.Name, err)
	}
	return nil
}

func TodoDefaults(row *entity.Todo, now time.Time) {
	if row.CreatedDate.IsZero() {
		row.CreatedDate = dates.Of(now)
	}
	if row.Priority == "" {
		row.Priority = "medium"
	}
}

func DSAProblemDefaults(row *entity.DSAProblem, now time.Time) {
	if row.SolvedDate.IsZero() {
		row.SolvedDate = dates.Of(now)
	}
}

func GymCheckinDefaults(row *entity.GymCheckin, now time.Time) {
	if row.CheckinDate.IsZero() {
		row.CheckinDate = dates.Of(now)
	}
	if row.CheckinTime == "" {
		row.CheckinTime = now.Format(dates.TimeLayout)
	}
}

func FocusSessionDefaults(row *entity.FocusSession, now time.Time) {
	if row.CreatedAt.IsZero() {
		row.CreatedAt = now
	}
	if row.SessionType == "" {
		row.SessionType = "focus"
	}
}

func NoteDefaults(row *entity.Note, now time.Time) {
	if row.CreatedAt.IsZero() {
		row.CreatedAt = now
	}
}

func ReflectionDefaults(row *entity.Reflection, now time.Time) {
	if row.ReflectionDate.IsZero() {
		row.ReflectionDate = dates.Of(now)
	}
}

func ProjectTaskDefaults(row *entity.ProjectTask, now time.Time) {
	if row.CreatedDate.IsZero() {
		row.CreatedDate = dates.Of(now)
	}
	if row.Status == "" {
		row.Status = "todo"
	}
}
