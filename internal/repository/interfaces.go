package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/limbo/lifeboard/pkg/dates"
)

// Store is the row-store facade shared by the remote and the guest backends.
// Every call is scoped to uid: rows of other users behave as absent.
type Store[T any] interface {
	// Lists rows matching the filter, ordered by the table's natural order
	List(ctx context.Context, uid uuid.UUID, filter Filter) ([]T, error)
	// Looks up one row by id
	Get(ctx context.Context, uid uuid.UUID, id uuid.UUID) (*T, error)
	// Inserts row. ID and UserID of row are filled in.
	Insert(ctx context.Context, uid uuid.UUID, row *T) error
	// Applies patch to the row with id and returns the updated row
	Update(ctx context.Context, uid uuid.UUID, id uuid.UUID, patch Patch) (*T, error)
	// Deletes the row with id
	Delete(ctx context.Context, uid uuid.UUID, id uuid.UUID) error
}

// Filter narrows List. From and To bound the table's date column, both inclusive.
type Filter struct {
	From *dates.Date
	To   *dates.Date
	// Location turns From/To into instants for timestamp columns. Defaults to time.Local
	Location *time.Location
	// Eq holds column = value conditions
	Eq     map[string]any
	Limit  int
	Offset int
}

// Day narrows the filter to a single calendar day.
func Day(d dates.Date) Filter {
	return Filter{From: &d, To: &d}
}

// Between narrows the filter to from..to inclusive.
func Between(from, to dates.Date) Filter {
	return Filter{From: &from, To: &to}
}

// Patch maps writable column names to typed values.
type Patch map[string]any

// Scope addresses one JSON blob of one feature for one user.
type Scope struct {
	User    uuid.UUID
	Feature string
}

type ScopedStore interface {
	// Decodes the saved blob into dst. ErrPreferenceNotFound if nothing is saved
	Get(ctx context.Context, scope Scope, dst any) error
	// Saves v, replacing any previous blob
	Put(ctx context.Context, scope Scope, v any) error
	Delete(ctx context.Context, scope Scope) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
	// SSLMode is appended as sslmode when set. Hosted stores usually need "require"
	SSLMode string
}

func (pgcfg *PGCfg) ConnString() string {
	conn := fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
	if pgcfg.SSLMode != "" {
		conn += "?sslmode=" + pgcfg.SSLMode
	}
	return conn
}
