package repository

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/lifeboard/internal/error_values"
)

// PostgresStore keeps rows of one table in the remote store.
type PostgresStore[T any] struct {
	conn  PgConnection
	table *Table[T]
}

func NewPostgresStore[T any](conn PgConnection, table *Table[T]) *PostgresStore[T] {
	return &PostgresStore[T]{
		conn:  conn,
		table: table,
	}
}

func (store *PostgresStore[T]) List(ctx context.Context, uid uuid.UUID, filter Filter) ([]T, error) {
	query, args, err := store.listQuery(uid, filter)
	if err != nil {
		return nil, err
	}
	rows, err := store.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, syncError("listing "+store.table.Name, err)
	}
	defer rows.Close()
	result := make([]T, 0, 8)
	for rows.Next() {
		var row T
		if err = rows.Scan(store.table.scanTargets(&row)...); err != nil {
			return nil, syncError("parsing "+store.table.Name+" row", err)
		}
		result = append(result, row)
	}
	if err = rows.Err(); err != nil {
		return nil, syncError("reading "+store.table.Name+" rows", err)
	}
	return result, nil
}

func (store *PostgresStore[T]) listQuery(uid uuid.UUID, filter Filter) (string, []any, error) {
	tbl := store.table
	var sb strings.Builder
	args := []any{uid}
	next := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}
	sb.WriteString("SELECT " + tbl.selectColumns() + " FROM " + tbl.Name + " WHERE user_id = $1")

	if filter.From != nil || filter.To != nil {
		if tbl.DateColumn == "" {
			return "", nil, fmt.Errorf("%w: %s has no date column", errorvalues.ErrInvalidRange, tbl.Name)
		}
		if filter.From != nil && filter.To != nil && filter.From.After(*filter.To) {
			return "", nil, fmt.Errorf("%w: %s is after %s", errorvalues.ErrInvalidRange, filter.From, filter.To)
		}
		loc := filter.Location
		if loc == nil {
			loc = time.Local
		}
		if filter.From != nil {
			if tbl.Timestamp {
				sb.WriteString(" AND " + tbl.DateColumn + " >= " + next(filter.From.Midnight(loc)))
			} else {
				sb.WriteString(" AND " + tbl.DateColumn + " >= " + next(*filter.From))
			}
		}
		if filter.To != nil {
			if tbl.Timestamp {
				sb.WriteString(" AND " + tbl.DateColumn + " < " + next(filter.To.AddDays(1).Midnight(loc)))
			} else {
				sb.WriteString(" AND " + tbl.DateColumn + " <= " + next(*filter.To))
			}
		}
	}

	keys := make([]string, 0, len(filter.Eq))
	for key := range filter.Eq {
		if !tbl.hasColumn(key) {
			return "", nil, fmt.Errorf("%w: %s.%s", errorvalues.ErrUnknownColumn, tbl.Name, key)
		}
		keys = append(keys, key)
	}
	slices.Sort(keys)
	for _, key := range keys {
		sb.WriteString(" AND " + key + " = " + next(filter.Eq[key]))
	}

	sb.WriteString(" ORDER BY " + tbl.OrderBy)
	if filter.Limit > 0 {
		sb.WriteString(" LIMIT " + next(filter.Limit))
	}
	if filter.Offset > 0 {
		sb.WriteString(" OFFSET " + next(filter.Offset))
	}
	sb.WriteString(";")
	return sb.String(), args, nil
}

func (store *PostgresStore[T]) Get(ctx context.Context, uid uuid.UUID, id uuid.UUID) (*T, error) {
	tbl := store.table
	var row T
	err := store.conn.QueryRow(
		ctx,
		`SELECT `+tbl.selectColumns()+` FROM `+tbl.Name+` WHERE id = $1 AND user_id = $2;`,
		id,
		uid,
	).Scan(tbl.scanTargets(&row)...)
	if err != nil {
		return nil, mapPgError("getting "+tbl.Name+" row", err)
	}
	return &row, nil
}

func (store *PostgresStore[T]) Insert(ctx context.Context, uid uuid.UUID, row *T) error {
	tbl := store.table
	placeholders := make([]string, 0, len(tbl.Columns)+1)
	for i := range len(tbl.Columns) + 1 {
		placeholders = append(placeholders, "$"+strconv.Itoa(i+1))
	}
	args := append([]any{uid}, tbl.Values(row)...)
	base := tbl.Base(row)
	err := store.conn.QueryRow(
		ctx,
		`INSERT INTO `+tbl.Name+` (user_id, `+strings.Join(tbl.Columns, ", ")+`) VALUES (`+
			strings.Join(placeholders, ", ")+`) RETURNING id;`,
		args...,
	).Scan(&base.ID)
	if err != nil {
		return mapPgError("inserting "+tbl.Name+" row", err)
	}
	base.UserID = uid
	return nil
}

func (store *PostgresStore[T]) Update(ctx context.Context, uid uuid.UUID, id uuid.UUID, patch Patch) (*T, error) {
	tbl := store.table
	if len(patch) == 0 {
		return nil, fmt.Errorf("%w: nothing to update", errorvalues.ErrInvalidPatch)
	}
	keys := make([]string, 0, len(patch))
	for key := range patch {
		if !tbl.hasColumn(key) {
			return nil, fmt.Errorf("%w: %s.%s", errorvalues.ErrUnknownColumn, tbl.Name, key)
		}
		keys = append(keys, key)
	}
	slices.Sort(keys)
	sets := make([]string, 0, len(keys))
	args := make([]any, 0, len(keys)+2)
	for i, key := range keys {
		sets = append(sets, key+" = $"+strconv.Itoa(i+1))
		args = append(args, patch[key])
	}
	args = append(args, id, uid)

	var row T
	err := store.conn.QueryRow(
		ctx,
		`UPDATE `+tbl.Name+` SET `+strings.Join(sets, ", ")+
			` WHERE id = $`+strconv.Itoa(len(keys)+1)+` AND user_id = $`+strconv.Itoa(len(keys)+2)+
			` RETURNING `+tbl.selectColumns()+`;`,
		args...,
	).Scan(tbl.scanTargets(&row)...)
	if err != nil {
		return nil, mapPgError("updating "+tbl.Name+" row", err)
	}
	return &row, nil
}

func (store *PostgresStore[T]) Delete(ctx context.Context, uid uuid.UUID, id uuid.UUID) error {
	ct, err := store.conn.Exec(
		ctx,
		`DELETE FROM `+store.table.Name+` WHERE id = $1 AND user_id = $2;`,
		id,
		uid,
	)
	if err != nil {
		return syncError("deleting "+store.table.Name+" row", err)
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrRecordNotFound
	}
	return nil
}

func mapPgError(op string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return errorvalues.ErrRecordNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		// Unique violation
		case "23505":
			return errorvalues.ErrDuplicate
		// FK violation
		case "23503":
			return errorvalues.ErrRecordNotFound
		}
	}
	return syncError(op, err)
}

func syncError(op string, err error) error {
	return fmt.Errorf("%w: %s: %s", errorvalues.ErrSync, op, err)
}
