package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/lifeboard/internal/error_values"
	"github.com/limbo/lifeboard/internal/repository"
	"github.com/limbo/lifeboard/pkg/dates"
	"github.com/limbo/lifeboard/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var todoColumns = []string{"id", "user_id", "text", "completed", "priority", "category", "created_date"}

func TestListTodos(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	store := repository.NewPostgresStore(mock, repository.Todos)
	uid := uuid.New()
	from := dates.New(2024, time.January, 1)
	to := dates.New(2024, time.January, 7)
	returned := []entity.Todo{
		{Base: entity.Base{ID: uuid.New(), UserID: uid}, Text: "write tests", Priority: "high", CreatedDate: from},
		{Base: entity.Base{ID: uuid.New(), UserID: uid}, Text: "ship", Completed: true, Priority: "low", CreatedDate: to},
	}
	testCases := []struct {
		Desc         string
		Filter       repository.Filter
		Error        error
		Result       []entity.Todo
		MockPrepFunc func()
	}{
		{
			Desc:   "successful with range and limit",
			Filter: repository.Filter{From: &from, To: &to, Limit: 10},
			Result: returned,
			MockPrepFunc: func() {
				rows := pgxmock.NewRows(todoColumns)
				for _, r := range returned {
					rows.AddRow(r.ID, r.UserID, r.Text, r.Completed, r.Priority, r.Category, r.CreatedDate)
				}
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, user_id, text, completed, priority, category, created_date FROM todos WHERE user_id = $1 AND created_date >= $2 AND created_date <= $3 ORDER BY created_date, id LIMIT $4;`)).
					WithArgs(uid, from, to, 10).
					WillReturnRows(rows)
			},
		},
		{
			Desc:   "successful with eq condition and offset",
			Filter: repository.Filter{Eq: map[string]any{"completed": true}, Offset: 20},
			Result: []entity.Todo{},
			MockPrepFunc: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, user_id, text, completed, priority, category, created_date FROM todos WHERE user_id = $1 AND completed = $2 ORDER BY created_date, id OFFSET $3;`)).
					WithArgs(uid, true, 20).
					WillReturnRows(pgxmock.NewRows(todoColumns))
			},
		},
		{
			Desc:   "db error",
			Filter: repository.Filter{},
			Error:  errors.New("sync error: listing todos: db error"),
			MockPrepFunc: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, user_id, text, completed, priority, category, created_date FROM todos WHERE user_id = $1 ORDER BY created_date, id;`)).
					WithArgs(uid).
					WillReturnError(errors.New("db error"))
			},
		},
		{
			Desc:         "inverted range",
			Filter:       repository.Filter{From: &to, To: &from},
			Error:        errorvalues.ErrInvalidRange,
			MockPrepFunc: func() {},
		},
		{
			Desc:         "unknown column",
			Filter:       repository.Filter{Eq: map[string]any{"password": "x"}},
			Error:        errorvalues.ErrUnknownColumn,
			MockPrepFunc: func() {},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			result, err := store.List(ctx, uid, tc.Filter)
			if tc.Error != nil {
				if errors.Is(tc.Error, errorvalues.ErrInvalidRange) || errors.Is(tc.Error, errorvalues.ErrUnknownColumn) {
					assert.ErrorIs(t, err, tc.Error)
				} else {
					assert.EqualError(t, err, tc.Error.Error())
					assert.ErrorIs(t, err, errorvalues.ErrSync)
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.Result, result)
			}
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListFocusSessionsByLocalDay(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	store := repository.NewPostgresStore(mock, repository.FocusSessions)
	uid := uuid.New()
	loc := time.FixedZone("UTC-5", -5*60*60)
	day := dates.New(2024, time.March, 10)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, user_id, session_type, duration_minutes, completed, notes, created_at FROM focus_sessions WHERE user_id = $1 AND created_at >= $2 AND created_at < $3 ORDER BY created_at, id;`)).
		WithArgs(uid, time.Date(2024, time.March, 10, 0, 0, 0, 0, loc), time.Date(2024, time.March, 11, 0, 0, 0, 0, loc)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "session_type", "duration_minutes", "completed", "notes", "created_at"}).
			AddRow(uuid.New(), uid, "focus", 25, true, "", time.Date(2024, time.March, 10, 23, 30, 0, 0, loc)))

	filter := repository.Day(day)
	filter.Location = loc
	sessions, err := store.List(context.Background(), uid, filter)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, 25, sessions[0].DurationMinutes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListRangeWithoutDateColumn(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	store := repository.NewPostgresStore(mock, repository.Habits)
	_, err = store.List(context.Background(), uuid.New(), repository.Day(dates.New(2024, time.May, 1)))
	assert.ErrorIs(t, err, errorvalues.ErrInvalidRange)
}

func TestGetTodo(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	store := repository.NewPostgresStore(mock, repository.Todos)
	query := regexp.QuoteMeta(`SELECT id, user_id, text, completed, priority, category, created_date FROM todos WHERE id = $1 AND user_id = $2;`)
	uid := uuid.New()
	id := uuid.New()
	expected := entity.Todo{Base: entity.Base{ID: id, UserID: uid}, Text: "stretch", Priority: "low", CreatedDate: dates.New(2024, time.June, 2)}
	testCases := []struct {
		Desc         string
		Error        error
		Result       *entity.Todo
		MockPrepFunc func()
	}{
		{
			Desc:   "successful",
			Result: &expected,
			MockPrepFunc: func() {
				mock.ExpectQuery(query).
					WithArgs(id, uid).
					WillReturnRows(pgxmock.NewRows(todoColumns).
						AddRow(id, uid, expected.Text, expected.Completed, expected.Priority, expected.Category, expected.CreatedDate))
			},
		},
		{
			Desc:  "not found",
			Error: errorvalues.ErrRecordNotFound,
			MockPrepFunc: func() {
				mock.ExpectQuery(query).WithArgs(id, uid).WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("sync error: getting todos row: db error"),
			MockPrepFunc: func() {
				mock.ExpectQuery(query).WithArgs(id, uid).WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			todo, err := store.Get(ctx, uid, id)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.Result, todo)
			}
		})
	}
}

func TestInsertCompletion(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	store := repository.NewPostgresStore(mock, repository.HabitCompletions)
	query := regexp.QuoteMeta(`INSERT INTO habit_completions (user_id, habit_id, completed_date) VALUES ($1, $2, $3) RETURNING id;`)
	uid := uuid.New()
	habitID := uuid.New()
	day := dates.New(2024, time.January, 3)
	newID := uuid.New()
	testCases := []struct {
		Desc         string
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc: "successful",
			MockPrepFunc: func() {
				mock.ExpectQuery(query).
					WithArgs(uid, habitID, day).
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(newID))
			},
		},
		{
			Desc:  "unique violation",
			Error: errorvalues.ErrDuplicate,
			MockPrepFunc: func() {
				mock.ExpectQuery(query).WithArgs(uid, habitID, day).WillReturnError(&pgconn.PgError{
					Code: "23505",
				})
			},
		},
		{
			Desc:  "fk violation",
			Error: errorvalues.ErrRecordNotFound,
			MockPrepFunc: func() {
				mock.ExpectQuery(query).WithArgs(uid, habitID, day).WillReturnError(&pgconn.PgError{
					Code: "23503",
				})
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("sync error: inserting habit_completions row: db error"),
			MockPrepFunc: func() {
				mock.ExpectQuery(query).WithArgs(uid, habitID, day).WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			completion := entity.HabitCompletion{HabitID: habitID, CompletedDate: day}
			err := store.Insert(ctx, uid, &completion)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
				assert.Equal(t, uuid.Nil, completion.ID)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, newID, completion.ID)
				assert.Equal(t, uid, completion.UserID)
			}
		})
	}
}

func TestUpdateTodo(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	store := repository.NewPostgresStore(mock, repository.Todos)
	uid := uuid.New()
	id := uuid.New()
	day := dates.New(2024, time.February, 29)
	testCases := []struct {
		Desc         string
		Patch        repository.Patch
		Error        error
		Completed    bool
		MockPrepFunc func()
	}{
		{
			Desc:      "successful toggle",
			Patch:     repository.Patch{"completed": true},
			Completed: true,
			MockPrepFunc: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`UPDATE todos SET completed = $1 WHERE id = $2 AND user_id = $3 RETURNING id, user_id, text, completed, priority, category, created_date;`)).
					WithArgs(true, id, uid).
					WillReturnRows(pgxmock.NewRows(todoColumns).AddRow(id, uid, "stretch", true, "low", "", day))
			},
		},
		{
			Desc:  "columns sorted",
			Patch: repository.Patch{"text": "run", "priority": "high"},
			MockPrepFunc: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`UPDATE todos SET priority = $1, text = $2 WHERE id = $3 AND user_id = $4 RETURNING id, user_id, text, completed, priority, category, created_date;`)).
					WithArgs("high", "run", id, uid).
					WillReturnRows(pgxmock.NewRows(todoColumns).AddRow(id, uid, "run", false, "high", "", day))
			},
		},
		{
			Desc:  "not found",
			Patch: repository.Patch{"completed": false},
			Error: errorvalues.ErrRecordNotFound,
			MockPrepFunc: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`UPDATE todos SET completed = $1 WHERE id = $2 AND user_id = $3`)).
					WithArgs(false, id, uid).
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			Desc:         "unknown column",
			Patch:        repository.Patch{"user_id": uuid.New()},
			Error:        errorvalues.ErrUnknownColumn,
			MockPrepFunc: func() {},
		},
		{
			Desc:         "empty patch",
			Patch:        repository.Patch{},
			Error:        errorvalues.ErrInvalidPatch,
			MockPrepFunc: func() {},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			todo, err := store.Update(ctx, uid, id, tc.Patch)
			if tc.Error != nil {
				assert.ErrorIs(t, err, tc.Error)
			} else {
				require.NoError(t, err)
				assert.Equal(t, id, todo.ID)
				assert.Equal(t, tc.Completed, todo.Completed)
			}
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteTodo(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	store := repository.NewPostgresStore(mock, repository.Todos)
	query := regexp.QuoteMeta(`DELETE FROM todos WHERE id = $1 AND user_id = $2;`)
	uid := uuid.New()
	id := uuid.New()
	testCases := []struct {
		Desc         string
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc: "successful",
			MockPrepFunc: func() {
				mock.ExpectExec(query).WithArgs(id, uid).WillReturnResult(pgxmock.NewResult("DELETE", 1))
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("sync error: deleting todos row: db error"),
			MockPrepFunc: func() {
				mock.ExpectExec(query).WithArgs(id, uid).WillReturnError(errors.New("db error"))
			},
		},
		{
			Desc:  "not found",
			Error: errorvalues.ErrRecordNotFound,
			MockPrepFunc: func() {
				mock.ExpectExec(query).WithArgs(id, uid).WillReturnResult(pgxmock.NewResult("DELETE", 0))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			err := store.Delete(ctx, uid, id)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
