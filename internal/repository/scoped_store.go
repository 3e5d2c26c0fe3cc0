package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/bytedance/sonic"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/lifeboard/internal/error_values"
	"github.com/limbo/lifeboard/pkg/cleanup"
	_ "modernc.org/sqlite"
)

// PgScopedStore keeps preference blobs in the user_preferences table.
type PgScopedStore struct {
	conn PgConnection
}

func NewPgScopedStore(conn PgConnection) *PgScopedStore {
	return &PgScopedStore{
		conn: conn,
	}
}

func (s *PgScopedStore) Get(ctx context.Context, scope Scope, dst any) error {
	var payload string
	err := s.conn.QueryRow(
		ctx,
		`SELECT payload::text FROM user_preferences WHERE user_id = $1 AND feature = $2;`,
		scope.User,
		scope.Feature,
	).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return errorvalues.ErrPreferenceNotFound
		}
		return syncError("getting preference "+scope.Feature, err)
	}
	return decodePayload(payload, dst)
}

func (s *PgScopedStore) Put(ctx context.Context, scope Scope, v any) error {
	payload, err := sonic.MarshalString(v)
	if err != nil {
		return fmt.Errorf("%w: %s", errorvalues.ErrValidation, err)
	}
	_, err = s.conn.Exec(
		ctx,
		`INSERT INTO user_preferences (user_id, feature, payload, updated_at) VALUES ($1, $2, $3::jsonb, now()) `+
			`ON CONFLICT (user_id, feature) DO UPDATE SET payload = EXCLUDED.payload, updated_at = now();`,
		scope.User,
		scope.Feature,
		payload,
	)
	if err != nil {
		return syncError("saving preference "+scope.Feature, err)
	}
	return nil
}

func (s *PgScopedStore) Delete(ctx context.Context, scope Scope) error {
	ct, err := s.conn.Exec(
		ctx,
		`DELETE FROM user_preferences WHERE user_id = $1 AND feature = $2;`,
		scope.User,
		scope.Feature,
	)
	if err != nil {
		return syncError("deleting preference "+scope.Feature, err)
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrPreferenceNotFound
	}
	return nil
}

// SQLiteScopedStore keeps preference blobs in a local sqlite file so a guest
// can keep them across restarts.
type SQLiteScopedStore struct {
	db *sql.DB
}

const sqlitePreferencesSchema = `CREATE TABLE IF NOT EXISTS preferences (
	user_id TEXT NOT NULL,
	feature TEXT NOT NULL,
	payload TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	PRIMARY KEY (user_id, feature)
);`

func NewSQLiteScopedStore(path string) (*SQLiteScopedStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("creating state directory: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening state database: %w", err)
	}
	if _, err = db.Exec(sqlitePreferencesSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating preferences table: %w", err)
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing guest state database",
		F:    db.Close,
	})
	return &SQLiteScopedStore{
		db: db,
	}, nil
}

func (s *SQLiteScopedStore) Get(ctx context.Context, scope Scope, dst any) error {
	var payload string
	err := s.db.QueryRowContext(
		ctx,
		`SELECT payload FROM preferences WHERE user_id = ? AND feature = ?;`,
		scope.User.String(),
		scope.Feature,
	).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return errorvalues.ErrPreferenceNotFound
		}
		return fmt.Errorf("getting preference %s: %w", scope.Feature, err)
	}
	return decodePayload(payload, dst)
}

func (s *SQLiteScopedStore) Put(ctx context.Context, scope Scope, v any) error {
	payload, err := sonic.MarshalString(v)
	if err != nil {
		return fmt.Errorf("%w: %s", errorvalues.ErrValidation, err)
	}
	_, err = s.db.ExecContext(
		ctx,
		`INSERT INTO preferences (user_id, feature, payload, updated_at) VALUES (?, ?, ?, CURRENT_TIMESTAMP) `+
			`ON CONFLICT (user_id, feature) DO UPDATE SET payload = excluded.payload, updated_at = CURRENT_TIMESTAMP;`,
		scope.User.String(),
		scope.Feature,
		payload,
	)
	if err != nil {
		return fmt.Errorf("saving preference %s: %w", scope.Feature, err)
	}
	return nil
}

func (s *SQLiteScopedStore) Delete(ctx context.Context, scope Scope) error {
	res, err := s.db.ExecContext(
		ctx,
		`DELETE FROM preferences WHERE user_id = ? AND feature = ?;`,
		scope.User.String(),
		scope.Feature,
	)
	if err != nil {
		return fmt.Errorf("deleting preference %s: %w", scope.Feature, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errorvalues.ErrPreferenceNotFound
	}
	return nil
}

// Close releases the database handle. Stores built by NewSQLiteScopedStore
// are also closed by cleanup.
func (s *SQLiteScopedStore) Close() error {
	return s.db.Close()
}

type MemoryScopedStore struct {
	mu    sync.RWMutex
	blobs map[Scope]string
}

func NewMemoryScopedStore() *MemoryScopedStore {
	return &MemoryScopedStore{
		blobs: make(map[Scope]string),
	}
}

func (s *MemoryScopedStore) Get(_ context.Context, scope Scope, dst any) error {
	s.mu.RLock()
	payload, ok := s.blobs[scope]
	s.mu.RUnlock()
	if !ok {
		return errorvalues.ErrPreferenceNotFound
	}
	return decodePayload(payload, dst)
}

func (s *MemoryScopedStore) Put(_ context.Context, scope Scope, v any) error {
	payload, err := sonic.MarshalString(v)
	if err != nil {
		return fmt.Errorf("%w: %s", errorvalues.ErrValidation, err)
	}
	s.mu.Lock()
	s.blobs[scope] = payload
	s.mu.Unlock()
	return nil
}

func (s *MemoryScopedStore) Delete(_ context.Context, scope Scope) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.blobs[scope]; !ok {
		return errorvalues.ErrPreferenceNotFound
	}
	delete(s.blobs, scope)
	return nil
}

func decodePayload(payload string, dst any) error {
	if err := sonic.UnmarshalString(payload, dst); err != nil {
		return fmt.Errorf("decoding preference payload: %w", err)
	}
	return nil
}
