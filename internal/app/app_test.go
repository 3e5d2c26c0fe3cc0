package app_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/limbo/lifeboard/internal/app"
	"github.com/limbo/lifeboard/internal/service"
	"github.com/limbo/lifeboard/pkg/cleanup"
	"github.com/limbo/lifeboard/pkg/dates"
	"github.com/limbo/lifeboard/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	service.InitValidator()
	m.Run()
}

var clock = dates.FixedClock{At: time.Date(2024, time.January, 5, 10, 30, 0, 0, time.UTC)}

func getOverview(t *testing.T, h http.Handler) entity.Overview {
	t.Helper()
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/overview", nil))
	require.Equal(t, http.StatusOK, rr.Result().StatusCode)
	var overview entity.Overview
	require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&overview))
	return overview
}

func TestGuestMode(t *testing.T) {
	t.Cleanup(cleanup.CleanUp)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	a, err := app.New(ctx, app.Options{
		GuestMode:      true,
		GuestStatePath: filepath.Join(t.TempDir(), "guest.db"),
		Location:       time.UTC,
		Clock:          clock,
	})
	require.NoError(t, err)
	a.Start(ctx)
	a.Server.MountEndpoints()
	h := a.Server.Handler()

	t.Run("fixture is served without a token", func(t *testing.T) {
		overview := getOverview(t, h)
		assert.Equal(t, dates.New(2024, time.January, 5), overview.Date)
		assert.Equal(t, 3, overview.Todos.TotalPossible)
		assert.Equal(t, 1, overview.Todos.CompletedCount)
		require.NotNil(t, overview.CurrentBlock)
		assert.Equal(t, "Deep work", overview.CurrentBlock.Task)
	})
	t.Run("writes refresh the cached overview", func(t *testing.T) {
		rr := httptest.NewRecorder()
		body := bytes.NewReader([]byte(`{"text":"water plants"}`))
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/v1/todos/", body))
		require.Equal(t, http.StatusCreated, rr.Result().StatusCode)
		assert.Eventually(t, func() bool {
			return getOverview(t, h).Todos.TotalPossible == 4
		}, time.Second, 10*time.Millisecond)
	})
	t.Run("preferences persist in the state file", func(t *testing.T) {
		rr := httptest.NewRecorder()
		body := bytes.NewReader([]byte(`{"zoom":2}`))
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodPut, "/api/v1/preferences/timeline", body))
		require.Equal(t, http.StatusNoContent, rr.Result().StatusCode)

		rr = httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/preferences/timeline", nil))
		require.Equal(t, http.StatusOK, rr.Result().StatusCode)
		assert.JSONEq(t, `{"zoom":2}`, rr.Body.String())
	})
}

func TestRemoteMode(t *testing.T) {
	t.Cleanup(cleanup.CleanUp)
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	t.Run("secret required", func(t *testing.T) {
		_, err := app.New(context.Background(), app.Options{Conn: mock, Clock: clock})
		assert.Error(t, err)
	})
	t.Run("requests need a token", func(t *testing.T) {
		a, err := app.New(context.Background(), app.Options{
			Conn:      mock,
			JWTSecret: "secret",
			Location:  time.UTC,
			Clock:     clock,
		})
		require.NoError(t, err)
		a.Server.MountEndpoints()
		rr := httptest.NewRecorder()
		a.Server.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/overview", nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
