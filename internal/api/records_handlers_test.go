package api_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/limbo/lifeboard/internal/api"
	"github.com/limbo/lifeboard/internal/repository"
	"github.com/limbo/lifeboard/internal/service"
	"github.com/limbo/lifeboard/pkg/dates"
	"github.com/limbo/lifeboard/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTodosHandlers() *api.RecordsHandlers[entity.Todo] {
	clock := dates.FixedClock{At: time.Date(2024, time.January, 5, 10, 0, 0, 0, time.UTC)}
	svc := service.NewRecordsService(repository.NewMemoryStore(repository.Todos), repository.Todos, clock, service.TodoDefaults)
	return api.NewRecordsHandlers[entity.Todo]("todos", svc)
}

func TestRecordsHandlers(t *testing.T) {
	h := newTodosHandlers()
	var created entity.Todo

	t.Run("create", func(t *testing.T) {
		body := []byte(`{"text":"buy milk","priority":"high"}`)
		rr := httptest.NewRecorder()
		h.Create(rr, withUser(httptest.NewRequest(http.MethodPost, "/api/v1/todos", bytes.NewReader(body))))
		require.Equal(t, http.StatusCreated, rr.Result().StatusCode)
		require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&created))
		assert.NotEqual(t, uuid.Nil, created.ID)
		assert.Equal(t, userID, created.UserID)
		assert.Equal(t, "high", created.Priority)
	})
	t.Run("create invalid", func(t *testing.T) {
		body := []byte(`{"priority":"urgent"}`)
		rr := httptest.NewRecorder()
		h.Create(rr, withUser(httptest.NewRequest(http.MethodPost, "/api/v1/todos", bytes.NewReader(body))))
		resp := decodeError(t, rr)
		assert.Equal(t, http.StatusBadRequest, resp.Code)
		assert.Equal(t, map[string]any{"text": "required", "priority": "oneof=low medium high"}, resp.Details)
	})
	t.Run("list", func(t *testing.T) {
		rr := httptest.NewRecorder()
		h.List(rr, withUser(httptest.NewRequest(http.MethodGet, "/api/v1/todos?from=2024-01-05&to=2024-01-05", nil)))
		require.Equal(t, http.StatusOK, rr.Result().StatusCode)
		var resp api.ListResponse[entity.Todo]
		require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&resp))
		require.Len(t, resp.Items, 1)
		assert.Equal(t, created.ID, resp.Items[0].ID)
		assert.Zero(t, resp.Limit)
	})
	t.Run("list outside range", func(t *testing.T) {
		rr := httptest.NewRecorder()
		h.List(rr, withUser(httptest.NewRequest(http.MethodGet, "/api/v1/todos?from=2024-01-06&limit=5&page=2", nil)))
		require.Equal(t, http.StatusOK, rr.Result().StatusCode)
		var resp api.ListResponse[entity.Todo]
		require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&resp))
		assert.Empty(t, resp.Items)
		assert.Equal(t, 5, resp.Limit)
		assert.Equal(t, 2, resp.Page)
	})
	t.Run("list with broken date", func(t *testing.T) {
		rr := httptest.NewRecorder()
		h.List(rr, withUser(httptest.NewRequest(http.MethodGet, "/api/v1/todos?to=tomorrow", nil)))
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
	t.Run("update", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r := withUser(httptest.NewRequest(http.MethodPatch, "/api/v1/todos/x", bytes.NewReader([]byte(`{"completed":true}`))))
		r.SetPathValue("id", created.ID.String())
		h.Update(rr, r)
		require.Equal(t, http.StatusOK, rr.Result().StatusCode)
		var updated entity.Todo
		require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&updated))
		assert.True(t, updated.Completed)
		assert.Equal(t, created.Text, updated.Text)
	})
	t.Run("update of owner column", func(t *testing.T) {
		rr := httptest.NewRecorder()
		body := []byte(`{"user_id":"` + uuid.NewString() + `"}`)
		r := withUser(httptest.NewRequest(http.MethodPatch, "/api/v1/todos/x", bytes.NewReader(body)))
		r.SetPathValue("id", created.ID.String())
		h.Update(rr, r)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
	t.Run("other user sees nothing", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodDelete, "/api/v1/todos/x", nil)
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", uuid.New()))
		r.SetPathValue("id", created.ID.String())
		h.Delete(rr, r)
		assert.Equal(t, http.StatusNotFound, rr.Result().StatusCode)
	})
	t.Run("delete", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r := withUser(httptest.NewRequest(http.MethodDelete, "/api/v1/todos/x", nil))
		r.SetPathValue("id", created.ID.String())
		h.Delete(rr, r)
		assert.Equal(t, http.StatusNoContent, rr.Result().StatusCode)

		rr = httptest.NewRecorder()
		h.Delete(rr, r)
		assert.Equal(t, http.StatusNotFound, rr.Result().StatusCode)
	})
}
