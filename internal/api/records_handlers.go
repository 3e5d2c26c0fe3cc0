package api

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/limbo/lifeboard/internal/repository"
	"github.com/limbo/lifeboard/internal/service"
	"github.com/limbo/lifeboard/pkg/dates"
	"github.com/limbo/lifeboard/pkg/httputil"
)

type ListResponse[T any] struct {
	Items []T `json:"items"`
	Page  int `json:"page,omitempty"`
	Limit int `json:"limit,omitempty"`
}

// RecordsHandlers serves plain CRUD for one table.
type RecordsHandlers[T any] struct {
	name string
	svc  service.RecordsServiceI[T]
}

func mountRecords[T any](r chi.Router, path string, svc service.RecordsServiceI[T]) {
	if svc == nil {
		return
	}
	h := NewRecordsHandlers(path[1:], svc)
	r.Route(path, func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Patch("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}

func NewRecordsHandlers[T any](name string, svc service.RecordsServiceI[T]) *RecordsHandlers[T] {
	return &RecordsHandlers[T]{name: name, svc: svc}
}

func (h *RecordsHandlers[T]) List(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, "list "+h.name)
	if !ok {
		return
	}
	filter, err := listFilter(r)
	if err != nil {
		logger.Error("list "+h.name+" error: invalid query", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid query", err)
		return
	}
	filter.Location = locationOf(r)
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	rows, err := h.svc.List(ctx, uid, filter)
	if err != nil {
		writeServiceError(w, logger, "listing "+h.name, err)
		return
	}
	resp := ListResponse[T]{Items: rows, Limit: filter.Limit}
	if filter.Limit > 0 {
		resp.Page = filter.Offset/filter.Limit + 1
	}
	httputil.WriteJSONResponse(w, http.StatusOK, resp)
}

func (h *RecordsHandlers[T]) Create(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, "create "+h.name)
	if !ok {
		return
	}
	var row T
	defer r.Body.Close()
	if err := httputil.DecodeJSON(r, &row); err != nil {
		logger.Error("create " + h.name + " error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	created, err := h.svc.Create(ctx, uid, &row, locationOf(r))
	if err != nil {
		writeServiceError(w, logger, "creating "+h.name, err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, created)
}

func (h *RecordsHandlers[T]) Update(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, "update "+h.name)
	if !ok {
		return
	}
	id, ok := requireID(w, r, h.name)
	if !ok {
		return
	}
	var patch map[string]any
	defer r.Body.Close()
	if err := httputil.DecodeJSON(r, &patch); err != nil {
		logger.Error("update " + h.name + " error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	updated, err := h.svc.Update(ctx, uid, id, patch)
	if err != nil {
		writeServiceError(w, logger, "updating "+h.name, err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, updated)
}

func (h *RecordsHandlers[T]) Delete(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, "delete "+h.name)
	if !ok {
		return
	}
	id, ok := requireID(w, r, h.name)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	if err := h.svc.Delete(ctx, uid, id); err != nil {
		writeServiceError(w, logger, "deleting "+h.name, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// listFilter reads from, to, limit and page. Without limit the list isn't paginated.
func listFilter(r *http.Request) (repository.Filter, error) {
	var filter repository.Filter
	q := r.URL.Query()
	for key, dst := range map[string]**dates.Date{"from": &filter.From, "to": &filter.To} {
		raw := q.Get(key)
		if raw == "" {
			continue
		}
		d, err := dates.Parse(raw)
		if err != nil {
			return filter, err
		}
		*dst = &d
	}
	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > maxLimit {
			limit = defaultLimit
		}
		page, err := strconv.Atoi(q.Get("page"))
		if err != nil || page < 1 {
			page = 1
		}
		filter.Limit = limit
		filter.Offset = (page - 1) * limit
	}
	return filter, nil
}
