package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/limbo/lifeboard/pkg/httputil"
)

func (s *Server) GetStreak(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, "get streak")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	summary, err := s.consistencyService.Streak(ctx, uid, pathParam(r, "activity"), locationOf(r))
	if err != nil {
		writeServiceError(w, logger, "getting streak", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, summary)
}

func (s *Server) GetHeatmap(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, "get heatmap")
	if !ok {
		return
	}
	from, to, ok := requireRange(w, r)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	cells, err := s.consistencyService.Heatmap(ctx, uid, from, to)
	if err != nil {
		writeServiceError(w, logger, "building heatmap", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, cells)
}

func (s *Server) GetOverview(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, "get overview")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	overview, err := s.consistencyService.Overview(ctx, uid, locationOf(r))
	if err != nil {
		writeServiceError(w, logger, "building overview", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, overview)
}

func (s *Server) GetPreference(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, "get preference")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	payload, err := s.preferencesService.Get(ctx, uid, pathParam(r, "feature"))
	if err != nil {
		writeServiceError(w, logger, "getting preference", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, payload)
}

func (s *Server) PutPreference(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, "put preference")
	if !ok {
		return
	}
	var payload any
	defer r.Body.Close()
	if err := httputil.DecodeJSON(r, &payload); err != nil {
		logger.Error("put preference error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	feature := pathParam(r, "feature")
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	if err := s.preferencesService.Put(ctx, uid, feature, payload); err != nil {
		writeServiceError(w, logger, "saving preference", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("preference saved", slog.String("feature", feature))
}

func (s *Server) DeletePreference(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, "delete preference")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	if err := s.preferencesService.Delete(ctx, uid, pathParam(r, "feature")); err != nil {
		writeServiceError(w, logger, "deleting preference", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) Healthz(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"status": "ok"})
}
