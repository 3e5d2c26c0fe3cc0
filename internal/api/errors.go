package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	errorvalues "github.com/limbo/lifeboard/internal/error_values"
	"github.com/limbo/lifeboard/internal/service"
	"github.com/limbo/lifeboard/pkg/httputil"
)

var (
	badRequestErrors = []error{
		errorvalues.ErrValidation,
		errorvalues.ErrInvalidPatch,
		errorvalues.ErrUnknownColumn,
		errorvalues.ErrInvalidRange,
		errorvalues.ErrInvalidSlot,
		errorvalues.ErrUnknownActivity,
		errorvalues.ErrUnknownPreference,
		errorvalues.ErrCompletionDateNotAllowed,
	}
	notFoundErrors = []error{
		errorvalues.ErrRecordNotFound,
		errorvalues.ErrHabitNotFound,
		errorvalues.ErrCompletionNotFound,
		errorvalues.ErrBlockMissing,
		errorvalues.ErrPreferenceNotFound,
	}
	conflictErrors = []error{
		errorvalues.ErrDuplicate,
		errorvalues.ErrCompletionExists,
		errorvalues.ErrSlotOverlap,
	}
)

func statusOf(err error) int {
	switch {
	case isAny(err, badRequestErrors):
		return http.StatusBadRequest
	case isAny(err, notFoundErrors):
		return http.StatusNotFound
	case isAny(err, conflictErrors):
		return http.StatusConflict
	case errors.Is(err, errorvalues.ErrSync):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func isAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// writeServiceError logs err and answers with the status its class maps to.
// Internal details are only exposed for client errors.
func writeServiceError(w http.ResponseWriter, logger *slog.Logger, action string, err error) {
	code := statusOf(err)
	if code >= http.StatusInternalServerError {
		logger.Error(action+" error: service error", slog.String("error", err.Error()))
	} else {
		logger.Warn(action+" error", slog.String("error", err.Error()))
	}
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		httputil.WriteFieldErrors(w, code, action+": invalid fields", verr.Fields)
	case code == http.StatusInternalServerError:
		httputil.WriteErrorResponse(w, code, "internal error while "+action, nil)
	case code == http.StatusBadGateway:
		httputil.WriteErrorResponse(w, code, "storage unavailable while "+action, nil)
	default:
		httputil.WriteErrorResponse(w, code, action+" failed", err)
	}
}

// pathParam reads a route parameter set either by chi or by net/http.
func pathParam(r *http.Request, key string) string {
	if v := r.PathValue(key); v != "" {
		return v
	}
	return chi.URLParam(r, key)
}
