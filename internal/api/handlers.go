package api

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/lifeboard/internal/service"
	"github.com/limbo/lifeboard/pkg/dates"
	"github.com/limbo/lifeboard/pkg/entity"
	"github.com/limbo/lifeboard/pkg/httputil"
)

const (
	requestTimeout = 10 * time.Second
	defaultLimit   = 10
	maxLimit       = 50
	// Days shown when a range query omits from
	defaultSpanDays = 30
)

type CreateHabitRequest struct {
	Name            string `json:"name"`
	Category        string `json:"category"`
	Color           string `json:"color"`
	Icon            string `json:"icon"`
	TargetFrequency int    `json:"target_frequency"`
}

type GetHabitsResponse struct {
	UserID string         `json:"uid"`
	Page   int            `json:"page"`
	Limit  int            `json:"limit"`
	Habits []entity.Habit `json:"habits"`
}

func (s *Server) CreateHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, "create habit")
	if !ok {
		return
	}
	var req CreateHabitRequest
	defer r.Body.Close()
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("create habit error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	habit, err := s.habitsService.CreateHabit(ctx, uid, service.CreateHabitRequest{
		Name:            req.Name,
		Category:        req.Category,
		Color:           req.Color,
		Icon:            req.Icon,
		TargetFrequency: req.TargetFrequency,
	})
	if err != nil {
		writeServiceError(w, logger, "creating habit", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, habit)
	logger.Info("habit created", slog.String("habit_id", habit.ID.String()))
}

func (s *Server) GetHabits(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, "get habits")
	if !ok {
		return
	}
	limit, page := pagination(r)
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	habits, err := s.habitsService.GetUserHabits(ctx, uid, service.PaginationOpts{
		Limit:  limit,
		Offset: (page - 1) * limit,
	})
	if err != nil {
		writeServiceError(w, logger, "getting habits list", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetHabitsResponse{
		UserID: uid.String(),
		Page:   page,
		Limit:  limit,
		Habits: habits,
	})
	logger.Info("habits provided")
}

func (s *Server) GetHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, "get habit")
	if !ok {
		return
	}
	id, ok := requireID(w, r, "habit")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	habit, err := s.habitsService.GetHabit(ctx, id, uid)
	if err != nil {
		writeServiceError(w, logger, "getting habit", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, habit)
}

func (s *Server) DeleteHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, "habit deletion")
	if !ok {
		return
	}
	id, ok := requireID(w, r, "habit")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	if err := s.habitsService.DeleteHabit(ctx, id, uid); err != nil {
		writeServiceError(w, logger, "deleting habit", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("habit deleted", slog.String("habit_id", id.String()))
}

func (s *Server) CompleteHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, "complete habit")
	if !ok {
		return
	}
	id, ok := requireID(w, r, "habit")
	if !ok {
		return
	}
	date, ok := requireDate(w, r)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	completion, err := s.habitsService.CompleteHabit(ctx, id, uid, date, locationOf(r))
	if err != nil {
		writeServiceError(w, logger, "completing habit", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, completion)
	logger.Info("habit completed", slog.String("habit_id", id.String()), slog.String("date", date.String()))
}

func (s *Server) UncompleteHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, "uncomplete habit")
	if !ok {
		return
	}
	id, ok := requireID(w, r, "habit")
	if !ok {
		return
	}
	date, ok := requireDate(w, r)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	if err := s.habitsService.UncompleteHabit(ctx, id, uid, date, locationOf(r)); err != nil {
		writeServiceError(w, logger, "uncompleting habit", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) GetHabitCompletions(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, "get completions")
	if !ok {
		return
	}
	id, ok := requireID(w, r, "habit")
	if !ok {
		return
	}
	from, to, ok := requireRange(w, r)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	completions, err := s.habitsService.GetHabitCompletions(ctx, id, uid, from, to)
	if err != nil {
		writeServiceError(w, logger, "getting completions", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, completions)
}

func (s *Server) GetHabitStats(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, "get habit stats")
	if !ok {
		return
	}
	id, ok := requireID(w, r, "habit")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	stats, err := s.habitsService.GetHabitStats(ctx, id, uid, locationOf(r))
	if err != nil {
		writeServiceError(w, logger, "getting habit stats", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, stats)
}

func requireUID(w http.ResponseWriter, r *http.Request, action string) (uuid.UUID, bool) {
	uid, err := GetUIDFromContext(r)
	if err != nil {
		GetLoggerFromCtx(r.Context()).Error(action + " error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return uuid.UUID{}, false
	}
	return uid, true
}

func requireID(w http.ResponseWriter, r *http.Request, what string) (uuid.UUID, bool) {
	id, err := uuid.Parse(pathParam(r, "id"))
	if err != nil {
		GetLoggerFromCtx(r.Context()).Error("invalid " + what + " id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid "+what+" id in path value", nil)
		return uuid.UUID{}, false
	}
	return id, true
}

// requireDate reads the {date} path value. "today" means today in the request's location.
func requireDate(w http.ResponseWriter, r *http.Request) (dates.Date, bool) {
	raw := pathParam(r, "date")
	if raw == "" || raw == "today" {
		return today(r), true
	}
	date, err := dates.Parse(raw)
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date in path value", err)
		return dates.Date{}, false
	}
	return date, true
}

// queryDate reads an optional YYYY-MM-DD query value.
func queryDate(r *http.Request, key string, def dates.Date) (dates.Date, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}
	return dates.Parse(raw)
}

// requireRange reads from/to, defaulting to the last month up to today.
func requireRange(w http.ResponseWriter, r *http.Request) (dates.Date, dates.Date, bool) {
	to, err := queryDate(r, "to", today(r))
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid to date", err)
		return dates.Date{}, dates.Date{}, false
	}
	from, err := queryDate(r, "from", to.AddDays(-(defaultSpanDays - 1)))
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid from date", err)
		return dates.Date{}, dates.Date{}, false
	}
	return from, to, true
}

func pagination(r *http.Request) (limit, page int) {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 || limit > maxLimit {
		limit = defaultLimit
	}
	page, err = strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	return limit, page
}
