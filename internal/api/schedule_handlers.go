package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/limbo/lifeboard/internal/service"
	"github.com/limbo/lifeboard/pkg/dates"
	"github.com/limbo/lifeboard/pkg/httputil"
)

type AddBlockRequest struct {
	TimeSlot  string      `json:"time_slot"`
	Task      string      `json:"task"`
	Emoji     string      `json:"emoji"`
	BlockType string      `json:"block_type"`
	Date      *dates.Date `json:"date,omitempty"`
}

func (s *Server) GetBlocks(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, "get blocks")
	if !ok {
		return
	}
	date, err := queryDate(r, "date", today(r))
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date", err)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	blocks, err := s.scheduleService.BlocksForDate(ctx, uid, date)
	if err != nil {
		writeServiceError(w, logger, "getting blocks", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, blocks)
}

func (s *Server) AddBlock(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, "add block")
	if !ok {
		return
	}
	var req AddBlockRequest
	defer r.Body.Close()
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("add block error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	block, err := s.scheduleService.AddBlock(ctx, uid, service.AddBlockRequest{
		TimeSlot:  req.TimeSlot,
		Task:      req.Task,
		Emoji:     req.Emoji,
		BlockType: req.BlockType,
		Date:      req.Date,
	}, locationOf(r))
	if err != nil {
		writeServiceError(w, logger, "adding block", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, block)
	logger.Info("block added", slog.String("block_id", block.ID.String()))
}

func (s *Server) ToggleBlock(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, "toggle block")
	if !ok {
		return
	}
	id, ok := requireID(w, r, "block")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	block, err := s.scheduleService.ToggleBlock(ctx, uid, id)
	if err != nil {
		writeServiceError(w, logger, "toggling block", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, block)
}

func (s *Server) DeleteBlock(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, "delete block")
	if !ok {
		return
	}
	id, ok := requireID(w, r, "block")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	if err := s.scheduleService.DeleteBlock(ctx, uid, id); err != nil {
		writeServiceError(w, logger, "deleting block", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) GetCurrentBlock(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, "current block")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	block, err := s.scheduleService.CurrentBlock(ctx, uid, locationOf(r))
	if err != nil {
		writeServiceError(w, logger, "getting current block", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, block)
}

func (s *Server) SeedBlocks(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, "seed blocks")
	if !ok {
		return
	}
	date, err := queryDate(r, "date", today(r))
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date", err)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	blocks, err := s.scheduleService.SeedDefaults(ctx, uid, date)
	if err != nil {
		writeServiceError(w, logger, "seeding blocks", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, blocks)
	logger.Info("blocks seeded", slog.String("date", date.String()), slog.Int("count", len(blocks)))
}
