package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/lifeboard/internal/consistency"
	errorvalues "github.com/limbo/lifeboard/internal/error_values"
	"github.com/limbo/lifeboard/internal/repository"
	"github.com/limbo/lifeboard/pkg/dates"
	"github.com/limbo/lifeboard/pkg/entity"
)

const FeatureScheduleTemplate = "schedule_template"

// DefaultDay seeds dates for users without a saved template.
var DefaultDay = []BlockTemplate{
	{TimeSlot: "06:00-07:00", Task: "Morning routine", Emoji: "🌅", BlockType: "personal"},
	{TimeSlot: "07:00-08:00", Task: "Workout", Emoji: "🏋️", BlockType: "health"},
	{TimeSlot: "08:00-09:00", Task: "Breakfast and planning", Emoji: "🍳", BlockType: "personal"},
	{TimeSlot: "09:00-12:00", Task: "Deep work", Emoji: "💻", BlockType: "work"},
	{TimeSlot: "12:00-13:00", Task: "Lunch", Emoji: "🥗", BlockType: "break"},
	{TimeSlot: "13:00-14:00", Task: "DSA practice", Emoji: "🧠", BlockType: "learning"},
	{TimeSlot: "14:00-17:00", Task: "Project work", Emoji: "🛠️", BlockType: "work"},
	{TimeSlot: "17:00-18:00", Task: "Review and todos", Emoji: "✅", BlockType: "work"},
	{TimeSlot: "21:00-22:00", Task: "Reading", Emoji: "📚", BlockType: "personal"},
	{TimeSlot: "22:00-06:00", Task: "Sleep", Emoji: "😴", BlockType: "rest"},
}

type ScheduleService struct {
	blocks repository.Store[entity.DailyBlock]
	prefs  repository.ScopedStore
	clock  dates.Clock
}

func NewScheduleService(blocks repository.Store[entity.DailyBlock], prefs repository.ScopedStore, clock dates.Clock) *ScheduleService {
	if blocks == nil || prefs == nil {
		log.Fatal("on schedule service provided nil stores")
	}
	if clock == nil {
		clock = dates.SystemClock{}
	}
	return &ScheduleService{
		blocks: blocks,
		prefs:  prefs,
		clock:  clock,
	}
}

func (ss *ScheduleService) BlocksForDate(ctx context.Context, uid uuid.UUID, date dates.Date) ([]entity.DailyBlock, error) {
	blocks, err := ss.blocks.List(ctx, uid, repository.Day(date))
	if err != nil {
		return nil, fmt.Errorf("blocks repository error: %w", err)
	}
	return blocks, nil
}

func (ss *ScheduleService) AddBlock(ctx context.Context, uid uuid.UUID, req AddBlockRequest, loc *time.Location) (*entity.DailyBlock, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	slot, ok := consistency.ParseSlot(req.TimeSlot)
	if !ok {
		return nil, errorvalues.ErrInvalidSlot
	}
	date := dates.Today(ss.clock, loc)
	if req.Date != nil && !req.Date.IsZero() {
		date = *req.Date
	}
	existing, err := ss.BlocksForDate(ctx, uid, date)
	if err != nil {
		return nil, err
	}
	if other, found := consistency.FirstOverlap(existing, slot); found {
		return nil, fmt.Errorf("%w: %s", errorvalues.ErrSlotOverlap, other.TimeSlot)
	}
	block := entity.DailyBlock{
		TimeSlot:  slot.String(),
		Task:      req.Task,
		Emoji:     req.Emoji,
		BlockType: req.BlockType,
		Date:      date,
		IsActive:  true,
	}
	if err = ss.blocks.Insert(ctx, uid, &block); err != nil {
		return nil, fmt.Errorf("blocks repository error: %w", err)
	}
	return &block, nil
}

func (ss *ScheduleService) ToggleBlock(ctx context.Context, uid, blockID uuid.UUID) (*entity.DailyBlock, error) {
	block, err := ss.blocks.Get(ctx, uid, blockID)
	if err != nil {
		return nil, fmt.Errorf("blocks repository error: %w", err)
	}
	updated, err := ss.blocks.Update(ctx, uid, blockID, repository.Patch{"completed": !block.Completed})
	if err != nil {
		return nil, fmt.Errorf("blocks repository error: %w", err)
	}
	return updated, nil
}

func (ss *ScheduleService) DeleteBlock(ctx context.Context, uid, blockID uuid.UUID) error {
	if err := ss.blocks.Delete(ctx, uid, blockID); err != nil {
		return fmt.Errorf("blocks repository error: %w", err)
	}
	return nil
}

func (ss *ScheduleService) CurrentBlock(ctx context.Context, uid uuid.UUID, loc *time.Location) (*entity.DailyBlock, error) {
	if loc == nil {
		loc = time.Local
	}
	now := ss.clock.Now().In(loc)
	blocks, err := ss.BlocksForDate(ctx, uid, dates.Of(now))
	if err != nil {
		return nil, err
	}
	block, ok := consistency.CurrentBlock(activeBlocks(blocks), now)
	if !ok {
		return nil, errorvalues.ErrBlockMissing
	}
	return block, nil
}

func (ss *ScheduleService) SeedDefaults(ctx context.Context, uid uuid.UUID, date dates.Date) ([]entity.DailyBlock, error) {
	existing, err := ss.BlocksForDate(ctx, uid, date)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return existing, nil
	}
	template := ss.template(ctx, uid)
	seeded := make([]entity.DailyBlock, 0, len(template))
	for _, entry := range template {
		slot, ok := consistency.ParseSlot(entry.TimeSlot)
		if !ok || entry.Task == "" {
			continue
		}
		if _, clash := consistency.FirstOverlap(seeded, slot); clash {
			continue
		}
		block := entity.DailyBlock{
			TimeSlot:  slot.String(),
			Task:      entry.Task,
			Emoji:     entry.Emoji,
			BlockType: entry.BlockType,
			Date:      date,
			IsActive:  true,
		}
		if err = ss.blocks.Insert(ctx, uid, &block); err != nil {
			return nil, fmt.Errorf("blocks repository error: %w", err)
		}
		seeded = append(seeded, block)
	}
	return seeded, nil
}

// template returns the user's saved day or DefaultDay when none is usable.
func (ss *ScheduleService) template(ctx context.Context, uid uuid.UUID) []BlockTemplate {
	var saved []BlockTemplate
	err := ss.prefs.Get(ctx, repository.Scope{User: uid, Feature: FeatureScheduleTemplate}, &saved)
	switch {
	case err == nil && len(saved) > 0:
		return saved
	case err != nil && !errors.Is(err, errorvalues.ErrPreferenceNotFound):
		slog.Warn("loading schedule template failed, using default day", slog.String("error", err.Error()))
	}
	return DefaultDay
}

func activeBlocks(blocks []entity.DailyBlock) []entity.DailyBlock {
	active := make([]entity.DailyBlock, 0, len(blocks))
	for _, b := range blocks {
		if b.IsActive {
			active = append(active, b)
		}
	}
	return active
}
