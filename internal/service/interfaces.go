package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/lifeboard/pkg/dates"
	"github.com/limbo/lifeboard/pkg/entity"
)

type PaginationOpts struct {
	Limit  int
	Offset int
}

type CreateHabitRequest struct {
	Name            string `json:"name" validate:"required,max=100"`
	Category        string `json:"category" validate:"max=64"`
	Color           string `json:"color" validate:"max=32"`
	Icon            string `json:"icon" validate:"max=32"`
	TargetFrequency int    `json:"target_frequency" validate:"gte=0,lte=7"`
}

type AddBlockRequest struct {
	TimeSlot  string      `json:"time_slot" validate:"required,time_slot"`
	Task      string      `json:"task" validate:"required,max=200"`
	Emoji     string      `json:"emoji" validate:"max=16"`
	BlockType string      `json:"block_type" validate:"max=32"`
	Date      *dates.Date `json:"date,omitempty"`
}

// BlockTemplate is one entry of a saved schedule_template preference.
type BlockTemplate struct {
	TimeSlot  string `json:"time_slot" validate:"required,time_slot"`
	Task      string `json:"task" validate:"required,max=200"`
	Emoji     string `json:"emoji" validate:"max=16"`
	BlockType string `json:"block_type" validate:"max=32"`
}

type HabitsServiceI interface {
	CreateHabit(ctx context.Context, uid uuid.UUID, req CreateHabitRequest) (*entity.Habit, error)
	GetUserHabits(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]entity.Habit, error)
	GetHabit(ctx context.Context, habitID, uid uuid.UUID) (*entity.Habit, error)
	// Deletes the habit with its completions
	DeleteHabit(ctx context.Context, habitID, uid uuid.UUID) error
	// Marks the habit done on date. Future dates relative to today in loc are refused
	CompleteHabit(ctx context.Context, habitID, uid uuid.UUID, date dates.Date, loc *time.Location) (*entity.HabitCompletion, error)
	UncompleteHabit(ctx context.Context, habitID, uid uuid.UUID, date dates.Date, loc *time.Location) error
	GetHabitCompletions(ctx context.Context, habitID, uid uuid.UUID, from, to dates.Date) ([]entity.HabitCompletion, error)
	GetHabitStats(ctx context.Context, habitID, uid uuid.UUID, loc *time.Location) (*entity.HabitStats, error)
}

type ScheduleServiceI interface {
	BlocksForDate(ctx context.Context, uid uuid.UUID, date dates.Date) ([]entity.DailyBlock, error)
	// Adds a block. Its slot must parse and must not overlap another block of the same date
	AddBlock(ctx context.Context, uid uuid.UUID, req AddBlockRequest, loc *time.Location) (*entity.DailyBlock, error)
	ToggleBlock(ctx context.Context, uid, blockID uuid.UUID) (*entity.DailyBlock, error)
	DeleteBlock(ctx context.Context, uid, blockID uuid.UUID) error
	// Returns the active block holding the current local time
	CurrentBlock(ctx context.Context, uid uuid.UUID, loc *time.Location) (*entity.DailyBlock, error)
	// Fills an empty date from the saved template or the built-in day
	SeedDefaults(ctx context.Context, uid uuid.UUID, date dates.Date) ([]entity.DailyBlock, error)
}

type ConsistencyServiceI interface {
	Streak(ctx context.Context, uid uuid.UUID, activity string, loc *time.Location) (*entity.StreakSummary, error)
	Heatmap(ctx context.Context, uid uuid.UUID, from, to dates.Date) ([]entity.DayIntensity, error)
	Overview(ctx context.Context, uid uuid.UUID, loc *time.Location) (*entity.Overview, error)
}

type PreferencesServiceI interface {
	Get(ctx context.Context, uid uuid.UUID, feature string) (any, error)
	Put(ctx context.Context, uid uuid.UUID, feature string, payload any) error
	Delete(ctx context.Context, uid uuid.UUID, feature string) error
}
