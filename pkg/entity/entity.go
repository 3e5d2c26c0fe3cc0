package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/limbo/lifeboard/pkg/dates"
)

// Base carries the columns every row-store table shares
type Base struct {
	ID     uuid.UUID `json:"id"`
	UserID uuid.UUID `json:"user_id"`
}

type Todo struct {
	Base
	Text        string     `json:"text" validate:"required,max=500"`
	Completed   bool       `json:"completed"`
	Priority    string     `json:"priority" validate:"omitempty,oneof=low medium high"`
	Category    string     `json:"category" validate:"max=64"`
	CreatedDate dates.Date `json:"created_date"`
}

type Habit struct {
	Base
	Name            string `json:"name" validate:"required,max=100"`
	Category        string `json:"category" validate:"max=64"`
	Color           string `json:"color" validate:"max=32"`
	Icon            string `json:"icon" validate:"max=32"`
	CurrentStreak   int    `json:"current_streak" validate:"gte=0"`
	BestStreak      int    `json:"best_streak" validate:"gte=0"`
	TargetFrequency int    `json:"target_frequency" validate:"gte=0,lte=7"`
}

type HabitCompletion struct {
	Base
	HabitID       uuid.UUID  `json:"habit_id"`
	CompletedDate dates.Date `json:"completed_date"`
}

type DSAProblem struct {
	Base
	ProblemName string     `json:"problem_name" validate:"required,max=200"`
	Difficulty  string     `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
	Topic       string     `json:"topic" validate:"max=64"`
	SolvedDate  dates.Date `json:"solved_date"`
}

type GymCheckin struct {
	Base
	CheckinDate dates.Date `json:"checkin_date"`
	CheckinTime string     `json:"checkin_time" validate:"omitempty,hhmm"`
}

// DailyBlock is one slot of a day's plan
type DailyBlock struct {
	Base
	TimeSlot  string     `json:"time_slot" validate:"required,time_slot"`
	Task      string     `json:"task" validate:"required,max=200"`
	Emoji     string     `json:"emoji" validate:"max=16"`
	BlockType string     `json:"block_type" validate:"max=32"`
	Completed bool       `json:"completed"`
	Date      dates.Date `json:"date"`
	IsActive  bool       `json:"is_active"`
}

type FocusSession struct {
	Base
	SessionType     string    `json:"session_type" validate:"required,oneof=focus short_break long_break"`
	DurationMinutes int       `json:"duration_minutes" validate:"gt=0,lte=600"`
	Completed       bool      `json:"completed"`
	Notes           string    `json:"notes" validate:"max=2000"`
	CreatedAt       time.Time `json:"created_at"`
}

type Note struct {
	Base
	Content   string    `json:"content" validate:"required,max=10000"`
	CreatedAt time.Time `json:"created_at"`
}

type Reflection struct {
	Base
	ReflectionDate dates.Date `json:"reflection_date"`
	Content        string     `json:"content" validate:"required,max=10000"`
	Mood           int        `json:"mood" validate:"gte=0,lte=5"`
}

type ProjectTask struct {
	Base
	Project     string     `json:"project" validate:"required,max=100"`
	Title       string     `json:"title" validate:"required,max=200"`
	Status      string     `json:"status" validate:"omitempty,oneof=todo doing done"`
	CreatedDate dates.Date `json:"created_date"`
}

// Derived values below are computed on demand and never persisted.

type StreakSummary struct {
	Activity   string      `json:"activity"`
	Current    int         `json:"current"`
	Longest    int         `json:"longest"`
	LastActive *dates.Date `json:"last_active,omitempty"`
}

type DayIntensity struct {
	Date           dates.Date `json:"date"`
	CompletedCount int        `json:"completed_count"`
	TotalPossible  int        `json:"total_possible"`
	Ratio          float64    `json:"ratio"`
	Bucket         int        `json:"intensity_bucket"`
}

type HabitStats struct {
	ID               uuid.UUID   `json:"habit_id"`
	TotalCompletions int         `json:"total_completions"`
	CurrentStreak    int         `json:"current_streak"`
	LongestStreak    int         `json:"longest_streak"`
	LastCompletion   *dates.Date `json:"last_completion,omitempty"`
}

// Overview is the dashboard's "today" card set
type Overview struct {
	Date         dates.Date      `json:"date"`
	Todos        DayIntensity    `json:"todos"`
	Habits       DayIntensity    `json:"habits"`
	Streaks      []StreakSummary `json:"streaks"`
	Blocks       []DailyBlock    `json:"blocks"`
	CurrentBlock *DailyBlock     `json:"current_block,omitempty"`
	FocusMinutes int             `json:"focus_minutes"`
}
