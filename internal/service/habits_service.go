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

const defaultTargetFrequency = 7

type HabitsService struct {
	habits      repository.Store[entity.Habit]
	completions repository.Store[entity.HabitCompletion]
	clock       dates.Clock
}

func NewHabitsService(habits repository.Store[entity.Habit], completions repository.Store[entity.HabitCompletion], clock dates.Clock) *HabitsService {
	if habits == nil || completions == nil {
		log.Fatal("on habits service provided nil stores")
	}
	if clock == nil {
		clock = dates.SystemClock{}
	}
	return &HabitsService{
		habits:      habits,
		completions: completions,
		clock:       clock,
	}
}

func (hs *HabitsService) CreateHabit(ctx context.Context, uid uuid.UUID, req CreateHabitRequest) (*entity.Habit, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	same, err := hs.habits.List(ctx, uid, repository.Filter{Eq: map[string]any{"name": req.Name}, Limit: 1})
	if err != nil {
		return nil, fmt.Errorf("habits repository error: %w", err)
	}
	if len(same) > 0 {
		return nil, errorvalues.ErrDuplicate
	}
	h := entity.Habit{
		Name:            req.Name,
		Category:        req.Category,
		Color:           req.Color,
		Icon:            req.Icon,
		TargetFrequency: req.TargetFrequency,
	}
	if h.TargetFrequency == 0 {
		h.TargetFrequency = defaultTargetFrequency
	}
	if err = hs.habits.Insert(ctx, uid, &h); err != nil {
		if errors.Is(err, errorvalues.ErrDuplicate) {
			return nil, err
		}
		return nil, fmt.Errorf("habits repository error: %w", err)
	}
	return &h, nil
}

func (hs *HabitsService) GetUserHabits(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]entity.Habit, error) {
	habits, err := hs.habits.List(ctx, uid, repository.Filter{Limit: pagination.Limit, Offset: pagination.Offset})
	if err != nil {
		return nil, fmt.Errorf("habits repository error: %w", err)
	}
	return habits, nil
}

func (hs *HabitsService) GetHabit(ctx context.Context, habitID, uid uuid.UUID) (*entity.Habit, error) {
	habit, err := hs.habits.Get(ctx, uid, habitID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrRecordNotFound) {
			return nil, errorvalues.ErrHabitNotFound
		}
		return nil, fmt.Errorf("habits repository error: %w", err)
	}
	return habit, nil
}

func (hs *HabitsService) DeleteHabit(ctx context.Context, habitID, uid uuid.UUID) error {
	if _, err := hs.GetHabit(ctx, habitID, uid); err != nil {
		return err
	}
	completions, err := hs.completionsOf(ctx, habitID, uid)
	if err != nil {
		return err
	}
	for _, c := range completions {
		err = hs.completions.Delete(ctx, uid, c.ID)
		if err != nil && !errors.Is(err, errorvalues.ErrRecordNotFound) {
			return fmt.Errorf("completions repository error: %w", err)
		}
	}
	if err = hs.habits.Delete(ctx, uid, habitID); err != nil {
		if errors.Is(err, errorvalues.ErrRecordNotFound) {
			return errorvalues.ErrHabitNotFound
		}
		return fmt.Errorf("habits repository error: %w", err)
	}
	return nil
}

func (hs *HabitsService) CompleteHabit(ctx context.Context, habitID, uid uuid.UUID, date dates.Date, loc *time.Location) (*entity.HabitCompletion, error) {
	habit, err := hs.GetHabit(ctx, habitID, uid)
	if err != nil {
		return nil, err
	}
	today := dates.Today(hs.clock, loc)
	if date.IsZero() {
		date = today
	}
	if date.After(today) {
		return nil, errorvalues.ErrCompletionDateNotAllowed
	}
	existing, err := hs.completionOn(ctx, habitID, uid, date)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errorvalues.ErrCompletionExists
	}
	completion := entity.HabitCompletion{HabitID: habitID, CompletedDate: date}
	if err = hs.completions.Insert(ctx, uid, &completion); err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrDuplicate):
			return nil, errorvalues.ErrCompletionExists
		case errors.Is(err, errorvalues.ErrRecordNotFound):
			return nil, errorvalues.ErrHabitNotFound
		}
		return nil, fmt.Errorf("completions repository error: %w", err)
	}
	hs.refreshStreaks(ctx, habit, today)
	return &completion, nil
}

func (hs *HabitsService) UncompleteHabit(ctx context.Context, habitID, uid uuid.UUID, date dates.Date, loc *time.Location) error {
	habit, err := hs.GetHabit(ctx, habitID, uid)
	if err != nil {
		return err
	}
	existing, err := hs.completionOn(ctx, habitID, uid, date)
	if err != nil {
		return err
	}
	if existing == nil {
		return errorvalues.ErrCompletionNotFound
	}
	if err = hs.completions.Delete(ctx, uid, existing.ID); err != nil {
		if errors.Is(err, errorvalues.ErrRecordNotFound) {
			return errorvalues.ErrCompletionNotFound
		}
		return fmt.Errorf("completions repository error: %w", err)
	}
	hs.refreshStreaks(ctx, habit, dates.Today(hs.clock, loc))
	return nil
}

func (hs *HabitsService) GetHabitCompletions(ctx context.Context, habitID, uid uuid.UUID, from, to dates.Date) ([]entity.HabitCompletion, error) {
	if _, err := hs.GetHabit(ctx, habitID, uid); err != nil {
		return nil, err
	}
	filter := repository.Between(from, to)
	filter.Eq = map[string]any{"habit_id": habitID}
	completions, err := hs.completions.List(ctx, uid, filter)
	if err != nil {
		if errors.Is(err, errorvalues.ErrInvalidRange) {
			return nil, err
		}
		return nil, fmt.Errorf("completions repository error: %w", err)
	}
	return completions, nil
}

func (hs *HabitsService) GetHabitStats(ctx context.Context, habitID, uid uuid.UUID, loc *time.Location) (*entity.HabitStats, error) {
	if _, err := hs.GetHabit(ctx, habitID, uid); err != nil {
		return nil, err
	}
	return hs.stats(ctx, habitID, uid, dates.Today(hs.clock, loc))
}

func (hs *HabitsService) stats(ctx context.Context, habitID, uid uuid.UUID, today dates.Date) (*entity.HabitStats, error) {
	completions, err := hs.completionsOf(ctx, habitID, uid)
	if err != nil {
		return nil, err
	}
	set := consistency.NewDateSet()
	for _, c := range completions {
		set.Add(c.CompletedDate)
	}
	stats := &entity.HabitStats{
		ID:               habitID,
		TotalCompletions: len(set),
		CurrentStreak:    consistency.CurrentStreak(set, today),
		LongestStreak:    consistency.LongestStreak(set),
	}
	if last, ok := consistency.LastActive(set); ok {
		stats.LastCompletion = &last
	}
	return stats, nil
}

// refreshStreaks keeps the habit row's streak columns in line with its
// completions. A failure leaves the columns stale and is only logged.
func (hs *HabitsService) refreshStreaks(ctx context.Context, habit *entity.Habit, today dates.Date) {
	stats, err := hs.stats(ctx, habit.ID, habit.UserID, today)
	if err != nil {
		slog.Warn("refreshing habit streaks failed", slog.String("habit_id", habit.ID.String()), slog.String("error", err.Error()))
		return
	}
	best := max(habit.BestStreak, stats.LongestStreak)
	if stats.CurrentStreak == habit.CurrentStreak && best == habit.BestStreak {
		return
	}
	_, err = hs.habits.Update(ctx, habit.UserID, habit.ID, repository.Patch{
		"current_streak": stats.CurrentStreak,
		"best_streak":    best,
	})
	if err != nil {
		slog.Warn("saving habit streaks failed", slog.String("habit_id", habit.ID.String()), slog.String("error", err.Error()))
	}
}

func (hs *HabitsService) completionsOf(ctx context.Context, habitID, uid uuid.UUID) ([]entity.HabitCompletion, error) {
	completions, err := hs.completions.List(ctx, uid, repository.Filter{Eq: map[string]any{"habit_id": habitID}})
	if err != nil {
		return nil, fmt.Errorf("completions repository error: %w", err)
	}
	return completions, nil
}

func (hs *HabitsService) completionOn(ctx context.Context, habitID, uid uuid.UUID, date dates.Date) (*entity.HabitCompletion, error) {
	completions, err := hs.completions.List(ctx, uid, repository.Filter{
		Eq: map[string]any{"habit_id": habitID, "completed_date": date},
	})
	if err != nil {
		return nil, fmt.Errorf("completions repository error: %w", err)
	}
	if len(completions) == 0 {
		return nil, nil
	}
	return &completions[0], nil
}
