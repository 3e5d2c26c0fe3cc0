package service

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/limbo/lifeboard/internal/consistency"
	errorvalues "github.com/limbo/lifeboard/internal/error_values"
	"github.com/limbo/lifeboard/internal/repository"
	"github.com/limbo/lifeboard/pkg/dates"
	"github.com/limbo/lifeboard/pkg/entity"
	"github.com/limbo/lifeboard/pkg/events"
)

const (
	ActivityDSA         = "dsa"
	ActivityGym         = "gym"
	ActivityHabits      = "habits"
	ActivityReflections = "reflections"
	ActivityFocus       = "focus"
	ActivityTodos       = "todos"

	// Longest span a heatmap may cover
	maxHeatmapDays = 371
)

var Activities = []string{ActivityDSA, ActivityGym, ActivityHabits, ActivityReflections, ActivityFocus, ActivityTodos}

type CacheOpts struct {
	Size int
	TTL  time.Duration
}

type overviewKey struct {
	User uuid.UUID
	Day  dates.Date
	Zone string
}

// ConsistencyService computes streaks, heatmaps and the daily overview.
type ConsistencyService struct {
	b     *repository.Backends
	clock dates.Clock
	cache *expirable.LRU[overviewKey, entity.Overview]

	// gens counts invalidations per user. An overview built while the
	// generation moved is served but not cached.
	mu   sync.Mutex
	gens map[uuid.UUID]uint64
}

func NewConsistencyService(b *repository.Backends, clock dates.Clock, opts CacheOpts) *ConsistencyService {
	if b == nil {
		log.Fatal("on consistency service provided nil backends")
	}
	if clock == nil {
		clock = dates.SystemClock{}
	}
	if opts.Size <= 0 {
		opts.Size = 256
	}
	if opts.TTL <= 0 {
		opts.TTL = time.Minute
	}
	return &ConsistencyService{
		b:     b,
		clock: clock,
		cache: expirable.NewLRU[overviewKey, entity.Overview](opts.Size, nil, opts.TTL),
		gens:  make(map[uuid.UUID]uint64),
	}
}

func (cs *ConsistencyService) Streak(ctx context.Context, uid uuid.UUID, activity string, loc *time.Location) (*entity.StreakSummary, error) {
	if loc == nil {
		loc = time.Local
	}
	set, err := cs.activityDates(ctx, uid, activity, loc)
	if err != nil {
		return nil, err
	}
	summary := consistency.Summarize(activity, set, dates.Today(cs.clock, loc))
	return &summary, nil
}

func (cs *ConsistencyService) Heatmap(ctx context.Context, uid uuid.UUID, from, to dates.Date) ([]entity.DayIntensity, error) {
	if from.After(to) || to.Sub(from) >= maxHeatmapDays {
		return nil, fmt.Errorf("%w: %s..%s", errorvalues.ErrInvalidRange, from, to)
	}
	habits, err := cs.b.Habits.List(ctx, uid, repository.Filter{})
	if err != nil {
		return nil, fmt.Errorf("habits repository error: %w", err)
	}
	completions, err := cs.b.HabitCompletions.List(ctx, uid, repository.Between(from, to))
	if err != nil {
		return nil, fmt.Errorf("completions repository error: %w", err)
	}
	total := len(habits)
	return consistency.Heatmap(from, to, completedPerDay(completions), func(dates.Date) int { return total }), nil
}

// Overview never fails: every section that can't be fetched is left empty
// and logged, and such a partial overview isn't cached. The current block is
// derived on each call from the cached blocks.
func (cs *ConsistencyService) Overview(ctx context.Context, uid uuid.UUID, loc *time.Location) (*entity.Overview, error) {
	if loc == nil {
		loc = time.Local
	}
	now := cs.clock.Now().In(loc)
	key := overviewKey{User: uid, Day: dates.Of(now), Zone: loc.String()}
	overview, ok := cs.cache.Get(key)
	if !ok {
		var complete bool
		gen := cs.generation(uid)
		overview, complete = cs.buildOverview(ctx, uid, now)
		if complete {
			cs.mu.Lock()
			if cs.gens[uid] == gen {
				cs.cache.Add(key, overview)
			}
			cs.mu.Unlock()
		}
	}
	overview.Blocks = slices.Clone(overview.Blocks)
	overview.Streaks = slices.Clone(overview.Streaks)
	if block, found := consistency.CurrentBlock(activeBlocks(overview.Blocks), now); found {
		current := *block
		overview.CurrentBlock = &current
	}
	return &overview, nil
}

func (cs *ConsistencyService) buildOverview(ctx context.Context, uid uuid.UUID, now time.Time) (entity.Overview, bool) {
	today := dates.Of(now)
	loc := now.Location()
	logger := slog.Default().With(slog.String("uid", uid.String()))
	complete := true
	failed := func(what string, err error) {
		complete = false
		logger.Warn("overview: fetching "+what+" failed", slog.String("error", err.Error()))
	}
	overview := entity.Overview{
		Date:    today,
		Streaks: make([]entity.StreakSummary, 0, len(Activities)),
		Blocks:  []entity.DailyBlock{},
	}

	todos, err := cs.b.Todos.List(ctx, uid, repository.Day(today))
	if err != nil {
		failed("todos", err)
	}
	done := 0
	for _, t := range todos {
		if t.Completed {
			done++
		}
	}
	overview.Todos = consistency.DayIntensityOf(today, done, len(todos))

	habits, err := cs.b.Habits.List(ctx, uid, repository.Filter{})
	if err != nil {
		failed("habits", err)
	}
	completions, err := cs.b.HabitCompletions.List(ctx, uid, repository.Day(today))
	if err != nil {
		failed("habit completions", err)
	}
	overview.Habits = consistency.DayIntensityOf(today, completedPerDay(completions)[today], len(habits))

	for _, activity := range Activities {
		set, err := cs.activityDates(ctx, uid, activity, loc)
		if err != nil {
			failed(activity+" activity", err)
			set = consistency.NewDateSet()
		}
		overview.Streaks = append(overview.Streaks, consistency.Summarize(activity, set, today))
	}

	blocks, err := cs.b.DailyBlocks.List(ctx, uid, repository.Day(today))
	if err != nil {
		failed("blocks", err)
	} else {
		overview.Blocks = blocks
	}

	dayFilter := repository.Day(today)
	dayFilter.Location = loc
	sessions, err := cs.b.FocusSessions.List(ctx, uid, dayFilter)
	if err != nil {
		failed("focus sessions", err)
	}
	for _, s := range sessions {
		if s.Completed && s.SessionType == "focus" {
			overview.FocusMinutes += s.DurationMinutes
		}
	}
	return overview, complete
}

func (cs *ConsistencyService) generation(uid uuid.UUID) uint64 {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cs.gens[uid]
}

// Invalidate drops every cached overview of uid, including one being built
// concurrently.
func (cs *ConsistencyService) Invalidate(uid uuid.UUID) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.gens[uid]++
	for _, key := range cs.cache.Keys() {
		if key.User == uid {
			cs.cache.Remove(key)
		}
	}
}

// Watch invalidates cached overviews on every change until ctx is done or
// changes is closed. Redelivered changes only cause an extra re-fetch.
func (cs *ConsistencyService) Watch(ctx context.Context, changes <-chan events.Change) {
	for {
		select {
		case <-ctx.Done():
			return
		case c, ok := <-changes:
			if !ok {
				return
			}
			cs.Invalidate(c.UserID)
		}
	}
}

func (cs *ConsistencyService) activityDates(ctx context.Context, uid uuid.UUID, activity string, loc *time.Location) (consistency.DateSet, error) {
	set := consistency.NewDateSet()
	all := repository.Filter{}
	switch activity {
	case ActivityDSA:
		rows, err := cs.b.DSAProblems.List(ctx, uid, all)
		if err != nil {
			return nil, fmt.Errorf("dsa repository error: %w", err)
		}
		for _, r := range rows {
			set.Add(r.SolvedDate)
		}
	case ActivityGym:
		rows, err := cs.b.GymCheckins.List(ctx, uid, all)
		if err != nil {
			return nil, fmt.Errorf("gym repository error: %w", err)
		}
		for _, r := range rows {
			set.Add(r.CheckinDate)
		}
	case ActivityHabits:
		rows, err := cs.b.HabitCompletions.List(ctx, uid, all)
		if err != nil {
			return nil, fmt.Errorf("completions repository error: %w", err)
		}
		for _, r := range rows {
			set.Add(r.CompletedDate)
		}
	case ActivityReflections:
		rows, err := cs.b.Reflections.List(ctx, uid, all)
		if err != nil {
			return nil, fmt.Errorf("reflections repository error: %w", err)
		}
		for _, r := range rows {
			set.Add(r.ReflectionDate)
		}
	case ActivityFocus:
		rows, err := cs.b.FocusSessions.List(ctx, uid, repository.Filter{Eq: map[string]any{"completed": true}})
		if err != nil {
			return nil, fmt.Errorf("focus repository error: %w", err)
		}
		for _, r := range rows {
			set.Add(dates.Of(r.CreatedAt.In(loc)))
		}
	case ActivityTodos:
		rows, err := cs.b.Todos.List(ctx, uid, repository.Filter{Eq: map[string]any{"completed": true}})
		if err != nil {
			return nil, fmt.Errorf("todos repository error: %w", err)
		}
		for _, r := range rows {
			set.Add(r.CreatedDate)
		}
	default:
		return nil, fmt.Errorf("%w: %q", errorvalues.ErrUnknownActivity, activity)
	}
	return set, nil
}

func completedPerDay(completions []entity.HabitCompletion) map[dates.Date]int {
	perDay := make(map[dates.Date]int)
	type habitDay struct {
		habit uuid.UUID
		day   dates.Date
	}
	seen := make(map[habitDay]struct{}, len(completions))
	for _, c := range completions {
		key := habitDay{habit: c.HabitID, day: c.CompletedDate}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		perDay[c.CompletedDate]++
	}
	return perDay
}
