package repository

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/lifeboard/pkg/dates"
	"github.com/limbo/lifeboard/pkg/entity"
)

// Table describes how one entity maps onto its relation. Both backends are
// driven by the same descriptor so they agree on columns, filters and order.
type Table[T any] struct {
	Name string
	// Writable columns, id and user_id excluded
	Columns []string
	// DateColumn is the column range filters apply to. Empty if the table has none
	DateColumn string
	// Timestamp reports whether DateColumn holds instants rather than calendar days
	Timestamp bool
	OrderBy   string

	Base   func(row *T) *entity.Base
	Values func(row *T) []any
	Fields func(row *T) []any
	// Day returns the row's calendar day. Nil when DateColumn is empty
	Day     func(row *T, loc *time.Location) dates.Date
	Compare func(a, b *T) int
}

func (t *Table[T]) hasColumn(name string) bool {
	return slices.Contains(t.Columns, name)
}

func (t *Table[T]) value(row *T, column string) (any, bool) {
	i := slices.Index(t.Columns, column)
	if i < 0 {
		return nil, false
	}
	return t.Values(row)[i], true
}

func (t *Table[T]) selectColumns() string {
	return "id, user_id, " + strings.Join(t.Columns, ", ")
}

func (t *Table[T]) scanTargets(row *T) []any {
	base := t.Base(row)
	return append([]any{&base.ID, &base.UserID}, t.Fields(row)...)
}

func byDate(a, b dates.Date, ida, idb uuid.UUID) int {
	if c := a.Compare(b); c != 0 {
		return c
	}
	return strings.Compare(ida.String(), idb.String())
}

func byTime(a, b time.Time, ida, idb uuid.UUID) int {
	if c := a.Compare(b); c != 0 {
		return c
	}
	return strings.Compare(ida.String(), idb.String())
}

func dayOf(t time.Time, loc *time.Location) dates.Date {
	if loc == nil {
		loc = time.Local
	}
	return dates.Of(t.In(loc))
}

var Todos = &Table[entity.Todo]{
	Name:       "todos",
	Columns:    []string{"text", "completed", "priority", "category", "created_date"},
	DateColumn: "created_date",
	OrderBy:    "created_date, id",
	Base:       func(r *entity.Todo) *entity.Base { return &r.Base },
	Values: func(r *entity.Todo) []any {
		return []any{r.Text, r.Completed, r.Priority, r.Category, r.CreatedDate}
	},
	Fields: func(r *entity.Todo) []any {
		return []any{&r.Text, &r.Completed, &r.Priority, &r.Category, &r.CreatedDate}
	},
	Day:     func(r *entity.Todo, _ *time.Location) dates.Date { return r.CreatedDate },
	Compare: func(a, b *entity.Todo) int { return byDate(a.CreatedDate, b.CreatedDate, a.ID, b.ID) },
}

var Habits = &Table[entity.Habit]{
	Name:    "habits",
	Columns: []string{"name", "category", "color", "icon", "current_streak", "best_streak", "target_frequency"},
	OrderBy: "name, id",
	Base:    func(r *entity.Habit) *entity.Base { return &r.Base },
	Values: func(r *entity.Habit) []any {
		return []any{r.Name, r.Category, r.Color, r.Icon, r.CurrentStreak, r.BestStreak, r.TargetFrequency}
	},
	Fields: func(r *entity.Habit) []any {
		return []any{&r.Name, &r.Category, &r.Color, &r.Icon, &r.CurrentStreak, &r.BestStreak, &r.TargetFrequency}
	},
	Compare: func(a, b *entity.Habit) int {
		return cmp.Or(strings.Compare(a.Name, b.Name), strings.Compare(a.ID.String(), b.ID.String()))
	},
}

var HabitCompletions = &Table[entity.HabitCompletion]{
	Name:       "habit_completions",
	Columns:    []string{"habit_id", "completed_date"},
	DateColumn: "completed_date",
	OrderBy:    "completed_date, id",
	Base:       func(r *entity.HabitCompletion) *entity.Base { return &r.Base },
	Values:     func(r *entity.HabitCompletion) []any { return []any{r.HabitID, r.CompletedDate} },
	Fields:     func(r *entity.HabitCompletion) []any { return []any{&r.HabitID, &r.CompletedDate} },
	Day:        func(r *entity.HabitCompletion, _ *time.Location) dates.Date { return r.CompletedDate },
	Compare: func(a, b *entity.HabitCompletion) int {
		return byDate(a.CompletedDate, b.CompletedDate, a.ID, b.ID)
	},
}

var DSAProblems = &Table[entity.DSAProblem]{
	Name:       "dsa_problems",
	Columns:    []string{"problem_name", "difficulty", "topic", "solved_date"},
	DateColumn: "solved_date",
	OrderBy:    "solved_date, id",
	Base:       func(r *entity.DSAProblem) *entity.Base { return &r.Base },
	Values: func(r *entity.DSAProblem) []any {
		return []any{r.ProblemName, r.Difficulty, r.Topic, r.SolvedDate}
	},
	Fields: func(r *entity.DSAProblem) []any {
		return []any{&r.ProblemName, &r.Difficulty, &r.Topic, &r.SolvedDate}
	},
	Day:     func(r *entity.DSAProblem, _ *time.Location) dates.Date { return r.SolvedDate },
	Compare: func(a, b *entity.DSAProblem) int { return byDate(a.SolvedDate, b.SolvedDate, a.ID, b.ID) },
}

var GymCheckins = &Table[entity.GymCheckin]{
	Name:       "gym_checkins",
	Columns:    []string{"checkin_date", "checkin_time"},
	DateColumn: "checkin_date",
	OrderBy:    "checkin_date, checkin_time, id",
	Base:       func(r *entity.GymCheckin) *entity.Base { return &r.Base },
	Values:     func(r *entity.GymCheckin) []any { return []any{r.CheckinDate, r.CheckinTime} },
	Fields:     func(r *entity.GymCheckin) []any { return []any{&r.CheckinDate, &r.CheckinTime} },
	Day:        func(r *entity.GymCheckin, _ *time.Location) dates.Date { return r.CheckinDate },
	Compare: func(a, b *entity.GymCheckin) int {
		return cmp.Or(a.CheckinDate.Compare(b.CheckinDate), strings.Compare(a.CheckinTime, b.CheckinTime),
			strings.Compare(a.ID.String(), b.ID.String()))
	},
}

var DailyBlocks = &Table[entity.DailyBlock]{
	Name:       "daily_blocks",
	Columns:    []string{"time_slot", "task", "emoji", "block_type", "completed", "date", "is_active"},
	DateColumn: "date",
	OrderBy:    "date, time_slot, id",
	Base:       func(r *entity.DailyBlock) *entity.Base { return &r.Base },
	Values: func(r *entity.DailyBlock) []any {
		return []any{r.TimeSlot, r.Task, r.Emoji, r.BlockType, r.Completed, r.Date, r.IsActive}
	},
	Fields: func(r *entity.DailyBlock) []any {
		return []any{&r.TimeSlot, &r.Task, &r.Emoji, &r.BlockType, &r.Completed, &r.Date, &r.IsActive}
	},
	Day: func(r *entity.DailyBlock, _ *time.Location) dates.Date { return r.Date },
	Compare: func(a, b *entity.DailyBlock) int {
		return cmp.Or(a.Date.Compare(b.Date), strings.Compare(a.TimeSlot, b.TimeSlot),
			strings.Compare(a.ID.String(), b.ID.String()))
	},
}

var FocusSessions = &Table[entity.FocusSession]{
	Name:       "focus_sessions",
	Columns:    []string{"session_type", "duration_minutes", "completed", "notes", "created_at"},
	DateColumn: "created_at",
	Timestamp:  true,
	OrderBy:    "created_at, id",
	Base:       func(r *entity.FocusSession) *entity.Base { return &r.Base },
	Values: func(r *entity.FocusSession) []any {
		return []any{r.SessionType, r.DurationMinutes, r.Completed, r.Notes, r.CreatedAt}
	},
	Fields: func(r *entity.FocusSession) []any {
		return []any{&r.SessionType, &r.DurationMinutes, &r.Completed, &r.Notes, &r.CreatedAt}
	},
	Day:     func(r *entity.FocusSession, loc *time.Location) dates.Date { return dayOf(r.CreatedAt, loc) },
	Compare: func(a, b *entity.FocusSession) int { return byTime(a.CreatedAt, b.CreatedAt, a.ID, b.ID) },
}

var Notes = &Table[entity.Note]{
	Name:       "notes",
	Columns:    []string{"content", "created_at"},
	DateColumn: "created_at",
	Timestamp:  true,
	OrderBy:    "created_at, id",
	Base:       func(r *entity.Note) *entity.Base { return &r.Base },
	Values:     func(r *entity.Note) []any { return []any{r.Content, r.CreatedAt} },
	Fields:     func(r *entity.Note) []any { return []any{&r.Content, &r.CreatedAt} },
	Day:        func(r *entity.Note, loc *time.Location) dates.Date { return dayOf(r.CreatedAt, loc) },
	Compare:    func(a, b *entity.Note) int { return byTime(a.CreatedAt, b.CreatedAt, a.ID, b.ID) },
}

var Reflections = &Table[entity.Reflection]{
	Name:       "reflections",
	Columns:    []string{"reflection_date", "content", "mood"},
	DateColumn: "reflection_date",
	OrderBy:    "reflection_date, id",
	Base:       func(r *entity.Reflection) *entity.Base { return &r.Base },
	Values:     func(r *entity.Reflection) []any { return []any{r.ReflectionDate, r.Content, r.Mood} },
	Fields:     func(r *entity.Reflection) []any { return []any{&r.ReflectionDate, &r.Content, &r.Mood} },
	Day:        func(r *entity.Reflection, _ *time.Location) dates.Date { return r.ReflectionDate },
	Compare: func(a, b *entity.Reflection) int {
		return byDate(a.ReflectionDate, b.ReflectionDate, a.ID, b.ID)
	},
}

var ProjectTasks = &Table[entity.ProjectTask]{
	Name:       "project_tasks",
	Columns:    []string{"project", "title", "status", "created_date"},
	DateColumn: "created_date",
	OrderBy:    "created_date, id",
	Base:       func(r *entity.ProjectTask) *entity.Base { return &r.Base },
	Values: func(r *entity.ProjectTask) []any {
		return []any{r.Project, r.Title, r.Status, r.CreatedDate}
	},
	Fields: func(r *entity.ProjectTask) []any {
		return []any{&r.Project, &r.Title, &r.Status, &r.CreatedDate}
	},
	Day:     func(r *entity.ProjectTask, _ *time.Location) dates.Date { return r.CreatedDate },
	Compare: func(a, b *entity.ProjectTask) int { return byDate(a.CreatedDate, b.CreatedDate, a.ID, b.ID) },
}
