package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/lifeboard/pkg/dates"
	"github.com/limbo/lifeboard/pkg/entity"
)

// SeedGuestFixture fills b with a small, plausible week of activity for uid
// so a guest sees populated cards. Dates are relative to today.
func SeedGuestFixture(ctx context.Context, b *Backends, uid uuid.UUID, today dates.Date, now time.Time) error {
	habits := []entity.Habit{
		{Name: "Read 20 pages", Category: "learning", Color: "#3b82f6", Icon: "📚", CurrentStreak: 3, BestStreak: 3, TargetFrequency: 7},
		{Name: "Meditate", Category: "mind", Color: "#8b5cf6", Icon: "🧘", CurrentStreak: 0, BestStreak: 3, TargetFrequency: 5},
		{Name: "Drink water", Category: "health", Color: "#06b6d4", Icon: "💧", CurrentStreak: 1, BestStreak: 1, TargetFrequency: 7},
	}
	completedAgo := [][]int{{0, 1, 2}, {1, 2, 3, 5}, {0}}
	for i := range habits {
		if err := b.Habits.Insert(ctx, uid, &habits[i]); err != nil {
			return err
		}
		for _, n := range completedAgo[i] {
			c := entity.HabitCompletion{HabitID: habits[i].ID, CompletedDate: dates.DaysAgo(today, n)}
			if err := b.HabitCompletions.Insert(ctx, uid, &c); err != nil {
				return err
			}
		}
	}

	todos := []entity.Todo{
		{Text: "Review pull requests", Completed: true, Priority: "high", Category: "work", CreatedDate: today},
		{Text: "Plan the week", Priority: "medium", Category: "personal", CreatedDate: today},
		{Text: "Call the dentist", Priority: "low", Category: "personal", CreatedDate: today},
	}
	for i := range todos {
		if err := b.Todos.Insert(ctx, uid, &todos[i]); err != nil {
			return err
		}
	}

	problems := []entity.DSAProblem{
		{ProblemName: "Two Sum", Difficulty: "easy", Topic: "arrays", SolvedDate: today},
		{ProblemName: "Merge Intervals", Difficulty: "medium", Topic: "sorting", SolvedDate: dates.DaysAgo(today, 1)},
		{ProblemName: "LRU Cache", Difficulty: "medium", Topic: "design", SolvedDate: dates.DaysAgo(today, 2)},
		{ProblemName: "Word Ladder", Difficulty: "hard", Topic: "graphs", SolvedDate: dates.DaysAgo(today, 4)},
	}
	for i := range problems {
		if err := b.DSAProblems.Insert(ctx, uid, &problems[i]); err != nil {
			return err
		}
	}

	for _, n := range []int{1, 2, 3} {
		c := entity.GymCheckin{CheckinDate: dates.DaysAgo(today, n), CheckinTime: "07:30"}
		if err := b.GymCheckins.Insert(ctx, uid, &c); err != nil {
			return err
		}
	}

	blocks := []entity.DailyBlock{
		{TimeSlot: "06:00-07:00", Task: "Morning routine", Emoji: "🌅", BlockType: "personal"},
		{TimeSlot: "07:00-08:30", Task: "Gym", Emoji: "🏋️", BlockType: "health"},
		{TimeSlot: "09:00-12:00", Task: "Deep work", Emoji: "💻", BlockType: "work"},
		{TimeSlot: "13:00-14:00", Task: "DSA practice", Emoji: "🧠", BlockType: "learning"},
		{TimeSlot: "14:00-18:00", Task: "Meetings and reviews", Emoji: "📋", BlockType: "work"},
		{TimeSlot: "21:00-22:00", Task: "Reading", Emoji: "📚", BlockType: "personal"},
	}
	for i := range blocks {
		blocks[i].Date = today
		blocks[i].IsActive = true
		if err := b.DailyBlocks.Insert(ctx, uid, &blocks[i]); err != nil {
			return err
		}
	}

	sessions := []entity.FocusSession{
		{SessionType: "focus", DurationMinutes: 25, Completed: true, CreatedAt: now.Add(-2 * time.Hour)},
		{SessionType: "short_break", DurationMinutes: 5, Completed: true, CreatedAt: now.Add(-95 * time.Minute)},
		{SessionType: "focus", DurationMinutes: 25, Completed: true, Notes: "refactoring", CreatedAt: now.Add(-time.Hour)},
	}
	for i := range sessions {
		if err := b.FocusSessions.Insert(ctx, uid, &sessions[i]); err != nil {
			return err
		}
	}

	note := entity.Note{Content: "Ideas: automate weekly review.", CreatedAt: now.Add(-24 * time.Hour)}
	if err := b.Notes.Insert(ctx, uid, &note); err != nil {
		return err
	}
	reflection := entity.Reflection{ReflectionDate: dates.DaysAgo(today, 1), Content: "Shipped the parser, slept late.", Mood: 4}
	if err := b.Reflections.Insert(ctx, uid, &reflection); err != nil {
		return err
	}
	tasks := []entity.ProjectTask{
		{Project: "lifeboard", Title: "Heatmap legend", Status: "doing", CreatedDate: dates.DaysAgo(today, 3)},
		{Project: "lifeboard", Title: "Export reflections", Status: "todo", CreatedDate: today},
	}
	for i := range tasks {
		if err := b.ProjectTasks.Insert(ctx, uid, &tasks[i]); err != nil {
			return err
		}
	}
	return nil
}
