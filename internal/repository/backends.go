package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/limbo/lifeboard/pkg/cleanup"
	"github.com/limbo/lifeboard/pkg/entity"
	"github.com/limbo/lifeboard/pkg/events"
)

// Backends bundles one store per table plus the preferences store.
type Backends struct {
	Todos            Store[entity.Todo]
	Habits           Store[entity.Habit]
	HabitCompletions Store[entity.HabitCompletion]
	DSAProblems      Store[entity.DSAProblem]
	GymCheckins      Store[entity.GymCheckin]
	DailyBlocks      Store[entity.DailyBlock]
	FocusSessions    Store[entity.FocusSession]
	Notes            Store[entity.Note]
	Reflections      Store[entity.Reflection]
	ProjectTasks     Store[entity.ProjectTask]
	Preferences      ScopedStore
}

func NewPostgresBackends(conn PgConnection) *Backends {
	return &Backends{
		Todos:            NewPostgresStore(conn, Todos),
		Habits:           NewPostgresStore(conn, Habits),
		HabitCompletions: NewPostgresStore(conn, HabitCompletions),
		DSAProblems:      NewPostgresStore(conn, DSAProblems),
		GymCheckins:      NewPostgresStore(conn, GymCheckins),
		DailyBlocks:      NewPostgresStore(conn, DailyBlocks),
		FocusSessions:    NewPostgresStore(conn, FocusSessions),
		Notes:            NewPostgresStore(conn, Notes),
		Reflections:      NewPostgresStore(conn, Reflections),
		ProjectTasks:     NewPostgresStore(conn, ProjectTasks),
		Preferences:      NewPgScopedStore(conn),
	}
}

func NewMemoryBackends() *Backends {
	return &Backends{
		Todos:            NewMemoryStore(Todos),
		Habits:           NewMemoryStore(Habits),
		HabitCompletions: NewMemoryStore(HabitCompletions),
		DSAProblems:      NewMemoryStore(DSAProblems),
		GymCheckins:      NewMemoryStore(GymCheckins),
		DailyBlocks:      NewMemoryStore(DailyBlocks),
		FocusSessions:    NewMemoryStore(FocusSessions),
		Notes:            NewMemoryStore(Notes),
		Reflections:      NewMemoryStore(Reflections),
		ProjectTasks:     NewMemoryStore(ProjectTasks),
		Preferences:      NewMemoryScopedStore(),
	}
}

// Observe returns a copy of b whose row stores publish changes to pub.
func (b *Backends) Observe(pub events.Publisher) *Backends {
	return &Backends{
		Todos:            NewObserved(b.Todos, Todos, pub),
		Habits:           NewObserved(b.Habits, Habits, pub),
		HabitCompletions: NewObserved(b.HabitCompletions, HabitCompletions, pub),
		DSAProblems:      NewObserved(b.DSAProblems, DSAProblems, pub),
		GymCheckins:      NewObserved(b.GymCheckins, GymCheckins, pub),
		DailyBlocks:      NewObserved(b.DailyBlocks, DailyBlocks, pub),
		FocusSessions:    NewObserved(b.FocusSessions, FocusSessions, pub),
		Notes:            NewObserved(b.Notes, Notes, pub),
		Reflections:      NewObserved(b.Reflections, Reflections, pub),
		ProjectTasks:     NewObserved(b.ProjectTasks, ProjectTasks, pub),
		Preferences:      b.Preferences,
	}
}

// Connect opens a pool to the remote store and registers its closing.
func Connect(ctx context.Context, cfg DBConfig) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, cfg.ConnString())
	if err != nil {
		return nil, fmt.Errorf("creating connection pool error: %w", err)
	}
	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging connection pool error: %w", err)
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return pool, nil
}
