package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/lifeboard/internal/api"
	"github.com/limbo/lifeboard/internal/repository"
	"github.com/limbo/lifeboard/internal/service"
	"github.com/limbo/lifeboard/pkg/cleanup"
	"github.com/limbo/lifeboard/pkg/config"
	"github.com/limbo/lifeboard/pkg/dates"
	"github.com/limbo/lifeboard/pkg/entity"
	"github.com/limbo/lifeboard/pkg/events"
	jwtservice "github.com/limbo/lifeboard/pkg/jwt_service"
)

// Buffer of the overview invalidation subscription
const changesBuffer = 256

// GuestUID owns every row served in guest mode.
var GuestUID = uuid.MustParse("00000000-0000-4000-8000-00000000beef")

type Options struct {
	// GuestMode serves everything from memory and skips authentication
	GuestMode bool
	// GuestStatePath keeps guest preferences in a sqlite file. Empty keeps them in memory
	GuestStatePath string
	DB             repository.DBConfig
	// Conn replaces the pool opened from DB
	Conn        repository.PgConnection
	JWTSecret   string
	JWTAudience string
	Location    *time.Location
	Cache       service.CacheOpts
	Clock       dates.Clock
}

func OptionsFromConfig(cfg *config.Config) (Options, error) {
	loc, err := dates.LoadLocation(cfg.GetStringOr("TIMEZONE", "Local"))
	if err != nil {
		return Options{}, err
	}
	return Options{
		GuestMode:      cfg.GetBool("GUEST_MODE", false),
		GuestStatePath: cfg.GetString("GUEST_STATE_PATH"),
		DB: &repository.PGCfg{
			Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
			Username: cfg.GetString("POSTGRES_USER"),
			Password: cfg.GetString("POSTGRES_PASSWORD"),
			DB:       cfg.GetString("POSTGRES_DB"),
			SSLMode:  cfg.GetString("POSTGRES_SSLMODE"),
		},
		JWTSecret:   cfg.GetString("JWT_SECRET"),
		JWTAudience: cfg.GetString("JWT_AUDIENCE"),
		Location:    loc,
		Cache: service.CacheOpts{
			Size: cfg.GetInt("OVERVIEW_CACHE_SIZE", 256),
			TTL:  cfg.GetDuration("OVERVIEW_CACHE_TTL", time.Minute),
		},
	}, nil
}

type App struct {
	Backends    *repository.Backends
	Server      *api.Server
	Consistency *service.ConsistencyService
	changes     <-chan events.Change
}

// New picks the backends by opts.GuestMode and wires the services on top of them.
func New(ctx context.Context, opts Options) (*App, error) {
	if opts.Clock == nil {
		opts.Clock = dates.SystemClock{}
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	var (
		b   *repository.Backends
		err error
	)
	if opts.GuestMode {
		b, err = guestBackends(ctx, opts)
	} else {
		b, err = remoteBackends(ctx, opts)
	}
	if err != nil {
		return nil, err
	}

	broker := events.NewBroker()
	cleanup.Register(&cleanup.Job{
		Name: "closing change broker",
		F: func() error {
			broker.Close()
			return nil
		},
	})
	changes, _ := broker.Subscribe(changesBuffer)
	observed := b.Observe(broker)

	consistencyService := service.NewConsistencyService(observed, opts.Clock, opts.Cache)
	services := &api.ServicesList{
		Records:            recordsOf(observed, opts.Clock),
		HabitsService:      service.NewHabitsService(observed.Habits, observed.HabitCompletions, opts.Clock),
		ScheduleService:    service.NewScheduleService(observed.DailyBlocks, observed.Preferences, opts.Clock),
		ConsistencyService: consistencyService,
		PreferencesService: service.NewPreferencesService(observed.Preferences),
		Location:           opts.Location,
		Clock:              opts.Clock,
	}
	if opts.JWTSecret != "" {
		services.JwtService = jwtservice.New(opts.JWTSecret, opts.JWTAudience)
	}
	if opts.GuestMode {
		services.GuestUID = GuestUID
	} else if services.JwtService == nil {
		return nil, errors.New("JWT_SECRET is required outside guest mode")
	}
	return &App{
		Backends:    observed,
		Server:      api.New(services),
		Consistency: consistencyService,
		changes:     changes,
	}, nil
}

// Start keeps the overview cache in step with writes until ctx is done.
func (a *App) Start(ctx context.Context) {
	go a.Consistency.Watch(ctx, a.changes)
}

func (a *App) Run(ctx context.Context, addr string) error {
	a.Start(ctx)
	return a.Server.Run(ctx, addr)
}

func guestBackends(ctx context.Context, opts Options) (*repository.Backends, error) {
	b := repository.NewMemoryBackends()
	now := opts.Clock.Now().In(opts.Location)
	if err := repository.SeedGuestFixture(ctx, b, GuestUID, dates.Of(now), now); err != nil {
		return nil, fmt.Errorf("seeding guest fixture: %w", err)
	}
	if opts.GuestStatePath != "" {
		prefs, err := repository.NewSQLiteScopedStore(opts.GuestStatePath)
		if err != nil {
			return nil, err
		}
		b.Preferences = prefs
	}
	slog.Info("serving guest mode", slog.String("uid", GuestUID.String()))
	return b, nil
}

func remoteBackends(ctx context.Context, opts Options) (*repository.Backends, error) {
	conn := opts.Conn
	if conn == nil {
		if opts.DB == nil {
			return nil, errors.New("no database configured")
		}
		pool, err := repository.Connect(ctx, opts.DB)
		if err != nil {
			return nil, err
		}
		conn = pool
	}
	return repository.NewPostgresBackends(conn), nil
}

func recordsOf(b *repository.Backends, clock dates.Clock) api.RecordsList {
	return api.RecordsList{
		Todos:         service.NewRecordsService[entity.Todo](b.Todos, repository.Todos, clock, service.TodoDefaults),
		DSAProblems:   service.NewRecordsService[entity.DSAProblem](b.DSAProblems, repository.DSAProblems, clock, service.DSAProblemDefaults),
		GymCheckins:   service.NewRecordsService[entity.GymCheckin](b.GymCheckins, repository.GymCheckins, clock, service.GymCheckinDefaults),
		FocusSessions: service.NewRecordsService[entity.FocusSession](b.FocusSessions, repository.FocusSessions, clock, service.FocusSessionDefaults),
		Notes:         service.NewRecordsService[entity.Note](b.Notes, repository.Notes, clock, service.NoteDefaults),
		Reflections:   service.NewRecordsService[entity.Reflection](b.Reflections, repository.Reflections, clock, service.ReflectionDefaults),
		ProjectTasks:  service.NewRecordsService[entity.ProjectTask](b.ProjectTasks, repository.ProjectTasks, clock, service.ProjectTaskDefaults),
	}
}
