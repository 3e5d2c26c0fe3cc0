package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/limbo/lifeboard/internal/service"
	"github.com/limbo/lifeboard/pkg/dates"
	"github.com/limbo/lifeboard/pkg/entity"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	mx                 *chi.Mux
	records            RecordsList
	habitsService      service.HabitsServiceI
	scheduleService    service.ScheduleServiceI
	consistencyService service.ConsistencyServiceI
	preferencesService service.PreferencesServiceI
	jwtService         JWTServiceI
	guestUID           uuid.UUID
	location           *time.Location
	clock              dates.Clock
}

// RecordsList holds the plain CRUD services. Nil entries aren't mounted.
type RecordsList struct {
	Todos         service.RecordsServiceI[entity.Todo]
	DSAProblems   service.RecordsServiceI[entity.DSAProblem]
	GymCheckins   service.RecordsServiceI[entity.GymCheckin]
	FocusSessions service.RecordsServiceI[entity.FocusSession]
	Notes         service.RecordsServiceI[entity.Note]
	Reflections   service.RecordsServiceI[entity.Reflection]
	ProjectTasks  service.RecordsServiceI[entity.ProjectTask]
}

type ServicesList struct {
	Records            RecordsList
	HabitsService      service.HabitsServiceI
	ScheduleService    service.ScheduleServiceI
	ConsistencyService service.ConsistencyServiceI
	PreferencesService service.PreferencesServiceI
	JwtService         JWTServiceI
	// GuestUID, when not nil, authenticates every request as this user without a token
	GuestUID uuid.UUID
	// Location is used when a request carries no X-Timezone header
	Location *time.Location
	// Clock decides what "today" is. Defaults to the system clock
	Clock dates.Clock
}

func New(servicesOptions *ServicesList) *Server {
	loc := servicesOptions.Location
	if loc == nil {
		loc = time.Local
	}
	clock := servicesOptions.Clock
	if clock == nil {
		clock = dates.SystemClock{}
	}
	return &Server{
		mx:                 chi.NewMux(),
		records:            servicesOptions.Records,
		habitsService:      servicesOptions.HabitsService,
		scheduleService:    servicesOptions.ScheduleService,
		consistencyService: servicesOptions.ConsistencyService,
		preferencesService: servicesOptions.PreferencesService,
		jwtService:         servicesOptions.JwtService,
		guestUID:           servicesOptions.GuestUID,
		location:           loc,
		clock:              clock,
	}
}

func (s *Server) MountEndpoints() {
	s.mx.Use(middleware.Recoverer)
	s.mx.Get("/healthz", s.Healthz)
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware, s.AuthMiddleware,
			s.LoggerExtensionMiddleware, s.TimezoneMiddleware)

		mountRecords(r, "/todos", s.records.Todos)
		mountRecords(r, "/dsa-problems", s.records.DSAProblems)
		mountRecords(r, "/gym-checkins", s.records.GymCheckins)
		mountRecords(r, "/focus-sessions", s.records.FocusSessions)
		mountRecords(r, "/notes", s.records.Notes)
		mountRecords(r, "/reflections", s.records.Reflections)
		mountRecords(r, "/project-tasks", s.records.ProjectTasks)

		r.Route("/habits", func(r chi.Router) {
			r.Get("/", s.GetHabits)
			r.Post("/", s.CreateHabit)
			r.Get("/{id}", s.GetHabit)
			r.Delete("/{id}", s.DeleteHabit)
			r.Get("/{id}/stats", s.GetHabitStats)
			r.Get("/{id}/completions", s.GetHabitCompletions)
			r.Post("/{id}/completions/{date}", s.CompleteHabit)
			r.Delete("/{id}/completions/{date}", s.UncompleteHabit)
		})
		r.Route("/blocks", func(r chi.Router) {
			r.Get("/", s.GetBlocks)
			r.Post("/", s.AddBlock)
			r.Get("/current", s.GetCurrentBlock)
			r.Post("/seed", s.SeedBlocks)
			r.Patch("/{id}/toggle", s.ToggleBlock)
			r.Delete("/{id}", s.DeleteBlock)
		})
		r.Get("/streaks/{activity}", s.GetStreak)
		r.Get("/heatmap", s.GetHeatmap)
		r.Get("/overview", s.GetOverview)
		r.Route("/preferences/{feature}", func(r chi.Router) {
			r.Get("/", s.GetPreference)
			r.Put("/", s.PutPreference)
			r.Delete("/", s.DeletePreference)
		})
	})
}

func (s *Server) Handler() http.Handler {
	return s.mx
}

// Run serves on addr until ctx is done, then drains in-flight requests.
func (s *Server) Run(ctx context.Context, addr string) error {
	s.MountEndpoints()
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.mx,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("api listening", slog.String("address", addr))
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	slog.Info("shutting down api")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
