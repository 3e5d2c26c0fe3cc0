package api_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/limbo/lifeboard/internal/api"
	"github.com/limbo/lifeboard/internal/service/mocks"
	"github.com/limbo/lifeboard/pkg/dates"
	"github.com/limbo/lifeboard/pkg/entity"
	jwtservice "github.com/limbo/lifeboard/pkg/jwt_service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testHandler(w http.ResponseWriter, r *http.Request) {
	uid, err := api.GetUIDFromContext(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"uid": "` + uid.String() + `"}`))
}

func TestAuthMiddleware(t *testing.T) {
	secret := "secret"
	jwtService := jwtservice.New(secret, "authenticated")
	serv := api.New(&api.ServicesList{
		JwtService: jwtService,
	})
	handler := serv.AuthMiddleware(http.HandlerFunc(testHandler))
	token, err := jwtService.GenerateToken(userID, time.Hour)
	require.NoError(t, err)

	t.Run("successful auth", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/endpoint", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		assert.Contains(t, rr.Body.String(), userID.String())
	})
	t.Run("no header", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/endpoint", nil)
		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
	t.Run("wrong scheme", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/endpoint", nil)
		req.Header.Set("Authorization", "Basic "+token)
		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
	t.Run("foreign signature", func(t *testing.T) {
		forged, err := jwtservice.New("other", "authenticated").GenerateToken(userID, time.Hour)
		require.NoError(t, err)
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/endpoint", nil)
		req.Header.Set("Authorization", "Bearer "+forged)
		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
	t.Run("expired", func(t *testing.T) {
		expired, err := jwtService.GenerateToken(userID, -time.Minute)
		require.NoError(t, err)
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/endpoint", nil)
		req.Header.Set("Authorization", "Bearer "+expired)
		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
}

func TestAuthMiddlewareGuest(t *testing.T) {
	guest := uuid.New()
	t.Run("guest needs no token", func(t *testing.T) {
		serv := api.New(&api.ServicesList{GuestUID: guest})
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/endpoint", nil)
		serv.AuthMiddleware(http.HandlerFunc(testHandler)).ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		assert.Contains(t, rr.Body.String(), guest.String())
	})
	t.Run("no verifier configured", func(t *testing.T) {
		serv := api.New(&api.ServicesList{})
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/endpoint", nil)
		req.Header.Set("Authorization", "Bearer token")
		serv.AuthMiddleware(http.HandlerFunc(testHandler)).ServeHTTP(rr, req)
		assert.Equal(t, http.StatusInternalServerError, rr.Result().StatusCode)
	})
}

func TestTimezoneMiddleware(t *testing.T) {
	serv := api.New(&api.ServicesList{Location: time.UTC})
	var seen *time.Location
	handler := serv.TimezoneMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = api.GetLocationFromCtx(r.Context())
		w.WriteHeader(http.StatusOK)
	}))
	testCases := []struct {
		Desc         string
		Header       string
		ExpectedCode int
		ExpectedLoc  string
	}{
		{Desc: "server default", ExpectedCode: http.StatusOK, ExpectedLoc: "UTC"},
		{Desc: "header wins", Header: "Local", ExpectedCode: http.StatusOK, ExpectedLoc: time.Local.String()},
		{Desc: "unknown zone", Header: "Mars/Olympus_Mons", ExpectedCode: http.StatusBadRequest},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			seen = nil
			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/endpoint", nil)
			if tc.Header != "" {
				req.Header.Set("X-Timezone", tc.Header)
			}
			handler.ServeHTTP(rr, req)
			assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
			if tc.ExpectedCode == http.StatusOK {
				require.NotNil(t, seen)
				assert.Equal(t, tc.ExpectedLoc, seen.String())
			} else {
				assert.Nil(t, seen)
			}
		})
	}
}

func TestRouting(t *testing.T) {
	ctrl := gomock.NewController(t)
	hService := mocks.NewMockHabitsServiceI(ctrl)
	guest := uuid.New()
	habitID := uuid.New()
	serv := api.New(&api.ServicesList{
		HabitsService: hService,
		GuestUID:      guest,
		Location:      time.UTC,
	})
	serv.MountEndpoints()

	t.Run("health", func(t *testing.T) {
		rr := httptest.NewRecorder()
		serv.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("route parameters reach the handler", func(t *testing.T) {
		hService.EXPECT().GetHabit(gomock.Any(), habitID, guest).
			Return(&entity.Habit{Base: entity.Base{ID: habitID, UserID: guest}, Name: "Read"}, nil)
		rr := httptest.NewRecorder()
		serv.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/habits/"+habitID.String(), nil))
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("unmounted records", func(t *testing.T) {
		rr := httptest.NewRecorder()
		serv.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/todos/", nil))
		assert.Equal(t, http.StatusNotFound, rr.Result().StatusCode)
	})
}

func TestTodayFollowsClock(t *testing.T) {
	ctrl := gomock.NewController(t)
	hService := mocks.NewMockHabitsServiceI(ctrl)
	guest := uuid.New()
	habitID := uuid.New()
	// 23:30 UTC on the 4th is the 5th at UTC+2
	clock := dates.FixedClock{At: time.Date(2024, time.January, 4, 23, 30, 0, 0, time.UTC)}
	serv := api.New(&api.ServicesList{
		HabitsService: hService,
		GuestUID:      guest,
		Location:      time.UTC,
		Clock:         clock,
	})
	serv.MountEndpoints()

	testCases := []struct {
		Desc     string
		Timezone string
		Expected dates.Date
	}{
		{Desc: "server location", Expected: dates.New(2024, time.January, 4)},
		{Desc: "request location", Timezone: "Etc/GMT-2", Expected: dates.New(2024, time.January, 5)},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			hService.EXPECT().CompleteHabit(gomock.Any(), habitID, guest, tc.Expected, gomock.Any()).
				Return(&entity.HabitCompletion{HabitID: habitID, CompletedDate: tc.Expected}, nil)
			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/habits/"+habitID.String()+"/completions/today", nil)
			if tc.Timezone != "" {
				req.Header.Set("X-Timezone", tc.Timezone)
			}
			serv.Handler().ServeHTTP(rr, req)
			assert.Equal(t, http.StatusCreated, rr.Result().StatusCode)
		})
	}
}
