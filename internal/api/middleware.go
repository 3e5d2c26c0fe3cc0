package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/lifeboard/internal/error_values"
	"github.com/limbo/lifeboard/pkg/dates"
	"github.com/limbo/lifeboard/pkg/httputil"
)

var (
	requestIDKContextKey = "Request-ID"
	loggerContextKey     = "Logger"
	uidContextKey        = "User-ID"
	locationContextKey   = "Location"
	todayContextKey      = "Today"
)

const timezoneHeader = "X-Timezone"

func (s *Server) RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := uuid.New()
		ctx := context.WithValue(r.Context(), requestIDKContextKey, reqID.String())
		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) SettingUpLoggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := slog.Default()
		reqID, ok := r.Context().Value(requestIDKContextKey).(string)
		if ok && reqID != "" {
			logger = logger.With(slog.String("request_id", reqID))
		}
		logger = logger.With(slog.String("from", r.RemoteAddr))
		ctx := context.WithValue(r.Context(), loggerContextKey, logger)
		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) LoggerExtensionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLoggerFromCtx(r.Context())
		if uid, err := GetUIDFromContext(r); err == nil {
			logger = logger.With(slog.String("uid", uid.String()))
		}
		ctx := context.WithValue(r.Context(), loggerContextKey, logger)
		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}

// AuthMiddleware puts the caller's uid into the context. In guest mode every
// request belongs to the guest user and no token is read.
func (s *Server) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.guestUID != uuid.Nil {
			ctx := context.WithValue(r.Context(), uidContextKey, s.guestUID)
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}
		logger := GetLoggerFromCtx(r.Context())
		if s.jwtService == nil {
			logger.Error("auth failed: no token service configured")
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "authorization unavailable", nil)
			return
		}
		// Getting token from header
		tokenString, err := GetTokenFromHeader(r)
		if err != nil {
			logger.Error("auth failed: invalid token")
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, "authorization failed: invalid token", nil)
			return
		}
		// Expiry and signature are checked while parsing
		tokenClaims, err := s.jwtService.ParseToken(tokenString)
		if err != nil {
			if errors.Is(err, errorvalues.ErrInvalidToken) {
				logger.Error("auth failed: error parsing token", slog.String("error", err.Error()))
				httputil.WriteErrorResponse(w, http.StatusUnauthorized, "authorization failed: invalid token", nil)
				return
			}
			logger.Error("auth failed: internal error while parsing token", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error parsing token", nil)
			return
		}
		uid, err := uuid.Parse(tokenClaims.Subject)
		if err != nil {
			logger.Error("invalid uid in token claims")
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, "invalid token payload", nil)
			return
		}
		ctx := context.WithValue(r.Context(), uidContextKey, uid)
		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}

// TimezoneMiddleware resolves the caller's location from the X-Timezone
// header. "Today" of every request is computed in it.
func (s *Server) TimezoneMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		loc := s.location
		if name := strings.TrimSpace(r.Header.Get(timezoneHeader)); name != "" {
			parsed, err := dates.LoadLocation(name)
			if err != nil {
				GetLoggerFromCtx(r.Context()).Error("unknown timezone in header", slog.String("timezone", name))
				httputil.WriteErrorResponse(w, http.StatusBadRequest, "unknown timezone", err)
				return
			}
			loc = parsed
		}
		ctx := context.WithValue(r.Context(), locationContextKey, loc)
		ctx = context.WithValue(ctx, todayContextKey, dates.Today(s.clock, loc))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(loggerContextKey).(*slog.Logger)
	if ok {
		return logger
	}
	return slog.Default()
}

func GetTokenFromHeader(r *http.Request) (string, error) {
	token := r.Header.Get("Authorization")
	if token == "" {
		return "", errorvalues.ErrInvalidToken
	}
	parts := strings.Split(token, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", errorvalues.ErrInvalidToken
	}
	return parts[1], nil
}

func GetUIDFromContext(r *http.Request) (uuid.UUID, error) {
	uid, ok := r.Context().Value(uidContextKey).(uuid.UUID)
	if !ok {
		return uuid.UUID{}, errors.New("uid invalid or doesn't exists")
	}
	return uid, nil
}

// GetLocationFromCtx returns the location set by TimezoneMiddleware, time.Local without one.
func GetLocationFromCtx(ctx context.Context) *time.Location {
	if loc, ok := ctx.Value(locationContextKey).(*time.Location); ok && loc != nil {
		return loc
	}
	return time.Local
}

func locationOf(r *http.Request) *time.Location {
	return GetLocationFromCtx(r.Context())
}

// today is the calendar day of the request in its location, as resolved by
// TimezoneMiddleware.
func today(r *http.Request) dates.Date {
	if d, ok := r.Context().Value(todayContextKey).(dates.Date); ok {
		return d
	}
	return dates.Today(dates.SystemClock{}, locationOf(r))
}
