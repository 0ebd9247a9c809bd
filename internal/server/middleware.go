package server

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/tomasen/realip"

	"github.com/hearthy-foundation/hearth/internal/entities"
	"github.com/hearthy-foundation/hearth/internal/session"
)

type contextKey string

const (
	requestIDKey contextKey = "request_id"
	profileKey   contextKey = "profile"
	tokenKey     contextKey = "token"
)

func requestID(ctx context.Context) string {
	if v, ok := ctx.Value(requestIDKey).(string); ok {
		return v
	}

	return ""
}

func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()

		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)))
	})
}

func loggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		logrus.WithFields(logrus.Fields{
			"request_id": requestID(r.Context()),
			"ip":         realip.FromRequest(r),
			"method":     r.Method,
			"uri":        r.RequestURI,
			"status":     ww.Status(),
			"elapsed":    time.Since(start),
		}).Debug()
	})
}

func recovererMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rvr := recover(); rvr != nil && rvr != http.ErrAbortHandler {
				logrus.WithFields(logrus.Fields{
					"request_id": requestID(r.Context()),
					"panic":      rvr,
				}).Error("recovered from panic")

				writeError(w, http.StatusInternalServerError, "internal error")
			}
		}()

		next.ServeHTTP(w, r)
	})
}

func bodyLimiterMiddleware(maxSize int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxSize)

			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return ""
	}

	return strings.TrimPrefix(h, "Bearer ")
}

// authMiddleware resolves the bearer token into a profile and rejects
// requests without a valid session.
func (s server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			writeError(w, http.StatusUnauthorized, "authorization required")
			return
		}

		p, err := s.sm.Current(r.Context(), token)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "session expired or invalid")
			return
		}

		ctx := context.WithValue(r.Context(), profileKey, p)
		ctx = context.WithValue(ctx, tokenKey, token)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// optionalAuthMiddleware resolves the bearer token when present, anonymous
// requests pass through.
func (s server) optionalAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if token := bearerToken(r); token != "" {
			if p, err := s.sm.Current(r.Context(), token); err == nil {
				ctx := context.WithValue(r.Context(), profileKey, p)
				ctx = context.WithValue(ctx, tokenKey, token)
				r = r.WithContext(ctx)
			} else if !errors.Is(err, session.ErrNotFound) {
				writeInternalError(r.Context(), w, "failed to resolve session: "+err.Error())
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}

func profileFromContext(ctx context.Context) *entities.Profile {
	if p, ok := ctx.Value(profileKey).(*entities.Profile); ok {
		return p
	}

	return nil
}

func tokenFromContext(ctx context.Context) string {
	if t, ok := ctx.Value(tokenKey).(string); ok {
		return t
	}

	return ""
}
