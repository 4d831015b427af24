package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/myniu/internal/error_values"
	"github.com/limbo/myniu/pkg/httputil"
)

var (
	requestIDKContextKey = "Request-ID"
	loggerContextKey     = "Logger"
	uidContextKey        = "User-ID"
)

func (s *Server) RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), requestIDKContextKey, uuid.NewString())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SettingUpLoggerMiddleware puts a request-scoped slog logger into the
// context, tagged with the request id and the caller address.
func (s *Server) SettingUpLoggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := slog.Default()
		if reqID, ok := r.Context().Value(requestIDKContextKey).(string); ok && reqID != "" {
			logger = logger.With(slog.String("request_id", reqID))
		}
		logger = logger.With(slog.String("from", r.RemoteAddr))
		ctx := context.WithValue(r.Context(), loggerContextKey, logger)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// LoggerExtensionMiddleware re-tags the context logger with the user id
// once AuthMiddleware has resolved it.
func (s *Server) LoggerExtensionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLoggerFromCtx(r.Context())
		if userID, ok := r.Context().Value(uidContextKey).(uuid.UUID); ok {
			logger = logger.With(slog.String("uid", userID.String()))
		}
		ctx := context.WithValue(r.Context(), loggerContextKey, logger)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AuthMiddleware checks the bearer token, verifies its window, and
// confirms the user still exists before letting the request through.
// The resolved user id lands in the request context.
func (s *Server) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLoggerFromCtx(r.Context())
		tokenString, err := GetTokenFromHeader(r)
		if err != nil {
			logger.Error("auth failed: no bearer token")
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, "authorization failed: invalid token", nil)
			return
		}
		tokenClaims, err := s.jwtService.ParseToken(tokenString)
		if err != nil {
			if !errors.Is(err, errorvalues.ErrInvalidToken) {
				logger.Error("auth failed: token parsing error", slog.String("error", err.Error()))
			} else {
				logger.Error("auth failed: malformed token")
			}
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, "authorization failed: invalid token", nil)
			return
		}
		now := time.Now()
		if tokenClaims.ExpiresAt.Time.Before(now) || tokenClaims.NotBefore.Time.After(now) {
			logger.Error("auth failed: token outside validity window")
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, "token expired or not ready", nil)
			return
		}
		uid, err := uuid.Parse(tokenClaims.UserID)
		if err != nil {
			logger.Error("auth failed: invalid uid in token claims")
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, "invalid token payload", nil)
			return
		}
		// Tokens outlive accounts, so membership is rechecked per request
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		defer cancel()
		if _, err = s.userService.GetByID(ctx, uid); err != nil {
			if errors.Is(err, errorvalues.ErrUserNotFound) {
				logger.Error("auth failed: user no longer exists")
				httputil.WriteErrorResponse(w, http.StatusNotFound, "auth failed: user not found", nil)
				return
			}
			logger.Error("auth failed: user lookup error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while searching for user", nil)
			return
		}
		ctx = context.WithValue(r.Context(), uidContextKey, uid)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerContextKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

func GetTokenFromHeader(r *http.Request) (string, error) {
	token, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !found || token == "" {
		return "", errorvalues.ErrInvalidToken
	}
	return token, nil
}

func GetUIDFromContext(r *http.Request) (uuid.UUID, error) {
	uid, ok := r.Context().Value(uidContextKey).(uuid.UUID)
	if !ok {
		return uuid.UUID{}, errors.New("uid invalid or doesn't exists")
	}
	return uid, nil
}
