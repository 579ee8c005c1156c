package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/we2pos/backend/internal/auth/jwt"
	"github.com/we2pos/backend/internal/config"
	"github.com/we2pos/backend/internal/hdl"
	"github.com/we2pos/backend/internal/hdl/http/utils"
	metrics "github.com/we2pos/backend/internal/observability/metrics/prometheus"
	"go.uber.org/zap"
)

// Auth guards a route with a bearer token. The parsed uid and email are
// placed on the request context.
func Auth(au jwt.Port) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				header := r.Header.Get("Authorization")
				token, ok := strings.CutPrefix(header, "Bearer ")
				if !ok || token == "" {
					utils.ErrResponse(w, hdl.NewError(http.StatusUnauthorized, "Missing bearer token"))
					return
				}

				claims, err := au.ParseClaims(r.Context(), token)
				if err != nil {
					utils.ErrResponse(w, hdl.NewError(http.StatusUnauthorized, "Invalid token"))
					return
				}

				uid, err := claims.UserID()
				if err != nil || claims.Email == "" {
					utils.ErrResponse(w, hdl.NewError(http.StatusUnauthorized, "Invalid token payload"))
					return
				}

				ctx := context.WithValue(r.Context(), config.UidKey, uid)
				ctx = context.WithValue(ctx, config.EmailKey, claims.Email)
				next.ServeHTTP(w, r.WithContext(ctx))
			},
		)
	}
}

type LoggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func NewLoggingResponseWriter(w http.ResponseWriter) *LoggingResponseWriter {
	return &LoggingResponseWriter{w, http.StatusOK}
}

func (lrw *LoggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

func Prometheus(next http.Handler) http.Handler {
	return http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			s := time.Now()
			op := fmt.Sprintf("%s %s", r.Method, r.URL.Path)

			lrw := NewLoggingResponseWriter(w)
			next.ServeHTTP(lrw, r)
			metrics.ObserveRequest(time.Since(s), lrw.statusCode, op)
		},
	)
}

func Logger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				start := time.Now()
				lrw := NewLoggingResponseWriter(w)
				logger.Debug(
					"-->",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.String("remote", r.RemoteAddr),
				)

				next.ServeHTTP(lrw, r)

				logger.Info(
					"<--",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Int("status", lrw.statusCode),
					zap.Duration("duration", time.Since(start)),
					zap.String("remote", r.RemoteAddr),
				)
			},
		)
	}
}

func OT(next http.Handler) http.Handler {
	return http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			span, ctx := opentracing.StartSpanFromContext(r.Context(), fmt.Sprintf("%s %s", r.Method, r.RequestURI))
			defer span.Finish()

			next.ServeHTTP(w, r.WithContext(ctx))
		},
	)
}

// Recovery is the outermost stage: any panic escaping a handler is
// logged and mapped onto the standard 500 envelope.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					zap.L().Error(
						"panic recovered",
						zap.String("method", r.Method),
						zap.String("path", r.URL.Path),
						zap.Any("error", rec),
					)

					err, ok := rec.(error)
					if !ok {
						err = fmt.Errorf("%v", rec)
					}
					utils.ErrResponse(w, err)
				}
			}()

			next.ServeHTTP(w, r)
		},
	)
}
