package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	chi "github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/gorilla/csrf"
	"github.com/we2pos/backend/internal/auth/jwt"
	"github.com/we2pos/backend/internal/config"
	"github.com/we2pos/backend/internal/ctrl"
	"github.com/we2pos/backend/internal/hdl"
	mid "github.com/we2pos/backend/internal/hdl/http/middleware"
	"github.com/we2pos/backend/internal/hdl/http/utils"
	"go.uber.org/zap"
)

type Handler struct {
	router *chi.Mux
	au     jwt.Port
	srv    *http.Server
	ctrl   ctrl.AppCtrl
	conf   config.Config
}

func New(au jwt.Port, ctrl ctrl.AppCtrl, conf config.Config) *Handler {
	r := chi.NewRouter()
	return &Handler{
		router: r,
		au:     au,
		ctrl:   ctrl,
		conf:   conf,
	}
}

func (h *Handler) Start() {
	h.router.Use(
		mid.Recovery,
		mid.Logger(zap.L()),
		middleware.StripSlashes,
		middleware.RequestID,
		middleware.RealIP,
		mid.Prometheus,
		mid.OT,
		cors.Handler(
			cors.Options{
				AllowedOrigins:   h.conf.Server.CORSOrigins,
				AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
				AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization", config.CSRFHeaderName},
				ExposedHeaders:   []string{config.CSRFHeaderName},
				AllowCredentials: true,
			},
		),
		httprate.Limit(
			h.conf.Server.RateLimit,
			h.conf.Server.RateTTL,
			httprate.WithKeyFuncs(httprate.KeyByIP),
			httprate.WithLimitHandler(
				func(w http.ResponseWriter, r *http.Request) {
					utils.ErrResponse(w, hdl.NewError(http.StatusTooManyRequests, ""))
				},
			),
		),
	)

	if h.conf.Auth.CSRF.Enabled {
		h.router.Use(
			csrf.Protect(
				[]byte(h.conf.Auth.CSRF.SigningSecret()),
				csrf.CookieName(h.conf.Auth.CSRF.CookieName),
				csrf.Secure(h.conf.Server.Mode == "prod"),
				csrf.SameSite(csrf.SameSiteLaxMode),
				csrf.Path("/"),
				csrf.RequestHeader(config.CSRFHeaderName),
				csrf.ErrorHandler(
					http.HandlerFunc(
						func(w http.ResponseWriter, r *http.Request) {
							utils.ErrResponse(w, hdl.NewError(http.StatusForbidden, "Invalid CSRF token"))
						},
					),
				),
			),
		)
	}

	h.router.Route(
		"/"+h.conf.Server.APIPrefix, func(r chi.Router) {
			r.Use(mid.Envelope)
			h.RegisterAppRoutes(r)
			h.RegisterAuthRoutes(r)
		},
	)

	h.srv = &http.Server{
		Handler:      h.router,
		Addr:         fmt.Sprintf("%s:%d", h.conf.Server.Host, h.conf.Server.Port),
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	zap.L().Info(
		"Starting HTTP server",
		zap.String("addr", h.srv.Addr),
	)

	err := h.srv.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		zap.L().Error("Server error", zap.Error(err))
	}
}

func (h *Handler) Close(ctx context.Context) error {
	return h.srv.Shutdown(ctx)
}
