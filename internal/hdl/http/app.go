package http

import (
	"net/http"
	"time"

	chi "github.com/go-chi/chi/v5"
	"github.com/gorilla/csrf"
	"github.com/we2pos/backend/internal/config"
	"github.com/we2pos/backend/internal/dto"
	"github.com/we2pos/backend/internal/hdl"
	"github.com/we2pos/backend/internal/hdl/http/utils"
)

var startedAt = time.Now()

func (h *Handler) RegisterAppRoutes(r chi.Router) {
	r.Get("/health", h.health)
	r.Get("/csrf-token", h.csrfToken)
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.SuccessResponse(
		w, http.StatusOK, "Health check successfully", &dto.HealthResponse{
			Status:    "ok",
			Uptime:    time.Since(startedAt).Seconds(),
			Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		},
	)
}

func (h *Handler) csrfToken(w http.ResponseWriter, r *http.Request) {
	token := csrf.Token(r)
	if token == "" {
		utils.ErrResponse(w, hdl.NewError(http.StatusInternalServerError, "CSRF token unavailable"))
		return
	}

	w.Header().Set(config.CSRFHeaderName, token)
	utils.SuccessResponse(
		w, http.StatusOK, "Get CSRF token successfully", &dto.CSRFTokenResponse{
			CSRFToken: token,
		},
	)
}
