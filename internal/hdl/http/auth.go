package http

import (
	"errors"
	"net/http"

	chi "github.com/go-chi/chi/v5"
	"github.com/we2pos/backend/internal/auth"
	"github.com/we2pos/backend/internal/config"
	"github.com/we2pos/backend/internal/ctrl"
	"github.com/we2pos/backend/internal/dto"
	"github.com/we2pos/backend/internal/hdl"
	mid "github.com/we2pos/backend/internal/hdl/http/middleware"
	"github.com/we2pos/backend/internal/hdl/http/utils"
	"go.uber.org/zap"
)

func (h *Handler) RegisterAuthRoutes(r chi.Router) {
	r.Post("/auth/signup", h.signup)
	r.Post("/auth/login", h.login)
	r.With(mid.Auth(h.au)).Get("/auth/me", h.me)
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	req := &dto.SignUpRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	res, err := h.ctrl.SignUp(r.Context(), req)
	if err != nil {
		if errors.Is(err, ctrl.ErrAlreadyExists) {
			utils.ErrResponse(
				w,
				hdl.NewError(http.StatusConflict, "Email already exists").WithField("email"),
			)
			return
		}

		utils.ErrResponse(w, hdl.NewError(http.StatusInternalServerError, hdl.ErrInternal.Error()))
		return
	}

	utils.SuccessResponse(w, http.StatusCreated, "Signup successfully", res)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	req := &dto.LoginRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	res, err := h.ctrl.Login(r.Context(), req)
	if err != nil {
		// Missing account and failed compare share one message, so the
		// response cannot be used to enumerate accounts.
		if errors.Is(err, auth.ErrInvalidCredentials) {
			utils.ErrResponse(w, hdl.NewError(http.StatusUnauthorized, "Invalid credentials"))
			return
		}

		if errors.Is(err, auth.ErrUserNotActive) {
			utils.ErrResponse(w, hdl.NewError(http.StatusUnauthorized, "User is not active"))
			return
		}

		utils.ErrResponse(w, hdl.NewError(http.StatusInternalServerError, hdl.ErrInternal.Error()))
		return
	}

	utils.SuccessResponse(w, http.StatusOK, "Login successfully", res)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	uid, ok := r.Context().Value(config.UidKey).(int64)
	if !ok {
		zap.L().Error(
			"failed to get uid from context",
			zap.Any("uid", r.Context().Value(config.UidKey)),
		)
		utils.ErrResponse(w, hdl.NewError(http.StatusInternalServerError, hdl.ErrInternal.Error()))
		return
	}

	res, err := h.ctrl.Me(r.Context(), uid)
	if err != nil {
		if errors.Is(err, ctrl.ErrNotFound) {
			utils.ErrResponse(w, hdl.NewError(http.StatusNotFound, "User not found"))
			return
		}

		utils.ErrResponse(w, hdl.NewError(http.StatusInternalServerError, hdl.ErrInternal.Error()))
		return
	}

	utils.SuccessResponse(w, http.StatusOK, "Get profile successfully", res)
}
