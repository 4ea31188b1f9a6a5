package handlers

import (
	"errors"
	"net/http"

	"github.com/nexpay/nexpay-backend/internal/api/httpx"
	"github.com/nexpay/nexpay-backend/internal/api/validate"
	"github.com/nexpay/nexpay-backend/internal/middleware"
	"github.com/nexpay/nexpay-backend/internal/models"
	"github.com/nexpay/nexpay-backend/internal/services"
)

type AuthHandler struct {
	Users *services.UserService
}

func NewAuthHandler(us *services.UserService) *AuthHandler {
	return &AuthHandler{Users: us}
}

type signupReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupReq
	if err := httpx.Decode(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", err.Error(), nil)
		return
	}
	if errs := validate.Collect(
		validate.Required("name", req.Name),
		validate.Required("email", req.Email),
		validate.Email("email", req.Email),
		validate.Required("password", req.Password),
		validate.Required("role", req.Role),
	); errs != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "validation failed", errs)
		return
	}

	sess, err := h.Users.Signup(req.Name, req.Email, req.Password, models.Role(req.Role))
	if err != nil {
		if errors.Is(err, models.ErrEmailTaken) {
			httpx.WriteError(w, http.StatusConflict, "email_taken", err.Error(), nil)
			return
		}
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", err.Error(), nil)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, sess)
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := httpx.Decode(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", err.Error(), nil)
		return
	}
	sess, err := h.Users.Login(req.Email, req.Password)
	if err != nil {
		httpx.WriteError(w, http.StatusUnauthorized, "invalid_credentials", "invalid credentials", nil)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, sess)
}

type refreshReq struct {
	RefreshToken string `json:"refresh_token"`
}

func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req refreshReq
	if err := httpx.Decode(r, &req); err != nil || req.RefreshToken == "" {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "refresh_token required", nil)
		return
	}
	sess, err := h.Users.Refresh(req.RefreshToken)
	if err != nil {
		httpx.WriteError(w, http.StatusUnauthorized, "invalid_credentials", "invalid refresh token", nil)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, sess)
}

// Me returns a fresh public view of the caller, balance included.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	uc, ok := middleware.FromCtx(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "unauthorized", "missing bearer token", nil)
		return
	}
	u, found := h.Users.Get(uc.UserID)
	if !found {
		httpx.WriteError(w, http.StatusNotFound, "not_found", "account not found", nil)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, u.Public())
}
