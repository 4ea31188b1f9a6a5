package handlers

import (
	"net/http"

	"github.com/nexpay/nexpay-backend/internal/api/httpx"
	"github.com/nexpay/nexpay-backend/internal/models"
	"github.com/nexpay/nexpay-backend/internal/services"
)

type UserHandler struct {
	Users *services.UserService
}

func NewUserHandler(us *services.UserService) *UserHandler {
	return &UserHandler{Users: us}
}

// List returns public user views, optionally filtered by ?role=. Customers
// use it to pick a merchant to pay; merchants to pick a customer to charge.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	roleParam := r.URL.Query().Get("role")
	if roleParam == "" {
		httpx.WriteJSON(w, http.StatusOK, models.PublicUsers(h.Users.List()))
		return
	}
	role := models.Role(roleParam)
	if !role.Valid() {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "unknown role", nil)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, models.PublicUsers(h.Users.ListByRole(role)))
}
