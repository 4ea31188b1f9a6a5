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

type TransferHandler struct {
	Ledger *services.LedgerService
}

func NewTransferHandler(ls *services.LedgerService) *TransferHandler {
	return &TransferHandler{Ledger: ls}
}

type transferReq struct {
	FromUserID string `json:"from_user_id"`
	ToUserID   string `json:"to_user_id"`
	Amount     int64  `json:"amount"`
}

// Create moves money between two accounts. The caller must be one of the two
// parties: customers push payments, merchants pull payment requests. Admins
// may move money between any pair.
func (h *TransferHandler) Create(w http.ResponseWriter, r *http.Request) {
	uc, ok := middleware.FromCtx(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "unauthorized", "missing bearer token", nil)
		return
	}

	var req transferReq
	if err := httpx.Decode(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", err.Error(), nil)
		return
	}
	if errs := validate.Collect(
		validate.Required("from_user_id", req.FromUserID),
		validate.Required("to_user_id", req.ToUserID),
		validate.MinInt("amount", req.Amount, 1),
	); errs != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "validation failed", errs)
		return
	}

	if uc.UserID != req.FromUserID && uc.UserID != req.ToUserID && uc.Role != string(models.RoleAdmin) {
		httpx.WriteError(w, http.StatusForbidden, "forbidden", "caller is not a party to this transfer", nil)
		return
	}

	tx, err := h.Ledger.Transfer(req.FromUserID, req.ToUserID, req.Amount)
	if err != nil {
		writeTransferError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, tx)
}

func writeTransferError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrUnknownParty):
		httpx.WriteError(w, http.StatusNotFound, "unknown_party", err.Error(), nil)
	case errors.Is(err, models.ErrInsufficientFunds):
		httpx.WriteError(w, http.StatusUnprocessableEntity, "insufficient_funds", err.Error(), nil)
	case errors.Is(err, models.ErrInvalidAmount), errors.Is(err, models.ErrSelfTransfer):
		httpx.WriteError(w, http.StatusBadRequest, "invalid_amount", err.Error(), nil)
	default:
		httpx.WriteError(w, http.StatusInternalServerError, "internal_error", "internal error", nil)
	}
}

// List returns the caller's transaction history, newest first. Admins see
// the full history.
func (h *TransferHandler) List(w http.ResponseWriter, r *http.Request) {
	uc, ok := middleware.FromCtx(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "unauthorized", "missing bearer token", nil)
		return
	}
	if uc.Role == string(models.RoleAdmin) {
		httpx.WriteJSON(w, http.StatusOK, h.Ledger.All())
		return
	}
	httpx.WriteJSON(w, http.StatusOK, h.Ledger.History(uc.UserID))
}
