package services

import (
	"errors"
	"log/slog"

	"github.com/nexpay/nexpay-backend/internal/metrics"
	"github.com/nexpay/nexpay-backend/internal/models"
	repo "github.com/nexpay/nexpay-backend/internal/repository"
)

type LedgerService struct {
	led repo.Ledger
}

func NewLedgerService(led repo.Ledger) *LedgerService { return &LedgerService{led: led} }

// Transfer validates defensively before delegating; the ledger re-checks
// everything inside its critical section and must not trust callers.
func (s *LedgerService) Transfer(fromID, toID string, amount int64) (models.Transaction, error) {
	if amount <= 0 {
		metrics.TransfersFailed.WithLabelValues("invalid_amount").Inc()
		return models.Transaction{}, models.ErrInvalidAmount
	}
	if fromID == toID {
		metrics.TransfersFailed.WithLabelValues("invalid_amount").Inc()
		return models.Transaction{}, models.ErrSelfTransfer
	}

	tx, err := s.led.Transfer(fromID, toID, amount)
	if err != nil {
		metrics.TransfersFailed.WithLabelValues(failureReason(err)).Inc()
		slog.Info("transfer rejected", "from", fromID, "to", toID, "amount", amount, "reason", err)
		return models.Transaction{}, err
	}

	metrics.TransfersTotal.Inc()
	slog.Info("transfer completed", "tx_id", tx.ID, "from", tx.FromUserID, "to", tx.ToUserID, "amount", tx.Amount)
	return tx, nil
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, models.ErrUnknownParty):
		return "unknown_party"
	case errors.Is(err, models.ErrInsufficientFunds):
		return "insufficient_funds"
	default:
		return "invalid_amount"
	}
}

// History returns every transaction the user took part in, newest first.
func (s *LedgerService) History(userID string) []models.Transaction {
	return s.led.ListByUser(userID)
}

func (s *LedgerService) All() []models.Transaction { return s.led.ListAll() }
