package memory

import (
	"fmt"
	"sort"

	"github.com/nexpay/nexpay-backend/internal/models"
)

type ledger struct{ s *Store }

// Transfer moves amount from one user to another and records the result.
// Every check runs before the first mutation, so a failed transfer leaves
// balances and history exactly as they were.
func (l *ledger) Transfer(fromID, toID string, amount int64) (models.Transaction, error) {
	l.s.mu.Lock()
	defer l.s.mu.Unlock()

	from := l.s.findUser(fromID)
	to := l.s.findUser(toID)
	if from == nil || to == nil {
		return models.Transaction{}, models.ErrUnknownParty
	}
	if amount <= 0 {
		return models.Transaction{}, models.ErrInvalidAmount
	}
	if fromID == toID {
		return models.Transaction{}, models.ErrSelfTransfer
	}
	if from.Balance < amount {
		return models.Transaction{}, models.ErrInsufficientFunds
	}

	l.s.adjustBalance(fromID, -amount)
	l.s.adjustBalance(toID, amount)

	tx := models.Transaction{
		ID:             fmt.Sprintf("t%d", len(l.s.transactions)+1),
		Amount:         amount,
		Status:         models.TxnCompleted,
		SettlementMode: models.SettlementInstant,
		FromUserID:     from.ID,
		FromUserName:   from.Name,
		ToUserID:       to.ID,
		ToUserName:     to.Name,
		CreatedAt:      l.s.now(),
	}
	// Prepend: default iteration order is newest-first.
	l.s.transactions = append([]models.Transaction{tx}, l.s.transactions...)
	return tx, nil
}

func (l *ledger) ListByUser(userID string) []models.Transaction {
	l.s.mu.RLock()
	defer l.s.mu.RUnlock()
	out := []models.Transaction{}
	for _, tx := range l.s.transactions {
		if tx.FromUserID == userID || tx.ToUserID == userID {
			out = append(out, tx)
		}
	}
	sortNewestFirst(out)
	return out
}

func (l *ledger) ListAll() []models.Transaction {
	l.s.mu.RLock()
	defer l.s.mu.RUnlock()
	out := make([]models.Transaction, len(l.s.transactions))
	copy(out, l.s.transactions)
	sortNewestFirst(out)
	return out
}

func sortNewestFirst(txs []models.Transaction) {
	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].CreatedAt.After(txs[j].CreatedAt)
	})
}
