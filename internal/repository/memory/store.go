package memory

import (
	"sync"
	"time"

	"github.com/nexpay/nexpay-backend/internal/models"
	"github.com/nexpay/nexpay-backend/internal/repository"
)

// Store holds the whole ledger state in process memory. A single lock covers
// both the user list and the transaction history: a transfer's check, debit,
// credit and append happen inside one critical section, so no reader ever
// observes a half-applied transfer.
type Store struct {
	mu           sync.RWMutex
	users        []models.User
	transactions []models.Transaction
	now          func() time.Time
}

type Option func(*Store)

// WithClock overrides the timestamp source. Tests use it to get
// deterministic transaction timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New builds a store from injected seed data. The store copies the slices so
// callers cannot alias its internals.
func New(users []models.User, transactions []models.Transaction, opts ...Option) *Store {
	s := &Store{now: time.Now}
	s.users = append(s.users, users...)
	s.transactions = append(s.transactions, transactions...)
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Store) Directory() repository.Directory { return &directory{s: s} }
func (s *Store) Ledger() repository.Ledger       { return &ledger{s: s} }

// findUser returns a pointer into the user slice. Callers must hold the lock.
func (s *Store) findUser(id string) *models.User {
	for i := range s.users {
		if s.users[i].ID == id {
			return &s.users[i]
		}
	}
	return nil
}

// adjustBalance applies delta to a user's balance. Only the transfer path
// calls it, under the write lock, after the sufficiency check.
func (s *Store) adjustBalance(id string, delta int64) {
	if u := s.findUser(id); u != nil {
		u.Balance += delta
	}
}
