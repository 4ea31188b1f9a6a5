package repository

import "github.com/nexpay/nexpay-backend/internal/models"

// Directory owns the authoritative user records. It is the only component
// that ever mutates a balance, and lookups that miss are a normal result,
// not an error.
type Directory interface {
	Create(name, email, passwordHash string, role models.Role) (models.User, error)
	GetByID(id string) (models.User, bool)
	GetByEmail(email string) (models.User, bool)
	ListByRole(role models.Role) []models.User
	List() []models.User
}

// Ledger owns the transaction history and the single money-movement
// operation. Transfer either applies debit, credit and record append as one
// unit or leaves all state untouched.
type Ledger interface {
	Transfer(fromID, toID string, amount int64) (models.Transaction, error)
	ListByUser(userID string) []models.Transaction
	ListAll() []models.Transaction
}
