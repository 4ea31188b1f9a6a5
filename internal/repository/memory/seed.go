package memory

import (
	"time"

	"github.com/nexpay/nexpay-backend/internal/models"
)

// DemoSeed returns the demo fixture: one admin, two customers, two merchants
// and a few days of transaction history. All accounts share the given
// password hash (the demo password is "password").
func DemoSeed(passwordHash string) ([]models.User, []models.Transaction) {
	now := time.Now()
	day := 24 * time.Hour

	users := []models.User{
		{ID: "1", Name: "Admin User", Email: "admin@nexpay.com", PasswordHash: passwordHash, Role: models.RoleAdmin, Balance: 100000, CreatedAt: now.Add(-30 * day)},
		{ID: "2", Name: "Alice", Email: "customer1@nexpay.com", PasswordHash: passwordHash, Role: models.RoleCustomer, Balance: 5000, CreatedAt: now.Add(-30 * day)},
		{ID: "3", Name: "Bob", Email: "customer2@nexpay.com", PasswordHash: passwordHash, Role: models.RoleCustomer, Balance: 2500, CreatedAt: now.Add(-30 * day)},
		{ID: "4", Name: "Coffee Shop", Email: "merchant1@nexpay.com", PasswordHash: passwordHash, Role: models.RoleMerchant, Balance: 15000, CreatedAt: now.Add(-30 * day)},
		{ID: "5", Name: "Bookstore", Email: "merchant2@nexpay.com", PasswordHash: passwordHash, Role: models.RoleMerchant, Balance: 75000, CreatedAt: now.Add(-30 * day)},
	}

	// Newest first, matching how the ledger prepends live transactions.
	transactions := []models.Transaction{
		{ID: "t1", Amount: 150, Status: models.TxnCompleted, SettlementMode: models.SettlementInstant, FromUserID: "2", FromUserName: "Alice", ToUserID: "4", ToUserName: "Coffee Shop", CreatedAt: now.Add(-1 * day)},
		{ID: "t2", Amount: 75, Status: models.TxnCompleted, SettlementMode: models.SettlementInstant, FromUserID: "3", FromUserName: "Bob", ToUserID: "5", ToUserName: "Bookstore", CreatedAt: now.Add(-2 * day)},
		{ID: "t3", Amount: 1200, Status: models.TxnCompleted, SettlementMode: models.SettlementStandard, FromUserID: "2", FromUserName: "Alice", ToUserID: "5", ToUserName: "Bookstore", CreatedAt: now.Add(-3 * day)},
		{ID: "t4", Amount: 25, Status: models.TxnCompleted, SettlementMode: models.SettlementInstant, FromUserID: "3", FromUserName: "Bob", ToUserID: "4", ToUserName: "Coffee Shop", CreatedAt: now.Add(-4 * day)},
		{ID: "t5", Amount: 500, Status: models.TxnCompleted, SettlementMode: models.SettlementInstant, FromUserID: "2", FromUserName: "Alice", ToUserID: "4", ToUserName: "Coffee Shop", CreatedAt: now.Add(-5 * day)},
	}

	return users, transactions
}
