package models

import "time"

type TransactionStatus string

const (
	TxnCompleted TransactionStatus = "Completed"
	TxnPending   TransactionStatus = "Pending"
	TxnFailed    TransactionStatus = "Failed"
)

// SettlementMode is a descriptive label only; both modes settle identically.
type SettlementMode string

const (
	SettlementInstant  SettlementMode = "Instant"
	SettlementStandard SettlementMode = "Standard"
)

// Transaction is an immutable history record. Party names are denormalized at
// creation so a later rename never rewrites history.
type Transaction struct {
	ID             string            `json:"id"`
	Amount         int64             `json:"amount"`
	Status         TransactionStatus `json:"status"`
	SettlementMode SettlementMode    `json:"settlement_mode"`
	FromUserID     string            `json:"from_user_id"`
	FromUserName   string            `json:"from_user_name"`
	ToUserID       string            `json:"to_user_id"`
	ToUserName     string            `json:"to_user_name"`
	CreatedAt      time.Time         `json:"created_at"`
}
