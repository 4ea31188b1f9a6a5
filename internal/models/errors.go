package models

import "errors"

// Domain failures distinguishable by callers. All of them leave balances and
// history untouched.
var (
	ErrUnknownParty      = errors.New("unknown party")
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrSelfTransfer      = errors.New("cannot transfer to the same account")
	ErrEmailTaken        = errors.New("email already registered")
)
