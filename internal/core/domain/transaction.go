package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a ledger entry.
type TransactionType string

const (
	Deposit  TransactionType = "DEPOSIT"
	Withdraw TransactionType = "WITHDRAW"
	Transfer TransactionType = "TRANSFER"
)

// IsValid reports whether t is one of the known entry types.
func (t TransactionType) IsValid() bool {
	switch t {
	case Deposit, Withdraw, Transfer:
		return true
	}
	return false
}

// Transaction is an immutable ledger entry owned by a single account.
// TransactionID and Timestamp are assigned by the store on append.
type Transaction struct {
	TransactionID    int64           `json:"transactionID"`
	Timestamp        time.Time       `json:"timestamp"`
	Amount           decimal.Decimal `json:"amount"` // signed
	TransactionType  TransactionType `json:"transactionType"`
	CounterpartyName *string         `json:"counterpartyName,omitempty"` // TRANSFER only
	AccountID        int64           `json:"accountID"`
}

// Equal reports whether both values denote the same stored entry.
func (t Transaction) Equal(other Transaction) bool {
	return t.TransactionID == other.TransactionID
}

// HasCounterparty reports whether the entry carries a counterparty name.
func (t Transaction) HasCounterparty() bool {
	return t.CounterpartyName != nil
}

// Counterparty returns the counterparty name or "" when absent.
func (t Transaction) Counterparty() string {
	if t.CounterpartyName == nil {
		return ""
	}
	return *t.CounterpartyName
}
