package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType mirrors the transaction_type column.
type TransactionType string

const (
	Deposit  TransactionType = "DEPOSIT"
	Withdraw TransactionType = "WITHDRAW"
	Transfer TransactionType = "TRANSFER"
)

// Transaction is the persisted row of a ledger entry.
type Transaction struct {
	TransactionID    int64           `db:"transaction_id" json:"transactionID"`
	CreatedAt        time.Time       `db:"created_at" json:"createdAt"`
	Amount           decimal.Decimal `db:"amount" json:"amount"`
	TransactionType  TransactionType `db:"transaction_type" json:"transactionType"`
	CounterpartyName *string         `db:"counterparty_name" json:"counterpartyName,omitempty"` // Nullable
	AccountID        int64           `db:"account_id" json:"accountID"`
}
