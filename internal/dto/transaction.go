package dto

import (
	"time"

	"github.com/SscSPs/bank_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Amounts are written as JSON numbers, matching the documented schema.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// TransactionResponse defines the data returned for a ledger entry created by an operation.
type TransactionResponse struct {
	TransactionID    int64           `json:"transactionId"`
	AccountID        int64           `json:"accountId"`
	Type             string          `json:"type"`
	Value            decimal.Decimal `json:"value" swaggertype:"number"`
	CounterpartyName *string         `json:"counterpartyName,omitempty"`
	Timestamp        time.Time       `json:"timestamp"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:    txn.TransactionID,
		AccountID:        txn.AccountID,
		Type:             string(txn.TransactionType),
		Value:            txn.Amount,
		CounterpartyName: txn.CounterpartyName,
		Timestamp:        txn.Timestamp,
	}
}

// StatementEntryResponse is one line of a bank statement.
type StatementEntryResponse struct {
	TransactionID    int64           `json:"transactionId"`
	Type             string          `json:"type"`
	Value            decimal.Decimal `json:"value" swaggertype:"number"`
	CounterpartyName *string         `json:"counterpartyName,omitempty"`
	OperationDate    time.Time       `json:"operationDate"`
}

// StatementResponse wraps the statement entries and the optional continuation token.
type StatementResponse struct {
	AccountID int64                    `json:"accountId"`
	Entries   []StatementEntryResponse `json:"entries"`
	NextToken *string                  `json:"nextToken,omitempty"`
}

// ListStatementParams defines query parameters for the bank statement.
type ListStatementParams struct {
	StartTime        string  `form:"startTime"`
	EndTime          string  `form:"endTime"`
	CounterpartyName string  `form:"counterpartyName"`
	Limit            int     `form:"limit"`
	NextToken        *string `form:"nextToken"`
}

// ToStatementResponse converts ledger entries to the statement response.
// Operation dates are truncated to whole seconds.
func ToStatementResponse(accountID int64, txns []domain.Transaction, nextToken *string) StatementResponse {
	entries := make([]StatementEntryResponse, len(txns))
	for i, txn := range txns {
		entries[i] = StatementEntryResponse{
			TransactionID:    txn.TransactionID,
			Type:             string(txn.TransactionType),
			Value:            txn.Amount,
			CounterpartyName: txn.CounterpartyName,
			OperationDate:    txn.Timestamp.Truncate(time.Second),
		}
	}
	return StatementResponse{AccountID: accountID, Entries: entries, NextToken: nextToken}
}
