package mapping

import (
	"github.com/SscSPs/bank_ledger_app/internal/core/domain"
	"github.com/SscSPs/bank_ledger_app/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:    d.TransactionID,
		CreatedAt:        d.Timestamp,
		Amount:           d.Amount,
		TransactionType:  models.TransactionType(d.TransactionType),
		CounterpartyName: d.CounterpartyName,
		AccountID:        d.AccountID,
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:    m.TransactionID,
		Timestamp:        m.CreatedAt,
		Amount:           m.Amount,
		TransactionType:  domain.TransactionType(m.TransactionType),
		CounterpartyName: m.CounterpartyName,
		AccountID:        m.AccountID,
	}
}

// ToDomainTransactions converts a slice of model Transactions to domain Transactions
func ToDomainTransactions(ms []models.Transaction) []domain.Transaction {
	txns := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		txns[i] = ToDomainTransaction(m)
	}
	return txns
}
