package mapping

import (
	"github.com/SscSPs/bank_ledger_app/internal/core/domain"
	"github.com/SscSPs/bank_ledger_app/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID: d.AccountID,
		OwnerName: d.OwnerName,
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID: m.AccountID,
		OwnerName: m.OwnerName,
	}
}

// ToDomainAccounts converts a slice of model Accounts to domain Accounts
func ToDomainAccounts(ms []models.Account) []domain.Account {
	accounts := make([]domain.Account, len(ms))
	for i, m := range ms {
		accounts[i] = ToDomainAccount(m)
	}
	return accounts
}
