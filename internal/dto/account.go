package dto

import (
	"github.com/SscSPs/bank_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	OwnerName string `json:"ownerName" validate:"required,max=50" example:"Joseph Smith"`
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Only the owner name can change.
type UpdateAccountRequest struct {
	OwnerName string `json:"ownerName" validate:"required,max=50" example:"Carlos Maia"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID int64  `json:"accountID"`
	OwnerName string `json:"ownerName"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID: acc.AccountID,
		OwnerName: acc.OwnerName,
	}
}

// ToListAccountResponse converts a slice of domain.Account to a slice of AccountResponse DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(&acc) // Reuse the single converter
	}
	return res
}

// AccountBalanceResponse defines the data returned for an account balance query.
type AccountBalanceResponse struct {
	AccountID int64           `json:"accountID"`
	Balance   decimal.Decimal `json:"balance" swaggertype:"number"`
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
	Limit    int               `json:"limit"`
	Offset   int               `json:"offset"`
}
