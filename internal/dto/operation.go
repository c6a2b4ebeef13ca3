package dto

import (
	"github.com/shopspring/decimal"
)

// OperationRequest is the body of a deposit or withdrawal. Amounts must fit
// NUMERIC(19, 4): at most 4 decimal places and 15 integer digits.
type OperationRequest struct {
	Value *decimal.Decimal `json:"value" validate:"required,dgte=10,dlt=1000000000000000,dscale=4" swaggertype:"number" example:"100"`
}

// TransferRequest is the body of a transfer from the account in the path.
type TransferRequest struct {
	Value                *decimal.Decimal `json:"value" validate:"required,dgte=0,dlt=1000000000000000,dscale=4" swaggertype:"number" example:"50"`
	DestinationAccountID *int64           `json:"destinationAccountId" validate:"required,min=1" example:"2"`
}
