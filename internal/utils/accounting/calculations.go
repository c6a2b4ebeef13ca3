package accounting

import (
	"fmt"

	"github.com/SscSPs/bank_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SignedAmount applies the ledger sign convention to an unsigned amount.
// DEPOSIT is positive, WITHDRAW is negative, and a TRANSFER is negative on the
// paying side (outgoing) and positive on the receiving side.
func SignedAmount(txnType domain.TransactionType, amount decimal.Decimal, outgoing bool) (decimal.Decimal, error) {
	abs := amount.Abs()
	switch txnType {
	case domain.Deposit:
		return abs, nil
	case domain.Withdraw:
		return abs.Neg(), nil
	case domain.Transfer:
		if outgoing {
			return abs.Neg(), nil
		}
		return abs, nil
	default:
		return decimal.Zero, fmt.Errorf("unknown transaction type '%s'", txnType)
	}
}

// ValidateEntry checks that a single entry follows the sign and counterparty convention.
func ValidateEntry(txn domain.Transaction) error {
	switch txn.TransactionType {
	case domain.Deposit:
		if !txn.Amount.IsPositive() {
			return fmt.Errorf("deposit amount must be positive, got %s", txn.Amount.String())
		}
	case domain.Withdraw:
		if !txn.Amount.IsNegative() {
			return fmt.Errorf("withdraw amount must be negative, got %s", txn.Amount.String())
		}
	case domain.Transfer:
		if !txn.HasCounterparty() {
			return fmt.Errorf("transfer entry for account %d has no counterparty", txn.AccountID)
		}
		return nil
	default:
		return fmt.Errorf("unknown transaction type '%s'", txn.TransactionType)
	}
	if txn.HasCounterparty() {
		return fmt.Errorf("%s entry for account %d must not carry a counterparty", txn.TransactionType, txn.AccountID)
	}
	return nil
}

// ValidateTransferPair checks that two transfer legs offset each other exactly.
func ValidateTransferPair(source, destination domain.Transaction) error {
	if source.TransactionType != domain.Transfer || destination.TransactionType != domain.Transfer {
		return fmt.Errorf("transfer legs must both be of type %s", domain.Transfer)
	}
	if source.AccountID == destination.AccountID {
		return fmt.Errorf("transfer legs reference the same account %d", source.AccountID)
	}
	if source.Amount.IsPositive() || destination.Amount.IsNegative() {
		return fmt.Errorf("transfer source must be non-positive and destination non-negative")
	}
	if !source.Amount.Add(destination.Amount).IsZero() {
		return fmt.Errorf("transfer legs do not balance to zero: sum is %s", source.Amount.Add(destination.Amount).String())
	}
	return nil
}

// SumBalance adds up the signed amounts of the given entries.
func SumBalance(txns []domain.Transaction) decimal.Decimal {
	sum := decimal.Zero
	for _, txn := range txns {
		sum = sum.Add(txn.Amount)
	}
	return sum
}
