package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/bank_ledger_app/internal/apperrors"
	"github.com/SscSPs/bank_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bank_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bank_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/bank_ledger_app/internal/core/query"
	"github.com/SscSPs/bank_ledger_app/internal/utils/pagination"
)

const maxStatementPageSize = 500

// statementService answers bank statement queries.
type statementService struct {
	BaseService
	accountRepo portsrepo.AccountReader
	ledgerRepo  portsrepo.LedgerReader
}

// NewStatementService creates a new statement service
func NewStatementService(accountRepo portsrepo.AccountReader, ledgerRepo portsrepo.LedgerReader) portssvc.StatementSvc {
	return &statementService{
		accountRepo: accountRepo,
		ledgerRepo:  ledgerRepo,
	}
}

var _ portssvc.StatementSvc = (*statementService)(nil)

// BuildStatementSpec conjoins the mandatory account predicate with one
// predicate per supplied filter field. Absent fields add nothing. A start
// after the end simply matches no entries.
func BuildStatementSpec(accountID int64, filter domain.StatementFilter) query.Spec {
	spec := query.Where(query.AccountIs(accountID))
	if filter.StartTime != nil {
		spec = spec.And(query.CreatedFrom(*filter.StartTime))
	}
	if filter.EndTime != nil {
		spec = spec.And(query.CreatedUntil(*filter.EndTime))
	}
	if filter.CounterpartyName != nil && *filter.CounterpartyName != "" {
		spec = spec.And(query.CounterpartyIs(*filter.CounterpartyName))
	}
	return spec
}

func (s *statementService) GetStatement(ctx context.Context, accountID int64, filter domain.StatementFilter) ([]domain.Transaction, error) {
	spec, err := s.prepare(ctx, accountID, filter)
	if err != nil {
		return nil, err
	}

	txns, err := s.ledgerRepo.QueryTransactions(ctx, spec, 0)
	if err != nil {
		s.LogError(ctx, err, "Failed to query statement", slog.Int64("account_id", accountID))
		return nil, err
	}
	if txns == nil {
		txns = []domain.Transaction{}
	}

	s.LogDebug(ctx, "Statement retrieved",
		slog.Int64("account_id", accountID),
		slog.Int("conditions", spec.Len()),
		slog.Int("count", len(txns)))
	return txns, nil
}

func (s *statementService) GetStatementPage(ctx context.Context, accountID int64, filter domain.StatementFilter, limit int, nextToken *string) (*domain.StatementPage, error) {
	if limit <= 0 && (nextToken == nil || *nextToken == "") {
		txns, err := s.GetStatement(ctx, accountID, filter)
		if err != nil {
			return nil, err
		}
		return &domain.StatementPage{Transactions: txns}, nil
	}
	if limit <= 0 || limit > maxStatementPageSize {
		limit = maxStatementPageSize
	}

	var cursor *query.Cursor
	if nextToken != nil && *nextToken != "" {
		createdAt, transactionID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			s.LogWarn(ctx, err, "Invalid statement page token", slog.Int64("account_id", accountID))
			return nil, apperrors.NewValidationError("nextToken", "is invalid")
		}
		cursor = &query.Cursor{Timestamp: createdAt, TransactionID: transactionID}
	}

	spec, err := s.prepare(ctx, accountID, filter)
	if err != nil {
		return nil, err
	}
	if cursor != nil {
		spec = spec.And(query.After(*cursor))
	}

	// One extra row tells whether another page exists.
	txns, err := s.ledgerRepo.QueryTransactions(ctx, spec, limit+1)
	if err != nil {
		s.LogError(ctx, err, "Failed to query statement page", slog.Int64("account_id", accountID))
		return nil, err
	}

	page := &domain.StatementPage{Transactions: txns}
	if len(txns) > limit {
		page.Transactions = txns[:limit]
		last := page.Transactions[limit-1]
		token := pagination.EncodeToken(last.Timestamp, last.TransactionID)
		page.NextToken = &token
	}
	if page.Transactions == nil {
		page.Transactions = []domain.Transaction{}
	}
	return page, nil
}

// prepare composes the filter and resolves the account before any ledger read.
func (s *statementService) prepare(ctx context.Context, accountID int64, filter domain.StatementFilter) (query.Spec, error) {
	spec := BuildStatementSpec(accountID, filter)
	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogWarn(ctx, err, "Statement requested for unknown account", slog.Int64("account_id", accountID))
		} else {
			s.LogError(ctx, err, "Failed to resolve statement account", slog.Int64("account_id", accountID))
		}
		return query.Spec{}, err
	}
	return spec, nil
}
