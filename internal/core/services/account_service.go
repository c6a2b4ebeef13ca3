package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/bank_ledger_app/internal/apperrors"
	"github.com/SscSPs/bank_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bank_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bank_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/bank_ledger_app/internal/core/query"
	"github.com/SscSPs/bank_ledger_app/internal/dto"
	"github.com/SscSPs/bank_ledger_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

const (
	defaultAccountPageSize = 20
	maxAccountPageSize     = 100
)

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
	ledgerRepo  portsrepo.LedgerReader
}

// AccountServiceOption is a functional option for configuring the account service
type AccountServiceOption func(*accountService)

// WithLedgerReader adds the ledger reader used to derive balances
func WithLedgerReader(repo portsrepo.LedgerReader) AccountServiceOption {
	return func(s *accountService) {
		s.ledgerRepo = repo
	}
}

// NewAccountService creates a new account service with the provided options
func NewAccountService(repo portsrepo.AccountRepositoryFacade, options ...AccountServiceOption) portssvc.AccountSvcFacade {
	svc := &accountService{
		accountRepo: repo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure accountService implements the AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	req.OwnerName = strings.TrimSpace(req.OwnerName)
	if err := validateRequest(req); err != nil {
		s.LogWarn(ctx, err, "Invalid create account request")
		return nil, err
	}

	account, err := s.accountRepo.SaveAccount(ctx, domain.Account{OwnerName: req.OwnerName})
	if err != nil {
		s.LogError(ctx, err, "Failed to save account", slog.String("owner_name", req.OwnerName))
		return nil, err
	}

	s.LogInfo(ctx, "Account created successfully", slog.Int64("account_id", account.AccountID))
	return account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account by ID", slog.Int64("account_id", accountID))
		}
		return nil, err
	}
	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error) {
	if limit <= 0 {
		limit = defaultAccountPageSize
	}
	if limit > maxAccountPageSize {
		limit = maxAccountPageSize
	}
	if offset < 0 {
		offset = 0
	}

	accounts, err := s.accountRepo.ListAccounts(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts", slog.Int("limit", limit), slog.Int("offset", offset))
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}

	s.LogDebug(ctx, "Accounts listed successfully", slog.Int("count", len(accounts)))
	return accounts, nil
}

func (s *accountService) UpdateAccount(ctx context.Context, accountID int64, req dto.UpdateAccountRequest) (*domain.Account, error) {
	req.OwnerName = strings.TrimSpace(req.OwnerName)
	if err := validateRequest(req); err != nil {
		s.LogWarn(ctx, err, "Invalid update account request", slog.Int64("account_id", accountID))
		return nil, err
	}

	account, err := s.GetAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	account.OwnerName = req.OwnerName
	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to update account", slog.Int64("account_id", accountID))
		return nil, err
	}

	s.LogInfo(ctx, "Account updated successfully", slog.Int64("account_id", accountID))
	return account, nil
}

func (s *accountService) DeleteAccount(ctx context.Context, accountID int64) error {
	if _, err := s.GetAccountByID(ctx, accountID); err != nil {
		return err
	}

	if err := s.accountRepo.DeleteAccount(ctx, accountID); err != nil {
		if errors.Is(err, apperrors.ErrConstraintViolation) {
			s.LogWarn(ctx, err, "Account still referenced by ledger entries", slog.Int64("account_id", accountID))
		} else {
			s.LogError(ctx, err, "Failed to delete account", slog.Int64("account_id", accountID))
		}
		return err
	}

	s.LogInfo(ctx, "Account deleted successfully", slog.Int64("account_id", accountID))
	return nil
}

func (s *accountService) CalculateAccountBalance(ctx context.Context, accountID int64) (decimal.Decimal, error) {
	if _, err := s.GetAccountByID(ctx, accountID); err != nil {
		return decimal.Zero, err
	}
	if s.ledgerRepo == nil {
		return decimal.Zero, errors.New("account service has no ledger reader configured")
	}

	txns, err := s.ledgerRepo.QueryTransactions(ctx, query.Where(query.AccountIs(accountID)), 0)
	if err != nil {
		s.LogError(ctx, err, "Failed to load ledger entries for balance", slog.Int64("account_id", accountID))
		return decimal.Zero, fmt.Errorf("failed to calculate balance for account %d: %w", accountID, err)
	}
	return accounting.SumBalance(txns), nil
}
