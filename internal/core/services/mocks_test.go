package services_test

import (
	"context"

	"github.com/SscSPs/bank_ledger_app/internal/core/domain"
	"github.com/SscSPs/bank_ledger_app/internal/core/ports/events"
	portsrepo "github.com/SscSPs/bank_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/bank_ledger_app/internal/core/query"
	"github.com/stretchr/testify/mock"
)

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

var _ portsrepo.AccountRepositoryFacade = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) (*domain.Account, error) {
	args := m.Called(ctx, account)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) DeleteAccount(ctx context.Context, accountID int64) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

// --- Mock LedgerRepository ---
type MockLedgerRepository struct {
	mock.Mock
}

var _ portsrepo.LedgerRepositoryFacade = (*MockLedgerRepository)(nil)

func (m *MockLedgerRepository) QueryTransactions(ctx context.Context, spec query.Spec, limit int) ([]domain.Transaction, error) {
	args := m.Called(ctx, spec, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockLedgerRepository) AppendTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error) {
	args := m.Called(ctx, txn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockLedgerRepository) AppendTransactions(ctx context.Context, txns []domain.Transaction) ([]domain.Transaction, error) {
	args := m.Called(ctx, txns)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

// --- Mock TransactionManager ---

// MockTransactionManager runs fn against the mocked repositories. It records
// whether the unit of work would have committed.
type MockTransactionManager struct {
	Accounts  *MockAccountRepository
	Ledger    *MockLedgerRepository
	Calls     int
	Committed int
}

type mockUnitOfWork struct {
	accounts portsrepo.AccountReader
	ledger   portsrepo.LedgerWriter
}

func (u mockUnitOfWork) Accounts() portsrepo.AccountReader { return u.accounts }
func (u mockUnitOfWork) Ledger() portsrepo.LedgerWriter    { return u.ledger }

func (m *MockTransactionManager) RunInTx(ctx context.Context, fn func(ctx context.Context, uow portsrepo.UnitOfWork) error) error {
	m.Calls++
	if err := fn(ctx, mockUnitOfWork{accounts: m.Accounts, ledger: m.Ledger}); err != nil {
		return err
	}
	m.Committed++
	return nil
}

// --- Mock LedgerEventPublisher ---
type MockPublisher struct {
	mock.Mock
}

var _ events.LedgerEventPublisher = (*MockPublisher)(nil)

func (m *MockPublisher) Publish(ctx context.Context, evts ...events.LedgerEvent) error {
	args := m.Called(ctx, evts)
	return args.Error(0)
}

func (m *MockPublisher) Close() error {
	return m.Called().Error(0)
}
