package services_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/SscSPs/bank_ledger_app/internal/apperrors"
	"github.com/SscSPs/bank_ledger_app/internal/core/domain"
	"github.com/SscSPs/bank_ledger_app/internal/core/ports/events"
	portsrepo "github.com/SscSPs/bank_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/bank_ledger_app/internal/core/services"
	"github.com/SscSPs/bank_ledger_app/internal/dto"
	"github.com/SscSPs/bank_ledger_app/internal/repositories/database/boltdb"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingSecondLeg stores the first leg of a pair and then fails.
type failingSecondLeg struct {
	portsrepo.LedgerWriter
}

func (f failingSecondLeg) AppendTransactions(ctx context.Context, txns []domain.Transaction) ([]domain.Transaction, error) {
	if _, err := f.LedgerWriter.AppendTransaction(ctx, txns[0]); err != nil {
		return nil, err
	}
	return nil, errors.New("disk full")
}

type faultyUnitOfWork struct {
	portsrepo.UnitOfWork
}

func (u faultyUnitOfWork) Ledger() portsrepo.LedgerWriter {
	return failingSecondLeg{LedgerWriter: u.UnitOfWork.Ledger()}
}

type faultyTxManager struct {
	inner portsrepo.TransactionManager
}

func (m faultyTxManager) RunInTx(ctx context.Context, fn func(ctx context.Context, uow portsrepo.UnitOfWork) error) error {
	return m.inner.RunInTx(ctx, func(ctx context.Context, uow portsrepo.UnitOfWork) error {
		return fn(ctx, faultyUnitOfWork{UnitOfWork: uow})
	})
}

func openStore(t *testing.T) portsrepo.RepositoryProvider {
	t.Helper()
	store, err := boltdb.Open(filepath.Join(t.TempDir(), "ledger.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return boltdb.NewRepositoryProvider(store)
}

func TestLedgerScenario_DepositTransferStatement(t *testing.T) {
	ctx := context.Background()
	repos := openStore(t)
	svc := services.NewServiceContainer(repos, events.NoopPublisher{})

	joseph, err := svc.Account.CreateAccount(ctx, dto.CreateAccountRequest{OwnerName: "Joseph Smith"})
	require.NoError(t, err)
	carlos, err := svc.Account.CreateAccount(ctx, dto.CreateAccountRequest{OwnerName: "Carlos Maia"})
	require.NoError(t, err)

	_, err = svc.Ledger.Deposit(ctx, joseph.AccountID, dto.OperationRequest{Value: decPtr(100)})
	require.NoError(t, err)

	statement, err := svc.Statement.GetStatement(ctx, joseph.AccountID, domain.StatementFilter{})
	require.NoError(t, err)
	require.Len(t, statement, 1)
	assert.Equal(t, domain.Deposit, statement[0].TransactionType)
	assert.True(t, statement[0].Amount.Equal(decimal.NewFromInt(100)))

	_, err = svc.Ledger.Transfer(ctx, joseph.AccountID, dto.TransferRequest{Value: decPtr(50), DestinationAccountID: &carlos.AccountID})
	require.NoError(t, err)

	statement, err = svc.Statement.GetStatement(ctx, joseph.AccountID, domain.StatementFilter{})
	require.NoError(t, err)
	require.Len(t, statement, 2)
	assert.Equal(t, domain.Deposit, statement[0].TransactionType)
	assert.Equal(t, domain.Transfer, statement[1].TransactionType)
	assert.True(t, statement[1].Amount.Equal(decimal.NewFromInt(-50)))
	assert.Equal(t, "Carlos Maia", statement[1].Counterparty())

	received, err := svc.Statement.GetStatement(ctx, carlos.AccountID, domain.StatementFilter{})
	require.NoError(t, err)
	require.Len(t, received, 1)
	assert.True(t, received[0].Amount.Equal(decimal.NewFromInt(50)))
	assert.Equal(t, "Joseph Smith", received[0].Counterparty())

	transfersOnly, err := svc.Statement.GetStatement(ctx, joseph.AccountID, domain.StatementFilter{CounterpartyName: strPtr("Carlos Maia")})
	require.NoError(t, err)
	require.Len(t, transfersOnly, 1)
	assert.Equal(t, domain.Transfer, transfersOnly[0].TransactionType)

	balance, err := svc.Account.CalculateAccountBalance(ctx, joseph.AccountID)
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.NewFromInt(50)))

	_, err = svc.Ledger.Withdraw(ctx, joseph.AccountID, dto.OperationRequest{Value: decPtr(5)})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	_, err = svc.Ledger.Deposit(ctx, joseph.AccountID, dto.OperationRequest{Value: decStr("9.99999999999999999")})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	_, err = svc.Ledger.Withdraw(ctx, joseph.AccountID, dto.OperationRequest{Value: decStr("9.9999999999999999")})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	statement, err = svc.Statement.GetStatement(ctx, joseph.AccountID, domain.StatementFilter{})
	require.NoError(t, err)
	assert.Len(t, statement, 2, "rejected operations create no entry")

	assert.ErrorIs(t, svc.Account.DeleteAccount(ctx, carlos.AccountID), apperrors.ErrConstraintViolation)
	empty, err := svc.Account.CreateAccount(ctx, dto.CreateAccountRequest{OwnerName: "Nobody"})
	require.NoError(t, err)
	assert.NoError(t, svc.Account.DeleteAccount(ctx, empty.AccountID))
}

func TestLedgerScenario_FailedSecondLegLeavesNoEntry(t *testing.T) {
	ctx := context.Background()
	repos := openStore(t)
	accounts := services.NewAccountService(repos.AccountRepo)
	statements := services.NewStatementService(repos.AccountRepo, repos.LedgerRepo)
	ledger := services.NewLedgerService(faultyTxManager{inner: repos.TxManager})

	joseph, err := accounts.CreateAccount(ctx, dto.CreateAccountRequest{OwnerName: "Joseph Smith"})
	require.NoError(t, err)
	carlos, err := accounts.CreateAccount(ctx, dto.CreateAccountRequest{OwnerName: "Carlos Maia"})
	require.NoError(t, err)

	_, err = ledger.Transfer(ctx, joseph.AccountID, dto.TransferRequest{Value: decPtr(50), DestinationAccountID: &carlos.AccountID})
	require.ErrorContains(t, err, "disk full")

	for _, id := range []int64{joseph.AccountID, carlos.AccountID} {
		statement, err := statements.GetStatement(ctx, id, domain.StatementFilter{})
		require.NoError(t, err)
		assert.Empty(t, statement)
	}
}

func TestLedgerScenario_SameAccountTransfer(t *testing.T) {
	ctx := context.Background()
	repos := openStore(t)
	svc := services.NewServiceContainer(repos, nil)

	joseph, err := svc.Account.CreateAccount(ctx, dto.CreateAccountRequest{OwnerName: "Joseph Smith"})
	require.NoError(t, err)

	_, err = svc.Ledger.Transfer(ctx, joseph.AccountID, dto.TransferRequest{Value: decPtr(50), DestinationAccountID: &joseph.AccountID})
	assert.ErrorIs(t, err, apperrors.ErrSameAccount)
}
