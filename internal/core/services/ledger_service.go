package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/bank_ledger_app/internal/apperrors"
	"github.com/SscSPs/bank_ledger_app/internal/core/domain"
	"github.com/SscSPs/bank_ledger_app/internal/core/ports/events"
	portsrepo "github.com/SscSPs/bank_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bank_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/bank_ledger_app/internal/dto"
	"github.com/SscSPs/bank_ledger_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// ledgerService converts deposits, withdrawals and transfers into ledger
// entries. Every operation runs in its own unit of work.
type ledgerService struct {
	BaseService
	txManager      portsrepo.TransactionManager
	publisher      events.LedgerEventPublisher
	publishTimeout time.Duration
}

const defaultPublishTimeout = 3 * time.Second

// LedgerServiceOption is a functional option for configuring the ledger service
type LedgerServiceOption func(*ledgerService)

// WithEventPublisher sets the publisher notified after each committed operation
func WithEventPublisher(publisher events.LedgerEventPublisher) LedgerServiceOption {
	return func(s *ledgerService) {
		if publisher != nil {
			s.publisher = publisher
		}
	}
}

// WithPublishTimeout bounds how long a committed operation waits for its events to be published
func WithPublishTimeout(timeout time.Duration) LedgerServiceOption {
	return func(s *ledgerService) {
		if timeout > 0 {
			s.publishTimeout = timeout
		}
	}
}

// NewLedgerService creates a new ledger service
func NewLedgerService(txManager portsrepo.TransactionManager, options ...LedgerServiceOption) portssvc.LedgerSvc {
	svc := &ledgerService{
		txManager:      txManager,
		publisher:      events.NoopPublisher{},
		publishTimeout: defaultPublishTimeout,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.LedgerSvc = (*ledgerService)(nil)

func (s *ledgerService) Deposit(ctx context.Context, accountID int64, req dto.OperationRequest) (*domain.Transaction, error) {
	if err := validateRequest(req); err != nil {
		s.LogWarn(ctx, err, "Invalid deposit request", slog.Int64("account_id", accountID))
		return nil, err
	}
	return s.appendSingle(ctx, accountID, domain.Deposit, *req.Value)
}

func (s *ledgerService) Withdraw(ctx context.Context, accountID int64, req dto.OperationRequest) (*domain.Transaction, error) {
	if err := validateRequest(req); err != nil {
		s.LogWarn(ctx, err, "Invalid withdraw request", slog.Int64("account_id", accountID))
		return nil, err
	}
	return s.appendSingle(ctx, accountID, domain.Withdraw, *req.Value)
}

func (s *ledgerService) appendSingle(ctx context.Context, accountID int64, txnType domain.TransactionType, amount decimal.Decimal) (*domain.Transaction, error) {
	signed, err := accounting.SignedAmount(txnType, amount, true)
	if err != nil {
		return nil, err
	}
	entry := domain.Transaction{
		Amount:          signed,
		TransactionType: txnType,
		AccountID:       accountID,
	}
	if err := accounting.ValidateEntry(entry); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	var created *domain.Transaction
	err = s.txManager.RunInTx(ctx, func(ctx context.Context, uow portsrepo.UnitOfWork) error {
		if _, err := uow.Accounts().FindAccountByID(ctx, accountID); err != nil {
			return err
		}
		saved, err := uow.Ledger().AppendTransaction(ctx, entry)
		if err != nil {
			return err
		}
		created = saved
		return nil
	})
	if err != nil {
		s.logOperationFailure(ctx, err, txnType, slog.Int64("account_id", accountID))
		return nil, err
	}

	s.LogInfo(ctx, "Ledger entry committed",
		slog.String("type", string(txnType)),
		slog.Int64("account_id", accountID),
		slog.Int64("transaction_id", created.TransactionID),
		slog.String("amount", created.Amount.String()))
	s.publish(ctx, *created)
	return created, nil
}

func (s *ledgerService) Transfer(ctx context.Context, sourceAccountID int64, req dto.TransferRequest) (*domain.Transaction, error) {
	// Same-account transfers are rejected regardless of the other fields.
	if req.DestinationAccountID != nil && *req.DestinationAccountID == sourceAccountID {
		s.LogWarn(ctx, apperrors.ErrSameAccount, "Rejected transfer to the same account", slog.Int64("account_id", sourceAccountID))
		return nil, apperrors.ErrSameAccount
	}
	if err := validateRequest(req); err != nil {
		s.LogWarn(ctx, err, "Invalid transfer request", slog.Int64("account_id", sourceAccountID))
		return nil, err
	}
	destinationAccountID := *req.DestinationAccountID
	amount := req.Value.Abs()

	var legs []domain.Transaction
	err := s.txManager.RunInTx(ctx, func(ctx context.Context, uow portsrepo.UnitOfWork) error {
		source, err := uow.Accounts().FindAccountByID(ctx, sourceAccountID)
		if err != nil {
			return err
		}
		destination, err := uow.Accounts().FindAccountByID(ctx, destinationAccountID)
		if err != nil {
			return err
		}

		sourceLeg := domain.Transaction{
			Amount:           amount.Neg(),
			TransactionType:  domain.Transfer,
			CounterpartyName: &destination.OwnerName,
			AccountID:        source.AccountID,
		}
		destinationLeg := domain.Transaction{
			Amount:           amount,
			TransactionType:  domain.Transfer,
			CounterpartyName: &source.OwnerName,
			AccountID:        destination.AccountID,
		}
		if err := accounting.ValidateTransferPair(sourceLeg, destinationLeg); err != nil {
			return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}

		saved, err := uow.Ledger().AppendTransactions(ctx, []domain.Transaction{sourceLeg, destinationLeg})
		if err != nil {
			return err
		}
		if len(saved) != 2 {
			return fmt.Errorf("ledger store returned %d entries for a transfer, expected 2", len(saved))
		}
		legs = saved
		return nil
	})
	if err != nil {
		s.logOperationFailure(ctx, err, domain.Transfer,
			slog.Int64("source_account_id", sourceAccountID),
			slog.Int64("destination_account_id", destinationAccountID))
		return nil, err
	}

	s.LogInfo(ctx, "Transfer committed",
		slog.Int64("source_account_id", sourceAccountID),
		slog.Int64("destination_account_id", destinationAccountID),
		slog.Int64("source_transaction_id", legs[0].TransactionID),
		slog.Int64("destination_transaction_id", legs[1].TransactionID),
		slog.String("amount", amount.String()))
	s.publish(ctx, legs...)
	return &legs[0], nil
}

func (s *ledgerService) logOperationFailure(ctx context.Context, err error, txnType domain.TransactionType, keyvals ...any) {
	args := append([]any{slog.String("type", string(txnType))}, keyvals...)
	if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrValidation) {
		s.LogWarn(ctx, err, "Ledger operation rejected", args...)
		return
	}
	s.LogError(ctx, err, "Ledger operation failed", args...)
}

// publish notifies the publisher after commit. Failures are logged only; the
// entries are already durable. Publishing ignores request cancellation and is
// bounded by publishTimeout.
func (s *ledgerService) publish(ctx context.Context, txns ...domain.Transaction) {
	evts := make([]events.LedgerEvent, 0, len(txns))
	for _, txn := range txns {
		evts = append(evts, events.NewLedgerEvent(txn))
	}
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.publishTimeout)
	defer cancel()
	if err := s.publisher.Publish(pubCtx, evts...); err != nil {
		s.LogError(ctx, err, "Failed to publish ledger events", slog.Int("count", len(evts)))
	}
}
