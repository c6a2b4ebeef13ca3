// Package events declares the outbound port for ledger notifications.
package events

import (
	"context"
	"strings"
	"time"

	"github.com/SscSPs/bank_ledger_app/internal/core/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerEvent is the payload published for every committed ledger entry.
type LedgerEvent struct {
	EventID          string                 `json:"eventId"`
	EventType        string                 `json:"eventType"`
	TransactionID    int64                  `json:"transactionId"`
	AccountID        int64                  `json:"accountId"`
	Amount           decimal.Decimal        `json:"amount"`
	TransactionType  domain.TransactionType `json:"type"`
	CounterpartyName *string                `json:"counterpartyName,omitempty"`
	Timestamp        time.Time              `json:"timestamp"`
}

// RoutingKey returns the topic/key the event is published under, e.g. "ledger.transfer".
func (e LedgerEvent) RoutingKey() string {
	return e.EventType
}

// NewLedgerEvent builds the event for a committed entry.
func NewLedgerEvent(txn domain.Transaction) LedgerEvent {
	return LedgerEvent{
		EventID:          uuid.NewString(),
		EventType:        "ledger." + strings.ToLower(string(txn.TransactionType)),
		TransactionID:    txn.TransactionID,
		AccountID:        txn.AccountID,
		Amount:           txn.Amount,
		TransactionType:  txn.TransactionType,
		CounterpartyName: txn.CounterpartyName,
		Timestamp:        txn.Timestamp,
	}
}

// LedgerEventPublisher publishes ledger events after the owning unit of work committed.
type LedgerEventPublisher interface {
	Publish(ctx context.Context, evts ...LedgerEvent) error
	Close() error
}

// NoopPublisher drops every event. It is used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, ...LedgerEvent) error { return nil }

func (NoopPublisher) Close() error { return nil }
