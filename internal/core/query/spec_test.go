package query_test

import (
	"testing"
	"time"

	"github.com/SscSPs/bank_ledger_app/internal/core/domain"
	"github.com/SscSPs/bank_ledger_app/internal/core/query"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func name(s string) *string { return &s }

var base = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

func TestCondition_Matches(t *testing.T) {
	deposit := domain.Transaction{TransactionID: 1, AccountID: 1, Timestamp: base, Amount: decimal.NewFromInt(100), TransactionType: domain.Deposit}
	transfer := domain.Transaction{TransactionID: 2, AccountID: 1, Timestamp: base.Add(time.Hour), Amount: decimal.NewFromInt(-50), TransactionType: domain.Transfer, CounterpartyName: name("Carlos Maia")}

	tests := []struct {
		name      string
		condition query.Condition
		txn       domain.Transaction
		want      bool
	}{
		{"account matches", query.AccountIs(1), deposit, true},
		{"account differs", query.AccountIs(2), deposit, false},
		{"from is inclusive", query.CreatedFrom(base), deposit, true},
		{"from excludes earlier", query.CreatedFrom(base.Add(time.Second)), deposit, false},
		{"until is inclusive", query.CreatedUntil(base), deposit, true},
		{"until excludes later", query.CreatedUntil(base), transfer, false},
		{"counterparty exact", query.CounterpartyIs("Carlos Maia"), transfer, true},
		{"counterparty is case sensitive", query.CounterpartyIs("carlos maia"), transfer, false},
		{"counterparty never matches deposit", query.CounterpartyIs(""), deposit, false},
		{"after later timestamp", query.After(query.Cursor{Timestamp: base, TransactionID: 1}), transfer, true},
		{"after same timestamp higher id", query.After(query.Cursor{Timestamp: base, TransactionID: 0}), deposit, true},
		{"after same position", query.After(query.Cursor{Timestamp: base, TransactionID: 1}), deposit, false},
		{"unknown field", query.Condition{Field: "amount", Op: query.OpEqual, Value: 1}, deposit, false},
		{"wrong value type", query.Condition{Field: query.FieldAccountID, Op: query.OpEqual, Value: 1}, deposit, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.condition.Matches(tt.txn))
		})
	}
}

func TestSpec_AndIsConjunctiveAndImmutable(t *testing.T) {
	withAccount := query.Where(query.AccountIs(1))
	withCounterparty := withAccount.And(query.CounterpartyIs("Carlos Maia"))

	assert.Equal(t, 1, withAccount.Len())
	assert.Equal(t, 2, withCounterparty.Len())

	deposit := domain.Transaction{TransactionID: 1, AccountID: 1, Timestamp: base, TransactionType: domain.Deposit}
	assert.True(t, withAccount.Matches(deposit))
	assert.False(t, withCounterparty.Matches(deposit))

	otherAccount := domain.Transaction{TransactionID: 3, AccountID: 2, TransactionType: domain.Transfer, CounterpartyName: name("Carlos Maia")}
	assert.False(t, withCounterparty.Matches(otherAccount))
}

func TestSpec_AccountID(t *testing.T) {
	id, ok := query.Where(query.CreatedFrom(base)).And(query.AccountIs(9)).AccountID()
	assert.True(t, ok)
	assert.Equal(t, int64(9), id)

	_, ok = query.Spec{}.AccountID()
	assert.False(t, ok)
	assert.True(t, query.Spec{}.Matches(domain.Transaction{}))
}

func TestSpec_ConditionsReturnsCopy(t *testing.T) {
	spec := query.Where(query.AccountIs(1))
	conditions := spec.Conditions()
	conditions[0] = query.AccountIs(2)

	id, _ := spec.AccountID()
	assert.Equal(t, int64(1), id)
}
