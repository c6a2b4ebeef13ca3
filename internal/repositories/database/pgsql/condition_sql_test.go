package pgsql

import (
	"testing"
	"time"

	"github.com/SscSPs/bank_ledger_app/internal/core/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTransactionQuery(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC)

	tests := []struct {
		name      string
		spec      query.Spec
		limit     int
		wantWhere string
		wantArgs  []any
	}{
		{
			name:      "no conditions",
			spec:      query.Spec{},
			wantWhere: " ORDER BY created_at, transaction_id",
			wantArgs:  nil,
		},
		{
			name:      "account only",
			spec:      query.Where(query.AccountIs(7)),
			wantWhere: " WHERE account_id = $1 ORDER BY created_at, transaction_id",
			wantArgs:  []any{int64(7)},
		},
		{
			name:      "range and counterparty with limit",
			spec:      query.Where(query.AccountIs(7)).And(query.CreatedFrom(from)).And(query.CreatedUntil(until)).And(query.CounterpartyIs("Carlos Maia")),
			limit:     11,
			wantWhere: " WHERE account_id = $1 AND created_at >= $2 AND created_at <= $3 AND counterparty_name = $4 ORDER BY created_at, transaction_id LIMIT $5",
			wantArgs:  []any{int64(7), from, until, "Carlos Maia", 11},
		},
		{
			name:      "keyset cursor",
			spec:      query.Where(query.AccountIs(7)).And(query.After(query.Cursor{Timestamp: from, TransactionID: 42})),
			limit:     3,
			wantWhere: " WHERE account_id = $1 AND (created_at, transaction_id) > ($2, $3) ORDER BY created_at, transaction_id LIMIT $4",
			wantArgs:  []any{int64(7), from, int64(42), 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args, err := buildTransactionQuery(tt.spec, tt.limit)
			require.NoError(t, err)
			assert.Equal(t, selectTransactionsSQL+tt.wantWhere, sql)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestBuildTransactionQuery_RejectsUnsupportedCondition(t *testing.T) {
	spec := query.Where(query.Condition{Field: "amount", Op: query.OpEqual, Value: 10})
	_, _, err := buildTransactionQuery(spec, 0)
	assert.Error(t, err)

	badValue := query.Where(query.Condition{Field: query.FieldAccountID, Op: query.OpEqual, Value: "7"})
	_, _, err = buildTransactionQuery(badValue, 0)
	assert.Error(t, err)
}
