// Package query holds the composable predicates used to select ledger entries.
// A Spec is a conjunction of independent conditions; stores either evaluate it
// in memory with Matches or render each condition into their own query language.
package query

import (
	"time"

	"github.com/SscSPs/bank_ledger_app/internal/core/domain"
)

// Field names a filterable ledger entry attribute.
type Field string

const (
	FieldAccountID    Field = "account_id"
	FieldCreatedAt    Field = "created_at"
	FieldCounterparty Field = "counterparty_name"
	FieldCursor       Field = "cursor"
)

// Operator is the comparison applied by a Condition.
type Operator string

const (
	OpEqual          Operator = "="
	OpGreaterOrEqual Operator = ">="
	OpLessOrEqual    Operator = "<="
	OpAfter          Operator = "after"
)

// Cursor is a keyset position in (timestamp, id) order.
type Cursor struct {
	Timestamp     time.Time
	TransactionID int64
}

// Condition is a single boolean predicate over a ledger entry.
type Condition struct {
	Field Field
	Op    Operator
	Value any
}

// AccountIs restricts entries to the given owning account.
func AccountIs(accountID int64) Condition {
	return Condition{Field: FieldAccountID, Op: OpEqual, Value: accountID}
}

// CreatedFrom keeps entries created at or after from.
func CreatedFrom(from time.Time) Condition {
	return Condition{Field: FieldCreatedAt, Op: OpGreaterOrEqual, Value: from}
}

// CreatedUntil keeps entries created at or before until.
func CreatedUntil(until time.Time) Condition {
	return Condition{Field: FieldCreatedAt, Op: OpLessOrEqual, Value: until}
}

// CounterpartyIs keeps entries whose counterparty equals name exactly.
// Entries without a counterparty never match.
func CounterpartyIs(name string) Condition {
	return Condition{Field: FieldCounterparty, Op: OpEqual, Value: name}
}

// After keeps entries strictly after the cursor in (timestamp, id) order.
func After(c Cursor) Condition {
	return Condition{Field: FieldCursor, Op: OpAfter, Value: c}
}

// Matches evaluates the condition against txn. Unknown conditions never match.
func (c Condition) Matches(txn domain.Transaction) bool {
	switch c.Field {
	case FieldAccountID:
		id, ok := c.Value.(int64)
		return ok && c.Op == OpEqual && txn.AccountID == id
	case FieldCreatedAt:
		ts, ok := c.Value.(time.Time)
		if !ok {
			return false
		}
		switch c.Op {
		case OpGreaterOrEqual:
			return !txn.Timestamp.Before(ts)
		case OpLessOrEqual:
			return !txn.Timestamp.After(ts)
		}
	case FieldCounterparty:
		name, ok := c.Value.(string)
		return ok && c.Op == OpEqual && txn.CounterpartyName != nil && *txn.CounterpartyName == name
	case FieldCursor:
		cur, ok := c.Value.(Cursor)
		if !ok || c.Op != OpAfter {
			return false
		}
		if txn.Timestamp.Equal(cur.Timestamp) {
			return txn.TransactionID > cur.TransactionID
		}
		return txn.Timestamp.After(cur.Timestamp)
	}
	return false
}

// Spec is an immutable conjunction of conditions.
type Spec struct {
	conditions []Condition
}

// Where starts a Spec with a first condition.
func Where(c Condition) Spec {
	return Spec{conditions: []Condition{c}}
}

// And returns a new Spec with c appended to the conjunction.
func (s Spec) And(c Condition) Spec {
	conditions := make([]Condition, len(s.conditions), len(s.conditions)+1)
	copy(conditions, s.conditions)
	return Spec{conditions: append(conditions, c)}
}

// Conditions returns a copy of the conjoined conditions in insertion order.
func (s Spec) Conditions() []Condition {
	out := make([]Condition, len(s.conditions))
	copy(out, s.conditions)
	return out
}

// Len returns the number of conditions.
func (s Spec) Len() int {
	return len(s.conditions)
}

// Matches reports whether txn satisfies every condition. An empty Spec matches everything.
func (s Spec) Matches(txn domain.Transaction) bool {
	for _, c := range s.conditions {
		if !c.Matches(txn) {
			return false
		}
	}
	return true
}

// AccountID returns the account the Spec is pinned to, if any.
func (s Spec) AccountID() (int64, bool) {
	for _, c := range s.conditions {
		if c.Field == FieldAccountID && c.Op == OpEqual {
			if id, ok := c.Value.(int64); ok {
				return id, true
			}
		}
	}
	return 0, false
}
