package pgsql

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/bank_ledger_app/internal/core/query"
)

const selectTransactionsSQL = `SELECT transaction_id, created_at, amount, transaction_type, counterparty_name, account_id FROM transactions`

// argList collects positional arguments and hands out their placeholders.
type argList struct {
	values []any
}

func (a *argList) add(v any) string {
	a.values = append(a.values, v)
	return "$" + strconv.Itoa(len(a.values))
}

// buildTransactionQuery renders a Spec into a parameterized SELECT ordered by
// (created_at, transaction_id). A limit of zero or less returns every match.
func buildTransactionQuery(spec query.Spec, limit int) (string, []any, error) {
	args := &argList{}
	clauses := make([]string, 0, spec.Len())
	for _, c := range spec.Conditions() {
		clause, err := conditionSQL(c, args)
		if err != nil {
			return "", nil, err
		}
		clauses = append(clauses, clause)
	}

	var sb strings.Builder
	sb.WriteString(selectTransactionsSQL)
	if len(clauses) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(clauses, " AND "))
	}
	sb.WriteString(" ORDER BY created_at, transaction_id")
	if limit > 0 {
		sb.WriteString(" LIMIT ")
		sb.WriteString(args.add(limit))
	}
	return sb.String(), args.values, nil
}

func conditionSQL(c query.Condition, args *argList) (string, error) {
	switch c.Field {
	case query.FieldAccountID:
		id, ok := c.Value.(int64)
		if !ok || c.Op != query.OpEqual {
			break
		}
		return "account_id = " + args.add(id), nil
	case query.FieldCreatedAt:
		ts, ok := c.Value.(time.Time)
		if !ok || (c.Op != query.OpGreaterOrEqual && c.Op != query.OpLessOrEqual) {
			break
		}
		return fmt.Sprintf("created_at %s %s", c.Op, args.add(ts)), nil
	case query.FieldCounterparty:
		name, ok := c.Value.(string)
		if !ok || c.Op != query.OpEqual {
			break
		}
		return "counterparty_name = " + args.add(name), nil
	case query.FieldCursor:
		cur, ok := c.Value.(query.Cursor)
		if !ok || c.Op != query.OpAfter {
			break
		}
		return fmt.Sprintf("(created_at, transaction_id) > (%s, %s)", args.add(cur.Timestamp), args.add(cur.TransactionID)), nil
	}
	return "", fmt.Errorf("unsupported condition %s %s %v", c.Field, c.Op, c.Value)
}
