package domain

import "time"

// StatementFilter narrows a bank statement. Every field is optional and a nil
// field adds no predicate.
type StatementFilter struct {
	CounterpartyName *string
	StartTime        *time.Time
	EndTime          *time.Time
}

// IsEmpty reports whether no optional predicate is set.
func (f StatementFilter) IsEmpty() bool {
	return f.CounterpartyName == nil && f.StartTime == nil && f.EndTime == nil
}

// StatementPage is one page of a paginated statement.
type StatementPage struct {
	Transactions []Transaction
	NextToken    *string
}
