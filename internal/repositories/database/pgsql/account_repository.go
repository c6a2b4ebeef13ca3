package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/bank_ledger_app/internal/apperrors"
	"github.com/SscSPs/bank_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bank_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/bank_ledger_app/internal/models"
	"github.com/SscSPs/bank_ledger_app/internal/utils/mapping"
)

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(db querier) *PgxAccountRepository {
	return &PgxAccountRepository{BaseRepository: BaseRepository{db: db}}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

// SaveAccount inserts a new account and returns it with the store-assigned id.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) (*domain.Account, error) {
	modelAcc := mapping.ToModelAccount(account)

	query := `
		INSERT INTO accounts (owner_name)
		VALUES ($1)
		RETURNING account_id;
	`
	if err := r.db.QueryRow(ctx, query, modelAcc.OwnerName).Scan(&modelAcc.AccountID); err != nil {
		return nil, translateError(err, "save account")
	}

	saved := mapping.ToDomainAccount(modelAcc)
	return &saved, nil
}

// FindAccountByID retrieves an account by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	query := `
		SELECT account_id, owner_name
		FROM accounts
		WHERE account_id = $1;
	`
	var modelAcc models.Account
	err := r.db.QueryRow(ctx, query, accountID).Scan(&modelAcc.AccountID, &modelAcc.OwnerName)
	if err != nil {
		return nil, translateError(err, fmt.Sprintf("find account %d", accountID))
	}

	account := mapping.ToDomainAccount(modelAcc)
	return &account, nil
}

// ListAccounts returns accounts ordered by id.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error) {
	if limit <= 0 {
		return []domain.Account{}, nil
	}
	query := `
		SELECT account_id, owner_name
		FROM accounts
		ORDER BY account_id
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, translateError(err, "list accounts")
	}
	defer rows.Close()

	modelAccs := make([]models.Account, 0, limit)
	for rows.Next() {
		var modelAcc models.Account
		if err := rows.Scan(&modelAcc.AccountID, &modelAcc.OwnerName); err != nil {
			return nil, fmt.Errorf("error scanning account row: %w", err)
		}
		modelAccs = append(modelAccs, modelAcc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}

	return mapping.ToDomainAccounts(modelAccs), nil
}

// UpdateAccount renames an existing account.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	modelAcc := mapping.ToModelAccount(account)
	query := `
		UPDATE accounts
		SET owner_name = $2
		WHERE account_id = $1;
	`
	cmdTag, err := r.db.Exec(ctx, query, modelAcc.AccountID, modelAcc.OwnerName)
	if err != nil {
		return translateError(err, fmt.Sprintf("update account %d", modelAcc.AccountID))
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteAccount removes an account. Accounts still referenced by ledger
// entries are protected by the foreign key.
func (r *PgxAccountRepository) DeleteAccount(ctx context.Context, accountID int64) error {
	query := `DELETE FROM accounts WHERE account_id = $1;`
	cmdTag, err := r.db.Exec(ctx, query, accountID)
	if err != nil {
		return translateError(err, fmt.Sprintf("delete account %d", accountID))
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
