package models

// Account is the persisted row of an account.
type Account struct {
	AccountID int64  `db:"account_id" json:"accountID"`
	OwnerName string `db:"owner_name" json:"ownerName"`
}
