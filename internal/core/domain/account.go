package domain

// MaxOwnerNameLength bounds Account.OwnerName.
const MaxOwnerNameLength = 50

// Account represents a bank account within the core domain.
// IDs are assigned by the store on creation.
type Account struct {
	AccountID int64  `json:"accountID"`
	OwnerName string `json:"ownerName"`
}

// Equal reports whether both values denote the same stored account.
// Identity is the store-assigned ID only.
func (a Account) Equal(other Account) bool {
	return a.AccountID == other.AccountID
}
