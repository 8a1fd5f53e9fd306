package models

import "time"

// RoleType distinguishes the two kinds of principals.
type RoleType string

const (
	RoleStudent RoleType = "STUDENT"
	RoleAdmin   RoleType = "ADMIN"
)

// Account defines the credential record for a principal, based on the
// 'accounts' table. Students and placement-cell administrators share this
// single identity model; the role tag selects the attached profile.
type Account struct {
	ID        int64     `json:"id" db:"id"`
	Username  string    `json:"username" db:"username"`
	Email     string    `json:"email" db:"email"`
	Password  string    `json:"-" db:"password"` // bcrypt hash, excluded from JSON
	Role      RoleType  `json:"role" db:"role"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// AdminProfile carries the placement-cell staff attributes of an ADMIN
// account, based on the 'admin_profiles' table.
type AdminProfile struct {
	ID         int64  `json:"id" db:"id"`
	AccountID  int64  `json:"accountId" db:"account_id"`
	Department string `json:"department" db:"department"`

	Account *Account `json:"account,omitempty"` // relation, no db tag
}
