package model

import (
	"time"

	"github.com/google/uuid"
)

// Account represents a newsroom member. Accounts are created at signup and
// never deleted; role is the only attribute that changes afterwards, and
// only through the role-assignment rule.
type Account struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Role     Role      `json:"role"`
	MemberID string    `json:"member_id,omitempty"` // external member reference, optional
	JoinedAt time.Time `json:"joined_at"`
}

// DefaultAdminID is the well-known identity of the bootstrap administrator.
var DefaultAdminID = uuid.MustParse("00000000-0000-0000-0000-000000000001")

// DefaultAdmin returns the account seeded when the durable account
// collection is empty, so the system always has an administrator.
func DefaultAdmin() Account {
	return Account{
		ID:       DefaultAdminID,
		Name:     "Administrator",
		Email:    "admin@newspaper.com",
		Role:     RoleAdmin,
		JoinedAt: time.Now().UTC(),
	}
}
