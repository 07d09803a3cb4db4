package models

import "time"

// Plan tiers assignable to a user profile. The plan controls the project cap
// and whether the credit ledger is consulted at all.
const (
	PlanFree       = "free"
	PlanPro        = "pro"
	PlanEnterprise = "enterprise"
)

// DemoUserID is the fixed identity served to unauthenticated trial sessions.
// Its projects live only in process memory and its credit checks always pass.
var DemoUserID = "00000000-0000-0000-0000-000000000000"

// User represents an account profile as stored in the "profiles" table.
// The identity itself (UserID, Email, password) is owned by the external
// auth provider; this record carries the billing and plan state the backend
// is responsible for.
type User struct {
	// UserID is the opaque identifier assigned by the auth provider.
	UserID string `json:"id"`

	// Email is the address the user registered with.
	Email string `json:"email"`

	// Name is the display name of the user. Non-sensitive, shown in UI.
	Name string `json:"name"`

	// Plan is the subscription tier: "free", "pro" or "enterprise".
	Plan string `json:"plan"`

	// Credits is the remaining spendable balance. Mutated only by the
	// credit ledger via a conditional decrement.
	Credits int `json:"credits"`

	// CreditsUsed is the lifetime total of credits consumed.
	CreditsUsed int `json:"credits_used"`

	// CreatedAt is the timestamp when the profile row was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "profiles"
}

// IsDemo reports whether this profile is the fixed trial identity.
func (u User) IsDemo() bool {
	return u.UserID == DemoUserID
}
