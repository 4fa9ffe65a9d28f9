package models

import "time"

// User represents an account entity used for authentication and
// authorization. The wire representation uses camelCase field names;
// credential material never leaves the persistence boundary.
type User struct {
	// UserID is the internal surrogate identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Username is the unique public identifier of the account.
	// It must not contain whitespace.
	Username string `json:"username"`

	// HashedPassword is the bcrypt digest of the user's password.
	// The plaintext is never stored. Excluded from JSON serialization.
	HashedPassword []byte `json:"-"`

	// FirstName is the user's given name.
	FirstName string `json:"firstName"`

	// LastName is the user's family name.
	LastName string `json:"lastName"`

	// Email is the user's contact address.
	Email string `json:"email"`

	// AddDate is the timestamp of account creation. Set once at sign-up
	// and immutable afterwards. Excluded from JSON serialization.
	AddDate time.Time `json:"-"`

	// Role is the authorization role; new accounts always start as "user".
	Role string `json:"role"`
}

// TableName returns the name of the database table associated with the
// User model.
func (u User) TableName() string {
	return "users"
}

// Profile returns the public view of the account, safe to hand to clients.
func (u User) Profile() UserProfile {
	return UserProfile{
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Role:      u.Role,
	}
}
