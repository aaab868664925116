package domain

import (
	"time"
)

// Account is a registered identity in the account directory.
// Accounts are created once at sign-up and never mutated afterwards.
type Account struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`    // Unique, matched exactly (case-sensitive)
	Credential string    `json:"password"` // Stored as entered; never leaves the service layer
	JoinDate   time.Time `json:"joinDate"`
}

// Profile is the caller-facing view of an Account, without the credential.
// It is also what the session holder persists.
type Profile struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	JoinDate time.Time `json:"joinDate"`
}

// Profile strips the credential off the account.
func (a *Account) Profile() Profile {
	return Profile{
		ID:       a.ID,
		Name:     a.Name,
		Email:    a.Email,
		JoinDate: a.JoinDate,
	}
}
