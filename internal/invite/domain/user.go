package domain

import "time"

// User is an account provisioned when an invitation is accepted. Attributes
// carries host-defined extra fields passed through acceptance untouched.
type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	InvitedBy    string // Invitation id that created this account
	Attributes   map[string]string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
