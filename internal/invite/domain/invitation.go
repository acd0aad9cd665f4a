package domain

import "time"

// InvitationStatus tracks where an invitation is in its lifecycle. Pending is
// the only non-terminal status; a record never re-enters pending once it has
// left it.
type InvitationStatus string

const (
	StatusPending  InvitationStatus = "pending"
	StatusAccepted InvitationStatus = "accepted"
	StatusRejected InvitationStatus = "rejected"
	StatusCanceled InvitationStatus = "canceled"
	StatusExpired  InvitationStatus = "expired"
)

// Valid reports whether s is one of the known statuses.
func (s InvitationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected, StatusCanceled, StatusExpired:
		return true
	}
	return false
}

// Terminal reports whether no further transitions are possible from s.
func (s InvitationStatus) Terminal() bool {
	return s.Valid() && s != StatusPending
}

// InvitationKind distinguishes personal invitations (bound to an email
// address) from public ones (open, optionally domain-restricted).
type InvitationKind string

const (
	KindPersonal InvitationKind = "personal"
	KindPublic   InvitationKind = "public"
)

type Invitation struct {
	ID        string
	InviterID string
	Email     string // Empty for public invitations
	Name      string // Optional prefilled invitee name
	Status    InvitationStatus
	Whitelist DomainWhitelist // Public invitations only
	ExpiresAt time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Kind derives the invitation kind from the presence of a bound email.
func (i Invitation) Kind() InvitationKind {
	if i.Email != "" {
		return KindPersonal
	}
	return KindPublic
}

func (i Invitation) IsPersonal() bool { return i.Email != "" }

// IsExpired reports whether the invitation is past its expiry at the given
// instant. The stored status may still read pending; expiry is applied lazily.
func (i Invitation) IsExpired(now time.Time) bool {
	return !now.Before(i.ExpiresAt)
}
