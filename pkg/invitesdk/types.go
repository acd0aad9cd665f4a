package invitesdk

import "time"

// ============================================================================
// Request Types
// ============================================================================

// CreateInvitationRequest creates a new invitation. Setting Email makes the
// invitation personal; leaving it empty creates a public invitation that
// anyone (optionally restricted by DomainWhitelist) may accept.
type CreateInvitationRequest struct {
	// Email binds the invitation to one recipient.
	Email string `json:"email,omitempty"`

	// Name optionally prefills the invitee's display name.
	Name string `json:"name,omitempty"`

	// DomainWhitelist is a comma-separated list of email domains allowed to
	// accept a public invitation, e.g. "example.com,partner.org".
	DomainWhitelist string `json:"domainWhitelist,omitempty"`

	// Resend refreshes the expiry of an existing pending invitation for the
	// same email instead of failing with already_invited.
	Resend bool `json:"resend,omitempty"`
}

// AcceptInvitationRequest accepts an invitation on behalf of the invitee.
type AcceptInvitationRequest struct {
	// Email is required for public invitations. For personal invitations it
	// may be omitted; when present it must match the bound address.
	Email string `json:"email,omitempty"`

	// Name is the display name for the new account. The name recorded on a
	// personal invitation takes precedence.
	Name string `json:"name,omitempty"`

	// Password for the new account. A random one is generated when omitted.
	Password string `json:"password,omitempty"`

	// Attributes are free-form key/value pairs stored on the new user.
	Attributes map[string]string `json:"attributes,omitempty"`
}

// RejectInvitationRequest declines a personal invitation.
type RejectInvitationRequest struct {
	// Email must match the invitation's bound address.
	Email string `json:"email"`
}

// ============================================================================
// Response Types
// ============================================================================

// InvitationResponse is the wire form of an invitation.
type InvitationResponse struct {
	ID              string    `json:"id"`
	InviterID       string    `json:"inviterId"`
	Email           string    `json:"email,omitempty"`
	Name            string    `json:"name,omitempty"`
	Status          string    `json:"status"`
	DomainWhitelist string    `json:"domainWhitelist,omitempty"`
	ExpiresAt       time.Time `json:"expiresAt"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// UserResponse is the wire form of a provisioned user.
type UserResponse struct {
	ID         string            `json:"id"`
	Email      string            `json:"email"`
	Name       string            `json:"name,omitempty"`
	InvitedBy  string            `json:"invitedBy,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
	CreatedAt  time.Time         `json:"createdAt"`
}

// AcceptInvitationResponse is returned on successful acceptance.
type AcceptInvitationResponse struct {
	Invitation InvitationResponse `json:"invitation"`
	User       UserResponse       `json:"user"`

	// SessionToken is present when the service has auto sign-in enabled.
	SessionToken string `json:"sessionToken,omitempty"`
}

// ListInvitationsResponse wraps a page of invitations.
type ListInvitationsResponse struct {
	Invitations []InvitationResponse `json:"invitations"`
	Limit       int                  `json:"limit"`
	Offset      int                  `json:"offset"`
}

// HealthChecks reports the status of the service's critical dependencies.
type HealthChecks struct {
	Database string `json:"database"`
}

// HealthResponse is returned by the /livez and /readyz probes.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// ErrorResponse is the standard error envelope.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}
