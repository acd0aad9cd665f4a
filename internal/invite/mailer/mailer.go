// Package mailer defines the outbound notification hook for invitations.
//
// Delivery is best effort: the service calls the mailer after the invitation
// is durably stored and ignores any error beyond logging it, so a flaky mail
// provider can never fail an otherwise valid create or resend.
package mailer

import (
	"context"
	"time"

	"github.com/aussiebroadwan/appinvite/pkg/slogx"
)

// InvitationEmail carries everything a delivery backend needs to render an
// invitation message. Email is empty for public invitations, which have no
// bound recipient.
type InvitationEmail struct {
	InvitationID string
	InviterID    string
	Email        string
	Name         string
	ExpiresAt    time.Time
	Resend       bool
}

// InvitationMailer delivers invitation notifications.
type InvitationMailer interface {
	SendInvitation(ctx context.Context, msg InvitationEmail) error
}

// Func adapts a plain function into an InvitationMailer.
type Func func(ctx context.Context, msg InvitationEmail) error

func (f Func) SendInvitation(ctx context.Context, msg InvitationEmail) error {
	return f(ctx, msg)
}

// LogMailer is the default backend. It records the would-be delivery on the
// contextual logger instead of sending anything, which is what you want in
// development and in deployments that handle mail out of band.
type LogMailer struct{}

func NewLogMailer() *LogMailer { return &LogMailer{} }

func (m *LogMailer) SendInvitation(ctx context.Context, msg InvitationEmail) error {
	slogx.FromContext(ctx).Info("invitation email",
		"invitation_id", msg.InvitationID,
		"email", msg.Email,
		"resend", msg.Resend,
		"expires_at", msg.ExpiresAt,
	)
	return nil
}
