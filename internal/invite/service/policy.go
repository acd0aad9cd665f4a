package service

import (
	"context"

	"github.com/aussiebroadwan/appinvite/internal/invite/domain"
)

// CreatePolicy decides whether an inviter may create an invitation of a given
// kind. Implementations range from static configuration flags to callbacks
// into the host framework's role system.
type CreatePolicy interface {
	CanCreate(ctx context.Context, inviterID string, kind domain.InvitationKind) bool
}

// CreatePolicyFunc adapts a plain function into a CreatePolicy.
type CreatePolicyFunc func(ctx context.Context, inviterID string, kind domain.InvitationKind) bool

func (f CreatePolicyFunc) CanCreate(ctx context.Context, inviterID string, kind domain.InvitationKind) bool {
	return f(ctx, inviterID, kind)
}

// StaticCreatePolicy allows or denies by invitation kind alone.
type StaticCreatePolicy struct {
	AllowPersonal bool
	AllowPublic   bool
}

func (p StaticCreatePolicy) CanCreate(_ context.Context, _ string, kind domain.InvitationKind) bool {
	switch kind {
	case domain.KindPersonal:
		return p.AllowPersonal
	case domain.KindPublic:
		return p.AllowPublic
	}
	return false
}

// CancelPolicy decides whether an actor may cancel an invitation.
type CancelPolicy interface {
	CanCancel(ctx context.Context, actorID string, inv domain.Invitation) bool
}

// CancelPolicyFunc adapts a plain function into a CancelPolicy.
type CancelPolicyFunc func(ctx context.Context, actorID string, inv domain.Invitation) bool

func (f CancelPolicyFunc) CanCancel(ctx context.Context, actorID string, inv domain.Invitation) bool {
	return f(ctx, actorID, inv)
}

// InviterOnlyCancelPolicy permits cancellation only by the invitation's own
// creator. This is the default.
type InviterOnlyCancelPolicy struct{}

func (InviterOnlyCancelPolicy) CanCancel(_ context.Context, actorID string, inv domain.Invitation) bool {
	return actorID != "" && actorID == inv.InviterID
}

// DenyCancelPolicy forbids cancellation entirely, for deployments that treat
// issued invitations as immutable until they expire.
type DenyCancelPolicy struct{}

func (DenyCancelPolicy) CanCancel(context.Context, string, domain.Invitation) bool { return false }
