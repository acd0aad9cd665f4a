package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/appinvite/internal/invite/domain"
	"github.com/aussiebroadwan/appinvite/internal/invite/mailer"
	"github.com/aussiebroadwan/appinvite/internal/invite/store"
	"github.com/aussiebroadwan/appinvite/pkg/idx"
	"github.com/aussiebroadwan/appinvite/pkg/jwtx"
	"github.com/aussiebroadwan/appinvite/pkg/slogx"
)

var (
	ErrInvalidRequest     = errors.New("invalid invitation request")
	ErrForbidden          = errors.New("not authorized for this invitation operation")
	ErrAlreadyInvited     = errors.New("a pending invitation already exists for this email")
	ErrInvitationNotFound = errors.New("invitation not found")
	ErrInvalidState       = errors.New("invitation is not pending")
	ErrInvitationExpired  = errors.New("invitation has expired")
	ErrEmailMismatch      = errors.New("email does not match the invitation")
	ErrEmailRequired      = errors.New("an email address is required to accept this invitation")
	ErrDomainNotAllowed   = errors.New("email domain is not allowed by this invitation")
	ErrNotPersonal        = errors.New("operation applies to personal invitations only")
	ErrEmailTaken         = errors.New("a user with this email already exists")
)

// DefaultExpiresIn is the invitation lifetime used when the service is not
// configured with one.
const DefaultExpiresIn = 48 * time.Hour

// InvitationService implements the invitation lifecycle: create (with resend),
// accept, reject, cancel, and the list/get read side.
type InvitationService struct {
	Store  store.Store
	Mailer mailer.InvitationMailer

	CreatePolicy CreatePolicy
	CancelPolicy CancelPolicy

	// Signer mints session tokens on acceptance. Nil disables auto sign-in;
	// accepted users then authenticate through the host framework's normal
	// sign-in flow.
	Signer        *jwtx.Signer
	Issuer        string
	SessionTTL    time.Duration
	SessionScopes []string

	ExpiresIn time.Duration

	// Now is a clock hook for tests. Defaults to time.Now.
	Now func() time.Time
}

func (s *InvitationService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

func (s *InvitationService) expiresIn() time.Duration {
	if s.ExpiresIn > 0 {
		return s.ExpiresIn
	}
	return DefaultExpiresIn
}

func (s *InvitationService) cancelPolicy() CancelPolicy {
	if s.CancelPolicy != nil {
		return s.CancelPolicy
	}
	return InviterOnlyCancelPolicy{}
}

// normalizeEmail canonicalizes an address for comparison and storage.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

type CreateInvitationParams struct {
	InviterID string

	// Email makes the invitation personal. Leave empty for a public one.
	Email string
	Name  string

	// DomainWhitelist restricts which email domains may accept a public
	// invitation (comma-separated). Ignored for personal invitations.
	DomainWhitelist string

	// Resend refreshes the expiry of an existing pending invitation for the
	// same inviter/email pair instead of failing with ErrAlreadyInvited.
	Resend bool
}

// CreateInvitation issues a new invitation, or refreshes an existing pending
// one when Resend is set. The notification email is sent best effort after the
// record is durably stored.
func (s *InvitationService) CreateInvitation(
	ctx context.Context,
	p CreateInvitationParams,
) (domain.Invitation, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate input.
	if p.InviterID == "" {
		return domain.Invitation{}, ErrInvalidRequest
	}
	email := normalizeEmail(p.Email)
	if email != "" && domain.EmailDomain(email) == "" {
		log.Warn("invitation create with malformed email", slog.String("inviter_id", p.InviterID))
		return domain.Invitation{}, ErrInvalidRequest
	}

	inv := domain.Invitation{
		ID:        idx.New().String(),
		InviterID: p.InviterID,
		Email:     email,
		Name:      strings.TrimSpace(p.Name),
	}
	if !inv.IsPersonal() {
		inv.Whitelist = domain.ParseDomainWhitelist(p.DomainWhitelist)
	}

	// 2. Authorization: the policy decides per invitation kind.
	if !s.CreatePolicy.CanCreate(ctx, p.InviterID, inv.Kind()) {
		log.Warn("invitation create denied by policy",
			slog.String("inviter_id", p.InviterID),
			slog.String("kind", string(inv.Kind())),
		)
		return domain.Invitation{}, ErrForbidden
	}

	now := s.now()

	// 3. Duplicate check for personal invitations. A live pending invitation
	// for the same inviter/email pair either blocks the create or, with
	// Resend, gets its window refreshed in place. An overdue one that
	// housekeeping has not swept yet is no duplicate: retire it lazily and
	// issue afresh.
	if inv.IsPersonal() {
		existing, err := s.Store.Invitations().GetPendingInvitationByEmail(ctx, p.InviterID, email)
		switch {
		case err == nil && existing.IsExpired(now):
			s.lazyExpire(ctx, existing.ID, now)
		case err == nil:
			if !p.Resend {
				return domain.Invitation{}, ErrAlreadyInvited
			}
			return s.resendInvitation(ctx, existing, now)
		case errors.Is(err, store.ErrNotFound):
			// No pending duplicate; fall through to create.
		default:
			log.Error("failed to check for duplicate invitation", slog.Any("error", err))
			return domain.Invitation{}, err
		}
	}

	// 4. Store the new invitation.
	inv.Status = domain.StatusPending
	inv.ExpiresAt = now.Add(s.expiresIn())
	inv.CreatedAt = now
	inv.UpdatedAt = now

	if err := s.Store.Invitations().CreateInvitation(ctx, inv); err != nil {
		log.Error("failed to create invitation",
			slog.String("invitation_id", inv.ID),
			slog.Any("error", err),
		)
		return domain.Invitation{}, err
	}

	log.Info("invitation created",
		slog.String("invitation_id", inv.ID),
		slog.String("inviter_id", inv.InviterID),
		slog.String("kind", string(inv.Kind())),
		slog.Time("expires_at", inv.ExpiresAt),
	)

	// 5. Notify best effort.
	s.sendInvitationEmail(ctx, inv, false)

	return inv, nil
}

// resendInvitation restarts the validity window of an existing pending
// invitation and re-sends the notification. The invitation id is unchanged.
func (s *InvitationService) resendInvitation(
	ctx context.Context,
	inv domain.Invitation,
	now time.Time,
) (domain.Invitation, error) {
	log := slogx.FromContext(ctx)

	inv.CreatedAt = now
	inv.UpdatedAt = now
	inv.ExpiresAt = now.Add(s.expiresIn())

	err := s.Store.Invitations().RefreshInvitation(ctx, inv.ID, inv.CreatedAt, inv.ExpiresAt)
	if err != nil {
		if errors.Is(err, store.ErrConflict) || errors.Is(err, store.ErrNotFound) {
			// The invitation left pending between lookup and refresh.
			return domain.Invitation{}, ErrInvalidState
		}
		log.Error("failed to refresh invitation",
			slog.String("invitation_id", inv.ID),
			slog.Any("error", err),
		)
		return domain.Invitation{}, err
	}

	log.Info("invitation resent",
		slog.String("invitation_id", inv.ID),
		slog.Time("expires_at", inv.ExpiresAt),
	)

	s.sendInvitationEmail(ctx, inv, true)
	return inv, nil
}

// sendInvitationEmail delivers the notification without letting a mail
// failure surface to the caller.
func (s *InvitationService) sendInvitationEmail(ctx context.Context, inv domain.Invitation, resend bool) {
	if s.Mailer == nil {
		return
	}
	err := s.Mailer.SendInvitation(ctx, mailer.InvitationEmail{
		InvitationID: inv.ID,
		InviterID:    inv.InviterID,
		Email:        inv.Email,
		Name:         inv.Name,
		ExpiresAt:    inv.ExpiresAt,
		Resend:       resend,
	})
	if err != nil {
		slogx.FromContext(ctx).Warn("invitation email delivery failed",
			slog.String("invitation_id", inv.ID),
			slog.Any("error", err),
		)
	}
}

// GetInvitation returns an invitation by id. The stored status is returned
// as-is; overdue pending records are flipped lazily by the mutating
// operations and by housekeeping, never by reads.
func (s *InvitationService) GetInvitation(ctx context.Context, id string) (domain.Invitation, error) {
	inv, err := s.Store.Invitations().GetInvitationByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Invitation{}, ErrInvitationNotFound
		}
		return domain.Invitation{}, err
	}
	return inv, nil
}

// ListInvitations returns the invitations created by inviterID, applying the
// query's pagination, search, filter and sort clauses.
func (s *InvitationService) ListInvitations(
	ctx context.Context,
	inviterID string,
	q store.ListQuery,
) ([]domain.Invitation, error) {
	if inviterID == "" {
		return nil, ErrInvalidRequest
	}
	if err := q.Normalize(); err != nil {
		return nil, err
	}
	return s.Store.Invitations().ListInvitations(ctx, inviterID, q)
}
