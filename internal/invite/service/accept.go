package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/appinvite/internal/invite/domain"
	"github.com/aussiebroadwan/appinvite/internal/invite/store"
	"github.com/aussiebroadwan/appinvite/pkg/cryptox"
	"github.com/aussiebroadwan/appinvite/pkg/idx"
	"github.com/aussiebroadwan/appinvite/pkg/jwtx"
	"github.com/aussiebroadwan/appinvite/pkg/slogx"
)

type AcceptInvitationParams struct {
	InvitationID string

	// Email is the accepting user's address. Optional for personal
	// invitations (the bound address is used); required for public ones.
	Email string

	// Name is the display name for the provisioned user. For personal
	// invitations the name recorded on the invitation takes precedence.
	Name string

	// Password for the new account. Empty generates a random one; the user
	// then goes through the host framework's password reset flow.
	Password string

	// Attributes are free-form key/value pairs copied onto the new user.
	Attributes map[string]string
}

// AcceptResult is what a successful acceptance produces: the provisioned
// user, the accepted invitation, and a session token when auto sign-in is
// enabled.
type AcceptResult struct {
	User         domain.User
	Invitation   domain.Invitation
	SessionToken string
}

// AcceptInvitation accepts a pending invitation and provisions the invitee's
// user account. It performs the following steps:
//  1. Looks up the invitation
//  2. Rejects terminal invitations, applying lazy expiry to overdue pending ones
//  3. Validates the email against the binding (personal) or whitelist (public)
//  4. Hashes the password (generating one when absent)
//  5. Atomically flips pending to accepted and creates the user
//  6. Mints a session token when auto sign-in is enabled
//
// Under concurrent accepts of the same invitation exactly one caller wins;
// the rest observe ErrInvalidState.
func (s *InvitationService) AcceptInvitation(
	ctx context.Context,
	p AcceptInvitationParams,
) (AcceptResult, error) {
	log := slogx.FromContext(ctx)

	if p.InvitationID == "" {
		return AcceptResult{}, ErrInvalidRequest
	}

	// 1. Look up the invitation.
	inv, err := s.Store.Invitations().GetInvitationByID(ctx, p.InvitationID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return AcceptResult{}, ErrInvitationNotFound
		}
		log.Error("failed to fetch invitation", slog.Any("error", err))
		return AcceptResult{}, err
	}

	// 2. Status gate. Stored-expired and lazily-expired invitations both
	// surface as expired to the invitee; other terminal statuses are a
	// plain state error.
	now := s.now()
	switch {
	case inv.Status == domain.StatusExpired:
		return AcceptResult{}, ErrInvitationExpired
	case inv.Status.Terminal():
		return AcceptResult{}, ErrInvalidState
	case inv.IsExpired(now):
		s.lazyExpire(ctx, inv.ID, now)
		return AcceptResult{}, ErrInvitationExpired
	}

	// 3. Email binding.
	email := normalizeEmail(p.Email)
	if inv.IsPersonal() {
		if email == "" {
			email = normalizeEmail(inv.Email)
		} else if email != normalizeEmail(inv.Email) {
			log.Warn("invitation accept with mismatched email",
				slog.String("invitation_id", inv.ID),
			)
			return AcceptResult{}, ErrEmailMismatch
		}
	} else {
		if email == "" {
			return AcceptResult{}, ErrEmailRequired
		}
		if domain.EmailDomain(email) == "" {
			return AcceptResult{}, ErrInvalidRequest
		}
		if !inv.Whitelist.Allows(email) {
			log.Warn("invitation accept from non-whitelisted domain",
				slog.String("invitation_id", inv.ID),
				slog.String("domain", domain.EmailDomain(email)),
			)
			return AcceptResult{}, ErrDomainNotAllowed
		}
	}

	name := strings.TrimSpace(p.Name)
	if inv.IsPersonal() && inv.Name != "" {
		name = inv.Name
	}

	// 4. Hash the password, generating one when the invitee did not choose.
	password := p.Password
	if password == "" {
		password, err = cryptox.GeneratePassword()
		if err != nil {
			log.Error("failed to generate password", slog.Any("error", err))
			return AcceptResult{}, err
		}
	}
	passwordHash, err := cryptox.HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return AcceptResult{}, err
	}

	// 5. Flip the invitation and create the user in one transaction. The
	// compare-and-set carries the concurrency guarantee: a lost race rolls
	// the whole acceptance back.
	newUser := domain.User{
		ID:           idx.New().String(),
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		InvitedBy:    inv.InviterID,
		Attributes:   p.Attributes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		err := tx.Invitations().TransitionStatus(ctx, inv.ID, domain.StatusPending, domain.StatusAccepted, now)
		if err != nil {
			return err
		}
		return tx.Users().CreateUser(ctx, newUser)
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrConflict):
			return AcceptResult{}, s.concurrentAcceptError(ctx, inv.ID)
		case errors.Is(err, store.ErrNotFound):
			return AcceptResult{}, ErrInvitationNotFound
		case errors.Is(err, store.ErrAlreadyExists):
			log.Warn("invitation accept with already-registered email",
				slog.String("invitation_id", inv.ID),
			)
			return AcceptResult{}, ErrEmailTaken
		}
		log.Error("failed to accept invitation",
			slog.String("invitation_id", inv.ID),
			slog.Any("error", err),
		)
		return AcceptResult{}, err
	}

	inv.Status = domain.StatusAccepted

	log.Info("invitation accepted",
		slog.String("invitation_id", inv.ID),
		slog.String("user_id", newUser.ID),
		slog.String("inviter_id", inv.InviterID),
	)

	result := AcceptResult{User: newUser, Invitation: inv}

	// 6. Auto sign-in.
	if s.Signer != nil {
		ttl := s.SessionTTL
		if ttl <= 0 {
			ttl = jwtx.DefaultSessionTTL
		}
		claims := jwtx.NewSessionClaims(newUser.ID, newUser.Email, newUser.Name, s.SessionScopes, s.Issuer, ttl, now)
		token, err := s.Signer.Sign(claims)
		if err != nil {
			// The account exists either way; a failed token mint must not
			// unwind the acceptance.
			log.Error("failed to mint session token", slog.Any("error", err))
		} else {
			result.SessionToken = token
		}
	}

	return result, nil
}

// lazyExpire flips an overdue pending invitation to expired. Losing the race
// to another transition is fine; the record is terminal either way.
func (s *InvitationService) lazyExpire(ctx context.Context, id string, at time.Time) {
	err := s.Store.Invitations().TransitionStatus(ctx, id, domain.StatusPending, domain.StatusExpired, at)
	if err != nil && !errors.Is(err, store.ErrConflict) && !errors.Is(err, store.ErrNotFound) {
		slogx.FromContext(ctx).Error("failed to expire invitation",
			slog.String("invitation_id", id),
			slog.Any("error", err),
		)
	}
}

// concurrentAcceptError maps a lost accept race onto the invitee-facing
// error: expired when the record ran out while we raced, invalid state when
// another caller moved it first.
func (s *InvitationService) concurrentAcceptError(ctx context.Context, id string) error {
	inv, err := s.Store.Invitations().GetInvitationByID(ctx, id)
	if err == nil && inv.Status == domain.StatusExpired {
		return ErrInvitationExpired
	}
	return ErrInvalidState
}
