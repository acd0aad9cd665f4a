package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aussiebroadwan/appinvite/internal/invite/domain"
	"github.com/aussiebroadwan/appinvite/internal/invite/store"
	"github.com/aussiebroadwan/appinvite/pkg/slogx"
)

// RejectInvitation declines a pending personal invitation on behalf of its
// invitee. Public invitations cannot be rejected; with no bound recipient
// there is nobody whose decline should retire the record.
func (s *InvitationService) RejectInvitation(ctx context.Context, invitationID, email string) error {
	log := slogx.FromContext(ctx)

	if invitationID == "" {
		return ErrInvalidRequest
	}

	// 1. Look up the invitation.
	inv, err := s.Store.Invitations().GetInvitationByID(ctx, invitationID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInvitationNotFound
		}
		log.Error("failed to fetch invitation", slog.Any("error", err))
		return err
	}

	// 2. Personal only.
	if !inv.IsPersonal() {
		return ErrNotPersonal
	}

	// 3. Status gate, with lazy expiry for overdue pending records. Unlike
	// accept, a reject of an expired invitation is just a state error; the
	// invitee loses nothing they still had.
	now := s.now()
	switch {
	case inv.Status.Terminal():
		return ErrInvalidState
	case inv.IsExpired(now):
		s.lazyExpire(ctx, inv.ID, now)
		return ErrInvalidState
	}

	// 4. The caller must prove they are the invitee.
	if normalizeEmail(email) != normalizeEmail(inv.Email) {
		log.Warn("invitation reject with mismatched email",
			slog.String("invitation_id", inv.ID),
		)
		return ErrEmailMismatch
	}

	// 5. Flip pending to rejected.
	err = s.Store.Invitations().TransitionStatus(ctx, inv.ID, domain.StatusPending, domain.StatusRejected, now)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrConflict):
			return ErrInvalidState
		case errors.Is(err, store.ErrNotFound):
			return ErrInvitationNotFound
		}
		log.Error("failed to reject invitation",
			slog.String("invitation_id", inv.ID),
			slog.Any("error", err),
		)
		return err
	}

	log.Info("invitation rejected", slog.String("invitation_id", inv.ID))
	return nil
}

// CancelInvitation withdraws a pending invitation. The cancel policy decides
// who may do this; by default only the inviter.
func (s *InvitationService) CancelInvitation(ctx context.Context, actorID, invitationID string) error {
	log := slogx.FromContext(ctx)

	if invitationID == "" {
		return ErrInvalidRequest
	}

	// 1. Look up the invitation.
	inv, err := s.Store.Invitations().GetInvitationByID(ctx, invitationID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInvitationNotFound
		}
		log.Error("failed to fetch invitation", slog.Any("error", err))
		return err
	}

	// 2. Authorization.
	if !s.cancelPolicy().CanCancel(ctx, actorID, inv) {
		log.Warn("invitation cancel denied by policy",
			slog.String("invitation_id", inv.ID),
			slog.String("actor_id", actorID),
		)
		return ErrForbidden
	}

	// 3. Status gate, with lazy expiry for overdue pending records.
	now := s.now()
	switch {
	case inv.Status.Terminal():
		return ErrInvalidState
	case inv.IsExpired(now):
		s.lazyExpire(ctx, inv.ID, now)
		return ErrInvalidState
	}

	// 4. Flip pending to canceled.
	err = s.Store.Invitations().TransitionStatus(ctx, inv.ID, domain.StatusPending, domain.StatusCanceled, now)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrConflict):
			return ErrInvalidState
		case errors.Is(err, store.ErrNotFound):
			return ErrInvitationNotFound
		}
		log.Error("failed to cancel invitation",
			slog.String("invitation_id", inv.ID),
			slog.Any("error", err),
		)
		return err
	}

	log.Info("invitation canceled",
		slog.String("invitation_id", inv.ID),
		slog.String("actor_id", actorID),
	)
	return nil
}
