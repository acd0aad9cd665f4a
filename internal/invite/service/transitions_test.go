package service

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/appinvite/internal/invite/domain"
	"github.com/stretchr/testify/require"
)

func TestRejectInvitation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	inv := mustCreate(t, svc, CreateInvitationParams{
		InviterID: "inviter-1",
		Email:     "invitee@example.com",
	})

	require.NoError(t, svc.RejectInvitation(ctx, inv.ID, "Invitee@Example.com"))

	got, err := svc.GetInvitation(ctx, inv.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusRejected, got.Status)

	// Terminal: neither reject nor accept can follow.
	require.ErrorIs(t, svc.RejectInvitation(ctx, inv.ID, "invitee@example.com"), ErrInvalidState)
	_, err = svc.AcceptInvitation(ctx, AcceptInvitationParams{InvitationID: inv.ID})
	require.ErrorIs(t, err, ErrInvalidState)
}

func TestRejectRequiresMatchingEmail(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	inv := mustCreate(t, svc, CreateInvitationParams{
		InviterID: "inviter-1",
		Email:     "invitee@example.com",
	})

	require.ErrorIs(t, svc.RejectInvitation(ctx, inv.ID, "other@example.com"), ErrEmailMismatch)
	require.ErrorIs(t, svc.RejectInvitation(ctx, inv.ID, ""), ErrEmailMismatch)

	got, err := svc.GetInvitation(ctx, inv.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusPending, got.Status)
}

func TestRejectPublicInvitation(t *testing.T) {
	svc, _ := newTestService(t)

	inv := mustCreate(t, svc, CreateInvitationParams{InviterID: "inviter-1"})

	err := svc.RejectInvitation(context.Background(), inv.ID, "anyone@example.com")
	require.ErrorIs(t, err, ErrNotPersonal)
}

func TestRejectExpiredInvitation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	inv := mustCreate(t, svc, CreateInvitationParams{
		InviterID: "inviter-1",
		Email:     "late@example.com",
	})

	svc.Now = func() time.Time { return time.Now().Add(DefaultExpiresIn + time.Minute) }

	require.ErrorIs(t, svc.RejectInvitation(ctx, inv.ID, "late@example.com"), ErrInvalidState)

	got, err := svc.GetInvitation(ctx, inv.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusExpired, got.Status, "overdue record flipped lazily")
}

func TestRejectUnknownInvitation(t *testing.T) {
	svc, _ := newTestService(t)

	err := svc.RejectInvitation(context.Background(), "missing", "a@b.com")
	require.ErrorIs(t, err, ErrInvitationNotFound)

	require.ErrorIs(t, svc.RejectInvitation(context.Background(), "", "a@b.com"), ErrInvalidRequest)
}

func TestCancelInvitation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	inv := mustCreate(t, svc, CreateInvitationParams{
		InviterID: "inviter-1",
		Email:     "invitee@example.com",
	})

	// Default policy: only the inviter may cancel.
	require.ErrorIs(t, svc.CancelInvitation(ctx, "somebody-else", inv.ID), ErrForbidden)
	require.ErrorIs(t, svc.CancelInvitation(ctx, "", inv.ID), ErrForbidden)

	require.NoError(t, svc.CancelInvitation(ctx, "inviter-1", inv.ID))

	got, err := svc.GetInvitation(ctx, inv.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusCanceled, got.Status)

	// Canceled is terminal.
	require.ErrorIs(t, svc.CancelInvitation(ctx, "inviter-1", inv.ID), ErrInvalidState)
	_, err = svc.AcceptInvitation(ctx, AcceptInvitationParams{InvitationID: inv.ID})
	require.ErrorIs(t, err, ErrInvalidState)
}

func TestCancelPolicyVariants(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	t.Run("deny-all forbids even the inviter", func(t *testing.T) {
		svc.CancelPolicy = DenyCancelPolicy{}
		inv := mustCreate(t, svc, CreateInvitationParams{
			InviterID: "inviter-1",
			Email:     "a@example.com",
		})
		require.ErrorIs(t, svc.CancelInvitation(ctx, "inviter-1", inv.ID), ErrForbidden)
	})

	t.Run("callback policy can open cancellation up", func(t *testing.T) {
		svc.CancelPolicy = CancelPolicyFunc(
			func(_ context.Context, actorID string, _ domain.Invitation) bool {
				return actorID == "moderator"
			})
		inv := mustCreate(t, svc, CreateInvitationParams{
			InviterID: "inviter-1",
			Email:     "b@example.com",
		})
		require.ErrorIs(t, svc.CancelInvitation(ctx, "inviter-1", inv.ID), ErrForbidden)
		require.NoError(t, svc.CancelInvitation(ctx, "moderator", inv.ID))
	})
}

func TestCancelExpiredInvitation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	inv := mustCreate(t, svc, CreateInvitationParams{
		InviterID: "inviter-1",
		Email:     "late@example.com",
	})

	svc.Now = func() time.Time { return time.Now().Add(DefaultExpiresIn + time.Minute) }

	require.ErrorIs(t, svc.CancelInvitation(ctx, "inviter-1", inv.ID), ErrInvalidState)

	got, err := svc.GetInvitation(ctx, inv.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusExpired, got.Status)
}

func TestHousekeepingSweep(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	inv := mustCreate(t, svc, CreateInvitationParams{
		InviterID: "inviter-1",
		Email:     "late@example.com",
	})
	fresh := mustCreate(t, svc, CreateInvitationParams{
		InviterID: "inviter-1",
		Email:     "fresh@example.com",
	})

	// Backdate the first invitation so the sweeper sees it as overdue.
	past := time.Now().Add(-time.Hour)
	require.NoError(t,
		svc.Store.Invitations().RefreshInvitation(ctx, inv.ID, past.Add(-DefaultExpiresIn), past))

	hk := NewHousekeepingService(svc.Store, testLogger(), time.Minute)
	hk.Start()
	hk.Stop() // Start sweeps immediately; Stop waits for it.

	got, err := svc.GetInvitation(ctx, inv.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusExpired, got.Status)

	got, err = svc.GetInvitation(ctx, fresh.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusPending, got.Status)
}
