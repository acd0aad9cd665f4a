package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/appinvite/internal/invite/domain"
	"github.com/aussiebroadwan/appinvite/internal/invite/store"
	"github.com/aussiebroadwan/appinvite/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func seedInvitation(t *testing.T, s *Store, inv domain.Invitation) domain.Invitation {
	t.Helper()

	now := time.Now().UTC()
	if inv.ID == "" {
		inv.ID = idx.New().String()
	}
	if inv.Status == "" {
		inv.Status = domain.StatusPending
	}
	if inv.ExpiresAt.IsZero() {
		inv.ExpiresAt = now.Add(48 * time.Hour)
	}
	if inv.CreatedAt.IsZero() {
		inv.CreatedAt = now
	}
	inv.UpdatedAt = inv.CreatedAt

	require.NoError(t, s.Invitations().CreateInvitation(context.Background(), inv))
	return inv
}

func TestCreateAndGetInvitation(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created := seedInvitation(t, s, domain.Invitation{
		InviterID: "inviter-1",
		Email:     "invitee@example.com",
		Name:      "Invitee",
	})

	got, err := s.Invitations().GetInvitationByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created.ID, got.ID)
	require.Equal(t, "inviter-1", got.InviterID)
	require.Equal(t, "invitee@example.com", got.Email)
	require.Equal(t, domain.StatusPending, got.Status)
	require.True(t, got.Whitelist.Empty())
	require.WithinDuration(t, created.ExpiresAt, got.ExpiresAt, time.Second)

	_, err = s.Invitations().GetInvitationByID(ctx, "missing")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestPublicInvitationRoundTripsWhitelist(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created := seedInvitation(t, s, domain.Invitation{
		InviterID: "inviter-1",
		Whitelist: domain.ParseDomainWhitelist("a.com,b.com"),
	})

	got, err := s.Invitations().GetInvitationByID(ctx, created.ID)
	require.NoError(t, err)
	require.Empty(t, got.Email, "public invitations have no bound email")
	require.Equal(t, domain.DomainWhitelist{"a.com", "b.com"}, got.Whitelist)
}

func TestGetPendingInvitationByEmail(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	pending := seedInvitation(t, s, domain.Invitation{
		InviterID: "inviter-1",
		Email:     "dup@example.com",
	})
	// A terminal record for the same pair must not shadow the pending one.
	seedInvitation(t, s, domain.Invitation{
		InviterID: "inviter-1",
		Email:     "dup@example.com",
		Status:    domain.StatusCanceled,
	})

	got, err := s.Invitations().GetPendingInvitationByEmail(ctx, "inviter-1", "dup@example.com")
	require.NoError(t, err)
	require.Equal(t, pending.ID, got.ID)

	_, err = s.Invitations().GetPendingInvitationByEmail(ctx, "inviter-2", "dup@example.com")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestTransitionStatusIsCompareAndSet(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	inv := seedInvitation(t, s, domain.Invitation{
		InviterID: "inviter-1",
		Email:     "invitee@example.com",
	})

	// A clock well ahead of the wall clock proves the stamp is the caller's,
	// not the store's.
	at := time.Now().UTC().Add(time.Hour)

	repo := s.Invitations()
	require.NoError(t,
		repo.TransitionStatus(ctx, inv.ID, domain.StatusPending, domain.StatusAccepted, at))

	// Second transition loses the race: the precondition no longer holds.
	err := repo.TransitionStatus(ctx, inv.ID, domain.StatusPending, domain.StatusCanceled, at)
	require.ErrorIs(t, err, store.ErrConflict)

	err = repo.TransitionStatus(ctx, "missing", domain.StatusPending, domain.StatusAccepted, at)
	require.ErrorIs(t, err, store.ErrNotFound)

	got, err := repo.GetInvitationByID(ctx, inv.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusAccepted, got.Status)
	require.WithinDuration(t, at, got.UpdatedAt, time.Second)
}

func TestRefreshInvitation(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	inv := seedInvitation(t, s, domain.Invitation{
		InviterID: "inviter-1",
		Email:     "invitee@example.com",
	})

	newCreated := time.Now().UTC().Add(time.Hour)
	newExpiry := newCreated.Add(48 * time.Hour)
	require.NoError(t, s.Invitations().RefreshInvitation(ctx, inv.ID, newCreated, newExpiry))

	got, err := s.Invitations().GetInvitationByID(ctx, inv.ID)
	require.NoError(t, err)
	require.WithinDuration(t, newCreated, got.CreatedAt, time.Second)
	require.WithinDuration(t, newExpiry, got.ExpiresAt, time.Second)
	require.WithinDuration(t, newCreated, got.UpdatedAt, time.Second,
		"updated_at follows the caller's clock, not the store's")

	// Refreshing a non-pending record is a conflict.
	require.NoError(t,
		s.Invitations().TransitionStatus(ctx, inv.ID, domain.StatusPending, domain.StatusCanceled, newCreated))
	err = s.Invitations().RefreshInvitation(ctx, inv.ID, newCreated, newExpiry)
	require.ErrorIs(t, err, store.ErrConflict)
}

func TestExpireOverdueInvitations(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	now := time.Now().UTC()
	overdue := seedInvitation(t, s, domain.Invitation{
		InviterID: "inviter-1",
		Email:     "late@example.com",
		ExpiresAt: now.Add(-time.Hour),
	})
	fresh := seedInvitation(t, s, domain.Invitation{
		InviterID: "inviter-1",
		Email:     "fresh@example.com",
		ExpiresAt: now.Add(time.Hour),
	})

	n, err := s.Invitations().ExpireOverdueInvitations(ctx, now)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	got, err := s.Invitations().GetInvitationByID(ctx, overdue.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusExpired, got.Status)

	got, err = s.Invitations().GetInvitationByID(ctx, fresh.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusPending, got.Status)
}

func seedListFixtures(t *testing.T, s *Store) {
	t.Helper()

	base := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	fixtures := []domain.Invitation{
		{InviterID: "lister", Email: "alice@example.com", Name: "Alice", CreatedAt: base, ExpiresAt: base.Add(24 * time.Hour)},
		{InviterID: "lister", Email: "bob@sample.org", Name: "Bob", CreatedAt: base.Add(time.Hour), ExpiresAt: base.Add(48 * time.Hour)},
		{InviterID: "lister", Whitelist: domain.ParseDomainWhitelist("example.com,corp.example.com"), CreatedAt: base.Add(2 * time.Hour), ExpiresAt: base.Add(72 * time.Hour)},
		{InviterID: "lister", Whitelist: domain.ParseDomainWhitelist("other.net"), Status: domain.StatusCanceled, CreatedAt: base.Add(3 * time.Hour), ExpiresAt: base.Add(96 * time.Hour)},
		{InviterID: "somebody-else", Email: "carol@example.com", Name: "Carol", CreatedAt: base, ExpiresAt: base.Add(24 * time.Hour)},
	}
	for _, f := range fixtures {
		seedInvitation(t, s, f)
	}
}

func listWith(t *testing.T, s *Store, q store.ListQuery) []domain.Invitation {
	t.Helper()
	require.NoError(t, q.Normalize())
	out, err := s.Invitations().ListInvitations(context.Background(), "lister", q)
	require.NoError(t, err)
	return out
}

func TestListInvitationsScopedToInviter(t *testing.T) {
	s := newTestStore(t)
	seedListFixtures(t, s)

	out := listWith(t, s, store.ListQuery{})
	require.Len(t, out, 4)
	for _, inv := range out {
		require.Equal(t, "lister", inv.InviterID)
	}
}

func TestListInvitationsPagination(t *testing.T) {
	s := newTestStore(t)
	seedListFixtures(t, s)

	page1 := listWith(t, s, store.ListQuery{Limit: 2, SortBy: "createdAt"})
	require.Len(t, page1, 2)
	page2 := listWith(t, s, store.ListQuery{Limit: 2, Offset: 2, SortBy: "createdAt"})
	require.Len(t, page2, 2)
	require.NotEqual(t, page1[0].ID, page2[0].ID)
	require.True(t, page1[1].CreatedAt.Before(page2[0].CreatedAt))
}

func TestListInvitationsSearch(t *testing.T) {
	s := newTestStore(t)
	seedListFixtures(t, s)

	t.Run("contains on domainWhitelist", func(t *testing.T) {
		out := listWith(t, s, store.ListQuery{
			SearchField:    "domainWhitelist",
			SearchOperator: store.SearchContains,
			SearchValue:    "example.com",
		})
		require.Len(t, out, 1)
		require.Equal(t, "example.com,corp.example.com", out[0].Whitelist.String())
	})

	t.Run("starts_with on email", func(t *testing.T) {
		out := listWith(t, s, store.ListQuery{
			SearchField:    "email",
			SearchOperator: store.SearchStartsWith,
			SearchValue:    "alice",
		})
		require.Len(t, out, 1)
		require.Equal(t, "alice@example.com", out[0].Email)
	})

	t.Run("ends_with on email", func(t *testing.T) {
		out := listWith(t, s, store.ListQuery{
			SearchField:    "email",
			SearchOperator: store.SearchEndsWith,
			SearchValue:    "sample.org",
		})
		require.Len(t, out, 1)
		require.Equal(t, "bob@sample.org", out[0].Email)
	})

	t.Run("matching is ASCII case-insensitive", func(t *testing.T) {
		// SQLite LIKE collation; documented behaviour, not an accident.
		out := listWith(t, s, store.ListQuery{
			SearchField: "name",
			SearchValue: "ALICE",
		})
		require.Len(t, out, 1)
	})

	t.Run("metacharacters match literally", func(t *testing.T) {
		out := listWith(t, s, store.ListQuery{
			SearchField: "email",
			SearchValue: "%",
		})
		require.Empty(t, out)

		out = listWith(t, s, store.ListQuery{
			SearchField: "name",
			SearchValue: "_",
		})
		require.Empty(t, out)
	})
}

func TestListInvitationsFilter(t *testing.T) {
	s := newTestStore(t)
	seedListFixtures(t, s)

	t.Run("eq on status", func(t *testing.T) {
		out := listWith(t, s, store.ListQuery{
			FilterField: "status", FilterOperator: store.FilterEq, FilterValue: "canceled",
		})
		require.Len(t, out, 1)
		require.Equal(t, domain.StatusCanceled, out[0].Status)
	})

	t.Run("ne on status", func(t *testing.T) {
		out := listWith(t, s, store.ListQuery{
			FilterField: "status", FilterOperator: store.FilterNe, FilterValue: "canceled",
		})
		require.Len(t, out, 3)
	})

	t.Run("range on expiresAt", func(t *testing.T) {
		out := listWith(t, s, store.ListQuery{
			FilterField:    "expiresAt",
			FilterOperator: store.FilterLte,
			FilterValue:    "2025-05-03T00:00:00Z",
		})
		require.Len(t, out, 2)
	})

	t.Run("search and filter are ANDed", func(t *testing.T) {
		out := listWith(t, s, store.ListQuery{
			SearchField: "email", SearchValue: "example.com",
			FilterField: "status", FilterOperator: store.FilterEq, FilterValue: "pending",
		})
		require.Len(t, out, 1)
		require.Equal(t, "alice@example.com", out[0].Email)
	})
}

func TestListInvitationsSort(t *testing.T) {
	s := newTestStore(t)
	seedListFixtures(t, s)

	desc := listWith(t, s, store.ListQuery{SortBy: "createdAt", SortDirection: store.SortDesc})
	require.Len(t, desc, 4)
	for i := 1; i < len(desc); i++ {
		require.False(t, desc[i-1].CreatedAt.Before(desc[i].CreatedAt))
	}

	asc := listWith(t, s, store.ListQuery{SortBy: "expiresAt"})
	for i := 1; i < len(asc); i++ {
		require.False(t, asc[i-1].ExpiresAt.After(asc[i].ExpiresAt))
	}
}

func TestWithTxRollsBackOnError(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	inv := seedInvitation(t, s, domain.Invitation{
		InviterID: "inviter-1",
		Email:     "invitee@example.com",
	})

	sentinel := store.ErrConflict
	err := s.WithTx(ctx, func(tx store.Tx) error {
		require.NoError(t,
			tx.Invitations().TransitionStatus(ctx, inv.ID, domain.StatusPending, domain.StatusAccepted, time.Now().UTC()))
		return sentinel
	})
	require.ErrorIs(t, err, sentinel)

	got, err := s.Invitations().GetInvitationByID(ctx, inv.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusPending, got.Status, "rollback must undo the transition")
}
