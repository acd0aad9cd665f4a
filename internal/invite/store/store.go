package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/appinvite/internal/invite/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")

	// ErrConflict reports a status transition whose precondition no longer
	// holds, i.e. another caller moved the record first.
	ErrConflict = errors.New("store: status conflict")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable, and to stop callers from accidentally nesting transactions.
type Store interface {
	Invitations() Invitations
	Users() Users

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Invitations interface {
	// CreateInvitation inserts a new invitation (id is provided by app via ULID).
	CreateInvitation(ctx context.Context, inv domain.Invitation) error

	// GetInvitationByID returns the invitation or ErrNotFound.
	GetInvitationByID(ctx context.Context, id string) (domain.Invitation, error)

	// GetPendingInvitationByEmail returns the pending invitation an inviter
	// already holds for an email address, or ErrNotFound. Used for the
	// duplicate-invite check on create.
	GetPendingInvitationByEmail(ctx context.Context, inviterID, email string) (domain.Invitation, error)

	// RefreshInvitation resets created_at/expires_at on an existing pending
	// invitation (resend semantics). updated_at is stamped with createdAt,
	// the caller's clock.
	RefreshInvitation(ctx context.Context, id string, createdAt, expiresAt time.Time) error

	// TransitionStatus applies a compare-and-set status update scoped to a
	// single record, stamping updated_at with at. Returns ErrNotFound for
	// unknown ids and ErrConflict when the stored status no longer equals
	// from.
	TransitionStatus(ctx context.Context, id string, from, to domain.InvitationStatus, at time.Time) error

	// ListInvitations returns invitations created by inviterID, applying the
	// pagination, search, filter and sort clauses of q. Callers must
	// Normalize the query first.
	ListInvitations(ctx context.Context, inviterID string, q ListQuery) ([]domain.Invitation, error)

	// ExpireOverdueInvitations flips every pending invitation whose expiry
	// is at or before cutoff to expired, returning the number of rows
	// touched. Housekeeping.
	ExpireOverdueInvitations(ctx context.Context, cutoff time.Time) (int64, error)
}

type Users interface {
	// CreateUser inserts a newly provisioned user. Returns ErrAlreadyExists
	// when the email is taken.
	CreateUser(ctx context.Context, u domain.User) error

	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail returns a user by email.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)
}
