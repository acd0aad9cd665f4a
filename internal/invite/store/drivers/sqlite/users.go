package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/aussiebroadwan/appinvite/internal/invite/domain"
	"github.com/aussiebroadwan/appinvite/internal/invite/store"
)

type usersRepo struct {
	db dbtx
}

const userColumns = `id, email, name, password_hash, invited_by, attributes, created_at, updated_at`

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	attrs, err := json.Marshal(orEmptyMap(u.Attributes))
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO users
			(id, email, name, password_hash, invited_by, attributes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID,
		u.Email,
		u.Name,
		u.PasswordHash,
		mapStringNull(u.InvitedBy),
		string(attrs),
		utc(u.CreatedAt),
		utc(u.UpdatedAt),
	)
	if err != nil && isUniqueViolation(err) {
		return store.ErrAlreadyExists
	}
	return err
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ?`, email)
	return scanUser(row)
}

func scanUser(row rowScanner) (domain.User, error) {
	var (
		u         domain.User
		invitedBy sql.NullString
		attrs     string
	)
	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.Name,
		&u.PasswordHash,
		&invitedBy,
		&attrs,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}

	u.InvitedBy = mapNullString(invitedBy)
	if err := json.Unmarshal([]byte(attrs), &u.Attributes); err != nil {
		return domain.User{}, err
	}
	if len(u.Attributes) == 0 {
		u.Attributes = nil
	}
	return u, nil
}

func orEmptyMap(m map[string]string) map[string]string {
	if m == nil {
		return map[string]string{}
	}
	return m
}
