package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aussiebroadwan/appinvite/internal/invite/domain"
	"github.com/aussiebroadwan/appinvite/internal/invite/store"
)

type invitationsRepo struct {
	db dbtx
}

const invitationColumns = `id, inviter_id, email, name, status, domain_whitelist, expires_at, created_at, updated_at`

// columnFor maps the query DSL's wire-level field names onto columns. Only
// names vetted by store.ListQuery.Normalize ever reach this table.
var columnFor = map[string]string{
	"id":              "id",
	"inviterId":       "inviter_id",
	"email":           "email",
	"name":            "name",
	"status":          "status",
	"domainWhitelist": "domain_whitelist",
	"expiresAt":       "expires_at",
	"createdAt":       "created_at",
}

var sqlOpFor = map[store.FilterOperator]string{
	store.FilterEq:  "=",
	store.FilterNe:  "!=",
	store.FilterLt:  "<",
	store.FilterLte: "<=",
	store.FilterGt:  ">",
	store.FilterGte: ">=",
}

func (r *invitationsRepo) CreateInvitation(ctx context.Context, inv domain.Invitation) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO app_invitations
			(id, inviter_id, email, name, status, domain_whitelist, expires_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		inv.ID,
		inv.InviterID,
		mapStringNull(inv.Email),
		mapStringNull(inv.Name),
		string(inv.Status),
		inv.Whitelist.String(),
		utc(inv.ExpiresAt),
		utc(inv.CreatedAt),
		utc(inv.UpdatedAt),
	)
	if err != nil && isUniqueViolation(err) {
		return store.ErrAlreadyExists
	}
	return err
}

func (r *invitationsRepo) GetInvitationByID(ctx context.Context, id string) (domain.Invitation, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+invitationColumns+` FROM app_invitations WHERE id = ?`, id)
	return scanInvitation(row)
}

func (r *invitationsRepo) GetPendingInvitationByEmail(
	ctx context.Context,
	inviterID, email string,
) (domain.Invitation, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+invitationColumns+`
		FROM app_invitations
		WHERE inviter_id = ? AND email = ? AND status = ?
		ORDER BY created_at DESC
		LIMIT 1`,
		inviterID, email, string(domain.StatusPending),
	)
	return scanInvitation(row)
}

func (r *invitationsRepo) RefreshInvitation(
	ctx context.Context,
	id string,
	createdAt, expiresAt time.Time,
) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE app_invitations
		SET created_at = ?, expires_at = ?, updated_at = ?
		WHERE id = ? AND status = ?`,
		utc(createdAt), utc(expiresAt), utc(createdAt),
		id, string(domain.StatusPending),
	)
	if err != nil {
		return err
	}
	return r.checkAffected(ctx, res, id)
}

func (r *invitationsRepo) TransitionStatus(
	ctx context.Context,
	id string,
	from, to domain.InvitationStatus,
	at time.Time,
) error {
	// Single-row compare-and-set: the WHERE clause carries the precondition
	// so two racing transitions cannot both succeed.
	res, err := r.db.ExecContext(ctx, `
		UPDATE app_invitations
		SET status = ?, updated_at = ?
		WHERE id = ? AND status = ?`,
		string(to), utc(at), id, string(from),
	)
	if err != nil {
		return err
	}
	return r.checkAffected(ctx, res, id)
}

// checkAffected distinguishes "row gone" from "precondition lost" after a
// guarded UPDATE touched zero rows.
func (r *invitationsRepo) checkAffected(ctx context.Context, res sql.Result, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	var exists int
	err = r.db.QueryRowContext(ctx,
		`SELECT 1 FROM app_invitations WHERE id = ?`, id).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	if err != nil {
		return err
	}
	return store.ErrConflict
}

func (r *invitationsRepo) ListInvitations(
	ctx context.Context,
	inviterID string,
	q store.ListQuery,
) ([]domain.Invitation, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + invitationColumns + ` FROM app_invitations WHERE inviter_id = ?`)
	args := []any{inviterID}

	if q.HasSearch() {
		sb.WriteString(` AND ` + columnFor[q.SearchField] + ` LIKE ? ESCAPE '\'`)
		args = append(args, likePattern(q.SearchOperator, q.SearchValue))
	}

	if q.HasFilter() {
		sb.WriteString(fmt.Sprintf(` AND %s %s ?`, columnFor[q.FilterField], sqlOpFor[q.FilterOperator]))
		args = append(args, filterArg(q))
	}

	dir := "ASC"
	if q.SortDirection == store.SortDesc {
		dir = "DESC"
	}
	sb.WriteString(fmt.Sprintf(` ORDER BY %s %s LIMIT ? OFFSET ?`, columnFor[q.SortBy], dir))
	args = append(args, q.Limit, q.Offset)

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Invitation
	for rows.Next() {
		inv, err := scanInvitation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}

func (r *invitationsRepo) ExpireOverdueInvitations(
	ctx context.Context,
	cutoff time.Time,
) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE app_invitations
		SET status = ?, updated_at = ?
		WHERE status = ? AND expires_at <= ?`,
		string(domain.StatusExpired), utc(cutoff),
		string(domain.StatusPending), utc(cutoff),
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// likePattern builds the LIKE pattern for a search clause, escaping any LIKE
// metacharacters in the user-supplied value so it always matches literally.
func likePattern(op store.SearchOperator, value string) string {
	escaped := escapeLike(value)
	switch op {
	case store.SearchStartsWith:
		return escaped + "%"
	case store.SearchEndsWith:
		return "%" + escaped
	default: // contains
		return "%" + escaped + "%"
	}
}

func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}

// filterArg converts the filter value for binding. Ordered fields carry
// RFC 3339 timestamps (validated during Normalize); everything else binds as
// the literal string.
func filterArg(q store.ListQuery) any {
	switch q.FilterField {
	case "expiresAt", "createdAt":
		t, err := time.Parse(time.RFC3339, q.FilterValue)
		if err != nil {
			// Normalize already rejected malformed values.
			return q.FilterValue
		}
		return utc(t)
	default:
		return q.FilterValue
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanInvitation(row rowScanner) (domain.Invitation, error) {
	var (
		inv       domain.Invitation
		email     sql.NullString
		name      sql.NullString
		status    string
		whitelist string
	)
	err := row.Scan(
		&inv.ID,
		&inv.InviterID,
		&email,
		&name,
		&status,
		&whitelist,
		&inv.ExpiresAt,
		&inv.CreatedAt,
		&inv.UpdatedAt,
	)
	if err != nil {
		return domain.Invitation{}, mapNotFound(err)
	}

	inv.Email = mapNullString(email)
	inv.Name = mapNullString(name)
	inv.Status = domain.InvitationStatus(status)
	inv.Whitelist = domain.ParseDomainWhitelist(whitelist)
	return inv, nil
}

// isUniqueViolation sniffs sqlite's unique-constraint errors. modernc.org's
// driver does not export a stable sentinel for this, so match on the message
// the same way its own tests do.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
