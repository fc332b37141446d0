package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/alshuail/authnotify/internal/pkg/apperror"
	"github.com/alshuail/authnotify/internal/pkg/models"
	"github.com/alshuail/authnotify/internal/utils"
	"github.com/jmoiron/sqlx"
)

const memberColumns = `
	id, phone, full_name, membership_number, balance, branch_name, status, role, is_active,
	password_hash, has_password, password_updated_at, must_change_password,
	face_id_hash, has_face_id, face_id_enabled_at,
	joined_at, last_login_at, last_login_method`

// MemberRepo reads members and updates their credentials in Postgres
type MemberRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewMemberRepo creates a new member repository
func NewMemberRepo(cfg *models.Config, db *sqlx.DB) *MemberRepo {
	return &MemberRepo{
		cfg: cfg,
		db:  db,
	}
}

// PhoneVariants lists the stored formats a normalized phone may have been saved in
func PhoneVariants(phone string) []string {
	variants := []string{phone, "+" + phone}
	switch {
	case strings.HasPrefix(phone, utils.SaudiCountryCode):
		variants = append(variants, "0"+strings.TrimPrefix(phone, utils.SaudiCountryCode))
	case strings.HasPrefix(phone, utils.KuwaitCountryCode):
		variants = append(variants, strings.TrimPrefix(phone, utils.KuwaitCountryCode))
	}
	return variants
}

// GetMemberByPhone retrieves a member by normalized phone
func (r *MemberRepo) GetMemberByPhone(ctx context.Context, phone string) (*models.Member, error) {
	query, args, err := sqlx.In(`SELECT`+memberColumns+`
		FROM members
		WHERE phone IN (?)
		ORDER BY joined_at NULLS LAST
		LIMIT 1`, PhoneVariants(phone))
	if err != nil {
		return nil, fmt.Errorf("failed to build member query: %w", err)
	}

	var member models.Member
	if err := r.db.GetContext(ctx, &member, r.db.Rebind(query), args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NewNotFoundError("member not found")
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	return &member, nil
}

// GetMemberByID retrieves a member by ID
func (r *MemberRepo) GetMemberByID(ctx context.Context, id string) (*models.Member, error) {
	var member models.Member
	err := r.db.GetContext(ctx, &member, `SELECT`+memberColumns+`
		FROM members
		WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NewNotFoundError("member not found")
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	return &member, nil
}

// RecordLogin stamps the last successful sign-in
func (r *MemberRepo) RecordLogin(ctx context.Context, id, method string) error {
	return r.update(ctx, "record login", `
		UPDATE members
		SET last_login_at = NOW(), last_login_method = $2
		WHERE id = $1`, id, method)
}

// SetPasswordHash stores a new bcrypt hash and clears the forced-change flag
func (r *MemberRepo) SetPasswordHash(ctx context.Context, id, hash string) error {
	return r.update(ctx, "set password", `
		UPDATE members
		SET password_hash = $2, has_password = TRUE, password_updated_at = NOW(), must_change_password = FALSE
		WHERE id = $1`, id, hash)
}

// ClearPassword removes the password credential
func (r *MemberRepo) ClearPassword(ctx context.Context, id string) error {
	return r.update(ctx, "clear password", `
		UPDATE members
		SET password_hash = NULL, has_password = FALSE, password_updated_at = NOW(), must_change_password = FALSE
		WHERE id = $1`, id)
}

// SetFaceIDHash stores the digest of a biometric token
func (r *MemberRepo) SetFaceIDHash(ctx context.Context, id, hash string) error {
	return r.update(ctx, "set face id", `
		UPDATE members
		SET face_id_hash = $2, has_face_id = TRUE, face_id_enabled_at = NOW()
		WHERE id = $1`, id, hash)
}

// ClearFaceID removes the biometric credential
func (r *MemberRepo) ClearFaceID(ctx context.Context, id string) error {
	return r.update(ctx, "clear face id", `
		UPDATE members
		SET face_id_hash = NULL, has_face_id = FALSE, face_id_enabled_at = NULL
		WHERE id = $1`, id)
}

func (r *MemberRepo) update(ctx context.Context, op, query string, args ...interface{}) error {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to %s: %w", op, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to %s: %w", op, err)
	}
	if rows == 0 {
		return apperror.NewNotFoundError("member not found")
	}
	return nil
}
