package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alshuail/authnotify/internal/pkg/apperror"
	"github.com/alshuail/authnotify/internal/pkg/models"
	"github.com/jmoiron/sqlx"
)

// RecipientRepo reads member contact details and push tokens from Postgres
type RecipientRepo struct {
	db *sqlx.DB
}

// NewRecipientRepo creates a new recipient repository
func NewRecipientRepo(db *sqlx.DB) *RecipientRepo {
	return &RecipientRepo{db: db}
}

type recipientRow struct {
	ID       string         `db:"id"`
	Phone    sql.NullString `db:"phone"`
	FullName sql.NullString `db:"full_name"`
}

// GetRecipient returns the member's phone, name and active device tokens
func (r *RecipientRepo) GetRecipient(ctx context.Context, memberID string) (*models.Recipient, error) {
	var row recipientRow
	err := r.db.GetContext(ctx, &row, `
		SELECT id, phone, full_name
		FROM members
		WHERE id = $1`, memberID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NewNotFoundError("member not found")
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	var tokens []string
	err = r.db.SelectContext(ctx, &tokens, `
		SELECT token
		FROM device_tokens
		WHERE member_id = $1 AND is_active = TRUE
		ORDER BY updated_at DESC`, memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to get device tokens: %w", err)
	}

	return &models.Recipient{
		MemberID:     row.ID,
		Name:         row.FullName.String,
		Phone:        row.Phone.String,
		DeviceTokens: tokens,
	}, nil
}

// DeactivateDeviceTokens marks tokens the push provider rejected as unusable
func (r *RecipientRepo) DeactivateDeviceTokens(ctx context.Context, memberID string, tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}

	query, args, err := sqlx.In(`
		UPDATE device_tokens
		SET is_active = FALSE, updated_at = NOW()
		WHERE member_id = ? AND token IN (?)`, memberID, tokens)
	if err != nil {
		return fmt.Errorf("failed to build token query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, r.db.Rebind(query), args...); err != nil {
		return fmt.Errorf("failed to deactivate device tokens: %w", err)
	}
	return nil
}
