package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/alshuail/authnotify/internal/pkg/models"
	"github.com/jmoiron/sqlx"
)

// AuditRepo appends to the security_audit_log table
type AuditRepo struct {
	db *sqlx.DB
}

// NewAuditRepo creates a new audit repository
func NewAuditRepo(db *sqlx.DB) *AuditRepo {
	return &AuditRepo{db: db}
}

// InsertAuditEntry appends entry and sets its ID
func (r *AuditRepo) InsertAuditEntry(ctx context.Context, entry *models.SecurityAuditEntry) error {
	details := []byte("{}")
	if len(entry.Details) > 0 {
		encoded, err := json.Marshal(entry.Details)
		if err != nil {
			return fmt.Errorf("failed to encode audit details: %w", err)
		}
		details = encoded
	}

	query := `
		INSERT INTO security_audit_log (
			member_id, action_type, performed_by, severity, details, ip_address, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	err := r.db.QueryRowxContext(ctx, query,
		nullString(entry.AccountID),
		string(entry.ActionType),
		nullString(entry.PerformedBy),
		string(entry.Severity),
		details,
		nullString(entry.IPAddress),
		entry.Timestamp,
	).Scan(&entry.ID)
	if err != nil {
		return fmt.Errorf("failed to insert audit entry: %w", err)
	}
	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
