package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alshuail/authnotify/internal/pkg/apperror"
	"github.com/alshuail/authnotify/internal/pkg/models"
	"github.com/jmoiron/sqlx"
)

// PreferenceRepo stores notification preferences, one row per member
type PreferenceRepo struct {
	db *sqlx.DB
}

// NewPreferenceRepo creates a new preference repository
func NewPreferenceRepo(db *sqlx.DB) *PreferenceRepo {
	return &PreferenceRepo{db: db}
}

type preferenceRow struct {
	MemberID             string         `db:"member_id"`
	EnableWhatsApp       bool           `db:"enable_whatsapp"`
	EnableSMS            bool           `db:"enable_sms"`
	EnablePush           bool           `db:"enable_push"`
	EventInvitations     bool           `db:"event_invitations"`
	PaymentReceipts      bool           `db:"payment_receipts"`
	PaymentReminders     bool           `db:"payment_reminders"`
	CrisisAlerts         bool           `db:"crisis_alerts"`
	GeneralAnnouncements bool           `db:"general_announcements"`
	RSVPConfirmations    bool           `db:"rsvp_confirmations"`
	QuietHoursEnabled    bool           `db:"quiet_hours_enabled"`
	QuietHoursStart      sql.NullString `db:"quiet_hours_start"`
	QuietHoursEnd        sql.NullString `db:"quiet_hours_end"`
	PreferredLanguage    sql.NullString `db:"preferred_language"`
	UpdatedAt            time.Time      `db:"updated_at"`
}

const preferenceColumns = `
	member_id, enable_whatsapp, enable_sms, enable_push,
	event_invitations, payment_receipts, payment_reminders,
	crisis_alerts, general_announcements, rsvp_confirmations,
	quiet_hours_enabled, quiet_hours_start, quiet_hours_end,
	preferred_language, updated_at`

// clock trims a TIME column such as "22:00:00" to "22:00"
func clock(v sql.NullString, fallback string) string {
	if !v.Valid || len(v.String) < 5 {
		return fallback
	}
	return v.String[:5]
}

func (row preferenceRow) toModel() *models.NotificationPreference {
	defaults := models.DefaultNotificationPreference(row.MemberID)
	lang := strings.TrimSpace(row.PreferredLanguage.String)
	if lang == "" {
		lang = defaults.Language
	}
	return &models.NotificationPreference{
		MemberID: row.MemberID,
		ChannelsEnabled: map[models.Channel]bool{
			models.ChannelWhatsApp: row.EnableWhatsApp,
			models.ChannelSMS:      row.EnableSMS,
			models.ChannelPush:     row.EnablePush,
		},
		TypesEnabled: map[models.NotificationType]bool{
			models.NotificationEventInvitation:     row.EventInvitations,
			models.NotificationPaymentReceipt:      row.PaymentReceipts,
			models.NotificationPaymentReminder:     row.PaymentReminders,
			models.NotificationCrisisAlert:         row.CrisisAlerts,
			models.NotificationGeneralAnnouncement: row.GeneralAnnouncements,
			models.NotificationRSVPConfirmation:    row.RSVPConfirmations,
		},
		QuietHours: models.QuietHours{
			Enabled: row.QuietHoursEnabled,
			Start:   clock(row.QuietHoursStart, defaults.QuietHours.Start),
			End:     clock(row.QuietHoursEnd, defaults.QuietHours.End),
		},
		Language:  lang,
		UpdatedAt: row.UpdatedAt,
	}
}

// GetPreference returns the stored preference, or a NotFound error when the member has none
func (r *PreferenceRepo) GetPreference(ctx context.Context, memberID string) (*models.NotificationPreference, error) {
	var row preferenceRow
	err := r.db.GetContext(ctx, &row, `SELECT`+preferenceColumns+`
		FROM user_notification_preferences
		WHERE member_id = $1`, memberID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NewNotFoundError("preference not found")
		}
		return nil, fmt.Errorf("failed to get preference: %w", err)
	}
	return row.toModel(), nil
}

// UpsertPreference writes the whole preference row for pref.MemberID
func (r *PreferenceRepo) UpsertPreference(ctx context.Context, pref *models.NotificationPreference) error {
	query := `
		INSERT INTO user_notification_preferences (` + preferenceColumns + `
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW())
		ON CONFLICT (member_id) DO UPDATE SET
			enable_whatsapp = EXCLUDED.enable_whatsapp,
			enable_sms = EXCLUDED.enable_sms,
			enable_push = EXCLUDED.enable_push,
			event_invitations = EXCLUDED.event_invitations,
			payment_receipts = EXCLUDED.payment_receipts,
			payment_reminders = EXCLUDED.payment_reminders,
			crisis_alerts = EXCLUDED.crisis_alerts,
			general_announcements = EXCLUDED.general_announcements,
			rsvp_confirmations = EXCLUDED.rsvp_confirmations,
			quiet_hours_enabled = EXCLUDED.quiet_hours_enabled,
			quiet_hours_start = EXCLUDED.quiet_hours_start,
			quiet_hours_end = EXCLUDED.quiet_hours_end,
			preferred_language = EXCLUDED.preferred_language,
			updated_at = NOW()
		RETURNING updated_at`

	err := r.db.QueryRowxContext(ctx, query,
		pref.MemberID,
		pref.ChannelsEnabled[models.ChannelWhatsApp],
		pref.ChannelsEnabled[models.ChannelSMS],
		pref.ChannelsEnabled[models.ChannelPush],
		pref.TypesEnabled[models.NotificationEventInvitation],
		pref.TypesEnabled[models.NotificationPaymentReceipt],
		pref.TypesEnabled[models.NotificationPaymentReminder],
		pref.TypesEnabled[models.NotificationCrisisAlert],
		pref.TypesEnabled[models.NotificationGeneralAnnouncement],
		pref.TypesEnabled[models.NotificationRSVPConfirmation],
		pref.QuietHours.Enabled,
		pref.QuietHours.Start,
		pref.QuietHours.End,
		pref.Language,
	).Scan(&pref.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert preference: %w", err)
	}
	return nil
}
