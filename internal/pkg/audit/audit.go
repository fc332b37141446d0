// Package audit records security-relevant actions to the security log stream and
// the security_audit_log table.
package audit

import (
	"context"
	"time"

	"github.com/alshuail/authnotify/internal/pkg/logger"
	"github.com/alshuail/authnotify/internal/pkg/models"
	"github.com/alshuail/authnotify/internal/pkg/requestcontext"
	"github.com/sirupsen/logrus"
)

// ActionSeverity maps every known action to its severity. Unknown actions are info.
var ActionSeverity = map[models.SecurityAction]models.Severity{
	models.ActionLoginSuccess:           models.SeverityInfo,
	models.ActionOTPRequested:           models.SeverityInfo,
	models.ActionPasswordCreated:        models.SeverityInfo,
	models.ActionFaceIDEnabled:          models.SeverityInfo,
	models.ActionFaceIDDisabled:         models.SeverityInfo,
	models.ActionLoginFailed:            models.SeverityWarn,
	models.ActionOTPVerificationFailed:  models.SeverityWarn,
	models.ActionPasswordResetRequested: models.SeverityWarn,
	models.ActionPasswordChanged:        models.SeverityWarn,
	models.ActionAccountLocked:          models.SeverityError,
	models.ActionPasswordDeletedByAdmin: models.SeverityError,
	models.ActionFaceIDDeletedByAdmin:   models.SeverityError,
}

// SeverityFor returns the severity of action
func SeverityFor(action models.SecurityAction) models.Severity {
	if severity, ok := ActionSeverity[action]; ok {
		return severity
	}
	return models.SeverityInfo
}

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/alshuail/authnotify/internal/pkg/audit Repository

// Repository persists audit entries
type Repository interface {
	InsertAuditEntry(ctx context.Context, entry *models.SecurityAuditEntry) error
}

// Logger writes each entry to the security stream, then persists it
type Logger struct {
	stream *logger.SecurityLogger
	repo   Repository
	now    func() time.Time
}

// NewLogger creates an audit logger; repo may be nil when persistence is disabled
func NewLogger(stream *logger.SecurityLogger, repo Repository) *Logger {
	return &Logger{
		stream: stream,
		repo:   repo,
		now:    time.Now,
	}
}

// Log records entry. It never fails the caller: a persistence error is logged and dropped.
func (l *Logger) Log(ctx context.Context, entry models.SecurityAuditEntry) {
	entry.Severity = SeverityFor(entry.ActionType)
	if entry.Timestamp.IsZero() {
		entry.Timestamp = l.now().UTC()
	}

	fields := logrus.Fields{
		"action_type": string(entry.ActionType),
		"account_id":  entry.AccountID,
		"severity":    string(entry.Severity),
	}
	if entry.PerformedBy != "" {
		fields["performed_by"] = entry.PerformedBy
	}
	if entry.IPAddress != "" {
		fields["ip_address"] = entry.IPAddress
	}
	if requestID := requestcontext.GetRequestID(ctx); requestID != "" {
		fields["request_id"] = requestID
	}
	for key, value := range entry.Details {
		fields["detail_"+key] = value
	}

	if l.stream != nil {
		l.stream.WithFields(fields).Log(logrusLevel(entry.Severity), "security event")
	}

	if l.repo == nil {
		return
	}
	if err := l.repo.InsertAuditEntry(ctx, &entry); err != nil {
		logger.WarnCtx(ctx, "Failed to persist security audit entry",
			logger.String("action_type", string(entry.ActionType)),
			logger.String("account_id", entry.AccountID),
			logger.Err(err))
	}
}

func logrusLevel(severity models.Severity) logrus.Level {
	switch severity {
	case models.SeverityError:
		return logrus.ErrorLevel
	case models.SeverityWarn:
		return logrus.WarnLevel
	default:
		return logrus.InfoLevel
	}
}
