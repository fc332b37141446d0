package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alshuail/authnotify/internal/pkg/apperror"
	"github.com/alshuail/authnotify/internal/pkg/logger"
	"github.com/alshuail/authnotify/internal/pkg/models"
)

// Decision is the outcome of checking a notification against a member's preference
type Decision struct {
	Channels      []models.Channel
	Suppressed    bool
	Reason        string
	DeferredUntil *time.Time
}

var supportedLanguages = map[string]bool{"ar": true, "en": true}

// ResolveChannels keeps the candidates, in order, that the member enabled. A
// disabled type yields no channels at all.
func ResolveChannels(pref *models.NotificationPreference, t models.NotificationType, candidates []models.Channel) []models.Channel {
	if !pref.TypesEnabled[t] {
		return nil
	}
	channels := make([]models.Channel, 0, len(candidates))
	seen := make(map[models.Channel]bool, len(candidates))
	for _, ch := range candidates {
		if pref.ChannelsEnabled[ch] && !seen[ch] {
			channels = append(channels, ch)
			seen[ch] = true
		}
	}
	return channels
}

// parseClock turns "HH:MM" into minutes after midnight
func parseClock(s string) (int, bool) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}

// InQuietHours reports whether now falls in the window, bounds included. A start
// later than the end wraps midnight.
func InQuietHours(qh models.QuietHours, now time.Time) bool {
	if !qh.Enabled {
		return false
	}
	start, okStart := parseClock(qh.Start)
	end, okEnd := parseClock(qh.End)
	if !okStart || !okEnd {
		return false
	}

	current := now.Hour()*60 + now.Minute()
	if start > end {
		return current >= start || current <= end
	}
	return current >= start && current <= end
}

// quietHoursEnd returns the first minute after the window closes
func quietHoursEnd(qh models.QuietHours, now time.Time) time.Time {
	end, _ := parseClock(qh.End)
	next := time.Date(now.Year(), now.Month(), now.Day(), end/60, end%60, 0, 0, now.Location()).Add(time.Minute)
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// Evaluate checks type opt-in, then quiet hours, then channel availability. now
// must already be in the member's local timezone.
func Evaluate(pref *models.NotificationPreference, t models.NotificationType, candidates []models.Channel, now time.Time) Decision {
	if !pref.TypesEnabled[t] {
		return Decision{Suppressed: true, Reason: models.ReasonPreferenceDisabled}
	}

	if !t.Urgent() && InQuietHours(pref.QuietHours, now) {
		until := quietHoursEnd(pref.QuietHours, now)
		return Decision{Suppressed: true, Reason: models.ReasonQuietHours, DeferredUntil: &until}
	}

	channels := ResolveChannels(pref, t, candidates)
	if len(channels) == 0 {
		return Decision{Suppressed: true, Reason: models.ReasonNoChannels}
	}
	return Decision{Channels: channels}
}

// GetPreference returns the stored preference or the defaults
func (u *NotificationUC) GetPreference(ctx context.Context, memberID string) (*models.NotificationPreference, error) {
	if strings.TrimSpace(memberID) == "" {
		return nil, apperror.NewValidationError("memberId is required")
	}
	pref, err := u.preferences.GetPreference(ctx, memberID)
	if err != nil {
		if apperror.Is(err, apperror.KindNotFound) {
			return models.DefaultNotificationPreference(memberID), nil
		}
		return nil, apperror.Wrap(err, "failed to load preference")
	}
	return pref, nil
}

// preferenceFor is GetPreference for the send path: a lookup failure falls back to defaults
func (u *NotificationUC) preferenceFor(ctx context.Context, memberID string) *models.NotificationPreference {
	pref, err := u.preferences.GetPreference(ctx, memberID)
	if err == nil {
		return pref
	}
	if !apperror.Is(err, apperror.KindNotFound) {
		logger.WarnCtx(ctx, "Failed to load preference, using defaults",
			logger.String("member_id", memberID),
			logger.Err(err))
	}
	return models.DefaultNotificationPreference(memberID)
}

func validateUpdate(update *models.PreferenceUpdate) error {
	for ch := range update.Channels {
		if !ch.Valid() {
			return apperror.NewValidationError(fmt.Sprintf("unknown channel %q", ch))
		}
	}
	for t := range update.Types {
		if !t.Valid() {
			return apperror.NewValidationError(fmt.Sprintf("unknown notification type %q", t))
		}
	}
	if qh := update.QuietHours; qh != nil {
		if _, ok := parseClock(qh.Start); !ok {
			return apperror.NewValidationError("quietHours.start must be HH:MM")
		}
		if _, ok := parseClock(qh.End); !ok {
			return apperror.NewValidationError("quietHours.end must be HH:MM")
		}
	}
	if update.Language != nil && !supportedLanguages[*update.Language] {
		return apperror.NewValidationError("language must be ar or en")
	}
	return nil
}

// UpdatePreference applies update over the current preference and stores the result
func (u *NotificationUC) UpdatePreference(ctx context.Context, memberID string, update *models.PreferenceUpdate) (*models.NotificationPreference, error) {
	if update == nil {
		return nil, apperror.NewValidationError("request body is required")
	}
	if err := validateUpdate(update); err != nil {
		return nil, err
	}

	pref, err := u.GetPreference(ctx, memberID)
	if err != nil {
		return nil, err
	}

	if pref.ChannelsEnabled == nil {
		pref.ChannelsEnabled = make(map[models.Channel]bool)
	}
	if pref.TypesEnabled == nil {
		pref.TypesEnabled = make(map[models.NotificationType]bool)
	}
	for ch, enabled := range update.Channels {
		pref.ChannelsEnabled[ch] = enabled
	}
	for t, enabled := range update.Types {
		pref.TypesEnabled[t] = enabled
	}
	if update.QuietHours != nil {
		pref.QuietHours = models.QuietHours{
			Enabled: update.QuietHours.Enabled,
			Start:   strings.TrimSpace(update.QuietHours.Start),
			End:     strings.TrimSpace(update.QuietHours.End),
		}
	}
	if update.Language != nil {
		pref.Language = *update.Language
	}

	if err := u.preferences.UpsertPreference(ctx, pref); err != nil {
		return nil, apperror.Wrap(err, "failed to save preference")
	}

	logger.InfoCtx(ctx, "Notification preference updated",
		logger.String("member_id", memberID))
	return pref, nil
}
