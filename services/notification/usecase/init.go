package usecase

import (
	"time"

	"github.com/alshuail/authnotify/internal/pkg/apperror"
	"github.com/alshuail/authnotify/internal/pkg/constants"
	"github.com/alshuail/authnotify/internal/pkg/models"
	"github.com/alshuail/authnotify/internal/pkg/nsq"
	"github.com/alshuail/authnotify/services/notification"
)

const (
	defaultWorkers  = 4
	defaultTimezone = "Asia/Riyadh"
	maxBulkSize     = 1000
)

var defaultCandidates = []models.Channel{models.ChannelWhatsApp, models.ChannelPush, models.ChannelSMS}

type NotificationUC struct {
	cfg         *models.Config
	recipients  notification.RecipientRepo
	preferences notification.PreferenceRepo
	dispatcher  notification.Dispatcher
	publisher   nsq.Publisher
	location    *time.Location
	now         func() time.Time
}

// NewNotificationUC creates a new notification usecase instance. Quiet hours are
// evaluated in the configured timezone.
func NewNotificationUC(
	cfg *models.Config,
	recipients notification.RecipientRepo,
	preferences notification.PreferenceRepo,
	dispatcher notification.Dispatcher,
	publisher nsq.Publisher,
) (*NotificationUC, error) {
	tz := cfg.Notification.Timezone
	if tz == "" {
		tz = defaultTimezone
	}
	location, err := time.LoadLocation(tz)
	if err != nil {
		return nil, apperror.NewConfigurationError("unknown notification timezone " + tz)
	}

	return &NotificationUC{
		cfg:         cfg,
		recipients:  recipients,
		preferences: preferences,
		dispatcher:  dispatcher,
		publisher:   publisher,
		location:    location,
		now:         time.Now,
	}, nil
}

func (u *NotificationUC) workers() int {
	if u.cfg.Notification.Workers > 0 {
		return u.cfg.Notification.Workers
	}
	return defaultWorkers
}

func (u *NotificationUC) candidates(requested []models.Channel) []models.Channel {
	if len(requested) > 0 {
		return requested
	}
	if len(u.cfg.Notification.DefaultChannels) > 0 {
		return u.cfg.Notification.DefaultChannels
	}
	return defaultCandidates
}

func (u *NotificationUC) dispatchTopic() string {
	if u.cfg.NSQ.DispatchTopic != "" {
		return u.cfg.NSQ.DispatchTopic
	}
	return constants.TopicNotificationDispatch
}
