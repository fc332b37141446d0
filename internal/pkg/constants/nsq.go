package constants

// NSQ topics and channels
const (
	TopicNotificationDispatch = "notification.dispatch"
	ChannelNotificationWorker = "notification-service"
)
