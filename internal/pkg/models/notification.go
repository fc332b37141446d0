package models

import (
	"time"
)

// Channel identifies a delivery provider
type Channel string

const (
	ChannelWhatsApp Channel = "whatsapp"
	ChannelSMS      Channel = "sms"
	ChannelPush     Channel = "push"
)

// Valid reports whether c names a known channel
func (c Channel) Valid() bool {
	switch c {
	case ChannelWhatsApp, ChannelSMS, ChannelPush:
		return true
	}
	return false
}

// Valid reports whether t names a known notification type
func (t NotificationType) Valid() bool {
	for _, known := range AllNotificationTypes {
		if t == known {
			return true
		}
	}
	return false
}

// NotificationType classifies a transactional notification
type NotificationType string

const (
	NotificationEventInvitation     NotificationType = "event_invitation"
	NotificationPaymentReceipt      NotificationType = "payment_receipt"
	NotificationPaymentReminder     NotificationType = "payment_reminder"
	NotificationCrisisAlert         NotificationType = "crisis_alert"
	NotificationGeneralAnnouncement NotificationType = "general_announcement"
	NotificationRSVPConfirmation    NotificationType = "rsvp_confirmation"
)

// NotificationOTP carries a sign-in passcode; it is never subject to member preferences
const NotificationOTP NotificationType = "otp"

// AllNotificationTypes lists every known notification type
var AllNotificationTypes = []NotificationType{
	NotificationEventInvitation,
	NotificationPaymentReceipt,
	NotificationPaymentReminder,
	NotificationCrisisAlert,
	NotificationGeneralAnnouncement,
	NotificationRSVPConfirmation,
}

// Urgent reports whether the type bypasses quiet hours
func (t NotificationType) Urgent() bool {
	return t == NotificationCrisisAlert
}

// Delivery error codes shared by every channel adapter
const (
	ErrCodeConfigurationMissing = "configuration_missing"
	ErrCodeInvalidRecipient     = "invalid_recipient"
	ErrCodeTransientFailure     = "transient_failure"
)

// Reasons a notification was not sent
const (
	ReasonPreferenceDisabled = "user_preference_disabled"
	ReasonQuietHours         = "quiet_hours"
	ReasonNoChannels         = "no_channels_enabled"
	ReasonMemberNotFound     = "member_not_found"
	ReasonLookupFailed       = "lookup_failed"
	ReasonCancelled          = "cancelled"
)

// Recipient is everything a channel adapter may need to reach one member
type Recipient struct {
	MemberID     string   `json:"member_id"`
	Name         string   `json:"name,omitempty"`
	Phone        string   `json:"phone,omitempty"`
	DeviceTokens []string `json:"device_tokens,omitempty"`
	Language     string   `json:"language,omitempty"`
}

// NotificationPayload is the message handed to the dispatcher
type NotificationPayload struct {
	Type  NotificationType  `json:"type"`
	Title string            `json:"title,omitempty"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data,omitempty"`
}

// DeliveryResult is produced by one channel send attempt
type DeliveryResult struct {
	Channel              Channel  `json:"channel"`
	Success              bool     `json:"success"`
	MessageID            string   `json:"messageId,omitempty"`
	ErrorCode            string   `json:"errorCode,omitempty"`
	Error                string   `json:"error,omitempty"`
	ShouldEvictRecipient bool     `json:"shouldEvictRecipient,omitempty"`
	EvictedAddresses     []string `json:"-"`
}

// DispatchResult aggregates all attempts for one recipient
type DispatchResult struct {
	MemberID      string           `json:"memberId,omitempty"`
	Success       bool             `json:"success"`
	DeliveredVia  Channel          `json:"deliveredVia,omitempty"`
	Attempts      []DeliveryResult `json:"attempts"`
	Reason        string           `json:"reason,omitempty"`
	DeferredUntil *time.Time       `json:"deferredUntil,omitempty"`
}

// QuietHours is a local HH:MM window that may wrap midnight
type QuietHours struct {
	Enabled bool   `json:"enabled"`
	Start   string `json:"start"`
	End     string `json:"end"`
}

// NotificationPreference is a member's delivery preference
type NotificationPreference struct {
	MemberID        string                    `json:"memberId"`
	ChannelsEnabled map[Channel]bool          `json:"channels"`
	TypesEnabled    map[NotificationType]bool `json:"types"`
	QuietHours      QuietHours                `json:"quietHours"`
	Language        string                    `json:"language"`
	UpdatedAt       time.Time                 `json:"updatedAt,omitempty"`
}

// DefaultNotificationPreference is used when a member has no stored preference
func DefaultNotificationPreference(memberID string) *NotificationPreference {
	types := make(map[NotificationType]bool, len(AllNotificationTypes))
	for _, t := range AllNotificationTypes {
		types[t] = true
	}
	return &NotificationPreference{
		MemberID: memberID,
		ChannelsEnabled: map[Channel]bool{
			ChannelWhatsApp: true,
			ChannelSMS:      false,
			ChannelPush:     true,
		},
		TypesEnabled: types,
		QuietHours: QuietHours{
			Enabled: false,
			Start:   "22:00",
			End:     "07:00",
		},
		Language: "ar",
	}
}

// DeviceToken is a registered push token for a member's device
type DeviceToken struct {
	ID        string    `json:"id" db:"id"`
	MemberID  string    `json:"member_id" db:"member_id"`
	Token     string    `json:"token" db:"token"`
	Platform  string    `json:"platform" db:"platform"`
	IsActive  bool      `json:"is_active" db:"is_active"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// DispatchRequest asks for one notification to one member
type DispatchRequest struct {
	MemberID string              `json:"memberId"`
	Payload  NotificationPayload `json:"payload"`
	Channels []Channel           `json:"channels,omitempty"`
}

// BulkDispatchRequest sends the same payload to many members independently
type BulkDispatchRequest struct {
	BatchID   string              `json:"batchId,omitempty"`
	MemberIDs []string            `json:"memberIds"`
	Payload   NotificationPayload `json:"payload"`
	Channels  []Channel           `json:"channels,omitempty"`
}

// BulkDispatchResult summarizes a bulk send
type BulkDispatchResult struct {
	BatchID   string           `json:"batchId,omitempty"`
	Total     int              `json:"total"`
	Delivered int              `json:"delivered"`
	Failed    int              `json:"failed"`
	Results   []DispatchResult `json:"results"`
}

// PreferenceUpdate changes only the fields it carries
type PreferenceUpdate struct {
	Channels   map[Channel]bool          `json:"channels,omitempty"`
	Types      map[NotificationType]bool `json:"types,omitempty"`
	QuietHours *QuietHours               `json:"quietHours,omitempty"`
	Language   *string                   `json:"language,omitempty"`
}
