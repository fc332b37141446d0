package gateway

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/alshuail/authnotify/internal/pkg/channel"
	"github.com/alshuail/authnotify/internal/pkg/models"
)

// otpMessage is the passcode text; arguments are the code and its lifetime in minutes
const otpMessage = "رمز التحقق الخاص بك في صندوق الشعيل: %s\nصالح لمدة %d دقائق. لا تشارك هذا الرمز مع أحد."

// DefaultOTPChannels is the delivery order when none is configured
var DefaultOTPChannels = []models.Channel{models.ChannelWhatsApp, models.ChannelSMS}

// OTPSender delivers passcodes through the channel dispatcher
type OTPSender struct {
	dispatcher *channel.Dispatcher
	order      []models.Channel
	ttl        time.Duration
}

// NewOTPSender creates a passcode sender over dispatcher
func NewOTPSender(cfg models.OTPConfig, dispatcher *channel.Dispatcher) *OTPSender {
	order := cfg.Channels
	if len(order) == 0 {
		order = DefaultOTPChannels
	}
	return &OTPSender{
		dispatcher: dispatcher,
		order:      order,
		ttl:        cfg.TTL,
	}
}

// SendOTP tries each configured channel in order until one accepts the code
func (s *OTPSender) SendOTP(ctx context.Context, recipient models.Recipient, code string) models.DispatchResult {
	minutes := int(math.Ceil(s.ttl.Minutes()))
	if minutes < 1 {
		minutes = 5
	}

	return s.dispatcher.Dispatch(ctx, recipient, models.NotificationPayload{
		Type: models.NotificationOTP,
		Body: fmt.Sprintf(otpMessage, code, minutes),
	}, s.order)
}

// Status reports which passcode channels are configured
func (s *OTPSender) Status() map[models.Channel]bool {
	all := s.dispatcher.Status()
	status := make(map[models.Channel]bool, len(s.order))
	for _, ch := range s.order {
		status[ch] = all[ch]
	}
	return status
}
