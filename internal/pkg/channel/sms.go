package channel

import (
	"context"
	"net/url"
	"strings"

	"github.com/alshuail/authnotify/internal/pkg/models"
)

// SMSAdapter sends text messages through the SMS gateway's form API
type SMSAdapter struct {
	config    models.SMSConfig
	transport Transport
}

// NewSMSAdapter creates the SMS adapter
func NewSMSAdapter(config models.SMSConfig, transport Transport) *SMSAdapter {
	return &SMSAdapter{config: config, transport: transport}
}

// Name implements Adapter
func (a *SMSAdapter) Name() models.Channel {
	return models.ChannelSMS
}

// Configured implements Adapter
func (a *SMSAdapter) Configured() bool {
	return a.config.Configured()
}

// Send implements Adapter
func (a *SMSAdapter) Send(ctx context.Context, recipient models.Recipient, payload models.NotificationPayload) models.DeliveryResult {
	if !a.Configured() {
		return notConfigured(models.ChannelSMS)
	}

	mobile := normalizedPhone(recipient)
	if mobile == "" {
		return invalidRecipient(models.ChannelSMS, "recipient has no valid phone number")
	}

	form := url.Values{}
	form.Set("userid", a.config.UserID)
	form.Set("password", a.config.Password)
	form.Set("senderid", a.config.SenderID)
	form.Set("msg", messageText(payload))
	form.Set("mobile", mobile)

	var headers map[string]string
	if a.config.APIKey != "" {
		headers = map[string]string{"apikey": a.config.APIKey}
	}

	resp, err := a.transport.PostForm(ctx, string(models.ChannelSMS), a.config.URL, headers, form)
	if err != nil {
		return failure(models.ChannelSMS, err)
	}

	return models.DeliveryResult{
		Channel:   models.ChannelSMS,
		Success:   true,
		MessageID: strings.TrimSpace(string(resp.Body)),
	}
}
