package channel

import (
	"context"

	"github.com/alshuail/authnotify/internal/pkg/models"
)

// WhatsAppAdapter sends text messages through the chat gateway
type WhatsAppAdapter struct {
	config    models.WhatsAppConfig
	transport Transport
}

// NewWhatsAppAdapter creates the chat gateway adapter
func NewWhatsAppAdapter(config models.WhatsAppConfig, transport Transport) *WhatsAppAdapter {
	return &WhatsAppAdapter{config: config, transport: transport}
}

type whatsAppRequest struct {
	Token string `json:"token"`
	From  string `json:"from,omitempty"`
	To    string `json:"to"`
	Text  string `json:"text"`
}

type whatsAppResponse struct {
	ID        string `json:"id"`
	MessageID string `json:"message_id"`
}

// Name implements Adapter
func (a *WhatsAppAdapter) Name() models.Channel {
	return models.ChannelWhatsApp
}

// Configured implements Adapter
func (a *WhatsAppAdapter) Configured() bool {
	return a.config.Configured()
}

// Send implements Adapter
func (a *WhatsAppAdapter) Send(ctx context.Context, recipient models.Recipient, payload models.NotificationPayload) models.DeliveryResult {
	if !a.Configured() {
		return notConfigured(models.ChannelWhatsApp)
	}

	to := normalizedPhone(recipient)
	if to == "" {
		return invalidRecipient(models.ChannelWhatsApp, "recipient has no valid phone number")
	}

	resp, err := a.transport.PostJSON(ctx, string(models.ChannelWhatsApp), a.config.URL, nil, whatsAppRequest{
		Token: a.config.Token,
		From:  a.config.From,
		To:    to,
		Text:  messageText(payload),
	})
	if err != nil {
		return failure(models.ChannelWhatsApp, err)
	}

	var decoded whatsAppResponse
	_ = resp.DecodeJSON(&decoded)
	messageID := decoded.ID
	if messageID == "" {
		messageID = decoded.MessageID
	}

	return models.DeliveryResult{
		Channel:   models.ChannelWhatsApp,
		Success:   true,
		MessageID: messageID,
	}
}
