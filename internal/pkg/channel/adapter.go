// Package channel delivers notifications through external providers: the WhatsApp
// chat gateway, an SMS gateway and a push service.
package channel

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"github.com/alshuail/authnotify/internal/pkg/circuitbreaker"
	providerhttp "github.com/alshuail/authnotify/internal/pkg/http"
	"github.com/alshuail/authnotify/internal/pkg/models"
	"github.com/alshuail/authnotify/internal/utils"
)

//go:generate mockgen -destination=mocks/mock_adapter.go -package=mocks github.com/alshuail/authnotify/internal/pkg/channel Adapter

// Adapter sends one payload to one recipient over one provider. Send never returns
// an error: every outcome is described by the DeliveryResult.
type Adapter interface {
	Name() models.Channel
	Configured() bool
	Send(ctx context.Context, recipient models.Recipient, payload models.NotificationPayload) models.DeliveryResult
}

// Transport is the subset of the provider client the adapters use
type Transport interface {
	PostJSON(ctx context.Context, provider, endpoint string, headers map[string]string, body interface{}) (*providerhttp.Response, error)
	PostForm(ctx context.Context, provider, endpoint string, headers map[string]string, form url.Values) (*providerhttp.Response, error)
}

func notConfigured(ch models.Channel) models.DeliveryResult {
	return models.DeliveryResult{
		Channel:   ch,
		ErrorCode: models.ErrCodeConfigurationMissing,
		Error:     string(ch) + " provider is not configured",
	}
}

func invalidRecipient(ch models.Channel, msg string) models.DeliveryResult {
	return models.DeliveryResult{
		Channel:   ch,
		ErrorCode: models.ErrCodeInvalidRecipient,
		Error:     msg,
	}
}

// failure classifies a transport error. Provider rejections (4xx other than 429)
// mean the recipient is unusable; everything else may succeed later.
func failure(ch models.Channel, err error) models.DeliveryResult {
	result := models.DeliveryResult{Channel: ch, Error: err.Error()}

	switch {
	case providerhttp.IsRejected(err):
		result.ErrorCode = models.ErrCodeInvalidRecipient
	case errors.Is(err, circuitbreaker.ErrCircuitBreakerOpen), errors.Is(err, circuitbreaker.ErrTooManyRequests):
		result.ErrorCode = models.ErrCodeTransientFailure
		result.Error = string(ch) + " provider temporarily unavailable"
	default:
		result.ErrorCode = models.ErrCodeTransientFailure
	}
	return result
}

// messageText renders the payload as a single plain-text message
func messageText(payload models.NotificationPayload) string {
	body := utils.SanitizeMessage(payload.Body)
	title := utils.SanitizeMessage(payload.Title)
	if title == "" {
		return body
	}
	return title + "\n" + body
}

// normalizedPhone returns the recipient phone in provider form, or an empty string
func normalizedPhone(recipient models.Recipient) string {
	phone, err := utils.NormalizePhone(strings.TrimSpace(recipient.Phone))
	if err != nil {
		return ""
	}
	return phone
}
