package channel

import (
	"context"
	"fmt"
	"strings"

	"github.com/alshuail/authnotify/internal/pkg/models"
)

// Provider result codes that mean the device token will never work again
var staleTokenErrors = map[string]bool{
	"InvalidRegistration": true,
	"NotRegistered":       true,
}

// PushAdapter sends a notification to every registered device of a member
type PushAdapter struct {
	config    models.PushConfig
	transport Transport
}

// NewPushAdapter creates the push adapter
func NewPushAdapter(config models.PushConfig, transport Transport) *PushAdapter {
	return &PushAdapter{config: config, transport: transport}
}

type pushNotification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type pushRequest struct {
	To           string            `json:"to"`
	Notification pushNotification  `json:"notification"`
	Data         map[string]string `json:"data,omitempty"`
}

type pushResponse struct {
	Success int `json:"success"`
	Failure int `json:"failure"`
	Results []struct {
		MessageID string `json:"message_id"`
		Error     string `json:"error"`
	} `json:"results"`
}

// Name implements Adapter
func (a *PushAdapter) Name() models.Channel {
	return models.ChannelPush
}

// Configured implements Adapter
func (a *PushAdapter) Configured() bool {
	return a.config.Configured()
}

// Send implements Adapter. The send succeeds when at least one device accepted it;
// tokens the provider reports as stale are returned for eviction.
func (a *PushAdapter) Send(ctx context.Context, recipient models.Recipient, payload models.NotificationPayload) models.DeliveryResult {
	if !a.Configured() {
		return notConfigured(models.ChannelPush)
	}
	if len(recipient.DeviceTokens) == 0 {
		return invalidRecipient(models.ChannelPush, "recipient has no registered devices")
	}

	headers := map[string]string{"Authorization": "key=" + a.config.ServerKey}
	// payload is shared across concurrent sends; never write to payload.Data
	data := make(map[string]string, len(payload.Data)+1)
	for key, value := range payload.Data {
		data[key] = value
	}
	data["type"] = string(payload.Type)

	result := models.DeliveryResult{Channel: models.ChannelPush}
	var messageIDs, failures []string
	var lastFailure models.DeliveryResult

	for _, token := range recipient.DeviceTokens {
		if ctx.Err() != nil {
			break
		}

		resp, err := a.transport.PostJSON(ctx, string(models.ChannelPush), a.config.URL, headers, pushRequest{
			To: token,
			Notification: pushNotification{
				Title: payload.Title,
				Body:  payload.Body,
			},
			Data: data,
		})
		if err != nil {
			lastFailure = failure(models.ChannelPush, err)
			failures = append(failures, lastFailure.Error)
			continue
		}

		var decoded pushResponse
		if err := resp.DecodeJSON(&decoded); err != nil {
			lastFailure = failure(models.ChannelPush, fmt.Errorf("unreadable push response: %w", err))
			failures = append(failures, lastFailure.Error)
			continue
		}

		delivered := decoded.Success > 0
		for _, r := range decoded.Results {
			if r.MessageID != "" {
				delivered = true
				messageIDs = append(messageIDs, r.MessageID)
			}
			if staleTokenErrors[r.Error] {
				result.EvictedAddresses = append(result.EvictedAddresses, token)
			}
			if r.Error != "" {
				failures = append(failures, r.Error)
			}
		}
		if !delivered && len(decoded.Results) == 0 {
			failures = append(failures, "push provider reported no result")
		}
		if delivered {
			result.Success = true
		}
	}

	result.ShouldEvictRecipient = len(result.EvictedAddresses) > 0
	result.MessageID = strings.Join(messageIDs, ",")

	if result.Success {
		return result
	}

	switch {
	case lastFailure.ErrorCode != "":
		result.ErrorCode = lastFailure.ErrorCode
	case len(result.EvictedAddresses) == len(recipient.DeviceTokens):
		result.ErrorCode = models.ErrCodeInvalidRecipient
	default:
		result.ErrorCode = models.ErrCodeTransientFailure
	}
	result.Error = strings.Join(failures, "; ")
	if result.Error == "" {
		result.Error = "push delivery failed"
	}
	return result
}
