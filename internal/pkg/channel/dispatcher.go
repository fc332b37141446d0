package channel

import (
	"context"
	"errors"
	"time"

	"github.com/alshuail/authnotify/internal/pkg/logger"
	"github.com/alshuail/authnotify/internal/pkg/models"
	"github.com/alshuail/authnotify/internal/utils"
	"golang.org/x/time/rate"
)

// DefaultCallTimeout bounds one adapter call
const DefaultCallTimeout = 10 * time.Second

// Dispatcher tries channels in order for one recipient and stops at the first success
type Dispatcher struct {
	adapters    map[models.Channel]Adapter
	limiters    map[models.Channel]*rate.Limiter
	callTimeout time.Duration
}

// NewDispatcher creates a dispatcher over the given adapters
func NewDispatcher(callTimeout time.Duration, adapters ...Adapter) *Dispatcher {
	if callTimeout <= 0 {
		callTimeout = DefaultCallTimeout
	}
	d := &Dispatcher{
		adapters:    make(map[models.Channel]Adapter, len(adapters)),
		limiters:    make(map[models.Channel]*rate.Limiter),
		callTimeout: callTimeout,
	}
	for _, adapter := range adapters {
		d.adapters[adapter.Name()] = adapter
	}
	return d
}

// WithChannelInterval spaces calls to each provider at least interval apart, across
// every goroutine sharing this dispatcher
func (d *Dispatcher) WithChannelInterval(interval time.Duration) *Dispatcher {
	if interval <= 0 {
		return d
	}
	for ch := range d.adapters {
		d.limiters[ch] = rate.NewLimiter(rate.Every(interval), 1)
	}
	return d
}

// Status reports which channels can currently be used
func (d *Dispatcher) Status() map[models.Channel]bool {
	status := make(map[models.Channel]bool, len(d.adapters))
	for ch, adapter := range d.adapters {
		status[ch] = adapter.Configured()
	}
	return status
}

// Dispatch tries each channel of order in turn. Every attempt is recorded; the
// first success ends the walk, as does cancellation of ctx.
func (d *Dispatcher) Dispatch(ctx context.Context, recipient models.Recipient, payload models.NotificationPayload, order []models.Channel) models.DispatchResult {
	result := models.DispatchResult{
		MemberID: recipient.MemberID,
		Attempts: make([]models.DeliveryResult, 0, len(order)),
	}
	if len(order) == 0 {
		result.Reason = models.ReasonNoChannels
		return result
	}

	for _, ch := range order {
		if ctx.Err() != nil {
			break
		}

		adapter, ok := d.adapters[ch]
		if !ok {
			result.Attempts = append(result.Attempts, notConfigured(ch))
			continue
		}
		if !adapter.Configured() {
			result.Attempts = append(result.Attempts, notConfigured(ch))
			continue
		}

		if limiter := d.limiters[ch]; limiter != nil {
			if err := limiter.Wait(ctx); err != nil {
				break
			}
		}

		attempt := d.send(ctx, adapter, recipient, payload)
		result.Attempts = append(result.Attempts, attempt)

		if attempt.Success {
			result.Success = true
			result.DeliveredVia = ch
			break
		}

		logger.DebugCtx(ctx, "Channel attempt failed",
			logger.String("channel", string(ch)),
			logger.String("member_id", recipient.MemberID),
			logger.String("error_code", attempt.ErrorCode))
	}

	if !result.Success {
		logger.WarnCtx(ctx, "Notification not delivered on any channel",
			logger.String("member_id", recipient.MemberID),
			logger.String("phone", utils.MaskPhoneNumber(recipient.Phone)),
			logger.Int("attempts", len(result.Attempts)))
	}

	return result
}

func (d *Dispatcher) send(ctx context.Context, adapter Adapter, recipient models.Recipient, payload models.NotificationPayload) models.DeliveryResult {
	callCtx, cancel := context.WithTimeout(ctx, d.callTimeout)
	defer cancel()

	attempt := adapter.Send(callCtx, recipient, payload)
	attempt.Channel = adapter.Name()

	if !attempt.Success && errors.Is(callCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
		attempt.ErrorCode = models.ErrCodeTransientFailure
		if attempt.Error == "" {
			attempt.Error = "provider call timed out"
		}
	}
	return attempt
}
