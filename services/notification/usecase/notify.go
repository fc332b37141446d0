package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/alshuail/authnotify/internal/pkg/apperror"
	"github.com/alshuail/authnotify/internal/pkg/logger"
	"github.com/alshuail/authnotify/internal/pkg/models"
)

func validatePayload(payload models.NotificationPayload, channels []models.Channel) error {
	if !payload.Type.Valid() {
		return apperror.NewValidationError(fmt.Sprintf("unknown notification type %q", payload.Type))
	}
	if strings.TrimSpace(payload.Body) == "" {
		return apperror.NewValidationError("payload.body is required")
	}
	for _, ch := range channels {
		if !ch.Valid() {
			return apperror.NewValidationError(fmt.Sprintf("unknown channel %q", ch))
		}
	}
	return nil
}

// validateBulk returns the trimmed member IDs, duplicates removed, in request order
func validateBulk(req *models.BulkDispatchRequest) ([]string, error) {
	if req == nil {
		return nil, apperror.NewValidationError("request body is required")
	}

	memberIDs := make([]string, 0, len(req.MemberIDs))
	seen := make(map[string]bool, len(req.MemberIDs))
	for _, id := range req.MemberIDs {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		memberIDs = append(memberIDs, id)
	}

	if len(memberIDs) == 0 {
		return nil, apperror.NewValidationError("memberIds is required")
	}
	if len(memberIDs) > maxBulkSize {
		return nil, apperror.NewValidationError(fmt.Sprintf("at most %d members per request", maxBulkSize))
	}
	if err := validatePayload(req.Payload, req.Channels); err != nil {
		return nil, err
	}
	return memberIDs, nil
}

func skipped(memberID, reason string) models.DispatchResult {
	return models.DispatchResult{
		MemberID: memberID,
		Attempts: []models.DeliveryResult{},
		Reason:   reason,
	}
}

// Send delivers one notification to one member
func (u *NotificationUC) Send(ctx context.Context, req *models.DispatchRequest) (*models.DispatchResult, error) {
	if req == nil {
		return nil, apperror.NewValidationError("request body is required")
	}
	memberID := strings.TrimSpace(req.MemberID)
	if memberID == "" {
		return nil, apperror.NewValidationError("memberId is required")
	}
	if err := validatePayload(req.Payload, req.Channels); err != nil {
		return nil, err
	}

	result, err := u.deliver(ctx, memberID, req.Payload, u.candidates(req.Channels))
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// SendBulk delivers the same payload to every member independently on a bounded
// worker pool. Members not reached before ctx ends are reported as cancelled.
func (u *NotificationUC) SendBulk(ctx context.Context, req *models.BulkDispatchRequest) (*models.BulkDispatchResult, error) {
	memberIDs, err := validateBulk(req)
	if err != nil {
		return nil, err
	}
	candidates := u.candidates(req.Channels)

	results := make([]models.DispatchResult, len(memberIDs))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < min(u.workers(), len(memberIDs)); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				result, err := u.deliver(ctx, memberIDs[i], req.Payload, candidates)
				if err != nil {
					logger.WarnCtx(ctx, "Bulk recipient failed",
						logger.String("batch_id", req.BatchID),
						logger.String("member_id", memberIDs[i]),
						logger.Err(err))
				}
				results[i] = result
			}
		}()
	}

feed:
	for i := range memberIDs {
		select {
		case jobs <- i:
		case <-ctx.Done():
			for j := i; j < len(memberIDs); j++ {
				results[j] = skipped(memberIDs[j], models.ReasonCancelled)
			}
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	summary := &models.BulkDispatchResult{
		BatchID: req.BatchID,
		Total:   len(results),
		Results: results,
	}
	for _, r := range results {
		if r.Success {
			summary.Delivered++
		} else {
			summary.Failed++
		}
	}

	logger.InfoCtx(ctx, "Bulk notification finished",
		logger.String("batch_id", req.BatchID),
		logger.String("type", string(req.Payload.Type)),
		logger.Int("total", summary.Total),
		logger.Int("delivered", summary.Delivered),
		logger.Int("failed", summary.Failed))

	return summary, nil
}

// deliver applies the member's preference and walks the permitted channels
func (u *NotificationUC) deliver(ctx context.Context, memberID string, payload models.NotificationPayload, candidates []models.Channel) (models.DispatchResult, error) {
	pref := u.preferenceFor(ctx, memberID)

	decision := Evaluate(pref, payload.Type, candidates, u.now().In(u.location))
	if decision.Suppressed {
		logger.InfoCtx(ctx, "Notification suppressed",
			logger.String("member_id", memberID),
			logger.String("type", string(payload.Type)),
			logger.String("reason", decision.Reason))
		result := skipped(memberID, decision.Reason)
		result.DeferredUntil = decision.DeferredUntil
		return result, nil
	}

	recipient, err := u.recipients.GetRecipient(ctx, memberID)
	if err != nil {
		if apperror.Is(err, apperror.KindNotFound) {
			return skipped(memberID, models.ReasonMemberNotFound), nil
		}
		return skipped(memberID, models.ReasonLookupFailed), apperror.Wrap(err, "failed to load recipient")
	}
	recipient.Language = pref.Language

	result := u.dispatcher.Dispatch(ctx, *recipient, payload, decision.Channels)
	u.evictTokens(ctx, memberID, result)
	return result, nil
}

// evictTokens deactivates push tokens the provider reported as permanently invalid
func (u *NotificationUC) evictTokens(ctx context.Context, memberID string, result models.DispatchResult) {
	var tokens []string
	for _, attempt := range result.Attempts {
		if attempt.ShouldEvictRecipient {
			tokens = append(tokens, attempt.EvictedAddresses...)
		}
	}
	if len(tokens) == 0 {
		return
	}

	if err := u.recipients.DeactivateDeviceTokens(ctx, memberID, tokens); err != nil {
		logger.WarnCtx(ctx, "Failed to evict device tokens",
			logger.String("member_id", memberID),
			logger.Int("tokens", len(tokens)),
			logger.Err(err))
		return
	}
	logger.InfoCtx(ctx, "Evicted device tokens",
		logger.String("member_id", memberID),
		logger.Int("tokens", len(tokens)))
}
