package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alshuail/authnotify/internal/pkg/apperror"
	"github.com/alshuail/authnotify/internal/pkg/models"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func notStored() error {
	return apperror.NewNotFoundError("preference not found")
}

func TestSend_DefaultPreference(t *testing.T) {
	// Arrange
	d := setupNotificationUC(t)
	d.preferences.EXPECT().GetPreference(gomock.Any(), "member-1").Return(nil, notStored())
	d.recipients.EXPECT().GetRecipient(gomock.Any(), "member-1").Return(testRecipient("member-1"), nil)
	d.dispatcher.EXPECT().
		Dispatch(gomock.Any(), gomock.Any(), testPayload(models.NotificationPaymentReminder),
			[]models.Channel{models.ChannelWhatsApp, models.ChannelPush}).
		DoAndReturn(func(_ context.Context, r models.Recipient, _ models.NotificationPayload, _ []models.Channel) models.DispatchResult {
			assert.Equal(t, "ar", r.Language)
			return models.DispatchResult{
				MemberID:     r.MemberID,
				Success:      true,
				DeliveredVia: models.ChannelWhatsApp,
				Attempts:     []models.DeliveryResult{{Channel: models.ChannelWhatsApp, Success: true}},
			}
		})

	// Act
	result, err := d.uc.Send(context.Background(), &models.DispatchRequest{
		MemberID: "member-1",
		Payload:  testPayload(models.NotificationPaymentReminder),
	})

	// Assert
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, models.ChannelWhatsApp, result.DeliveredVia)
}

func TestSend_RequestedChannelsFilteredByPreference(t *testing.T) {
	d := setupNotificationUC(t)
	d.preferences.EXPECT().GetPreference(gomock.Any(), "member-1").Return(nil, notStored())
	d.recipients.EXPECT().GetRecipient(gomock.Any(), "member-1").Return(testRecipient("member-1"), nil)
	d.dispatcher.EXPECT().
		Dispatch(gomock.Any(), gomock.Any(), gomock.Any(), []models.Channel{models.ChannelPush}).
		Return(models.DispatchResult{Success: true, DeliveredVia: models.ChannelPush})

	_, err := d.uc.Send(context.Background(), &models.DispatchRequest{
		MemberID: "member-1",
		Payload:  testPayload(models.NotificationEventInvitation),
		Channels: []models.Channel{models.ChannelSMS, models.ChannelPush},
	})

	require.NoError(t, err)
}

func TestSend_QuietHoursSuppress(t *testing.T) {
	d := setupNotificationUC(t)
	pref := models.DefaultNotificationPreference("member-1")
	pref.QuietHours = models.QuietHours{Enabled: true, Start: "10:00", End: "14:00"}
	d.preferences.EXPECT().GetPreference(gomock.Any(), "member-1").Return(pref, nil)
	// no recipient or dispatcher expectations: nothing may be sent

	result, err := d.uc.Send(context.Background(), &models.DispatchRequest{
		MemberID: "member-1",
		Payload:  testPayload(models.NotificationGeneralAnnouncement),
	})

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, models.ReasonQuietHours, result.Reason)
	require.NotNil(t, result.DeferredUntil)
	assert.Equal(t, testNow.Add(2*time.Hour+time.Minute), result.DeferredUntil.UTC())
	assert.Empty(t, result.Attempts)
}

func TestSend_CrisisAlertIgnoresQuietHours(t *testing.T) {
	d := setupNotificationUC(t)
	pref := models.DefaultNotificationPreference("member-1")
	pref.QuietHours = models.QuietHours{Enabled: true, Start: "10:00", End: "14:00"}
	d.preferences.EXPECT().GetPreference(gomock.Any(), "member-1").Return(pref, nil)
	d.recipients.EXPECT().GetRecipient(gomock.Any(), "member-1").Return(testRecipient("member-1"), nil)
	d.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.DispatchResult{Success: true, DeliveredVia: models.ChannelWhatsApp})

	result, err := d.uc.Send(context.Background(), &models.DispatchRequest{
		MemberID: "member-1",
		Payload:  testPayload(models.NotificationCrisisAlert),
	})

	require.NoError(t, err)
	assert.True(t, result.Success)
}

func TestSend_MemberNotFound(t *testing.T) {
	d := setupNotificationUC(t)
	d.preferences.EXPECT().GetPreference(gomock.Any(), "ghost").Return(nil, notStored())
	d.recipients.EXPECT().GetRecipient(gomock.Any(), "ghost").
		Return(nil, apperror.NewNotFoundError("member not found"))

	result, err := d.uc.Send(context.Background(), &models.DispatchRequest{
		MemberID: "ghost",
		Payload:  testPayload(models.NotificationPaymentReceipt),
	})

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, models.ReasonMemberNotFound, result.Reason)
}

func TestSend_PreferenceErrorFallsBackToDefaults(t *testing.T) {
	d := setupNotificationUC(t)
	d.preferences.EXPECT().GetPreference(gomock.Any(), "member-1").Return(nil, errors.New("timeout"))
	d.recipients.EXPECT().GetRecipient(gomock.Any(), "member-1").Return(testRecipient("member-1"), nil)
	d.dispatcher.EXPECT().
		Dispatch(gomock.Any(), gomock.Any(), gomock.Any(), []models.Channel{models.ChannelWhatsApp, models.ChannelPush}).
		Return(models.DispatchResult{Success: true})

	_, err := d.uc.Send(context.Background(), &models.DispatchRequest{
		MemberID: "member-1",
		Payload:  testPayload(models.NotificationPaymentReceipt),
	})

	require.NoError(t, err)
}

func TestSend_RecipientLookupError(t *testing.T) {
	d := setupNotificationUC(t)
	d.preferences.EXPECT().GetPreference(gomock.Any(), "member-1").Return(nil, notStored())
	d.recipients.EXPECT().GetRecipient(gomock.Any(), "member-1").Return(nil, errors.New("connection refused"))

	_, err := d.uc.Send(context.Background(), &models.DispatchRequest{
		MemberID: "member-1",
		Payload:  testPayload(models.NotificationPaymentReceipt),
	})

	assert.Equal(t, apperror.KindInternal, apperror.KindOf(err))
}

func TestSend_EvictsRejectedTokens(t *testing.T) {
	d := setupNotificationUC(t)
	d.preferences.EXPECT().GetPreference(gomock.Any(), "member-1").Return(nil, notStored())
	d.recipients.EXPECT().GetRecipient(gomock.Any(), "member-1").Return(testRecipient("member-1"), nil)
	d.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.DispatchResult{
			Success:      true,
			DeliveredVia: models.ChannelPush,
			Attempts: []models.DeliveryResult{
				{Channel: models.ChannelWhatsApp, ErrorCode: models.ErrCodeTransientFailure},
				{
					Channel:              models.ChannelPush,
					Success:              true,
					ShouldEvictRecipient: true,
					EvictedAddresses:     []string{"stale-token"},
				},
			},
		})
	d.recipients.EXPECT().DeactivateDeviceTokens(gomock.Any(), "member-1", []string{"stale-token"}).Return(nil)

	result, err := d.uc.Send(context.Background(), &models.DispatchRequest{
		MemberID: "member-1",
		Payload:  testPayload(models.NotificationRSVPConfirmation),
	})

	require.NoError(t, err)
	assert.True(t, result.Success)
}

func TestSend_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  *models.DispatchRequest
	}{
		{"Nil request", nil},
		{"Missing member", &models.DispatchRequest{Payload: testPayload(models.NotificationPaymentReceipt)}},
		{"Unknown type", &models.DispatchRequest{MemberID: "m", Payload: testPayload("otp")}},
		{"Empty body", &models.DispatchRequest{MemberID: "m", Payload: models.NotificationPayload{Type: models.NotificationPaymentReceipt, Body: "  "}}},
		{"Unknown channel", &models.DispatchRequest{MemberID: "m", Payload: testPayload(models.NotificationPaymentReceipt), Channels: []models.Channel{"email"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := setupNotificationUC(t)

			_, err := d.uc.Send(context.Background(), tt.req)

			assert.True(t, apperror.Is(err, apperror.KindValidation))
		})
	}
}

func TestSendBulk_IndependentRecipients(t *testing.T) {
	// Arrange
	d := setupNotificationUC(t)
	memberIDs := make([]string, 0, 10)
	for i := 0; i < 10; i++ {
		memberIDs = append(memberIDs, fmt.Sprintf("member-%d", i))
	}

	d.preferences.EXPECT().GetPreference(gomock.Any(), gomock.Any()).Return(nil, notStored()).Times(10)
	d.recipients.EXPECT().GetRecipient(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id string) (*models.Recipient, error) {
			return testRecipient(id), nil
		}).Times(10)

	var inFlight, peak int32
	var mu sync.Mutex
	calls := make(map[string]int)
	d.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r models.Recipient, _ models.NotificationPayload, _ []models.Channel) models.DispatchResult {
			n := atomic.AddInt32(&inFlight, 1)
			defer atomic.AddInt32(&inFlight, -1)
			for {
				p := atomic.LoadInt32(&peak)
				if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)

			mu.Lock()
			calls[r.MemberID]++
			mu.Unlock()
			return models.DispatchResult{MemberID: r.MemberID, Success: r.MemberID != "member-3"}
		}).Times(10)

	// Act
	summary, err := d.uc.SendBulk(context.Background(), &models.BulkDispatchRequest{
		BatchID:   "batch-1",
		MemberIDs: append(memberIDs, "member-0", " "),
		Payload:   testPayload(models.NotificationGeneralAnnouncement),
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 10, summary.Total)
	assert.Equal(t, 9, summary.Delivered)
	assert.Equal(t, 1, summary.Failed)
	for i, r := range summary.Results {
		assert.Equal(t, memberIDs[i], r.MemberID, "results keep request order")
	}
	for _, id := range memberIDs {
		assert.Equal(t, 1, calls[id], "each member is dispatched exactly once")
	}
	assert.LessOrEqual(t, int(peak), d.cfg.Notification.Workers)
}

func TestSendBulk_CancelledContext(t *testing.T) {
	d := setupNotificationUC(t)
	d.preferences.EXPECT().GetPreference(gomock.Any(), gomock.Any()).Return(nil, notStored()).AnyTimes()
	d.recipients.EXPECT().GetRecipient(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id string) (*models.Recipient, error) {
			return testRecipient(id), nil
		}).AnyTimes()
	d.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.DispatchResult{}).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ids := []string{"a", "b", "c", "d", "e", "f"}
	summary, err := d.uc.SendBulk(ctx, &models.BulkDispatchRequest{
		MemberIDs: ids,
		Payload:   testPayload(models.NotificationGeneralAnnouncement),
	})

	require.NoError(t, err)
	assert.Equal(t, len(ids), summary.Total)
	assert.Equal(t, 0, summary.Delivered)
	for i, r := range summary.Results {
		assert.Equal(t, ids[i], r.MemberID)
	}
}

func TestSendBulk_Validation(t *testing.T) {
	tooMany := make([]string, maxBulkSize+1)
	for i := range tooMany {
		tooMany[i] = fmt.Sprintf("m-%d", i)
	}

	tests := []struct {
		name string
		req  *models.BulkDispatchRequest
	}{
		{"Nil request", nil},
		{"No members", &models.BulkDispatchRequest{Payload: testPayload(models.NotificationPaymentReceipt)}},
		{"Blank members", &models.BulkDispatchRequest{MemberIDs: []string{" ", ""}, Payload: testPayload(models.NotificationPaymentReceipt)}},
		{"Too many members", &models.BulkDispatchRequest{MemberIDs: tooMany, Payload: testPayload(models.NotificationPaymentReceipt)}},
		{"Unknown type", &models.BulkDispatchRequest{MemberIDs: []string{"m"}, Payload: testPayload("newsletter")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := setupNotificationUC(t)

			_, err := d.uc.SendBulk(context.Background(), tt.req)

			assert.True(t, apperror.Is(err, apperror.KindValidation))
		})
	}
}
