package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alshuail/authnotify/internal/pkg/apperror"
	"github.com/alshuail/authnotify/internal/pkg/models"
	"github.com/alshuail/authnotify/services/notification/mocks"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) (*gin.Engine, *mocks.MockNotificationUC) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUC := mocks.NewMockNotificationUC(ctrl)
	handler := NewNotificationHandler(mockUC)

	r := gin.New()
	r.POST("/notifications/send", handler.Send)
	r.POST("/notifications/bulk", handler.SendBulk)
	r.POST("/notifications/enqueue", handler.Enqueue)
	r.GET("/notifications/preferences/:memberId", handler.GetPreference)
	r.PUT("/notifications/preferences/:memberId", handler.UpdatePreference)
	return r, mockUC
}

func perform(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestNotificationHandler_Send(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		r, mockUC := setupRouter(t)
		mockUC.EXPECT().
			Send(gomock.Any(), &models.DispatchRequest{
				MemberID: "member-1",
				Payload:  models.NotificationPayload{Type: models.NotificationPaymentReceipt, Body: "Received"},
			}).
			Return(&models.DispatchResult{MemberID: "member-1", Success: true, DeliveredVia: models.ChannelSMS}, nil)

		// Act
		rec := perform(r, http.MethodPost, "/notifications/send",
			`{"memberId":"member-1","payload":{"type":"payment_receipt","body":"Received"}}`)

		// Assert
		assert.Equal(t, http.StatusOK, rec.Code)
		data := decode(t, rec)["data"].(map[string]interface{})
		assert.Equal(t, "sms", data["deliveredVia"])
	})

	t.Run("Validation error", func(t *testing.T) {
		r, mockUC := setupRouter(t)
		mockUC.EXPECT().Send(gomock.Any(), gomock.Any()).
			Return(nil, apperror.NewValidationError("memberId is required"))

		rec := perform(r, http.MethodPost, "/notifications/send", `{"payload":{"type":"payment_receipt","body":"x"}}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "memberId is required", decode(t, rec)["error"])
	})

	t.Run("Malformed body", func(t *testing.T) {
		r, _ := setupRouter(t)

		rec := perform(r, http.MethodPost, "/notifications/send", `{"memberId":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestNotificationHandler_SendBulk(t *testing.T) {
	r, mockUC := setupRouter(t)
	mockUC.EXPECT().SendBulk(gomock.Any(), gomock.Any()).
		Return(&models.BulkDispatchResult{Total: 2, Delivered: 1, Failed: 1}, nil)

	rec := perform(r, http.MethodPost, "/notifications/bulk",
		`{"memberIds":["a","b"],"payload":{"type":"general_announcement","body":"Hello"}}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	data := decode(t, rec)["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["failed"])
}

func TestNotificationHandler_Enqueue(t *testing.T) {
	t.Run("Accepted", func(t *testing.T) {
		r, mockUC := setupRouter(t)
		mockUC.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return("01HZX3N9Q5J8M4K2T7V6W1Y0AB", nil)

		rec := perform(r, http.MethodPost, "/notifications/enqueue",
			`{"memberIds":["a"],"payload":{"type":"event_invitation","body":"Join us"}}`)

		assert.Equal(t, http.StatusAccepted, rec.Code)
		data := decode(t, rec)["data"].(map[string]interface{})
		assert.Equal(t, "01HZX3N9Q5J8M4K2T7V6W1Y0AB", data["batchId"])
	})

	t.Run("Queue down", func(t *testing.T) {
		r, mockUC := setupRouter(t)
		mockUC.EXPECT().Enqueue(gomock.Any(), gomock.Any()).
			Return("", apperror.Wrap(errors.New("nsqd unreachable"), "failed to enqueue notifications"))

		rec := perform(r, http.MethodPost, "/notifications/enqueue",
			`{"memberIds":["a"],"payload":{"type":"event_invitation","body":"Join us"}}`)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "nsqd")
	})
}

func TestNotificationHandler_Preferences(t *testing.T) {
	t.Run("Get", func(t *testing.T) {
		r, mockUC := setupRouter(t)
		mockUC.EXPECT().GetPreference(gomock.Any(), "member-1").
			Return(models.DefaultNotificationPreference("member-1"), nil)

		rec := perform(r, http.MethodGet, "/notifications/preferences/member-1", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		data := decode(t, rec)["data"].(map[string]interface{})
		assert.Equal(t, "ar", data["language"])
	})

	t.Run("Update", func(t *testing.T) {
		r, mockUC := setupRouter(t)
		lang := "en"
		mockUC.EXPECT().
			UpdatePreference(gomock.Any(), "member-1", &models.PreferenceUpdate{
				Channels: map[models.Channel]bool{models.ChannelSMS: true},
				Language: &lang,
			}).
			Return(models.DefaultNotificationPreference("member-1"), nil)

		rec := perform(r, http.MethodPut, "/notifications/preferences/member-1",
			`{"channels":{"sms":true},"language":"en"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
