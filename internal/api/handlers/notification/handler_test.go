package notification

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/hduce/appointment-notify/internal/api/dto"
	mocks "github.com/hduce/appointment-notify/internal/mocks/api/handlers/notification"
	"github.com/hduce/appointment-notify/internal/model"
	"github.com/hduce/appointment-notify/internal/repository/notification"
)

func setupHandler(t *testing.T) (*Handler, *mocks.MocknotifService) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMocknotifService(ctrl)
	handler := NewHandler(mockService, validator.New())
	return handler, mockService
}

func TestHandler_SendEmail_Success(t *testing.T) {
	handler, mockService := setupHandler(t)

	reqBody := dto.EmailRequest{
		UserID:         "p1",
		Subject:        "Appointment reminder",
		Message:        "Reminder",
		RecipientEmail: "maria@example.com",
	}

	bodyBytes, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/api/notify/email", bytes.NewReader(bodyBytes))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	mockService.EXPECT().
		CreateNotification(gomock.Any(), gomock.AssignableToTypeOf(model.Notification{})).
		DoAndReturn(func(_ interface{}, n model.Notification) (model.Notification, error) {
			assert.Equal(t, model.ChannelEmail, n.NotificationType)
			assert.Equal(t, "maria@example.com", n.RecipientEmail)
			n.ID = 7
			return n, nil
		})

	handler.SendEmail(c)

	assert.Equal(t, http.StatusCreated, w.Result().StatusCode)
}

func TestHandler_SendEmail_ValidationError(t *testing.T) {
	handler, _ := setupHandler(t)

	// recipient_email is required; the service must never be called.
	bodyBytes, _ := json.Marshal(map[string]string{"user_id": "p1", "message": "m"})
	req := httptest.NewRequest(http.MethodPost, "/api/notify/email", bytes.NewReader(bodyBytes))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.SendEmail(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_Send_Success(t *testing.T) {
	handler, mockService := setupHandler(t)

	reqBody := dto.SendRequest{
		UserID:           "p1",
		NotificationType: model.ChannelInApp,
		Subject:          "Appointment confirmed",
		Message:          "Your appointment has been scheduled",
		AppointmentID:    42,
	}

	bodyBytes, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/api/notify/send", bytes.NewReader(bodyBytes))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	mockService.EXPECT().
		CreateNotification(gomock.Any(), gomock.AssignableToTypeOf(model.Notification{})).
		DoAndReturn(func(_ interface{}, n model.Notification) (model.Notification, error) {
			assert.Equal(t, model.ChannelInApp, n.NotificationType)
			assert.Equal(t, int64(42), n.AppointmentID)
			n.ID = 7
			return n, nil
		})

	handler.Send(c)

	assert.Equal(t, http.StatusCreated, w.Result().StatusCode)
}

func TestHandler_Send_InvalidChannel(t *testing.T) {
	handler, _ := setupHandler(t)

	bodyBytes, _ := json.Marshal(map[string]string{
		"user_id":           "p1",
		"notification_type": "carrier_pigeon",
		"message":           "m",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/notify/send", bytes.NewReader(bodyBytes))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Send(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_GetStatus_Success(t *testing.T) {
	handler, mockService := setupHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/notify/7/status", nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "7"}}

	mockService.EXPECT().
		GetNotificationStatusByID(gomock.Any(), int64(7)).
		Return("sent", nil)

	handler.GetStatus(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_GetStatus_NotFound(t *testing.T) {
	handler, mockService := setupHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/notify/99/status", nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "99"}}

	mockService.EXPECT().
		GetNotificationStatusByID(gomock.Any(), int64(99)).
		Return("", notification.ErrNotificationNotFound)

	handler.GetStatus(c)

	assert.Equal(t, http.StatusNotFound, w.Result().StatusCode)
}

func TestHandler_GetStatus_BadID(t *testing.T) {
	handler, _ := setupHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/notify/abc/status", nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "abc"}}

	handler.GetStatus(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_GetByUser_Empty(t *testing.T) {
	handler, mockService := setupHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/notify/user/nobody", nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "user_id", Value: "nobody"}}

	mockService.EXPECT().
		GetNotificationsByUser(gomock.Any(), "nobody").
		Return(nil, notification.ErrNoNotificationsFound)

	handler.GetByUser(c)

	// An empty history is an empty list, not an error.
	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_GetAll_Success(t *testing.T) {
	handler, mockService := setupHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/notify/", nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	mockService.EXPECT().
		GetAllNotifications(gomock.Any()).
		Return([]model.Notification{{ID: 1, Message: "m"}}, nil)

	handler.GetAll(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}
