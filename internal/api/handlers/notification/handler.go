package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/hduce/appointment-notify/internal/api/dto"
	"github.com/hduce/appointment-notify/internal/api/respond"
	"github.com/hduce/appointment-notify/internal/model"
	"github.com/hduce/appointment-notify/internal/repository/notification"
)

type notifService interface {
	CreateNotification(ctx context.Context, n model.Notification) (model.Notification, error)
	GetNotificationStatusByID(ctx context.Context, id int64) (string, error)
	GetNotificationsByUser(ctx context.Context, userID string) ([]model.Notification, error)
	GetAllNotifications(ctx context.Context) ([]model.Notification, error)
}

// Handler serves the notification service REST surface, including the
// endpoints the appointment service uses as its broker fallback path.
type Handler struct {
	service   notifService
	validator *validator.Validate
}

func NewHandler(s notifService, v *validator.Validate) *Handler {
	return &Handler{service: s, validator: v}
}

// SendEmail handles POST /api/notify/email.
func (h *Handler) SendEmail(c *ginext.Context) {
	var req dto.EmailRequest
	if !h.decode(c, &req) {
		return
	}

	h.create(c, model.Notification{
		UserID:           req.UserID,
		NotificationType: model.ChannelEmail,
		Subject:          req.Subject,
		Message:          req.Message,
		RecipientEmail:   req.RecipientEmail,
	})
}

// SendSMS handles POST /api/notify/sms.
func (h *Handler) SendSMS(c *ginext.Context) {
	var req dto.SMSRequest
	if !h.decode(c, &req) {
		return
	}

	h.create(c, model.Notification{
		UserID:           req.UserID,
		NotificationType: model.ChannelSMS,
		Message:          req.Message,
		RecipientPhone:   req.RecipientPhone,
	})
}

// Send handles POST /api/notify/send.
func (h *Handler) Send(c *ginext.Context) {
	var req dto.SendRequest
	if !h.decode(c, &req) {
		return
	}

	h.create(c, model.Notification{
		UserID:           req.UserID,
		NotificationType: req.NotificationType,
		Subject:          req.Subject,
		Message:          req.Message,
		RecipientEmail:   req.RecipientEmail,
		RecipientPhone:   req.RecipientPhone,
		AppointmentID:    req.AppointmentID,
	})
}

// SendReminder handles POST /api/notify/appointment/reminder.
func (h *Handler) SendReminder(c *ginext.Context) {
	var req dto.ReminderRequest
	if !h.decode(c, &req) {
		return
	}

	doctor := req.DoctorName
	if doctor == "" {
		doctor = "your doctor"
	}

	h.create(c, model.Notification{
		UserID:           req.PatientID,
		NotificationType: model.ChannelEmail,
		Subject:          "Appointment reminder",
		Message:          fmt.Sprintf("Reminder: you have an appointment with %s on %s.", doctor, req.AppointmentDate),
		RecipientEmail:   req.PatientEmail,
		RecipientPhone:   req.PatientPhone,
		AppointmentID:    req.AppointmentID,
	})
}

// GetStatus handles GET /api/notify/:id/status.
func (h *Handler) GetStatus(c *ginext.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid id"))
		return
	}

	status, err := h.service.GetNotificationStatusByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, notification.ErrNotificationNotFound) {
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("notification not found"))
			return
		}

		zlog.Logger.Error().Err(err).Int64("id", id).Msg("failed to get notification status")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, status)
}

// GetByUser handles GET /api/notify/user/:user_id.
func (h *Handler) GetByUser(c *ginext.Context) {
	userID := c.Param("user_id")
	if userID == "" {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("missing user id"))
		return
	}

	notifications, err := h.service.GetNotificationsByUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, notification.ErrNoNotificationsFound) {
			respond.OK(c.Writer, []model.Notification{})
			return
		}

		zlog.Logger.Error().Err(err).Str("user_id", userID).Msg("failed to get notifications")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, notifications)
}

// GetAll handles GET /api/notify/.
func (h *Handler) GetAll(c *ginext.Context) {
	notifications, err := h.service.GetAllNotifications(c.Request.Context())
	if err != nil {
		if errors.Is(err, notification.ErrNoNotificationsFound) {
			respond.OK(c.Writer, []model.Notification{})
			return
		}

		zlog.Logger.Error().Err(err).Msg("failed to get notifications")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, notifications)
}

func (h *Handler) decode(c *ginext.Context, req any) bool {
	if err := json.NewDecoder(c.Request.Body).Decode(req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return false
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return false
	}

	return true
}

func (h *Handler) create(c *ginext.Context, n model.Notification) {
	created, err := h.service.CreateNotification(c.Request.Context(), n)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("user_id", n.UserID).Msg("failed to create notification")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.Created(c.Writer, created)
}
