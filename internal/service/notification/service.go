package notification

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/go-redis/redis/v8"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/hduce/appointment-notify/internal/directory"
	"github.com/hduce/appointment-notify/internal/event"
	"github.com/hduce/appointment-notify/internal/model"
)

// Notifier delivers a rendered notification over one channel.
type Notifier interface {
	Send(to, subject, message string) error
}

type notifRepo interface {
	CreateNotification(ctx context.Context, n model.Notification) (model.Notification, error)
	CreateNotificationsTx(ctx context.Context, notifications []model.Notification) ([]model.Notification, error)
	MarkSent(ctx context.Context, id int64) error
	MarkFailed(ctx context.Context, id int64, deliveryErr string) error
	GetNotificationStatusByID(ctx context.Context, id int64) (string, error)
	GetNotificationsByUser(ctx context.Context, userID string) ([]model.Notification, error)
	GetAllNotifications(ctx context.Context) ([]model.Notification, error)
}

type statusCache interface {
	GetWithRetry(ctx context.Context, strategy retry.Strategy, key string) (string, error)
	SetWithRetry(ctx context.Context, strategy retry.Strategy, key string, value interface{}) error
}

// Service owns the notification ledger: it turns appointment events and
// HTTP requests into persisted, delivery-tracked notification rows.
type Service struct {
	repo      notifRepo
	directory directory.DoctorDirectory
	notifiers map[string]Notifier
	cache     statusCache
	strategy  retry.Strategy
}

// NewService creates a notification service.
func NewService(
	repo notifRepo,
	dir directory.DoctorDirectory,
	notifiers map[string]Notifier,
	cache statusCache,
	strategy retry.Strategy,
) *Service {
	return &Service{
		repo:      repo,
		directory: dir,
		notifiers: notifiers,
		cache:     cache,
		strategy:  strategy,
	}
}

// ProcessAppointmentCreated creates one notification row for the patient
// and one for the doctor, in a single transaction, then attempts delivery.
//
// A transaction error is returned to the caller so the message is
// requeued; delivery failures after the rows are persisted are recorded in
// the retry ledger instead, since requeueing then would duplicate rows.
func (s *Service) ProcessAppointmentCreated(ctx context.Context, evt event.AppointmentCreated) error {
	doctorName := s.doctorName(ctx, evt.DoctorID)
	when := formatWhen(evt.AppointmentDate, evt.AppointmentTime)
	reason := evt.Reason
	if reason == "" {
		reason = "medical consultation"
	}

	rows := []model.Notification{
		{
			UserID:           evt.PatientID,
			NotificationType: model.ChannelInApp,
			Subject:          "Appointment confirmed",
			Message:          fmt.Sprintf("Your appointment with %s has been scheduled for %s. Reason: %s", doctorName, when, reason),
			RecipientEmail:   evt.PatientEmail,
			AppointmentID:    evt.AppointmentID,
		},
		{
			UserID:           strconv.FormatInt(evt.DoctorID, 10),
			NotificationType: model.ChannelInApp,
			Subject:          "New appointment assigned",
			Message:          fmt.Sprintf("You have a new appointment scheduled for %s. Patient: %s", when, evt.PatientID),
			AppointmentID:    evt.AppointmentID,
		},
	}

	created, err := s.repo.CreateNotificationsTx(ctx, rows)
	if err != nil {
		return fmt.Errorf("create notifications for appointment %d: %w", evt.AppointmentID, err)
	}

	for _, n := range created {
		s.finishDelivery(ctx, n)
	}

	return nil
}

// ProcessAppointmentUpdated notifies the patient that the appointment changed.
func (s *Service) ProcessAppointmentUpdated(ctx context.Context, evt event.AppointmentUpdated) error {
	msg := fmt.Sprintf("Your appointment #%d has been updated.", evt.AppointmentID)
	if evt.AppointmentDate != "" {
		msg = fmt.Sprintf("Your appointment #%d has been rescheduled to %s.", evt.AppointmentID, evt.AppointmentDate)
	}

	n, err := s.repo.CreateNotification(ctx, model.Notification{
		UserID:           evt.PatientID,
		NotificationType: model.ChannelInApp,
		Subject:          "Appointment updated",
		Message:          msg,
		AppointmentID:    evt.AppointmentID,
	})
	if err != nil {
		return fmt.Errorf("create update notification for appointment %d: %w", evt.AppointmentID, err)
	}

	s.finishDelivery(ctx, n)

	return nil
}

// ProcessAppointmentCancelled notifies the patient of the cancellation.
func (s *Service) ProcessAppointmentCancelled(ctx context.Context, evt event.AppointmentCancelled) error {
	msg := fmt.Sprintf("Your appointment #%d has been cancelled.", evt.AppointmentID)
	if evt.Reason != "" {
		msg = fmt.Sprintf("Your appointment #%d has been cancelled. Reason: %s", evt.AppointmentID, evt.Reason)
	}

	n, err := s.repo.CreateNotification(ctx, model.Notification{
		UserID:           evt.PatientID,
		NotificationType: model.ChannelInApp,
		Subject:          "Appointment cancelled",
		Message:          msg,
		AppointmentID:    evt.AppointmentID,
	})
	if err != nil {
		return fmt.Errorf("create cancel notification for appointment %d: %w", evt.AppointmentID, err)
	}

	s.finishDelivery(ctx, n)

	return nil
}

// ProcessAppointmentReminder sends a reminder, by email when the payload
// carries an address, in-app otherwise.
func (s *Service) ProcessAppointmentReminder(ctx context.Context, evt event.AppointmentReminder) error {
	channel := model.ChannelInApp
	if evt.PatientEmail != "" {
		channel = model.ChannelEmail
	}

	n, err := s.repo.CreateNotification(ctx, model.Notification{
		UserID:           evt.PatientID,
		NotificationType: channel,
		Subject:          "Appointment reminder",
		Message:          fmt.Sprintf("Reminder: you have an appointment scheduled for %s.", evt.AppointmentDate),
		RecipientEmail:   evt.PatientEmail,
		AppointmentID:    evt.AppointmentID,
	})
	if err != nil {
		return fmt.Errorf("create reminder notification for appointment %d: %w", evt.AppointmentID, err)
	}

	s.finishDelivery(ctx, n)

	return nil
}

// CreateNotification persists a pending row and immediately attempts
// delivery. Used by the HTTP fallback surface.
func (s *Service) CreateNotification(ctx context.Context, n model.Notification) (model.Notification, error) {
	created, err := s.repo.CreateNotification(ctx, n)
	if err != nil {
		return model.Notification{}, fmt.Errorf("create notification: %w", err)
	}

	created.Status = s.finishDelivery(ctx, created)

	return created, nil
}

// GetNotificationStatusByID returns the notification status, cache-aside.
func (s *Service) GetNotificationStatusByID(ctx context.Context, id int64) (string, error) {
	key := strconv.FormatInt(id, 10)

	status, err := s.cache.GetWithRetry(ctx, s.strategy, key)
	if err == nil && status != "" {
		return status, nil
	}
	if err != nil && !errors.Is(err, redis.Nil) {
		zlog.Logger.Warn().Err(err).Int64("id", id).Msg("status cache unavailable, falling back to db")
	}

	status, err = s.repo.GetNotificationStatusByID(ctx, id)
	if err != nil {
		return "", fmt.Errorf("get notification status: %w", err)
	}

	if cacheErr := s.cache.SetWithRetry(ctx, s.strategy, key, status); cacheErr != nil {
		zlog.Logger.Printf("failed to cache notification %d: %v", id, cacheErr)
	}

	return status, nil
}

// GetNotificationsByUser lists a recipient's notifications.
func (s *Service) GetNotificationsByUser(ctx context.Context, userID string) ([]model.Notification, error) {
	notifications, err := s.repo.GetNotificationsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get notifications for user: %w", err)
	}

	return notifications, nil
}

// GetAllNotifications lists every notification, newest first.
func (s *Service) GetAllNotifications(ctx context.Context) ([]model.Notification, error) {
	notifications, err := s.repo.GetAllNotifications(ctx)
	if err != nil {
		return nil, fmt.Errorf("get all notifications: %w", err)
	}

	return notifications, nil
}

// finishDelivery attempts channel delivery for a persisted row and records
// the outcome in the ledger. Returns the resulting status. Ledger write
// failures are logged only: the row exists, a redelivery would duplicate it.
func (s *Service) finishDelivery(ctx context.Context, n model.Notification) string {
	if err := s.deliver(n); err != nil {
		zlog.Logger.Error().Err(err).Int64("id", n.ID).Str("channel", n.NotificationType).Msg("delivery failed")

		if repoErr := s.repo.MarkFailed(ctx, n.ID, err.Error()); repoErr != nil {
			zlog.Logger.Error().Err(repoErr).Int64("id", n.ID).Msg("failed to record delivery failure")
		}

		return n.Status
	}

	if err := s.repo.MarkSent(ctx, n.ID); err != nil {
		zlog.Logger.Error().Err(err).Int64("id", n.ID).Msg("failed to mark notification sent")
		return n.Status
	}

	key := strconv.FormatInt(n.ID, 10)
	if err := s.cache.SetWithRetry(ctx, s.strategy, key, model.StatusSent); err != nil {
		zlog.Logger.Printf("failed to cache notification %d: %v", n.ID, err)
	}

	return model.StatusSent
}

// deliver dispatches to the channel client. In-app and push notifications
// are delivered by persistence alone; the read-side API picks them up.
func (s *Service) deliver(n model.Notification) error {
	switch n.NotificationType {
	case model.ChannelInApp, model.ChannelPush:
		return nil
	case model.ChannelEmail:
		notifier, ok := s.notifiers[model.ChannelEmail]
		if !ok {
			return fmt.Errorf("unknown channel %q", n.NotificationType)
		}
		return notifier.Send(n.RecipientEmail, n.Subject, n.Message)
	case model.ChannelSMS:
		notifier, ok := s.notifiers[model.ChannelSMS]
		if !ok {
			return fmt.Errorf("unknown channel %q", n.NotificationType)
		}
		return notifier.Send(n.RecipientPhone, n.Subject, n.Message)
	default:
		return fmt.Errorf("unknown channel %q", n.NotificationType)
	}
}

// doctorName resolves the doctor display name, degrading to a placeholder
// on any lookup failure. The lookup is never allowed to block or fail
// notification creation.
func (s *Service) doctorName(ctx context.Context, doctorID int64) string {
	name, err := s.directory.GetName(ctx, doctorID)
	if err != nil {
		zlog.Logger.Warn().Err(err).Int64("doctor_id", doctorID).Msg("doctor lookup failed, using placeholder")
		return fmt.Sprintf("Doctor %d", doctorID)
	}

	return name
}

func formatWhen(date, clock string) string {
	if clock == "" {
		return date
	}

	return date + " at " + clock
}
