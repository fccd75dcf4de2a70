package appointment

import (
	"context"
	"fmt"

	"github.com/wb-go/wbf/zlog"

	"github.com/hduce/appointment-notify/internal/event"
	"github.com/hduce/appointment-notify/internal/model"
	"github.com/hduce/appointment-notify/internal/notifyclient"
)

type appointmentRepo interface {
	CreateAppointment(ctx context.Context, a model.Appointment) (model.Appointment, error)
	GetAppointmentByID(ctx context.Context, id int64) (model.Appointment, error)
}

type eventPublisher interface {
	Publish(ctx context.Context, t event.Type, payload any) error
}

type fallbackNotifier interface {
	Send(ctx context.Context, req notifyclient.SendRequest) error
}

// Service owns appointment writes and the event publishing that follows
// them. Notification delivery is fire and forget relative to the
// appointment write: no publisher or fallback failure ever surfaces to the
// caller of CreateAppointment.
type Service struct {
	repo      appointmentRepo
	publisher eventPublisher
	fallback  fallbackNotifier
}

// NewService creates an appointment service.
func NewService(repo appointmentRepo, publisher eventPublisher, fallback fallbackNotifier) *Service {
	return &Service{
		repo:      repo,
		publisher: publisher,
		fallback:  fallback,
	}
}

// CreateAppointment persists the appointment and emits the created event.
// The returned appointment and error reflect the database write only.
func (s *Service) CreateAppointment(ctx context.Context, a model.Appointment) (model.Appointment, error) {
	created, err := s.repo.CreateAppointment(ctx, a)
	if err != nil {
		return model.Appointment{}, fmt.Errorf("create appointment: %w", err)
	}

	s.notifyCreated(ctx, created)

	return created, nil
}

// GetAppointmentByID retrieves an appointment.
func (s *Service) GetAppointmentByID(ctx context.Context, id int64) (model.Appointment, error) {
	a, err := s.repo.GetAppointmentByID(ctx, id)
	if err != nil {
		return model.Appointment{}, fmt.Errorf("get appointment: %w", err)
	}

	return a, nil
}

// notifyCreated publishes the created event to the broker and degrades to
// the HTTP fallback when the publish fails. When both paths fail the loss
// is logged: a missed notification, never a missed appointment.
func (s *Service) notifyCreated(ctx context.Context, a model.Appointment) {
	payload := event.AppointmentCreated{
		AppointmentID:   a.ID,
		PatientID:       a.PatientID,
		PatientEmail:    a.PatientEmail,
		DoctorID:        a.DoctorID,
		AppointmentDate: a.AppointmentDate,
		AppointmentTime: a.AppointmentTime,
		Reason:          a.Reason,
	}

	err := s.publisher.Publish(ctx, event.TypeAppointmentCreated, payload)
	if err == nil {
		return
	}

	zlog.Logger.Warn().Err(err).Int64("appointment_id", a.ID).Msg("broker publish failed, using http fallback")

	reason := a.Reason
	if reason == "" {
		reason = "medical consultation"
	}

	fallbackErr := s.fallback.Send(ctx, notifyclient.SendRequest{
		UserID:           a.PatientID,
		NotificationType: model.ChannelInApp,
		Subject:          "Appointment confirmed",
		Message:          fmt.Sprintf("Your appointment has been scheduled for %s. Reason: %s", when(a), reason),
		RecipientEmail:   a.PatientEmail,
		AppointmentID:    a.ID,
	})
	if fallbackErr != nil {
		zlog.Logger.Error().Err(fallbackErr).Int64("appointment_id", a.ID).Msg("http fallback failed, notification lost")
	}
}

func when(a model.Appointment) string {
	if a.AppointmentTime == "" {
		return a.AppointmentDate
	}

	return a.AppointmentDate + " at " + a.AppointmentTime
}
