// Package appointment handles appointment events consumed from the broker
// and maps processing outcomes onto acknowledgment verdicts.
package appointment

import (
	"context"
	"errors"

	"github.com/wb-go/wbf/zlog"

	"github.com/hduce/appointment-notify/internal/event"
	"github.com/hduce/appointment-notify/internal/rabbitmq"
)

type notificationService interface {
	ProcessAppointmentCreated(ctx context.Context, evt event.AppointmentCreated) error
	ProcessAppointmentUpdated(ctx context.Context, evt event.AppointmentUpdated) error
	ProcessAppointmentCancelled(ctx context.Context, evt event.AppointmentCancelled) error
	ProcessAppointmentReminder(ctx context.Context, evt event.AppointmentReminder) error
}

// Handler turns raw deliveries into notification service calls.
type Handler struct {
	service notificationService
}

// NewHandler creates a message handler over the notification service.
func NewHandler(service notificationService) *Handler {
	return &Handler{service: service}
}

// Handle decodes the envelope, dispatches by event type and returns the
// acknowledgment verdict:
//
//   - undecodable body: drop without requeue, retrying cannot fix parsing
//   - unknown event type: ack and warn, forward-compatible no-op
//   - missing identity fields: ack and log, the message can never become valid
//   - processing error: requeue so the broker redelivers
func (h *Handler) Handle(ctx context.Context, body []byte) rabbitmq.Action {
	env, err := event.DecodeEnvelope(body)
	if err != nil {
		zlog.Logger.Error().Err(err).Bytes("body", body).Msg("dropping undecodable message")
		return rabbitmq.ActionDrop
	}

	payload, err := env.DecodePayload()
	if err != nil {
		if errors.Is(err, event.ErrUnknownType) {
			zlog.Logger.Warn().Str("event_type", string(env.EventType)).Msg("ignoring unknown event type")
			return rabbitmq.ActionAck
		}

		// Missing identity fields or an undecodable payload for a known
		// type: log the offending payload for operator diagnosis and drop.
		zlog.Logger.Error().Err(err).
			Str("event_type", string(env.EventType)).
			Str("data", string(env.Data)).
			Msg("dropping invalid event")
		return rabbitmq.ActionAck
	}

	switch evt := payload.(type) {
	case event.AppointmentCreated:
		err = h.service.ProcessAppointmentCreated(ctx, evt)
	case event.AppointmentUpdated:
		err = h.service.ProcessAppointmentUpdated(ctx, evt)
	case event.AppointmentCancelled:
		err = h.service.ProcessAppointmentCancelled(ctx, evt)
	case event.AppointmentReminder:
		err = h.service.ProcessAppointmentReminder(ctx, evt)
	}

	if err != nil {
		zlog.Logger.Error().Err(err).
			Str("event_type", string(env.EventType)).
			Msg("failed to process event, requeueing")
		return rabbitmq.ActionRequeue
	}

	zlog.Logger.Info().Str("event_type", string(env.EventType)).Msg("event processed")

	return rabbitmq.ActionAck
}
