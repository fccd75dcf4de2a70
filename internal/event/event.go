// Package event defines the wire contract for appointment events exchanged
// between the appointment service and the notification service.
//
// The envelope shape and the set of event types are fixed; both publisher
// and consumer import this package so the contract is defined exactly once.
package event

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Type is the closed set of appointment event types.
type Type string

const (
	TypeAppointmentCreated   Type = "APPOINTMENT_CREATED"
	TypeAppointmentUpdated   Type = "APPOINTMENT_UPDATED"
	TypeAppointmentCancelled Type = "APPOINTMENT_CANCELLED"
	TypeAppointmentReminder  Type = "APPOINTMENT_REMINDER"
)

// SourceService is the producer name recorded in every envelope.
const SourceService = "appointment"

// SchemaVersion is the envelope schema version recorded in every envelope.
const SchemaVersion = "1.0"

var (
	// ErrMalformed is returned when the message body is not valid JSON.
	// Such messages can never become valid and must be dropped, not retried.
	ErrMalformed = errors.New("malformed event body")

	// ErrUnknownType is returned when the envelope decodes but carries an
	// event type outside the closed set. Unknown types are not errors for
	// the pipeline, just no-ops, so producers can evolve ahead of consumers.
	ErrUnknownType = errors.New("unknown event type")

	// ErrInvalid is returned when a known event type is missing required
	// identity fields. Retrying cannot fix it; the message is dropped.
	ErrInvalid = errors.New("invalid event payload")
)

// Envelope is the wire-level wrapper around event data.
type Envelope struct {
	EventType Type            `json:"event_type"`
	Data      json.RawMessage `json:"data"`
	Timestamp time.Time       `json:"timestamp"`
	Metadata  Metadata        `json:"metadata"`
}

// Metadata identifies the producer and the envelope schema version.
type Metadata struct {
	Service string `json:"service"`
	Version string `json:"version"`
}

// AppointmentCreated is the payload of an APPOINTMENT_CREATED event.
type AppointmentCreated struct {
	AppointmentID   int64  `json:"appointment_id"`
	PatientID       string `json:"patient_id"`
	PatientEmail    string `json:"patient_email,omitempty"`
	DoctorID        int64  `json:"doctor_id"`
	AppointmentDate string `json:"appointment_date"`
	AppointmentTime string `json:"appointment_time,omitempty"`
	Reason          string `json:"reason,omitempty"`
}

// AppointmentUpdated is the payload of an APPOINTMENT_UPDATED event.
type AppointmentUpdated struct {
	AppointmentID   int64             `json:"appointment_id"`
	PatientID       string            `json:"patient_id"`
	AppointmentDate string            `json:"appointment_date,omitempty"`
	Changes         map[string]string `json:"changes,omitempty"`
}

// AppointmentCancelled is the payload of an APPOINTMENT_CANCELLED event.
type AppointmentCancelled struct {
	AppointmentID int64  `json:"appointment_id"`
	PatientID     string `json:"patient_id"`
	Reason        string `json:"reason,omitempty"`
}

// AppointmentReminder is the payload of an APPOINTMENT_REMINDER event.
type AppointmentReminder struct {
	AppointmentID   int64  `json:"appointment_id"`
	PatientID       string `json:"patient_id"`
	PatientEmail    string `json:"patient_email,omitempty"`
	AppointmentDate string `json:"appointment_date"`
}

// NewEnvelope wraps a payload into an envelope stamped with the producer
// clock and metadata. The payload must marshal to a JSON object.
func NewEnvelope(t Type, payload any) (Envelope, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, fmt.Errorf("marshal event payload: %w", err)
	}

	return Envelope{
		EventType: t,
		Data:      data,
		Timestamp: time.Now().UTC(),
		Metadata: Metadata{
			Service: SourceService,
			Version: SchemaVersion,
		},
	}, nil
}

// DecodeEnvelope parses a raw message body into an envelope.
//
// A body that is not valid JSON yields ErrMalformed.
func DecodeEnvelope(body []byte) (Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return Envelope{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	return env, nil
}

// DecodePayload decodes the envelope data into the typed payload for its
// event type and validates required identity fields.
//
// It fails closed: an unknown event type yields ErrUnknownType and a known
// type missing its identity fields yields ErrInvalid.
func (e Envelope) DecodePayload() (any, error) {
	switch e.EventType {
	case TypeAppointmentCreated:
		var p AppointmentCreated
		if err := json.Unmarshal(e.Data, &p); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		if p.AppointmentID == 0 || p.PatientID == "" || p.DoctorID == 0 || p.AppointmentDate == "" {
			return nil, fmt.Errorf("%w: %s requires appointment_id, patient_id, doctor_id and appointment_date", ErrInvalid, e.EventType)
		}
		return p, nil

	case TypeAppointmentUpdated:
		var p AppointmentUpdated
		if err := json.Unmarshal(e.Data, &p); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		if p.AppointmentID == 0 || p.PatientID == "" {
			return nil, fmt.Errorf("%w: %s requires appointment_id and patient_id", ErrInvalid, e.EventType)
		}
		return p, nil

	case TypeAppointmentCancelled:
		var p AppointmentCancelled
		if err := json.Unmarshal(e.Data, &p); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		if p.AppointmentID == 0 || p.PatientID == "" {
			return nil, fmt.Errorf("%w: %s requires appointment_id and patient_id", ErrInvalid, e.EventType)
		}
		return p, nil

	case TypeAppointmentReminder:
		var p AppointmentReminder
		if err := json.Unmarshal(e.Data, &p); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		if p.AppointmentID == 0 || p.PatientID == "" || p.AppointmentDate == "" {
			return nil, fmt.Errorf("%w: %s requires appointment_id, patient_id and appointment_date", ErrInvalid, e.EventType)
		}
		return p, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, e.EventType)
	}
}
