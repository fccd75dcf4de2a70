package event

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEnvelope(t *testing.T) {
	env, err := NewEnvelope(TypeAppointmentCreated, AppointmentCreated{
		AppointmentID:   42,
		PatientID:       "p1",
		DoctorID:        7,
		AppointmentDate: "2026-02-01",
	})
	require.NoError(t, err)

	assert.Equal(t, TypeAppointmentCreated, env.EventType)
	assert.Equal(t, SourceService, env.Metadata.Service)
	assert.Equal(t, SchemaVersion, env.Metadata.Version)
	assert.False(t, env.Timestamp.IsZero())

	var data map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.EqualValues(t, 42, data["appointment_id"])
}

func TestDecodeEnvelope_Malformed(t *testing.T) {
	_, err := DecodeEnvelope([]byte("not json at all"))
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestDecodePayload_Created(t *testing.T) {
	body := []byte(`{
		"event_type": "APPOINTMENT_CREATED",
		"timestamp": "2026-02-01T10:00:00Z",
		"data": {
			"appointment_id": 42,
			"patient_id": "p1",
			"patient_email": "a@b.com",
			"doctor_id": 7,
			"appointment_date": "2026-02-01",
			"reason": "checkup"
		},
		"metadata": {"service": "appointment", "version": "1.0"}
	}`)

	env, err := DecodeEnvelope(body)
	require.NoError(t, err)

	payload, err := env.DecodePayload()
	require.NoError(t, err)

	created, ok := payload.(AppointmentCreated)
	require.True(t, ok)
	assert.Equal(t, int64(42), created.AppointmentID)
	assert.Equal(t, "p1", created.PatientID)
	assert.Equal(t, "a@b.com", created.PatientEmail)
	assert.Equal(t, int64(7), created.DoctorID)
	assert.Equal(t, "checkup", created.Reason)
}

func TestDecodePayload_MissingIdentityFields(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"no appointment_id", `{"patient_id": "p1", "doctor_id": 7, "appointment_date": "2026-02-01"}`},
		{"no patient_id", `{"appointment_id": 42, "doctor_id": 7, "appointment_date": "2026-02-01"}`},
		{"no doctor_id", `{"appointment_id": 42, "patient_id": "p1", "appointment_date": "2026-02-01"}`},
		{"no date", `{"appointment_id": 42, "patient_id": "p1", "doctor_id": 7}`},
		{"empty data", `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := Envelope{EventType: TypeAppointmentCreated, Data: json.RawMessage(tt.data)}

			_, err := env.DecodePayload()
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestDecodePayload_UnknownType(t *testing.T) {
	env := Envelope{EventType: "APPOINTMENT_EXPLODED", Data: json.RawMessage(`{}`)}

	_, err := env.DecodePayload()
	assert.ErrorIs(t, err, ErrUnknownType)
}

func TestDecodePayload_Reminder(t *testing.T) {
	env := Envelope{
		EventType: TypeAppointmentReminder,
		Data:      json.RawMessage(`{"appointment_id": 42, "patient_id": "p1", "appointment_date": "2026-02-01"}`),
	}

	payload, err := env.DecodePayload()
	require.NoError(t, err)

	reminder, ok := payload.(AppointmentReminder)
	require.True(t, ok)
	assert.Equal(t, int64(42), reminder.AppointmentID)
}

func TestDecodePayload_CancelledMissingPatient(t *testing.T) {
	env := Envelope{
		EventType: TypeAppointmentCancelled,
		Data:      json.RawMessage(`{"appointment_id": 42}`),
	}

	_, err := env.DecodePayload()
	assert.ErrorIs(t, err, ErrInvalid)
}
