package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/wb-go/wbf/dbpg"

	"github.com/hduce/appointment-notify/internal/model"
)

var ErrAppointmentNotFound = errors.New("appointment not found")

// Repository provides methods to interact with the appointments table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new appointment repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// CreateAppointment inserts a new appointment and returns it with its
// assigned id.
func (r *Repository) CreateAppointment(ctx context.Context, a model.Appointment) (model.Appointment, error) {
	query := `
		INSERT INTO appointments (
		    patient_id, patient_name, patient_email, doctor_id,
		    appointment_date, appointment_time, reason
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at;
    `

	err := r.db.QueryRowContext(
		ctx, query,
		a.PatientID, a.PatientName, a.PatientEmail, a.DoctorID,
		a.AppointmentDate, a.AppointmentTime, a.Reason,
	).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return model.Appointment{}, fmt.Errorf("failed to create appointment: %w", err)
	}

	return a, nil
}

// GetAppointmentByID retrieves an appointment by its ID.
func (r *Repository) GetAppointmentByID(ctx context.Context, id int64) (model.Appointment, error) {
	query := `
		SELECT id, patient_id, patient_name, patient_email, doctor_id,
		       appointment_date, appointment_time, reason, created_at
		FROM appointments
		WHERE id = $1;
    `

	var a model.Appointment
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&a.ID, &a.PatientID, &a.PatientName, &a.PatientEmail, &a.DoctorID,
		&a.AppointmentDate, &a.AppointmentTime, &a.Reason, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Appointment{}, ErrAppointmentNotFound
		}

		return model.Appointment{}, fmt.Errorf("failed to get appointment: %w", err)
	}

	return a, nil
}
