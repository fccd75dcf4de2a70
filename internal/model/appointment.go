package model

import "time"

// Appointment is the appointment entity owned by the appointment service.
// The notification service never reads or writes this table; it only
// reacts to events derived from it.
type Appointment struct {
	ID              int64     `json:"id"`
	PatientID       string    `json:"patient_id"`
	PatientName     string    `json:"patient_name,omitempty"`
	PatientEmail    string    `json:"patient_email,omitempty"`
	DoctorID        int64     `json:"doctor_id"`
	AppointmentDate string    `json:"appointment_date"`
	AppointmentTime string    `json:"appointment_time,omitempty"`
	Reason          string    `json:"reason,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}
