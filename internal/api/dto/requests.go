package dto

// EmailRequest creates an email notification.
type EmailRequest struct {
	UserID         string `json:"user_id" validate:"required"`
	Subject        string `json:"subject"`
	Message        string `json:"message" validate:"required"`
	RecipientEmail string `json:"recipient_email" validate:"required,email"`
}

// SMSRequest creates an SMS notification.
type SMSRequest struct {
	UserID         string `json:"user_id" validate:"required"`
	Message        string `json:"message" validate:"required"`
	RecipientPhone string `json:"recipient_phone" validate:"required"`
}

// SendRequest creates a notification on an explicit channel.
type SendRequest struct {
	UserID           string `json:"user_id" validate:"required"`
	NotificationType string `json:"notification_type" validate:"required,oneof=email sms push in_app"`
	Subject          string `json:"subject"`
	Message          string `json:"message" validate:"required"`
	RecipientEmail   string `json:"recipient_email" validate:"omitempty,email"`
	RecipientPhone   string `json:"recipient_phone"`
	AppointmentID    int64  `json:"appointment_id"`
}

// ReminderRequest creates an appointment reminder notification.
type ReminderRequest struct {
	PatientID       string `json:"patient_id" validate:"required"`
	PatientEmail    string `json:"patient_email" validate:"required,email"`
	PatientPhone    string `json:"patient_phone"`
	DoctorName      string `json:"doctor_name"`
	AppointmentID   int64  `json:"appointment_id"`
	AppointmentDate string `json:"appointment_date" validate:"required"`
}

// CreateAppointmentRequest creates an appointment.
type CreateAppointmentRequest struct {
	PatientID       string `json:"patient_id" validate:"required"`
	PatientName     string `json:"patient_name"`
	PatientEmail    string `json:"patient_email" validate:"omitempty,email"`
	DoctorID        int64  `json:"doctor_id" validate:"required"`
	AppointmentDate string `json:"appointment_date" validate:"required"`
	AppointmentTime string `json:"appointment_time"`
	Reason          string `json:"reason"`
}
