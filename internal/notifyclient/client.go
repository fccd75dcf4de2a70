// Package notifyclient is an HTTP client for the notification service's
// REST surface. The appointment service uses it as the best-effort
// fallback delivery path when the broker publish fails.
package notifyclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client calls the notification service over HTTP. A single attempt per
// call, no retries: this is a degrade path, not a durable retry mechanism.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a client with a bounded timeout. The timeout is
// generous (~30s) because the callee performs downstream delivery work.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// SendRequest is the generic notification payload for POST /api/notify/send.
type SendRequest struct {
	UserID           string `json:"user_id"`
	NotificationType string `json:"notification_type"`
	Subject          string `json:"subject,omitempty"`
	Message          string `json:"message"`
	RecipientEmail   string `json:"recipient_email,omitempty"`
	RecipientPhone   string `json:"recipient_phone,omitempty"`
	AppointmentID    int64  `json:"appointment_id,omitempty"`
}

// EmailRequest is the payload for POST /api/notify/email.
type EmailRequest struct {
	UserID         string `json:"user_id"`
	Subject        string `json:"subject,omitempty"`
	Message        string `json:"message"`
	RecipientEmail string `json:"recipient_email"`
}

// SMSRequest is the payload for POST /api/notify/sms.
type SMSRequest struct {
	UserID         string `json:"user_id"`
	Message        string `json:"message"`
	RecipientPhone string `json:"recipient_phone"`
}

// ReminderRequest is the payload for POST /api/notify/appointment/reminder.
type ReminderRequest struct {
	PatientID       string `json:"patient_id"`
	PatientEmail    string `json:"patient_email"`
	PatientPhone    string `json:"patient_phone,omitempty"`
	DoctorName      string `json:"doctor_name,omitempty"`
	AppointmentID   int64  `json:"appointment_id,omitempty"`
	AppointmentDate string `json:"appointment_date"`
}

// Send posts a generic notification.
func (c *Client) Send(ctx context.Context, req SendRequest) error {
	return c.post(ctx, "/api/notify/send", req)
}

// SendEmail posts an email notification.
func (c *Client) SendEmail(ctx context.Context, req EmailRequest) error {
	return c.post(ctx, "/api/notify/email", req)
}

// SendSMS posts an SMS notification.
func (c *Client) SendSMS(ctx context.Context, req SMSRequest) error {
	return c.post(ctx, "/api/notify/sms", req)
}

// SendAppointmentReminder posts an appointment reminder.
func (c *Client) SendAppointmentReminder(ctx context.Context, req ReminderRequest) error {
	return c.post(ctx, "/api/notify/appointment/reminder", req)
}

func (c *Client) post(ctx context.Context, path string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("notification service error: %s", resp.Status)
	}

	return nil
}
