package model

import "time"

// Notification channel types. Not the same enumeration as broker event
// types: this is the delivery channel a notification row targets.
const (
	ChannelEmail = "email"
	ChannelSMS   = "sms"
	ChannelPush  = "push"
	ChannelInApp = "in_app"
)

// Notification lifecycle statuses. Failed and read are terminal.
const (
	StatusPending   = "pending"
	StatusSent      = "sent"
	StatusFailed    = "failed"
	StatusDelivered = "delivered"
	StatusRead      = "read"
)

// DefaultMaxRetries bounds the delivery retry accounting per notification.
const DefaultMaxRetries = 3

// Notification is the persisted notification entity owned by the
// notification service. AppointmentID is a loose back-reference to the
// originating appointment; no foreign key crosses the service boundary.
type Notification struct {
	ID               int64      `json:"id"`
	UserID           string     `json:"user_id"`
	NotificationType string     `json:"notification_type"`
	Status           string     `json:"status"`
	Subject          string     `json:"subject,omitempty"`
	Message          string     `json:"message"`
	RecipientEmail   string     `json:"recipient_email,omitempty"`
	RecipientPhone   string     `json:"recipient_phone,omitempty"`
	AppointmentID    int64      `json:"appointment_id,omitempty"`
	RetryCount       int        `json:"retry_count"`
	MaxRetries       int        `json:"max_retries"`
	LastError        string     `json:"last_error,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	ScheduledAt      *time.Time `json:"scheduled_at,omitempty"`
	SentAt           *time.Time `json:"sent_at,omitempty"`
}
