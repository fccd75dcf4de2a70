package notification

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/wb-go/wbf/dbpg"

	"github.com/hduce/appointment-notify/internal/model"
)

var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrNoNotificationsFound = errors.New("no notifications found")
)

// Repository provides methods to interact with the notifications table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new notification repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

const insertQuery = `
		INSERT INTO notifications (
		    user_id, notification_type, status, subject, message,
		    recipient_email, recipient_phone, appointment_id,
		    retry_count, max_retries, scheduled_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at;
    `

// CreateNotification inserts a single notification row and returns it with
// its assigned id. This is the only path that sets status=pending and
// retry_count=0.
func (r *Repository) CreateNotification(ctx context.Context, n model.Notification) (model.Notification, error) {
	n.Status = model.StatusPending
	n.RetryCount = 0
	if n.MaxRetries == 0 {
		n.MaxRetries = model.DefaultMaxRetries
	}

	err := r.db.QueryRowContext(
		ctx, insertQuery,
		n.UserID, n.NotificationType, n.Status, n.Subject, n.Message,
		n.RecipientEmail, n.RecipientPhone, n.AppointmentID,
		n.RetryCount, n.MaxRetries, n.ScheduledAt,
	).Scan(&n.ID, &n.CreatedAt)
	if err != nil {
		return model.Notification{}, fmt.Errorf("failed to create notification: %w", err)
	}

	return n, nil
}

// CreateNotificationsTx inserts all given notifications in one local
// transaction. Either every row is written or none is: on any error the
// transaction rolls back so a requeued message starts from a clean slate.
func (r *Repository) CreateNotificationsTx(ctx context.Context, notifications []model.Notification) ([]model.Notification, error) {
	tx, err := r.db.Master.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	created := make([]model.Notification, 0, len(notifications))

	for _, n := range notifications {
		n.Status = model.StatusPending
		n.RetryCount = 0
		if n.MaxRetries == 0 {
			n.MaxRetries = model.DefaultMaxRetries
		}

		err := tx.QueryRowContext(
			ctx, insertQuery,
			n.UserID, n.NotificationType, n.Status, n.Subject, n.Message,
			n.RecipientEmail, n.RecipientPhone, n.AppointmentID,
			n.RetryCount, n.MaxRetries, n.ScheduledAt,
		).Scan(&n.ID, &n.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to create notification: %w", err)
		}

		created = append(created, n)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return created, nil
}

// MarkSent sets status=sent and stamps sent_at.
func (r *Repository) MarkSent(ctx context.Context, id int64) error {
	query := `
		UPDATE notifications
		SET status = 'sent', sent_at = NOW()
		WHERE id = $1;
    `

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to mark notification sent: %w", err)
	}

	rows, _ := res.RowsAffected()
	if rows == 0 {
		return ErrNotificationNotFound
	}

	return nil
}

// MarkFailed increments retry_count and records the delivery error. Once
// retry_count reaches max_retries the row flips to the terminal failed
// status; until then it stays pending for a future retry pass.
func (r *Repository) MarkFailed(ctx context.Context, id int64, deliveryErr string) error {
	query := `
		UPDATE notifications
		SET retry_count = retry_count + 1,
		    last_error = $1,
		    status = CASE WHEN retry_count + 1 >= max_retries THEN 'failed' ELSE status END
		WHERE id = $2;
    `

	res, err := r.db.ExecContext(ctx, query, deliveryErr, id)
	if err != nil {
		return fmt.Errorf("failed to mark notification failed: %w", err)
	}

	rows, _ := res.RowsAffected()
	if rows == 0 {
		return ErrNotificationNotFound
	}

	return nil
}

// GetNotificationStatusByID retrieves the status of a notification by its ID.
func (r *Repository) GetNotificationStatusByID(ctx context.Context, id int64) (string, error) {
	query := `
		SELECT status
		FROM notifications
		WHERE id = $1;
    `

	var status string
	err := r.db.QueryRowContext(ctx, query, id).Scan(&status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotificationNotFound
		}

		return "", fmt.Errorf("failed to get notification status: %w", err)
	}

	return status, nil
}

// GetNotificationsByUser retrieves all notifications for a recipient,
// newest first.
func (r *Repository) GetNotificationsByUser(ctx context.Context, userID string) ([]model.Notification, error) {
	query := `
		SELECT id, user_id, notification_type, status, subject, message,
		       recipient_email, recipient_phone, appointment_id,
		       retry_count, max_retries, COALESCE(last_error, ''),
		       created_at, scheduled_at, sent_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC;
    `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get notifications for user: %w", err)
	}
	defer rows.Close()

	return scanNotifications(rows)
}

// GetAllNotifications retrieves all notifications ordered by creation time
// descending.
func (r *Repository) GetAllNotifications(ctx context.Context) ([]model.Notification, error) {
	query := `
		SELECT id, user_id, notification_type, status, subject, message,
		       recipient_email, recipient_phone, appointment_id,
		       retry_count, max_retries, COALESCE(last_error, ''),
		       created_at, scheduled_at, sent_at
		FROM notifications
		ORDER BY created_at DESC;
    `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get all notifications: %w", err)
	}
	defer rows.Close()

	return scanNotifications(rows)
}

func scanNotifications(rows *sql.Rows) ([]model.Notification, error) {
	var notifications []model.Notification

	for rows.Next() {
		var n model.Notification
		if err := rows.Scan(
			&n.ID, &n.UserID, &n.NotificationType, &n.Status, &n.Subject, &n.Message,
			&n.RecipientEmail, &n.RecipientPhone, &n.AppointmentID,
			&n.RetryCount, &n.MaxRetries, &n.LastError,
			&n.CreatedAt, &n.ScheduledAt, &n.SentAt,
		); err != nil {
			return nil, err
		}

		notifications = append(notifications, n)
	}

	if len(notifications) == 0 {
		return nil, ErrNoNotificationsFound
	}

	return notifications, nil
}
