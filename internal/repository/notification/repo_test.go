package notification

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/dbpg"

	"github.com/hduce/appointment-notify/internal/model"
)

func setupMockDB(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open mock db: %v", err)
	}

	wrappedDB := &dbpg.DB{Master: db}
	repo := NewRepository(wrappedDB)

	return repo, mock
}

func TestCreateNotification(t *testing.T) {
	repo, mock := setupMockDB(t)

	now := time.Now()
	n := model.Notification{
		UserID:           "p1",
		NotificationType: model.ChannelInApp,
		Subject:          "Appointment confirmed",
		Message:          "Your appointment has been scheduled",
		AppointmentID:    42,
	}

	mock.ExpectQuery(regexp.QuoteMeta(insertQuery)).
		WithArgs(n.UserID, n.NotificationType, model.StatusPending, n.Subject, n.Message,
			n.RecipientEmail, n.RecipientPhone, n.AppointmentID,
			0, model.DefaultMaxRetries, n.ScheduledAt).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(7), now))

	created, err := repo.CreateNotification(context.Background(), n)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), created.ID)
	assert.Equal(t, model.StatusPending, created.Status)
	assert.Equal(t, model.DefaultMaxRetries, created.MaxRetries)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateNotificationsTx(t *testing.T) {
	repo, mock := setupMockDB(t)

	now := time.Now()
	batch := []model.Notification{
		{UserID: "p1", NotificationType: model.ChannelInApp, Subject: "Appointment confirmed", Message: "m1", AppointmentID: 42},
		{UserID: "doctor:7", NotificationType: model.ChannelInApp, Subject: "New appointment assigned", Message: "m2", AppointmentID: 42},
	}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(insertQuery)).
		WithArgs(batch[0].UserID, batch[0].NotificationType, model.StatusPending, batch[0].Subject, batch[0].Message,
			"", "", int64(42), 0, model.DefaultMaxRetries, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(1), now))
	mock.ExpectQuery(regexp.QuoteMeta(insertQuery)).
		WithArgs(batch[1].UserID, batch[1].NotificationType, model.StatusPending, batch[1].Subject, batch[1].Message,
			"", "", int64(42), 0, model.DefaultMaxRetries, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(2), now))
	mock.ExpectCommit()

	created, err := repo.CreateNotificationsTx(context.Background(), batch)
	assert.NoError(t, err)
	assert.Len(t, created, 2)
	assert.Equal(t, int64(1), created[0].ID)
	assert.Equal(t, int64(2), created[1].ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

// A failed insert must roll the whole batch back so a redelivered message
// starts from a clean slate instead of inserting half the rows twice.
func TestCreateNotificationsTx_RollbackOnFailure(t *testing.T) {
	repo, mock := setupMockDB(t)

	now := time.Now()
	batch := []model.Notification{
		{UserID: "p1", NotificationType: model.ChannelInApp, Subject: "s1", Message: "m1", AppointmentID: 42},
		{UserID: "doctor:7", NotificationType: model.ChannelInApp, Subject: "s2", Message: "m2", AppointmentID: 42},
	}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(insertQuery)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(1), now))
	mock.ExpectQuery(regexp.QuoteMeta(insertQuery)).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	created, err := repo.CreateNotificationsTx(context.Background(), batch)
	assert.Error(t, err)
	assert.Nil(t, created)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkSent(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta(`
		UPDATE notifications
		SET status = 'sent', sent_at = NOW()
		WHERE id = $1;
    `)).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.MarkSent(context.Background(), 7)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())

	mock.ExpectExec(regexp.QuoteMeta(`
		UPDATE notifications
		SET status = 'sent', sent_at = NOW()
		WHERE id = $1;
    `)).
		WithArgs(int64(8)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.MarkSent(context.Background(), 8)
	assert.ErrorIs(t, err, ErrNotificationNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkFailed(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta(`
		UPDATE notifications
		SET retry_count = retry_count + 1,
		    last_error = $1,
		    status = CASE WHEN retry_count + 1 >= max_retries THEN 'failed' ELSE status END
		WHERE id = $2;
    `)).
		WithArgs("smtp timeout", int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.MarkFailed(context.Background(), 7, "smtp timeout")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())

	mock.ExpectExec(regexp.QuoteMeta(`
		UPDATE notifications
		SET retry_count = retry_count + 1,
		    last_error = $1,
		    status = CASE WHEN retry_count + 1 >= max_retries THEN 'failed' ELSE status END
		WHERE id = $2;
    `)).
		WithArgs("smtp timeout", int64(8)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.MarkFailed(context.Background(), 8, "smtp timeout")
	assert.ErrorIs(t, err, ErrNotificationNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetNotificationStatusByID(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT status
		FROM notifications
		WHERE id = $1;
    `)).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("pending"))

	status, err := repo.GetNotificationStatusByID(context.Background(), 7)
	assert.NoError(t, err)
	assert.Equal(t, "pending", status)
	assert.NoError(t, mock.ExpectationsWereMet())

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT status
		FROM notifications
		WHERE id = $1;
    `)).
		WithArgs(int64(8)).
		WillReturnError(sql.ErrNoRows)

	status, err = repo.GetNotificationStatusByID(context.Background(), 8)
	assert.ErrorIs(t, err, ErrNotificationNotFound)
	assert.Equal(t, "", status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetNotificationsByUser(t *testing.T) {
	repo, mock := setupMockDB(t)

	now := time.Now()
	columns := []string{
		"id", "user_id", "notification_type", "status", "subject", "message",
		"recipient_email", "recipient_phone", "appointment_id",
		"retry_count", "max_retries", "last_error",
		"created_at", "scheduled_at", "sent_at",
	}

	rows := sqlmock.NewRows(columns).
		AddRow(int64(2), "p1", "email", "sent", "Reminder", "m2", "a@b.com", "", int64(43), 0, 3, "", now, nil, now).
		AddRow(int64(1), "p1", "in_app", "pending", "Appointment confirmed", "m1", "", "", int64(42), 1, 3, "smtp timeout", now, nil, nil)

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT id, user_id, notification_type, status, subject, message,
		       recipient_email, recipient_phone, appointment_id,
		       retry_count, max_retries, COALESCE(last_error, ''),
		       created_at, scheduled_at, sent_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC;
    `)).
		WithArgs("p1").
		WillReturnRows(rows)

	list, err := repo.GetNotificationsByUser(context.Background(), "p1")
	assert.NoError(t, err)
	assert.Len(t, list, 2)
	assert.Equal(t, int64(2), list[0].ID)
	assert.Equal(t, "smtp timeout", list[1].LastError)
	assert.NoError(t, mock.ExpectationsWereMet())

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT id, user_id, notification_type, status, subject, message,
		       recipient_email, recipient_phone, appointment_id,
		       retry_count, max_retries, COALESCE(last_error, ''),
		       created_at, scheduled_at, sent_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC;
    `)).
		WithArgs("nobody").
		WillReturnRows(sqlmock.NewRows(columns))

	_, err = repo.GetNotificationsByUser(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrNoNotificationsFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
