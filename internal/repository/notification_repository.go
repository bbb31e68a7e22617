package repository

import (
	"context"
	"database/sql"

	"github.com/harism06/museum-db/internal/model"
)

// NotificationRepo owns the notification table. Rows are created by the
// order event consumer and marked checked by their owner.
type NotificationRepo struct{ db *sql.DB }

func NewNotificationRepo(db *sql.DB) *NotificationRepo { return &NotificationRepo{db: db} }

// ListUnchecked returns a visitor's unread notifications, newest first.
func (r *NotificationRepo) ListUnchecked(ctx context.Context, visitorID uint64) ([]model.Notification, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT NotificationId, visitorID, NotificationText, NotificationTime, IsCheck
		 FROM notification
		 WHERE visitorID=? AND IsCheck=0
		 ORDER BY NotificationTime DESC`, visitorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Notification{}
	for rows.Next() {
		var n model.Notification
		if err := rows.Scan(&n.NotificationID, &n.VisitorID, &n.NotificationText, &n.NotificationTime, &n.IsCheck); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

// MarkChecked flips a notification's checked flag. The visitorID predicate
// stops one visitor from clearing another's messages.
func (r *NotificationRepo) MarkChecked(ctx context.Context, notificationID, visitorID uint64) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE notification SET IsCheck=1 WHERE NotificationId=? AND visitorID=?",
		notificationID, visitorID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Create inserts a notification for a visitor.
func (r *NotificationRepo) Create(ctx context.Context, visitorID uint64, text string) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO notification (visitorID, NotificationText, NotificationTime, IsCheck) VALUES (?,?,NOW(),0)",
		visitorID, text)
	return err
}
