package repository

import (
	"context"

	"github.com/Sarmadkhalid1/fithabs-backend/internal/models"
)

type NotificationRepository struct {
	db DBTX
}

func NewNotificationRepository(db DBTX) *NotificationRepository {
	return &NotificationRepository{db: db}
}

const notificationColumns = `id, user_id, title, message, type, data, is_read, read_at,
	scheduled_for, created_at, updated_at`

func scanNotification(row interface{ Scan(dest ...any) error }, n *models.Notification) error {
	return row.Scan(
		&n.ID,
		&n.UserID,
		&n.Title,
		&n.Message,
		&n.Type,
		&n.Data,
		&n.IsRead,
		&n.ReadAt,
		&n.ScheduledFor,
		&n.CreatedAt,
		&n.UpdatedAt,
	)
}

func (r *NotificationRepository) Create(ctx context.Context, n *models.Notification) error {
	query := `
		INSERT INTO notifications (user_id, title, message, type, data, scheduled_for)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, is_read, created_at, updated_at
	`
	return r.db.QueryRow(ctx, query, n.UserID, n.Title, n.Message, n.Type, n.Data, n.ScheduledFor).
		Scan(&n.ID, &n.IsRead, &n.CreatedAt, &n.UpdatedAt)
}

func (r *NotificationRepository) GetByID(ctx context.Context, id int64) (*models.Notification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications WHERE id = $1`
	var n models.Notification
	if err := scanNotification(r.db.QueryRow(ctx, query, id), &n); err != nil {
		return nil, err
	}
	return &n, nil
}

type NotificationListFilter struct {
	UnreadOnly bool
	Limit      int
	Offset     int
}

func (r *NotificationRepository) ListForUser(ctx context.Context, userID int64, filter NotificationListFilter) ([]models.Notification, int, error) {
	where := ` WHERE user_id = $1 AND (NOT $2 OR NOT is_read)`

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM notifications`+where,
		userID, filter.UnreadOnly,
	).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + notificationColumns + ` FROM notifications` + where + `
		ORDER BY id DESC
		LIMIT $3 OFFSET $4
	`
	rows, err := r.db.Query(ctx, query, userID, filter.UnreadOnly, filter.Limit, filter.Offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	notifications := make([]models.Notification, 0)
	for rows.Next() {
		var n models.Notification
		if err := scanNotification(rows, &n); err != nil {
			return nil, 0, err
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return notifications, total, nil
}

func (r *NotificationRepository) CountUnread(ctx context.Context, userID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND NOT is_read`, userID,
	).Scan(&count)
	return count, err
}

// MarkRead marks one notification; scoped by user so one user cannot
// read-mark another's.
func (r *NotificationRepository) MarkRead(ctx context.Context, id, userID int64) (*models.Notification, error) {
	query := `
		UPDATE notifications
		SET is_read = TRUE, read_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING ` + notificationColumns + `
	`
	var n models.Notification
	if err := scanNotification(r.db.QueryRow(ctx, query, id, userID), &n); err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID int64) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE notifications
		SET is_read = TRUE, read_at = NOW(), updated_at = NOW()
		WHERE user_id = $1 AND NOT is_read
	`, userID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *NotificationRepository) Delete(ctx context.Context, id, userID int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM notifications WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
