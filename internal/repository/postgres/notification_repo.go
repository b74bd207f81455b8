package postgres

import (
	"context"

	"github.com/centsy/centsy-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NotificationRepository implements domain.NotificationRepository using
// PostgreSQL. The unique index on (user_id, message) makes Create an atomic
// insert-if-absent, which is what keeps notification dedup race-safe.
type NotificationRepository struct {
	pool *pgxpool.Pool
}

// NewNotificationRepository creates a new NotificationRepository
func NewNotificationRepository(pool *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{pool: pool}
}

// Create stores the notification unless an identical message already exists
// for the user. Returns inserted=false when the row was suppressed by the
// uniqueness constraint.
func (r *NotificationRepository) Create(notification *domain.Notification) (*domain.Notification, bool, error) {
	ctx := context.Background()

	var created domain.Notification
	err := r.pool.QueryRow(ctx, `
		INSERT INTO notifications (user_id, message, kind)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, message) DO NOTHING
		RETURNING id, user_id, message, kind, read, created_at`,
		notification.UserID, notification.Message, string(notification.Kind),
	).Scan(&created.ID, &created.UserID, &created.Message, (*string)(&created.Kind), &created.Read, &created.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			// Conflict: the message is already stored for this user
			return nil, false, nil
		}
		return nil, false, err
	}
	return &created, true, nil
}

// MessageExists reports whether the exact message is already stored for the user
func (r *NotificationRepository) MessageExists(userID uuid.UUID, message string) (bool, error) {
	ctx := context.Background()

	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM notifications WHERE user_id = $1 AND message = $2)`,
		userID, message,
	).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// GetAllByUser returns the user's notifications, newest first
func (r *NotificationRepository) GetAllByUser(userID uuid.UUID) ([]*domain.Notification, error) {
	ctx := context.Background()

	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, message, kind, read, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []*domain.Notification
	for rows.Next() {
		var n domain.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Message, (*string)(&n.Kind), &n.Read, &n.CreatedAt); err != nil {
			return nil, err
		}
		notifications = append(notifications, &n)
	}
	return notifications, rows.Err()
}

// MarkRead flags the user's notification as read
func (r *NotificationRepository) MarkRead(userID uuid.UUID, id int32) (*domain.Notification, error) {
	ctx := context.Background()

	var updated domain.Notification
	err := r.pool.QueryRow(ctx, `
		UPDATE notifications SET read = TRUE
		WHERE id = $1 AND user_id = $2
		RETURNING id, user_id, message, kind, read, created_at`,
		id, userID,
	).Scan(&updated.ID, &updated.UserID, &updated.Message, (*string)(&updated.Kind), &updated.Read, &updated.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrNotificationNotFound
		}
		return nil, err
	}
	return &updated, nil
}
