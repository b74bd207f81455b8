package domain

import (
	"time"

	"github.com/google/uuid"
)

type NotificationKind string

const (
	NotificationKindBudgetThreshold NotificationKind = "budget_threshold"
)

// Notification is an alert stored for a user. The message string doubles as
// the per-user deduplication key: no two notifications for the same user may
// carry an identical message.
type Notification struct {
	ID        int32            `json:"id"`
	UserID    uuid.UUID        `json:"userId"`
	Message   string           `json:"message"`
	Kind      NotificationKind `json:"kind"`
	Read      bool             `json:"read"`
	CreatedAt time.Time        `json:"createdAt"`
}

// NotificationRepository defines notification persistence operations
type NotificationRepository interface {
	// Create stores the notification unless an identical message already
	// exists for the user. The insert-if-absent must be atomic; the returned
	// bool reports whether a row was actually inserted.
	Create(notification *Notification) (*Notification, bool, error)
	MessageExists(userID uuid.UUID, message string) (bool, error)
	GetAllByUser(userID uuid.UUID) ([]*Notification, error)
	// MarkRead flags the user's notification as read and returns the updated
	// row. Returns ErrNotificationNotFound when the notification does not
	// exist or belongs to another user.
	MarkRead(userID uuid.UUID, id int32) (*Notification, error)
}
