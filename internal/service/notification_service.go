package service

import (
	"github.com/centsy/centsy-backend/internal/domain"
	"github.com/centsy/centsy-backend/internal/websocket"
	"github.com/google/uuid"
)

// NotificationService handles the user-facing notification surface
type NotificationService struct {
	notificationRepo domain.NotificationRepository
	publisher        websocket.EventPublisher
}

// NewNotificationService creates a new NotificationService. Pass a
// websocket.NoOpPublisher when push is disabled.
func NewNotificationService(notificationRepo domain.NotificationRepository, publisher websocket.EventPublisher) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		publisher:        publisher,
	}
}

// GetNotifications returns a user's notifications, newest first
func (s *NotificationService) GetNotifications(userID uuid.UUID) ([]*domain.Notification, error) {
	return s.notificationRepo.GetAllByUser(userID)
}

// MarkAsRead flags one of the user's notifications as read and pushes a
// notification.read event to the user's other connected clients. Returns
// domain.ErrNotificationNotFound when the notification does not exist or
// belongs to another user.
func (s *NotificationService) MarkAsRead(userID uuid.UUID, id int32) error {
	updated, err := s.notificationRepo.MarkRead(userID, id)
	if err != nil {
		return err
	}

	s.publisher.Publish(userID, websocket.NotificationRead(updated))
	return nil
}
