package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/centsy/centsy-backend/internal/domain"
	"github.com/centsy/centsy-backend/internal/middleware"
	"github.com/centsy/centsy-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// NotificationHandler handles notification-related HTTP requests
type NotificationHandler struct {
	notificationService *service.NotificationService
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(notificationService *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
	}
}

// NotificationResponse represents a notification in API response
type NotificationResponse struct {
	ID        int32  `json:"id"`
	Message   string `json:"message"`
	Kind      string `json:"kind"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"createdAt"`
}

func toNotificationResponse(n *domain.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Message:   n.Message,
		Kind:      string(n.Kind),
		Read:      n.Read,
		CreatedAt: n.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// List handles GET /api/v1/notifications
func (h *NotificationHandler) List(c echo.Context) error {
	userID := middleware.GetUserID(c)

	notifications, err := h.notificationService.GetNotifications(userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to list notifications")
		return NewInternalError(c, "Failed to list notifications")
	}

	response := make([]NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		response = append(response, toNotificationResponse(n))
	}

	return c.JSON(http.StatusOK, response)
}

// MarkAsRead handles POST /api/v1/notifications/:id/mark-as-read
func (h *NotificationHandler) MarkAsRead(c echo.Context) error {
	userID := middleware.GetUserID(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 32)
	if err != nil {
		return NewValidationError(c, "Invalid notification ID", []ValidationError{{Field: "id", Message: "Must be a valid integer"}})
	}

	if err := h.notificationService.MarkAsRead(userID, int32(id)); err != nil {
		if errors.Is(err, domain.ErrNotificationNotFound) {
			return NewNotFoundError(c, "Notification not found")
		}
		log.Error().Err(err).Str("user_id", userID.String()).Int64("notification_id", id).Msg("Failed to mark notification as read")
		return NewInternalError(c, "Failed to mark notification as read")
	}

	return c.NoContent(http.StatusNoContent)
}
