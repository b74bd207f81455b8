package handler

import (
	"github.com/centsy/centsy-backend/internal/middleware"
	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(e *echo.Echo, rateLimiter *middleware.RateLimiter, dashboardHandler *DashboardHandler, notificationHandler *NotificationHandler, budgetCheckHandler *BudgetCheckHandler, wsHandler *WebSocketHandler) {
	// API version 1
	api := e.Group("/api/v1")
	api.Use(middleware.UserContext())
	api.Use(middleware.RateLimitMiddleware(rateLimiter))

	// Dashboard routes
	dashboard := api.Group("/dashboard")
	dashboard.GET("/summary", dashboardHandler.GetSummary)

	// Notification routes
	notifications := api.Group("/notifications")
	notifications.GET("", notificationHandler.List)
	notifications.POST("/:id/mark-as-read", notificationHandler.MarkAsRead)

	// Admin routes
	admin := api.Group("/admin")
	admin.POST("/budget-check/run", budgetCheckHandler.Run)

	// WebSocket endpoint (identity comes from the same gateway header)
	e.GET("/ws", wsHandler.HandleWS, middleware.UserContext())
}
