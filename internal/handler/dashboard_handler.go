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

// DashboardHandler handles dashboard-related HTTP requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// CategorySpendingResponse represents one category's spending in API response
type CategorySpendingResponse struct {
	CategoryID   int32  `json:"categoryId"`
	CategoryName string `json:"categoryName"`
	Total        string `json:"total"`
}

// BudgetStatusResponse represents one evaluated budget in API response
type BudgetStatusResponse struct {
	CategoryID   int32  `json:"categoryId"`
	CategoryName string `json:"categoryName"`
	Budgeted     string `json:"budgeted"`
	Spent        string `json:"spent"`
	Remaining    string `json:"remaining"`
	Percentage   string `json:"percentage"`
}

// DashboardSummaryResponse represents the dashboard summary API response
type DashboardSummaryResponse struct {
	TotalIncome        string                     `json:"totalIncome"`
	TotalExpense       string                     `json:"totalExpense"`
	NetBalance         string                     `json:"netBalance"`
	SpendingByCategory []CategorySpendingResponse `json:"spendingByCategory"`
	BudgetStatus       []BudgetStatusResponse     `json:"budgetStatus"`
}

// GetSummary handles GET /api/v1/dashboard/summary
// Accepts optional year and month query params for historical navigation
func (h *DashboardHandler) GetSummary(c echo.Context) error {
	userID := middleware.GetUserID(c)

	// Parse optional year/month params (default to current)
	now := time.Now()
	year := now.Year()
	month := int(now.Month())

	if yearStr := c.QueryParam("year"); yearStr != "" {
		parsedYear, err := strconv.Atoi(yearStr)
		if err != nil {
			return NewValidationError(c, "Invalid year format", []ValidationError{{Field: "year", Message: "Must be a valid integer"}})
		}
		if parsedYear < 2000 || parsedYear > 2100 {
			return NewValidationError(c, "Year must be between 2000 and 2100", []ValidationError{{Field: "year", Message: "Must be between 2000 and 2100"}})
		}
		year = parsedYear
	}
	if monthStr := c.QueryParam("month"); monthStr != "" {
		parsedMonth, err := strconv.Atoi(monthStr)
		if err != nil {
			return NewValidationError(c, "Invalid month format", []ValidationError{{Field: "month", Message: "Must be a valid integer"}})
		}
		if parsedMonth < 1 || parsedMonth > 12 {
			return NewValidationError(c, "Month must be between 1 and 12", []ValidationError{{Field: "month", Message: "Must be between 1 and 12"}})
		}
		month = parsedMonth
	}

	summary, err := h.dashboardService.GetSummaryForMonth(userID, year, month)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return NewNotFoundError(c, "User not found")
		}
		log.Error().Err(err).Str("user_id", userID.String()).Int("year", year).Int("month", month).Msg("Failed to get dashboard summary")
		return NewInternalError(c, "Failed to get dashboard summary")
	}

	spending := make([]CategorySpendingResponse, 0, len(summary.SpendingByCategory))
	for _, s := range summary.SpendingByCategory {
		spending = append(spending, CategorySpendingResponse{
			CategoryID:   s.CategoryID,
			CategoryName: s.CategoryName,
			Total:        s.Total.StringFixed(2),
		})
	}

	statuses := make([]BudgetStatusResponse, 0, len(summary.BudgetStatus))
	for _, s := range summary.BudgetStatus {
		statuses = append(statuses, BudgetStatusResponse{
			CategoryID:   s.CategoryID,
			CategoryName: s.CategoryName,
			Budgeted:     s.Budgeted.StringFixed(2),
			Spent:        s.Spent.StringFixed(2),
			Remaining:    s.Remaining.StringFixed(2),
			Percentage:   s.Percentage.StringFixed(2),
		})
	}

	return c.JSON(http.StatusOK, DashboardSummaryResponse{
		TotalIncome:        summary.TotalIncome.StringFixed(2),
		TotalExpense:       summary.TotalExpense.StringFixed(2),
		NetBalance:         summary.NetBalance.StringFixed(2),
		SpendingByCategory: spending,
		BudgetStatus:       statuses,
	})
}
