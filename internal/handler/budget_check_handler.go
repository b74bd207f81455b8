package handler

import (
	"net/http"

	"github.com/centsy/centsy-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// BudgetCheckHandler exposes the budget check run for manual triggering
type BudgetCheckHandler struct {
	budgetCheckService *service.BudgetCheckService
}

// NewBudgetCheckHandler creates a new BudgetCheckHandler
func NewBudgetCheckHandler(budgetCheckService *service.BudgetCheckService) *BudgetCheckHandler {
	return &BudgetCheckHandler{
		budgetCheckService: budgetCheckService,
	}
}

// Run handles POST /api/v1/admin/budget-check/run
func (h *BudgetCheckHandler) Run(c echo.Context) error {
	result, err := h.budgetCheckService.RunBudgetCheck(c.Request().Context())
	if err != nil {
		log.Error().Err(err).Msg("Manual budget check failed")
		return NewInternalError(c, "Budget check failed")
	}

	return c.JSON(http.StatusOK, result)
}
