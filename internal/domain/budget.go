package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Budget is a monthly spending limit for one expense category.
// Month is always the first day of the month the budget covers.
// At most one budget exists per (user, category, month).
type Budget struct {
	ID           int32           `json:"id"`
	UserID       uuid.UUID       `json:"userId"`
	CategoryID   int32           `json:"categoryId"`
	CategoryName string          `json:"categoryName"`
	Amount       decimal.Decimal `json:"amount"`
	Month        time.Time       `json:"month"`
}

// BudgetRepository defines the read access the monitoring engine needs
type BudgetRepository interface {
	// GetByUserAndMonth returns the budgets whose stored month equals the
	// given first-of-month date.
	GetByUserAndMonth(userID uuid.UUID, monthStart time.Time) ([]*Budget, error)
}
