package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CategoryKind string

const (
	CategoryKindIncome  CategoryKind = "income"
	CategoryKindExpense CategoryKind = "expense"
)

// Transaction is a single dated amount booked against a category.
// The category name and kind are denormalized onto the record so the
// monitoring engine never has to resolve a category mid-computation.
type Transaction struct {
	ID              int32           `json:"id"`
	UserID          uuid.UUID       `json:"userId"`
	CategoryID      int32           `json:"categoryId"`
	CategoryName    string          `json:"categoryName"`
	CategoryKind    CategoryKind    `json:"categoryKind"`
	Amount          decimal.Decimal `json:"amount"`
	TransactionDate time.Time       `json:"transactionDate"`
	Note            *string         `json:"note,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// TransactionRepository defines the read access the monitoring engine needs
type TransactionRepository interface {
	// GetByUserAndDateRange returns a user's transactions with
	// transaction_date in [start, end], both inclusive.
	GetByUserAndDateRange(userID uuid.UUID, start, end time.Time) ([]*Transaction, error)
}
