package service

import (
	"testing"
	"time"

	"github.com/centsy/centsy-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expenseTx(userID uuid.UUID, categoryID int32, name, amount string) *domain.Transaction {
	return &domain.Transaction{
		UserID:          userID,
		CategoryID:      categoryID,
		CategoryName:    name,
		CategoryKind:    domain.CategoryKindExpense,
		Amount:          decimal.RequireFromString(amount),
		TransactionDate: time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC),
	}
}

func incomeTx(userID uuid.UUID, categoryID int32, name, amount string) *domain.Transaction {
	tx := expenseTx(userID, categoryID, name, amount)
	tx.CategoryKind = domain.CategoryKindIncome
	return tx
}

func TestAggregate_Empty(t *testing.T) {
	result := Aggregate(nil)

	assert.True(t, result.TotalIncome.IsZero())
	assert.True(t, result.TotalExpense.IsZero())
	assert.True(t, result.NetBalance.IsZero())
	assert.Empty(t, result.SpendByCategory)
}

func TestAggregate_SplitsByCategoryKind(t *testing.T) {
	userID := uuid.New()
	result := Aggregate([]*domain.Transaction{
		incomeTx(userID, 1, "Salary", "1000.00"),
		expenseTx(userID, 2, "Groceries", "300.00"),
		expenseTx(userID, 3, "Transport", "100.00"),
	})

	assert.Equal(t, "1000", result.TotalIncome.String())
	assert.Equal(t, "400", result.TotalExpense.String())
	assert.Equal(t, "600", result.NetBalance.String())
	require.Len(t, result.SpendByCategory, 2)
	assert.Equal(t, "300", result.SpendByCategory[2].String())
	assert.Equal(t, "100", result.SpendByCategory[3].String())
}

func TestAggregate_SumsMultipleTransactionsPerCategory(t *testing.T) {
	userID := uuid.New()
	result := Aggregate([]*domain.Transaction{
		expenseTx(userID, 2, "Groceries", "10.10"),
		expenseTx(userID, 2, "Groceries", "20.20"),
		expenseTx(userID, 2, "Groceries", "0.01"),
	})

	assert.Equal(t, "30.31", result.SpendByCategory[2].String())
	assert.Equal(t, "30.31", result.TotalExpense.String())
}

func TestAggregate_NetBalanceIdentity(t *testing.T) {
	// netBalance must always equal income - expense exactly
	userID := uuid.New()
	amounts := []string{"0.01", "999999.99", "123.45", "0.10", "33.33"}

	var txs []*domain.Transaction
	for i, a := range amounts {
		if i%2 == 0 {
			txs = append(txs, incomeTx(userID, 1, "Income", a))
		} else {
			txs = append(txs, expenseTx(userID, 2, "Expense", a))
		}
	}

	result := Aggregate(txs)
	assert.True(t, result.TotalIncome.Sub(result.TotalExpense).Equal(result.NetBalance))
}

func TestAggregate_IncomeDoesNotContributeToSpend(t *testing.T) {
	userID := uuid.New()
	result := Aggregate([]*domain.Transaction{
		incomeTx(userID, 1, "Salary", "500.00"),
	})

	assert.Empty(t, result.SpendByCategory)
	assert.Equal(t, "500", result.TotalIncome.String())
}

func budget(userID uuid.UUID, categoryID int32, name, amount string) *domain.Budget {
	return &domain.Budget{
		UserID:       userID,
		CategoryID:   categoryID,
		CategoryName: name,
		Amount:       decimal.RequireFromString(amount),
		Month:        time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestEvaluateBudgets_SpentAndRemaining(t *testing.T) {
	userID := uuid.New()
	spend := map[int32]decimal.Decimal{
		2: decimal.RequireFromString("75.00"),
	}

	statuses := EvaluateBudgets([]*domain.Budget{budget(userID, 2, "Groceries", "100.00")}, spend)

	require.Len(t, statuses, 1)
	assert.Equal(t, "75", statuses[0].Spent.String())
	assert.Equal(t, "25", statuses[0].Remaining.String())
	assert.Equal(t, "75", statuses[0].Percentage.String())
}

func TestEvaluateBudgets_MissingSpendDefaultsToZero(t *testing.T) {
	userID := uuid.New()
	statuses := EvaluateBudgets([]*domain.Budget{budget(userID, 2, "Groceries", "100.00")}, nil)

	require.Len(t, statuses, 1)
	assert.True(t, statuses[0].Spent.IsZero())
	assert.Equal(t, "100", statuses[0].Remaining.String())
	assert.True(t, statuses[0].Percentage.IsZero())
}

func TestEvaluateBudgets_OverBudgetIsNegativeRemaining(t *testing.T) {
	userID := uuid.New()
	spend := map[int32]decimal.Decimal{
		2: decimal.RequireFromString("130.00"),
	}

	statuses := EvaluateBudgets([]*domain.Budget{budget(userID, 2, "Groceries", "100.00")}, spend)

	require.Len(t, statuses, 1)
	assert.Equal(t, "-30", statuses[0].Remaining.String())
	assert.Equal(t, "130", statuses[0].Percentage.String())
}

func TestEvaluateBudgets_ZeroAmountBudgetSkipped(t *testing.T) {
	userID := uuid.New()
	spend := map[int32]decimal.Decimal{
		2: decimal.RequireFromString("50.00"),
	}

	statuses := EvaluateBudgets([]*domain.Budget{
		budget(userID, 2, "Groceries", "0.00"),
		budget(userID, 3, "Transport", "100.00"),
	}, spend)

	require.Len(t, statuses, 1)
	assert.Equal(t, int32(3), statuses[0].CategoryID)
}

func TestEvaluateBudgets_PercentageRounding(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name     string
		budgeted string
		spent    string
		want     string
	}{
		{"exact threshold", "100.00", "75.00", "75"},
		{"just under limit", "200.00", "190.00", "95"},
		{"repeating decimal rounds half-up at 4 digits", "3.00", "1.00", "33.33"},
		{"two thirds", "3.00", "2.00", "66.67"},
		{"exact quotient needs no rounding", "16.00", "1.00", "6.25"},
		{"tie rounds half-up", "10.00", "1.2345", "12.35"},
		{"tiny fraction", "10000.00", "0.01", "0.01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			statuses := EvaluateBudgets(
				[]*domain.Budget{budget(userID, 1, "Cat", tt.budgeted)},
				map[int32]decimal.Decimal{1: decimal.RequireFromString(tt.spent)},
			)
			require.Len(t, statuses, 1)
			assert.Equal(t, tt.want, statuses[0].Percentage.String())
		})
	}
}
