package service

import (
	"github.com/centsy/centsy-backend/internal/domain"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// Aggregate computes period totals over transactions already scoped to one
// user and one inclusive date range. Income and expense sum separately by
// category kind; SpendByCategory collects expense amounts per category and
// omits categories with no spend. All arithmetic is decimal-exact.
func Aggregate(transactions []*domain.Transaction) *domain.AggregateResult {
	result := &domain.AggregateResult{
		TotalIncome:     decimal.Zero,
		TotalExpense:    decimal.Zero,
		SpendByCategory: make(map[int32]decimal.Decimal),
	}

	for _, tx := range transactions {
		switch tx.CategoryKind {
		case domain.CategoryKindIncome:
			result.TotalIncome = result.TotalIncome.Add(tx.Amount)
		case domain.CategoryKindExpense:
			result.TotalExpense = result.TotalExpense.Add(tx.Amount)
			spent, ok := result.SpendByCategory[tx.CategoryID]
			if !ok {
				spent = decimal.Zero
			}
			result.SpendByCategory[tx.CategoryID] = spent.Add(tx.Amount)
		}
	}

	result.NetBalance = result.TotalIncome.Sub(result.TotalExpense)
	return result
}

// EvaluateBudgets computes spend against limit for each budget. A budget with
// a zero amount is not actively tracked and is skipped, which also keeps the
// percentage division defined. The percentage is the spent/amount quotient
// rounded half-up to 4 fractional digits, then scaled to 100.
func EvaluateBudgets(budgets []*domain.Budget, spendByCategory map[int32]decimal.Decimal) []*domain.BudgetStatus {
	statuses := make([]*domain.BudgetStatus, 0, len(budgets))

	for _, budget := range budgets {
		if budget.Amount.IsZero() {
			continue
		}

		spent, ok := spendByCategory[budget.CategoryID]
		if !ok {
			spent = decimal.Zero
		}

		statuses = append(statuses, &domain.BudgetStatus{
			CategoryID:   budget.CategoryID,
			CategoryName: budget.CategoryName,
			Budgeted:     budget.Amount,
			Spent:        spent,
			Remaining:    budget.Amount.Sub(spent),
			Percentage:   spent.DivRound(budget.Amount, 4).Mul(oneHundred),
		})
	}

	return statuses
}
