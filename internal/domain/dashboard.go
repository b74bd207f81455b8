package domain

import "github.com/shopspring/decimal"

// AggregateResult holds per-period sums over one user's transactions.
// SpendByCategory only contains categories with at least one expense;
// categories with no spend are absent rather than zero-valued.
type AggregateResult struct {
	TotalIncome     decimal.Decimal
	TotalExpense    decimal.Decimal
	NetBalance      decimal.Decimal
	SpendByCategory map[int32]decimal.Decimal
}

// BudgetStatus is an evaluated budget: spend against limit for one period.
// Remaining is negative when the budget is exceeded.
type BudgetStatus struct {
	CategoryID   int32
	CategoryName string
	Budgeted     decimal.Decimal
	Spent        decimal.Decimal
	Remaining    decimal.Decimal
	Percentage   decimal.Decimal
}

// CategorySpending is the summed expense for one category in a period
type CategorySpending struct {
	CategoryID   int32
	CategoryName string
	Total        decimal.Decimal
}

// DashboardSummary combines period totals, per-category spending and budget
// statuses for one user and month
type DashboardSummary struct {
	TotalIncome        decimal.Decimal
	TotalExpense       decimal.Decimal
	NetBalance         decimal.Decimal
	SpendingByCategory []CategorySpending
	BudgetStatus       []*BudgetStatus
}
