package service

import (
	"sort"
	"time"

	"github.com/centsy/centsy-backend/internal/domain"
	"github.com/centsy/centsy-backend/internal/util"
	"github.com/google/uuid"
)

// DashboardService composes the monthly dashboard summary. It reuses the same
// aggregation and budget evaluation the budget check runs on, without any
// notification side effects.
type DashboardService struct {
	userRepo        domain.UserRepository
	budgetRepo      domain.BudgetRepository
	transactionRepo domain.TransactionRepository
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(
	userRepo domain.UserRepository,
	budgetRepo domain.BudgetRepository,
	transactionRepo domain.TransactionRepository,
) *DashboardService {
	return &DashboardService{
		userRepo:        userRepo,
		budgetRepo:      budgetRepo,
		transactionRepo: transactionRepo,
	}
}

// GetSummary returns the dashboard summary for the current month
func (s *DashboardService) GetSummary(userID uuid.UUID) (*domain.DashboardSummary, error) {
	now := time.Now()
	return s.GetSummaryForMonth(userID, now.Year(), int(now.Month()))
}

// GetSummaryForMonth returns the dashboard summary for a specific month.
// Returns domain.ErrUserNotFound for an unknown user. Categories with expense
// but no budget appear only in SpendingByCategory; budgets with no spend are
// listed with Spent zero.
func (s *DashboardService) GetSummaryForMonth(userID uuid.UUID, year, month int) (*domain.DashboardSummary, error) {
	if _, err := s.userRepo.GetByID(userID); err != nil {
		return nil, err
	}

	startDate, endDate := util.MonthWindow(year, month)

	transactions, err := s.transactionRepo.GetByUserAndDateRange(userID, startDate, endDate)
	if err != nil {
		return nil, err
	}

	budgets, err := s.budgetRepo.GetByUserAndMonth(userID, startDate)
	if err != nil {
		return nil, err
	}

	aggregate := Aggregate(transactions)

	// Category names for the spending list come off the transaction records
	categoryNames := make(map[int32]string)
	for _, tx := range transactions {
		if tx.CategoryKind == domain.CategoryKindExpense {
			categoryNames[tx.CategoryID] = tx.CategoryName
		}
	}

	spending := make([]domain.CategorySpending, 0, len(aggregate.SpendByCategory))
	for categoryID, total := range aggregate.SpendByCategory {
		spending = append(spending, domain.CategorySpending{
			CategoryID:   categoryID,
			CategoryName: categoryNames[categoryID],
			Total:        total,
		})
	}
	sort.Slice(spending, func(i, j int) bool {
		return spending[i].CategoryName < spending[j].CategoryName
	})

	return &domain.DashboardSummary{
		TotalIncome:        aggregate.TotalIncome,
		TotalExpense:       aggregate.TotalExpense,
		NetBalance:         aggregate.NetBalance,
		SpendingByCategory: spending,
		BudgetStatus:       EvaluateBudgets(budgets, aggregate.SpendByCategory),
	}, nil
}
