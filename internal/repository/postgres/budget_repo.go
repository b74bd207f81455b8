package postgres

import (
	"context"
	"time"

	"github.com/centsy/centsy-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BudgetRepository implements domain.BudgetRepository using PostgreSQL
type BudgetRepository struct {
	pool *pgxpool.Pool
}

// NewBudgetRepository creates a new BudgetRepository
func NewBudgetRepository(pool *pgxpool.Pool) *BudgetRepository {
	return &BudgetRepository{pool: pool}
}

// GetByUserAndMonth returns the user's budgets stored for the given
// first-of-month date, with category names joined in
func (r *BudgetRepository) GetByUserAndMonth(userID uuid.UUID, monthStart time.Time) ([]*domain.Budget, error) {
	ctx := context.Background()

	rows, err := r.pool.Query(ctx, `
		SELECT b.id, b.user_id, b.category_id, c.name, b.amount, b.month
		FROM budgets b
		JOIN categories c ON c.id = b.category_id
		WHERE b.user_id = $1 AND b.month = $2
		ORDER BY c.name`,
		userID, monthStart,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var budgets []*domain.Budget
	for rows.Next() {
		var budget domain.Budget
		var amount pgtype.Numeric
		var month pgtype.Date

		if err := rows.Scan(&budget.ID, &budget.UserID, &budget.CategoryID, &budget.CategoryName, &amount, &month); err != nil {
			return nil, err
		}
		budget.Amount = pgNumericToDecimal(amount)
		budget.Month = month.Time
		budgets = append(budgets, &budget)
	}
	return budgets, rows.Err()
}
