package postgres

import (
	"context"
	"time"

	"github.com/centsy/centsy-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TransactionRepository implements domain.TransactionRepository using PostgreSQL
type TransactionRepository struct {
	pool *pgxpool.Pool
}

// NewTransactionRepository creates a new TransactionRepository
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{pool: pool}
}

// GetByUserAndDateRange returns the user's transactions with
// transaction_date in [start, end] inclusive, fully populated with their
// category name and kind
func (r *TransactionRepository) GetByUserAndDateRange(userID uuid.UUID, start, end time.Time) ([]*domain.Transaction, error) {
	ctx := context.Background()

	rows, err := r.pool.Query(ctx, `
		SELECT t.id, t.user_id, t.category_id, c.name, c.kind,
		       t.amount, t.transaction_date, t.note, t.created_at
		FROM transactions t
		JOIN categories c ON c.id = t.category_id
		WHERE t.user_id = $1 AND t.transaction_date BETWEEN $2 AND $3
		ORDER BY t.transaction_date, t.id`,
		userID, start, end,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []*domain.Transaction
	for rows.Next() {
		var tx domain.Transaction
		var kind string
		var amount pgtype.Numeric
		var transactionDate pgtype.Date
		var note pgtype.Text

		if err := rows.Scan(&tx.ID, &tx.UserID, &tx.CategoryID, &tx.CategoryName, &kind,
			&amount, &transactionDate, &note, &tx.CreatedAt); err != nil {
			return nil, err
		}

		tx.CategoryKind = domain.CategoryKind(kind)
		tx.Amount = pgNumericToDecimal(amount)
		tx.TransactionDate = transactionDate.Time
		if note.Valid {
			tx.Note = &note.String
		}
		transactions = append(transactions, &tx)
	}
	return transactions, rows.Err()
}
