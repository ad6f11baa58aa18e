package infrastructure

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sebuszqo/BudgetTracker/internal/finance/domain"
)

const transactionColumns = `id, user_id, type, amount, category, description, date`

type TransactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Save(ctx context.Context, transaction *domain.Transaction) error {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO transactions (user_id, type, amount, category, description, date)
        VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		transaction.UserID, transaction.Type, transaction.Amount, transaction.Category,
		nullableString(transaction.Description), domain.FormatDate(transaction.Date),
	).Scan(&transaction.ID)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

func (r *TransactionRepository) FindByUser(ctx context.Context, userID string) ([]domain.Transaction, error) {
	return r.query(ctx,
		`SELECT `+transactionColumns+` FROM transactions WHERE user_id = $1 ORDER BY date DESC, id ASC`,
		userID)
}

func (r *TransactionRepository) FindInDateRange(ctx context.Context, userID string, from, to time.Time) ([]domain.Transaction, error) {
	// ISO dates compare as strings in calendar order.
	return r.query(ctx,
		`SELECT `+transactionColumns+` FROM transactions
        WHERE user_id = $1 AND date >= $2 AND date <= $3
        ORDER BY date DESC, id ASC`,
		userID, domain.FormatDate(from), domain.FormatDate(to))
}

func (r *TransactionRepository) Delete(ctx context.Context, transactionID int64, userID string) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = $1 AND user_id = $2`, transactionID, userID)
	if err != nil {
		return 0, fmt.Errorf("delete transaction: %w", err)
	}
	return result.RowsAffected()
}

func (r *TransactionRepository) CountByUser(ctx context.Context, userID string) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM transactions WHERE user_id = $1`, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count transactions: %w", err)
	}
	return count, nil
}

func (r *TransactionRepository) query(ctx context.Context, query string, args ...any) ([]domain.Transaction, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	transactions := []domain.Transaction{}
	for rows.Next() {
		var (
			transaction domain.Transaction
			description sql.NullString
			date        string
		)
		if err := rows.Scan(&transaction.ID, &transaction.UserID, &transaction.Type, &transaction.Amount,
			&transaction.Category, &description, &date); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		transaction.Description = description.String
		if transaction.Date, err = domain.ParseDate(date); err != nil {
			return nil, fmt.Errorf("parse transaction date %q: %w", date, err)
		}
		transactions = append(transactions, transaction)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return transactions, nil
}

func nullableString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
