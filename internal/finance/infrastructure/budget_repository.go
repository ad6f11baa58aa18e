package infrastructure

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sebuszqo/BudgetTracker/internal/finance/domain"
)

type BudgetRepository struct {
	db *sql.DB
}

func NewBudgetRepository(db *sql.DB) *BudgetRepository {
	return &BudgetRepository{db: db}
}

func (r *BudgetRepository) Upsert(ctx context.Context, budget *domain.Budget) error {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO budgets (user_id, category, month, amount) VALUES ($1, $2, $3, $4)
        ON CONFLICT (user_id, category, month) DO UPDATE SET amount = excluded.amount
        RETURNING id`,
		budget.UserID, budget.Category, budget.Month, budget.Amount,
	).Scan(&budget.ID)
	if err != nil {
		return fmt.Errorf("upsert budget: %w", err)
	}
	return nil
}

func (r *BudgetRepository) FindByMonth(ctx context.Context, userID, month string) ([]domain.Budget, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, category, month, amount FROM budgets
        WHERE user_id = $1 AND month = $2 ORDER BY category`,
		userID, month)
	if err != nil {
		return nil, fmt.Errorf("query budgets: %w", err)
	}
	defer rows.Close()

	budgets := []domain.Budget{}
	for rows.Next() {
		var budget domain.Budget
		if err := rows.Scan(&budget.ID, &budget.UserID, &budget.Category, &budget.Month, &budget.Amount); err != nil {
			return nil, fmt.Errorf("scan budget: %w", err)
		}
		budgets = append(budgets, budget)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate budgets: %w", err)
	}
	return budgets, nil
}
