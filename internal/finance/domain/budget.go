package domain

import (
	"context"
	"strings"

	"github.com/sebuszqo/BudgetTracker/internal/validator"
)

type BudgetRepository interface {
	// Upsert inserts the budget or replaces the amount of the existing (user, category, month) row.
	Upsert(ctx context.Context, budget *Budget) error
	// FindByMonth returns the month's budgets ordered by category.
	FindByMonth(ctx context.Context, userID, month string) ([]Budget, error)
}

type Budget struct {
	ID       int64   `json:"id"`
	UserID   string  `json:"-"`
	Category string  `json:"category"`
	Month    string  `json:"month"`
	Amount   float64 `json:"amount"`
}

type SetBudgetRequest struct {
	Category string  `json:"category" validate:"required,notblank,max=50"`
	Month    string  `json:"month" validate:"required,yearmonth"`
	Amount   float64 `json:"amount" validate:"gte=0.01,lte=9999999999.99"`
}

func (r *SetBudgetRequest) Validate() error {
	r.Category = strings.TrimSpace(r.Category)
	r.Month = strings.TrimSpace(r.Month)
	return validator.Struct(r)
}
