package application

import (
	"context"
	"time"

	"github.com/sebuszqo/BudgetTracker/internal/finance/domain"
	financeErrors "github.com/sebuszqo/BudgetTracker/internal/finance/errors"
	"github.com/sebuszqo/BudgetTracker/internal/validator"
)

type BudgetService struct {
	repo       domain.BudgetRepository
	categories CategoryChecker
	now        func() time.Time
}

func NewBudgetService(repo domain.BudgetRepository, categories CategoryChecker) *BudgetService {
	return &BudgetService{repo: repo, categories: categories, now: time.Now}
}

// SetBudget creates the budget or overwrites the amount for the same category and month.
func (s *BudgetService) SetBudget(ctx context.Context, userID string, request domain.SetBudgetRequest) (*domain.Budget, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	known, err := s.categories.HasCategory(ctx, userID, request.Category)
	if err != nil {
		return nil, err
	}
	if !known {
		return nil, financeErrors.ErrUnknownCategory
	}

	budget := &domain.Budget{
		UserID:   userID,
		Category: request.Category,
		Month:    request.Month,
		Amount:   request.Amount,
	}
	if err := s.repo.Upsert(ctx, budget); err != nil {
		return nil, err
	}
	return budget, nil
}

// ListBudgets returns the budgets of month, or of the current month when month is empty.
func (s *BudgetService) ListBudgets(ctx context.Context, userID, month string) ([]domain.Budget, error) {
	if month == "" {
		month = domain.MonthKey(s.now())
	}
	if _, err := time.Parse(validator.MonthLayout, month); err != nil {
		return nil, financeErrors.NewValidationError("month must be a month in YYYY-MM format")
	}
	return s.repo.FindByMonth(ctx, userID, month)
}

func (s *BudgetService) MonthChoices() []string {
	return domain.BudgetMonthChoices(s.now())
}
