package interfaces

import (
	"context"
	"errors"
	"time"

	"github.com/sebuszqo/BudgetTracker/internal/finance/application"
	"github.com/sebuszqo/BudgetTracker/internal/finance/domain"
	financeErrors "github.com/sebuszqo/BudgetTracker/internal/finance/errors"
)

var errServiceFailure = errors.New("service error")

type MockTransactionService struct {
	transactions []domain.Transaction
	shouldFail   bool
	lastRequest  domain.NewTransaction
	lastUserID   string
}

func (m *MockTransactionService) AddTransaction(_ context.Context, userID string, request domain.NewTransaction) (*domain.Transaction, error) {
	m.lastRequest, m.lastUserID = request, userID
	if m.shouldFail {
		return nil, errServiceFailure
	}
	if request.Amount <= 0 {
		ve := &financeErrors.ValidationErrors{}
		ve.Add(financeErrors.NewValidationError("amount must be at least 0.01"))
		return nil, ve
	}
	if request.Category == "Yachts" {
		return nil, financeErrors.ErrUnknownCategory
	}
	date, _ := domain.ParseDate(request.Date)
	return &domain.Transaction{ID: 1, UserID: userID, Type: request.Type, Amount: request.Amount, Category: request.Category, Date: date}, nil
}

func (m *MockTransactionService) DeleteTransaction(_ context.Context, userID string, transactionID int64) error {
	if m.shouldFail {
		return errServiceFailure
	}
	for _, t := range m.transactions {
		if t.ID == transactionID && t.UserID == userID {
			return nil
		}
	}
	return financeErrors.ErrTransactionNotFound
}

func (m *MockTransactionService) ListTransactions(_ context.Context, userID string) ([]domain.Transaction, error) {
	if m.shouldFail {
		return nil, errServiceFailure
	}
	result := []domain.Transaction{}
	for _, t := range m.transactions {
		if t.UserID == userID {
			result = append(result, t)
		}
	}
	return result, nil
}

type MockCategoryService struct {
	names      []string
	custom     []domain.Category
	shouldFail bool
}

func (m *MockCategoryService) ListCategories(context.Context, string) ([]string, error) {
	if m.shouldFail {
		return nil, errServiceFailure
	}
	return m.names, nil
}

func (m *MockCategoryService) ListCustomCategories(context.Context, string) ([]domain.Category, error) {
	if m.shouldFail {
		return nil, errServiceFailure
	}
	return m.custom, nil
}

func (m *MockCategoryService) AddCategory(_ context.Context, userID, name string) (*domain.Category, error) {
	if m.shouldFail {
		return nil, errServiceFailure
	}
	for _, c := range m.custom {
		if c.Name == name {
			return nil, financeErrors.ErrCategoryExists
		}
	}
	return &domain.Category{ID: 99, UserID: userID, Name: name}, nil
}

func (m *MockCategoryService) DeleteCategory(_ context.Context, _ string, categoryID int64) error {
	if m.shouldFail {
		return errServiceFailure
	}
	for _, c := range m.custom {
		if c.ID == categoryID {
			return nil
		}
	}
	return financeErrors.ErrCategoryNotFound
}

type MockBudgetService struct {
	budgets    []domain.Budget
	months     []string
	shouldFail bool
	lastMonth  string
}

func (m *MockBudgetService) SetBudget(_ context.Context, userID string, request domain.SetBudgetRequest) (*domain.Budget, error) {
	if m.shouldFail {
		return nil, errServiceFailure
	}
	if err := request.Validate(); err != nil {
		return nil, err
	}
	return &domain.Budget{ID: 1, UserID: userID, Category: request.Category, Month: request.Month, Amount: request.Amount}, nil
}

func (m *MockBudgetService) ListBudgets(_ context.Context, _ string, month string) ([]domain.Budget, error) {
	m.lastMonth = month
	if m.shouldFail {
		return nil, errServiceFailure
	}
	return m.budgets, nil
}

func (m *MockBudgetService) MonthChoices() []string {
	return m.months
}

type MockSummaryService struct {
	summary       *domain.MonthSummary
	err           error
	referenceDate time.Time
}

func (m *MockSummaryService) ComputeMonthSummary(_ context.Context, _ string, referenceDate time.Time) (*domain.MonthSummary, error) {
	m.referenceDate = referenceDate
	return m.summary, m.err
}

type MockExportService struct {
	export *application.Export
	err    error
	format string
}

func (m *MockExportService) ExportTransactions(_ context.Context, _ string, format string) (*application.Export, error) {
	m.format = format
	return m.export, m.err
}
