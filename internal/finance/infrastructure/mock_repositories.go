package infrastructure

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/sebuszqo/BudgetTracker/internal/finance/domain"
	financeErrors "github.com/sebuszqo/BudgetTracker/internal/finance/errors"
)

// MockTransactionRepository keeps transactions in memory and orders them like the SQL repository.
type MockTransactionRepository struct {
	mu           sync.Mutex
	Transactions []domain.Transaction
	Err          error
	RangeCalls   int
}

func (m *MockTransactionRepository) Save(_ context.Context, transaction *domain.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	var maxID int64
	for _, t := range m.Transactions {
		if t.ID > maxID {
			maxID = t.ID
		}
	}
	transaction.ID = maxID + 1
	m.Transactions = append(m.Transactions, *transaction)
	return nil
}

func (m *MockTransactionRepository) FindByUser(_ context.Context, userID string) ([]domain.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	return m.filter(func(t domain.Transaction) bool { return t.UserID == userID }), nil
}

func (m *MockTransactionRepository) FindInDateRange(_ context.Context, userID string, from, to time.Time) ([]domain.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RangeCalls++
	if m.Err != nil {
		return nil, m.Err
	}
	return m.filter(func(t domain.Transaction) bool {
		return t.UserID == userID && !t.Date.Before(from) && !t.Date.After(to)
	}), nil
}

func (m *MockTransactionRepository) Delete(_ context.Context, transactionID int64, userID string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return 0, m.Err
	}
	for i, t := range m.Transactions {
		if t.ID == transactionID && t.UserID == userID {
			m.Transactions = append(m.Transactions[:i], m.Transactions[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (m *MockTransactionRepository) CountByUser(_ context.Context, userID string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return 0, m.Err
	}
	return len(m.filter(func(t domain.Transaction) bool { return t.UserID == userID })), nil
}

func (m *MockTransactionRepository) filter(keep func(domain.Transaction) bool) []domain.Transaction {
	result := []domain.Transaction{}
	for _, t := range m.Transactions {
		if keep(t) {
			result = append(result, t)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		if !result[i].Date.Equal(result[j].Date) {
			return result[i].Date.After(result[j].Date)
		}
		return result[i].ID < result[j].ID
	})
	return result
}

type MockCategoryRepository struct {
	mu         sync.Mutex
	Categories []domain.Category
	Err        error
}

func (m *MockCategoryRepository) Save(_ context.Context, category *domain.Category) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	for _, c := range m.Categories {
		if c.UserID == category.UserID && c.Name == category.Name {
			return financeErrors.ErrCategoryExists
		}
	}
	category.ID = int64(len(m.Categories) + 1)
	category.CreatedAt = time.Now().UTC()
	m.Categories = append(m.Categories, *category)
	return nil
}

func (m *MockCategoryRepository) FindByUser(_ context.Context, userID string) ([]domain.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	result := []domain.Category{}
	for _, c := range m.Categories {
		if c.UserID == userID {
			result = append(result, c)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (m *MockCategoryRepository) ExistsByName(_ context.Context, userID, name string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return false, m.Err
	}
	for _, c := range m.Categories {
		if c.UserID == userID && c.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockCategoryRepository) Delete(_ context.Context, categoryID int64, userID string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return 0, m.Err
	}
	for i, c := range m.Categories {
		if c.ID == categoryID && c.UserID == userID {
			m.Categories = append(m.Categories[:i], m.Categories[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

type MockBudgetRepository struct {
	mu      sync.Mutex
	Budgets []domain.Budget
	Err     error
}

func (m *MockBudgetRepository) Upsert(_ context.Context, budget *domain.Budget) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	for i, b := range m.Budgets {
		if b.UserID == budget.UserID && b.Category == budget.Category && b.Month == budget.Month {
			m.Budgets[i].Amount = budget.Amount
			budget.ID = b.ID
			return nil
		}
	}
	budget.ID = int64(len(m.Budgets) + 1)
	m.Budgets = append(m.Budgets, *budget)
	return nil
}

func (m *MockBudgetRepository) FindByMonth(_ context.Context, userID, month string) ([]domain.Budget, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	result := []domain.Budget{}
	for _, b := range m.Budgets {
		if b.UserID == userID && b.Month == month {
			result = append(result, b)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Category < result[j].Category })
	return result, nil
}
