package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sebuszqo/BudgetTracker/internal/finance/domain"
	financeErrors "github.com/sebuszqo/BudgetTracker/internal/finance/errors"
	"github.com/sebuszqo/BudgetTracker/internal/finance/infrastructure"
)

func newTransactionFixture() (*TransactionService, *infrastructure.MockTransactionRepository, *countingRecorder) {
	repo := &infrastructure.MockTransactionRepository{}
	categories := NewCategoryService(&infrastructure.MockCategoryRepository{
		Categories: []domain.Category{{ID: 1, UserID: "u1", Name: "Salary"}},
	})
	recorder := &countingRecorder{}
	service := NewTransactionService(repo, categories, recorder)
	service.now = fixedClock("2024-05-15")
	return service, repo, recorder
}

func TestAddTransaction_DefaultsDateToToday(t *testing.T) {
	service, repo, recorder := newTransactionFixture()

	tx, err := service.AddTransaction(context.Background(), "u1", domain.NewTransaction{
		Type: "Income", Amount: 3000, Category: " Salary ", Description: "Monthly salary",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), tx.ID)
	assert.Equal(t, "Salary", tx.Category)
	assert.Equal(t, "2024-05-15", domain.FormatDate(tx.Date))
	assert.Len(t, repo.Transactions, 1)
	assert.Equal(t, 1, recorder.added["Income"])
}

func TestAddTransaction_ExplicitDate(t *testing.T) {
	service, _, _ := newTransactionFixture()

	tx, err := service.AddTransaction(context.Background(), "u1", domain.NewTransaction{
		Type: "Expense", Amount: 50, Category: "Food", Date: "2024-04-30",
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-04-30", domain.FormatDate(tx.Date))
}

func TestAddTransaction_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		request domain.NewTransaction
	}{
		{"negative amount", domain.NewTransaction{Type: "Expense", Amount: -5, Category: "Food"}},
		{"zero amount", domain.NewTransaction{Type: "Expense", Amount: 0, Category: "Food"}},
		{"amount above column limit", domain.NewTransaction{Type: "Expense", Amount: 1e10, Category: "Food"}},
		{"huge amount", domain.NewTransaction{Type: "Expense", Amount: 1e308, Category: "Food", Date: "2024-05-10"}},
		{"unknown type", domain.NewTransaction{Type: "Transfer", Amount: 5, Category: "Food"}},
		{"malformed date", domain.NewTransaction{Type: "Expense", Amount: 5, Category: "Food", Date: "05/01/2024"}},
		{"unknown category", domain.NewTransaction{Type: "Expense", Amount: 5, Category: "Yachts"}},
		{"other user's category", domain.NewTransaction{Type: "Income", Amount: 5, Category: "Salary"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, _ := newTransactionFixture()
			userID := "u1"
			if tt.name == "other user's category" {
				userID = "u2"
			}

			_, err := service.AddTransaction(context.Background(), userID, tt.request)

			assert.True(t, financeErrors.IsValidationError(err) || financeErrors.IsValidationErrors(err), err)
			assert.Empty(t, repo.Transactions)
		})
	}
}

func TestDeleteTransaction_OwnershipIsEnforced(t *testing.T) {
	service, repo, _ := newTransactionFixture()
	repo.Transactions = []domain.Transaction{{ID: 9, UserID: "u1", Type: "Expense", Amount: 1, Category: "Food", Date: day("2024-05-01")}}

	err := service.DeleteTransaction(context.Background(), "u2", 9)
	assert.ErrorIs(t, err, financeErrors.ErrTransactionNotFound)
	assert.Len(t, repo.Transactions, 1)

	require.NoError(t, service.DeleteTransaction(context.Background(), "u1", 9))
	assert.Empty(t, repo.Transactions)

	assert.ErrorIs(t, service.DeleteTransaction(context.Background(), "u1", 9), financeErrors.ErrTransactionNotFound)
}

func TestListTransactions_NewestFirst(t *testing.T) {
	service, repo, _ := newTransactionFixture()
	repo.Transactions = []domain.Transaction{
		{ID: 1, UserID: "u1", Date: day("2024-01-01")},
		{ID: 2, UserID: "u1", Date: day("2024-03-01")},
		{ID: 3, UserID: "u2", Date: day("2024-02-01")},
	}

	transactions, err := service.ListTransactions(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, transactions, 2)
	assert.Equal(t, int64(2), transactions[0].ID)

	has, err := service.HasTransactions(context.Background(), "u2")
	require.NoError(t, err)
	assert.True(t, has)
}

func TestAddTransaction_StorageError(t *testing.T) {
	service, repo, recorder := newTransactionFixture()
	repo.Err = errors.New("disk full")

	_, err := service.AddTransaction(context.Background(), "u1", domain.NewTransaction{Type: "Expense", Amount: 5, Category: "Food"})

	assert.EqualError(t, err, "disk full")
	assert.Empty(t, recorder.added)
}
