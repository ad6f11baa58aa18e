package domain

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/sebuszqo/BudgetTracker/internal/validator"
)

const (
	TransactionTypeIncome  = "Income"
	TransactionTypeExpense = "Expense"
)

type TransactionRepository interface {
	Save(ctx context.Context, transaction *Transaction) error
	FindByUser(ctx context.Context, userID string) ([]Transaction, error)
	// FindInDateRange returns transactions dated from..to inclusive, newest first.
	FindInDateRange(ctx context.Context, userID string, from, to time.Time) ([]Transaction, error)
	Delete(ctx context.Context, transactionID int64, userID string) (int64, error)
	CountByUser(ctx context.Context, userID string) (int, error)
}

type Transaction struct {
	ID          int64
	UserID      string
	Type        string // "Income" or "Expense"
	Amount      float64
	Category    string
	Description string
	Date        time.Time
}

func (t Transaction) IsExpense() bool {
	return t.Type == TransactionTypeExpense
}

func (t Transaction) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID          int64   `json:"id"`
		Type        string  `json:"type"`
		Amount      float64 `json:"amount"`
		Category    string  `json:"category"`
		Description string  `json:"description"`
		Date        string  `json:"date"`
	}{
		ID:          t.ID,
		Type:        t.Type,
		Amount:      t.Amount,
		Category:    t.Category,
		Description: t.Description,
		Date:        FormatDate(t.Date),
	})
}

// NewTransaction is the input of AddTransaction. Date is optional and defaults to today.
type NewTransaction struct {
	Type        string  `json:"type" validate:"required,oneof=Income Expense"`
	Amount      float64 `json:"amount" validate:"gte=0.01,lte=9999999999.99"`
	Category    string  `json:"category" validate:"required,notblank,max=50"`
	Description string  `json:"description" validate:"max=200"`
	Date        string  `json:"date" validate:"omitempty,isodate"`
}

func (n *NewTransaction) Normalize() {
	n.Category = strings.TrimSpace(n.Category)
	n.Description = strings.TrimSpace(n.Description)
	n.Date = strings.TrimSpace(n.Date)
}

func (n *NewTransaction) Validate() error {
	return validator.Struct(n)
}
