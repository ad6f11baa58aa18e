// Package seed creates the demo users and a handful of sample transactions on first start.
package seed

import (
	"context"
	"fmt"
	"sync"

	"github.com/sebuszqo/BudgetTracker/internal/finance/domain"
	"github.com/sebuszqo/BudgetTracker/internal/log"
	"github.com/sebuszqo/BudgetTracker/internal/user"
)

type UserEnsurer interface {
	EnsureUser(ctx context.Context, username, password string) (*user.User, bool, error)
}

type TransactionSeeder interface {
	HasTransactions(ctx context.Context, userID string) (bool, error)
	AddTransaction(ctx context.Context, userID string, request domain.NewTransaction) (*domain.Transaction, error)
}

type CategoryEnsurer interface {
	EnsureCategory(ctx context.Context, userID, name string) error
}

type Account struct {
	Username string
	Password string
}

var DemoAccounts = []Account{
	{Username: "alice", Password: "password123"},
	{Username: "bob", Password: "password456"},
}

// SampleTransactions are added for the first demo account, dated the day the seeder runs.
var SampleTransactions = []domain.NewTransaction{
	{Type: domain.TransactionTypeExpense, Amount: 50, Category: "Food", Description: "Grocery shopping"},
	{Type: domain.TransactionTypeExpense, Amount: 1200, Category: "Rent", Description: "Monthly rent"},
	{Type: domain.TransactionTypeExpense, Amount: 80, Category: "Utilities", Description: "Electricity bill"},
	{Type: domain.TransactionTypeIncome, Amount: 3000, Category: "Salary", Description: "Monthly salary"},
}

// Salary is not a default category, so it is stored as a custom one before the income row is added.
const sampleIncomeCategory = "Salary"

type Seeder struct {
	users        UserEnsurer
	transactions TransactionSeeder
	categories   CategoryEnsurer
	logger       *log.Logger

	once sync.Once
	err  error
}

func NewSeeder(users UserEnsurer, transactions TransactionSeeder, categories CategoryEnsurer, logger *log.Logger) *Seeder {
	return &Seeder{
		users:        users,
		transactions: transactions,
		categories:   categories,
		logger:       logger.WithComponent(log.ComponentSeed),
	}
}

// Run seeds at most once per Seeder; later calls return the first result.
func (s *Seeder) Run(ctx context.Context) error {
	s.once.Do(func() {
		s.err = s.seed(ctx)
	})
	return s.err
}

func (s *Seeder) seed(ctx context.Context) error {
	var owner *user.User
	for i, account := range DemoAccounts {
		u, created, err := s.users.EnsureUser(ctx, account.Username, account.Password)
		if err != nil {
			return fmt.Errorf("ensure user %s: %w", account.Username, err)
		}
		if created {
			s.logger.InfoContext(ctx, "demo user created", "username", account.Username, log.FieldUserID, u.ID)
		}
		if i == 0 {
			owner = u
		}
	}
	if owner == nil {
		return nil
	}

	has, err := s.transactions.HasTransactions(ctx, owner.ID)
	if err != nil {
		return fmt.Errorf("check sample transactions: %w", err)
	}
	if has {
		s.logger.DebugContext(ctx, "sample transactions already present", log.FieldUserID, owner.ID)
		return nil
	}

	if err := s.categories.EnsureCategory(ctx, owner.ID, sampleIncomeCategory); err != nil {
		return fmt.Errorf("ensure category %s: %w", sampleIncomeCategory, err)
	}
	for _, sample := range SampleTransactions {
		if _, err := s.transactions.AddTransaction(ctx, owner.ID, sample); err != nil {
			return fmt.Errorf("add sample transaction %q: %w", sample.Description, err)
		}
	}

	s.logger.InfoContext(ctx, "sample transactions added", log.FieldUserID, owner.ID, "count", len(SampleTransactions))
	return nil
}
