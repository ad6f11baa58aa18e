package application

import (
	"context"
	"time"

	"github.com/sebuszqo/BudgetTracker/internal/finance/domain"
	financeErrors "github.com/sebuszqo/BudgetTracker/internal/finance/errors"
)

type stubUsers map[string]string

func (s stubUsers) LookupUsername(_ context.Context, userID string) (string, error) {
	if name, ok := s[userID]; ok {
		return name, nil
	}
	return "", financeErrors.ErrUserNotFound
}

type countingRecorder struct {
	summaries int
	added     map[string]int
}

func (c *countingRecorder) SummaryComputed() { c.summaries++ }

func (c *countingRecorder) TransactionAdded(transactionType string) {
	if c.added == nil {
		c.added = map[string]int{}
	}
	c.added[transactionType]++
}

func day(s string) time.Time {
	d, err := domain.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func fixedClock(s string) func() time.Time {
	return func() time.Time { return day(s).Add(15 * time.Hour) }
}
