package application

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sebuszqo/BudgetTracker/internal/finance/domain"
)

// TrendMonths is the number of points in the expense trend series.
const TrendMonths = 6

type SummaryService struct {
	transactions domain.TransactionRepository
	budgets      domain.BudgetRepository
	users        UserLookup
	recorder     Recorder
}

func NewSummaryService(transactions domain.TransactionRepository, budgets domain.BudgetRepository, users UserLookup, recorder Recorder) *SummaryService {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &SummaryService{transactions: transactions, budgets: budgets, users: users, recorder: recorder}
}

// ComputeMonthSummary builds the dashboard for the month containing referenceDate.
// It only reads; an unknown user yields a NotFound error.
func (s *SummaryService) ComputeMonthSummary(ctx context.Context, userID string, referenceDate time.Time) (*domain.MonthSummary, error) {
	if _, err := s.users.LookupUsername(ctx, userID); err != nil {
		return nil, err
	}

	months := domain.RecentMonths(referenceDate, TrendMonths)
	oldest, current := months[len(months)-1], months[0]

	// One read covers both the month's rows and the trend window.
	transactions, err := s.transactions.FindInDateRange(ctx, userID, oldest, domain.MonthEnd(current))
	if err != nil {
		return nil, err
	}

	budgets, err := s.budgets.FindByMonth(ctx, userID, domain.MonthKey(current))
	if err != nil {
		return nil, err
	}

	summary := summarize(months, transactions, budgets)
	s.recorder.SummaryComputed()
	return summary, nil
}

// summarize aggregates transactions for months[0]. months are newest first.
func summarize(months []time.Time, transactions []domain.Transaction, budgets []domain.Budget) *domain.MonthSummary {
	current := months[0]
	monthKey := domain.MonthKey(current)
	first, last := current, domain.MonthEnd(current)

	trendTotals := make(map[string]decimal.Decimal, len(months))
	for _, m := range months {
		trendTotals[domain.MonthKey(m)] = decimal.Zero
	}

	monthTransactions := make([]domain.Transaction, 0)
	for _, t := range transactions {
		if t.IsExpense() {
			key := domain.MonthKey(t.Date)
			if total, ok := trendTotals[key]; ok {
				trendTotals[key] = total.Add(decimal.NewFromFloat(t.Amount))
			}
		}
		if !t.Date.Before(first) && !t.Date.After(last) {
			monthTransactions = append(monthTransactions, t)
		}
	}
	sortNewestFirst(monthTransactions)

	income, expense := decimal.Zero, decimal.Zero
	var spentOrder []string
	spent := make(map[string]decimal.Decimal)
	for _, t := range monthTransactions {
		amount := decimal.NewFromFloat(t.Amount)
		if !t.IsExpense() {
			income = income.Add(amount)
			continue
		}
		expense = expense.Add(amount)
		if _, ok := spent[t.Category]; !ok {
			spentOrder = append(spentOrder, t.Category)
		}
		spent[t.Category] = spent[t.Category].Add(amount)
	}

	summary := &domain.MonthSummary{
		Month:            monthKey,
		TotalIncome:      income.InexactFloat64(),
		TotalExpense:     expense.InexactFloat64(),
		Transactions:     monthTransactions,
		SpentPerCategory: make([]domain.CategorySpend, 0, len(spentOrder)),
		CategoryBudgets:  make([]domain.BudgetStatus, 0, len(budgets)+len(spentOrder)),
		Pie:              domain.Series{Labels: make([]string, 0, len(spentOrder)), Values: make([]float64, 0, len(spentOrder))},
		Trend:            domain.Series{Labels: make([]string, 0, len(months)), Values: make([]float64, 0, len(months))},
	}

	for _, category := range spentOrder {
		amount := spent[category].InexactFloat64()
		summary.SpentPerCategory = append(summary.SpentPerCategory, domain.CategorySpend{Category: category, Amount: amount})
		summary.Pie.Labels = append(summary.Pie.Labels, category)
		summary.Pie.Values = append(summary.Pie.Values, amount)
	}

	budgeted := make(map[string]struct{}, len(budgets))
	for _, b := range budgets {
		if _, dup := budgeted[b.Category]; dup {
			continue
		}
		budgeted[b.Category] = struct{}{}
		summary.CategoryBudgets = append(summary.CategoryBudgets, domain.BudgetStatus{
			Category: b.Category,
			Budget:   b.Amount,
			Spent:    spent[b.Category].InexactFloat64(),
		})
	}
	for _, category := range spentOrder {
		if _, ok := budgeted[category]; ok {
			continue
		}
		summary.CategoryBudgets = append(summary.CategoryBudgets, domain.BudgetStatus{
			Category: category,
			Spent:    spent[category].InexactFloat64(),
		})
	}

	for i := len(months) - 1; i >= 0; i-- {
		key := domain.MonthKey(months[i])
		summary.Trend.Labels = append(summary.Trend.Labels, key)
		summary.Trend.Values = append(summary.Trend.Values, trendTotals[key].InexactFloat64())
	}

	return summary
}

func sortNewestFirst(transactions []domain.Transaction) {
	sort.SliceStable(transactions, func(i, j int) bool {
		if !transactions[i].Date.Equal(transactions[j].Date) {
			return transactions[i].Date.After(transactions[j].Date)
		}
		return transactions[i].ID < transactions[j].ID
	})
}
