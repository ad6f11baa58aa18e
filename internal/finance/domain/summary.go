package domain

// CategorySpend is one entry of the ordered per-category expense map.
type CategorySpend struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// BudgetStatus compares a category's budget with what was spent. Budget is 0 for unbudgeted categories.
type BudgetStatus struct {
	Category string  `json:"category"`
	Budget   float64 `json:"budget"`
	Spent    float64 `json:"spent"`
}

// Series is index aligned: Values[i] belongs to Labels[i].
type Series struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

type MonthSummary struct {
	Month            string          `json:"month"`
	TotalIncome      float64         `json:"total_income"`
	TotalExpense     float64         `json:"total_expense"`
	Transactions     []Transaction   `json:"transactions"`
	SpentPerCategory []CategorySpend `json:"spent_per_category"`
	CategoryBudgets  []BudgetStatus  `json:"category_budgets"`
	Pie              Series          `json:"pie"`
	Trend            Series          `json:"trend"`
}
