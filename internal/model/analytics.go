package model

import "time"

// KPI holds the headline figures for the current filtered view.
type KPI struct {
	Income       float64    `json:"income"`
	Expenses     float64    `json:"expenses"`
	Savings      float64    `json:"savings"`
	SavingsRate  float64    `json:"savingsRate"` // percentage, 0 when income is 0
	IncomeCount  int        `json:"incomeCount"`
	ExpenseCount int        `json:"expenseCount"`
	Balance      float64    `json:"balance"`
	BalanceDate  *time.Time `json:"balanceDate,omitempty"`
}

// CategoryAmount is one slice of a category rollup.
type CategoryAmount struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// PeriodFlow is the income/expense/savings total for one time bucket
// (a "YYYY-MM" month or a "YYYY" year).
type PeriodFlow struct {
	Period  string  `json:"period"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Savings float64 `json:"savings"`
}

// AccountBalance is the most recent running balance seen for one account.
type AccountBalance struct {
	Account string    `json:"account"`
	Balance float64   `json:"balance"`
	Date    time.Time `json:"date"`
}

// BalancePoint is the closing balance of an account for one month.
type BalancePoint struct {
	Month   string  `json:"month"`
	Balance float64 `json:"balance"`
}

// AccountSeries is the month-by-month closing balance of one account.
type AccountSeries struct {
	Account string         `json:"account"`
	Points  []BalancePoint `json:"points"`
}

// KeywordAverage is the per-active-month average spend for one keyword
// bucket (e.g. groceries, fuel).
type KeywordAverage struct {
	Name           string  `json:"name"`
	MonthlyAverage float64 `json:"monthlyAverage"`
}

// AccountAmount pairs an account with a summed amount.
type AccountAmount struct {
	Account string  `json:"account"`
	Amount  float64 `json:"amount"`
}

// SalaryYear is the salary-like income received in one year, broken down by
// receiving account.
type SalaryYear struct {
	Year      int             `json:"year"`
	Total     float64         `json:"total"`
	ByAccount []AccountAmount `json:"byAccount"`
}

// RecurringExpense describes a category that repeats within the filtered
// window.
type RecurringExpense struct {
	Category  string  `json:"category"`
	Frequency int     `json:"frequency"`
	Average   float64 `json:"average"`
}

// Alert flags a notable condition found in the filtered data.
type Alert struct {
	Type        string `json:"type"` // "warning" | "danger"
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

// Summary is the full aggregation result for the current filtered
// transaction view. It is recomputed on demand and never persisted.
type Summary struct {
	KPI                KPI              `json:"kpi"`
	ExpensesByCategory []CategoryAmount `json:"expensesByCategory"` // top-K plus "Otros"
	MonthlyFlow        []PeriodFlow     `json:"monthlyFlow"`
	YearlyFlow         []PeriodFlow     `json:"yearlyFlow"`
	AccountBalances    []AccountBalance `json:"accountBalances"`
	BalanceSeries      []AccountSeries  `json:"balanceSeries"`
	KeywordAverages    []KeywordAverage `json:"keywordAverages"`
	SalariesByYear     []SalaryYear     `json:"salariesByYear"`
	TopExpenses        []Transaction    `json:"topExpenses"`
	Recurring          []RecurringExpense `json:"recurring"`
	Alerts             []Alert          `json:"alerts"`
}

// PurchaseSummary holds the headline figures for the current filtered
// purchase view.
type PurchaseSummary struct {
	TotalSpent      float64 `json:"totalSpent"`
	Count           int     `json:"count"`
	DiscountSavings float64 `json:"discountSavings"`
	SavingsPercent  float64 `json:"savingsPercent"`
	PendingCount    int     `json:"pendingCount"`
	PendingValue    float64 `json:"pendingValue"`
}
