package analytics

import "github.com/dvergara/Household-Finance-Backend/internal/model"

// Summarize builds the full aggregation for a filtered transaction view.
// Records must be sorted newest-first.
func Summarize(records []model.Transaction) *model.Summary {
	return &model.Summary{
		KPI:                ComputeKPI(records),
		ExpensesByCategory: ExpensesByCategory(records),
		MonthlyFlow:        FlowByMonth(records),
		YearlyFlow:         FlowByYear(records),
		AccountBalances:    AccountBalances(records),
		BalanceSeries:      AccountBalanceSeries(records),
		KeywordAverages:    KeywordAverages(records, DefaultBuckets),
		SalariesByYear:     SalariesByYear(records),
		TopExpenses:        TopExpenses(records),
		Recurring:          RecurringExpenses(records),
		Alerts:             Alerts(records),
	}
}
