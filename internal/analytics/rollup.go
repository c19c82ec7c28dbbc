package analytics

import (
	"sort"
	"strconv"

	"github.com/dvergara/Household-Finance-Backend/internal/model"
)

// topCategories bounds the category rollup; everything past the cut is
// folded into a single remainder slice.
const topCategories = 10

// OtherCategory labels the folded remainder of the category rollup.
const OtherCategory = "Otros"

// ExpensesByCategory sums expense amounts per category, keeps the largest
// buckets, and folds the rest into Otros so the total is conserved.
func ExpensesByCategory(records []model.Transaction) []model.CategoryAmount {
	totals := make(map[string]float64)
	for _, r := range records {
		if r.Kind == model.KindExpense {
			totals[r.Category] += r.AbsAmount
		}
	}

	out := make([]model.CategoryAmount, 0, len(totals))
	for category, amount := range totals {
		out = append(out, model.CategoryAmount{Category: category, Amount: amount})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Amount != out[j].Amount {
			return out[i].Amount > out[j].Amount
		}
		return out[i].Category < out[j].Category
	})

	if len(out) <= topCategories {
		return out
	}
	var rest float64
	for _, c := range out[topCategories:] {
		rest += c.Amount
	}
	return append(out[:topCategories:topCategories],
		model.CategoryAmount{Category: OtherCategory, Amount: rest})
}

// FlowByMonth buckets income and expense totals per "YYYY-MM" month,
// oldest first.
func FlowByMonth(records []model.Transaction) []model.PeriodFlow {
	return flowByPeriod(records, func(r model.Transaction) string { return r.MonthKey })
}

// FlowByYear buckets income and expense totals per year, oldest first.
func FlowByYear(records []model.Transaction) []model.PeriodFlow {
	return flowByPeriod(records, func(r model.Transaction) string { return strconv.Itoa(r.Year) })
}

func flowByPeriod(records []model.Transaction, key func(model.Transaction) string) []model.PeriodFlow {
	buckets := make(map[string]*model.PeriodFlow)
	for _, r := range records {
		k := key(r)
		flow, ok := buckets[k]
		if !ok {
			flow = &model.PeriodFlow{Period: k}
			buckets[k] = flow
		}
		if r.Kind == model.KindIncome {
			flow.Income += r.Amount
		} else {
			flow.Expense += r.AbsAmount
		}
	}

	out := make([]model.PeriodFlow, 0, len(buckets))
	for _, flow := range buckets {
		flow.Savings = flow.Income - flow.Expense
		out = append(out, *flow)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Period < out[j].Period })
	return out
}

// AccountBalances returns the most recent running balance of each account.
// Records must be sorted newest-first.
func AccountBalances(records []model.Transaction) []model.AccountBalance {
	seen := make(map[string]bool)
	var out []model.AccountBalance
	for _, r := range records {
		if seen[r.Account] {
			continue
		}
		seen[r.Account] = true
		out = append(out, model.AccountBalance{
			Account: r.Account,
			Balance: r.Balance,
			Date:    r.AccountingDate,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Account < out[j].Account })
	return out
}

// AccountBalanceSeries returns each account's month-by-month closing
// balance: the running balance of the last movement inside the month.
// Records must be sorted newest-first.
func AccountBalanceSeries(records []model.Transaction) []model.AccountSeries {
	closing := make(map[string]map[string]float64)
	for _, r := range records {
		months, ok := closing[r.Account]
		if !ok {
			months = make(map[string]float64)
			closing[r.Account] = months
		}
		if _, ok := months[r.MonthKey]; !ok {
			months[r.MonthKey] = r.Balance
		}
	}

	out := make([]model.AccountSeries, 0, len(closing))
	for account, months := range closing {
		points := make([]model.BalancePoint, 0, len(months))
		for month, balance := range months {
			points = append(points, model.BalancePoint{Month: month, Balance: balance})
		}
		sort.Slice(points, func(i, j int) bool { return points[i].Month < points[j].Month })
		out = append(out, model.AccountSeries{Account: account, Points: points})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Account < out[j].Account })
	return out
}

// salaryTokens identify salary-like income by category or description.
var salaryTokens = []string{"nomina", "nómina", "salario", "sueldo"}

// SalariesByYear sums salary-like income per year, broken down by receiving
// account. Years are ordered ascending.
func SalariesByYear(records []model.Transaction) []model.SalaryYear {
	type yearBucket struct {
		total     float64
		byAccount map[string]float64
	}
	years := make(map[int]*yearBucket)

	for _, r := range records {
		if r.Kind != model.KindIncome || !matchesAny(r.Category+" "+r.Description, salaryTokens) {
			continue
		}
		b, ok := years[r.Year]
		if !ok {
			b = &yearBucket{byAccount: make(map[string]float64)}
			years[r.Year] = b
		}
		b.total += r.Amount
		b.byAccount[r.Account] += r.Amount
	}

	out := make([]model.SalaryYear, 0, len(years))
	for year, b := range years {
		accounts := make([]model.AccountAmount, 0, len(b.byAccount))
		for account, amount := range b.byAccount {
			accounts = append(accounts, model.AccountAmount{Account: account, Amount: amount})
		}
		sort.Slice(accounts, func(i, j int) bool { return accounts[i].Account < accounts[j].Account })
		out = append(out, model.SalaryYear{Year: year, Total: b.total, ByAccount: accounts})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}
