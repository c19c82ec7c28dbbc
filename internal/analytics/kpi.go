// Package analytics computes aggregates over filtered record sets. All
// functions are pure: they read their input slice and return fresh values.
// Functions that derive balances require records in descending accounting
// date order, which is the order the loader produces.
package analytics

import (
	"github.com/dvergara/Household-Finance-Backend/internal/model"
)

// ComputeKPI returns the headline figures for a transaction view. The
// current balance is the running balance of the newest record of each
// account, summed; records must be sorted newest-first.
func ComputeKPI(records []model.Transaction) model.KPI {
	var kpi model.KPI

	seen := make(map[string]bool)
	for _, r := range records {
		switch r.Kind {
		case model.KindIncome:
			kpi.Income += r.Amount
			kpi.IncomeCount++
		case model.KindExpense:
			kpi.Expenses += r.AbsAmount
			kpi.ExpenseCount++
		}
		if !seen[r.Account] {
			seen[r.Account] = true
			kpi.Balance += r.Balance
		}
	}

	kpi.Savings = kpi.Income - kpi.Expenses
	if kpi.Income > 0 {
		kpi.SavingsRate = kpi.Savings / kpi.Income * 100
	}
	if len(records) > 0 {
		d := records[0].AccountingDate
		kpi.BalanceDate = &d
	}
	return kpi
}
