// Package filter applies query predicates to in-memory record sets. Filters
// are pure functions over slices: input order is preserved, inputs are never
// mutated, and all criteria are combined with AND.
package filter

import (
	"strings"

	"github.com/dvergara/Household-Finance-Backend/internal/model"
)

// Transactions returns the records matching every criterion of the filter.
func Transactions(records []model.Transaction, f model.TransactionFilter) []model.Transaction {
	out := make([]model.Transaction, 0, len(records))
	search := strings.ToLower(strings.TrimSpace(f.Search))

	for _, r := range records {
		if f.DateFrom != nil && r.AccountingDate.Before(*f.DateFrom) {
			continue
		}
		if f.DateTo != nil && r.AccountingDate.After(*f.DateTo) {
			continue
		}
		if !matchesMovement(r.Kind, f.Movement) {
			continue
		}
		if len(f.Accounts) > 0 && !contains(f.Accounts, r.Account) {
			continue
		}
		if len(f.Categories) > 0 && !contains(f.Categories, r.Category) {
			continue
		}
		if search != "" && !transactionMatches(r, search) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Purchases returns the records matching every criterion of the filter.
func Purchases(records []model.PurchaseRecord, f model.PurchaseFilter) []model.PurchaseRecord {
	out := make([]model.PurchaseRecord, 0, len(records))
	search := strings.ToLower(strings.TrimSpace(f.Search))

	for _, r := range records {
		if f.Year != 0 && r.Year != f.Year {
			continue
		}
		if f.Store != "" && !strings.EqualFold(r.Store, f.Store) {
			continue
		}
		if f.Status != "" && r.Status != f.Status {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(r.Product), search) &&
			!strings.Contains(strings.ToLower(r.Store), search) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func matchesMovement(kind model.MovementKind, m model.MovementType) bool {
	switch m {
	case model.MovementIncome:
		return kind == model.KindIncome
	case model.MovementExpense:
		return kind == model.KindExpense
	default:
		return true
	}
}

func transactionMatches(r model.Transaction, search string) bool {
	for _, field := range []string{r.Description, r.ExtendedDescription, r.Category, r.Subcategory} {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}

func contains(set []string, value string) bool {
	for _, v := range set {
		if v == value {
			return true
		}
	}
	return false
}
