package analytics

import (
	"fmt"
	"math"
	"sort"

	"github.com/dvergara/Household-Finance-Backend/internal/locale"
	"github.com/dvergara/Household-Finance-Backend/internal/model"
)

const (
	topExpenseCount    = 10
	recurringMinCount  = 3
	recurringMaxListed = 10
	anomalyMaxListed   = 5
	// anomalySigma flags expenses above mean + anomalySigma standard
	// deviations of the filtered expense population.
	anomalySigma = 2.0
	// recentMonths is how many trailing months are checked for negative
	// savings.
	recentMonths = 3
)

// Alert types.
const (
	AlertWarning = "warning"
	AlertDanger  = "danger"
)

// TopExpenses returns the largest expenses of the view, biggest first.
func TopExpenses(records []model.Transaction) []model.Transaction {
	expenses := make([]model.Transaction, 0, len(records))
	for _, r := range records {
		if r.Kind == model.KindExpense {
			expenses = append(expenses, r)
		}
	}
	sort.SliceStable(expenses, func(i, j int) bool {
		return expenses[i].AbsAmount > expenses[j].AbsAmount
	})
	if len(expenses) > topExpenseCount {
		expenses = expenses[:topExpenseCount]
	}
	return expenses
}

// RecurringExpenses lists expense categories that repeat at least three
// times in the view, ordered by average amount descending.
func RecurringExpenses(records []model.Transaction) []model.RecurringExpense {
	counts := make(map[string]int)
	totals := make(map[string]float64)
	for _, r := range records {
		if r.Kind == model.KindExpense {
			counts[r.Category]++
			totals[r.Category] += r.AbsAmount
		}
	}

	var out []model.RecurringExpense
	for category, count := range counts {
		if count < recurringMinCount {
			continue
		}
		out = append(out, model.RecurringExpense{
			Category:  category,
			Frequency: count,
			Average:   totals[category] / float64(count),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Average != out[j].Average {
			return out[i].Average > out[j].Average
		}
		return out[i].Category < out[j].Category
	})
	if len(out) > recurringMaxListed {
		out = out[:recurringMaxListed]
	}
	return out
}

// Alerts flags unusually large expenses and recent months with negative
// savings. Anomalies are expenses above mean + 2σ of the view's expense
// population, reported in record order; savings alerts run newest first.
func Alerts(records []model.Transaction) []model.Alert {
	alerts := anomalyAlerts(records)
	return append(alerts, negativeSavingsAlerts(records)...)
}

func anomalyAlerts(records []model.Transaction) []model.Alert {
	var amounts []float64
	for _, r := range records {
		if r.Kind == model.KindExpense {
			amounts = append(amounts, r.AbsAmount)
		}
	}
	if len(amounts) < 2 {
		return nil
	}

	var sum float64
	for _, a := range amounts {
		sum += a
	}
	mean := sum / float64(len(amounts))

	var variance float64
	for _, a := range amounts {
		variance += (a - mean) * (a - mean)
	}
	threshold := mean + anomalySigma*math.Sqrt(variance/float64(len(amounts)))

	var alerts []model.Alert
	for _, r := range records {
		if r.Kind != model.KindExpense || r.AbsAmount <= threshold {
			continue
		}
		label := r.Description
		if label == "" {
			label = r.Category
		}
		alerts = append(alerts, model.Alert{
			Type:        AlertWarning,
			Title:       "Gasto inusual detectado",
			Description: fmt.Sprintf("%s: %.2f €", label, r.AbsAmount),
			Date:        locale.FormatDate(r.AccountingDate),
		})
		if len(alerts) == anomalyMaxListed {
			break
		}
	}
	return alerts
}

func negativeSavingsAlerts(records []model.Transaction) []model.Alert {
	flows := FlowByMonth(records)
	if len(flows) > recentMonths {
		flows = flows[len(flows)-recentMonths:]
	}

	// Most recent month first.
	var alerts []model.Alert
	for i := len(flows) - 1; i >= 0; i-- {
		flow := flows[i]
		if flow.Savings >= 0 {
			continue
		}
		alerts = append(alerts, model.Alert{
			Type:        AlertDanger,
			Title:       "Ahorro negativo",
			Description: fmt.Sprintf("Gastaste %.2f € más de lo que ingresaste", -flow.Savings),
			Date:        flow.Period,
		})
	}
	return alerts
}
