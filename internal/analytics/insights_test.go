package analytics

import (
	"strconv"
	"strings"
	"testing"

	"github.com/dvergara/Household-Finance-Backend/internal/model"
)

func TestTopExpenses(t *testing.T) {
	var records []model.Transaction
	records = append(records, tx(date(2024, 1, 1), "nomina", 5000, "Casa"))
	for i := 1; i <= 12; i++ {
		records = append(records, tx(date(2024, 1, i), "gasto "+strconv.Itoa(i), -float64(i*10), "Casa"))
	}

	out := TopExpenses(records)

	if len(out) != topExpenseCount {
		t.Fatalf("expected %d expenses, got %d", topExpenseCount, len(out))
	}
	if out[0].AbsAmount != 120 {
		t.Errorf("largest = %v, want 120", out[0].AbsAmount)
	}
	for i := 1; i < len(out); i++ {
		if out[i].AbsAmount > out[i-1].AbsAmount {
			t.Fatalf("not sorted descending at %d", i)
		}
	}
	for _, r := range out {
		if r.Kind != model.KindExpense {
			t.Errorf("income leaked into top expenses: %+v", r)
		}
	}
}

func TestRecurringExpenses(t *testing.T) {
	var records []model.Transaction
	add := func(category string, amounts ...float64) {
		for i, a := range amounts {
			r := tx(date(2024, 1, i+1), category, -a, "Casa")
			r.Category = category
			records = append(records, r)
		}
	}
	add("Hipoteca", 800, 800, 800)
	add("Supermercado", 100, 120, 80, 100)
	add("Restaurante", 50, 60) // only twice, not recurring

	out := RecurringExpenses(records)

	if len(out) != 2 {
		t.Fatalf("expected 2 recurring categories, got %d: %+v", len(out), out)
	}
	if out[0].Category != "Hipoteca" || out[0].Frequency != 3 || out[0].Average != 800 {
		t.Errorf("unexpected first entry: %+v", out[0])
	}
	if out[1].Category != "Supermercado" || out[1].Average != 100 {
		t.Errorf("unexpected second entry: %+v", out[1])
	}
}

func TestRecurringExpenses_Cap(t *testing.T) {
	var records []model.Transaction
	for c := 0; c < 15; c++ {
		category := "Cat" + strconv.Itoa(c)
		for i := 0; i < 3; i++ {
			r := tx(date(2024, 1, i+1), category, -float64(c+1), "Casa")
			r.Category = category
			records = append(records, r)
		}
	}
	if out := RecurringExpenses(records); len(out) != recurringMaxListed {
		t.Errorf("expected %d entries, got %d", recurringMaxListed, len(out))
	}
}

func TestAlerts_AnomalousExpense(t *testing.T) {
	var records []model.Transaction
	for i := 0; i < 9; i++ {
		records = append(records, tx(date(2024, 1, i+1), "gasto normal", -10, "Casa"))
	}
	records = append(records, tx(date(2024, 1, 15), "Compra sofá", -1000, "Casa"))

	alerts := Alerts(records)

	var anomalies []model.Alert
	for _, a := range alerts {
		if a.Title == "Gasto inusual detectado" {
			anomalies = append(anomalies, a)
		}
	}
	if len(anomalies) != 1 {
		t.Fatalf("expected 1 anomaly, got %d: %+v", len(anomalies), anomalies)
	}
	a := anomalies[0]
	if a.Type != AlertWarning {
		t.Errorf("type = %q, want warning", a.Type)
	}
	if a.Date != "15/01/2024" {
		t.Errorf("date = %q, want 15/01/2024", a.Date)
	}
}

func TestAlerts_ExpenseAtThresholdNotFlagged(t *testing.T) {
	// 10,10,10,10,1000 puts the outlier exactly at mean+2*stddev; only
	// strictly greater values are flagged.
	var records []model.Transaction
	for i := 0; i < 4; i++ {
		records = append(records, tx(date(2024, 1, i+1), "gasto normal", -10, "Casa"))
	}
	records = append(records, tx(date(2024, 1, 15), "Compra sofá", -1000, "Casa"))

	for _, a := range Alerts(records) {
		if a.Title == "Gasto inusual detectado" {
			t.Errorf("threshold value flagged: %+v", a)
		}
	}
}

func TestAlerts_UniformSpendIsQuiet(t *testing.T) {
	var records []model.Transaction
	for i := 0; i < 10; i++ {
		records = append(records, tx(date(2024, 1, i+1), "gasto", -50, "Casa"))
	}
	records = append(records, tx(date(2024, 1, 20), "nomina", 1000, "Casa"))

	for _, a := range Alerts(records) {
		if a.Title == "Gasto inusual detectado" {
			t.Errorf("uniform spending flagged: %+v", a)
		}
	}
}

func TestAlerts_AnomalyCap(t *testing.T) {
	var records []model.Transaction
	for i := 0; i < 50; i++ {
		records = append(records, tx(date(2024, 1, 1), "gasto", -10, "Casa"))
	}
	for i := 0; i < 8; i++ {
		records = append(records, tx(date(2024, 2, i+1), "grande", -5000, "Casa"))
	}

	var count int
	for _, a := range Alerts(records) {
		if a.Title == "Gasto inusual detectado" {
			count++
		}
	}
	if count > anomalyMaxListed {
		t.Errorf("got %d anomaly alerts, cap is %d", count, anomalyMaxListed)
	}
}

func TestAlerts_NegativeSavingsRecentMonthsOnly(t *testing.T) {
	records := []model.Transaction{
		// Old month with negative savings: outside the window.
		tx(date(2023, 1, 10), "gasto", -500, "Casa"),
		// Window: 2024-02, 2024-03, 2024-04.
		tx(date(2024, 2, 10), "nomina", 2000, "Casa"),
		tx(date(2024, 2, 15), "gasto", -500, "Casa"),
		tx(date(2024, 3, 10), "nomina", 1000, "Casa"),
		tx(date(2024, 3, 15), "gasto", -1500, "Casa"),
		tx(date(2024, 4, 10), "nomina", 1000, "Casa"),
	}

	var dangers []model.Alert
	for _, a := range Alerts(records) {
		if a.Type == AlertDanger {
			dangers = append(dangers, a)
		}
	}

	if len(dangers) != 1 {
		t.Fatalf("expected 1 negative-savings alert, got %d: %+v", len(dangers), dangers)
	}
	if dangers[0].Date != "2024-03" {
		t.Errorf("alert month = %q, want 2024-03", dangers[0].Date)
	}
}

func TestAlerts_NegativeSavingsNewestFirst(t *testing.T) {
	records := []model.Transaction{
		tx(date(2024, 2, 15), "gasto", -500, "Casa"),
		tx(date(2024, 3, 10), "nomina", 1000, "Casa"),
		tx(date(2024, 4, 15), "gasto", -300, "Casa"),
	}

	var dangers []model.Alert
	for _, a := range Alerts(records) {
		if a.Type == AlertDanger {
			dangers = append(dangers, a)
		}
	}

	if len(dangers) != 2 {
		t.Fatalf("expected 2 negative-savings alerts, got %d: %+v", len(dangers), dangers)
	}
	if dangers[0].Date != "2024-04" || dangers[1].Date != "2024-02" {
		t.Errorf("alerts not newest-first: %q, %q", dangers[0].Date, dangers[1].Date)
	}
}

func TestAlerts_AnomalyFallsBackToCategory(t *testing.T) {
	var records []model.Transaction
	for i := 0; i < 9; i++ {
		records = append(records, tx(date(2024, 1, i+1), "gasto normal", -10, "Casa"))
	}
	outlier := tx(date(2024, 1, 15), "", -1000, "Casa")
	outlier.Category = "Muebles"
	records = append(records, outlier)

	for _, a := range Alerts(records) {
		if a.Title != "Gasto inusual detectado" {
			continue
		}
		if !strings.HasPrefix(a.Description, "Muebles:") {
			t.Errorf("description = %q, want category fallback", a.Description)
		}
		return
	}
	t.Fatal("expected an anomaly alert")
}
