package analytics

import (
	"fmt"
	"math"
	"reflect"
	"testing"

	"github.com/dvergara/Household-Finance-Backend/internal/model"
)

func TestExpensesByCategory_FoldsRemainder(t *testing.T) {
	var records []model.Transaction
	for i := 0; i < 15; i++ {
		r := tx(date(2024, 1, 1), "gasto", -float64(100-i), "Casa")
		r.Category = fmt.Sprintf("Cat%02d", i)
		records = append(records, r)
	}

	out := ExpensesByCategory(records)

	if len(out) != topCategories+1 {
		t.Fatalf("expected %d slices, got %d", topCategories+1, len(out))
	}
	if out[len(out)-1].Category != OtherCategory {
		t.Errorf("last slice = %q, want %q", out[len(out)-1].Category, OtherCategory)
	}
	if out[0].Category != "Cat00" || out[0].Amount != 100 {
		t.Errorf("largest slice = %+v", out[0])
	}

	// The fold conserves the total.
	var folded, direct float64
	for _, c := range out {
		folded += c.Amount
	}
	for _, r := range records {
		direct += r.AbsAmount
	}
	if math.Abs(folded-direct) > 1e-9 {
		t.Errorf("total not conserved: %v != %v", folded, direct)
	}
}

func TestExpensesByCategory_IgnoresIncome(t *testing.T) {
	records := []model.Transaction{
		tx(date(2024, 1, 1), "nomina", 1000, "Casa"),
		tx(date(2024, 1, 2), "gasto", -50, "Casa"),
	}
	out := ExpensesByCategory(records)
	if len(out) != 1 || out[0].Amount != 50 {
		t.Errorf("unexpected rollup: %+v", out)
	}
}

func TestFlowByMonth(t *testing.T) {
	records := []model.Transaction{
		tx(date(2024, 2, 10), "nomina", 2000, "Casa"),
		tx(date(2024, 2, 15), "gasto", -500, "Casa"),
		tx(date(2024, 1, 5), "gasto", -300, "Casa"),
	}

	out := FlowByMonth(records)

	want := []model.PeriodFlow{
		{Period: "2024-01", Income: 0, Expense: 300, Savings: -300},
		{Period: "2024-02", Income: 2000, Expense: 500, Savings: 1500},
	}
	if !reflect.DeepEqual(out, want) {
		t.Errorf("got %+v, want %+v", out, want)
	}
}

func TestFlowByYear(t *testing.T) {
	records := []model.Transaction{
		tx(date(2024, 2, 10), "nomina", 2000, "Casa"),
		tx(date(2023, 6, 15), "gasto", -500, "Casa"),
	}

	out := FlowByYear(records)
	if len(out) != 2 || out[0].Period != "2023" || out[1].Period != "2024" {
		t.Fatalf("unexpected periods: %+v", out)
	}
	if out[0].Savings != -500 || out[1].Savings != 2000 {
		t.Errorf("unexpected savings: %+v", out)
	}
}

func TestAccountBalances(t *testing.T) {
	records := []model.Transaction{
		tx(date(2024, 3, 15), "a", -10, "Casa"),
		tx(date(2024, 3, 12), "b", -10, "Elena"),
		tx(date(2024, 3, 10), "c", -10, "Casa"),
	}
	records[0].Balance = 150
	records[1].Balance = 900
	records[2].Balance = 100

	out := AccountBalances(records)

	want := []model.AccountBalance{
		{Account: "Casa", Balance: 150, Date: date(2024, 3, 15)},
		{Account: "Elena", Balance: 900, Date: date(2024, 3, 12)},
	}
	if !reflect.DeepEqual(out, want) {
		t.Errorf("got %+v, want %+v", out, want)
	}
}

func TestAccountBalanceSeries(t *testing.T) {
	records := []model.Transaction{
		tx(date(2024, 2, 20), "a", -10, "Casa"),
		tx(date(2024, 2, 5), "b", -10, "Casa"),
		tx(date(2024, 1, 31), "c", -10, "Casa"),
	}
	records[0].Balance = 500 // closing balance of February
	records[1].Balance = 480
	records[2].Balance = 490 // closing balance of January

	out := AccountBalanceSeries(records)

	want := []model.AccountSeries{{
		Account: "Casa",
		Points: []model.BalancePoint{
			{Month: "2024-01", Balance: 490},
			{Month: "2024-02", Balance: 500},
		},
	}}
	if !reflect.DeepEqual(out, want) {
		t.Errorf("got %+v, want %+v", out, want)
	}
}

func TestSalariesByYear(t *testing.T) {
	records := []model.Transaction{
		tx(date(2024, 1, 25), "Nómina Enero", 2000, "Casa"),
		tx(date(2024, 2, 25), "nomina febrero", 2000, "Casa"),
		tx(date(2024, 2, 28), "Sueldo", 1500, "Elena"),
		tx(date(2023, 12, 25), "Salario", 1900, "Casa"),
		tx(date(2024, 3, 1), "Transferencia nomina ajena", -100, "Casa"), // expense, excluded
		tx(date(2024, 3, 2), "Devolución", 300, "Casa"),                  // not salary-like
	}
	categorized := tx(date(2023, 11, 25), "Transferencia recibida", 1900, "Casa")
	categorized.Category = "Nómina"
	records = append(records, categorized)

	out := SalariesByYear(records)

	if len(out) != 2 || out[0].Year != 2023 || out[1].Year != 2024 {
		t.Fatalf("unexpected years: %+v", out)
	}
	if out[0].Total != 3800 {
		t.Errorf("2023 total = %v, want 3800", out[0].Total)
	}
	y2024 := out[1]
	if y2024.Total != 5500 {
		t.Errorf("2024 total = %v, want 5500", y2024.Total)
	}
	want := []model.AccountAmount{{Account: "Casa", Amount: 4000}, {Account: "Elena", Amount: 1500}}
	if !reflect.DeepEqual(y2024.ByAccount, want) {
		t.Errorf("2024 accounts = %+v, want %+v", y2024.ByAccount, want)
	}
}
