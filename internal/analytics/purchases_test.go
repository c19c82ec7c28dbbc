package analytics

import (
	"math"
	"testing"

	"github.com/dvergara/Household-Finance-Backend/internal/model"
)

func TestComputePurchaseSummary(t *testing.T) {
	records := []model.PurchaseRecord{
		{Product: "Teclado", Price: 80, PriceWithoutDiscount: 100, Status: model.StatusReceived},
		{Product: "Funda", Price: 10, Status: model.StatusPending},
		{Product: "Monitor", Price: 150, PriceWithoutDiscount: 200, Status: model.StatusPending},
		{Product: "Cable", Price: 5, Status: model.StatusNotArrived},
	}

	s := ComputePurchaseSummary(records)

	if s.TotalSpent != 245 || s.Count != 4 {
		t.Errorf("total/count = %v/%d, want 245/4", s.TotalSpent, s.Count)
	}
	if s.DiscountSavings != 70 {
		t.Errorf("savings = %v, want 70", s.DiscountSavings)
	}
	// 70 saved against an undiscounted total of 315.
	if math.Abs(s.SavingsPercent-70.0/315*100) > 1e-9 {
		t.Errorf("savings percent = %v", s.SavingsPercent)
	}
	if s.PendingCount != 2 || s.PendingValue != 160 {
		t.Errorf("pending = %d/%v, want 2/160", s.PendingCount, s.PendingValue)
	}
}

func TestComputePurchaseSummary_Empty(t *testing.T) {
	s := ComputePurchaseSummary(nil)
	if s.TotalSpent != 0 || s.SavingsPercent != 0 || s.Count != 0 {
		t.Errorf("unexpected summary for empty input: %+v", s)
	}
}

func TestVacationYears(t *testing.T) {
	entries := []model.VacationEntry{
		{Year: 2022, Destination: "Lisboa", Cost: 1250},
		{Year: 2023, Destination: "Roma", Cost: 2100},
		{Year: 2023, Destination: "Sierra", Cost: 480},
		{Year: 2023, Destination: "Valencia", Cost: 2100},
	}

	out := VacationYears(entries)

	if len(out) != 2 || out[0].Year != 2023 || out[1].Year != 2022 {
		t.Fatalf("unexpected year order: %+v", out)
	}
	y := out[0]
	if y.Total != 4680 {
		t.Errorf("2023 total = %v, want 4680", y.Total)
	}
	if y.Entries[0].Destination != "Roma" || y.Entries[2].Destination != "Sierra" {
		t.Errorf("entries not ordered by cost (stable): %+v", y.Entries)
	}
}
