package analytics

import "github.com/dvergara/Household-Finance-Backend/internal/model"

// ComputePurchaseSummary returns the headline figures for a purchase view.
// SavingsPercent relates the discount savings to the undiscounted total, so
// a view with no known discounts reports 0.
func ComputePurchaseSummary(records []model.PurchaseRecord) model.PurchaseSummary {
	var s model.PurchaseSummary
	for _, r := range records {
		s.TotalSpent += r.Price
		s.Count++
		s.DiscountSavings += r.Discount()
		if r.Status == model.StatusPending {
			s.PendingCount++
			s.PendingValue += r.Price
		}
	}
	if undiscounted := s.TotalSpent + s.DiscountSavings; undiscounted > 0 {
		s.SavingsPercent = s.DiscountSavings / undiscounted * 100
	}
	return s
}
