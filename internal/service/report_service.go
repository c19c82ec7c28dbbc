package service

import (
	"fmt"
	"sort"

	"github.com/dvergara/Household-Finance-Backend/internal/analytics"
	"github.com/dvergara/Household-Finance-Backend/internal/apperrors"
	"github.com/dvergara/Household-Finance-Backend/internal/filter"
	"github.com/dvergara/Household-Finance-Backend/internal/ingest"
	"github.com/dvergara/Household-Finance-Backend/internal/model"
	"github.com/dvergara/Household-Finance-Backend/internal/store"
)

// ReportService answers read queries over the working set: filtered
// listings, facets for the filter controls, and the aggregated summaries.
type ReportService struct {
	data *store.Dataset
}

// NewReportService creates a new ReportService.
func NewReportService(data *store.Dataset) *ReportService {
	return &ReportService{data: data}
}

// Transactions returns the transactions matching the filter, newest first.
func (s *ReportService) Transactions(f model.TransactionFilter) []model.Transaction {
	return filter.Transactions(s.data.Transactions(), f)
}

// TransactionFacets returns the distinct accounts and categories of the
// loaded data plus its date span.
func (s *ReportService) TransactionFacets() model.TransactionFacets {
	records := s.data.Transactions()

	accounts := make(map[string]bool)
	categories := make(map[string]bool)
	var facets model.TransactionFacets
	for _, r := range records {
		accounts[r.Account] = true
		categories[r.Category] = true
		d := r.AccountingDate
		if facets.MinDate == nil || d.Before(*facets.MinDate) {
			min := d
			facets.MinDate = &min
		}
		if facets.MaxDate == nil || d.After(*facets.MaxDate) {
			max := d
			facets.MaxDate = &max
		}
	}

	facets.Accounts = sortedKeys(accounts)
	facets.Categories = sortedKeys(categories)
	return facets
}

// Summary computes the full aggregation for the filtered view.
func (s *ReportService) Summary(f model.TransactionFilter) *model.Summary {
	return analytics.Summarize(s.Transactions(f))
}

// Vacations returns the yearly vacation rollup.
func (s *ReportService) Vacations() []model.VacationYear {
	return analytics.VacationYears(s.data.Vacations())
}

// Purchases returns the purchases matching the filter in year and file
// order.
func (s *ReportService) Purchases(f model.PurchaseFilter) []model.PurchaseRecord {
	return filter.Purchases(s.data.Purchases(), f)
}

// PurchaseFacets returns the distinct stores, years and statuses available
// for the purchase filter controls.
func (s *ReportService) PurchaseFacets() model.PurchaseFacets {
	records := s.data.Purchases()

	stores := make(map[string]bool)
	years := make(map[int]bool)
	for _, r := range records {
		stores[r.Store] = true
		years[r.Year] = true
	}

	facets := model.PurchaseFacets{
		Stores: sortedKeys(stores),
		Statuses: []model.PurchaseStatus{
			model.StatusReceived, model.StatusPending, model.StatusNotArrived,
		},
	}
	for year := range years {
		facets.Years = append(facets.Years, year)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(facets.Years)))
	return facets
}

// PurchaseSummary computes the headline figures for the filtered purchase
// view.
func (s *ReportService) PurchaseSummary(f model.PurchaseFilter) model.PurchaseSummary {
	return analytics.ComputePurchaseSummary(s.Purchases(f))
}

// ExportPurchases renders one year's purchases in the source CSV shape.
func (s *ReportService) ExportPurchases(year int) ([]byte, error) {
	if year <= 0 {
		return nil, fmt.Errorf("%w: %d", apperrors.ErrInvalidYear, year)
	}
	return ingest.WritePurchasesCSV(year, s.data.PurchasesForYear(year)), nil
}

func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
