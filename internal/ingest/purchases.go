package ingest

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/dvergara/Household-Finance-Backend/internal/locale"
	"github.com/dvergara/Household-Finance-Backend/internal/model"
	"github.com/dvergara/Household-Finance-Backend/internal/resolver"
)

// purchaseSchema matches the per-year online-purchases export: a few
// preamble rows followed by an exact-token header somewhere in the first
// ten rows.
var purchaseSchema = resolver.Schema{
	Required: []string{"producto"},
	AnyOf:    []string{"fecha", "precio"},
	Fields: []resolver.Field{
		{Name: "product", Tokens: []string{"producto"}, Fallback: -1},
		{Name: "date", Tokens: []string{"fecha"}, Fallback: -1},
		{Name: "store", Tokens: []string{"tienda"}, Fallback: -1},
		{Name: "status", Tokens: []string{"estado"}, Fallback: -1},
		{Name: "price", Tokens: []string{"precio"}, Fallback: -1},
		{Name: "priceWithoutDiscount", Tokens: []string{"precio sin oferta"}, Fallback: -1},
	},
}

// YearFailure records one purchases file that could not be parsed.
type YearFailure struct {
	Year int   `json:"year"`
	Err  error `json:"-"`
}

// LoadReport is the diagnostic outcome of a multi-year purchase load. Failed
// years are reported, never fatal; missing files are not failures.
type LoadReport struct {
	RunID    uuid.UUID     `json:"runId"`
	Files    int           `json:"files"`
	Records  int           `json:"records"`
	Failures []YearFailure `json:"failures,omitempty"`
}

// FailedYears lists the years whose files existed but could not be parsed.
func (r *LoadReport) FailedYears() []int {
	years := make([]int, 0, len(r.Failures))
	for _, f := range r.Failures {
		years = append(years, f.Year)
	}
	return years
}

// LoadPurchases reads one "{year}.csv" file per requested year from the
// source. Absent files are skipped silently; files that exist but cannot be
// mapped are collected in the report and the remaining years still load.
func LoadPurchases(ctx context.Context, src Source, years []int) ([]model.PurchaseRecord, *LoadReport) {
	report := &LoadReport{RunID: uuid.New()}
	var all []model.PurchaseRecord

	for _, year := range years {
		name := fmt.Sprintf("%d.csv", year)
		data, err := src.ReadFile(ctx, name)
		if err != nil {
			if !IsNotExist(err) {
				report.Failures = append(report.Failures, YearFailure{Year: year, Err: err})
				log.Printf("purchases %s: %v", name, err)
			}
			continue
		}

		records, err := ParsePurchases(data, year)
		if err != nil {
			report.Failures = append(report.Failures, YearFailure{Year: year, Err: err})
			log.Printf("purchases %s: %v", name, err)
			continue
		}

		report.Files++
		report.Records += len(records)
		all = append(all, records...)
	}

	return all, report
}

// ParsePurchases normalizes one year's comma-delimited purchases export.
// Rows missing a product or with a zero price are discarded; a blank or
// unmapped date defaults to January 1st of the file's year; store and
// status default when absent. IDs are "{year}-{sequence}" with a
// per-file sequence.
func ParsePurchases(data []byte, year int) ([]model.PurchaseRecord, error) {
	rows, err := readRows(data, ',')
	if err != nil {
		return nil, err
	}

	mapping, err := resolver.Resolve(rows, purchaseSchema)
	if err != nil {
		return nil, fmt.Errorf("purchases %d header: %w", year, err)
	}

	var records []model.PurchaseRecord
	for _, row := range rows[mapping.HeaderRow+1:] {
		if len(row) < 2 {
			continue
		}

		product := mapping.Value(row, "product")
		price := locale.ParseAmount(mapping.Value(row, "price"))
		if product == "" || price == 0 {
			continue
		}

		date := mapping.Value(row, "date")
		if date == "" {
			if mapping.Columns["date"] >= 0 {
				// The file tracks dates; a row without one is incomplete.
				continue
			}
			// Legacy files omit the date column entirely.
			date = fmt.Sprintf("01/01/%d", year)
		}

		status := model.PurchaseStatus(mapping.Value(row, "status"))
		if status == "" {
			status = model.StatusReceived
		}

		records = append(records, model.PurchaseRecord{
			ID:                   fmt.Sprintf("%d-%d", year, len(records)),
			Product:              product,
			Date:                 date,
			Store:                defaultString(mapping.Value(row, "store"), model.DefaultStore),
			Status:               status,
			Price:                price,
			PriceWithoutDiscount: locale.ParseAmount(mapping.Value(row, "priceWithoutDiscount")),
			Year:                 year,
			Source:               model.SourceFile,
		})
	}

	return records, nil
}
