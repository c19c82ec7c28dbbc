package ingest

import (
	"strconv"

	"github.com/dvergara/Household-Finance-Backend/internal/locale"
	"github.com/dvergara/Household-Finance-Backend/internal/model"
	"github.com/dvergara/Household-Finance-Backend/internal/resolver"
)

// VacationsFile is the optional trip-cost export.
const VacationsFile = "Vacaciones.csv"

// vacationSchema maps the least trustworthy of the three formats: the
// header is always the first row, but its names drift, so columns are
// found by substring with a positional fallback.
var vacationSchema = resolver.Schema{
	MaxScan: 1,
	Fields: []resolver.Field{
		// "Año" normalizes to "ano"; some files write "ao" or "year".
		{Name: "year", Tokens: []string{"ano", "ao", "year"}, Fallback: 0},
		{Name: "destination", Tokens: []string{"dest"}, Substring: true, Fallback: 1},
		{Name: "cost", Tokens: []string{"cost"}, Substring: true, Fallback: 2},
	},
}

// ParseVacations normalizes the semicolon-delimited vacations export. Rows
// with an unparseable year or a negative cost are dropped silently.
func ParseVacations(data []byte) ([]model.VacationEntry, error) {
	rows, err := readRows(data, ';')
	if err != nil {
		return nil, err
	}

	mapping, err := resolver.Resolve(rows, vacationSchema)
	if err != nil {
		return nil, err
	}

	var entries []model.VacationEntry
	for _, row := range rows[mapping.HeaderRow+1:] {
		year, err := strconv.Atoi(mapping.Value(row, "year"))
		if err != nil {
			continue
		}
		cost := locale.ParseAmount(mapping.Value(row, "cost"))
		if cost < 0 {
			continue
		}
		entries = append(entries, model.VacationEntry{
			Year:        year,
			Destination: defaultString(mapping.Value(row, "destination"), model.DefaultDestination),
			Cost:        cost,
		})
	}

	return entries, nil
}
