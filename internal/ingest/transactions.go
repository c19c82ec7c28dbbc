package ingest

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"sort"

	"github.com/dvergara/Household-Finance-Backend/internal/apperrors"
	"github.com/dvergara/Household-Finance-Backend/internal/locale"
	"github.com/dvergara/Household-Finance-Backend/internal/model"
	"github.com/dvergara/Household-Finance-Backend/internal/resolver"
)

// yearCutoff drops forward-dated rows; the source export carries template
// rows for the upcoming year that are not real movements.
const yearCutoff = 2026

// TransactionFiles are the candidate bank-export file names, tried in
// priority order; the first one that loads wins.
var TransactionFiles = []string{
	"datos.csv",
	"Cuentas_casa+elena2015-2025.csv",
	"datos_ejemplo.csv",
}

// transactionSchema maps the fixed Spanish bank-export header. The format
// is trusted, so tokens match exactly and only the first row is scanned.
var transactionSchema = resolver.Schema{
	Required: []string{"fecha contable", "importe"},
	MaxScan:  1,
	Fields: []resolver.Field{
		{Name: "date", Tokens: []string{"fecha contable"}, Fallback: -1},
		{Name: "valueDate", Tokens: []string{"fecha valor"}, Fallback: -1},
		{Name: "description", Tokens: []string{"concepto"}, Fallback: -1},
		{Name: "extendedDescription", Tokens: []string{"concepto ampliado"}, Fallback: -1},
		{Name: "amount", Tokens: []string{"importe"}, Fallback: -1},
		{Name: "currency", Tokens: []string{"moneda"}, Fallback: -1},
		{Name: "balance", Tokens: []string{"saldo"}, Fallback: -1},
		{Name: "category", Tokens: []string{"categoria"}, Fallback: -1},
		{Name: "subcategory", Tokens: []string{"subcategoria"}, Fallback: -1},
		{Name: "account", Tokens: []string{"cuenta"}, Fallback: -1},
	},
}

// LoadTransactions tries each candidate export file in order and returns
// the normalized records of the first one that parses, along with the file
// name used. When every candidate fails it returns ErrNoUsableInput; the
// caller keeps an empty-but-functional dataset.
func LoadTransactions(ctx context.Context, src Source) ([]model.Transaction, string, error) {
	for _, name := range TransactionFiles {
		data, err := src.ReadFile(ctx, name)
		if err != nil {
			if !IsNotExist(err) {
				log.Printf("skipping transaction file %s: %v", name, err)
			}
			continue
		}

		records, err := ParseTransactions(data)
		if err != nil {
			log.Printf("skipping transaction file %s: %v", name, err)
			continue
		}
		return records, name, nil
	}
	return nil, "", apperrors.ErrNoUsableInput
}

// ParseTransactions normalizes a semicolon-delimited bank export. Rows
// lacking a parseable accounting date, with a zero amount, or dated past the
// cutoff year are dropped. The result is sorted by accounting date
// descending; rows with equal dates keep their file order.
func ParseTransactions(data []byte) ([]model.Transaction, error) {
	rows, err := readRows(data, ';')
	if err != nil {
		return nil, err
	}

	mapping, err := resolver.Resolve(rows, transactionSchema)
	if err != nil {
		return nil, fmt.Errorf("bank export header: %w", err)
	}

	records := make([]model.Transaction, 0, len(rows))
	for _, row := range rows[mapping.HeaderRow+1:] {
		date, err := locale.ParseDate(mapping.Value(row, "date"))
		if err != nil {
			continue
		}
		amount := locale.ParseAmount(mapping.Value(row, "amount"))
		if amount == 0 || date.Year() >= yearCutoff {
			continue
		}

		tx := model.Transaction{
			AccountingDate:      date,
			Description:         mapping.Value(row, "description"),
			ExtendedDescription: mapping.Value(row, "extendedDescription"),
			Amount:              amount,
			AbsAmount:           abs(amount),
			Currency:            defaultString(mapping.Value(row, "currency"), model.DefaultCurrency),
			Balance:             locale.ParseAmount(mapping.Value(row, "balance")),
			Category:            defaultString(mapping.Value(row, "category"), model.DefaultCategory),
			Subcategory:         mapping.Value(row, "subcategory"),
			Account:             defaultString(mapping.Value(row, "account"), model.DefaultAccount),
			Kind:                model.KindExpense,
			Year:                date.Year(),
			MonthKey:            locale.YearMonthKey(date),
		}
		if amount >= 0 {
			tx.Kind = model.KindIncome
		}
		if valueDate, err := locale.ParseDate(mapping.Value(row, "valueDate")); err == nil {
			tx.ValueDate = &valueDate
		}
		records = append(records, tx)
	}

	// Downstream balance computation relies on this ordering; the sort must
	// be stable so equal dates keep insertion order.
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].AccountingDate.After(records[j].AccountingDate)
	})

	return records, nil
}

func readRows(data []byte, comma rune) ([][]string, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, apperrors.ErrEmptyFile
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = comma
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, apperrors.ErrEmptyFile
	}
	return rows, nil
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
