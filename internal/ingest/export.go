package ingest

import (
	"fmt"
	"strings"

	"github.com/dvergara/Household-Finance-Backend/internal/model"
)

// WritePurchasesCSV renders a year's purchase records in the exact shape of
// the source export: two pad columns, a banner row, the header row, then
// one row per record with quoted "N.NN €" prices. The output re-ingests
// through ParsePurchases.
func WritePurchasesCSV(year int, records []model.PurchaseRecord) []byte {
	rows := [][]string{
		{"", "", "", "", "", "", "", ""},
		{"", "", fmt.Sprintf("Compras Online %d", year), "", "", "", "", ""},
		{"", "", "Producto", "Fecha", "Tienda", "Estado", "Precio", "Precio sin oferta"},
	}

	for _, r := range records {
		withoutDiscount := ""
		if r.PriceWithoutDiscount > 0 {
			withoutDiscount = formatPrice(r.PriceWithoutDiscount)
		}
		rows = append(rows, []string{
			"", "",
			r.Product,
			r.Date,
			r.Store,
			string(r.Status),
			formatPrice(r.Price),
			withoutDiscount,
		})
	}

	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = strings.Join(row, ",")
	}
	return []byte(strings.Join(lines, "\r\n"))
}

func formatPrice(v float64) string {
	return fmt.Sprintf("\"%.2f €\"", v)
}
