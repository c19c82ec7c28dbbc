package ingest

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"

	"github.com/dvergara/Household-Finance-Backend/internal/model"
)

const samplePurchasesCSV = ",,,,,,,\r\n" +
	",,Compras Online 2023,,,,,\r\n" +
	",,Producto,Fecha,Tienda,Estado,Precio,Precio sin oferta\r\n" +
	",,Teclado mecánico,15/02/2023,Amazon,Recibido,\"89,99 €\",\"119,99 €\"\r\n" +
	",,Zapatillas,03/05/2023,Zalando,Pendiente,\"54,95 €\",\r\n" +
	",,Sin precio,01/06/2023,Amazon,Recibido,,\r\n" +
	",,,01/07/2023,Amazon,Recibido,\"10,00 €\",\r\n" +
	",,Funda móvil,,,,\"12,50 €\",\r\n"

func TestParsePurchases(t *testing.T) {
	records, err := ParsePurchases([]byte(samplePurchasesCSV), 2023)
	if err != nil {
		t.Fatalf("ParsePurchases failed: %v", err)
	}

	// Rows without a product, price or date are discarded.
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	first := records[0]
	if first.Product != "Teclado mecánico" || first.Price != 89.99 {
		t.Errorf("unexpected first record: %+v", first)
	}
	if first.PriceWithoutDiscount != 119.99 {
		t.Errorf("priceWithoutDiscount = %v, want 119.99", first.PriceWithoutDiscount)
	}
	if got := first.Discount(); got < 29.99 || got > 30.01 {
		t.Errorf("Discount() = %v, want 30.00", got)
	}
	if first.Source != model.SourceFile {
		t.Errorf("source = %q, want file", first.Source)
	}

	if records[1].Status != model.StatusPending {
		t.Errorf("status = %q, want Pendiente", records[1].Status)
	}
}

func TestParsePurchases_IDSequence(t *testing.T) {
	records, err := ParsePurchases([]byte(samplePurchasesCSV), 2023)
	if err != nil {
		t.Fatalf("ParsePurchases failed: %v", err)
	}
	for i, r := range records {
		want := fmt.Sprintf("2023-%d", i)
		if r.ID != want {
			t.Errorf("record %d id = %q, want %q", i, r.ID, want)
		}
		if r.Year != 2023 {
			t.Errorf("record %d year = %d, want 2023", i, r.Year)
		}
	}
}

func TestParsePurchases_BlankDateDropped(t *testing.T) {
	records, err := ParsePurchases([]byte(samplePurchasesCSV), 2023)
	if err != nil {
		t.Fatalf("ParsePurchases failed: %v", err)
	}

	// The file has a Fecha column, so "Funda móvil" (blank date) is skipped
	// the same way rows without a product or price are.
	for _, r := range records {
		if r.Product == "Funda móvil" {
			t.Errorf("row with blank date kept: %+v", r)
		}
	}
}

func TestParsePurchases_Defaults(t *testing.T) {
	// Legacy files have no date column at all; those rows get January 1st.
	legacy := ",,Compras Online 2018,,,\r\n" +
		",,Producto,Estado,Precio,\r\n" +
		",,Funda móvil,,\"12,50 €\",\r\n"

	records, err := ParsePurchases([]byte(legacy), 2018)
	if err != nil {
		t.Fatalf("ParsePurchases failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}

	last := records[0]
	if last.Date != "01/01/2018" {
		t.Errorf("blank date = %q, want 01/01/2018", last.Date)
	}
	if last.Store != model.DefaultStore {
		t.Errorf("store = %q, want default", last.Store)
	}
	if last.Status != model.StatusReceived {
		t.Errorf("status = %q, want Recibido", last.Status)
	}
}

func TestParsePurchases_NoHeader(t *testing.T) {
	if _, err := ParsePurchases([]byte("a,b,c\n1,2,3\n"), 2023); err == nil {
		t.Error("expected error for file without a recognizable header")
	}
}

func TestLoadPurchases(t *testing.T) {
	src := mapSource{
		"2022.csv": []byte(",,Producto,Fecha,Tienda,Estado,Precio,Precio sin oferta\r\n" +
			",,Libro,10/10/2022,Casa del Libro,Recibido,\"22,00 €\",\r\n"),
		"2023.csv": []byte(samplePurchasesCSV),
		"2024.csv": []byte("nothing,resembling,a,header\nx,y,z,w\n"),
	}

	// 2021 is absent, 2024 is broken; both must leave the other years intact.
	records, report := LoadPurchases(context.Background(), src, []int{2021, 2022, 2023, 2024})

	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	if report.Files != 2 || report.Records != 3 {
		t.Errorf("report files=%d records=%d, want 2/3", report.Files, report.Records)
	}
	if got := report.FailedYears(); len(got) != 1 || got[0] != 2024 {
		t.Errorf("FailedYears() = %v, want [2024]", got)
	}
	if report.RunID == uuid.Nil {
		t.Error("expected a non-zero run id")
	}
}
