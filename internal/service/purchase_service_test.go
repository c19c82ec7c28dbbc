package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dvergara/Household-Finance-Backend/internal/api/request"
	"github.com/dvergara/Household-Finance-Backend/internal/apperrors"
	"github.com/dvergara/Household-Finance-Backend/internal/model"
	"github.com/dvergara/Household-Finance-Backend/internal/repository"
	"github.com/dvergara/Household-Finance-Backend/internal/store"
	"github.com/dvergara/Household-Finance-Backend/internal/testutil"
)

func newTestPurchaseService(t *testing.T) (*PurchaseService, *store.Dataset, repository.PurchaseStore) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	gateway := repository.NewPurchaseRepository(db)
	data := store.NewDataset()
	return NewPurchaseService(data, gateway, t.TempDir()), data, gateway
}

func TestPurchaseService_Add(t *testing.T) {
	svc, data, gateway := newTestPurchaseService(t)
	ctx := context.Background()

	record, err := svc.Add(ctx, request.CreatePurchaseRequest{
		Product: "Teclado", Date: "15/02/2024", Store: "Amazon", Price: 89.99,
	})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if record.Year != 2024 || record.Status != model.StatusPending || record.Source != model.SourceUser {
		t.Errorf("unexpected record: %+v", record)
	}
	if !strings.HasPrefix(record.ID, "2024-") {
		t.Errorf("id = %q, want 2024- prefix", record.ID)
	}

	// Visible in memory and in the store.
	if got := data.PurchasesForYear(2024); len(got) != 1 || got[0].ID != record.ID {
		t.Errorf("record not in working set: %+v", got)
	}
	persisted, err := gateway.Load(ctx, 2024)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(persisted) != 1 || persisted[0].ID != record.ID {
		t.Errorf("record not persisted: %+v", persisted)
	}
}

func TestPurchaseService_AddDefaults(t *testing.T) {
	svc, _, _ := newTestPurchaseService(t)

	record, err := svc.Add(context.Background(), request.CreatePurchaseRequest{
		Product: "Funda", Price: 10,
	})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	wantDate := fmt.Sprintf("01/01/%d", record.Year)
	if record.Date != wantDate {
		t.Errorf("date = %q, want %q", record.Date, wantDate)
	}
	if record.Store != model.DefaultStore {
		t.Errorf("store = %q, want default", record.Store)
	}
}

func TestPurchaseService_AddBadDate(t *testing.T) {
	svc, _, _ := newTestPurchaseService(t)

	_, err := svc.Add(context.Background(), request.CreatePurchaseRequest{
		Product: "Funda", Price: 10, Date: "2024-02-15",
	})
	if !errors.Is(err, apperrors.ErrInvalidDate) {
		t.Errorf("expected ErrInvalidDate, got %v", err)
	}
}

func TestPurchaseService_Delete(t *testing.T) {
	svc, data, gateway := newTestPurchaseService(t)
	ctx := context.Background()

	data.SetPurchases(map[int][]model.PurchaseRecord{
		2023: {
			testutil.NewPurchase().WithID("2023-0").WithYear(2023).Build(),
			testutil.NewPurchase().WithID("2023-1").WithYear(2023).Build(),
		},
	})

	if err := svc.Delete(ctx, "2023-0"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if got := data.PurchasesForYear(2023); len(got) != 1 || got[0].ID != "2023-1" {
		t.Errorf("working set after delete: %+v", got)
	}
	persisted, err := gateway.Load(ctx, 2023)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(persisted) != 1 || persisted[0].ID != "2023-1" {
		t.Errorf("store after delete: %+v", persisted)
	}

	if err := svc.Delete(ctx, "2023-99"); !errors.Is(err, apperrors.ErrPurchaseNotFound) {
		t.Errorf("expected ErrPurchaseNotFound, got %v", err)
	}
}

func TestPurchaseService_ToggleStatus(t *testing.T) {
	svc, data, _ := newTestPurchaseService(t)
	ctx := context.Background()

	data.SetPurchases(map[int][]model.PurchaseRecord{
		2024: {
			testutil.NewPurchase().WithID("2024-0").WithYear(2024).WithStatus(model.StatusPending).Build(),
			testutil.NewPurchase().WithID("2024-1").WithYear(2024).WithStatus(model.StatusNotArrived).Build(),
		},
	})

	record, err := svc.ToggleStatus(ctx, "2024-0")
	if err != nil {
		t.Fatalf("ToggleStatus failed: %v", err)
	}
	if record.Status != model.StatusReceived {
		t.Errorf("status = %q, want Recibido", record.Status)
	}

	record, err = svc.ToggleStatus(ctx, "2024-0")
	if err != nil {
		t.Fatalf("second ToggleStatus failed: %v", err)
	}
	if record.Status != model.StatusPending {
		t.Errorf("status = %q, want Pendiente", record.Status)
	}

	// Orders that never arrived keep their state.
	if _, err := svc.ToggleStatus(ctx, "2024-1"); !errors.Is(err, apperrors.ErrStatusNotToggleable) {
		t.Errorf("expected ErrStatusNotToggleable, got %v", err)
	}
	if got, _ := data.FindPurchase("2024-1"); got.Status != model.StatusNotArrived {
		t.Errorf("status changed despite error: %q", got.Status)
	}
}

// failingStore rejects every save.
type failingStore struct{}

func (failingStore) Save(context.Context, int, []model.PurchaseRecord) error {
	return errors.New("disk full")
}
func (failingStore) Load(context.Context, int) ([]model.PurchaseRecord, error) { return nil, nil }
func (failingStore) LoadAll(context.Context) (map[int][]model.PurchaseRecord, error) {
	return nil, nil
}

func TestPurchaseService_FailedSaveLeavesMemoryUntouched(t *testing.T) {
	data := store.NewDataset()
	data.SetPurchases(map[int][]model.PurchaseRecord{
		2024: {testutil.NewPurchase().WithID("2024-0").WithYear(2024).WithStatus(model.StatusPending).Build()},
	})
	svc := NewPurchaseService(data, failingStore{}, "")
	ctx := context.Background()

	if _, err := svc.ToggleStatus(ctx, "2024-0"); !errors.Is(err, apperrors.ErrFailedToSavePurchases) {
		t.Fatalf("expected ErrFailedToSavePurchases, got %v", err)
	}
	if got, _ := data.FindPurchase("2024-0"); got.Status != model.StatusPending {
		t.Errorf("working set changed after failed save: %q", got.Status)
	}

	if _, err := svc.Add(ctx, request.CreatePurchaseRequest{Product: "X", Price: 1}); !errors.Is(err, apperrors.ErrFailedToSavePurchases) {
		t.Fatalf("expected ErrFailedToSavePurchases, got %v", err)
	}
	if got := data.Purchases(); len(got) != 1 {
		t.Errorf("failed add reached the working set: %+v", got)
	}

	if err := svc.Delete(ctx, "2024-0"); !errors.Is(err, apperrors.ErrFailedToSavePurchases) {
		t.Fatalf("expected ErrFailedToSavePurchases, got %v", err)
	}
	if _, ok := data.FindPurchase("2024-0"); !ok {
		t.Error("failed delete removed the record from the working set")
	}
}

func TestPurchaseService_SnapshotMirrorsSavedYear(t *testing.T) {
	db := testutil.SetupTestDB(t)
	gateway := repository.NewPurchaseRepository(db)
	data := store.NewDataset()
	dir := t.TempDir()
	svc := NewPurchaseService(data, gateway, dir)

	record, err := svc.Add(context.Background(), request.CreatePurchaseRequest{
		Product: "Teclado",
		Date:    "10/03/2024",
		Price:   45,
	})
	if err != nil {
		t.Fatalf("Add() error: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(dir, "2024.csv"))
	if err != nil {
		t.Fatalf("expected snapshot file: %v", err)
	}
	content := string(raw)
	if !strings.Contains(content, "Compras Online 2024") {
		t.Errorf("snapshot missing banner: %q", content)
	}
	if !strings.Contains(content, record.Product) {
		t.Errorf("snapshot missing product %q: %q", record.Product, content)
	}
}
