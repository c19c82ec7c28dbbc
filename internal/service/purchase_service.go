package service

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/dvergara/Household-Finance-Backend/internal/api/request"
	"github.com/dvergara/Household-Finance-Backend/internal/apperrors"
	"github.com/dvergara/Household-Finance-Backend/internal/ingest"
	"github.com/dvergara/Household-Finance-Backend/internal/locale"
	"github.com/dvergara/Household-Finance-Backend/internal/model"
	"github.com/dvergara/Household-Finance-Backend/internal/repository"
	"github.com/dvergara/Household-Finance-Backend/internal/store"
)

// PurchaseService handles purchase mutations. Every mutation persists the
// affected year through the gateway first and only then swaps the in-memory
// copy, so a failed save leaves the working set untouched.
type PurchaseService struct {
	data    *store.Dataset
	gateway repository.PurchaseStore
	// snapshotDir, when set, receives a "{year}.csv" copy of each saved
	// year in the original export layout. Best effort.
	snapshotDir string
	now         func() time.Time
}

// NewPurchaseService creates a new PurchaseService.
func NewPurchaseService(data *store.Dataset, gateway repository.PurchaseStore, snapshotDir string) *PurchaseService {
	return &PurchaseService{
		data:        data,
		gateway:     gateway,
		snapshotDir: snapshotDir,
		now:         time.Now,
	}
}

// Add creates a user purchase. A blank date defaults to January 1st of the
// current year; the record starts out pending.
func (s *PurchaseService) Add(ctx context.Context, req request.CreatePurchaseRequest) (model.PurchaseRecord, error) {
	year := s.now().Year()
	date := req.Date
	if date == "" {
		date = fmt.Sprintf("01/01/%d", year)
	} else {
		parsed, err := locale.ParseDate(date)
		if err != nil {
			return model.PurchaseRecord{}, fmt.Errorf("%w: %s", apperrors.ErrInvalidDate, req.Date)
		}
		year = parsed.Year()
	}

	record := model.PurchaseRecord{
		ID:                   fmt.Sprintf("%d-%d", year, s.now().UnixMilli()),
		Product:              req.Product,
		Date:                 date,
		Store:                req.Store,
		Status:               model.StatusPending,
		Price:                req.Price,
		PriceWithoutDiscount: req.PriceWithoutDiscount,
		Year:                 year,
		Source:               model.SourceUser,
	}
	if record.Store == "" {
		record.Store = model.DefaultStore
	}

	records := append(s.data.PurchasesForYear(year), record)
	if err := s.persist(ctx, year, records); err != nil {
		return model.PurchaseRecord{}, err
	}
	return record, nil
}

// Delete removes a purchase by ID.
func (s *PurchaseService) Delete(ctx context.Context, id string) error {
	record, ok := s.data.FindPurchase(id)
	if !ok {
		return fmt.Errorf("%w: %s", apperrors.ErrPurchaseNotFound, id)
	}

	current := s.data.PurchasesForYear(record.Year)
	records := make([]model.PurchaseRecord, 0, len(current)-1)
	for _, r := range current {
		if r.ID != id {
			records = append(records, r)
		}
	}

	return s.persist(ctx, record.Year, records)
}

// ToggleStatus flips a purchase between pending and received. Orders marked
// as never arrived keep their state.
func (s *PurchaseService) ToggleStatus(ctx context.Context, id string) (model.PurchaseRecord, error) {
	record, ok := s.data.FindPurchase(id)
	if !ok {
		return model.PurchaseRecord{}, fmt.Errorf("%w: %s", apperrors.ErrPurchaseNotFound, id)
	}

	switch record.Status {
	case model.StatusPending:
		record.Status = model.StatusReceived
	case model.StatusReceived:
		record.Status = model.StatusPending
	default:
		return model.PurchaseRecord{}, fmt.Errorf("%w: %s is %q",
			apperrors.ErrStatusNotToggleable, id, record.Status)
	}

	records := s.data.PurchasesForYear(record.Year)
	for i, r := range records {
		if r.ID == id {
			records[i] = record
			break
		}
	}

	if err := s.persist(ctx, record.Year, records); err != nil {
		return model.PurchaseRecord{}, err
	}
	return record, nil
}

func (s *PurchaseService) persist(ctx context.Context, year int, records []model.PurchaseRecord) error {
	if err := s.gateway.Save(ctx, year, records); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrFailedToSavePurchases, err)
	}
	s.data.ReplaceYearPurchases(year, records)
	s.snapshot(year, records)
	return nil
}

// snapshot mirrors a saved year back to the export directory so the CSV
// files stay in sync with the database. Failures are logged, never fatal:
// the database row is already committed.
func (s *PurchaseService) snapshot(year int, records []model.PurchaseRecord) {
	if s.snapshotDir == "" {
		return
	}
	path := filepath.Join(s.snapshotDir, fmt.Sprintf("%d.csv", year))
	if err := os.WriteFile(path, ingest.WritePurchasesCSV(year, records), 0o644); err != nil {
		log.Printf("Failed to snapshot purchases for %d: %v", year, err)
	}
}
