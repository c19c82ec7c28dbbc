// Package service holds the business logic between the HTTP handlers and
// the ingestion, storage and analytics layers.
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dvergara/Household-Finance-Backend/internal/apperrors"
	"github.com/dvergara/Household-Finance-Backend/internal/ingest"
	"github.com/dvergara/Household-Finance-Backend/internal/model"
	"github.com/dvergara/Household-Finance-Backend/internal/repository"
	"github.com/dvergara/Household-Finance-Backend/internal/store"
)

// DatasetService loads the three datasets into the shared working set. The
// transaction export is required; vacations and purchases are optional.
type DatasetService struct {
	data           *store.Dataset
	dataSource     ingest.Source
	purchaseSource ingest.Source
	gateway        repository.PurchaseStore
	firstYear      int
	now            func() time.Time
}

// NewDatasetService creates a new DatasetService. dataSource serves the
// transaction and vacation exports, purchaseSource the per-year purchase
// files; firstYear bounds the purchase year scan.
func NewDatasetService(
	data *store.Dataset,
	dataSource ingest.Source,
	purchaseSource ingest.Source,
	gateway repository.PurchaseStore,
	firstYear int,
) *DatasetService {
	return &DatasetService{
		data:           data,
		dataSource:     dataSource,
		purchaseSource: purchaseSource,
		gateway:        gateway,
		firstYear:      firstYear,
		now:            time.Now,
	}
}

// LoadAll populates the working set from scratch. The three datasets load
// concurrently; a transaction failure aborts the load, while vacation and
// purchase problems only log.
func (s *DatasetService) LoadAll(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	var noInput error
	g.Go(func() error {
		err := s.loadTransactions(ctx)
		if errors.Is(err, apperrors.ErrNoUsableInput) {
			// The other datasets still load; the caller decides whether an
			// empty transaction set is acceptable.
			noInput = err
			return nil
		}
		return err
	})
	g.Go(func() error { return s.loadVacations(ctx) })
	g.Go(func() error { return s.loadPurchases(ctx) })

	if err := g.Wait(); err != nil {
		return err
	}
	return noInput
}

// Reload refreshes the working set in place. Serving continues from the old
// data until each dataset is swapped.
func (s *DatasetService) Reload(ctx context.Context) {
	if err := s.LoadAll(ctx); err != nil {
		log.Printf("Dataset reload failed: %v", err)
		return
	}
	log.Printf("Dataset reloaded: %d transactions, %d purchases",
		len(s.data.Transactions()), len(s.data.Purchases()))
}

// Years lists the purchase years in scope, first configured year through
// the current one.
func (s *DatasetService) Years() []int {
	current := s.now().Year()
	years := make([]int, 0, current-s.firstYear+1)
	for y := s.firstYear; y <= current; y++ {
		years = append(years, y)
	}
	return years
}

func (s *DatasetService) loadTransactions(ctx context.Context) error {
	records, file, err := ingest.LoadTransactions(ctx, s.dataSource)
	if err != nil {
		return fmt.Errorf("%w: %w", apperrors.ErrFailedToLoadDataset, err)
	}
	s.data.SetTransactions(records)
	log.Printf("Loaded %d transactions from %s", len(records), file)
	return nil
}

func (s *DatasetService) loadVacations(ctx context.Context) error {
	data, err := s.dataSource.ReadFile(ctx, ingest.VacationsFile)
	if err != nil {
		if !ingest.IsNotExist(err) {
			log.Printf("Vacations file unreadable: %v", err)
		}
		s.data.SetVacations(nil)
		return nil
	}

	entries, err := ingest.ParseVacations(data)
	if err != nil {
		log.Printf("Vacations file unparseable: %v", err)
		s.data.SetVacations(nil)
		return nil
	}

	s.data.SetVacations(entries)
	log.Printf("Loaded %d vacation entries", len(entries))
	return nil
}

// loadPurchases prefers the database copy of each year and falls back to
// the CSV export for years never saved.
func (s *DatasetService) loadPurchases(ctx context.Context) error {
	byYear := make(map[int][]model.PurchaseRecord)

	stored, err := s.gateway.LoadAll(ctx)
	if err != nil {
		err = fmt.Errorf("%w: %v", apperrors.ErrFailedToRetrievePurchases, err)
		log.Printf("Falling back to files only: %v", err)
		stored = nil
	}

	var fromFiles []int
	for _, year := range s.Years() {
		if records := stored[year]; len(records) > 0 {
			byYear[year] = records
			continue
		}
		fromFiles = append(fromFiles, year)
	}

	records, report := ingest.LoadPurchases(ctx, s.purchaseSource, fromFiles)
	for _, r := range records {
		byYear[r.Year] = append(byYear[r.Year], r)
	}
	if failed := report.FailedYears(); len(failed) > 0 {
		log.Printf("Purchase load %s: years %v failed", report.RunID, failed)
	}

	s.data.SetPurchases(byYear)
	log.Printf("Loaded purchases for %d years (%d from files)", len(byYear), report.Files)
	return nil
}
