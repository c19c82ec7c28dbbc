package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dvergara/Household-Finance-Backend/internal/model"
)

// PurchaseStore persists online purchase records grouped by year. Loading a
// year with no stored records returns an empty slice, not an error.
type PurchaseStore interface {
	Save(ctx context.Context, year int, records []model.PurchaseRecord) error
	Load(ctx context.Context, year int) ([]model.PurchaseRecord, error)
	LoadAll(ctx context.Context) (map[int][]model.PurchaseRecord, error)
}

// PurchaseRepository provides data access methods for the purchase table.
// Records keep their slice order through a position column so stored years
// round-trip in file order.
type PurchaseRepository struct {
	db *sql.DB
}

// NewPurchaseRepository creates a new PurchaseRepository with the provided
// database connection.
func NewPurchaseRepository(db *sql.DB) *PurchaseRepository {
	return &PurchaseRepository{db: db}
}

// Save replaces all stored records for the given year in one transaction.
func (s *PurchaseRepository) Save(ctx context.Context, year int, records []model.PurchaseRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM purchase WHERE year = ?`, year); err != nil {
		return fmt.Errorf("failed to clear purchase year %d: %w", year, err)
	}

	insert := `
		INSERT INTO purchase (id, product, date, store, status, price, price_without_discount, year, source, position)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	for i, r := range records {
		_, err := tx.ExecContext(ctx, insert,
			r.ID, r.Product, r.Date, r.Store, string(r.Status),
			r.Price, r.PriceWithoutDiscount, r.Year, string(r.Source), i,
		)
		if err != nil {
			return fmt.Errorf("failed to insert purchase %s: %w", r.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit purchase year %d: %w", year, err)
	}
	return nil
}

// Load retrieves the stored records for one year in their saved order.
func (s *PurchaseRepository) Load(ctx context.Context, year int) ([]model.PurchaseRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, product, date, store, status, price, price_without_discount, year, source
		FROM purchase
		WHERE year = ?
		ORDER BY position ASC
	`, year)
	if err != nil {
		return nil, fmt.Errorf("failed to query purchase table: %w", err)
	}
	defer rows.Close()

	return scanPurchases(rows)
}

// LoadAll retrieves every stored record grouped by year, each year in its
// saved order.
func (s *PurchaseRepository) LoadAll(ctx context.Context) (map[int][]model.PurchaseRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, product, date, store, status, price, price_without_discount, year, source
		FROM purchase
		ORDER BY year ASC, position ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query purchase table: %w", err)
	}
	defer rows.Close()

	records, err := scanPurchases(rows)
	if err != nil {
		return nil, err
	}

	byYear := make(map[int][]model.PurchaseRecord)
	for _, r := range records {
		byYear[r.Year] = append(byYear[r.Year], r)
	}
	return byYear, nil
}

func scanPurchases(rows *sql.Rows) ([]model.PurchaseRecord, error) {
	var records []model.PurchaseRecord
	for rows.Next() {
		var r model.PurchaseRecord
		var status, source string
		err := rows.Scan(
			&r.ID,
			&r.Product,
			&r.Date,
			&r.Store,
			&status,
			&r.Price,
			&r.PriceWithoutDiscount,
			&r.Year,
			&source,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan purchase table results: %w", err)
		}
		r.Status = model.PurchaseStatus(status)
		r.Source = model.PurchaseSource(source)
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating purchase table: %w", err)
	}
	return records, nil
}
