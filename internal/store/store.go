// Package store holds the in-memory working set the API serves from.
// Datasets are replaced wholesale on load; purchase years can additionally
// be swapped one at a time after a mutation.
package store

import (
	"sort"
	"sync"

	"github.com/dvergara/Household-Finance-Backend/internal/model"
)

// Dataset is the shared working set. All accessors copy, so callers can
// never mutate the held slices; a sync.RWMutex keeps readers concurrent.
type Dataset struct {
	mu           sync.RWMutex
	transactions []model.Transaction
	vacations    []model.VacationEntry
	purchases    map[int][]model.PurchaseRecord
}

// NewDataset creates an empty working set.
func NewDataset() *Dataset {
	return &Dataset{purchases: make(map[int][]model.PurchaseRecord)}
}

// SetTransactions replaces the transaction set.
func (d *Dataset) SetTransactions(records []model.Transaction) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.transactions = copySlice(records)
}

// Transactions returns a copy of the transaction set in load order
// (newest first).
func (d *Dataset) Transactions() []model.Transaction {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return copySlice(d.transactions)
}

// SetVacations replaces the vacation set.
func (d *Dataset) SetVacations(entries []model.VacationEntry) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.vacations = copySlice(entries)
}

// Vacations returns a copy of the vacation set.
func (d *Dataset) Vacations() []model.VacationEntry {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return copySlice(d.vacations)
}

// SetPurchases replaces the whole purchase set.
func (d *Dataset) SetPurchases(byYear map[int][]model.PurchaseRecord) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.purchases = make(map[int][]model.PurchaseRecord, len(byYear))
	for year, records := range byYear {
		d.purchases[year] = copySlice(records)
	}
}

// ReplaceYearPurchases swaps a single year's records.
func (d *Dataset) ReplaceYearPurchases(year int, records []model.PurchaseRecord) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(records) == 0 {
		delete(d.purchases, year)
		return
	}
	d.purchases[year] = copySlice(records)
}

// Purchases returns a copy of every purchase record, ordered by year
// ascending and file order within each year.
func (d *Dataset) Purchases() []model.PurchaseRecord {
	d.mu.RLock()
	defer d.mu.RUnlock()

	years := make([]int, 0, len(d.purchases))
	for year := range d.purchases {
		years = append(years, year)
	}
	sort.Ints(years)

	var out []model.PurchaseRecord
	for _, year := range years {
		out = append(out, d.purchases[year]...)
	}
	return out
}

// PurchasesForYear returns a copy of one year's records in file order.
func (d *Dataset) PurchasesForYear(year int) []model.PurchaseRecord {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return copySlice(d.purchases[year])
}

// FindPurchase locates a record by ID.
func (d *Dataset) FindPurchase(id string) (model.PurchaseRecord, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, records := range d.purchases {
		for _, r := range records {
			if r.ID == id {
				return r, true
			}
		}
	}
	return model.PurchaseRecord{}, false
}

func copySlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}
