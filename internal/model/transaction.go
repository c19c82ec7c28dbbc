package model

import "time"

// MovementKind classifies a transaction by the sign of its amount.
type MovementKind string

const (
	KindIncome  MovementKind = "income"
	KindExpense MovementKind = "expense"
)

// Transaction represents one normalized bank movement. Instances are created
// once at load time and never mutated; the working set is replaced wholesale
// on reload.
type Transaction struct {
	AccountingDate      time.Time    `json:"accountingDate"`
	ValueDate           *time.Time   `json:"valueDate,omitempty"`
	Description         string       `json:"description"`
	ExtendedDescription string       `json:"extendedDescription,omitempty"`
	Amount              float64      `json:"amount"`
	AbsAmount           float64      `json:"absAmount"`
	Currency            string       `json:"currency"`
	Balance             float64      `json:"balance"` // running account balance after the movement
	Category            string       `json:"category"`
	Subcategory         string       `json:"subcategory,omitempty"`
	Account             string       `json:"account"`
	Kind                MovementKind `json:"kind"`
	Year                int          `json:"year"`
	MonthKey            string       `json:"monthKey"` // "YYYY-MM"
}

// Defaults applied during normalization when the export leaves a field blank.
const (
	DefaultCurrency = "EUR"
	DefaultCategory = "Sin categoría"
	DefaultAccount  = "Sin cuenta"
)

// TransactionFacets lists the distinct values available for populating
// filter controls, plus the span of the loaded data.
type TransactionFacets struct {
	Accounts   []string   `json:"accounts"`
	Categories []string   `json:"categories"`
	MinDate    *time.Time `json:"minDate,omitempty"`
	MaxDate    *time.Time `json:"maxDate,omitempty"`
}
