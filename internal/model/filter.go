package model

import "time"

// MovementType selects which transaction kinds a filter keeps.
type MovementType string

const (
	MovementAll     MovementType = "all"
	MovementIncome  MovementType = "income"
	MovementExpense MovementType = "expense"
)

// TransactionFilter is the active query over the transaction set. The zero
// value matches everything. Nil date bounds and empty sets mean "no
// restriction"; a non-empty Accounts or Categories slice is a membership
// test.
type TransactionFilter struct {
	DateFrom   *time.Time
	DateTo     *time.Time // inclusive
	Accounts   []string
	Categories []string
	Movement   MovementType
	Search     string // matched against description, category, subcategory
}

// PurchaseFilter is the active query over the purchase set. Zero values mean
// "no restriction".
type PurchaseFilter struct {
	Store  string
	Status PurchaseStatus
	Year   int
	Search string // matched against product name
}
