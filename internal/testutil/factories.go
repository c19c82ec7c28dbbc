package testutil

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dvergara/Household-Finance-Backend/internal/model"
)

// TransactionBuilder provides a fluent interface for creating test
// transactions.
//
// Example usage:
//
//	// Simple creation with defaults
//	tx := testutil.NewTransaction().Build()
//
//	// Customized transaction
//	tx := testutil.NewTransaction().
//	    WithDate(2024, 3, 15).
//	    WithAmount(-85.30).
//	    WithCategory("Supermercado").
//	    Build()
type TransactionBuilder struct {
	date        time.Time
	description string
	amount      float64
	balance     float64
	category    string
	subcategory string
	account     string
}

// NewTransaction creates a TransactionBuilder with sensible defaults.
func NewTransaction() *TransactionBuilder {
	return &TransactionBuilder{
		date:        time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		description: "Test movement",
		amount:      -50,
		category:    model.DefaultCategory,
		account:     model.DefaultAccount,
	}
}

// WithDate sets the accounting date.
func (b *TransactionBuilder) WithDate(year, month, day int) *TransactionBuilder {
	b.date = time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return b
}

// WithDescription sets the movement description.
func (b *TransactionBuilder) WithDescription(description string) *TransactionBuilder {
	b.description = description
	return b
}

// WithAmount sets the signed amount; the sign decides the movement kind.
func (b *TransactionBuilder) WithAmount(amount float64) *TransactionBuilder {
	b.amount = amount
	return b
}

// WithBalance sets the running balance after the movement.
func (b *TransactionBuilder) WithBalance(balance float64) *TransactionBuilder {
	b.balance = balance
	return b
}

// WithCategory sets the category.
func (b *TransactionBuilder) WithCategory(category string) *TransactionBuilder {
	b.category = category
	return b
}

// WithSubcategory sets the subcategory.
func (b *TransactionBuilder) WithSubcategory(subcategory string) *TransactionBuilder {
	b.subcategory = subcategory
	return b
}

// WithAccount sets the account.
func (b *TransactionBuilder) WithAccount(account string) *TransactionBuilder {
	b.account = account
	return b
}

// Build produces the transaction with derived fields filled in.
func (b *TransactionBuilder) Build() model.Transaction {
	tx := model.Transaction{
		AccountingDate: b.date,
		Description:    b.description,
		Amount:         b.amount,
		AbsAmount:      b.amount,
		Currency:       model.DefaultCurrency,
		Balance:        b.balance,
		Category:       b.category,
		Subcategory:    b.subcategory,
		Account:        b.account,
		Kind:           model.KindIncome,
		Year:           b.date.Year(),
		MonthKey:       b.date.Format("2006-01"),
	}
	if b.amount < 0 {
		tx.AbsAmount = -b.amount
		tx.Kind = model.KindExpense
	}
	return tx
}

// PurchaseBuilder provides a fluent interface for creating test purchases.
type PurchaseBuilder struct {
	id                   string
	product              string
	date                 string
	store                string
	status               model.PurchaseStatus
	price                float64
	priceWithoutDiscount float64
	year                 int
	source               model.PurchaseSource
}

// NewPurchase creates a PurchaseBuilder with sensible defaults.
func NewPurchase() *PurchaseBuilder {
	return &PurchaseBuilder{
		id:      MakeID(),
		product: "Test product",
		date:    "15/01/2024",
		store:   "Amazon",
		status:  model.StatusReceived,
		price:   25,
		year:    2024,
		source:  model.SourceFile,
	}
}

// WithID sets a custom ID.
func (b *PurchaseBuilder) WithID(id string) *PurchaseBuilder {
	b.id = id
	return b
}

// WithProduct sets the product name.
func (b *PurchaseBuilder) WithProduct(product string) *PurchaseBuilder {
	b.product = product
	return b
}

// WithDate sets the purchase date in DD/MM/YYYY form.
func (b *PurchaseBuilder) WithDate(date string) *PurchaseBuilder {
	b.date = date
	return b
}

// WithStore sets the store.
func (b *PurchaseBuilder) WithStore(store string) *PurchaseBuilder {
	b.store = store
	return b
}

// WithStatus sets the delivery status.
func (b *PurchaseBuilder) WithStatus(status model.PurchaseStatus) *PurchaseBuilder {
	b.status = status
	return b
}

// WithPrice sets the paid price.
func (b *PurchaseBuilder) WithPrice(price float64) *PurchaseBuilder {
	b.price = price
	return b
}

// WithPriceWithoutDiscount sets the undiscounted price.
func (b *PurchaseBuilder) WithPriceWithoutDiscount(price float64) *PurchaseBuilder {
	b.priceWithoutDiscount = price
	return b
}

// WithYear sets the purchase year.
func (b *PurchaseBuilder) WithYear(year int) *PurchaseBuilder {
	b.year = year
	return b
}

// FromUser marks the purchase as user-created.
func (b *PurchaseBuilder) FromUser() *PurchaseBuilder {
	b.source = model.SourceUser
	return b
}

// Build produces the purchase record.
func (b *PurchaseBuilder) Build() model.PurchaseRecord {
	return model.PurchaseRecord{
		ID:                   b.id,
		Product:              b.product,
		Date:                 b.date,
		Store:                b.store,
		Status:               b.status,
		Price:                b.price,
		PriceWithoutDiscount: b.priceWithoutDiscount,
		Year:                 b.year,
		Source:               b.source,
	}
}

// MakeID generates a UUID string for use in tests.
func MakeID() string {
	return uuid.New().String()
}

// MakeYearID generates a file-style "{year}-{sequence}" purchase ID.
func MakeYearID(year, sequence int) string {
	return fmt.Sprintf("%d-%d", year, sequence)
}
