package model

// PurchaseStatus is the delivery state of an online order. Values are kept
// exactly as they appear in the source files so records round-trip.
type PurchaseStatus string

const (
	StatusReceived   PurchaseStatus = "Recibido"
	StatusPending    PurchaseStatus = "Pendiente"
	StatusNotArrived PurchaseStatus = "No llegó"
)

// PurchaseSource records where a purchase entered the system.
type PurchaseSource string

const (
	SourceFile PurchaseSource = "file"
	SourceUser PurchaseSource = "user"
)

// DefaultStore is used when the export leaves the store column blank.
const DefaultStore = "Sin tienda"

// PurchaseRecord represents one online order line. Records from files carry
// a "{year}-{sequence}" ID; user-added records use "{year}-{timestamp}".
// Unlike transactions, purchases are mutated in place (status toggles) and
// can be added or deleted at runtime.
type PurchaseRecord struct {
	ID                   string         `json:"id"`
	Product              string         `json:"product"`
	Date                 string         `json:"date"` // DD/MM/YYYY
	Store                string         `json:"store"`
	Status               PurchaseStatus `json:"status"`
	Price                float64        `json:"price"`
	PriceWithoutDiscount float64        `json:"priceWithoutDiscount"` // 0 when unknown
	Year                 int            `json:"year"`
	Source               PurchaseSource `json:"source"`
}

// Discount returns the saving against the undiscounted price, or 0 when the
// undiscounted price is unknown.
func (p PurchaseRecord) Discount() float64 {
	if p.PriceWithoutDiscount > p.Price {
		return p.PriceWithoutDiscount - p.Price
	}
	return 0
}

// PurchaseFacets lists the distinct values available for purchase filter
// controls.
type PurchaseFacets struct {
	Stores   []string         `json:"stores"`
	Years    []int            `json:"years"`
	Statuses []PurchaseStatus `json:"statuses"`
}
