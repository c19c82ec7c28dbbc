package request

type CreatePurchaseRequest struct {
	Product              string  `json:"product"`
	Date                 string  `json:"date"` // DD/MM/YYYY
	Store                string  `json:"store"`
	Price                float64 `json:"price"`
	PriceWithoutDiscount float64 `json:"priceWithoutDiscount"`
}
