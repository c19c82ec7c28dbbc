package validation

import (
	"strings"

	"github.com/dvergara/Household-Finance-Backend/internal/api/request"
	"github.com/dvergara/Household-Finance-Backend/internal/locale"
)

// ValidateCreatePurchase validates a purchase creation request.
//
// Required fields:
//   - product: must be non-blank
//   - price: must be positive
//
// Optional fields (validated if provided):
//   - date: must be DD/MM/YYYY if provided; the service fills a default
//     otherwise
//   - priceWithoutDiscount: must not undercut the paid price
//
// Returns a validation Error with field-specific error messages if
// validation fails.
func ValidateCreatePurchase(req request.CreatePurchaseRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Product) == "" {
		errors["product"] = "product is required"
	}

	if req.Price <= 0 {
		errors["price"] = "price must be positive"
	}

	if req.Date != "" {
		if _, err := locale.ParseDate(req.Date); err != nil {
			errors["date"] = "date must be DD/MM/YYYY"
		}
	}

	if req.PriceWithoutDiscount != 0 {
		if req.PriceWithoutDiscount < 0 {
			errors["priceWithoutDiscount"] = "priceWithoutDiscount must be positive"
		} else if req.PriceWithoutDiscount < req.Price {
			errors["priceWithoutDiscount"] = "priceWithoutDiscount cannot be below price"
		}
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
