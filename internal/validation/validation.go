// Package validation checks incoming requests before they reach the service
// layer. Failures carry per-field messages so the API can report every
// problem at once.
package validation

import (
	"fmt"
	"time"
)

// Common validation errors
var (
	ErrInvalidDateRange = fmt.Errorf("invalid date range")
)

// ValidateDateRange checks that an inclusive date range is well ordered.
// Nil bounds are open ends and always valid.
func ValidateDateRange(from, to *time.Time) error {
	if from != nil && to != nil && from.After(*to) {
		return fmt.Errorf("%w: from %s is after to %s",
			ErrInvalidDateRange, from.Format("2006-01-02"), to.Format("2006-01-02"))
	}
	return nil
}
