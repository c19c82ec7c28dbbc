package request

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dvergara/Household-Finance-Backend/internal/apperrors"
	"github.com/dvergara/Household-Finance-Backend/internal/model"
)

// ParseTransactionFilter extracts a transaction filter from query
// parameters. All parameters are optional; an absent parameter leaves its
// criterion unrestricted.
//
// Recognized parameters:
//   - from, to: inclusive date bounds in YYYY-MM-DD format
//   - account: repeatable, exact account names
//   - category: repeatable, exact category names
//   - type: "all", "income" or "expense" (defaults to "all")
//   - q: free-text search
func ParseTransactionFilter(query url.Values) (model.TransactionFilter, error) {
	filter := model.TransactionFilter{
		Accounts:   cleanValues(query["account"]),
		Categories: cleanValues(query["category"]),
		Movement:   model.MovementAll,
		Search:     strings.TrimSpace(query.Get("q")),
	}

	if raw := query.Get("from"); raw != "" {
		from, err := parseFilterDate(raw)
		if err != nil {
			return filter, fmt.Errorf("invalid from date: %w", err)
		}
		filter.DateFrom = &from
	}
	if raw := query.Get("to"); raw != "" {
		to, err := parseFilterDate(raw)
		if err != nil {
			return filter, fmt.Errorf("invalid to date: %w", err)
		}
		filter.DateTo = &to
	}

	if raw := query.Get("type"); raw != "" {
		movement := model.MovementType(strings.ToLower(raw))
		switch movement {
		case model.MovementAll, model.MovementIncome, model.MovementExpense:
			filter.Movement = movement
		default:
			return filter, fmt.Errorf("%w: %s", apperrors.ErrInvalidMovementType, raw)
		}
	}

	return filter, nil
}

// ParsePurchaseFilter extracts a purchase filter from query parameters.
//
// Recognized parameters:
//   - store: exact store name (case-insensitive)
//   - status: delivery status, as stored
//   - year: purchase year
//   - q: free-text search
func ParsePurchaseFilter(query url.Values) (model.PurchaseFilter, error) {
	filter := model.PurchaseFilter{
		Store:  strings.TrimSpace(query.Get("store")),
		Status: model.PurchaseStatus(strings.TrimSpace(query.Get("status"))),
		Search: strings.TrimSpace(query.Get("q")),
	}

	if raw := query.Get("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			return filter, fmt.Errorf("invalid year: %s", raw)
		}
		filter.Year = year
	}

	return filter, nil
}

func parseFilterDate(raw string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("cannot parse %q as a date", raw)
	}
	return t.UTC(), nil
}

func cleanValues(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
