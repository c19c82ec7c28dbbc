// Package locale converts the Spanish-locale tokens found in the source
// exports (currency strings like "1.406,52 €", dates like "31/12/2024") into
// numeric and temporal values.
package locale

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// ParseAmount converts a currency string to a float64. Currency symbols,
// whitespace and quotes are stripped. When the cleaned text contains a
// decimal comma the string is treated as European format: thousands periods
// are removed and the comma becomes the decimal point. Anything unparseable
// yields 0 rather than an error; the source files are user-maintained and
// partially malformed, and a dropped-to-zero amount filters the row out
// downstream.
func ParseAmount(raw string) float64 {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) || r == ',' || r == '.' || r == '-' {
			return r
		}
		return -1
	}, raw)

	if cleaned == "" {
		return 0
	}

	if strings.Contains(cleaned, ",") {
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	}

	val, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return val
}

// ParseDate parses a DD/MM/YYYY date. Any other shape is an error rather
// than a guess; callers drop the row.
func ParseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	parts := strings.Split(raw, "/")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("not a DD/MM/YYYY date: %q", raw)
	}

	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day in %q: %w", raw, err)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month in %q: %w", raw, err)
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid year in %q: %w", raw, err)
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes out-of-range components (32/01 becomes 01/02);
	// reject those instead of silently rolling over.
	if t.Day() != day || t.Month() != time.Month(month) || t.Year() != year {
		return time.Time{}, fmt.Errorf("impossible date: %q", raw)
	}
	return t, nil
}

// FormatDate renders a date back into the DD/MM/YYYY shape used by the
// export files.
func FormatDate(t time.Time) string {
	return t.Format("02/01/2006")
}

// YearMonthKey returns the "YYYY-MM" bucket key for a date.
func YearMonthKey(t time.Time) string {
	return fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month()))
}
