// Package resolver locates the header row in a loosely structured grid of
// cells and maps semantic fields to column indices. The same routine serves
// every ingestion path; each caller supplies a Schema describing the tokens
// it expects.
package resolver

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/dvergara/Household-Finance-Backend/internal/apperrors"
)

// defaultMaxScan bounds the header search window.
const defaultMaxScan = 10

// Field describes one semantic field to locate in the header row.
type Field struct {
	// Name keys the resolved column index in the Mapping.
	Name string
	// Tokens are the normalized header texts that identify the column.
	Tokens []string
	// Substring matches tokens anywhere inside the header cell instead of
	// requiring cell equality. Used for untrusted formats whose headers
	// drift ("Destino", "Destinos", "destino del viaje").
	Substring bool
	// Fallback is the column index assumed when no token matches, for
	// formats with a known positional layout. -1 means no fallback; the
	// field resolves to -1 and callers use a default value downstream.
	Fallback int
}

// Schema parameterizes header detection for one file format.
type Schema struct {
	// Required tokens must all appear somewhere in a row for it to qualify
	// as the header row.
	Required []string
	// AnyOf requires at least one of these tokens to also appear, when
	// non-empty.
	AnyOf []string
	// Fields are the columns to resolve once the header row is found.
	Fields []Field
	// MaxScan bounds how many leading rows are examined; 0 means the
	// default window of 10.
	MaxScan int
}

// Mapping is the result of resolving a Schema against a grid: the header row
// index and one column index per field (-1 when absent).
type Mapping struct {
	HeaderRow int
	Columns   map[string]int
}

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lowercases, trims, and strips diacritics from a header cell so
// that "Año" and "ano" compare equal.
func Normalize(cell string) string {
	stripped, _, err := transform.String(stripMarks, cell)
	if err != nil {
		stripped = cell
	}
	return strings.ToLower(strings.TrimSpace(stripped))
}

// Resolve scans the leading rows of a grid for the header row described by
// the schema and builds the field-to-column mapping. It returns
// apperrors.ErrNoHeaderRow when no row in the window qualifies; the caller
// treats the whole file as unparseable and skips it.
func Resolve(rows [][]string, schema Schema) (*Mapping, error) {
	if len(rows) == 0 {
		return nil, apperrors.ErrEmptyFile
	}

	maxScan := schema.MaxScan
	if maxScan <= 0 {
		maxScan = defaultMaxScan
	}
	if maxScan > len(rows) {
		maxScan = len(rows)
	}

	for i := 0; i < maxScan; i++ {
		normalized := make([]string, len(rows[i]))
		for j, cell := range rows[i] {
			normalized[j] = Normalize(cell)
		}
		if !qualifies(normalized, schema) {
			continue
		}

		mapping := &Mapping{HeaderRow: i, Columns: make(map[string]int, len(schema.Fields))}
		for _, field := range schema.Fields {
			mapping.Columns[field.Name] = locate(normalized, field)
		}
		return mapping, nil
	}

	return nil, fmt.Errorf("%w: scanned %d rows", apperrors.ErrNoHeaderRow, maxScan)
}

// Value extracts the trimmed cell for a resolved field from a data row.
// Unmapped fields and short rows yield "".
func (m *Mapping) Value(row []string, field string) string {
	col, ok := m.Columns[field]
	if !ok || col < 0 || col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}

func qualifies(cells []string, schema Schema) bool {
	for _, token := range schema.Required {
		if !containsCell(cells, token) {
			return false
		}
	}
	if len(schema.AnyOf) == 0 {
		return true
	}
	for _, token := range schema.AnyOf {
		if containsCell(cells, token) {
			return true
		}
	}
	return false
}

func containsCell(cells []string, token string) bool {
	for _, cell := range cells {
		if cell == token {
			return true
		}
	}
	return false
}

func locate(cells []string, field Field) int {
	for i, cell := range cells {
		for _, token := range field.Tokens {
			if cell == token || (field.Substring && cell != "" && strings.Contains(cell, token)) {
				return i
			}
		}
	}
	if field.Fallback >= 0 && field.Fallback < len(cells) {
		return field.Fallback
	}
	return -1
}
