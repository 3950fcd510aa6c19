// Package page provides support for query paging.
package page

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Paging defaults and bounds applied to every list endpoint.
const (
	DefaultNumber = 1
	DefaultRows   = 10
	MaxRows       = 100
)

// Page represents the requested page and rows per page.
type Page struct {
	number int
	rows   int
}

// Parse creates a paging value based on the raw query parameters. Parsing is
// permissive on purpose: paging input is display-only, so malformed values
// degrade to defaults and out-of-range row counts are clamped into
// [1, MaxRows] instead of failing the request.
func Parse(page string, rowsPerPage string) Page {
	number := DefaultNumber
	if n, err := strconv.Atoi(page); err == nil && n >= 1 {
		number = n
	}

	rows := DefaultRows
	if n, err := strconv.Atoi(rowsPerPage); err == nil {
		switch {
		case n < 1:
			rows = 1
		case n > MaxRows:
			rows = MaxRows
		default:
			rows = n
		}
	}

	return Page{
		number: number,
		rows:   rows,
	}
}

// String implements the stringer interface.
func (p Page) String() string {
	return fmt.Sprintf("page: %d rows: %d", p.number, p.rows)
}

// Number returns the page number.
func (p Page) Number() int {
	return p.number
}

// RowsPerPage returns the rows per page.
func (p Page) RowsPerPage() int {
	return p.rows
}

// Offset returns the number of rows to skip to reach the requested page.
func (p Page) Offset() int {
	return (p.number - 1) * p.rows
}

// MarshalJSON provides support for marshalling a page for logging.
func (p Page) MarshalJSON() ([]byte, error) {
	doc := struct {
		Number int `json:"number"`
		Rows   int `json:"rows"`
	}{
		Number: p.number,
		Rows:   p.rows,
	}

	return json.Marshal(doc)
}
