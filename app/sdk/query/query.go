// Package query provides support for paged query results.
package query

import (
	"encoding/json"

	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/sdk/page"
)

// Result is the data model used when returning a query result.
type Result[T any] struct {
	Items           []T  `json:"items"`
	TotalRecords    int  `json:"totalRecords"`
	TotalPages      int  `json:"totalPages"`
	CurrentPage     int  `json:"currentPage"`
	RecordsPerPage  int  `json:"recordsPerPage"`
	HasNextPage     bool `json:"hasNextPage"`
	HasPreviousPage bool `json:"hasPreviousPage"`
}

// NewResult constructs a result value to return query results. The paging
// metadata is derived on every call from the total record count and the
// resolved page, never stored. An empty result set reports zero total pages.
func NewResult[T any](items []T, total int, page page.Page) Result[T] {
	rows := page.RowsPerPage()
	number := page.Number()

	return Result[T]{
		Items:           items,
		TotalRecords:    total,
		TotalPages:      (total + rows - 1) / rows,
		CurrentPage:     number,
		RecordsPerPage:  rows,
		HasNextPage:     number*rows < total,
		HasPreviousPage: number > 1,
	}
}

// Encode implements the encoder interface.
func (r Result[T]) Encode() ([]byte, string, error) {
	data, err := json.Marshal(r)
	return data, "application/json", err
}
