// Package order provides support for describing the ordering of data.
package order

import (
	"fmt"
	"strings"
)

// Set of directions for data ordering.
const (
	ASC  = "ASC"
	DESC = "DESC"
)

// By represents a field used to order by and direction. Field always holds a
// value taken from a resource allow-list, never raw client input.
type By struct {
	Field     string
	Direction string
}

// NewBy constructs a new By value with no checks.
func NewBy(field string, direction string) By {
	return By{
		Field:     field,
		Direction: direction,
	}
}

// Parse constructs a By value from the raw sort query parameters. A sort
// field that is absent or not present in the allow-list falls back to the
// default order, a direction other than asc/desc falls back to descending.
// Like paging, sorting input never fails the request.
func Parse(fieldMappings map[string]string, sortBy string, direction string, defaultOrder By) By {
	field, exists := fieldMappings[sortBy]
	if !exists {
		return defaultOrder
	}

	return By{
		Field:     field,
		Direction: parseDirection(direction),
	}
}

// String implements the stringer interface.
func (b By) String() string {
	return fmt.Sprintf("%s,%s", b.Field, b.Direction)
}

// Clause returns an ORDER BY fragment for the By value. The field is safe to
// interpolate because it can only come from an allow-list mapping.
func (b By) Clause() string {
	return fmt.Sprintf(" ORDER BY %s %s", b.Field, b.Direction)
}

func parseDirection(value string) string {
	switch strings.ToUpper(value) {
	case ASC:
		return ASC
	default:
		return DESC
	}
}
