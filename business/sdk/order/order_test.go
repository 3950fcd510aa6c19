package order_test

import (
	"testing"

	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/sdk/order"
	"github.com/stretchr/testify/assert"
)

var fields = map[string]string{
	"name":    "name",
	"created": "created_at",
}

var defaultOrder = order.NewBy("created_at", order.DESC)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		sortBy    string
		direction string
		want      order.By
	}{
		{"allowed field asc", "name", "asc", order.NewBy("name", order.ASC)},
		{"allowed field upper asc", "name", "ASC", order.NewBy("name", order.ASC)},
		{"allowed field desc", "name", "desc", order.NewBy("name", order.DESC)},
		{"allowed field maps to column", "created", "asc", order.NewBy("created_at", order.ASC)},
		{"empty sort falls back", "", "asc", defaultOrder},
		{"unknown field falls back with default direction", "secret_internal_field", "asc", defaultOrder},
		{"bad direction becomes desc", "name", "sideways", order.NewBy("name", order.DESC)},
		{"empty direction becomes desc", "name", "", order.NewBy("name", order.DESC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := order.Parse(fields, tt.sortBy, tt.direction, defaultOrder)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClause(t *testing.T) {
	by := order.NewBy("created_at", order.DESC)
	assert.Equal(t, " ORDER BY created_at DESC", by.Clause())
}
