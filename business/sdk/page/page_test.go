package page_test

import (
	"testing"

	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/sdk/page"
	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name       string
		page       string
		rows       string
		wantNumber int
		wantRows   int
		wantOffset int
	}{
		{"defaults", "", "", 1, 10, 0},
		{"valid", "3", "25", 3, 25, 50},
		{"zero page clamps and rows clamp high", "0", "500", 1, 100, 0},
		{"non numeric falls back", "abc", "xyz", 1, 10, 0},
		{"negative page", "-4", "10", 1, 10, 0},
		{"rows clamp low", "2", "0", 2, 1, 1},
		{"rows clamp low negative", "1", "-7", 1, 1, 0},
		{"rows at max boundary", "1", "100", 1, 100, 0},
		{"float rejected", "1.5", "10.9", 1, 10, 0},
		{"whitespace rejected", " 2", "10 ", 1, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := page.Parse(tt.page, tt.rows)

			assert.Equal(t, tt.wantNumber, p.Number())
			assert.Equal(t, tt.wantRows, p.RowsPerPage())
			assert.Equal(t, tt.wantOffset, p.Offset())
		})
	}
}

// Parsing the same input twice must yield the same directive, and the rows
// bound must hold for any input.
func TestParseBounds(t *testing.T) {
	inputs := []string{"", "0", "-1", "1", "50", "100", "101", "99999", "x", "12abc"}

	for _, pg := range inputs {
		for _, rows := range inputs {
			a := page.Parse(pg, rows)
			b := page.Parse(pg, rows)

			assert.Equal(t, a, b)
			assert.GreaterOrEqual(t, a.RowsPerPage(), 1)
			assert.LessOrEqual(t, a.RowsPerPage(), page.MaxRows)
			assert.GreaterOrEqual(t, a.Number(), 1)
			assert.Equal(t, (a.Number()-1)*a.RowsPerPage(), a.Offset())
		}
	}
}
