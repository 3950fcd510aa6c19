package query_test

import (
	"testing"

	"github.com/Grete-Solutions/school-system-backend-v1-sub000/app/sdk/query"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/sdk/page"
	"github.com/stretchr/testify/assert"
)

func TestNewResult(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		page     string
		rows     string
		wantTP   int
		wantCP   int
		wantRPP  int
		wantNext bool
		wantPrev bool
	}{
		{"last page of three", 25, "3", "10", 3, 3, 10, false, true},
		{"first page of three", 25, "1", "10", 3, 1, 10, true, false},
		{"middle page", 25, "2", "10", 3, 2, 10, true, true},
		{"exact fit", 20, "2", "10", 2, 2, 10, false, true},
		{"single page", 5, "1", "10", 1, 1, 10, false, false},
		// A zero total reports zero total pages. The count formula is plain
		// ceiling division applied uniformly, there is no floor of one.
		{"empty result", 0, "1", "10", 0, 1, 10, false, false},
		{"page past the end", 2, "9", "10", 1, 9, 10, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := make([]string, 0)
			r := query.NewResult(items, tt.total, page.Parse(tt.page, tt.rows))

			assert.Equal(t, tt.total, r.TotalRecords)
			assert.Equal(t, tt.wantTP, r.TotalPages)
			assert.Equal(t, tt.wantCP, r.CurrentPage)
			assert.Equal(t, tt.wantRPP, r.RecordsPerPage)
			assert.Equal(t, tt.wantNext, r.HasNextPage)
			assert.Equal(t, tt.wantPrev, r.HasPreviousPage)
		})
	}
}
