package helpers

import "testing"

func TestCalculateOffsetLimit(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		limit      int
		wantOffset uint64
		wantLimit  int
	}{
		{"first page", 1, 10, 0, 10},
		{"second page covers rows 10-19", 2, 10, 10, 10},
		{"fifth page custom limit", 5, 25, 100, 25},
		{"zero page clamps to first", 0, 10, 0, 10},
		{"negative page clamps to first", -3, 10, 0, 10},
		{"zero limit falls back to default", 3, 0, 2 * DefaultLimit, DefaultLimit},
		{"oversized limit falls back to default", 2, MaxLimit + 1, uint64(DefaultLimit), DefaultLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, limit := CalculateOffsetLimit(tt.page, tt.limit)
			if offset != tt.wantOffset || limit != tt.wantLimit {
				t.Errorf("CalculateOffsetLimit(%d, %d) = (%d, %d), want (%d, %d)",
					tt.page, tt.limit, offset, limit, tt.wantOffset, tt.wantLimit)
			}
		})
	}
}

func TestNewPaginationInfo(t *testing.T) {
	tests := []struct {
		name        string
		total       int64
		page        int
		limit       int
		wantPages   int
		wantNext    bool
		wantPrev    bool
	}{
		{"empty result has zero pages", 0, 1, 10, 0, false, false},
		{"exact multiple", 40, 1, 10, 4, true, false},
		{"partial last page rounds up", 42, 1, 10, 5, true, false},
		{"middle page has both directions", 42, 3, 10, 5, true, true},
		{"last page has no next", 42, 5, 10, 5, false, true},
		{"beyond last page", 42, 9, 10, 5, false, true},
		{"single row", 1, 1, 10, 1, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := NewPaginationInfo(tt.total, tt.page, tt.limit)
			if info.TotalPages != tt.wantPages {
				t.Errorf("TotalPages = %d, want %d", info.TotalPages, tt.wantPages)
			}
			if info.HasNextPage != tt.wantNext {
				t.Errorf("HasNextPage = %v, want %v", info.HasNextPage, tt.wantNext)
			}
			if info.HasPreviousPage != tt.wantPrev {
				t.Errorf("HasPreviousPage = %v, want %v", info.HasPreviousPage, tt.wantPrev)
			}
			if info.Total != tt.total {
				t.Errorf("Total = %d, want %d", info.Total, tt.total)
			}
		})
	}
}
