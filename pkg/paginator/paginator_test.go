package paginator

import "testing"

func TestAdjust(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		q := PaginateQuery{}
		q.Adjust()

		if q.Page != DefaultPage {
			t.Errorf("Page mismatch: got %d, want %d", q.Page, DefaultPage)
		}
		if q.Limit != DefaultLimit {
			t.Errorf("Limit mismatch: got %d, want %d", q.Limit, DefaultLimit)
		}
	})

	t.Run("caps the limit", func(t *testing.T) {
		q := PaginateQuery{Page: 2, Limit: 10000}
		q.Adjust()

		if q.Limit != MaxLimit {
			t.Errorf("Limit mismatch: got %d, want %d", q.Limit, MaxLimit)
		}
		if q.Page != 2 {
			t.Errorf("Page should be kept, got %d", q.Page)
		}
	})

	t.Run("negative values", func(t *testing.T) {
		q := PaginateQuery{Page: -3, Limit: -1}
		q.Adjust()

		if q.Page != DefaultPage || q.Limit != DefaultLimit {
			t.Errorf("Adjust mismatch: page %d limit %d", q.Page, q.Limit)
		}
	})
}

func TestOffset(t *testing.T) {
	q := PaginateQuery{Page: 3, Limit: 20}
	if got := q.Offset(); got != 40 {
		t.Errorf("Offset mismatch: got %d, want 40", got)
	}
}

func TestPaginator(t *testing.T) {
	p := Paginator{Total: 105, Count: 50, PerPage: 50, CurrentPage: 1}

	if got := p.TotalPages(); got != 3 {
		t.Errorf("TotalPages mismatch: got %d, want 3", got)
	}
	if !p.HasNextPage() {
		t.Error("Page 1 of 3 should have a next page")
	}

	p.CurrentPage = 3
	if p.HasNextPage() {
		t.Error("Last page should not have a next page")
	}

	resp := p.ToResponse()
	if resp.TotalPages != 3 || resp.HasNext {
		t.Errorf("Response mismatch: %+v", resp)
	}
}
