package candidates

import (
	"fmt"
	"testing"
)

func fakeRecords(n int) []Record {
	records := make([]Record, n)
	for i := range records {
		records[i] = Record{"name": fmt.Sprintf("Candidate %d", i+1)}
	}
	return records
}

func TestParsePage(t *testing.T) {
	testCases := []struct {
		raw  string
		want int
	}{
		{"", 1},
		{"abc", 1},
		{"0", 1},
		{"-4", 1},
		{"1", 1},
		{"7", 7},
		{"3abc", 3},
		{" 2", 2},
	}
	for _, tt := range testCases {
		if got := ParsePage(tt.raw); got != tt.want {
			t.Errorf("expected page [%d] for raw value [%s], got [%d]", tt.want, tt.raw, got)
		}
	}
}

func TestParseLimit(t *testing.T) {
	testCases := []struct {
		raw  string
		want int
	}{
		{"", 50},
		{"xyz", 50},
		{"0", 1},
		{"-10", 1},
		{"1", 1},
		{"10", 10},
		{"200", 200},
		{"201", 200},
		{"5000", 200},
		{"99999999999999999999", 200},
	}
	for _, tt := range testCases {
		if got := ParseLimit(tt.raw); got != tt.want {
			t.Errorf("expected limit [%d] for raw value [%s], got [%d]", tt.want, tt.raw, got)
		}
	}
}

func TestPageThirdOfTwentyFive(t *testing.T) {
	store := NewStore(fakeRecords(25))
	p := store.Page(3, 10)
	if len(p.Data) != 5 {
		t.Errorf("expected 5 records on last page, got %d", len(p.Data))
	}
	if p.Meta.HasNextPage {
		t.Errorf("expected hasNextPage false on last page")
	}
	if !p.Meta.HasPreviousPage {
		t.Errorf("expected hasPreviousPage true on last page")
	}
	if p.Meta.TotalPages != 3 {
		t.Errorf("expected 3 total pages, got %d", p.Meta.TotalPages)
	}
	if p.Data[0]["name"] != "Candidate 21" {
		t.Errorf("expected first record of page 3 to be [Candidate 21], got [%s]", p.Data[0]["name"])
	}
}

func TestPageLength(t *testing.T) {
	for _, total := range []int{0, 1, 7, 50, 199, 200, 201, 1000} {
		store := NewStore(fakeRecords(total))
		for _, limit := range []int{1, 3, 10, 50, 200} {
			for page := 1; page <= total/limit+3; page++ {
				p := store.Page(page, limit)
				want := total - (page-1)*limit
				if want < 0 {
					want = 0
				}
				if want > limit {
					want = limit
				}
				if len(p.Data) != want {
					t.Errorf("total [%d] page [%d] limit [%d]: expected %d records, got %d", total, page, limit, want, len(p.Data))
				}
				wantPages := (total + limit - 1) / limit
				if wantPages < 1 {
					wantPages = 1
				}
				if p.Meta.TotalPages != wantPages {
					t.Errorf("total [%d] limit [%d]: expected %d total pages, got %d", total, limit, wantPages, p.Meta.TotalPages)
				}
			}
		}
	}
}

func TestPageEmptyStore(t *testing.T) {
	p := NewStore(nil).Page(1, 50)
	if p.Data == nil {
		t.Errorf("expected empty non nil data slice")
	}
	if p.Meta.TotalPages != 1 {
		t.Errorf("expected 1 total page for empty store, got %d", p.Meta.TotalPages)
	}
	if p.Meta.HasNextPage || p.Meta.HasPreviousPage {
		t.Errorf("expected no next nor previous page, got %+v", p.Meta)
	}
}

func TestPageOutOfRange(t *testing.T) {
	p := NewStore(fakeRecords(5)).Page(9, 10)
	if len(p.Data) != 0 {
		t.Errorf("expected no records for out of range page, got %d", len(p.Data))
	}
	if p.Meta.Page != 9 {
		t.Errorf("expected page 9 on meta, got %d", p.Meta.Page)
	}
	if !p.Meta.HasPreviousPage || p.Meta.HasNextPage {
		t.Errorf("expected previous page and no next page, got %+v", p.Meta)
	}
}

func TestPageClampsArguments(t *testing.T) {
	p := NewStore(fakeRecords(300)).Page(0, 500)
	if p.Meta.Page != 1 {
		t.Errorf("expected page clamped to 1, got %d", p.Meta.Page)
	}
	if p.Meta.Limit != 200 || len(p.Data) != 200 {
		t.Errorf("expected limit clamped to 200, got limit %d with %d records", p.Meta.Limit, len(p.Data))
	}
}

func TestStoreIsolatedFromSource(t *testing.T) {
	records := fakeRecords(2)
	store := NewStore(records)
	records[0] = Record{"name": "changed"}
	if got := store.Page(1, 1).Data[0]["name"]; got != "Candidate 1" {
		t.Errorf("expected store to keep its own copy, got [%s]", got)
	}
}

func TestReady(t *testing.T) {
	var nilStore *Store
	if nilStore.Ready() {
		t.Errorf("expected nil store not to be ready")
	}
	if (&Store{}).Ready() {
		t.Errorf("expected zero store not to be ready")
	}
	if !NewStore(nil).Ready() {
		t.Errorf("expected built store to be ready")
	}
}
