package types

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type row struct {
	Name   string
	Points int
}

func testColumns() []Column[row] {
	return []Column[row]{
		{
			Key:     "name",
			Header:  "Name",
			Value:   func(r row) any { return r.Name },
			Compare: func(a, b row) int { return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)) },
		},
		{
			Key:    "points",
			Header: "Points",
			Value:  func(r row) any { return r.Points },
			Render: func(r row) string { return strings.Repeat("*", r.Points) },
		},
	}
}

func TestParseSortSpec(t *testing.T) {
	cases := []struct {
		in   string
		want SortSpec
		err  bool
	}{
		{"", SortSpec{}, false},
		{"name", SortSpec{Key: "name", Direction: SortAsc}, false},
		{"points:desc", SortSpec{Key: "points", Direction: SortDesc}, false},
		{"points:DESC", SortSpec{Key: "points", Direction: SortDesc}, false},
		{"points:sideways", SortSpec{}, true},
		{":asc", SortSpec{}, true},
	}
	for _, tc := range cases {
		got, err := ParseSortSpec(tc.in)
		if tc.err {
			if !errors.Is(err, ErrInvalidSortKey) {
				t.Fatalf("%q: expected ErrInvalidSortKey, got %v", tc.in, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%q: unexpected error %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("%q: got %+v, want %+v", tc.in, got, tc.want)
		}
	}
}

func TestSortRows(t *testing.T) {
	rows := []row{{"bob", 3}, {"Alice", 1}, {"carol", 3}, {"alice", 2}}
	cols := testColumns()

	byName, err := SortRows(rows, cols, SortSpec{Key: "name", Direction: SortAsc})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []row{{"Alice", 1}, {"alice", 2}, {"bob", 3}, {"carol", 3}}
	if diff := cmp.Diff(want, byName); diff != "" {
		t.Fatalf("custom comparator (-want +got):\n%s", diff)
	}

	byPoints, err := SortRows(rows, cols, SortSpec{Key: "points", Direction: SortDesc})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want = []row{{"bob", 3}, {"carol", 3}, {"alice", 2}, {"Alice", 1}}
	if diff := cmp.Diff(want, byPoints); diff != "" {
		t.Fatalf("default comparator, stable desc (-want +got):\n%s", diff)
	}

	if rows[0].Name != "bob" {
		t.Fatalf("input was mutated")
	}

	if _, err := SortRows(rows, cols, SortSpec{Key: "missing"}); !errors.Is(err, ErrInvalidSortKey) {
		t.Fatalf("expected ErrInvalidSortKey, got %v", err)
	}
}

func TestColumnCell(t *testing.T) {
	cols := testColumns()
	r := row{"Ann", 2}
	if got := cols[0].Cell(r); got != "Ann" {
		t.Fatalf("default render: got %q", got)
	}
	if got := cols[1].Cell(r); got != "**" {
		t.Fatalf("custom render: got %q", got)
	}
}

func TestPaginate(t *testing.T) {
	rows := []int{1, 2, 3, 4, 5, 6, 7}
	if diff := cmp.Diff([]int{4, 5, 6}, Paginate(rows, 2, 3)); diff != "" {
		t.Fatalf("page 2 (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{7}, Paginate(rows, 3, 3)); diff != "" {
		t.Fatalf("last page (-want +got):\n%s", diff)
	}
	if got := Paginate(rows, 9, 3); len(got) != 0 {
		t.Fatalf("out of range page: got %v", got)
	}
	if got := Paginate(rows, 0, 0); len(got) != 7 {
		t.Fatalf("defaults: got %v", got)
	}
	if got := PageCount(7, 3); got != 3 {
		t.Fatalf("PageCount = %d", got)
	}
	if !ValidPageSize(25) || ValidPageSize(7) {
		t.Fatalf("unexpected ValidPageSize result")
	}
}

func TestVisibleColumns(t *testing.T) {
	cols := append(testColumns(), Column[row]{Key: "hidden", Value: func(r row) any { return r.Points }, Hidden: true})

	var keys []string
	for _, c := range VisibleColumns(cols) {
		keys = append(keys, c.Key)
	}
	if diff := cmp.Diff([]string{"name", "points"}, keys); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}

	rows := []row{{"a", 2}, {"b", 1}}
	sorted, err := SortRows(rows, cols, SortSpec{Key: "hidden", Direction: SortAsc})
	if err != nil || sorted[0].Name != "b" {
		t.Fatalf("hidden columns must stay sortable: %v %v", sorted, err)
	}
}
