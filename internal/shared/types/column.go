package types

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// SortDirection is either "asc" or "desc".
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// DefaultPageSize and PageSizeOptions mirror the options offered by the report tables.
const DefaultPageSize = 10

var PageSizeOptions = []int{5, 10, 25, 50, 100}

// Column describes one column of a report table. Value is required; Render and
// Compare are optional and replace the default formatting and ordering.
// Hidden columns can be sorted on but are not rendered.
type Column[T any] struct {
	Key     string
	Header  string
	Value   func(T) any
	Render  func(T) string
	Compare func(a, b T) int
	Hidden  bool
}

// Cell formata o valor da coluna para a linha informada.
func (c Column[T]) Cell(row T) string {
	if c.Render != nil {
		return c.Render(row)
	}
	if c.Value == nil {
		return ""
	}
	return fmt.Sprint(c.Value(row))
}

func (c Column[T]) compare(a, b T) int {
	if c.Compare != nil {
		return c.Compare(a, b)
	}
	if c.Value == nil {
		return 0
	}
	return compareValues(c.Value(a), c.Value(b))
}

func compareValues(a, b any) int {
	switch va := a.(type) {
	case int:
		if vb, ok := b.(int); ok {
			return va - vb
		}
	case float64:
		if vb, ok := b.(float64); ok {
			switch {
			case va < vb:
				return -1
			case va > vb:
				return 1
			}
			return 0
		}
	case string:
		if vb, ok := b.(string); ok {
			return strings.Compare(va, vb)
		}
	case time.Time:
		if vb, ok := b.(time.Time); ok {
			return va.Compare(vb)
		}
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

// SortSpec selects the column and direction used to order rows.
type SortSpec struct {
	Key       string
	Direction SortDirection
}

// ParseSortSpec parses "key" or "key:asc" / "key:desc". An empty string yields
// a zero spec, meaning "keep the current order".
func ParseSortSpec(s string) (SortSpec, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return SortSpec{}, nil
	}
	key, dir, found := strings.Cut(s, ":")
	spec := SortSpec{Key: strings.TrimSpace(key), Direction: SortAsc}
	if found {
		switch SortDirection(strings.ToLower(strings.TrimSpace(dir))) {
		case SortAsc:
		case SortDesc:
			spec.Direction = SortDesc
		default:
			return SortSpec{}, fmt.Errorf("%w: direction %q", ErrInvalidSortKey, dir)
		}
	}
	if spec.Key == "" {
		return SortSpec{}, fmt.Errorf("%w: %q", ErrInvalidSortKey, s)
	}
	return spec, nil
}

// SortRows returns a stably sorted copy of rows. A zero spec returns a plain copy.
func SortRows[T any](rows []T, columns []Column[T], spec SortSpec) ([]T, error) {
	out := slices.Clone(rows)
	if spec.Key == "" {
		return out, nil
	}
	idx := slices.IndexFunc(columns, func(c Column[T]) bool { return c.Key == spec.Key })
	if idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSortKey, spec.Key)
	}
	col := columns[idx]
	slices.SortStableFunc(out, func(a, b T) int {
		if spec.Direction == SortDesc {
			return col.compare(b, a)
		}
		return col.compare(a, b)
	})
	return out, nil
}

// HasColumn reports whether a column with the given key exists.
func HasColumn[T any](columns []Column[T], key string) bool {
	return slices.ContainsFunc(columns, func(c Column[T]) bool { return c.Key == key })
}

// Paginate returns the 1-based page of rows. A non-positive size falls back to
// DefaultPageSize and a non-positive page to the first page.
func Paginate[T any](rows []T, page, size int) []T {
	if size <= 0 {
		size = DefaultPageSize
	}
	if page <= 0 {
		page = 1
	}
	start := (page - 1) * size
	if start >= len(rows) {
		return []T{}
	}
	end := min(start+size, len(rows))
	return rows[start:end]
}

// PageCount returns how many pages of the given size are needed for n rows.
func PageCount(n, size int) int {
	if size <= 0 {
		size = DefaultPageSize
	}
	if n == 0 {
		return 1
	}
	return (n + size - 1) / size
}

// ValidPageSize reports whether size is one of PageSizeOptions.
func ValidPageSize(size int) bool {
	return slices.Contains(PageSizeOptions, size)
}

// VisibleColumns returns the columns that are rendered.
func VisibleColumns[T any](columns []Column[T]) []Column[T] {
	out := make([]Column[T], 0, len(columns))
	for _, c := range columns {
		if !c.Hidden {
			out = append(out, c)
		}
	}
	return out
}
