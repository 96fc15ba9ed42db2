package source

import (
	"errors"
	"strings"
	"testing"

	"github.com/diillson/rewards-dashboard-go/internal/domain/entity"
	"github.com/diillson/rewards-dashboard-go/internal/shared/types"
	"github.com/google/go-cmp/cmp"
)

func summarize(txns []entity.Transaction) []string {
	out := make([]string, 0, len(txns))
	for _, t := range txns {
		out = append(out, strings.Join([]string{t.CustomerName, t.Amount.Raw(), t.Date, t.Product}, "|"))
	}
	return out
}

func TestDecode(t *testing.T) {
	want := []string{
		"John Doe|120.2|2023-12-15|Electronics Bundle",
		"Jane Smith|abc|2024-01-18|",
	}

	tests := []struct {
		name   string
		format format
		input  string
	}{
		{
			name:   "json array",
			format: formatJSON,
			input: `[
  {"id": 1, "customerId": 1, "customerName": "John Doe", "amount": 120.2, "date": "2023-12-15", "product": "Electronics Bundle"},
  {"id": 2, "customerId": 2, "customerName": "Jane Smith", "amount": "abc", "date": "2024-01-18"}
]`,
		},
		{
			name:   "json envelope",
			format: formatJSON,
			input: `{"transactions": [
  {"id": 1, "customerId": 1, "customerName": "John Doe", "amount": "120.2", "date": "2023-12-15", "product": "Electronics Bundle"},
  {"id": 2, "customerId": 2, "customerName": "Jane Smith", "amount": "abc", "date": "2024-01-18"}
]}`,
		},
		{
			name:   "yaml list",
			format: formatYAML,
			input: `
- id: 1
  customerId: 1
  customerName: John Doe
  amount: 120.2
  date: 2023-12-15
  product: Electronics Bundle
- id: 2
  customerId: 2
  customerName: Jane Smith
  amount: abc
  date: "2024-01-18"
`,
		},
		{
			name:   "yaml envelope",
			format: formatYAML,
			input: `
transactions:
  - {id: 1, customerId: 1, customerName: John Doe, amount: 120.2, date: 2023-12-15, product: Electronics Bundle}
  - {id: 2, customerId: 2, customerName: Jane Smith, amount: abc, date: 2024-01-18}
`,
		},
		{
			name:   "csv",
			format: formatCSV,
			input: `id,customer_id,customer_name,amount,date,product
1,1,John Doe,120.2,2023-12-15,Electronics Bundle
2,2,Jane Smith,abc,2024-01-18,
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decode([]byte(tt.input), tt.format)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(want, summarize(got)); diff != "" {
				t.Fatalf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecode_Empty(t *testing.T) {
	for _, f := range []format{formatJSON, formatYAML, formatCSV} {
		got, err := decode(nil, f)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", f, err)
		}
		if got == nil || len(got) != 0 {
			t.Fatalf("%s: expected empty non-nil slice, got %#v", f, got)
		}
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name   string
		format format
		input  string
	}{
		{"malformed json", formatJSON, `[{"id": 1`},
		{"malformed yaml", formatYAML, "- id: [1"},
		{"csv missing column", formatCSV, "id,amount\n1,10\n"},
		{"csv bad id", formatCSV, "id,customerId,customerName,amount,date,product\nx,1,A,10,2024-01-01,P\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := decode([]byte(tt.input), tt.format); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestFormatFromName(t *testing.T) {
	tests := map[string]format{
		"data/transactions.json": formatJSON,
		"transactions":           formatJSON,
		"a.YAML":                 formatYAML,
		"a.yml":                  formatYAML,
		"a.csv":                  formatCSV,
	}
	for name, want := range tests {
		got, err := formatFromName(name)
		if err != nil || got != want {
			t.Errorf("formatFromName(%q) = %q, %v; want %q", name, got, err, want)
		}
	}

	if _, err := formatFromName("a.xml"); !errors.Is(err, types.ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
}
