package entity

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Transaction representa uma compra individual vinda da fonte de dados.
// O core nunca altera nem persiste transações.
type Transaction struct {
	ID           int    `json:"id" yaml:"id"`
	CustomerID   int    `json:"customerId" yaml:"customerId"`
	CustomerName string `json:"customerName" yaml:"customerName"`
	Amount       Amount `json:"amount" yaml:"amount"`
	Date         string `json:"date" yaml:"date"` // YYYY-MM-DD
	Product      string `json:"product" yaml:"product"`
}

// Customer represents a customer derived from transactions or supplied directly.
type Customer struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Amount guarda o valor exatamente como foi recebido da fonte.
// Valores malformados são preservados e resultam em zero pontos no cálculo.
type Amount struct {
	raw string
}

// NewAmount creates an Amount from a float value.
func NewAmount(v float64) Amount {
	return Amount{raw: strconv.FormatFloat(v, 'f', -1, 64)}
}

// ParseAmount keeps the textual representation as-is.
func ParseAmount(s string) Amount {
	return Amount{raw: s}
}

// Raw retorna a representação textual original.
func (a Amount) Raw() string {
	return a.raw
}

// decimalNumber aceita apenas notação decimal, com expoente opcional.
// Underscores e literais hexadecimais do Go ficam de fora.
var decimalNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// ParseNumber converts decimal text to a finite float64.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if !decimalNumber.MatchString(s) {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// Float64 coerces the raw value to a finite number.
func (a Amount) Float64() (float64, bool) {
	return ParseNumber(a.raw)
}

// Decimal returns the exact decimal value, used for money formatting.
func (a Amount) Decimal() (decimal.Decimal, bool) {
	if _, ok := a.Float64(); !ok {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(strings.TrimSpace(a.raw))
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// Valid reports whether the amount is a finite, non-negative number.
func (a Amount) Valid() bool {
	v, ok := a.Float64()
	return ok && v >= 0
}

// String formata o valor com duas casas quando possível.
func (a Amount) String() string {
	if d, ok := a.Decimal(); ok {
		return d.StringFixed(2)
	}
	return a.raw
}

// UnmarshalJSON accepts numbers, numeric strings and anything else without failing.
func (a *Amount) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	switch {
	case raw == "null":
		a.raw = ""
	case strings.HasPrefix(raw, `"`):
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			a.raw = raw
			return nil
		}
		a.raw = s
	default:
		a.raw = raw
	}
	return nil
}

// MarshalJSON emits a JSON number when the amount is numeric and a string otherwise.
func (a Amount) MarshalJSON() ([]byte, error) {
	if d, ok := a.Decimal(); ok {
		return []byte(d.String()), nil
	}
	return json.Marshal(a.raw)
}

// UnmarshalYAML segue as mesmas regras de UnmarshalJSON para fontes YAML.
func (a *Amount) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode || value.Tag == "!!null" {
		a.raw = ""
		return nil
	}
	a.raw = value.Value
	return nil
}
