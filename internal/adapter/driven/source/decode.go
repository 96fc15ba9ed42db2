package source

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path"
	"strconv"
	"strings"

	"github.com/diillson/rewards-dashboard-go/internal/domain/entity"
	"github.com/diillson/rewards-dashboard-go/internal/shared/types"
	"gopkg.in/yaml.v3"
)

type format string

const (
	formatJSON format = "json"
	formatYAML format = "yaml"
	formatCSV  format = "csv"
)

// formatFromName deduz o formato pela extensão. Sem extensão conhecida,
// assume JSON.
func formatFromName(name string) (format, error) {
	switch strings.ToLower(path.Ext(name)) {
	case ".json", "":
		return formatJSON, nil
	case ".yaml", ".yml":
		return formatYAML, nil
	case ".csv":
		return formatCSV, nil
	default:
		return "", fmt.Errorf("%w: %s", types.ErrUnsupportedFormat, path.Ext(name))
	}
}

func formatFromContentType(contentType string) (format, bool) {
	ct := strings.ToLower(contentType)
	switch {
	case strings.Contains(ct, "yaml"):
		return formatYAML, true
	case strings.Contains(ct, "csv"):
		return formatCSV, true
	case strings.Contains(ct, "json"):
		return formatJSON, true
	}
	return "", false
}

// envelope aceita tanto uma lista na raiz quanto {"transactions": [...]}.
type envelope struct {
	Transactions []entity.Transaction `json:"transactions" yaml:"transactions"`
}

func decode(data []byte, f format) ([]entity.Transaction, error) {
	switch f {
	case formatJSON:
		return decodeJSON(data)
	case formatYAML:
		return decodeYAML(data)
	case formatCSV:
		return decodeCSV(bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("%w: %s", types.ErrUnsupportedFormat, f)
	}
}

func decodeJSON(data []byte) ([]entity.Transaction, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return []entity.Transaction{}, nil
	}

	if trimmed[0] == '{' {
		var env envelope
		if err := json.Unmarshal(trimmed, &env); err != nil {
			return nil, fmt.Errorf("error parsing JSON: %w", err)
		}
		return nonNil(env.Transactions), nil
	}

	var txns []entity.Transaction
	if err := json.Unmarshal(trimmed, &txns); err != nil {
		return nil, fmt.Errorf("error parsing JSON: %w", err)
	}
	return nonNil(txns), nil
}

func decodeYAML(data []byte) ([]entity.Transaction, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("error parsing YAML: %w", err)
	}
	if len(root.Content) == 0 {
		return []entity.Transaction{}, nil
	}

	doc := root.Content[0]
	if doc.Kind == yaml.MappingNode {
		var env envelope
		if err := doc.Decode(&env); err != nil {
			return nil, fmt.Errorf("error parsing YAML: %w", err)
		}
		return nonNil(env.Transactions), nil
	}

	var txns []entity.Transaction
	if err := doc.Decode(&txns); err != nil {
		return nil, fmt.Errorf("error parsing YAML: %w", err)
	}
	return nonNil(txns), nil
}

var csvColumns = []string{"id", "customerid", "customername", "amount", "date", "product"}

// decodeCSV lê um CSV com cabeçalho. As colunas podem vir em qualquer ordem
// e aceitam tanto customerId quanto customer_id.
func decodeCSV(r io.Reader) ([]entity.Transaction, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return []entity.Transaction{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading CSV header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, h := range header {
		key := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(h), "_", ""))
		index[key] = i
	}
	for _, col := range csvColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("CSV is missing column %q", col)
		}
	}

	txns := []entity.Transaction{}
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV line %d: %w", line, err)
		}

		field := func(name string) string {
			return strings.TrimSpace(record[index[name]])
		}

		id, err := strconv.Atoi(field("id"))
		if err != nil {
			return nil, fmt.Errorf("CSV line %d: invalid id %q", line, field("id"))
		}
		customerID, err := strconv.Atoi(field("customerid"))
		if err != nil {
			return nil, fmt.Errorf("CSV line %d: invalid customerId %q", line, field("customerid"))
		}

		txns = append(txns, entity.Transaction{
			ID:           id,
			CustomerID:   customerID,
			CustomerName: field("customername"),
			Amount:       entity.ParseAmount(field("amount")),
			Date:         field("date"),
			Product:      field("product"),
		})
	}
	return txns, nil
}

func nonNil(txns []entity.Transaction) []entity.Transaction {
	if txns == nil {
		return []entity.Transaction{}
	}
	return txns
}
