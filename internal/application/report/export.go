package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"
)

// Column describes one exported column: the header shown in the file and the
// record field it reads. Currency columns are rendered through the caller's
// formatter when one is supplied.
type Column struct {
	Header   string
	Field    string
	Currency bool
}

// CurrencyFormatter renders a numeric amount with a locale-aware currency
// prefix, e.g. "₹1,200.00".
type CurrencyFormatter func(amount float64) string

// ToFlatRows projects records onto plain string maps ready for a CSV writer
// or a tabular PDF writer. Missing and nil values become "N/A"; numbers are
// stringified without trailing zeros. When no column spec is given the
// sorted union of record keys is used. Empty input yields zero rows, never
// an error; exporting an empty table is a "no data" artifact upstream.
func ToFlatRows(records []map[string]interface{}, columns []Column, currency CurrencyFormatter) []map[string]string {
	if len(records) == 0 {
		return []map[string]string{}
	}
	if len(columns) == 0 {
		columns = inferColumns(records)
	}

	rows := make([]map[string]string, 0, len(records))
	for _, record := range records {
		row := make(map[string]string, len(columns))
		for _, col := range columns {
			value, exists := record[col.Field]
			if !exists || value == nil {
				row[col.Field] = "N/A"
				continue
			}
			if col.Currency && currency != nil {
				if amount, ok := asFloat(value); ok {
					row[col.Field] = currency(amount)
					continue
				}
			}
			row[col.Field] = formatValue(value)
		}
		rows = append(rows, row)
	}
	return rows
}

// WriteCSV renders flat rows as CSV: one header line from the column spec,
// then one line per row. Zero rows produce a header-only file.
func WriteCSV(w io.Writer, columns []Column, rows []map[string]string) error {
	cw := csv.NewWriter(w)

	headers := make([]string, len(columns))
	for i, col := range columns {
		headers[i] = col.Header
	}
	if err := cw.Write(headers); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	line := make([]string, len(columns))
	for _, row := range rows {
		for i, col := range columns {
			if v, ok := row[col.Field]; ok {
				line[i] = v
			} else {
				line[i] = "N/A"
			}
		}
		if err := cw.Write(line); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func inferColumns(records []map[string]interface{}) []Column {
	seen := make(map[string]bool)
	var fields []string
	for _, record := range records {
		for field := range record {
			if !seen[field] {
				seen[field] = true
				fields = append(fields, field)
			}
		}
	}
	sort.Strings(fields)

	columns := make([]Column, len(fields))
	for i, field := range fields {
		columns[i] = Column{Header: field, Field: field}
	}
	return columns
}

func formatValue(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case time.Time:
		if v.Hour() == 0 && v.Minute() == 0 && v.Second() == 0 {
			return v.Format("2006-01-02")
		}
		return v.Format("2006-01-02 15:04")
	default:
		return fmt.Sprintf("%v", v)
	}
}

func asFloat(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}
