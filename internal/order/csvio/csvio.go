// Package csvio implements the orders CSV boundary format:
// a header row followed by name,variant,qty,price,date lines.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/atelierlabs/workroom/internal/order/domain"
)

var expectedHeader = []string{"name", "variant", "qty", "price", "date"}

// Record is one parsed CSV row, not yet an order (no id assigned).
type Record struct {
	Name    string
	Variant string
	Qty     int
	Price   decimal.Decimal
	Date    domain.Date
}

// RowError reports why a data row was rejected. Line numbers are 1-based
// and count the header.
type RowError struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
}

// Read parses the orders CSV. Malformed rows are rejected individually
// instead of producing half-parsed records; valid rows are returned in file
// order. A missing or wrong header fails the whole read.
func Read(r io.Reader) ([]Record, []RowError, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("CSV is empty: expected header %v", expectedHeader)
	}
	if !headerMatches(rows[0]) {
		return nil, nil, fmt.Errorf("CSV header mismatch: expected %v, got %v", expectedHeader, rows[0])
	}

	var (
		records []Record
		rowErrs []RowError
	)
	for i, row := range rows[1:] {
		line := i + 2
		record, err := parseRow(row)
		if err != nil {
			rowErrs = append(rowErrs, RowError{Line: line, Message: err.Error()})
			continue
		}
		records = append(records, record)
	}

	return records, rowErrs, nil
}

// Write renders records back into the boundary format, header first.
func Write(w io.Writer, records []Record) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(expectedHeader); err != nil {
		return err
	}
	for _, rec := range records {
		row := []string{
			rec.Name,
			rec.Variant,
			strconv.Itoa(rec.Qty),
			rec.Price.StringFixed(2),
			rec.Date.String(),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func parseRow(row []string) (Record, error) {
	if len(row) != len(expectedHeader) {
		return Record{}, fmt.Errorf("expected %d fields, got %d", len(expectedHeader), len(row))
	}
	if row[0] == "" {
		return Record{}, fmt.Errorf("name is required")
	}
	if row[1] == "" {
		return Record{}, fmt.Errorf("variant is required")
	}

	qty, err := strconv.Atoi(row[2])
	if err != nil {
		return Record{}, fmt.Errorf("invalid qty %q", row[2])
	}
	if qty <= 0 {
		return Record{}, fmt.Errorf("qty must be greater than 0, got %d", qty)
	}

	price, err := decimal.NewFromString(row[3])
	if err != nil {
		return Record{}, fmt.Errorf("invalid price %q", row[3])
	}
	if price.IsNegative() {
		return Record{}, fmt.Errorf("price must not be negative, got %s", row[3])
	}

	date, err := domain.ParseDate(row[4])
	if err != nil {
		return Record{}, err
	}

	return Record{
		Name:    row[0],
		Variant: row[1],
		Qty:     qty,
		Price:   price,
		Date:    date,
	}, nil
}

func headerMatches(row []string) bool {
	if len(row) != len(expectedHeader) {
		return false
	}
	for i, field := range expectedHeader {
		if row[i] != field {
			return false
		}
	}
	return true
}
