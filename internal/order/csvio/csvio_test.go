package csvio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestRead_Sample(t *testing.T) {
	records, rowErrs, err := Read(strings.NewReader(Sample))
	if err != nil {
		t.Fatalf("Failed to read sample CSV: %v", err)
	}
	if len(rowErrs) != 0 {
		t.Fatalf("Expected no row errors, got %v", rowErrs)
	}
	if len(records) != 4 {
		t.Fatalf("Expected 4 records, got %d", len(records))
	}

	first := records[0]
	if first.Name != "Design" {
		t.Errorf("Expected name Design, got %q", first.Name)
	}
	if first.Variant != "Gildan H000 Black S" {
		t.Errorf("Expected variant Gildan H000 Black S, got %q", first.Variant)
	}
	if first.Qty != 10 {
		t.Errorf("Expected qty 10, got %d", first.Qty)
	}
	if !first.Price.Equal(decimal.RequireFromString("25.00")) {
		t.Errorf("Expected price 25.00, got %s", first.Price)
	}
	if first.Date.String() != "2024-10-28" {
		t.Errorf("Expected date 2024-10-28, got %s", first.Date)
	}
}

func TestSampleRoundTrip(t *testing.T) {
	records, rowErrs, err := Read(strings.NewReader(Sample))
	if err != nil {
		t.Fatalf("Failed to read sample CSV: %v", err)
	}
	if len(rowErrs) != 0 {
		t.Fatalf("Expected no row errors, got %v", rowErrs)
	}

	var buf bytes.Buffer
	if err := Write(&buf, records); err != nil {
		t.Fatalf("Failed to write records: %v", err)
	}

	if buf.String() != Sample {
		t.Errorf("Round trip changed the document:\ngot:\n%s\nwant:\n%s", buf.String(), Sample)
	}
}

func TestRead_HeaderValidation(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty_document", input: ""},
		{name: "wrong_column_order", input: "variant,name,qty,price,date\n"},
		{name: "missing_column", input: "name,variant,qty,price\n"},
		{name: "extra_column", input: "name,variant,qty,price,date,notes\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := Read(strings.NewReader(tt.input)); err == nil {
				t.Error("Expected header error, got nil")
			}
		})
	}
}

func TestRead_RowErrors(t *testing.T) {
	input := "name,variant,qty,price,date\n" +
		"Design,Black M,5,25.00,2024-10-28\n" +
		",Black M,5,25.00,2024-10-28\n" +
		"Design,,5,25.00,2024-10-28\n" +
		"Design,Black M,zero,25.00,2024-10-28\n" +
		"Design,Black M,0,25.00,2024-10-28\n" +
		"Design,Black M,5,-1.00,2024-10-28\n" +
		"Design,Black M,5,25.00,28-10-2024\n" +
		"Design,Black L,3,30.00,2024-10-29\n"

	records, rowErrs, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Failed to read CSV: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("Expected 2 valid records, got %d", len(records))
	}
	if records[0].Variant != "Black M" || records[1].Variant != "Black L" {
		t.Errorf("Valid records out of order: %v", records)
	}

	if len(rowErrs) != 6 {
		t.Fatalf("Expected 6 row errors, got %d: %v", len(rowErrs), rowErrs)
	}

	// Line numbers are 1-based and count the header row.
	wantLines := []int{3, 4, 5, 6, 7, 8}
	for i, re := range rowErrs {
		if re.Line != wantLines[i] {
			t.Errorf("Row error %d: expected line %d, got %d (%s)", i, wantLines[i], re.Line, re.Message)
		}
	}
}

func TestRead_FieldCountMismatch(t *testing.T) {
	input := "name,variant,qty,price,date\nDesign,Black M,5\n"

	records, rowErrs, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Failed to read CSV: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("Expected no records, got %d", len(records))
	}
	if len(rowErrs) != 1 {
		t.Fatalf("Expected 1 row error, got %d", len(rowErrs))
	}
}
