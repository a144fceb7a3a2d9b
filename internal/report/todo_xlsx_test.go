package report

import (
	"testing"
)

func TestTodoWorkbook(t *testing.T) {
	materials := map[string]int{
		"Gildan H000 Black M": 8,
		"Gildan H000 Black S": 10,
	}
	products := map[string]map[string]int{
		"Hoodie": {"Black M": 8, "Black S": 10},
		"Tee":    {"White L": 2},
	}

	f, err := TodoWorkbook(materials, products)
	if err != nil {
		t.Fatalf("Failed to build workbook: %v", err)
	}

	sheets := f.GetSheetList()
	if len(sheets) != 2 || sheets[0] != "Materials" || sheets[1] != "Orders" {
		t.Fatalf("Unexpected sheet list: %v", sheets)
	}

	// Rows sort by key, so Black M precedes Black S.
	checks := []struct {
		sheet string
		cell  string
		want  string
	}{
		{"Materials", "A1", "Material"},
		{"Materials", "B1", "Quantity Needed"},
		{"Materials", "A2", "Gildan H000 Black M"},
		{"Materials", "B2", "8"},
		{"Materials", "A3", "Gildan H000 Black S"},
		{"Materials", "B3", "10"},
		{"Orders", "A2", "Hoodie"},
		{"Orders", "B2", "Black M"},
		{"Orders", "C2", "8"},
		{"Orders", "A4", "Tee"},
		{"Orders", "B4", "White L"},
	}

	for _, c := range checks {
		got, err := f.GetCellValue(c.sheet, c.cell)
		if err != nil {
			t.Fatalf("Failed to read %s!%s: %v", c.sheet, c.cell, err)
		}
		if got != c.want {
			t.Errorf("%s!%s = %q, want %q", c.sheet, c.cell, got, c.want)
		}
	}
}

func TestTodoWorkbook_Empty(t *testing.T) {
	f, err := TodoWorkbook(map[string]int{}, map[string]map[string]int{})
	if err != nil {
		t.Fatalf("Failed to build workbook: %v", err)
	}

	got, err := f.GetCellValue("Materials", "A1")
	if err != nil {
		t.Fatalf("Failed to read header: %v", err)
	}
	if got != "Material" {
		t.Errorf("Expected header row even with no demand, got %q", got)
	}
}
