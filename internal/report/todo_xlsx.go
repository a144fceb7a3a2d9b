// Package report renders the to-do views into a downloadable XLSX
// workbook.
package report

import (
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"
)

const (
	materialsSheet = "Materials"
	ordersSheet    = "Orders"
)

// TodoWorkbook builds a two-sheet workbook: material demand per variant and
// product demand per design/variant. Rows are sorted by key so repeated
// exports of the same data are identical.
func TodoWorkbook(materialDemand map[string]int, productDemand map[string]map[string]int) (*excelize.File, error) {
	f := excelize.NewFile()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	if err := f.SetSheetName(sheet, materialsSheet); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}
	if _, err := f.NewSheet(ordersSheet); err != nil {
		return nil, fmt.Errorf("failed to add sheet: %w", err)
	}

	if err := writeMaterials(f, materialDemand); err != nil {
		return nil, err
	}
	if err := writeProducts(f, productDemand); err != nil {
		return nil, err
	}

	return f, nil
}

func writeMaterials(f *excelize.File, demand map[string]int) error {
	header := []interface{}{"Material", "Quantity Needed"}
	if err := f.SetSheetRow(materialsSheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	row := 2
	for _, variant := range sortedKeys(demand) {
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		values := []interface{}{variant, demand[variant]}
		if err := f.SetSheetRow(materialsSheet, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", row, err)
		}
		row++
	}
	return nil
}

func writeProducts(f *excelize.File, demand map[string]map[string]int) error {
	header := []interface{}{"Product", "Variant", "Quantity"}
	if err := f.SetSheetRow(ordersSheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	row := 2
	for _, product := range sortedNestedKeys(demand) {
		variants := demand[product]
		for _, variant := range sortedKeys(variants) {
			cell, err := excelize.CoordinatesToCellName(1, row)
			if err != nil {
				return err
			}
			values := []interface{}{product, variant, variants[variant]}
			if err := f.SetSheetRow(ordersSheet, cell, &values); err != nil {
				return fmt.Errorf("failed to write row %d: %w", row, err)
			}
			row++
		}
	}
	return nil
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedNestedKeys(m map[string]map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
