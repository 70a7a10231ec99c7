// Package report writes the spreadsheet of rows that could not be fetched.
package report

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/youruser/productimages/internal/batch"
)

const (
	sheet       = "Sheet1"
	stampLayout = "20060102_150405"
)

var header = []any{"barcode", "product_number", "reason"}

// Timestamp formats the run start time for the report name
func Timestamp(t time.Time) string {
	return t.Format(stampLayout)
}

// FileName is failed_products_<timestamp>.xlsx
func FileName(timestamp string) string {
	return fmt.Sprintf("failed_products_%s.xlsx", timestamp)
}

// WriteFailures saves records to dir/FileName(timestamp). With no records
// nothing is written and the returned path is empty.
func WriteFailures(dir, timestamp string, records []batch.FailureRecord) (string, error) {
	if len(records) == 0 {
		return "", nil
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return "", err
	}
	for i, r := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return "", err
		}
		row := []any{r.Barcode, r.ProductID, r.Reason}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return "", fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}

	path := filepath.Join(dir, FileName(timestamp))
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("saving %s: %w", path, err)
	}
	return path, nil
}
