package products

import (
	"errors"
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"
)

// ErrInputNotFound is returned by Load when the workbook does not exist
var ErrInputNotFound = errors.New("input spreadsheet not found")

// Load reads the first sheet of the workbook at path. The first row is a
// header and is skipped whatever it says; columns A and B are taken as
// barcode and product number. Rows missing either value are dropped.
func Load(path string) ([]Row, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", path, ErrInputNotFound)
		}
		return nil, err
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%s has no sheets", path)
	}

	// raw values keep number formats like "0.00E+00" from mangling barcodes
	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(rows) < 1 {
		return nil, nil
	}

	out := []Row{}
	for _, cells := range rows[1:] {
		if r, ok := cleanRow(cells); ok {
			out = append(out, r)
		}
	}
	return out, nil
}
