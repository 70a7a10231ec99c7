package products

import (
	"math"
	"strconv"
	"strings"
)

// CleanBarcode renders numeric barcodes as integers so values typed as
// floats by the spreadsheet ("12345678905.0", "1.2345678905E10") lose the
// fractional artifact. Anything that is not a finite decimal number is only
// trimmed; hex floats such as "0x1p4" count as text.
func CleanBarcode(v string) string {
	s := strings.TrimSpace(v)
	if strings.ContainsAny(s, "xX") {
		return s
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return s
	}
	f = math.Trunc(f)
	if f == 0 {
		return "0"
	}
	return strconv.FormatFloat(f, 'f', 0, 64)
}

func CleanProductID(v string) string {
	return strings.TrimSpace(v)
}

// cleanRow returns false when either column is missing or blank after cleaning
func cleanRow(cells []string) (Row, bool) {
	if len(cells) < 2 {
		return Row{}, false
	}
	r := Row{
		Barcode:   CleanBarcode(cells[0]),
		ProductID: CleanProductID(cells[1]),
	}
	if r.Barcode == "" || r.ProductID == "" {
		return Row{}, false
	}
	return r, true
}
