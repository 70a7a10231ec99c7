package upcstub

import (
	"encoding/json"
	"fmt"
	"os"
)

// Entry is one fixture product. A nil ImageURL is served as JSON null;
// NoImageKey drops the key altogether.
type Entry struct {
	Name       string  `json:"name"`
	Brand      string  `json:"brand,omitempty"`
	ImageURL   *string `json:"imageUrl"`
	NoImageKey bool    `json:"noImageKey,omitempty"`
}

// Catalog maps barcodes to fixture products
type Catalog map[string]Entry

// LoadCatalog reads a JSON object of barcode -> Entry
func LoadCatalog(path string) (Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Catalog
	if err := json.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return c, nil
}

// DefaultCatalog is served when no fixture file is given
func DefaultCatalog() Catalog {
	img := "/images/sample.jpg"
	return Catalog{
		"12345678905":   {Name: "Sample Product", Brand: "Acme", ImageURL: &img},
		"4006381333931": {Name: "Highlighter", NoImageKey: true},
		"9780201379624": {Name: "Book without cover"},
	}
}
