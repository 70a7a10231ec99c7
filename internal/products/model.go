package products

// Row is one cleaned line of the photos list
type Row struct {
	Barcode   string `json:"barcode"`
	ProductID string `json:"product_number"`
}
