// Package fetch resolves a barcode to a product image and stores it on disk.
package fetch

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/youruser/productimages/internal/products"
	"github.com/youruser/productimages/internal/upc"
	"github.com/youruser/productimages/internal/util"
)

// Lookup resolves a barcode to product metadata. *upc.Client implements it.
type Lookup interface {
	LookupCode(ctx context.Context, barcode string) (*upc.CodeResponse, error)
}

type Fetcher struct {
	lookup Lookup
	client *http.Client
	dir    string
}

// New returns a Fetcher writing into dir. A nil client uses util's default.
func New(lookup Lookup, client *http.Client, dir string) *Fetcher {
	return &Fetcher{lookup: lookup, client: client, dir: dir}
}

// Dir is where images are written
func (f *Fetcher) Dir() string { return f.dir }

// ImagePath is where the image for productID goes. Rows sharing a product
// number share a path; the last one fetched wins.
func (f *Fetcher) ImagePath(productID string) string {
	return filepath.Join(f.dir, productID+".jpg")
}

// Fetch looks the row's barcode up, downloads the image it points at and
// saves it under the product number. It never returns an error: every
// problem becomes a Failure with a reason.
func (f *Fetcher) Fetch(ctx context.Context, row products.Row) Result {
	res, err := f.lookup.LookupCode(ctx, row.Barcode)
	if err != nil {
		return Failure(err.Error())
	}
	if res == nil || res.Product == nil {
		return Failure(ReasonNoProduct)
	}
	if res.Product.ImageURL == nil || strings.TrimSpace(*res.Product.ImageURL) == "" {
		return Failure(ReasonNoImageURL)
	}

	body, err := util.GetBytes(ctx, f.client, strings.TrimSpace(*res.Product.ImageURL))
	if err != nil {
		return Failure(err.Error())
	}

	path := f.ImagePath(row.ProductID)
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return Failure(fmt.Sprintf("saving image: %v", err))
	}
	return Success(path, len(body))
}
