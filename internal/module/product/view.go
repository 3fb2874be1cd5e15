package product

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"slices"

	"github.com/gin-gonic/gin"

	"github.com/simp-lee/shopadmin/internal/domain"
	"github.com/simp-lee/shopadmin/internal/router"
)

// ListView renders the product list page.
type ListView struct {
	fetcher domain.ProductFetcher
}

var _ router.View = (*ListView)(nil)

// NewListView creates the products page view backed by fetcher.
// Panics if fetcher is nil.
func NewListView(fetcher domain.ProductFetcher) *ListView {
	if fetcher == nil {
		panic("product.NewListView: fetcher must not be nil")
	}
	return &ListView{fetcher: fetcher}
}

// Template implements router.View.
func (v *ListView) Template() string {
	return "product/list.html"
}

// Load fetches the product list. A JSON array of objects is exposed as
// Products for the table; any other document is exposed verbatim as Raw.
// Numbers stay json.Number so large IDs keep every digit.
func (v *ListView) Load(ctx context.Context) (gin.H, error) {
	body, err := v.fetcher.FetchAll(ctx)
	if err != nil {
		return nil, err
	}

	items, err := decodeItems(body)
	if err != nil {
		return gin.H{"Raw": string(body)}, nil
	}
	return gin.H{
		"Products": items,
		"Columns":  columns(items),
	}, nil
}

func decodeItems(body []byte) ([]map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var items []map[string]any
	if err := dec.Decode(&items); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("trailing data after product list")
	}
	return items, nil
}

// columns returns the table header: id and name first, then every other key
// in the order items introduce them, sorted within each item.
func columns(items []map[string]any) []string {
	cols := make([]string, 0, 8)
	seen := make(map[string]bool)
	for _, k := range []string{"id", "name"} {
		for _, item := range items {
			if _, ok := item[k]; ok {
				cols = append(cols, k)
				seen[k] = true
				break
			}
		}
	}
	for _, item := range items {
		keys := make([]string, 0, len(item))
		for k := range item {
			if !seen[k] {
				keys = append(keys, k)
			}
		}
		slices.Sort(keys)
		for _, k := range keys {
			seen[k] = true
			cols = append(cols, k)
		}
	}
	return cols
}
