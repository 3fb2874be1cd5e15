package domain

import (
	"context"
	"encoding/json"
)

// ProductFetcher retrieves the full product list from the shop backend.
// The returned body is the backend's JSON document, unmodified.
type ProductFetcher interface {
	FetchAll(ctx context.Context) (json.RawMessage, error)
}
