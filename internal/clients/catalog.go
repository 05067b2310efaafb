package clients

import (
	"context"
	"net/http"
)

// CatalogClient fronts the remote product catalog. Product records
// ({id, title, brand, price, image_url, rating, ...}) belong to the
// collaborator and stream through untouched.
type CatalogClient struct{ c *Client }

func NewCatalogClient(c *Client) *CatalogClient { return &CatalogClient{c: c} }

// ListProducts forwards the listing query. rawQuery carries the frontend's
// sort_by, category, title_search and rating params as-is.
func (cc *CatalogClient) ListProducts(ctx context.Context, rawQuery string, headers http.Header) (*http.Response, error) {
	return cc.c.Do(ctx, http.MethodGet, "/products", rawQuery, nil, headers)
}

func (cc *CatalogClient) GetProduct(ctx context.Context, id, rawQuery string, headers http.Header) (*http.Response, error) {
	return cc.c.Do(ctx, http.MethodGet, "/products/"+id, rawQuery, nil, headers)
}
