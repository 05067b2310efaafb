package cart

import "encoding/json"

// StorageKey is the blob the cart collection persists under.
const StorageKey = "nxt_trendz_cart"

// LineItem is one product entry in the cart. ID is a json.Number so both
// numeric and string product ids round-trip unchanged through the blob.
type LineItem struct {
	ID       json.Number `json:"id"`
	Title    string      `json:"title"`
	Brand    string      `json:"brand"`
	ImageURL string      `json:"imageUrl"`
	Price    float64     `json:"price"`
	Rating   float64     `json:"rating"`
	Quantity int         `json:"quantity"`
}
