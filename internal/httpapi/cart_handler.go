package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/KARINGU-RAVI/Nxt-trendz-app/internal/cart"
	"github.com/KARINGU-RAVI/Nxt-trendz-app/internal/kv"
	"github.com/KARINGU-RAVI/Nxt-trendz-app/internal/middleware"
)

type CartHandler struct {
	blobs kv.Store
}

func NewCartHandler(blobs kv.Store) *CartHandler {
	return &CartHandler{blobs: blobs}
}

// storeFor scopes the cart blob to the request's session so one shopper's
// cart never shows up in another's.
func (h *CartHandler) storeFor(r *http.Request) *cart.Store {
	token := middleware.GetSessionToken(r.Context())
	return cart.NewStore(kv.Namespaced(h.blobs, token))
}

type cartResponse struct {
	Items []cart.LineItem `json:"items"`
	Total float64         `json:"total"`
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	items, err := h.storeFor(r).Items(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load cart")
		return
	}
	writeJSON(w, http.StatusOK, cartResponse{Items: items, Total: cart.Total(items)})
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var candidate cart.LineItem
	if err := json.NewDecoder(r.Body).Decode(&candidate); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if candidate.ID.String() == "" {
		writeError(w, http.StatusBadRequest, "missing product id")
		return
	}
	if candidate.Quantity <= 0 {
		writeError(w, http.StatusBadRequest, "quantity must be positive")
		return
	}

	items, err := h.storeFor(r).AddItem(r.Context(), candidate)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save cart")
		return
	}
	writeJSON(w, http.StatusOK, cartResponse{Items: items, Total: cart.Total(items)})
}
