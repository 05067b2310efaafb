package httpapi

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/KARINGU-RAVI/Nxt-trendz-app/internal/clients"
)

type CatalogHandler struct{ c *clients.CatalogClient }

func NewCatalogHandler(c *clients.CatalogClient) *CatalogHandler { return &CatalogHandler{c: c} }

func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	resp, err := h.c.ListProducts(r.Context(), r.URL.RawQuery, r.Header)
	if err != nil {
		writeError(w, http.StatusBadGateway, "catalog-service request failed: "+err.Error())
		return
	}
	defer resp.Body.Close()
	copyUpstreamResponse(w, resp)
}

func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	resp, err := h.c.GetProduct(r.Context(), id, r.URL.RawQuery, r.Header)
	if err != nil {
		writeError(w, http.StatusBadGateway, "catalog-service request failed: "+err.Error())
		return
	}
	defer resp.Body.Close()
	copyUpstreamResponse(w, resp)
}

func copyUpstreamResponse(w http.ResponseWriter, resp *http.Response) {
	// Copy headers (avoid hop-by-hop)
	for k, vv := range resp.Header {
		for _, v := range vv {
			w.Header().Add(k, v)
		}
	}
	w.WriteHeader(resp.StatusCode)
	_, _ = io.Copy(w, resp.Body)
}
