package httpapi

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/KARINGU-RAVI/Nxt-trendz-app/internal/clients"
	"github.com/KARINGU-RAVI/Nxt-trendz-app/internal/config"
	"github.com/KARINGU-RAVI/Nxt-trendz-app/internal/kv"
	"github.com/KARINGU-RAVI/Nxt-trendz-app/internal/middleware"
)

type Deps struct {
	Logger *log.Logger
	Cfg    config.Config

	Blobs   kv.Store
	Flow    Submitter
	Catalog *clients.CatalogClient
}

func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Get("/health", healthHandler)

	authHandler := NewAuthHandler(d.Flow)
	r.Post("/api/auth/login", authHandler.Login)

	cartHandler := NewCartHandler(d.Blobs)
	catalogHandler := NewCatalogHandler(d.Catalog)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireSession)

		r.Get("/api/cart", cartHandler.GetCart)
		r.Post("/api/cart/items", cartHandler.AddItem)

		r.Get("/api/products", catalogHandler.ListProducts)
		r.Get("/api/products/{id}", catalogHandler.GetProduct)
	})

	// Middlewares (outer -> inner)
	var h http.Handler = r
	h = middleware.Recover(d.Logger)(h)
	h = middleware.CORS(d.Cfg.CORSAllowOrigins)(h)
	h = middleware.CorrelationID(h)
	h = middleware.Logging(d.Logger)(h)

	return h
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	resp := map[string]string{"status": "ok", "service": "storefront"}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{
		"error": msg,
	})
}
