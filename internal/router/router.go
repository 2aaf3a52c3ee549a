package router

import (
	"net/http"
	"strings"

	"github.com/MohitMaulekhi/wkc/internal/handler"
	"github.com/MohitMaulekhi/wkc/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	productHandler *handler.ProductHandler,
	cartHandler *handler.CartHandler,
	checkoutHandler *handler.CheckoutHandler,
	orderHandler *handler.OrderHandler,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Product handler function
	productRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		// Check if this is a request for a specific product ID
		if r.URL.Path != "/api/products" && r.URL.Path != "/api/products/" {
			productHandler.GetByID(w, r)
			return
		}
		productHandler.GetAll(w, r)
	}

	// Register product routes (both with and without trailing slash)
	mux.HandleFunc("/api/products", productRouteHandler)
	mux.HandleFunc("/api/products/", productRouteHandler)

	// Cart handler function
	cartRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		collectionPath := r.URL.Path == "/api/cart" || r.URL.Path == "/api/cart/"

		switch {
		case r.Method == http.MethodGet && collectionPath:
			cartHandler.List(w, r)
		case r.Method == http.MethodPost && collectionPath:
			cartHandler.Add(w, r)
		case r.Method == http.MethodPut && !collectionPath:
			cartHandler.UpdateQuantity(w, r)
		case r.Method == http.MethodDelete && !collectionPath:
			cartHandler.Remove(w, r)
		default:
			http.Error(w, "not found", http.StatusNotFound)
		}
	}

	// Register cart routes (both with and without trailing slash)
	mux.HandleFunc("/api/cart", cartRouteHandler)
	mux.HandleFunc("/api/cart/", cartRouteHandler)

	// Checkout route
	mux.HandleFunc("/api/checkout", checkoutHandler.Checkout)

	// Order handler function
	orderRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		collectionPath := r.URL.Path == "/api/orders" || r.URL.Path == "/api/orders/"

		switch {
		case r.Method == http.MethodGet && collectionPath:
			orderHandler.List(w, r)
		case r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, "/status"):
			orderHandler.UpdateStatus(w, r)
		case r.Method == http.MethodGet && !collectionPath:
			orderHandler.GetByID(w, r)
		default:
			http.Error(w, "not found", http.StatusNotFound)
		}
	}

	// Register order routes (both with and without trailing slash)
	mux.HandleFunc("/api/orders", orderRouteHandler)
	mux.HandleFunc("/api/orders/", orderRouteHandler)

	// Apply middleware in order: Recovery -> Logging -> CORS -> Identity
	var handler http.Handler = mux
	handler = middleware.Identity(logger)(handler)
	handler = middleware.CORS(handler)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.Recovery(logger)(handler)

	return handler
}
