// Package server assembles the HTTP router.
package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/Lixing-Zhang/product-api/internal/handlers"
	"github.com/Lixing-Zhang/product-api/internal/middleware"
	"github.com/Lixing-Zhang/product-api/internal/repository"
	"github.com/Lixing-Zhang/product-api/internal/service"
)

// RequestTimeout bounds each request's context
const RequestTimeout = 60 * time.Second

// NewRouter wires the product routes on top of repo.
// check may be nil when there is nothing to probe.
func NewRouter(repo repository.ProductRepository, check handlers.HealthCheck, log *slog.Logger) http.Handler {
	productService := service.NewProductService(repo)

	healthHandler := handlers.NewHealthHandler(log, check)
	productHandler := handlers.NewProductHandler(productService, log)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(RequestTimeout))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		handlers.WriteError(w, http.StatusNotFound, "Not found", log)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		handlers.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed", log)
	})

	r.Get("/health", healthHandler.ServeHTTP)

	r.Route("/product", func(r chi.Router) {
		r.Post("/", productHandler.CreateProduct)
		r.Get("/", productHandler.ListProducts)
		r.Get("/{productId}", productHandler.GetProduct)
		r.Put("/{productId}", productHandler.UpdateProduct)
		r.Delete("/{productId}", productHandler.DeleteProduct)
	})

	return r
}
