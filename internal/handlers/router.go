package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/Lixing-Zhang/kart-challenge/inventory-tracker/internal/config"
	"github.com/Lixing-Zhang/kart-challenge/inventory-tracker/internal/middleware"
	"github.com/Lixing-Zhang/kart-challenge/inventory-tracker/internal/service"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter wires middleware and every API route onto a chi router
func NewRouter(svc *service.InventoryService, cfg *config.Config, log *slog.Logger) http.Handler {
	healthHandler := NewHealthHandler(svc, log)
	productHandler := NewProductHandler(svc, log)
	orderHandler := NewOrderHandler(svc, log)
	operationHandler := NewOperationHandler(svc, cfg.RecentOperations, log)

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", healthHandler.ServeHTTP)

	r.Route("/api", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", productHandler.ListProducts)
			r.Post("/", productHandler.CreateProduct)
			r.Get("/search", productHandler.SearchProducts)
			r.Get("/category/{category}", productHandler.ProductsByCategory)
			r.Get("/{productId}", productHandler.GetProduct)
			r.Delete("/{productId}", productHandler.DeleteProduct)
			r.Put("/{productId}/quantity", productHandler.UpdateQuantity)
			r.Put("/{productId}/price", productHandler.UpdatePrice)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", orderHandler.PendingOrders)
			r.Post("/", orderHandler.CreateOrder)
			r.Post("/process", orderHandler.ProcessOrder)
		})

		r.Post("/operations/undo", operationHandler.Undo)
		r.Get("/operations/recent", operationHandler.RecentOperations)
		r.Get("/statistics", operationHandler.Statistics)
	})

	return r
}
