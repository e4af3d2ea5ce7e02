package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/wcoetsee/pricescout/internal/config"
	"github.com/wcoetsee/pricescout/internal/delivery/http/handler"
	"github.com/wcoetsee/pricescout/internal/delivery/http/middleware"
	"github.com/wcoetsee/pricescout/internal/delivery/http/response"
	"github.com/wcoetsee/pricescout/internal/pkg/logger"
)

// Router holds HTTP handlers and router configuration
type Router struct {
	productHandler *handler.ProductHandler
	priceHandler   *handler.PriceHandler
	shopHandler    *handler.ShopHandler
	unitHandler    *handler.UnitHandler
	logger         *logger.Logger
	cfg            *config.Config
}

// NewRouter creates a new HTTP router
func NewRouter(
	productHandler *handler.ProductHandler,
	priceHandler *handler.PriceHandler,
	shopHandler *handler.ShopHandler,
	unitHandler *handler.UnitHandler,
	cfg *config.Config,
	log *logger.Logger,
) *Router {
	return &Router{
		productHandler: productHandler,
		priceHandler:   priceHandler,
		shopHandler:    shopHandler,
		unitHandler:    unitHandler,
		logger:         log,
		cfg:            cfg,
	}
}

// Setup configures and returns the HTTP router
func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.Logger(rt.logger))
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   rt.cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", rt.healthCheck)
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Post("/", rt.productHandler.Create)
			r.Get("/", rt.productHandler.Search)
			r.Get("/{id}", rt.productHandler.GetByID)
			r.Put("/{id}", rt.productHandler.Update)
			r.Get("/{id}/prices", rt.priceHandler.ListByProduct)
			r.Get("/{id}/best-price", rt.productHandler.BestPrice)
		})

		r.Route("/prices", func(r chi.Router) {
			r.Post("/", rt.priceHandler.Create)
			r.Get("/", rt.priceHandler.List)
			r.Get("/{id}", rt.priceHandler.GetByID)
			r.Put("/{id}", rt.priceHandler.Update)
			r.Delete("/{id}", rt.priceHandler.Delete)
		})

		r.Route("/shops", func(r chi.Router) {
			r.Post("/", rt.shopHandler.Create)
			r.Get("/", rt.shopHandler.Search)
			r.Get("/{id}", rt.shopHandler.GetByID)
			r.Put("/{id}", rt.shopHandler.Update)
			r.Delete("/{id}", rt.shopHandler.Delete)
			r.Get("/{id}/prices", rt.priceHandler.ListByShop)
		})

		r.Route("/units", func(r chi.Router) {
			r.Post("/", rt.unitHandler.Create)
			r.Get("/", rt.unitHandler.List)
			r.Get("/{id}", rt.unitHandler.GetByID)
		})
	})

	return r
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}
