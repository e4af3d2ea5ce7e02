package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/wcoetsee/pricescout/internal/config"
	"github.com/wcoetsee/pricescout/internal/delivery/events"
	httpDelivery "github.com/wcoetsee/pricescout/internal/delivery/http"
	"github.com/wcoetsee/pricescout/internal/delivery/http/handler"
	"github.com/wcoetsee/pricescout/internal/pkg/cache"
	"github.com/wcoetsee/pricescout/internal/pkg/database"
	"github.com/wcoetsee/pricescout/internal/pkg/logger"
	cacheRepo "github.com/wcoetsee/pricescout/internal/repository/cache"
	"github.com/wcoetsee/pricescout/internal/repository/postgres"
	"github.com/wcoetsee/pricescout/internal/usecase/price"
	"github.com/wcoetsee/pricescout/internal/usecase/product"
	"github.com/wcoetsee/pricescout/internal/usecase/shop"
	"github.com/wcoetsee/pricescout/internal/usecase/unit"

	_ "github.com/wcoetsee/pricescout/docs"
)

// @title PriceScout API
// @version 1.0
// @description A price comparison backend with product search, shop management, and normal and promotion price tracking.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://github.com/wcoetsee/pricescout
// @contact.email support@example.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @tag.name Products
// @tag.description Product catalog and keyword search endpoints

// @tag.name Prices
// @tag.description Normal and promotion price endpoints

// @tag.name Shops
// @tag.description Shop and location endpoints

// @tag.name Units
// @tag.description Measurement unit endpoints

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger := logger.New(cfg.Env)
	appLogger.Info("Starting PriceScout API...")

	appLogger.Info("Connecting to PostgreSQL...")
	db, err := database.WaitForDB(cfg, 10, 2*time.Second)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", err)
	}
	defer db.Close()
	appLogger.Info("Connected to PostgreSQL successfully")

	if err := database.RunMigrations(db); err != nil {
		appLogger.Fatal("Failed to run migrations", err)
	}
	appLogger.Info("Database migrations applied")

	appLogger.Info("Connecting to Redis...")
	redisClient, err := cache.WaitForRedis(cfg, 10, 2*time.Second)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", err)
	}
	defer redisClient.Close()
	appLogger.Info("Connected to Redis successfully")

	appLogger.Info("Connecting to NATS...")
	publisher, err := events.NewPublisher(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to create NATS publisher", err)
	}
	defer publisher.Close()

	productRepo := postgres.NewProductRepository(db)
	priceRepo := postgres.NewPriceRepository(db)
	shopRepo := postgres.NewShopRepository(db)
	unitRepo := postgres.NewMeasurementUnitRepository(db)
	priceCache := cacheRepo.NewPriceCache(
		redisClient,
		cfg.Cache.PriceListTTL,
		cfg.Cache.BestPriceTTL,
	)

	productService := product.NewService(productRepo, priceCache, appLogger)
	priceService := price.NewService(priceRepo, productRepo, shopRepo, priceCache, publisher, appLogger)
	shopService := shop.NewService(shopRepo, appLogger)
	unitService := unit.NewService(unitRepo, appLogger)

	productHandler := handler.NewProductHandler(productService, appLogger)
	priceHandler := handler.NewPriceHandler(priceService, appLogger)
	shopHandler := handler.NewShopHandler(shopService, appLogger)
	unitHandler := handler.NewUnitHandler(unitService, appLogger)

	router := httpDelivery.NewRouter(productHandler, priceHandler, shopHandler, unitHandler, cfg, appLogger)
	httpHandler := router.Setup()

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      httpHandler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		appLogger.Infof("HTTP server listening on port %s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("HTTP server failed", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", err)
	}

	appLogger.Info("Server stopped gracefully")
}
