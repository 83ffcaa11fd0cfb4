// cmd/api/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/romawatches/storefront/internal/config"
	"github.com/romawatches/storefront/internal/domain/analytics"
	"github.com/romawatches/storefront/internal/domain/cart"
	"github.com/romawatches/storefront/internal/domain/checkout"
	"github.com/romawatches/storefront/internal/domain/order"
	"github.com/romawatches/storefront/internal/domain/product"
	"github.com/romawatches/storefront/internal/domain/user"
	"github.com/romawatches/storefront/internal/infrastructure/database/postgres"
	"github.com/romawatches/storefront/internal/infrastructure/database/redis"
	"github.com/romawatches/storefront/internal/interfaces/http"
	"github.com/romawatches/storefront/internal/interfaces/http/routes"
	"github.com/romawatches/storefront/internal/pkg/auth"
	"github.com/romawatches/storefront/internal/pkg/email"
	"github.com/romawatches/storefront/internal/pkg/logger"
	"github.com/romawatches/storefront/internal/pkg/pdf"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("🚀 Starting %s v%s in %s mode", cfg.App.Name, cfg.App.Version, cfg.App.Environment)

	appLogger := logger.New(cfg)

	// Connect to database
	db, err := postgres.NewConnection(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Connect to Redis
	redisClient, err := redis.NewConnection(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// Health check
	if err := db.Health(); err != nil {
		log.Fatalf("Database health check failed: %v", err)
	}

	if err := redisClient.Health(); err != nil {
		log.Fatalf("Redis health check failed: %v", err)
	}

	// Run database migrations
	migration := postgres.NewMigration(db.GetDB())

	if err := migration.RunAutoMigrations(); err != nil {
		log.Fatalf("Database migration failed: %v", err)
	}

	if err := migration.CreateIndexes(); err != nil {
		log.Printf("Warning: Index creation failed: %v", err)
	}

	// Seed initial data in development
	if cfg.IsDevelopment() {
		if err := migration.SeedInitialData(); err != nil {
			log.Printf("Warning: Data seeding failed: %v", err)
		}
		if err := migration.GetTableInfo(); err != nil {
			log.Printf("Warning: Table info failed: %v", err)
		}
	}

	// Wire services
	gormDB := db.GetDB()
	rdb := redisClient.GetClient()

	orderRepo := order.NewGormRepository(gormDB)
	userRepo := user.NewGormRepository(gormDB)

	emailService := email.NewEmailService(cfg, appLogger)
	notifier := email.NewOrderNotifier(emailService, orderRepo, userRepo, cfg, appLogger)
	if !emailService.Enabled() {
		log.Println("⚠️  EMAIL_PROVIDER not set, order emails are disabled")
	}

	products := product.NewCachedRepository(product.NewGormRepository(gormDB), rdb, cfg.Catalog.CacheTTL, appLogger)
	productService := product.NewService(products, cfg)
	cartService := cart.NewService(cart.NewGormRepository(gormDB), products, cart.NewRedisSnapshotStore(rdb), cfg, appLogger)
	checkoutService := checkout.NewService(postgres.NewStore(gormDB), cartService, cfg, appLogger).WithNotifier(notifier)
	orderService := order.NewService(orderRepo, cfg, appLogger).WithNotifier(notifier)
	userService := user.NewService(userRepo, auth.NewGoogleVerifier(cfg), cfg, appLogger)
	analyticsService := analytics.NewService(analytics.NewGormRepository(gormDB), cfg)

	services := &routes.Services{
		Products:  productService,
		Carts:     cartService,
		Checkout:  checkoutService,
		Orders:    orderService,
		Users:     userService,
		Analytics: analyticsService,
		Invoices:  pdf.NewService(cfg),
		JWT:       auth.NewJWTManager(cfg),
	}

	log.Println("✅ All systems operational!")

	// Create and start HTTP server
	server := http.NewServer(cfg, gormDB, rdb, services, appLogger)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("👋 Shutting down gracefully...")

	// Give server 30 seconds to shutdown gracefully
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Stop(ctx); err != nil {
		log.Printf("Failed to shutdown HTTP server gracefully: %v", err)
	}

	// Let queued order emails finish
	notifier.Wait()

	log.Println("✅ Server shutdown completed")
}
