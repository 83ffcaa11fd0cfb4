// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/romawatches/storefront/internal/domain/analytics"
	"github.com/romawatches/storefront/internal/domain/cart"
	"github.com/romawatches/storefront/internal/domain/checkout"
	"github.com/romawatches/storefront/internal/domain/order"
	"github.com/romawatches/storefront/internal/domain/product"
	"github.com/romawatches/storefront/internal/domain/user"
	"github.com/romawatches/storefront/internal/interfaces/http/handlers"
	"github.com/romawatches/storefront/internal/interfaces/http/middleware"
	"github.com/romawatches/storefront/internal/pkg/auth"
	"github.com/sirupsen/logrus"
)

// Services holds everything the API handlers call into
type Services struct {
	Products  *product.Service
	Carts     *cart.Service
	Checkout  *checkout.Service
	Orders    *order.Service
	Users     *user.Service
	Analytics *analytics.Service
	Invoices  handlers.InvoiceRenderer
	JWT       *auth.JWTManager
}

// SetupRoutes registers every API route on rg
func SetupRoutes(rg *gin.RouterGroup, services *Services, logger *logrus.Logger) {
	SetupAuthRoutes(rg, services, logger)
	SetupProductRoutes(rg, services, logger)
	SetupCartRoutes(rg, services, logger)
	SetupCheckoutRoutes(rg, services, logger)
	SetupOrderRoutes(rg, services, logger)
	SetupAdminRoutes(rg, services, logger)
}

// SetupAuthRoutes sets up authentication related routes
func SetupAuthRoutes(rg *gin.RouterGroup, services *Services, logger *logrus.Logger) {
	authHandler := handlers.NewAuthHandler(services.Users, logger)

	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/google", authHandler.GoogleLogin)
		authGroup.POST("/refresh", authHandler.RefreshToken)

		protected := authGroup.Group("")
		protected.Use(middleware.AuthMiddleware(services.JWT))
		{
			protected.GET("/profile", authHandler.GetProfile)
		}
	}
}

// SetupProductRoutes sets up catalogue routes
func SetupProductRoutes(rg *gin.RouterGroup, services *Services, logger *logrus.Logger) {
	productHandler := handlers.NewProductHandler(services.Products, logger)

	products := rg.Group("/products")
	{
		products.GET("", productHandler.GetProducts)
		products.GET("/latest", productHandler.GetLatestProducts)
		products.GET("/facets", productHandler.GetFacets)
		products.GET("/:id", productHandler.GetProduct)
	}
}

// SetupCartRoutes sets up cart routes
func SetupCartRoutes(rg *gin.RouterGroup, services *Services, logger *logrus.Logger) {
	cartHandler := handlers.NewCartHandler(services.Carts, logger)

	cartGroup := rg.Group("/cart")
	{
		// The header badge asks for a count before anyone signs in
		cartGroup.GET("/count", middleware.OptionalAuthMiddleware(services.JWT), cartHandler.GetCount)

		protected := cartGroup.Group("")
		protected.Use(middleware.AuthMiddleware(services.JWT))
		{
			protected.GET("", cartHandler.GetCart)
			protected.POST("/add", cartHandler.AddToCart)
			protected.POST("/update", cartHandler.UpdateQuantity)
			protected.POST("/remove", cartHandler.RemoveItem)
			protected.POST("/buy-now", cartHandler.BuyNow)
			protected.POST("/restore", cartHandler.Restore)
		}
	}
}

// SetupCheckoutRoutes sets up checkout routes
func SetupCheckoutRoutes(rg *gin.RouterGroup, services *Services, logger *logrus.Logger) {
	checkoutHandler := handlers.NewCheckoutHandler(services.Checkout, logger)

	checkoutGroup := rg.Group("/checkout")
	checkoutGroup.Use(middleware.AuthMiddleware(services.JWT))
	{
		checkoutGroup.GET("", checkoutHandler.GetSummary)
		checkoutGroup.POST("/process", checkoutHandler.Process)
		checkoutGroup.POST("/confirm-payment", checkoutHandler.ConfirmPayment)
		checkoutGroup.GET("/payment/:id", checkoutHandler.GetPaymentInstructions)
	}
}

// SetupOrderRoutes sets up the customer's order routes
func SetupOrderRoutes(rg *gin.RouterGroup, services *Services, logger *logrus.Logger) {
	orderHandler := handlers.NewOrderHandler(services.Orders, logger)
	invoiceHandler := handlers.NewInvoiceHandler(services.Orders, services.Invoices, logger)

	orders := rg.Group("/orders")
	orders.Use(middleware.AuthMiddleware(services.JWT))
	{
		orders.GET("", orderHandler.GetOrders)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.GET("/:id/invoice", invoiceHandler.GenerateInvoice)
	}

	orderGroup := rg.Group("/order")
	orderGroup.Use(middleware.AuthMiddleware(services.JWT))
	{
		orderGroup.POST("/cancel", orderHandler.CancelOrder)
	}
}

// SetupAdminRoutes sets up back-office routes
func SetupAdminRoutes(rg *gin.RouterGroup, services *Services, logger *logrus.Logger) {
	analyticsHandler := handlers.NewAnalyticsHandler(services.Analytics, logger)
	adminOrderHandler := handlers.NewAdminOrderHandler(services.Orders, logger)

	admin := rg.Group("/admin")
	admin.Use(middleware.AuthMiddleware(services.JWT))
	admin.Use(middleware.AdminMiddleware())
	{
		admin.GET("/dashboard", analyticsHandler.GetDashboard)

		admin.GET("/orders", adminOrderHandler.ListOrders)
		admin.GET("/orders/export", adminOrderHandler.ExportOrders)
		admin.GET("/orders/:id", adminOrderHandler.GetOrder)
		admin.POST("/order/update-status", adminOrderHandler.UpdateStatus)
	}
}
