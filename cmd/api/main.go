package main

import (
	"fatura/internal/config"
	"fatura/internal/database"
	"fatura/internal/handlers"
	"fatura/internal/logger"
	"fatura/internal/middleware"
	"fatura/internal/services"
	"fatura/internal/validator"
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "fatura/internal/docs" // Import swagger docs
)

// @title           Fatura API
// @version         1.0
// @description     Fatura is a personal finance API for tracking invoices across categories and billing types, with installment and recurring purchase accounting.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(appConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom binding validators
	validator.Register()

	// Initialize services
	db := dbManager.DB()
	invoiceService := services.NewInvoiceService(db)
	categoryService := services.NewCategoryService(db)
	billingTypeService := services.NewBillingTypeService(db)

	// Initialize handlers
	invoiceHandler := handlers.NewInvoiceHandler(invoiceService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	billingTypeHandler := handlers.NewBillingTypeHandler(billingTypeService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Unknown methods and routes get explicit JSON bodies
	router.HandleMethodNotAllowed = true
	router.NoMethod(handlers.MethodNotAllowed)
	router.NoRoute(handlers.NotFound)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Invoice routes. The summary route must be registered before the
	// parameterized ones so "summary" is never read as an ID.
	invoices := router.Group("/invoices")
	invoices.POST("", invoiceHandler.CreateInvoice)
	invoices.GET("", invoiceHandler.ListInvoices)
	invoices.GET("/summary", invoiceHandler.GetSummary)
	invoices.GET("/:id", invoiceHandler.GetInvoiceByID)
	invoices.PUT("/:id", invoiceHandler.UpdateInvoice)
	invoices.DELETE("/:id", invoiceHandler.DeleteInvoice)

	// Category routes
	categories := router.Group("/categories")
	categories.POST("", categoryHandler.CreateCategory)
	categories.GET("", categoryHandler.ListCategories)
	categories.GET("/:id", categoryHandler.GetCategoryByID)
	categories.PUT("/:id", categoryHandler.UpdateCategory)
	categories.DELETE("/:id", categoryHandler.DeleteCategory)

	// Billing type routes
	billingTypes := router.Group("/billingTypes")
	billingTypes.POST("", billingTypeHandler.CreateBillingType)
	billingTypes.GET("", billingTypeHandler.ListBillingTypes)
	billingTypes.GET("/:id", billingTypeHandler.GetBillingTypeByID)
	billingTypes.PUT("/:id", billingTypeHandler.UpdateBillingType)
	billingTypes.DELETE("/:id", billingTypeHandler.DeleteBillingType)

	log.Infof("Starting Fatura backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
