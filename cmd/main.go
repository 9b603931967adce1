package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/random"

	"github.com/joho/godotenv"

	"wms2/internal/caching"
	"wms2/internal/dashboard"
	"wms2/internal/handlers"
	"wms2/internal/jobs/background"
	"wms2/internal/middleware"
	"wms2/internal/repositories"
	"wms2/internal/services"
	"wms2/pkg/database"
)

const version = "1.0.0"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	// Database connection
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	pool, err := database.NewPool(databaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	// JWT configuration
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = random.String(32) // Generate random secret for development
		log.Printf("WARNING: JWT_SECRET not set, using a generated secret")
	}
	tokenTTL := 3600
	if ttlStr := os.Getenv("JWT_TTL_SECONDS"); ttlStr != "" {
		if ttl, err := strconv.Atoi(ttlStr); err == nil && ttl > 0 {
			tokenTTL = ttl
		}
	}

	// Redis configuration
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}
	redisPassword := os.Getenv("REDIS_PASSWORD")
	redisDB := 0
	if redisDBStr := os.Getenv("REDIS_DB"); redisDBStr != "" {
		if db, err := strconv.Atoi(redisDBStr); err == nil {
			redisDB = db
		}
	}

	// MinIO configuration
	minioEndpoint := os.Getenv("MINIO_ENDPOINT")
	if minioEndpoint == "" {
		minioEndpoint = "localhost:9000"
	}
	minioAccessKey := os.Getenv("MINIO_ACCESS_KEY")
	if minioAccessKey == "" {
		minioAccessKey = "minioadmin" // Default for development
	}
	minioSecretKey := os.Getenv("MINIO_SECRET_KEY")
	if minioSecretKey == "" {
		minioSecretKey = "minioadmin" // Default for development
	}
	useSSL := os.Getenv("MINIO_USE_SSL") == "true"

	reportBucket := os.Getenv("REPORT_BUCKET")
	if reportBucket == "" {
		reportBucket = "reports"
	}

	minioSvc, err := services.NewMinioService(minioEndpoint, minioAccessKey, minioSecretKey, useSSL)
	if err != nil {
		log.Fatalf("Failed to initialize MinIO service: %v", err)
	}
	if err := minioSvc.EnsureBucketExists(context.Background(), reportBucket); err != nil {
		log.Printf("WARNING: Could not ensure report bucket %q: %v", reportBucket, err)
	}

	// Create repositories
	userRepo := repositories.NewUserRepository(pool)
	employeeRepo := repositories.NewEmployeeRepository(pool)
	productRepo := repositories.NewProductRepository(pool)
	packagingRepo := repositories.NewPackagingRepository(pool)
	stockStatusRepo := repositories.NewStockStatusRepository(pool)
	warehouseRepo := repositories.NewWarehouseRepository(pool)
	aisleRepo := repositories.NewAisleRepository(pool)
	binRepo := repositories.NewBinRepository(pool)
	receiptRepo := repositories.NewGoodsReceiptRepository(pool)
	assignmentRepo := repositories.NewSlotAssignmentRepository(pool)

	// Create cache service
	cacheSvc := caching.NewRedisCacheService(redisAddr, redisPassword, redisDB)

	// Create services
	authSvc := services.NewAuthService(userRepo, jwtSecret, tokenTTL)
	productSvc := services.NewProductService(productRepo)
	packagingSvc := services.NewPackagingService(packagingRepo)
	stockStatusSvc := services.NewStockStatusService(stockStatusRepo)
	warehouseSvc := services.NewWarehouseService(warehouseRepo)
	locationSvc := services.NewLocationService(warehouseRepo, aisleRepo, binRepo, cacheSvc)
	employeeSvc := services.NewEmployeeService(employeeRepo, userRepo)
	receivingSvc := services.NewReceivingService(receiptRepo, productRepo, packagingRepo)
	slottingSvc := services.NewSlottingService(assignmentRepo, productRepo, stockStatusRepo, receiptRepo, employeeRepo, locationSvc)
	reportSvc := services.NewReportService(assignmentRepo, receiptRepo, minioSvc, reportBucket)
	dashboardSvc := dashboard.NewService(productRepo, assignmentRepo, receiptRepo, cacheSvc)

	// Create handlers
	authHandlers := handlers.NewAuthHandlers(authSvc)
	productHandlers := handlers.NewProductHandlers(productSvc)
	packagingHandlers := handlers.NewPackagingHandlers(packagingSvc)
	stockStatusHandlers := handlers.NewStockStatusHandlers(stockStatusSvc)
	warehouseHandlers := handlers.NewWarehouseHandlers(warehouseSvc, locationSvc)
	aisleHandlers := handlers.NewAisleHandlers(locationSvc)
	binHandlers := handlers.NewBinHandlers(locationSvc)
	employeeHandlers := handlers.NewEmployeeHandlers(employeeSvc)
	receivingHandlers := handlers.NewReceivingHandlers(receivingSvc)
	slottingHandlers := handlers.NewSlottingHandlers(slottingSvc, employeeSvc)
	reportHandlers := handlers.NewReportHandlers(reportSvc)
	dashboardHandlers := handlers.NewDashboardHandlers(dashboardSvc)
	healthHandlers := handlers.NewHealthHandlers(pool)

	// Background jobs
	scheduler := background.NewJobScheduler(dashboardSvc)
	if err := scheduler.Start(); err != nil {
		log.Printf("Failed to start job scheduler: %v", err)
	}
	defer scheduler.Stop()

	// Create Echo instance
	e := echo.New()

	// Global middleware
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(echoMiddleware.RemoveTrailingSlash())

	// Health endpoints (no auth required)
	e.GET("/health", healthHandlers.LivenessCheck)
	e.GET("/health/ready", healthHandlers.ReadinessCheck)

	// API routes
	v1 := e.Group("/v1")

	// Authentication routes (no JWT required for signup/login)
	auth := v1.Group("/auth")
	auth.POST("/signup", authHandlers.Signup)
	auth.POST("/login", authHandlers.Login)

	// Protected routes
	protected := v1.Group("")
	protected.Use(echojwt.WithConfig(middleware.JWTConfig(jwtSecret)))

	// Product catalog
	protected.GET("/products", productHandlers.ListProducts)
	protected.POST("/products", productHandlers.CreateProduct)
	protected.GET("/products/:id", productHandlers.GetProduct)
	protected.PUT("/products/:id", productHandlers.UpdateProduct)

	// Packagings
	protected.GET("/packagings", packagingHandlers.ListPackagings)
	protected.POST("/packagings", packagingHandlers.CreatePackaging)
	protected.GET("/packagings/:id", packagingHandlers.GetPackaging)
	protected.PUT("/packagings/:id", packagingHandlers.UpdatePackaging)

	// Stock statuses
	protected.GET("/stock-statuses", stockStatusHandlers.ListStockStatuses)
	protected.POST("/stock-statuses", stockStatusHandlers.CreateStockStatus)
	protected.GET("/stock-statuses/:id", stockStatusHandlers.GetStockStatus)
	protected.PUT("/stock-statuses/:id", stockStatusHandlers.UpdateStockStatus)

	// Physical structure
	protected.GET("/warehouses", warehouseHandlers.ListWarehouses)
	protected.POST("/warehouses", warehouseHandlers.CreateWarehouse)
	protected.GET("/warehouses/:id", warehouseHandlers.GetWarehouse)
	protected.PUT("/warehouses/:id", warehouseHandlers.UpdateWarehouse)
	protected.GET("/warehouses/:id/aisles", warehouseHandlers.ListWarehouseAisles)

	protected.GET("/aisles", aisleHandlers.ListAisles)
	protected.POST("/aisles", aisleHandlers.CreateAisle)
	protected.GET("/aisles/:id", aisleHandlers.GetAisle)
	protected.PUT("/aisles/:id", aisleHandlers.UpdateAisle)
	protected.GET("/aisles/:id/bins", aisleHandlers.ListAisleBins)

	protected.GET("/bins", binHandlers.ListBins)
	protected.POST("/bins", binHandlers.CreateBin)
	protected.GET("/bins/:id", binHandlers.GetBin)
	protected.PUT("/bins/:id", binHandlers.UpdateBin)

	// Employees
	protected.GET("/employees", employeeHandlers.ListEmployees)
	protected.POST("/employees", employeeHandlers.CreateEmployee)
	protected.GET("/employees/:id", employeeHandlers.GetEmployee)
	protected.PUT("/employees/:id", employeeHandlers.UpdateEmployee)

	// Goods receipts
	protected.GET("/receipts", receivingHandlers.ListReceipts)
	protected.POST("/receipts", receivingHandlers.CreateReceipt)
	protected.GET("/receipts/:id", receivingHandlers.GetReceipt)
	protected.PUT("/receipts/:id", receivingHandlers.UpdateReceipt)
	protected.PUT("/receipts/:id/status", receivingHandlers.UpdateReceiptStatus)

	// Slot assignments
	protected.GET("/assignments", slottingHandlers.ListAssignments)
	protected.POST("/assignments", slottingHandlers.CreateAssignment)
	protected.GET("/assignments/:id", slottingHandlers.GetAssignment)
	protected.PUT("/assignments/:id", slottingHandlers.UpdateAssignment)

	// Reports
	protected.GET("/reports/stock", reportHandlers.StockReport)
	protected.GET("/reports/receipts", reportHandlers.ReceiptReport)

	// Dashboard
	protected.GET("/dashboard", dashboardHandlers.GetSummary)

	// Start server
	portStr := os.Getenv("PORT")
	if portStr == "" {
		portStr = "8080"
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		log.Fatalf("Invalid port %s: %v", portStr, err)
	}

	log.Printf("WMS server v%s starting on port %d", version, port)

	e.Logger.Fatal(e.Start(fmt.Sprintf(":%d", port)))
}
