package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appaudit "github.com/paperstock/backend/internal/application/audit"
	billingapp "github.com/paperstock/backend/internal/application/billing"
	catalogapp "github.com/paperstock/backend/internal/application/catalog"
	identityapp "github.com/paperstock/backend/internal/application/identity"
	partnerapp "github.com/paperstock/backend/internal/application/partner"
	reportapp "github.com/paperstock/backend/internal/application/report"
	tradeapp "github.com/paperstock/backend/internal/application/trade"
	"github.com/paperstock/backend/internal/domain/identity"
	"github.com/paperstock/backend/internal/infrastructure/auth"
	"github.com/paperstock/backend/internal/infrastructure/config"
	"github.com/paperstock/backend/internal/infrastructure/logger"
	"github.com/paperstock/backend/internal/infrastructure/persistence"
	"github.com/paperstock/backend/internal/infrastructure/seed"
	"github.com/paperstock/backend/internal/infrastructure/store"
	"github.com/paperstock/backend/internal/interfaces/http/handler"
	"github.com/paperstock/backend/internal/interfaces/http/middleware"
	"github.com/paperstock/backend/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting application",
		zap.String("name", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("store", cfg.Store.Driver),
	)

	// Initialize the key-value store backend
	kv, err := newStore(cfg)
	if err != nil {
		log.Fatal("Failed to initialize store", zap.Error(err))
	}
	defer func() {
		if closer, ok := kv.(interface{ Close() error }); ok {
			if err := closer.Close(); err != nil {
				log.Warn("Failed to close store", zap.Error(err))
			}
		}
	}()

	// Initialize repositories. Each repository writes its seed data on
	// first use of an empty store.
	itemRepo := persistence.NewKVItemRepository(kv, seed.Items())
	vendorRepo := persistence.NewKVVendorRepository(kv, seed.Vendors())
	departmentRepo := persistence.NewKVDepartmentRepository(kv, seed.Departments())
	quantityRepo := persistence.NewKVUnitQuantityRepository(kv, seed.UnitQuantities())
	orderRepo := persistence.NewKVPurchaseOrderRepository(kv, seed.PurchaseOrders())
	challanRepo := persistence.NewKVChallanRepository(kv, seed.Challans())
	issueRepo := persistence.NewKVItemIssueRepository(kv, seed.ItemIssues())
	billRepo := persistence.NewKVBillRepository(kv, seed.Bills())
	paymentRepo := persistence.NewKVVendorPaymentRepository(kv, seed.VendorPayments())
	auditRepo := persistence.NewKVAuditLogRepository(kv)
	failedRepo := persistence.NewKVFailedTransactionRepository(kv)

	// Initialize identity
	directory, err := identity.NewDirectory(identity.DefaultUsers())
	if err != nil {
		log.Fatal("Failed to build user directory", zap.Error(err))
	}
	tokenService := auth.NewTokenService(cfg.Session)

	// Initialize application services
	recorder := appaudit.NewRecorder(auditRepo, failedRepo, log)
	authService := identityapp.NewAuthService(directory, tokenService, log)
	itemService := catalogapp.NewItemService(itemRepo, recorder)
	vendorService := partnerapp.NewVendorService(vendorRepo, recorder)
	departmentService := partnerapp.NewDepartmentService(departmentRepo, recorder)
	quantityService := partnerapp.NewQuantityService(quantityRepo, recorder)
	flowService := tradeapp.NewDocumentFlowService(
		orderRepo, challanRepo, issueRepo,
		itemRepo, vendorRepo, departmentRepo,
		recorder, log,
	)
	billService := billingapp.NewBillService(
		billRepo, paymentRepo, challanRepo, vendorRepo, recorder,
	)
	reportService := reportapp.NewReportService(
		orderRepo, challanRepo, issueRepo, billRepo, itemRepo,
	)

	// Initialize HTTP handlers
	authHandler := handler.NewAuthHandler(authService)
	itemHandler := handler.NewItemHandler(itemService)
	vendorHandler := handler.NewVendorHandler(vendorService, billService)
	departmentHandler := handler.NewDepartmentHandler(departmentService)
	quantityHandler := handler.NewQuantityHandler(quantityService)
	orderHandler := handler.NewPurchaseOrderHandler(flowService)
	challanHandler := handler.NewChallanHandler(flowService)
	issueHandler := handler.NewItemIssueHandler(flowService)
	billHandler := handler.NewBillHandler(billService)
	reportHandler := handler.NewReportHandler(reportService)
	adminHandler := handler.NewAdminHandler(authService, recorder)

	// Setup gin
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()
	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(logger.Recovery(log))
	engine.Use(middleware.SessionAuth(tokenService))

	// Health checks live outside the versioned API but are also mirrored
	// under it; both paths are skipped by the session middleware.
	engine.GET("/health", healthHandler(cfg))
	engine.GET("/api/v1/health", healthHandler(cfg))

	// Register routes
	router.NewRouter(engine).
		Register(authHandler).
		Register(itemHandler).
		Register(vendorHandler).
		Register(departmentHandler).
		Register(quantityHandler).
		Register(orderHandler).
		Register(challanHandler).
		Register(issueHandler).
		Register(billHandler).
		Register(reportHandler).
		Register(adminHandler).
		Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// newStore builds the key-value store selected by store.driver.
func newStore(cfg *config.Config) (store.KeyValueStore, error) {
	switch cfg.Store.Driver {
	case "memory":
		return store.NewMemoryStore(), nil
	case "postgres":
		return store.NewGormStore(store.GormConfig{
			Driver: "postgres",
			DSN:    cfg.Database.DSN(),
		})
	case "redis":
		return store.NewRedisStore(store.RedisConfig{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	default:
		return store.NewGormStore(store.GormConfig{
			Driver: "sqlite",
			DSN:    cfg.Store.SQLitePath,
		})
	}
}

// healthHandler reports process liveness
func healthHandler(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
			"store":  cfg.Store.Driver,
		})
	}
}
