package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pos/backend/docs"
	businessapp "github.com/pos/backend/internal/application/business"
	catalogapp "github.com/pos/backend/internal/application/catalog"
	partnerapp "github.com/pos/backend/internal/application/partner"
	taskapp "github.com/pos/backend/internal/application/task"
	tradeapp "github.com/pos/backend/internal/application/trade"
	"github.com/pos/backend/internal/infrastructure/auth"
	"github.com/pos/backend/internal/infrastructure/cache"
	"github.com/pos/backend/internal/infrastructure/config"
	"github.com/pos/backend/internal/infrastructure/logger"
	"github.com/pos/backend/internal/infrastructure/persistence"
	"github.com/pos/backend/internal/infrastructure/telemetry"
	"github.com/pos/backend/internal/interfaces/http/handler"
	"github.com/pos/backend/internal/interfaces/http/middleware"
	"github.com/pos/backend/internal/interfaces/http/router"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

//	@title			POS Backend API
//	@version		1.0
//	@description	Multi-tenant point of sale API: businesses, catalog, partners, purchases, orders and stock.

//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token authentication. Format: "Bearer {token}"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	ctx := context.Background()

	// Telemetry: traces, metrics and (optionally) log export share one collector
	serviceName := cfg.Telemetry.ServiceName
	tracerProvider, err := telemetry.NewTracerProvider(ctx, telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       serviceName,
		ServiceVersion:    cfg.App.Version,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize tracer provider", zap.Error(err))
	}
	defer shutdown(log, "tracer provider", tracerProvider.Shutdown)

	meterProvider, err := telemetry.NewMeterProvider(ctx, telemetry.MetricsConfig{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		ExportInterval:    cfg.Telemetry.MetricsInterval,
		ServiceName:       serviceName,
		ServiceVersion:    cfg.App.Version,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize meter provider", zap.Error(err))
	}
	defer shutdown(log, "meter provider", meterProvider.Shutdown)

	loggerProvider, err := telemetry.NewLoggerProvider(ctx, telemetry.LogsConfig{
		Enabled:           cfg.Telemetry.Enabled && cfg.Telemetry.LogsEnabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		ServiceName:       serviceName,
		ServiceVersion:    cfg.App.Version,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize logger provider", zap.Error(err))
	}
	defer shutdown(log, "logger provider", loggerProvider.Shutdown)
	log = loggerProvider.Bridge(log, logger.ParseLevel(cfg.Telemetry.LogsLevel))

	log.Info("Starting POS Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("version", cfg.App.Version),
	)

	// Database with zap-backed GORM logging and statement instrumentation
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Database.LogLevel))
	db, err := persistence.NewDatabase(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()

	dbPlugin, err := telemetry.NewDBPlugin(telemetry.DBInstrumentationConfig{
		Tracing:            cfg.Telemetry.DBTraceEnabled,
		LogFullSQL:         cfg.Telemetry.DBLogFullSQL && !cfg.App.IsProduction(),
		SlowQueryThreshold: cfg.Telemetry.DBSlowQueryThresh,
	}, meterProvider.Meter("pos.db"), log)
	if err != nil {
		log.Fatal("Failed to create database instrumentation", zap.Error(err))
	}
	if err := db.DB.Use(dbPlugin); err != nil {
		log.Fatal("Failed to register database instrumentation", zap.Error(err))
	}
	log.Info("Database connected successfully")

	// Repositories
	businessRepo := persistence.NewGormBusinessRepository(db.DB)
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	supplierRepo := persistence.NewGormSupplierRepository(db.DB)
	purchaseRepo := persistence.NewGormPurchaseRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	taskRepo := persistence.NewGormTaskRepository(db.DB)
	txScope := persistence.NewGormTransactionScope(db.DB)

	// Business metrics: stock movements per document, low stock gauge
	businessMetrics, err := telemetry.NewBusinessMetrics(telemetry.BusinessMetricsConfig{
		Meter:             meterProvider.Meter("pos.business"),
		Logger:            log,
		CollectInterval:   cfg.Inventory.MetricsCollectInterval,
		LowStockThreshold: cfg.Inventory.LowStockThreshold,
		InventoryProvider: telemetry.NewGormInventoryMetricsProvider(db.DB),
	})
	if err != nil {
		log.Fatal("Failed to create business metrics", zap.Error(err))
	}
	if cfg.Inventory.MetricsCollectorEnabled && meterProvider.IsEnabled() {
		businessMetrics.StartPeriodicCollection(ctx, telemetry.NewGormBusinessProvider(db.DB),
			cfg.Inventory.MetricsCollectInterval, cfg.Inventory.LowStockThreshold)
		defer businessMetrics.Stop()
	}

	// Application services
	businessService := businessapp.NewBusinessService(businessRepo)
	categoryService := catalogapp.NewCategoryService(categoryRepo)
	productService := catalogapp.NewProductService(productRepo, categoryRepo)
	customerService := partnerapp.NewCustomerService(customerRepo)
	supplierService := partnerapp.NewSupplierService(supplierRepo)
	purchaseService := tradeapp.NewPurchaseService(purchaseRepo, txScope)
	purchaseService.SetBusinessMetrics(businessMetrics)
	purchaseService.SetLogger(log)
	orderService := tradeapp.NewOrderService(orderRepo, txScope)
	orderService.SetBusinessMetrics(businessMetrics)
	orderService.SetLogger(log)
	inventoryService := tradeapp.NewInventoryService(productRepo, purchaseRepo, orderRepo)
	taskService := taskapp.NewTaskService(taskRepo)

	// Authentication: revocations written by the session service are read
	// from Redis when it is available
	jwtService := auth.NewJWTService(cfg.JWT)
	var (
		blacklist   auth.TokenBlacklist
		rateLimiter middleware.RateLimiter
		replays     middleware.IdempotencyStore
	)
	if cfg.Redis.Enabled {
		redisBlacklist, err := auth.NewRedisTokenBlacklist(ctx, cfg.Redis)
		if err != nil {
			log.Warn("Redis unavailable, token revocations are not checked", zap.Error(err))
		} else {
			defer func() {
				if err := redisBlacklist.Close(); err != nil {
					log.Error("Error closing Redis", zap.Error(err))
				}
			}()
			blacklist = redisBlacklist
			rateLimiter = middleware.NewRedisRateLimiter(redisBlacklist.Client(), cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
			replays = cache.NewRedisIdempotencyStore(redisBlacklist.Client(), "")
		}
	}
	if replays == nil {
		memoryReplays := cache.NewInMemoryIdempotencyStore()
		defer memoryReplays.Close()
		replays = memoryReplays
	}

	jwtConfig := middleware.DefaultJWTConfig(jwtService)
	jwtConfig.TokenBlacklist = blacklist
	jwtConfig.Logger = log
	authGuard := middleware.JWTAuthMiddlewareWithConfig(jwtConfig)

	// HTTP
	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware order: request id first so every later log line and span
	// carries it; tracing before the attribute injector; limits last.
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.TracingWithConfig(middleware.TracingConfig{
		ServiceName: serviceName,
		Enabled:     cfg.Telemetry.Enabled,
		SkipPaths:   []string{"/health", "/api/v1/health"},
	}))
	engine.Use(middleware.TracingAttributeInjector())
	engine.Use(middleware.HTTPMetrics(middleware.HTTPMetricsConfig{
		MeterProvider: meterProvider,
		Enabled:       cfg.Telemetry.Enabled,
	}))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining", "Location"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))
	if cfg.HTTP.RateLimitEnabled {
		if rateLimiter == nil {
			memoryLimiter := middleware.NewMemoryRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
			defer memoryLimiter.Stop()
			rateLimiter = memoryLimiter
		}
		engine.Use(middleware.RateLimit(rateLimiter, log))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	systemHandler := handler.NewSystemHandler(cfg.App.Version, db)
	engine.GET("/health", systemHandler.Health)
	engine.NoRoute(systemHandler.NoRoute)

	docs.Info.Version = cfg.App.Version
	engine.GET("/swagger/*any",
		middleware.SwaggerProtection(cfg.Swagger, authGuard),
		ginSwagger.WrapHandler(swaggerFiles.Handler),
	)

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	router.RegisterAPI(r, router.Handlers{
		System:    systemHandler,
		Business:  handler.NewBusinessHandler(businessService),
		Category:  handler.NewCategoryHandler(categoryService),
		Product:   handler.NewProductHandler(productService),
		Customer:  handler.NewCustomerHandler(customerService),
		Supplier:  handler.NewSupplierHandler(supplierService),
		Purchase:  handler.NewPurchaseHandler(purchaseService),
		Order:     handler.NewOrderHandler(orderService),
		Inventory: handler.NewInventoryHandler(inventoryService),
		Task:      handler.NewTaskHandler(taskService),
	}, router.Guards{
		Auth:        authGuard,
		Business:    middleware.BusinessAuthorization(businessService),
		Idempotency: middleware.Idempotency(replays, cfg.HTTP.IdempotencyTTL, log),
	})
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
		return
	}

	log.Info("Server exited gracefully")
}

// shutdown flushes a telemetry provider, logging instead of failing
func shutdown(log *zap.Logger, name string, fn func(context.Context) error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := fn(ctx); err != nil {
		log.Error("Error shutting down "+name, zap.Error(err))
	}
}
