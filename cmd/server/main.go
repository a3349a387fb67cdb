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

	"github.com/dummyhub/backend/internal/application/pages"
	"github.com/dummyhub/backend/internal/infrastructure/config"
	"github.com/dummyhub/backend/internal/infrastructure/dummyjson"
	"github.com/dummyhub/backend/internal/infrastructure/logger"
	"github.com/dummyhub/backend/internal/infrastructure/prefs"
	"github.com/dummyhub/backend/internal/infrastructure/telemetry"
	"github.com/dummyhub/backend/internal/interfaces/http/handler"
	"github.com/dummyhub/backend/internal/interfaces/http/middleware"
	"github.com/dummyhub/backend/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
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
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting DummyHub Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Initialize tracing
	tracerProvider, err := telemetry.NewTracerProvider(context.Background(), telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize tracing", zap.Error(err))
	}
	defer func() {
		if err := tracerProvider.Shutdown(context.Background()); err != nil {
			log.Error("Error shutting down tracer provider", zap.Error(err))
		}
	}()

	// Theme preference store (memory or Redis per config)
	themeStore, err := prefs.NewStoreFactory(cfg.Prefs, cfg.Redis, prefs.WithLogger(log)).CreateStore()
	if err != nil {
		log.Fatal("Failed to create theme store", zap.Error(err))
	}
	defer func() {
		if err := themeStore.Close(); err != nil {
			log.Error("Error closing theme store", zap.Error(err))
		}
	}()

	// Upstream data client
	upstream := dummyjson.NewClient(&cfg.Upstream)
	log.Info("Upstream client configured",
		zap.String("base_url", cfg.Upstream.BaseURL),
		zap.Duration("timeout", cfg.Upstream.Timeout),
	)

	// Page services
	quotesService := pages.NewQuotesService(upstream, log)
	pagesHandler := handler.NewPagesHandler(
		pages.NewHomeService(),
		pages.NewAboutService(),
		pages.NewProductsService(upstream, log),
		pages.NewUsersService(upstream, log),
		pages.NewPostsService(upstream, log),
		pages.NewTodosService(upstream, log),
		quotesService,
		pages.NewCartsService(upstream, log),
	)
	quotesHandler := handler.NewQuotesHandler(quotesService)
	prefsHandler := handler.NewPrefsHandler(themeStore)
	systemHandler := handler.NewSystemHandler()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Apply middleware stack in order:
	// 1. RequestID - Generate/propagate request ID
	// 2. ClientID - Resolve the browser session identity
	// 3. Recovery - Catch panics
	// 4. Logger - Log requests
	// 5. Security - Add security headers
	// 6. CORS - Handle cross-origin requests
	// 7. Tracing - Record request spans
	engine.Use(middleware.RequestID())
	engine.Use(middleware.ClientID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "X-Client-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	engine.Use(middleware.TracingWithConfig(middleware.TracingConfig{
		ServiceName: cfg.Telemetry.ServiceName,
		Enabled:     cfg.Telemetry.Enabled,
	}))

	// Health check endpoint (outside API versioning)
	engine.GET("/health", healthHandler(upstream))

	// Setup API routes
	router.NewRouter(engine, router.WithAPIVersion("v1")).
		Register(pagesHandler).
		Register(quotesHandler).
		Register(prefsHandler).
		Register(systemHandler).
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

// healthHandler reports liveness plus upstream reachability. The service
// stays healthy when the upstream is down since pages degrade instead of
// failing.
func healthHandler(upstream *dummyjson.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)

		upstreamStatus := "ok"
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		if err := upstream.Ping(ctx); err != nil {
			reqLog.Warn("Upstream unreachable", zap.Error(err))
			upstreamStatus = "error"
		}

		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"upstream": upstreamStatus,
		})
	}
}
