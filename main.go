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

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/folio/api/audit"
	"github.com/dev-mohitbeniwal/folio/api/auth"
	"github.com/dev-mohitbeniwal/folio/api/config"
	"github.com/dev-mohitbeniwal/folio/api/controller"
	"github.com/dev-mohitbeniwal/folio/api/db"
	logger "github.com/dev-mohitbeniwal/folio/api/logging"
	"github.com/dev-mohitbeniwal/folio/api/router"
	"github.com/dev-mohitbeniwal/folio/api/service"
	"github.com/dev-mohitbeniwal/folio/api/util"
)

func main() {
	// Initialize configuration
	if err := config.InitConfig(); err != nil {
		log.Fatalf("Failed to initialize config: %v", err)
	}

	// Initialize logger
	logger.InitLogger(config.GetString("log.dir"))
	defer logger.Sync()

	// Initialize Neo4j. The database is required: failure here is fatal.
	driver, err := db.NewNeo4jDriver(
		config.GetString("neo4j.uri"),
		config.GetString("neo4j.username"),
		config.GetString("neo4j.password"),
	)
	if err != nil {
		logger.Fatal("Failed to initialize Neo4j", zap.Error(err))
	}
	defer db.CloseNeo4jDriver(driver)

	// Initialize Redis. The cache is optional: when it is down, cached
	// routes serve live responses and rate limiting is disabled.
	cache := db.NewRedisCache(config.GetString("redis.addr"))
	defer cache.Close()

	// Initialize EventBus
	eventBus := util.NewEventBus()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	eventBus.Start(ctx)

	// Initialize services and utilities
	tokenService := auth.NewTokenService(
		config.GetString("jwt.secret"),
		config.GetDuration("jwt.ttl"),
	)
	validationUtil := util.NewValidationUtil()
	cacheService := util.NewCacheService(cache, config.GetDuration("redis.defaultTTL"))
	notificationService := util.NewNotificationService()
	auditRepository, err := audit.NewElasticsearchRepository(config.GetString("elasticsearch.url"))
	if err != nil {
		logger.Fatal("Failed to initialize audit repository", zap.Error(err))
	}
	auditService := audit.NewService(auditRepository)

	// Initialize services
	services, err := service.InitializeServices(
		driver,
		auditService,
		tokenService,
		validationUtil,
		cacheService,
		notificationService,
		eventBus,
	)
	if err != nil {
		logger.Fatal("Failed to initialize services", zap.Error(err))
	}

	// Initialize controllers
	controllers := controller.InitializeControllers(services)

	// Set up Gin
	gin.SetMode(gin.ReleaseMode)
	engine := router.SetupRouter(
		controllers,
		tokenService,
		cache,
		config.GetDuration("redis.pageTTL"),
		100,         // requests
		time.Minute, // per
	)

	// Set up the server
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", config.GetString("server.port")),
		Handler: engine,
	}

	// Start the server in a goroutine
	go func() {
		logger.Info("Starting server", zap.String("port", config.GetString("server.port")))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	// The context is used to inform the server it has 5 seconds to finish
	// the request it is currently handling
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exiting")
}
