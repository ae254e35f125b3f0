package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	cartadapters "storefront/internal/cart/adapters"
	cartapp "storefront/internal/cart/application"
	cartinfra "storefront/internal/cart/infrastructure"
	cartworker "storefront/internal/cart/worker"
	checkoutadapters "storefront/internal/checkout/adapters"
	checkoutapp "storefront/internal/checkout/application"
	checkoutdomain "storefront/internal/checkout/domain"
	checkoutinfra "storefront/internal/checkout/infrastructure"
	checkoutports "storefront/internal/checkout/ports"
	customeradapters "storefront/internal/customers/adapters"
	customerapp "storefront/internal/customers/application"
	customerinfra "storefront/internal/customers/infrastructure"
	customerports "storefront/internal/customers/ports"
	orderadapters "storefront/internal/orders/adapters"
	orderapp "storefront/internal/orders/application"
	orderinfra "storefront/internal/orders/infrastructure"
	orderports "storefront/internal/orders/ports"
	"storefront/pkg/config"
	"storefront/pkg/db"
	"storefront/pkg/events"
	"storefront/pkg/logger"
	"storefront/pkg/middleware"
	"storefront/pkg/rabbitmq"
	redispkg "storefront/pkg/redis"
	pkgtls "storefront/pkg/tls"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	log := logger.New(cfg.ServiceName, cfg.LogLevel)
	defer log.Sync()

	log.Info("starting storefront service")

	// Connect to database
	dbConn, err := db.NewConnection(db.Config{
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		DBName:   cfg.DBName,
		SSLMode:  cfg.DBSSLMode,
		Timeout:  cfg.DBTimeout,
	})
	if err != nil {
		log.Fatal("failed to connect to database: " + err.Error())
	}
	log.Info("connected to database")

	// Initialize repositories and run migrations
	orderRepo := orderadapters.NewPostgresOrderRepository(dbConn)
	customerRepo := customeradapters.NewPostgresCustomerRepository(dbConn)
	cartRepo := cartadapters.NewPostgresCartRepository(dbConn)
	catalog := cartadapters.NewPostgresProductCatalog(dbConn)
	settingsProvider := checkoutadapters.NewPostgresSettingsProvider(dbConn, checkoutdomain.Settings{
		RequireOTP:      cfg.RequireOTP,
		RequireLocation: cfg.RequireLocation,
	})

	for _, migrate := range []func() error{
		orderRepo.Migrate,
		customerRepo.Migrate,
		cartRepo.Migrate,
		catalog.Migrate,
		settingsProvider.Migrate,
	} {
		if err := migrate(); err != nil {
			log.Fatal("failed to migrate database: " + err.Error())
		}
	}

	// Connect to Redis for the settings cache (optional)
	var checkoutSettings checkoutports.SettingsProvider = settingsProvider
	redisClient, err := redispkg.NewClient(redispkg.Config{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		log.Warn("failed to connect to Redis, settings cache disabled: " + err.Error())
	} else {
		defer redisClient.Close()
		checkoutSettings = checkoutadapters.NewCachedSettingsProvider(settingsProvider, redisClient, cfg.SettingsTTL, log)
		log.Info("connected to Redis")
	}

	// Create context for background work and graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize use cases
	directory := customeradapters.NewDirectory(customerRepo)
	reconciler := cartapp.NewReconciler(cartRepo, catalog, cfg.ReconcileEmptyCarts, log)
	checkoutUseCase := checkoutapp.NewCheckoutUseCase(checkoutSettings, directory, log)

	// Connect to RabbitMQ (optional; notifications are best effort anyway)
	var orderDispatcher orderports.NotificationDispatcher
	var customerPublisher customerports.EventPublisher
	rabbitConn, err := rabbitmq.NewConnection(cfg.RabbitMQURL, log)
	if err != nil {
		log.Warn("failed to connect to RabbitMQ, notifications will be disabled: " + err.Error())
	} else {
		defer rabbitConn.Close()

		orderPub, err := rabbitmq.NewPublisher(rabbitConn, events.ExchangeOrders, log)
		if err != nil {
			log.Warn("failed to create orders publisher: " + err.Error())
		} else {
			orderDispatcher = orderadapters.NewRabbitMQDispatcher(orderPub, log)
		}

		customerPub, err := rabbitmq.NewPublisher(rabbitConn, events.ExchangeCustomer, log)
		if err != nil {
			log.Warn("failed to create customers publisher: " + err.Error())
		} else {
			customerPublisher = customeradapters.NewRabbitMQPublisher(customerPub, log)
		}

		consumer, err := cartadapters.NewProductDeletedConsumer(rabbitConn, reconciler, log)
		if err != nil {
			log.Warn("failed to create ProductDeleted consumer: " + err.Error())
		} else if err := consumer.Start(ctx); err != nil {
			log.Warn("failed to start consumer: " + err.Error())
		}
	}

	orderUseCase := orderapp.NewOrderUseCase(orderRepo, orderDispatcher, directory, log)
	customerUseCase := customerapp.NewCustomerUseCase(customerRepo, customerPublisher, log)

	// Start the reconciliation worker
	go cartworker.NewReconciliationWorker(reconciler, cfg.ReconcileInterval, log).Run(ctx)

	// Set up HTTP server
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(middleware.TraceID())
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.ErrorHandler(log))
	router.Use(middleware.CORS())

	api := router.Group("/api/v1")
	orderinfra.NewHTTPHandler(orderUseCase).RegisterRoutes(api)
	customerinfra.NewHTTPHandler(customerUseCase).RegisterRoutes(api)
	checkoutinfra.NewHTTPHandler(checkoutUseCase).RegisterRoutes(api)
	cartinfra.NewHTTPHandler(reconciler).RegisterRoutes(api)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	httpServer := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  cfg.HTTPTimeout,
		WriteTimeout: cfg.HTTPTimeout,
	}

	go func() {
		var err error
		if cfg.TLSEnabled {
			tlsConfig, tlsErr := pkgtls.ServerConfig(cfg.TLSCertFile, cfg.TLSKeyFile)
			if tlsErr != nil {
				log.Fatal("failed to load TLS config: " + tlsErr.Error())
			}
			httpServer.TLSConfig = tlsConfig
			log.Info("HTTPS server listening on :" + cfg.HTTPPort)
			err = httpServer.ListenAndServeTLS("", "")
		} else {
			log.Info("HTTP server listening on :" + cfg.HTTPPort)
			err = httpServer.ListenAndServe()
		}
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error: " + err.Error())
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP shutdown error: " + err.Error())
	}

	log.Info("server stopped")
}
