package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"blue-carbon/marketplace/marketplace-backend/internal/auth"
	"blue-carbon/marketplace/marketplace-backend/internal/config"
	"blue-carbon/marketplace/marketplace-backend/internal/credits"
	"blue-carbon/marketplace/marketplace-backend/internal/estimation"
	"blue-carbon/marketplace/marketplace-backend/internal/notifications"
	"blue-carbon/marketplace/marketplace-backend/internal/projects"
	"blue-carbon/marketplace/marketplace-backend/internal/store"
	"blue-carbon/marketplace/marketplace-backend/internal/users"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig("config.json")
	if err != nil {
		panic(err)
	}

	logger := newLogger(cfg.Logging.Level)
	defer logger.Sync()

	ctx := context.Background()

	// Entity store backend
	var entityStore store.Store
	switch cfg.Store.Driver {
	case config.StoreDriverMongo:
		connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.Store.URI))
		if err != nil {
			logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
		}
		if err := client.Ping(connectCtx, nil); err != nil {
			logger.Fatal("Failed to ping MongoDB", zap.Error(err))
		}
		defer client.Disconnect(ctx)
		entityStore = store.NewMongoStore(client, cfg.Store.Database)
		logger.Info("Connected to MongoDB", zap.String("database", cfg.Store.Database))
	default:
		entityStore = store.NewMemoryStore()
		logger.Info("Using in-memory entity store")
	}

	// Notification transport
	var sender notifications.EmailSender
	switch cfg.Email.Provider {
	case config.EmailProviderSES:
		sesSender, err := notifications.NewSESSender(ctx, notifications.SESConfig{
			Region:          cfg.Email.Region,
			From:            cfg.Email.From,
			AccessKeyID:     cfg.Email.AccessKeyID,
			SecretAccessKey: cfg.Email.SecretAccessKey,
		})
		if err != nil {
			logger.Fatal("Failed to initialize SES sender", zap.Error(err))
		}
		sender = sesSender
	default:
		sender = notifications.NewLogSender(logger)
	}

	// Repositories and services
	projectRepo := projects.NewRepository(entityStore, logger)
	creditRepo := credits.NewRepository(entityStore, logger)
	userRepo := users.NewRepository(entityStore, logger)

	if cfg.Store.Driver == config.StoreDriverMemory && cfg.Store.Seed {
		if err := projects.Seed(ctx, projectRepo); err != nil {
			logger.Warn("Failed to seed demo projects", zap.Error(err))
		}
	}

	userService := users.NewService(userRepo)
	projectService := projects.NewService(projectRepo)
	creditService := credits.NewService(creditRepo, projectRepo, sender, logger)
	estimationService := estimation.NewService()

	projectHandler := projects.NewHandler(projectService, userService, logger)
	creditHandler := credits.NewHandler(creditService, userService, logger)
	userHandler := users.NewHandler(userService, logger)
	estimationHandler := estimation.NewHandler(estimationService, logger)

	// Setup Router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", "Authorization"},
		MaxAge:          12 * time.Hour,
	}))
	router.Use(auth.Identity(logger))

	// Register Routes
	api := router.Group("/api/v1")
	{
		projectHandler.RegisterRoutes(api)
		creditHandler.RegisterRoutes(api)
		userHandler.RegisterRoutes(api)
		estimationHandler.RegisterRoutes(api)
	}

	// Health Check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
		})
	})

	// Start Server
	srv := &http.Server{
		Addr:         cfg.Server.GetServerAddr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen failed", zap.Error(err))
		}
	}()

	logger.Info("Server started", zap.String("addr", srv.Addr))

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exiting")
}

func newLogger(level string) *zap.Logger {
	var logger *zap.Logger
	var err error
	if level == "debug" {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}
	return logger
}
