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

	"github.com/DarkcodeQuan/WebProject/config"
	"github.com/DarkcodeQuan/WebProject/controllers"
	"github.com/DarkcodeQuan/WebProject/database"
	"github.com/DarkcodeQuan/WebProject/middleware"
	"github.com/DarkcodeQuan/WebProject/models"
	"github.com/DarkcodeQuan/WebProject/pkg/apperrors"
	"github.com/DarkcodeQuan/WebProject/pkg/logger"
	"github.com/DarkcodeQuan/WebProject/repository"
	"github.com/DarkcodeQuan/WebProject/routes"
	"github.com/DarkcodeQuan/WebProject/services"
)

func main() {
	cfg := config.Load()

	logger.Initialize(cfg.Env)
	defer logger.Log.Sync()

	if err := database.ConnectWithConfig(cfg.MongoURL, cfg.MongoDB); err != nil {
		zap.L().Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer func() {
		if err := database.Close(); err != nil {
			zap.L().Error("Failed to disconnect from MongoDB", zap.Error(err))
		}
	}()
	zap.L().Info("Connected to MongoDB", zap.String("database", cfg.MongoDB))

	redisClient, err := database.NewRedisClient(cfg.RedisURL)
	if err != nil {
		zap.L().Fatal("Failed to connect to Redis", zap.Error(err))
	}
	zap.L().Info("Connected to Redis")

	// Repositories
	productRepo := repository.NewProductRepository(database.DB)
	categoryRepo := repository.NewCategoryRepository(database.DB)
	orderRepo := repository.NewOrderRepository(database.DB)
	userRepo := repository.NewUserRepository(database.DB)
	sessionRepo := repository.NewSessionRepository(redisClient, cfg.SessionTTL)

	// Services
	catalogService := services.NewCatalogService(productRepo, categoryRepo)
	cartService := services.NewCartService(productRepo, sessionRepo)
	orderService := services.NewOrderService(orderRepo, sessionRepo, cartService)
	authService := services.NewAuthService(userRepo)

	// Controllers
	productController := controllers.NewProductController(catalogService)
	categoryController := controllers.NewCategoryController(catalogService)
	cartController := controllers.NewCartController(cartService)
	orderController := controllers.NewOrderController(orderService)
	authController := controllers.NewAuthController(authService, sessionRepo)
	adminController := controllers.NewAdminController(productRepo, categoryRepo)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.RateLimitMiddleware())
	r.Use(apperrors.ErrorMiddleware())

	// Request timeout for every store-backed handler
	r.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	r.Use(middleware.Session(sessionRepo, cfg.SessionTTL))
	r.Use(middleware.CSRF())
	r.Use(middleware.RefreshCartPrices(cartService, sessionRepo))
	r.Use(middleware.CheckAuthStatus())

	// Product images are plain static files under the image root
	r.Static(models.ImagePublicPrefix, models.ImageStorageRoot)

	routes.RegisterRoutes(r,
		productController,
		categoryController,
		cartController,
		orderController,
		authController,
		adminController,
	)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		zap.L().Info("Storefront starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zap.L().Info("Shutting down storefront...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Fatal("Server forced to shutdown", zap.Error(err))
	}

	if err := redisClient.Close(); err != nil {
		zap.L().Error("Failed to close Redis", zap.Error(err))
	}

	zap.L().Info("Storefront stopped gracefully")
}
