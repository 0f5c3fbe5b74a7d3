package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	commonmw "pharmacy-store/common/middleware"
	"pharmacy-store/common/logger"
	"pharmacy-store/controllers"
	"pharmacy-store/middleware"
	"pharmacy-store/repository"
	"pharmacy-store/routes"
	"pharmacy-store/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Load .env file (optional, falls back to system env)
	_ = godotenv.Load()

	cfg := LoadConfig()

	logger.Initialize(cfg.Env)
	defer logger.Log.Sync()

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		zap.L().Fatal("Failed to create data directory", zap.String("dir", cfg.DataDir), zap.Error(err))
	}
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		zap.L().Fatal("Failed to create upload directory", zap.String("dir", cfg.UploadDir), zap.Error(err))
	}

	// --- Dependency injection (wiring the layers together) ---

	productRepo := repository.NewProductRepository(cfg.ProductsFile())
	userRepo := repository.NewUserRepository(cfg.UsersFile())

	sessions := services.NewSessionStore(cfg.SessionTTL)
	authService := services.NewAuthService(userRepo, sessions)
	productService := services.NewProductService(productRepo)

	authController := controllers.NewAuthController(authService, int(cfg.SessionTTL.Seconds()))
	productController := controllers.NewProductController(productService)
	uploadController := controllers.NewUploadController(cfg.UploadDir)

	sweepCtx, stopSweeper := context.WithCancel(context.Background())
	defer stopSweeper()
	go sessions.StartSweeper(sweepCtx, 10*time.Minute)

	// --- HTTP server & middleware ---

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger())
	r.Use(commonmw.SecurityHeaders())
	r.Use(commonmw.CORSMiddleware())
	r.Use(commonmw.RateLimitMiddleware())

	// Request timeout
	r.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	routes.RegisterRoutes(r, authController, productController, uploadController,
		middleware.RequireAuth(authService))

	r.Static("/uploads", cfg.UploadDir)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	// --- Graceful shutdown ---

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		zap.L().Info("Pharmacy store starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zap.L().Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Fatal("Server forced to shutdown", zap.Error(err))
	}

	zap.L().Info("Stopped gracefully")
}
