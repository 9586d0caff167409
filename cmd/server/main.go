package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/devkeeb/gearlog/config"
	"github.com/devkeeb/gearlog/internal/auth"
	"github.com/devkeeb/gearlog/internal/httpserver"
	"github.com/devkeeb/gearlog/pkg/cache"
	"github.com/devkeeb/gearlog/pkg/database/postgres"
	"github.com/devkeeb/gearlog/pkg/logger"

	invH "github.com/devkeeb/gearlog/internal/inventory/handler"
	invRepoPkg "github.com/devkeeb/gearlog/internal/inventory/repository"
	invUCPkg "github.com/devkeeb/gearlog/internal/inventory/usecase"

	memH "github.com/devkeeb/gearlog/internal/member/handler"
	memRepoPkg "github.com/devkeeb/gearlog/internal/member/repository"
	memUCPkg "github.com/devkeeb/gearlog/internal/member/usecase"

	prodH "github.com/devkeeb/gearlog/internal/product/handler"
	prodRepoPkg "github.com/devkeeb/gearlog/internal/product/repository"
	prodUCPkg "github.com/devkeeb/gearlog/internal/product/usecase"

	revH "github.com/devkeeb/gearlog/internal/review/handler"
	revRepoPkg "github.com/devkeeb/gearlog/internal/review/repository"
	revUCPkg "github.com/devkeeb/gearlog/internal/review/usecase"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          "json",
		Level:             cfg.Logger.Level,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}

	if cfg.Server.AppEnv == "development" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = "console"
		logConfig.Level = "debug"
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	// 3. Connect to Database
	db, err := postgres.NewPostgres(&postgres.Config{
		Host:            cfg.Postgres.Host,
		Port:            cfg.Postgres.Port,
		User:            cfg.Postgres.User,
		Password:        cfg.Postgres.Password,
		DBName:          cfg.Postgres.DBName,
		SSLMode:         cfg.Postgres.SSLMode,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second,
		ConnMaxIdleTime: time.Duration(cfg.Postgres.ConnMaxIdleTime) * time.Second,
	})
	if err != nil {
		appLogger.Fatal("Could not connect to database", zap.Error(err))
	}
	defer db.Close()
	appLogger.Info("Connected to PostgreSQL database", zap.String("db_name", cfg.Postgres.DBName))

	// 4. Initialize Redis
	redisClient, err := cache.NewRedisClient(&cache.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		appLogger.Fatal("Could not connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()
	appLogger.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))

	// 5. Initialize Repositories
	prodRepo := prodRepoPkg.NewPGRepository(db)
	revRepo := revRepoPkg.NewPGRepository(db)
	invRepo := invRepoPkg.NewPGRepository(db)
	memRepo := memRepoPkg.NewPGRepository(db)

	// 6. Initialize Auth collaborators
	tokens := auth.NewTokenManager(cfg.JWT.SecretKey, cfg.JWT.TokenTTL)
	githubClient := auth.NewGitHubClient(cfg.GitHub)

	// 7. Initialize UseCases
	prodUC := prodUCPkg.NewProductUseCase(prodRepo, appLogger)
	invUC := invUCPkg.NewInventoryUseCase(invRepo, appLogger)
	revUC := revUCPkg.NewReviewUseCase(revRepo, prodRepo, invUC, appLogger, nil)
	memUC := memUCPkg.NewMemberUseCase(memRepo, githubClient, tokens, redisClient, appLogger)

	// 8. Initialize Handlers and Router
	router := httpserver.NewRouter(httpserver.Handlers{
		Product:   prodH.NewProductHandler(prodUC, appLogger),
		Review:    revH.NewReviewHandler(revUC, appLogger),
		Inventory: invH.NewInventoryHandler(invUC, appLogger),
		Member:    memH.NewMemberHandler(memUC, appLogger),
	}, tokens, appLogger, cfg.CORS.AllowedOrigins)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.HTTPPort,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		appLogger.Info("Starting HTTP server", zap.String("port", cfg.Server.HTTPPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("forced shutdown", zap.Error(err))
	}
	appLogger.Info("Server stopped")
}
