package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"korus_backend/database"
	"korus_backend/internal/auth"
	"korus_backend/internal/config"
	"korus_backend/internal/handlers"
	"korus_backend/internal/logger"
	"korus_backend/internal/middleware"
	"korus_backend/internal/repositories"
	"korus_backend/internal/routes"
	"korus_backend/internal/services"
	"korus_backend/internal/validator"
	"korus_backend/internal/workers"
	"korus_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func Run() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", "error", err)
	}
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	apperrors.SetDebug(cfg.Server.Env == "development")

	logger.Info("Connecting to database...", "driver", cfg.Database.Driver)
	gormDB, err := database.Open(database.OptionsFromConfig(cfg))
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	logger.Info("Database connected")

	if cfg.Database.AutoMigrate {
		if err := database.AutoMigrate(gormDB); err != nil {
			logger.Fatal("Failed to migrate database", "error", err)
		}
	}

	ginRouter, err := SetupRouter(cfg, gormDB)
	if err != nil {
		logger.Fatal("Failed to set up router", "error", err)
	}

	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()
	if interval := cfg.ExpiryInterval(); interval > 0 {
		workers.NewExpiryWorker(
			gormDB,
			repositories.NewJobRepository(),
			repositories.NewEmployeeTokenRepository(),
			interval,
		).Start(workerCtx)
		logger.Info("Expiry worker started", "interval", interval.String())
	}

	server := &http.Server{
		Addr:              cfg.Address(),
		Handler:           ginRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", "address", cfg.Address())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server startup error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server")
	stopWorkers()
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}

	if sqlDB, err := gormDB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// SetupRouter собирает сервисы, хэндлеры и маршруты поверх переданной БД
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) (*gin.Engine, error) {
	tokens, err := auth.NewTokenService(auth.TokenConfig{
		Secret:     cfg.JWT.Secret,
		AccessTTL:  cfg.AccessTTL(),
		DefaultTTL: cfg.DefaultTTL(),
	})
	if err != nil {
		return nil, err
	}

	// 1. Инициализируем сервисы
	serviceContainer := initializeServices(tokens)

	// 2. Инициализируем хэндлеры
	appHandlers := initializeHandlers(serviceContainer)

	// 3. Инициализируем Gin
	ginRouter := initializeGinRouter(cfg, gormDB)

	// 4. Регистрация маршрутов
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter, nil
}

func initializeServices(tokens *auth.TokenService) *services.ServiceContainer {
	// --- Инициализация репозиториев ---
	companyRepo := repositories.NewCompanyRepository()
	jobRepo := repositories.NewJobRepository()
	reviewRepo := repositories.NewReviewRepository()
	supportOrgRepo := repositories.NewSupportOrgRepository()
	employeeTokenRepo := repositories.NewEmployeeTokenRepository()
	statsRepo := repositories.NewStatisticsRepository()

	// --- Инициализация сервисов ---
	ratingService := services.NewRatingService(reviewRepo, companyRepo)
	employeeTokenService := services.NewEmployeeTokenService(employeeTokenRepo, companyRepo, time.Now)

	return &services.ServiceContainer{
		AuthService:          services.NewAuthService(companyRepo, tokens),
		CompanyService:       services.NewCompanyService(companyRepo),
		JobService:           services.NewJobService(jobRepo),
		ReviewService:        services.NewReviewService(reviewRepo, companyRepo, jobRepo, employeeTokenService, ratingService),
		RatingService:        ratingService,
		EmployeeTokenService: employeeTokenService,
		StatisticsService:    services.NewStatisticsService(statsRepo, companyRepo, jobRepo, reviewRepo, supportOrgRepo),
		SupportOrgService:    services.NewSupportOrgService(supportOrgRepo),
	}
}

func initializeHandlers(services *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator, middleware.AuthMiddleware(services.AuthService))

	return &handlers.AppHandlers{
		RootHandler:       handlers.NewRootHandler(baseHandler),
		AuthHandler:       handlers.NewAuthHandler(baseHandler, services.AuthService),
		CompanyHandler:    handlers.NewCompanyHandler(baseHandler, services.CompanyService),
		JobHandler:        handlers.NewJobHandler(baseHandler, services.JobService),
		ReviewHandler:     handlers.NewReviewHandler(baseHandler, services.ReviewService),
		SupportOrgHandler: handlers.NewSupportOrgHandler(baseHandler, services.SupportOrgService),
		StatisticsHandler: handlers.NewStatisticsHandler(baseHandler, services.StatisticsService),
	}
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))
	router.Use(middleware.DBMiddleware(db))
	return router
}
