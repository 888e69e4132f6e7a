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

	"myLaptopHub/app/echo-server/router"
	"myLaptopHub/business/click"
	"myLaptopHub/business/laptop"
	"myLaptopHub/business/recommend"
	"myLaptopHub/business/review"
	"myLaptopHub/business/search"
	"myLaptopHub/business/stats"
	userService "myLaptopHub/business/user"
	"myLaptopHub/internal/middleware"
	psqlRepo "myLaptopHub/internal/repository/postgres"
	redisRepo "myLaptopHub/internal/repository/redis"
	"myLaptopHub/internal/rest"
	"myLaptopHub/pkg/config"
	"myLaptopHub/pkg/database"
	redisdb "myLaptopHub/pkg/database/redis"
	"myLaptopHub/pkg/logger"
	"myLaptopHub/pkg/metrics"
	"myLaptopHub/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting MyLaptopHub", "version", cfg.App.Version)

	utils.InitJWT(cfg.JWT.SecretKey)
	metrics.Init()

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	redisClient, err := redisdb.NewRedisClient(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to redis", "error", err)
	}
	defer redisdb.CloseRedisClient(redisClient)

	logger.Info("Redis connected successfully")

	// Init validate
	validate := validator.New()

	// Init repo
	userRepo := psqlRepo.NewUserRepository(db)
	laptopRepo := psqlRepo.NewLaptopRepository(db)
	brandRepo := psqlRepo.NewBrandRepository(db)
	reviewRepo := psqlRepo.NewReviewRepository(db)
	clickRepo := psqlRepo.NewUserClickRepository(db)
	statsRepo := psqlRepo.NewStatsRepository(db)
	tokenRepo := redisRepo.NewTokenRepository(redisClient)

	// Init service
	userSvc := userService.NewUserService(userRepo, tokenRepo, validate, cfg.App.AppEmailVerificationKey, cfg.App.AppDeploymentUrl)
	laptopSvc := laptop.NewLaptopService(laptopRepo, brandRepo, reviewRepo)
	clickSvc := click.NewClickService(clickRepo, laptopRepo)
	reviewSvc := review.NewReviewService(reviewRepo, laptopRepo, brandRepo)
	statsSvc := stats.NewStatsService(statsRepo)
	searchSvc := search.NewSearchService(laptopRepo, reviewRepo, clickRepo, recommend.NewSastrawiStemmer(), recommend.DefaultConfig())

	// Init handler
	userHandler := rest.NewUserHandler(userSvc)
	laptopHandler := rest.NewLaptopHandler(laptopSvc, clickSvc)
	reviewHandler := rest.NewReviewHandler(reviewSvc)
	searchHandler := rest.NewSearchHandler(searchSvc)
	adminHandler := rest.NewAdminHandler(statsSvc)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(middleware.Trace())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Session-backed auth so logout takes effect immediately
	authRequired := middleware.AuthMiddlewareWithRedis(userSvc)

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupUserRoutes(api, userHandler, authRequired)
	router.SetupSearchRoutes(api, searchHandler, authRequired)
	router.SetupLaptopRoutes(api, laptopHandler, reviewHandler, authRequired)
	router.SetupReviewRoutes(api, reviewHandler, authRequired)
	router.SetupAdminRoutes(api, adminHandler, authRequired)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
