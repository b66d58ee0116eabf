// File: meetly/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"meetly/config"
	"meetly/cron"
	"meetly/database"
	businessRepoPkg "meetly/database/repository/business"
	meetingRepoPkg "meetly/database/repository/meeting"
	serviceRepoPkg "meetly/database/repository/service"
	"meetly/handlers"
	"meetly/middleware"
	"meetly/routes"
	"meetly/services/business"
	"meetly/services/catalog"
	"meetly/services/scheduling"
	"meetly/services/tasks"
	"meetly/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitLockClient()

	businessLocation, err := time.LoadLocation(config.AppConfig.BusinessTimezone)
	if err != nil {
		logger.Sugar().Fatalf("main: invalid BUSINESS_TIMEZONE %q: %v", config.AppConfig.BusinessTimezone, err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))
	router.Use(cors.Default())

	// repositories.
	meetingRepo := meetingRepoPkg.NewMongoMeetingRepo()
	serviceRepo := serviceRepoPkg.NewMongoServiceRepo()
	businessRepo := businessRepoPkg.NewMongoBusinessRepo()

	if mongoRepo, ok := meetingRepo.(*meetingRepoPkg.MongoMeetingRepo); ok {
		if err := mongoRepo.EnsureIndexes(); err != nil {
			logger.Sugar().Warnf("main: failed to ensure meeting indexes: %v", err)
		}
	}

	// services.
	schedulerService := &scheduling.DefaultMeetingScheduler{
		Meetings:   meetingRepo,
		Services:   serviceRepo,
		Businesses: businessRepo,
		Locker:     utils.NewRedisLocker(),
		Reminders:  tasks.NewAsynqReminderScheduler(),
		Location:   businessLocation,
	}
	catalogService := &catalog.DefaultCatalogService{
		Repo:      serviceRepo,
		Scheduler: schedulerService,
	}
	businessService := &business.DefaultBusinessService{
		Repo:      businessRepo,
		Catalog:   catalogService,
		Scheduler: schedulerService,
		Cache:     utils.GetCacheClient(),
	}

	meetingHandler := handlers.NewMeetingHandler(schedulerService)
	businessHandler := handlers.NewBusinessHandler(businessService, catalogService)

	routes.RegisterHealthRoute(router)
	routes.RegisterMeetingRoutes(router, meetingHandler)
	routes.RegisterBusinessRoutes(router, businessHandler)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetLockClient()},
		database.MongoClient,
	)

	// Reminder worker consuming the asynq queue.
	cron.InitReminderWorker(cron.LogNotifier{})

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
