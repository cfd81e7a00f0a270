// File: slotwise/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"slotwise/config"
	"slotwise/cron"
	"slotwise/database"
	bookingRepo "slotwise/database/repository/booking"
	businessRepo "slotwise/database/repository/business"
	eventRepo "slotwise/database/repository/event"
	windowRepo "slotwise/database/repository/window"
	"slotwise/handlers"
	"slotwise/middleware"
	"slotwise/routes"
	"slotwise/services/notification"
	"slotwise/services/scheduler"
	"slotwise/services/tasks"
	"slotwise/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	routes.SetupCORS(router)

	// repositories.
	events := eventRepo.NewMongoEventRepo()
	windows := windowRepo.NewMongoWindowRepo()
	bookings := bookingRepo.NewMongoBookingRepo()
	businesses := businessRepo.NewMongoBusinessRepo()

	// async confirmation queue.
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer asynqClient.Close()

	notifSvc := &notification.LogNotificationService{}
	cron.InitConfirmationWorker(notifSvc)

	// scheduler service.
	cacheTTL := time.Duration(config.AppConfig.AvailabilityCacheTTLSeconds) * time.Second
	schedulerService := &scheduler.DefaultSchedulerService{
		Events:        events,
		Windows:       windows,
		Bookings:      bookings,
		Businesses:    businesses,
		Cache:         scheduler.NewAvailabilityCache(utils.GetCacheClient(), cacheTTL),
		Locks:         scheduler.NewLockTable(),
		LockTimeout:   time.Duration(config.AppConfig.ReservationLockTimeoutMS) * time.Millisecond,
		Confirmations: &tasks.Queue{Client: asynqClient},
	}

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Availability: handlers.NewAvailabilityHandler(schedulerService),
		Reservation:  handlers.NewReservationHandler(schedulerService),
		Windows:      handlers.NewWindowHandler(schedulerService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

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
