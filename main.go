// File: main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"schedmate/calendar"
	"schedmate/config"
	"schedmate/database"
	recordsRepo "schedmate/database/repository/records"
	"schedmate/handlers"
	"schedmate/middleware"
	"schedmate/routes"
	"schedmate/services/agent"
	"schedmate/services/resolver"
	"schedmate/services/scheduler"
	"schedmate/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	timezone, err := time.LoadLocation(config.AppConfig.Timezone)
	if err != nil {
		logger.Sugar().Fatalf("main: invalid timezone %q: %v", config.AppConfig.Timezone, err)
	}
	slotDuration := time.Duration(config.AppConfig.SlotDurationMin) * time.Minute

	database.InitDB()
	utils.InitSessionCache()
	utils.InitLockCache()

	ctx := context.Background()

	calendarClient, err := calendar.New(ctx, calendar.Config{
		CalendarID:      config.AppConfig.CalendarID,
		CredentialsFile: config.AppConfig.CredentialsFile,
		Timezone:        timezone,
		SlotDuration:    slotDuration,
	}, logger)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize calendar client: %v", err)
	}

	timeResolver, err := resolver.NewGeminiResolver(ctx, config.AppConfig.GeminiAPIKey, logger)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize time resolver: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Repositories and services.
	bookingRecords := recordsRepo.NewMongoRecordRepo()

	slotFinder := &scheduler.DefaultFinder{
		Availability:     calendarClient,
		WorkingHourStart: config.AppConfig.WorkingHourStart,
		WorkingHourEnd:   config.AppConfig.WorkingHourEnd,
		MaxSuggestions:   config.AppConfig.MaxSuggestions,
		SlotDuration:     slotDuration,
		HorizonDays:      config.AppConfig.ScanHorizonDays,
		Logger:           logger,
	}

	sessionTTL := time.Duration(config.AppConfig.SessionTTLMin) * time.Minute
	sessionStore := agent.NewRedisSessionStore(utils.GetSessionCacheClient(), sessionTTL)
	slotLock := scheduler.NewRedisSlotLock(utils.GetLockCacheClient(), 30*time.Second)

	turnService := &agent.DefaultTurnService{
		Resolver: timeResolver,
		Finder:   slotFinder,
		Booker:   calendarClient,
		Lock:     slotLock,
		Sessions: sessionStore,
		Records:  bookingRecords,
		Timezone: timezone,
		Logger:   logger,
	}

	handlerBundle := &routes.HandlerBundle{
		Chat:           handlers.NewChatHandler(turnService, logger),
		BookingRecords: handlers.NewBookingRecordsHandler(bookingRecords, logger),
	}
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetSessionCacheClient(), utils.GetLockCacheClient()},
		database.MongoClient,
		calendarClient,
	)

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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
