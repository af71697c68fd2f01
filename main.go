// File: chaletbook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chaletbook/config"
	"chaletbook/cron"
	"chaletbook/database"
	bookingRepo "chaletbook/database/repository/booking"
	chaletRepo "chaletbook/database/repository/chalet"
	ownerRepo "chaletbook/database/repository/owner"
	"chaletbook/handlers"
	"chaletbook/middleware"
	"chaletbook/routes"
	"chaletbook/services/booking"
	"chaletbook/services/notification"
	"chaletbook/services/owner"
	"chaletbook/services/search"
	"chaletbook/services/tasks"
	"chaletbook/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(routes.CORSMiddleware())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	chalets := chaletRepo.NewMongoChaletRepo()
	bookings := bookingRepo.NewMongoBookingRepo()
	owners := ownerRepo.NewMongoOwnerRepo()

	if repo, ok := chalets.(*chaletRepo.MongoChaletRepo); ok {
		if err := repo.EnsureIndexes(); err != nil {
			logger.Sugar().Warnf("main: failed to ensure chalet indexes: %v", err)
		}
	}
	if repo, ok := bookings.(*bookingRepo.MongoBookingRepo); ok {
		if err := repo.EnsureIndexes(); err != nil {
			logger.Sugar().Warnf("main: failed to ensure booking indexes: %v", err)
		}
	}
	if repo, ok := owners.(*ownerRepo.MongoOwnerRepo); ok {
		if err := repo.EnsureIndexes(); err != nil {
			logger.Sugar().Warnf("main: failed to ensure owner indexes: %v", err)
		}
	}

	// Background confirmation delivery.
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	})
	defer asynqClient.Close()
	cron.InitConfirmationWorker(&notification.SMSLogService{})

	// services.
	flowService := &booking.DefaultFlowService{
		Drafts:        utils.NewRedisStore(utils.GetSessionCacheClient()),
		ChaletRepo:    chalets,
		BookingRepo:   bookings,
		Confirmations: &tasks.Enqueuer{Client: asynqClient},
		DraftTTL:      time.Duration(config.AppConfig.DraftTTLMinutes) * time.Minute,
	}
	searchService := &search.Service{
		Chalets:  chalets,
		Params:   utils.NewRedisStore(utils.GetSessionCacheClient()),
		ParamTTL: time.Duration(config.AppConfig.SearchTTLMinutes) * time.Minute,
	}
	ownerService := &owner.DefaultService{
		Owners:      owners,
		ChaletRepo:  chalets,
		BookingRepo: bookings,
	}

	// handlers.
	bookingHandler := handlers.NewBookingHandler(flowService, chalets, bookings, logger)
	chaletHandler := handlers.NewChaletHandler(chalets)
	searchHandler := handlers.NewSearchHandler(searchService)
	ownerHandler := handlers.NewOwnerHandler(ownerService)

	routes.RegisterRoutes(router, bookingHandler, chaletHandler, searchHandler, ownerHandler)

	utils.StartHealthMonitor([]*redis.Client{utils.GetSessionCacheClient(), utils.GetCacheClient()}, database.MongoClient)

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
			logger.Sugar().Fatalf("main: server error: %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: forced shutdown: %v", err)
	}
	logger.Sugar().Info("Server exited")
}
