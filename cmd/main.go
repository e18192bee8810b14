package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"hbnb-api/internal/application/usecase"
	"hbnb-api/internal/config"
	"hbnb-api/internal/domain/entity"
	"hbnb-api/internal/domain/event"
	"hbnb-api/internal/infrastructure/database"
	"hbnb-api/internal/infrastructure/events"
	"hbnb-api/internal/infrastructure/http/handler"
	"hbnb-api/internal/infrastructure/http/middleware"
	"hbnb-api/internal/infrastructure/persistence"
	"hbnb-api/pkg/logger"
)

func main() {
	cfg := config.MustLoad()

	log := logger.NewLogger(cfg.Logger.Level, cfg.Logger.Format, cfg.Logger.LogToFile, cfg.Logger.Dir)
	defer log.Sync()

	if cfg.IsDevelopment() {
		cfg.Print()
	}

	// Change events
	var publisher event.Publisher = event.NopPublisher{}
	if cfg.EventsEnabled() {
		rdb := events.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.Timeout)
		defer rdb.Close()
		publisher = events.NewRedisPublisher(rdb, cfg.Redis.Channel)
		log.Info("Publishing change events",
			logger.String("redis_addr", cfg.Redis.Addr),
			logger.String("channel", cfg.Redis.Channel),
		)
	}

	// Init layers
	transactionManager := database.NewMemoryTransactionManager(log)
	facade := usecase.NewFacade(
		usecase.Repositories{
			Users:     persistence.NewMemoryRepository[*entity.User]("User"),
			Places:    persistence.NewMemoryRepository[*entity.Place]("Place"),
			Reviews:   persistence.NewMemoryRepository[*entity.Review]("Review"),
			Amenities: persistence.NewMemoryRepository[*entity.Amenity]("Amenity"),
		},
		transactionManager,
		publisher,
		log,
	)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := handler.NewRouter(
		handler.Handlers{
			Users:     handler.NewUserHandler(log, cfg, transactionManager, facade),
			Places:    handler.NewPlaceHandler(log, cfg, transactionManager, facade),
			Reviews:   handler.NewReviewHandler(log, cfg, transactionManager, facade),
			Amenities: handler.NewAmenityHandler(log, cfg, transactionManager, facade),
		},
		log,
		middleware.NewMetrics("hbnb"),
	)

	srv := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server
	go func() {
		log.Info("Server starting", logger.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", logger.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", logger.Error(err))
	}

	log.Info("Server exited")
}
