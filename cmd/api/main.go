package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"visionmatch/internal/adapter/api"
	"visionmatch/internal/adapter/api/handler"
	apimiddleware "visionmatch/internal/adapter/api/middleware"
	"visionmatch/internal/adapter/api/router"
	"visionmatch/internal/adapter/repository"
	"visionmatch/internal/domain/service"
	"visionmatch/internal/infrastructure/email"
	"visionmatch/internal/infrastructure/firebase"
	"visionmatch/internal/infrastructure/storage"
	"visionmatch/internal/infrastructure/websocket"
	"visionmatch/internal/usecase"
	"visionmatch/pkg/config"
	"visionmatch/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger.SetDebug(cfg.IsDevelopment())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := firebase.ClientOptions(cfg)

	firestoreClient, err := firebase.NewFirestoreClient(ctx, cfg, opts...)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	var images usecase.ReferenceImageStore
	if cfg.StorageBucket != "" {
		storageClient, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, opts...)
		if err != nil {
			log.Fatalf("Failed to initialize Cloud Storage: %v", err)
		}
		defer storageClient.Close()
		images = storageClient
	} else {
		logger.Warn("STORAGE_BUCKET not set, reference image uploads are disabled")
	}

	requestRepo := repository.NewFirestoreProjectRequestRepository(firestoreClient)
	messageRepo := repository.NewFirestoreNegotiationMessageRepository(firestoreClient)
	bookingRepo := repository.NewFirestoreBookingRepository(firestoreClient)
	reviewRepo := repository.NewFirestoreReviewRepository(firestoreClient)
	creatorRepo := repository.NewFirestoreCreatorRepository(firestoreClient)

	wsManager := websocket.NewManager()
	wsManager.Start(ctx)

	notificationService := service.NewNotificationService(email.NewSMTPSender(cfg.SMTP))

	projectRequestUseCase := usecase.NewProjectRequestUseCase(requestRepo, creatorRepo, images)
	negotiationUseCase := usecase.NewNegotiationUseCase(requestRepo, messageRepo, wsManager)
	bookingUseCase := usecase.NewBookingUseCase(bookingRepo, requestRepo, notificationService)
	reviewUseCase := usecase.NewReviewUseCase(reviewRepo, bookingRepo, creatorRepo)

	handler.Setup(projectRequestUseCase, negotiationUseCase, bookingUseCase, reviewUseCase, notificationService)
	handler.SetupHealthHandler(repository.NewFirestoreHealth(firestoreClient))

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
	}))

	e.Validator = api.NewValidator()

	router.Setup(e, router.Options{
		EmailLimiter:     apimiddleware.RateLimit(cfg.EmailRateLimit, cfg.EmailRateBurst, 3*time.Minute),
		WebSocketHandler: handler.NewWebSocketHandler(wsManager, projectRequestUseCase, cfg.AllowedOrigins),
		ReferenceImages:  images != nil,
	})

	go func() {
		logger.Info("Starting server on port %s (%s)", cfg.ServerPort, cfg.Environment)
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed: %v", err)
	}
}
