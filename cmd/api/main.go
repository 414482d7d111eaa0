package main

import (
	"context"
	"log"
	"os"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"vendora/internal/adapter/api"
	"vendora/internal/adapter/api/handler"
	apimiddleware "vendora/internal/adapter/api/middleware"
	"vendora/internal/adapter/api/router"
	"vendora/internal/adapter/repository"
	"vendora/internal/infrastructure/mongodb"
	"vendora/internal/usecase"
	"vendora/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	mongoClient, err := mongodb.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongodb.Disconnect(mongoClient)

	db := mongoClient.Database(cfg.MongoDatabase)

	var opt option.ClientOption

	serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON")
	if serviceAccountJSON != "" {
		opt = option.WithCredentialsJSON([]byte(serviceAccountJSON))
	} else {
		serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")
		if serviceAccountPath == "" {
			serviceAccountPath = "./service-account.json"
		}

		if _, err := os.Stat(serviceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", serviceAccountPath)
		}

		opt = option.WithCredentialsFile(serviceAccountPath)
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opt)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opt)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	userRepo := repository.NewMongoUserRepository(db)
	productRepo := repository.NewMongoProductRepository(db)
	orderRepo := repository.NewMongoOrderRepository(db)
	inventoryRepo := repository.NewMongoInventoryRepository(db)
	notificationRepo := repository.NewMongoNotificationRepository(db)
	notificationMirror := repository.NewFirestoreNotificationMirror(firestoreClient)

	notificationUseCase := usecase.NewNotificationUseCase(notificationRepo, notificationMirror, userRepo)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, productRepo, inventoryRepo, userRepo, notificationUseCase)
	inventoryUseCase := usecase.NewInventoryUseCase(inventoryRepo, productRepo, notificationUseCase)
	productUseCase := usecase.NewProductUseCase(productRepo, userRepo, notificationUseCase)

	handler.Setup(orderUseCase, inventoryUseCase, notificationUseCase, productUseCase)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)
	adminMiddleware := apimiddleware.NewAdminMiddleware(userRepo)
	rateLimiter := apimiddleware.NewRateLimiter(30, time.Minute)

	router.Setup(e, authMiddleware, adminMiddleware, rateLimiter)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
