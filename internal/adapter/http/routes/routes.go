package routes

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "phicoffee/docs" // This will be auto-generated
	"phicoffee/internal/adapter/http/handlers"
	repository2 "phicoffee/internal/adapter/persistence/repository"
	"phicoffee/internal/adapter/persistence/rowcodec"
	"phicoffee/internal/domain/entities"
	"phicoffee/internal/infrastructure/notifications"
	"phicoffee/internal/infrastructure/sheets"
	"phicoffee/internal/infrastructure/storage"
	"phicoffee/internal/usecase"
	"phicoffee/internal/usecase/interfaces"
)

var router = gin.Default()

const defaultPort = "8080"

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := getenvDefault("PORT", defaultPort)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ctx := context.Background()
	baseURL := getenvDefault("PUBLIC_BASE_URL", "http://localhost:8080")

	catalog := entities.DefaultCatalog()
	// The catalog-to-column mapping is validated here so an unmapped product
	// fails at startup, not at write time.
	codec, err := rowcodec.NewCodec(catalog, baseURL)
	if err != nil {
		log.Fatalf("invalid catalog configuration: %v", err)
	}

	store, err := sheets.NewClientFromEnv(ctx)
	if err != nil {
		log.Fatalf("failed to create sheets client: %v", err)
	}

	orderRepo := repository2.NewOrderSheetRepository(store, codec)
	feedbackRepo := repository2.NewFeedbackSheetRepository(store)

	var notifier interfaces.IOrderNotifier
	tgNotifier, err := notifications.NewTelegramNotifier(
		os.Getenv("TELEGRAM_BOT_TOKEN"),
		os.Getenv("TELEGRAM_CHAT_ID"),
		codec,
	)
	if err != nil {
		log.Printf("Telegram notifier not configured: %v", err)
	} else {
		notifier = tgNotifier
	}

	proofStorage, err := storage.NewS3ProofStorageFromEnv(ctx)
	if err != nil {
		log.Fatalf("failed to create proof storage: %v", err)
	}

	orderUseCase := usecase.NewOrderUseCase(orderRepo, notifier, catalog)
	feedbackUseCase := usecase.NewFeedbackUseCase(feedbackRepo)
	scheduleUseCase := usecase.NewScheduleUseCase()

	orderHandler := handlers.NewOrderHandler(orderUseCase, baseURL)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackUseCase)
	scheduleHandler := handlers.NewScheduleHandler(scheduleUseCase)
	proofHandler := handlers.NewProofHandler(proofStorage)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCoffeeRoutes(v1, orderHandler, feedbackHandler, scheduleHandler, proofHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
