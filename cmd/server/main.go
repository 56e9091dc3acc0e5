package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/youapp/youapp-api/adapters/event"
	httpAdapter "github.com/youapp/youapp-api/adapters/http"
	"github.com/youapp/youapp-api/adapters/media_storage"
	"github.com/youapp/youapp-api/adapters/persistence"
	authUC "github.com/youapp/youapp-api/internal/application/usecase/auth"
	mediaUC "github.com/youapp/youapp-api/internal/application/usecase/media"
	messageUC "github.com/youapp/youapp-api/internal/application/usecase/message"
	profileUC "github.com/youapp/youapp-api/internal/application/usecase/profile"
	"github.com/youapp/youapp-api/internal/config"
	"github.com/youapp/youapp-api/pkg/auth"
	"github.com/youapp/youapp-api/pkg/logger"
	"github.com/youapp/youapp-api/pkg/tracing"
)

func main() {

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	appLogger.Info("Starting YouApp API Server...")

	if cfg.Tracing.OTLPEndpoint != "" {
		tp, err := tracing.NewTracerProvider(cfg, appLogger, "youapp-api")
		if err != nil {
			appLogger.Fatal("cannot init tracer", err)
		}
		defer tp.Shutdown(context.Background())
	}

	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Postgres", err)
	}
	defer dbPool.Close()

	redisClient, err := persistence.NewRedisClient(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Redis", err)
	}
	defer redisClient.Close()

	notifier, err := event.NewNotificationProducer(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot init Kafka producer", err)
	}
	defer notifier.Close()

	// Repositories
	userRepo := persistence.NewCachedUserRepo(
		persistence.NewPostgresUserRepo(dbPool), redisClient, appLogger)
	profileRepo := persistence.NewPostgresProfileRepo(dbPool, appLogger)
	messageRepo := persistence.NewPostgresMessageRepo(dbPool, appLogger)

	// Services
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)
	uploader, err := media_storage.NewCloudinaryAdapter(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("failed to initialize uploader", err)
	}

	// Use Cases
	registerUseCase := authUC.NewRegisterUseCase(userRepo, appLogger)
	loginUseCase := authUC.NewLoginUseCase(userRepo, jwtSvc, appLogger)
	profileUseCase := profileUC.NewProfileUseCase(profileRepo, appLogger)
	sendMessageUseCase := messageUC.NewSendMessageUseCase(messageRepo, userRepo, notifier, appLogger)
	listMessagesUseCase := messageUC.NewListMessagesUseCase(messageRepo, userRepo, appLogger)
	uploadAvatarUseCase := mediaUC.NewUploadAvatarUseCase(uploader, appLogger)

	// HTTP Handlers
	authHandler := httpAdapter.NewAuthHandler(registerUseCase, loginUseCase, appLogger)
	profileHandler := httpAdapter.NewProfileHandler(profileUseCase, appLogger)
	messageHandler := httpAdapter.NewMessageHandler(sendMessageUseCase, listMessagesUseCase, appLogger)
	mediaHandler := httpAdapter.NewMediaHandler(uploadAvatarUseCase, appLogger)

	// Middleware
	authMiddleware := httpAdapter.AuthMiddleware(jwtSvc)
	errorMiddleware := httpAdapter.ErrorMiddleware(appLogger)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(errorMiddleware)

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "UP", "notifications": notifier.Ready()})
		})

		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/login", authHandler.Login)
		}

		private := api.Group("/")
		private.Use(authMiddleware)
		{
			profiles := private.Group("/profiles")
			{
				profiles.POST("/createProfile", profileHandler.CreateProfile)
				profiles.GET("/getProfile", profileHandler.GetProfile)
				profiles.PATCH("/updateProfile", profileHandler.UpdateProfile)
			}

			messages := private.Group("/messages")
			{
				messages.POST("/sendMessage", messageHandler.SendMessage)
				messages.GET("/viewMessages", messageHandler.ViewMessages)
			}

			files := private.Group("/files")
			{
				files.POST("/upload", mediaHandler.UploadAvatar)
			}
		}
	}

	appLogger.Info("Server running on port " + cfg.App.Port)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		appLogger.Fatal("cannot run server", err)
	}
}
