package main

import (
	"context"
	"log"
	"time"

	"github.com/alshuail/authnotify/internal/pkg/channel"
	"github.com/alshuail/authnotify/internal/pkg/config"
	"github.com/alshuail/authnotify/internal/pkg/database"
	"github.com/alshuail/authnotify/internal/pkg/health"
	providerhttp "github.com/alshuail/authnotify/internal/pkg/http"
	"github.com/alshuail/authnotify/internal/pkg/logger"
	"github.com/alshuail/authnotify/internal/pkg/middleware"
	nsqpkg "github.com/alshuail/authnotify/internal/pkg/nsq"
	"github.com/alshuail/authnotify/internal/pkg/server"
	"github.com/alshuail/authnotify/services/notification/handler"
	httpHandler "github.com/alshuail/authnotify/services/notification/handler/http"
	nsqHandler "github.com/alshuail/authnotify/services/notification/handler/nsq"
	"github.com/alshuail/authnotify/services/notification/repository"
	"github.com/alshuail/authnotify/services/notification/usecase"
	"github.com/gin-gonic/gin"
)

const (
	consumerMaxInFlight    = 4
	consumerMaxAttempts    = 5
	consumerHandlerTimeout = 5 * time.Minute
)

func main() {
	appName := "notification-service"
	configs := config.InitViperConfig(config.GetEnv("CONFIG_DIR", "config"))

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	if err := config.Validate(configs); err != nil {
		zapLogger.Fatal("Invalid configuration", logger.Err(err))
	}

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}

	// Initialize NSQ producer
	producer, err := nsqpkg.NewProducer(configs.NSQ.Address, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to create NSQ producer", logger.Err(err))
	}

	// Initialize repositories
	recipientRepo := repository.NewRecipientRepo(postgresClient.GetDB())
	preferenceRepo := repository.NewPreferenceRepo(postgresClient.GetDB())

	// Initialize delivery channels
	transport := providerhttp.NewProviderClient(providerhttp.ProviderClientConfig{
		Timeout:    configs.Channels.CallTimeout,
		MaxRetries: configs.Channels.MaxRetries,
	}, zapLogger)
	dispatcher := channel.NewDispatcher(configs.Channels.CallTimeout,
		channel.NewWhatsAppAdapter(configs.Channels.WhatsApp, transport),
		channel.NewPushAdapter(configs.Channels.Push, transport),
		channel.NewSMSAdapter(configs.Channels.SMS, transport),
	).WithChannelInterval(configs.Notification.ChannelInterval)

	// Initialize UseCase
	notificationUC, err := usecase.NewNotificationUC(configs, recipientRepo, preferenceRepo, dispatcher, producer)
	if err != nil {
		zapLogger.Fatal("Failed to create notification usecase", logger.Err(err))
	}

	// Initialize handlers
	Handler := handler.NewHandler(
		httpHandler.NewNotificationHandler(notificationUC),
		nsqHandler.NewDispatchHandler(notificationUC),
		middleware.NewAPIKeys(configs.APIKeys),
	)

	// Initialize NSQ consumer
	consumer, err := nsqpkg.NewConsumer(nsqpkg.ConsumerConfig{
		Topic:          configs.NSQ.DispatchTopic,
		Channel:        configs.NSQ.Channel,
		MaxInFlight:    consumerMaxInFlight,
		MaxAttempts:    consumerMaxAttempts,
		HandlerTimeout: consumerHandlerTimeout,
	}, Handler.DispatchHandler().Handle, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to create NSQ consumer", logger.Err(err))
	}
	if err := consumer.Connect(configs.NSQ.Address, configs.NSQ.LookupdAddress); err != nil {
		zapLogger.Fatal("Failed to connect NSQ consumer", logger.Err(err))
	}

	if !configs.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize Gin router
	router := gin.New()
	router.Use(middleware.GinRequestContext())
	router.Use(logger.ZapGinMiddleware(zapLogger))
	router.Use(middleware.GinPanicRecovery(zapLogger))

	// Register health endpoints
	healthService := health.NewService(zapLogger)
	healthService.AddChecker("postgres", health.NewPostgresChecker(postgresClient))
	healthService.AddChecker("nsq", health.CheckerFunc(func(context.Context) error {
		return producer.Ping()
	}))
	health.RegisterGin(router, health.NewBuildInfo(appName, configs.App.Version), healthService)

	// Register service routes
	Handler.RegisterRoutes(router)

	shutdownManager := server.NewShutdownManager(zapLogger)
	shutdownManager.Register("postgres", func(context.Context) error { return postgresClient.Close() })
	shutdownManager.Register("nsq-producer", func(context.Context) error {
		producer.Stop()
		return nil
	})
	shutdownManager.Register("nsq-consumer", func(context.Context) error {
		consumer.Stop()
		return nil
	})

	srv := server.NewGracefulServer(router, zapLogger, configs.Server.Port).
		WithShutdownTimeout(time.Duration(configs.Server.ShutdownTimeout) * time.Second).
		WithShutdownManager(shutdownManager)

	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Failed to start server",
			logger.String("app", appName),
			logger.Err(err),
		)
	}
}
