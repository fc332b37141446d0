package main

import (
	"context"
	"log"
	"time"

	"github.com/alshuail/authnotify/internal/pkg/audit"
	"github.com/alshuail/authnotify/internal/pkg/channel"
	"github.com/alshuail/authnotify/internal/pkg/config"
	"github.com/alshuail/authnotify/internal/pkg/database"
	"github.com/alshuail/authnotify/internal/pkg/health"
	providerhttp "github.com/alshuail/authnotify/internal/pkg/http"
	"github.com/alshuail/authnotify/internal/pkg/jwt"
	"github.com/alshuail/authnotify/internal/pkg/logger"
	"github.com/alshuail/authnotify/internal/pkg/middleware"
	"github.com/alshuail/authnotify/internal/pkg/otpcode"
	"github.com/alshuail/authnotify/internal/pkg/server"
	"github.com/alshuail/authnotify/services/auth"
	"github.com/alshuail/authnotify/services/auth/gateway"
	"github.com/alshuail/authnotify/services/auth/handler"
	httpHandler "github.com/alshuail/authnotify/services/auth/handler/http"
	"github.com/alshuail/authnotify/services/auth/repository"
	"github.com/alshuail/authnotify/services/auth/usecase"
	"github.com/labstack/echo/v4"
)

const memoryStoreSweep = time.Minute

func main() {
	appName := "auth-service"
	configPath := config.GetEnv("CONFIG_PATH", "config/auth.env")
	configs := config.InitConfig(configPath)

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

	securityLogger, err := logger.NewSecurityLogger(logger.SecurityConfig{
		Level:    configs.Logger.Level,
		FilePath: configs.Logger.SecurityFilePath,
		Service:  appName,
	})
	if err != nil {
		zapLogger.Fatal("Failed to create security logger", logger.Err(err))
	}

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}

	// Background work lives until the server stops
	ctx, cancel := context.WithCancel(context.Background())

	// Initialize repositories
	memberRepo := repository.NewMemberRepo(configs, postgresClient.GetDB())
	auditRepo := repository.NewAuditRepo(postgresClient.GetDB())
	lockGuard := repository.NewLockGuard(configs.Lock, redisClient)

	var otpStore auth.OtpStore
	switch configs.OTP.Store {
	case "memory":
		memoryStore := repository.NewMemoryOtpStore(configs.OTP)
		go memoryStore.Run(ctx, memoryStoreSweep)
		otpStore = memoryStore
		zapLogger.Warn("Using in-process passcode store")
	default:
		otpStore = repository.NewRedisOtpStore(configs.OTP, redisClient)
	}

	// Initialize delivery channels
	transport := providerhttp.NewProviderClient(providerhttp.ProviderClientConfig{
		Timeout:    configs.Channels.CallTimeout,
		MaxRetries: configs.Channels.MaxRetries,
	}, zapLogger)
	dispatcher := channel.NewDispatcher(configs.Channels.CallTimeout,
		channel.NewWhatsAppAdapter(configs.Channels.WhatsApp, transport),
		channel.NewSMSAdapter(configs.Channels.SMS, transport),
		channel.NewPushAdapter(configs.Channels.Push, transport),
	)

	// Initialize Gateway
	otpSender := gateway.NewOTPSender(configs.OTP, dispatcher)

	issuer, err := jwt.NewIssuer(configs.JWT, configs.App.Environment)
	if err != nil {
		zapLogger.Fatal("Failed to create token issuer", logger.Err(err))
	}

	generator, err := otpcode.NewGenerator(configs.App, configs.OTP)
	if err != nil {
		zapLogger.Fatal("Failed to create passcode generator", logger.Err(err))
	}

	// Initialize UseCase
	authUC := usecase.NewAuthUC(
		configs,
		memberRepo,
		otpStore,
		lockGuard,
		otpSender,
		issuer,
		generator,
		audit.NewLogger(securityLogger, auditRepo),
	)

	// Handlers for HTTP
	Handler := handler.NewHandler(
		httpHandler.NewOTPHandler(authUC),
		httpHandler.NewPasswordHandler(authUC),
		httpHandler.NewFaceIDHandler(authUC),
		httpHandler.NewAdminHandler(authUC),
		issuer,
		redisClient.GetClient(),
	)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	// Add middlewares
	e.Use(middleware.RequestContextMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))

	// Register health endpoints
	healthService := health.NewService(zapLogger)
	healthService.AddChecker("postgres", health.NewPostgresChecker(postgresClient))
	healthService.AddChecker("redis", health.NewRedisChecker(redisClient))
	health.RegisterEcho(e, health.NewBuildInfo(appName, configs.App.Version), healthService)

	// Register service routes
	Handler.RegisterRoutes(e)

	shutdownManager := server.NewShutdownManager(zapLogger)
	shutdownManager.Register("postgres", func(context.Context) error { return postgresClient.Close() })
	shutdownManager.Register("redis", func(context.Context) error { return redisClient.Close() })
	shutdownManager.Register("security-log", func(context.Context) error { return securityLogger.Close() })
	shutdownManager.Register("background", func(context.Context) error {
		cancel()
		return nil
	})

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port).
		WithShutdownTimeout(time.Duration(configs.Server.ShutdownTimeout) * time.Second).
		WithShutdownManager(shutdownManager)

	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Failed to start server",
			logger.String("app", appName),
			logger.Err(err),
		)
	}
}
