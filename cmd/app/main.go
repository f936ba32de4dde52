package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "table-booking-backend/docs"
	"table-booking-backend/internal/common/cache"
	"table-booking-backend/internal/common/config"
	"table-booking-backend/internal/common/logger"
	"table-booking-backend/internal/common/middleware"
	bookingHTTP "table-booking-backend/internal/features/booking/delivery/http"
	bookingRepo "table-booking-backend/internal/features/booking/repository/postgres"
	bookingService "table-booking-backend/internal/features/booking/service"
	contentHTTP "table-booking-backend/internal/features/content/delivery/http"
	contentRepo "table-booking-backend/internal/features/content/repository/postgres"
	contentService "table-booking-backend/internal/features/content/service"
	questionHTTP "table-booking-backend/internal/features/question/delivery/http"
	questionRepo "table-booking-backend/internal/features/question/repository/postgres"
	questionService "table-booking-backend/internal/features/question/service"
	userHTTP "table-booking-backend/internal/features/user/delivery/http"
	userRepo "table-booking-backend/internal/features/user/repository/postgres"
	userService "table-booking-backend/internal/features/user/service"
	"table-booking-backend/internal/platform/postgres"
	"table-booking-backend/internal/platform/redis"
	"table-booking-backend/internal/service/notifications"
	"table-booking-backend/internal/workers"
)

// @title           Table Booking API
// @version         1.0
// @description     API server for a restaurant table booking service: bookings with e-mail confirmation, guest questions and site content.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey SessionToken
// @in header
// @name Authorization
// @description Session token, passed as "Bearer <token>"

// @tag.name auth
// @tag.description Registration, login and sessions

// @tag.name users
// @tag.description User profile management

// @tag.name bookings
// @tag.description Table bookings - creation, confirmation via e-mail link, viewing and administration

// @tag.name questions
// @tag.description Guest questions with staff moderation

// @tag.name content
// @tag.description Site texts, images, links and booking parameters

func main() {
	// Загружаем переменные окружения
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	// Инициализируем конфигурацию
	cfg := config.Load()

	// Инициализируем логгеры
	logger.Init("table-booking-backend", cfg.Debug)

	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	zapLogger.Info("Starting Table Booking Backend",
		zap.String("version", "1.0.0"),
		zap.Bool("debug", cfg.Debug),
	)

	// Инициализируем базу данных
	postgresClient, err := postgres.NewClient(cfg)
	if err != nil {
		zapLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer postgresClient.Close()

	zapLogger.Info("Database connection established")

	// Инициализируем Redis
	redisClient, err := redis.NewClient(cfg)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	// Инициализируем кэш и хранилище сессий
	cacheService := cache.NewCacheService(redisClient)
	sessionStore := redis.NewSessionStore(redisClient)
	zapLogger.Info("Cache service initialized")

	// Инициализируем репозитории
	userRepository := userRepo.NewPostgresRepository(postgresClient.GetDB())
	bookingRepository := bookingRepo.NewPostgresRepository(postgresClient.GetDB())
	questionRepository := questionRepo.NewPostgresRepository(postgresClient.GetDB())
	contentRepository := contentRepo.NewPostgresRepository(postgresClient.GetDB())

	zapLogger.Info("Repositories initialized")

	// Инициализируем сервисы
	mailDispatcher := notifications.NewService(redisClient, cfg.Mail.StreamKey, cfg.Mail.From)
	contentSvc := contentService.NewContentService(contentRepository, zapLogger)
	userSvc := userService.NewUserService(userRepository, sessionStore,
		cfg.Auth.SessionTTL, cfg.Auth.BcryptCost,
		cfg.Auth.TelegramBotToken, cfg.Auth.InitDataTTL, zapLogger)
	bookingSvc := bookingService.NewBookingService(bookingRepository, cacheService,
		contentSvc, mailDispatcher, cfg.Server.PublicBaseURL, zapLogger)
	questionSvc := questionService.NewQuestionService(questionRepository, cacheService, zapLogger)

	zapLogger.Info("Services initialized")

	// Запускаем воркер отправки почты
	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()

	mailWorker := workers.NewMailWorker(redisClient, workers.LogSender{}, cfg.Mail.StreamKey)
	go mailWorker.Start(workerCtx)

	// Настраиваем Gin
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Добавляем middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler(zapLogger))
	router.Use(gin.Recovery())
	router.Use(middleware.Authenticate(userSvc))

	// Настраиваем CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Server.Origin}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization", "Accept"}
	corsConfig.AllowCredentials = true
	router.Use(cors.New(corsConfig))

	zapLogger.Info("Middleware configured")

	// Настраиваем роуты
	userHandler := userHTTP.NewUserHandler(userSvc, zapLogger)
	bookingHandler := bookingHTTP.NewBookingHandler(bookingSvc, zapLogger)
	questionHandler := questionHTTP.NewQuestionHandler(questionSvc, zapLogger)
	contentHandler := contentHTTP.NewContentHandler(contentSvc, zapLogger)

	v1 := router.Group("/api/v1")
	{
		userHandler.RegisterRoutes(v1)
		bookingHandler.RegisterRoutes(v1)
		questionHandler.RegisterRoutes(v1)
		contentHandler.RegisterRoutes(v1)
	}

	// Страницы подтверждения брони, доступные по ссылке из письма
	bookingHandler.RegisterPublicRoutes(router)

	// Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	setupHealthRoutes(router, postgresClient, redisClient)

	zapLogger.Info("Routes configured")

	// Создаем HTTP сервер
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Запускаем сервер в горутине
	go func() {
		zapLogger.Info("Starting HTTP server", zap.Int("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Ждем сигнала для graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("Shutting down server...")

	stopWorker()

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	zapLogger.Info("Server exited")
}

func setupHealthRoutes(router *gin.Engine, postgresClient *postgres.Client, redisClient *redis.Client) {
	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC(),
			"service":   "table-booking-backend",
		})
	})

	// Liveness probe
	router.GET("/live", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	// Readiness probe
	router.GET("/ready", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		// Проверка Postgres
		if err := postgresClient.HealthCheck(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unready",
				"error":   "postgres unavailable",
				"details": err.Error(),
			})
			return
		}

		// Проверка Redis
		if err := redisClient.Ping(ctx).Err(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unready",
				"error":   "redis unavailable",
				"details": err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "ready",
			"timestamp": time.Now().UTC(),
			"service":   "table-booking-backend",
		})
	})
}
