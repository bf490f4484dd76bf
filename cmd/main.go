package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/tacticax/internal/config"
	"github.com/shenikar/tacticax/internal/dispatch"
	"github.com/shenikar/tacticax/internal/flash"
	"github.com/shenikar/tacticax/internal/gemini"
	"github.com/shenikar/tacticax/internal/geofence"
	v1 "github.com/shenikar/tacticax/internal/handler/http/v1"
	"github.com/shenikar/tacticax/internal/observability"
	"github.com/shenikar/tacticax/internal/service"
	"github.com/shenikar/tacticax/internal/whisper"
	"github.com/shenikar/tacticax/pkg/logger"
	redisclient "github.com/shenikar/tacticax/pkg/redis"

	_ "github.com/shenikar/tacticax/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title TacticaX API
// @version 1.0
// @description Tactical support API: mission strategy generation, Morse code communication and geofenced secure messages.
// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Метрики
	metrics, err := observability.NewCollector(prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatalf("Failed to register metrics: %v", err)
	}

	// Внешние AI сервисы
	var generator service.Generator = service.NoopGenerator{}
	if cfg.GeminiAPIKey != "" {
		generator = gemini.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiURL, cfg.AITimeout)
		log.Infof("Strategy generation enabled (model %s)", cfg.GeminiModel)
	} else {
		log.Warn("GEMINI_API_KEY is not set. Strategy generation is disabled.")
	}

	var transcriber service.Transcriber = service.NoopTranscriber{}
	if cfg.OpenAIAPIKey != "" {
		transcriber = whisper.NewClient(cfg.OpenAIAPIKey, cfg.WhisperLanguage, cfg.WhisperURL, cfg.AITimeout)
		log.Info("Speech transcription enabled")
	} else {
		log.Warn("OPENAI_API_KEY is not set. Speech transcription is disabled.")
	}

	// Очередь доставки защищенных сообщений
	var publisher dispatch.Publisher
	if cfg.RedisAddr != "" {
		redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		log.Info("Successfully connected to Redis")

		publisher = dispatch.NewRedisPublisher(redisClient)

		// Воркер доставки
		worker := dispatch.NewWorker(redisClient, log, cfg)
		worker.Start(ctx)
	} else {
		log.Warn("REDIS_ADDR is not set. Secure messages will only be logged.")
		publisher = dispatch.NewLogPublisher(log)
	}

	// Инициализация сервисов
	fence := geofence.Fence{
		Center:   geofence.Coordinate{Latitude: cfg.GeofenceLat, Longitude: cfg.GeofenceLon},
		RadiusKm: cfg.GeofenceRadiusKm,
	}
	decoder := flash.NewDecoder(uint8(cfg.FlashThreshold), cfg.FlashUnitFrames)

	strategyService := service.NewStrategyService(generator, log, metrics)
	commsService := service.NewCommsService(transcriber, decoder, log, metrics)
	geofenceService := service.NewGeofenceService(fence, publisher, log, metrics)

	// Инициализация хэндлеров
	handler := v1.NewHandler(strategyService, commsService, geofenceService, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	router.Use(metrics.Middleware())
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	// Останавливаем воркер до закрытия Redis
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
