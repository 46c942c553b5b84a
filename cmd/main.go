package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/shenikar/facility_gis/internal/config"
	"github.com/shenikar/facility_gis/internal/geodata"
	v1 "github.com/shenikar/facility_gis/internal/handler/http/v1"
	"github.com/shenikar/facility_gis/internal/repository"
	"github.com/shenikar/facility_gis/internal/service"
	"github.com/shenikar/facility_gis/internal/webhook"
	"github.com/shenikar/facility_gis/pkg/logger"
	"github.com/shenikar/facility_gis/pkg/postgres"
	redisclient "github.com/shenikar/facility_gis/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/facility_gis/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Facility GIS API
// @version 1.0
// @description Public facility map of Sidigede village: facility catalogue, nearest-facility search, distance measurement and service buffers.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(cfg.MigrationsPath, migrationURL)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск миграций
	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Статические GeoJSON: резервные объекты и справочные слои
	fallback, err := geodata.NewFallbackSource(cfg.FallbackDataPath, log)
	if err != nil {
		log.Fatalf("Failed to init fallback source: %v", err)
	}
	layers, err := geodata.LoadReferenceLayers(map[string]string{
		geodata.LayerBoundary: cfg.BoundaryLayerPath,
		geodata.LayerRoads:    cfg.RoadLayerPath,
	})
	if err != nil {
		log.Fatalf("Failed to load reference layers: %v", err)
	}
	log.Info("Reference layers loaded")

	// Уведомления об изменениях объектов включаются только с WEBHOOK_URL
	var publisher webhook.WebhookPublisher = webhook.NopPublisher{}
	if cfg.WebhookURL != "" {
		publisher = webhook.NewRedisWebhookPublisher(redisClient)
		webhook.NewWebhookWorker(redisClient, log, cfg).Start(ctx)
	}

	// Инициализация репозиториев
	facilityRepo := repository.NewFacilityRepository(dbpool, redisClient, cfg.CacheTTL)

	// Инициализация сервисов
	facilityService := service.NewFacilityService(facilityRepo, fallback, publisher, log)
	sessionService := service.NewSessionService(facilityService, cfg.BufferRadii, cfg.DefaultBufferRadii, log)

	// Первая загрузка коллекции. Ошибка не фатальна: каталог недоступен
	// до ручного POST /facilities/reload
	if _, err := facilityService.Reload(ctx); err != nil {
		log.WithError(err).Error("Initial facility load failed")
	}

	// Инициализация хэндлеров
	handler := v1.NewHandler(facilityService, sessionService, layers, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

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
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
