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
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/zoobzio/clockz"

	"github.com/shenikar/safety_response_coordinator/internal/config"
	"github.com/shenikar/safety_response_coordinator/internal/dispatch"
	"github.com/shenikar/safety_response_coordinator/internal/ert"
	v1 "github.com/shenikar/safety_response_coordinator/internal/handler/http/v1"
	"github.com/shenikar/safety_response_coordinator/internal/liveevents"
	"github.com/shenikar/safety_response_coordinator/internal/models"
	"github.com/shenikar/safety_response_coordinator/internal/repository"
	"github.com/shenikar/safety_response_coordinator/internal/service"
	"github.com/shenikar/safety_response_coordinator/internal/workflow"
	"github.com/shenikar/safety_response_coordinator/pkg/logger"
	"github.com/shenikar/safety_response_coordinator/pkg/postgres"
	redisclient "github.com/shenikar/safety_response_coordinator/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/safety_response_coordinator/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Safety Incident Response Coordinator API
// @version 1.0
// @description Incident lifecycle, response workflows, ERT dispatch and live event feed.
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

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

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

	clock := clockz.RealClock

	// Redis необязателен: без него события и выезды обрабатываются в процессе
	var redisClient *redis.Client
	if client, err := redisclient.NewRedisClient(ctx, cfg); err != nil {
		log.WithError(err).Warn("Redis is unavailable, falling back to in-process transport")
	} else {
		redisClient = client
		defer redisClient.Close()
		log.Info("Successfully connected to Redis")
	}

	// Хранилище инцидентов
	var incidentRepo service.IncidentRepository
	if cfg.DatabaseURL != "" {
		if err := runMigrations(cfg, log); err != nil {
			log.Fatalf("Failed to run database migrations: %v", err)
		}

		dbpool, err := postgres.NewPostgresDB(ctx, cfg)
		if err != nil {
			log.Fatalf("Failed to connect to PostgreSQL: %v", err)
		}
		defer dbpool.Close()
		log.Info("Successfully connected to PostgreSQL")

		incidentRepo = repository.NewIncidentRepository(dbpool, redisClient, cfg.CacheTTL)
	} else {
		log.Warn("DATABASE_URL is empty, incidents are kept in memory")
		incidentRepo = repository.NewMemoryCatalog()
	}

	// Лента живых событий
	aggregator := liveevents.NewAggregator(cfg.LiveLogCapacity, clock, log)
	go aggregator.RunDailyReset(ctx)

	var events service.EventPublisher
	if redisClient != nil {
		events = liveevents.NewRedisPublisher(redisClient, cfg.LiveEventsChannel)
		liveevents.NewRedisSubscriber(redisClient, cfg.LiveEventsChannel, aggregator, log).Start(ctx)
	} else {
		events = liveevents.NewDirectPublisher(aggregator)
	}

	hub := liveevents.NewHub(log)
	go hub.Run(ctx, aggregator)

	// Шаблоны процедур реагирования
	registry, err := workflow.NewRegistry(workflow.DefaultTemplates(), models.IncidentCategory(cfg.DefaultWorkflowCategory), log)
	if err != nil {
		log.Fatalf("Failed to build workflow registry: %v", err)
	}

	// Группа реагирования и очередь выездов
	roster := ert.NewRoster()
	matcher := ert.NewMatcher(ert.DefaultRequiredSkills())

	dispatchWorker := dispatch.NewWorker(redisClient, clock, log, cfg)
	var dispatchQueue service.DispatchQueue
	if redisClient != nil {
		dispatchQueue = dispatch.NewRedisQueue(redisClient)
		dispatchWorker.Start(ctx)
	} else {
		dispatchQueue = dispatch.NewInlineQueue(ctx, dispatchWorker)
	}

	// Инициализация сервисов
	incidentService := service.NewIncidentService(incidentRepo, events, clock, log)
	workflowService := service.NewWorkflowService(incidentRepo, registry, clock, log)
	dispatchService := service.NewDispatchService(incidentRepo, roster, matcher, dispatchQueue, clock, log)

	// Инициализация хэндлеров
	handler := v1.NewHandler(v1.Services{
		Incidents: incidentService,
		Workflows: workflowService,
		Dispatch:  dispatchService,
		Events:    events,
		Feed:      aggregator,
		Stream:    hub,
	}, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Метрики Prometheus
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

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
