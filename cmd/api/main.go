package main

import (
	"context"
	"log"
	"time"

	"tutorship-api/config"
	"tutorship-api/handlers"
	"tutorship-api/logger"
	"tutorship-api/middleware"
	"tutorship-api/models"
	"tutorship-api/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Загружаем .env файл (игнорируем ошибку для продакшн)
	_ = godotenv.Load()

	cfg := config.Load()

	zapLogger := logger.NewZapLogger(cfg)
	defer zapLogger.Sync()

	zapLogger.Info("Start service", zap.String("environment", cfg.Environment))

	source, err := newRosterSource(cfg, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to initialize roster source", zap.Error(err))
	}

	cacheService := services.NewCacheService(cfg.CacheTTL, 2*cfg.CacheTTL)
	gridService := services.NewGridService(zapLogger, models.RowOrder(cfg.GridRowOrder), cfg.OccupancyMark)
	scheduleService := services.NewScheduleService(
		services.NewRosterStore(),
		source,
		gridService,
		cacheService,
		services.NewExportService(),
		zapLogger,
	)

	// Одна загрузка при старте; при ошибке отдаём состояние загрузки до ручного обновления
	ctx, cancel := context.WithTimeout(context.Background(), cfg.FetchTimeout+5*time.Second)
	if err := scheduleService.Refresh(ctx); err != nil {
		zapLogger.Warn("Roster is empty, serving loading state", zap.Error(err))
	}
	cancel()

	scheduleHandler := handlers.NewScheduleHandler(scheduleService, zapLogger)
	teacherHandler := handlers.NewTeacherHandler(scheduleService)
	rosterHandler := handlers.NewRosterHandler(scheduleService, zapLogger)
	pageHandler := handlers.NewPageHandler(scheduleService)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.Logger(zapLogger))
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(gin.Recovery())
	router.SetHTMLTemplate(handlers.PageTemplate())

	refreshLimiter := middleware.NewRateLimiter(cfg.RefreshPerMin)

	router.GET("/", pageHandler.Index)

	api := router.Group("/api/v1")
	{
		// Health check
		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":  "ok",
				"time":    time.Now(),
				"loading": scheduleService.Loading(),
			})
		})

		// Teachers
		api.GET("/teachers", teacherHandler.GetTeachers)

		// Schedules
		api.GET("/schedule", scheduleHandler.GetDefaultSchedule)
		api.GET("/teachers/:name/schedule", scheduleHandler.GetTeacherSchedule)
		api.GET("/teachers/:name/schedule/export", scheduleHandler.ExportTeacherSchedule)

		// Roster
		api.POST("/roster/refresh", refreshLimiter.Middleware(zapLogger), rosterHandler.Refresh)
	}

	zapLogger.Info("Starting server", zap.String("port", cfg.ServerPort))
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func newRosterSource(cfg *config.Config, zapLogger *zap.Logger) (services.RosterSource, error) {
	switch cfg.RosterSource {
	case "minio":
		minioService, err := services.NewMinIOService(cfg)
		if err != nil {
			return nil, err
		}
		return services.NewMinIORosterSource(minioService, cfg.RosterBucket, cfg.RosterObject, zapLogger), nil
	default:
		return services.NewHTTPRosterSource(cfg.RosterURL, cfg.FetchTimeout, zapLogger), nil
	}
}
