package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yourusername/question-bank/internal/config"
	"github.com/yourusername/question-bank/internal/handler"
	"github.com/yourusername/question-bank/internal/middleware"
	pgRepo "github.com/yourusername/question-bank/internal/repository/postgres"
	"github.com/yourusername/question-bank/internal/service"
	"github.com/yourusername/question-bank/pkg/database"
)

func main() {
	// Загружаем конфигурацию
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	log.Printf("Загрузка конфигурации из %s", configPath)

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		os.Exit(1)
	}

	// Инициализируем подключение к PostgreSQL
	db, err := database.NewPostgresDB(cfg.Database.PostgresConnectionString())
	if err != nil {
		log.Printf("Failed to connect to database: %v", err)
		os.Exit(1)
	}

	// Применяем миграции
	if err := database.MigrateDB(db); err != nil {
		log.Printf("Failed to migrate database: %v", err)
		os.Exit(1)
	}

	// Инициализируем репозитории
	questionRepo := pgRepo.NewQuestionRepo(db)
	categoryRepo := pgRepo.NewCategoryRepo(db)

	// Инициализируем сервисы
	questionService := service.NewQuestionService(questionRepo, categoryRepo)
	quizService := service.NewQuizService(questionRepo)

	// Инициализируем обработчики
	questionHandler := handler.NewQuestionHandler(questionService)
	categoryHandler := handler.NewCategoryHandler(questionService)
	quizHandler := handler.NewQuizHandler(quizService)

	// Rate limiting пишущих запросов поверх Redis.
	// Без Redis лимитер не включается, API работает без ограничений.
	writeLimit := func(c *gin.Context) { c.Next() }
	if cfg.RateLimit.Enabled && cfg.RedisConfigured() {
		redisClient, err := database.NewUniversalRedisClient(cfg.Redis)
		if err != nil {
			log.Printf("Не удалось подключиться к Redis: %v. Rate limiting отключен.", err)
		} else {
			log.Println("Successfully connected to Redis")
			limitCfg := middleware.DefaultWriteRateLimitConfig()
			if cfg.RateLimit.MaxRequests > 0 {
				limitCfg.MaxRequests = cfg.RateLimit.MaxRequests
			}
			if cfg.RateLimit.WindowSec > 0 {
				limitCfg.Window = time.Duration(cfg.RateLimit.WindowSec) * time.Second
			}
			writeLimit = middleware.NewRateLimiter(redisClient).Limit(limitCfg)
		}
	}

	// Инициализируем роутер Gin
	router := gin.Default()

	isProduction := gin.Mode() == gin.ReleaseMode

	// Настройка доверенных прокси для корректной работы c.ClientIP()
	// В production (GIN_MODE=release): не доверяем прокси (защита от IP spoofing)
	// В development: доверяем localhost
	if isProduction {
		if err := router.SetTrustedProxies(nil); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	} else {
		if err := router.SetTrustedProxies([]string{"127.0.0.1", "::1"}); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	}

	// Настройка CORS: API открыт для любых origins
	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "PATCH", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	// Неизвестный маршрут и неподдерживаемый метод отдаются
	// в том же конверте ошибок, что и остальные отказы
	router.HandleMethodNotAllowed = true
	router.NoRoute(handler.NotFoundHandler())
	router.NoMethod(handler.MethodNotAllowedHandler())

	// Настраиваем маршруты API
	categories := router.Group("/categories")
	{
		categories.GET("", categoryHandler.ListCategories)
		categories.GET("/:id/questions",
			middleware.ExtractUintParam("id", "categoryID"),
			categoryHandler.CategoryQuestions)
	}

	questions := router.Group("/questions")
	{
		questions.GET("", questionHandler.ListQuestions)
		questions.GET("/export", questionHandler.ExportQuestions)
		questions.POST("/search", questionHandler.SearchQuestions)

		// Пишущие операции под rate limit
		questions.POST("", writeLimit, questionHandler.CreateQuestion)
		questions.DELETE("/:id", writeLimit,
			middleware.ExtractUintParam("id", "questionID"),
			questionHandler.DeleteQuestion)
	}

	router.POST("/quizzes", quizHandler.NextQuestion)

	// Настраиваем HTTP сервер с тайм-аутами для защиты от slow client attacks
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Запускаем сервер в горутине
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Failed to start server: %v", err)
		}
	}()

	log.Printf("Server started on port %s", cfg.Server.Port)

	// Ждем сигнал остановки
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Контекст с таймаутом для graceful shutdown сервера
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
		os.Exit(1)
	}

	log.Println("Server exited properly")
}
