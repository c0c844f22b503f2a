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

	"github.com/yourusername/trivia-bank/internal/config"
	"github.com/yourusername/trivia-bank/internal/handler"
	"github.com/yourusername/trivia-bank/internal/middleware"
	apperrors "github.com/yourusername/trivia-bank/internal/pkg/errors"
	pgRepo "github.com/yourusername/trivia-bank/internal/repository/postgres"
	"github.com/yourusername/trivia-bank/internal/service"
	"github.com/yourusername/trivia-bank/pkg/database"
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

	// Политики сервисного слоя из конфигурации
	serviceConfig := service.DefaultConfig()
	serviceConfig.ZeroMatchesAsError = cfg.Policy.ZeroSearchMatchesAsError

	// Инициализируем сервисы
	questionService := service.NewQuestionService(questionRepo, categoryRepo, serviceConfig)
	quizService := service.NewQuizService(questionRepo, categoryRepo)

	// Инициализируем обработчики
	questionHandler := handler.NewQuestionHandler(questionService)
	categoryHandler := handler.NewCategoryHandler(questionService)
	quizHandler := handler.NewQuizHandler(quizService)

	// Rate limiter на мутирующие запросы. Redis необязателен:
	// без него работаем без ограничений (fail-open).
	mutationLimit := func(c *gin.Context) { c.Next() }
	if cfg.RateLimit.Enabled {
		redisClient, err := database.NewRedisClient(cfg.Redis)
		if err != nil {
			log.Printf("Предупреждение: Redis недоступен, rate limiting отключен: %v", err)
		} else {
			log.Println("Successfully connected to Redis")
			limiter := middleware.NewRateLimiter(redisClient)
			limitCfg := middleware.DefaultMutationRateLimitConfig()
			if cfg.RateLimit.MaxRequests > 0 {
				limitCfg.MaxRequests = cfg.RateLimit.MaxRequests
			}
			if cfg.RateLimit.WindowSec > 0 {
				limitCfg.Window = time.Duration(cfg.RateLimit.WindowSec) * time.Second
			}
			mutationLimit = limiter.Limit(limitCfg)
		}
	}

	// Инициализируем роутер Gin
	router := gin.Default()

	isProduction := gin.Mode() == gin.ReleaseMode
	if isProduction {
		// Production: не доверять прокси-заголовкам
		if err := router.SetTrustedProxies(nil); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	} else {
		// Development: доверяем localhost
		if err := router.SetTrustedProxies([]string{"127.0.0.1", "::1"}); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	}

	// Настройка CORS: API открыт для любого фронтенда
	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length", "Content-Disposition"},
		MaxAge:        12 * time.Hour,
	}))

	// Ошибки маршрутизации отдаем в конверте исторического контракта
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		// Неподдерживаемый метод проходит через общий маппер ошибок,
		// как и доменные ошибки сервисного слоя
		handler.HandleServiceError(c, apperrors.ErrMethodNotAllowed)
	})
	router.NoRoute(func(c *gin.Context) {
		handler.RespondError(c, http.StatusNotFound)
	})

	// Настраиваем маршруты API
	api := router.Group("/api")
	{
		// Категории
		api.GET("/categories", categoryHandler.ListCategories)
		api.GET("/categories/:id/questions",
			middleware.ExtractUintParam("id", "categoryID"),
			categoryHandler.QuestionsByCategory)

		// Банк вопросов
		questions := api.Group("/questions")
		{
			questions.GET("", questionHandler.ListQuestions)
			questions.GET("/export", questionHandler.ExportQuestions)
			questions.POST("", mutationLimit, questionHandler.CreateQuestion)
			questions.POST("/batch", mutationLimit, questionHandler.CreateQuestionsBatch)
			questions.POST("/search", questionHandler.SearchQuestions)
			questions.DELETE("/:id",
				mutationLimit,
				middleware.ExtractUintParam("id", "questionID"),
				questionHandler.DeleteQuestion)
		}

		// Викторина
		api.POST("/quizzes", quizHandler.DrawQuestion)
	}

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

	// Ожидаем сигнал остановки
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Graceful shutdown с таймаутом
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
		os.Exit(1)
	}

	log.Println("Server exited properly")
}
