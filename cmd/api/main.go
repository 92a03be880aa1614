// @title Interview Prep API
// @version 1.0
// @description Backend for resume driven mock interview practice.
// @host localhost:8080
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_JWT_TOKEN' to authorize.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"interview-prep/internal/adapter"
	"interview-prep/internal/adapter/textgen"
	"interview-prep/internal/cache"
	"interview-prep/internal/config"
	"interview-prep/internal/database"
	"interview-prep/internal/domain"
	"interview-prep/internal/generator"
	"interview-prep/internal/handler"
	"interview-prep/internal/logger"
	"interview-prep/internal/middleware"
	"interview-prep/internal/repository"
	"interview-prep/internal/service"
	"interview-prep/internal/validation"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		duration := time.Since(start)
		status := c.Response().StatusCode()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("ip", c.IP()),
			zap.String("user_agent", c.Get("User-Agent")),
		)

		return err
	}
}

// buildTextGenerators creates a provider for each configured API key. The
// returned slice preserves fallback order: OpenAI first, then Google AI.
func buildTextGenerators(cfg *config.Config, appLogger *zap.Logger) []domain.TextGenerator {
	var providers []domain.TextGenerator

	if cfg.AI.OpenAIAPIKey != "" {
		openAIGen, err := textgen.NewOpenAIGenerator(cfg.AI.OpenAIAPIKey, cfg.AI.OpenAIModel)
		if err != nil {
			appLogger.Warn("Failed to create OpenAI generator", zap.Error(err))
		} else {
			providers = append(providers, openAIGen)
			appLogger.Info("OpenAI text generator initialized", zap.String("model", cfg.AI.OpenAIModel))
		}
	}

	if cfg.AI.GoogleAIAPIKey != "" {
		googleGen, err := textgen.NewGoogleAIGenerator(context.Background(), cfg.AI.GoogleAIAPIKey, cfg.AI.GoogleAIModel)
		if err != nil {
			appLogger.Warn("Failed to create Google AI generator", zap.Error(err))
		} else {
			providers = append(providers, googleGen)
			appLogger.Info("Google AI text generator initialized", zap.String("model", cfg.AI.GoogleAIModel))
		}
	}

	if len(providers) == 0 {
		appLogger.Info("No AI providers configured, question generation will use the local bank")
	}
	return providers
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// Connect to database and bring the schema up to date
	db, err := database.NewPostgresDB(cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		appLogger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Redis is optional. Without it dashboard reads skip the snapshot cache.
	var cacheAdapter domain.Cache
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.Warn("Redis unavailable, dashboard caching disabled", zap.Error(err))
	} else {
		cacheAdapter = adapter.NewRedisCacheAdapter(redisClient)
		appLogger.Info("RedisCacheAdapter initialized")
	}

	// Initialize repositories
	userRepository := repository.NewSQLXUserRepository(db)
	resumeRepository := repository.NewSQLXResumeRepository(db)
	interviewRepository := repository.NewSQLXInterviewRepository(db)

	// Text generation providers and the question generator
	providers := buildTextGenerators(cfg, appLogger)
	questionGenerator := generator.NewGenerator(providers, cfg.AI.RequestTimeout)

	// Initialize services
	dashboardCacheService := service.NewDashboardCacheService(cacheAdapter, cfg)

	authService, err := service.NewAuthService(userRepository, cfg)
	if err != nil {
		appLogger.Fatal("Failed to create AuthService", zap.Error(err))
	}

	userService := service.NewUserService(userRepository)
	resumeService := service.NewResumeService(resumeRepository, userRepository, providers, cfg.AI.RequestTimeout, dashboardCacheService)
	interviewService := service.NewInterviewService(interviewRepository, resumeRepository, questionGenerator, dashboardCacheService)
	dashboardService := service.NewDashboardService(userRepository, resumeRepository, interviewRepository, dashboardCacheService)

	validator := validation.NewValidator()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, validator, cfg)
	userHandler := handler.NewUserHandler(userService)
	resumeHandler := handler.NewResumeHandler(resumeService)
	interviewHandler := handler.NewInterviewHandler(interviewService, validator)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		BodyLimit:    10 * 1024 * 1024,
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,PUT,DELETE,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept,Authorization", MaxAge: 300}))
	app.Use(recover.New())

	apiGroup := app.Group("/api")

	// Auth routes
	authGroup := apiGroup.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/google/login", authHandler.GoogleLogin)
	authGroup.Get("/google/callback", authHandler.GoogleCallback)
	authGroup.Post("/refresh", authHandler.RefreshToken)
	authGroup.Post("/logout", middleware.Protected(authService), authHandler.Logout)

	// Profile routes (all protected)
	profileGroup := apiGroup.Group("/profile", middleware.Protected(authService))
	profileGroup.Get("/", userHandler.GetProfile)
	profileGroup.Put("/", userHandler.UpdateProfile)

	// Resume routes (all protected)
	resumeGroup := apiGroup.Group("/resume", middleware.Protected(authService))
	resumeGroup.Post("/upload", resumeHandler.Upload)
	resumeGroup.Get("/", resumeHandler.GetLatest)

	// Interview routes (all protected)
	interviewGroup := apiGroup.Group("/interview", middleware.Protected(authService))
	interviewGroup.Post("/start", interviewHandler.Start)
	interviewGroup.Post("/submit", interviewHandler.Submit)

	// Dashboard
	apiGroup.Get("/dashboard", middleware.Protected(authService), dashboardHandler.GetDashboard)

	// Start server
	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", os.Getenv("ENV")))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
