package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"alfredoptarigan/resume-matcher/internal/config"
	"alfredoptarigan/resume-matcher/internal/handlers"
	applog "alfredoptarigan/resume-matcher/internal/logger"
	"alfredoptarigan/resume-matcher/internal/repositories"
	"alfredoptarigan/resume-matcher/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	zl, err := applog.New(cfg.Server.LogJSON, cfg.Server.Env == "development")
	if err != nil {
		log.Fatalf("❌ Failed to create logger: %v", err)
	}
	defer zl.Sync()

	if !cfg.EnvFileLoaded {
		zl.Info("No .env file found. Using default values.")
	}

	if err := cfg.Validate(); err != nil {
		zl.Fatal("❌ Invalid configuration", zap.Error(err))
	}
	zl.Info("✅ Config loaded successfully")

	ctx := context.Background()

	// Initialize database
	db, err := config.InitDatabase(cfg, zl)
	if err != nil {
		zl.Fatal("❌ Failed to initialize database", zap.Error(err))
	}

	// Initializes repositories
	docRepo := repositories.NewDocumentRepository(db)
	appRepo := repositories.NewApplicationRepository(db)

	var jobRepo repositories.JobRepository
	switch cfg.JobStore {
	case config.JobStoreMongo:
		mongoDB, err := config.ConnectMongo(cfg)
		if err != nil {
			zl.Fatal("❌ Failed to connect to MongoDB", zap.Error(err))
		}
		jobRepo = repositories.NewMongoJobRepository(mongoDB)
	default:
		jobRepo = repositories.NewJobRepository(db)
	}
	zl.Info("✅ Repositories initialized successfully", zap.String("job_store", cfg.JobStore))

	// Initialize storage
	var storageService services.StorageService
	switch cfg.Storage.Driver {
	case config.StorageS3:
		storageService, err = services.NewS3Storage(ctx, cfg.Storage.S3)
		if err != nil {
			zl.Fatal("❌ Failed to initialize S3 storage", zap.Error(err))
		}
	default:
		storageService = services.NewLocalStorage(cfg.Storage.UploadPath)
	}
	if err := storageService.EnsureReady(ctx); err != nil {
		zl.Fatal("❌ Storage is not ready", zap.Error(err))
	}

	// Initialize matching services
	extractor := services.NewTextExtractor(storageService)
	skillExtractor := services.NewSkillExtractor(services.DefaultSkillVocabulary())

	scorer, err := services.NewScorer(cfg.Matching.Scorer)
	if err != nil {
		zl.Fatal("❌ Failed to initialize scorer", zap.Error(err))
	}
	weighted := services.NewWeightedScorer(services.DefaultWeightedConfig())

	recommender := services.NewRecommender(jobRepo, extractor, skillExtractor, scorer, cfg.Matching.TopN, zl)
	detailed := services.NewRecommender(jobRepo, extractor, skillExtractor, weighted, 1, zl)
	appScorer := services.NewApplicationScorer(appRepo, docRepo, jobRepo, extractor, skillExtractor, weighted, zl)
	zl.Info("✅ Services initialized successfully", zap.String("scorer", scorer.Name()))

	// Initialize worker
	worker := services.NewWorker(appRepo, appScorer, cfg.Worker.Concurrency, cfg.Worker.PollInterval, zl)
	worker.Start(ctx)
	zl.Info("✅ Worker started successfully")

	// Initialize Handlers
	uploadHandler := handlers.NewUploadHandler(docRepo, storageService, cfg.Storage.MaxFileSize, zl)
	recommendHandler := handlers.NewRecommendHandler(recommender, detailed, cfg.Storage.MaxFileSize)
	applicationHandler := handlers.NewApplicationHandler(appRepo, docRepo, jobRepo, worker, zl)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Resume Matcher API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize) + 1<<20,
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// API endpoints
	api.Post("/upload", uploadHandler.HandleUpload)
	api.Post("/recommend", recommendHandler.HandleRecommend)
	api.Post("/jobs/:id/score", recommendHandler.HandleScore)
	api.Get("/jobs/:id/applications", applicationHandler.HandleListJobApplications)
	api.Post("/applications", applicationHandler.HandleApply)
	api.Get("/applications/:id", applicationHandler.HandleGetApplication)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Resume Matcher API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/upload",
				"POST /api/v1/recommend",
				"POST /api/v1/jobs/:id/score",
				"GET /api/v1/jobs/:id/applications",
				"POST /api/v1/applications",
				"GET /api/v1/applications/:id",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		zl.Info("🛑 Shutting down server...")
		worker.Stop()
		if err := app.Shutdown(); err != nil {
			zl.Error("❌ Server forced to shutdown", zap.Error(err))
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	zl.Info("🚀 Server starting", zap.String("addr", addr))

	if err := app.Listen(addr); err != nil {
		zl.Fatal("❌ Failed to start server", zap.Error(err))
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
