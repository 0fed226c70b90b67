package main

import (
	"context"
	"errors"
	"log"
	"runtime"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jiwoohan/record-analyzer/internal/config"
	"github.com/jiwoohan/record-analyzer/internal/domain/fiber/handler"
	"github.com/jiwoohan/record-analyzer/internal/export"
	"github.com/jiwoohan/record-analyzer/internal/middleware"
	"github.com/jiwoohan/record-analyzer/internal/repository"
	"github.com/jiwoohan/record-analyzer/internal/service"
	"github.com/jiwoohan/record-analyzer/internal/usecase"
	"github.com/joho/godotenv"
)

func main() {
	ctx := context.Background()
	err := godotenv.Load()
	if err != nil {
		log.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()

	app := fiber.New(fiber.Config{
		AppName: appConfig.Name,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError

			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}

			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}

			return ctx.Status(code).JSON(fiber.Map{"error": message})
		},
	})
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: appConfig.Env != "production",
	}))

	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed, // 1
	}))
	// Profiling endpoints stay off in production.
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return config.LoadAppConfig().Env == "production"
		},
	}))
	app.Use(healthcheck.New())

	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))

	app.Use(middleware.RateLimiter(50, 1*time.Minute))

	// Credential presence is validated here so a misconfigured deployment
	// dies at startup, not on the first analysis request.
	evaluator := newEvaluator(ctx, appConfig.LLMProvider)

	exporter, err := export.NewPDFExporter()
	if err != nil {
		log.Fatal(err)
	}

	sessions := repository.NewSessionRepository()
	uc := usecase.NewAnalysisUsecase(sessions, evaluator, exporter)
	handler := handler.NewAnalyzeHandler(uc)

	handler.RegisterRoutes(app)

	// Monitor goroutine count
	go func() {
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			log.Printf("Active goroutines: %d", runtime.NumGoroutine())
		}
	}()

	log.Println("Server running on ", appConfig.Port)
	if err := app.Listen(appConfig.Port); err != nil {
		log.Fatal(err)
	}
}

func newEvaluator(ctx context.Context, provider string) service.Evaluator {
	switch provider {
	case "openrouter":
		evaluator, err := service.NewOpenRouterService(config.LoadOpenRouterConfig())
		if err != nil {
			log.Fatal(err)
		}
		return evaluator
	default:
		evaluator, err := service.NewGeminiService(ctx, config.LoadGeminiConfig())
		if err != nil {
			log.Fatal(err)
		}
		return evaluator
	}
}
