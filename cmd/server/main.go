package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MGaul6/SkillExchange/internal/config"
	"github.com/MGaul6/SkillExchange/internal/database"
	"github.com/MGaul6/SkillExchange/internal/metrics"
	"github.com/MGaul6/SkillExchange/internal/repository"
	"github.com/MGaul6/SkillExchange/internal/routes"
	"github.com/MGaul6/SkillExchange/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Choose the store
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var store services.Store
	switch cfg.StoreBackend {
	case config.StoreBackendMemory:
		log.Println("Using in-memory store; data is lost on restart")
		store = repository.NewMemoryStore()
	default:
		if cfg.AutoMigrate {
			if err := database.Migrate(cfg.DBUrl, database.MigrateUp); err != nil {
				log.Fatalf("Failed to migrate database: %v", err)
			}
		}
		pool, err := database.Connect(ctx, cfg.DBUrl)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer pool.Close()
		store = repository.NewPostgresStore(pool)
	}

	metrics.Register()

	// 3. Setup Fiber
	app := fiber.New()

	// Middleware
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.CORSAllowOrigins}))
	app.Use(logger.New())
	app.Use(recover.New())

	// Routes
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	})
	if err := routes.RegisterRoutes(app, cfg, store); err != nil {
		log.Fatalf("Failed to register routes: %v", err)
	}

	// 4. Start Server
	go func() {
		<-ctx.Done()
		log.Println("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("Server shutdown failed: %v", err)
		}
	}()

	log.Printf("Server starting on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
