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

	"leadpilot/lead-intent-api/internal/config"
	"leadpilot/lead-intent-api/internal/handlers"
	"leadpilot/lead-intent-api/internal/middleware"
	"leadpilot/lead-intent-api/internal/repositories"
	"leadpilot/lead-intent-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	// Initialize repositories
	accountRepo := repositories.NewAccountRepository(db)
	offerRepo := repositories.NewOfferRepository(db)
	leadRepo := repositories.NewLeadRepository(db)
	resultRepo := repositories.NewResultRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize services
	tokenService, err := services.NewTokenService(
		cfg.Auth.JWTSecret,
		cfg.Auth.AccessTokenTTL,
		cfg.Auth.Issuer,
	)
	if err != nil {
		log.Fatalf("❌ Failed to initialize token service: %v", err)
	}

	leadParser := services.NewLeadParserService()
	log.Println("✅ Services initialized successfully")

	// Initialize the Gemini classifier
	classifier, err := services.NewGeminiClassifier(context.Background(), services.ClassifierConfig{
		APIKey:  cfg.Gemini.APIKey,
		Model:   cfg.Gemini.Model,
		Timeout: cfg.Scoring.RequestTimeout,
	})
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini classifier: %v", err)
	}
	log.Println("✅ Gemini classifier initialized successfully")

	// Initialize the scoring orchestrator
	scoringService := services.NewScoringService(offerRepo, leadRepo, resultRepo, classifier)
	log.Println("✅ Scoring service initialized")

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(accountRepo, tokenService)
	offerHandler := handlers.NewOfferHandler(offerRepo)
	leadHandler := handlers.NewLeadHandler(leadRepo, leadParser, cfg.Storage.MaxFileSize)
	scoreHandler := handlers.NewScoreHandler(scoringService)
	resultHandler := handlers.NewResultHandler(resultRepo)
	log.Println("✅ Handlers initialized")

	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Lead Intent Scoring API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
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

	// Public endpoints
	api.Post("/auth/register", authHandler.HandleRegister)
	api.Post("/auth/login", authHandler.HandleLogin)

	// Authenticated endpoints
	protected := api.Group("", authMiddleware.Authenticate())
	protected.Post("/offers", offerHandler.HandleCreateOffer)
	protected.Get("/offers", offerHandler.HandleListOffers)
	protected.Post("/leads/upload", leadHandler.HandleUpload)
	protected.Get("/leads", leadHandler.HandleListLeads)
	protected.Post("/score", scoreHandler.HandleScore)
	protected.Get("/results", resultHandler.HandleListResults)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Lead Intent Scoring API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/auth/register",
				"POST /api/v1/auth/login",
				"POST /api/v1/offers",
				"POST /api/v1/leads/upload",
				"POST /api/v1/score?offer_id=<id>",
				"GET /api/v1/results",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
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
