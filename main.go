package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/GMohankrishna2005/AI-Powered-Chatbot/database"
	"github.com/GMohankrishna2005/AI-Powered-Chatbot/internal/catalog"
	"github.com/GMohankrishna2005/AI-Powered-Chatbot/internal/matcher"
	"github.com/GMohankrishna2005/AI-Powered-Chatbot/internal/models"
	"github.com/GMohankrishna2005/AI-Powered-Chatbot/internal/routes"
	"github.com/GMohankrishna2005/AI-Powered-Chatbot/internal/services"
	"github.com/GMohankrishna2005/AI-Powered-Chatbot/internal/storage"
)

const version = "1.0.0"

func main() {
	// Load .env file for local development
	if os.Getenv("INSTANCE_CONNECTION_NAME") == "" {
		if err := godotenv.Load(".env"); err != nil {
			log.Println("⚠️  No .env file found - using environment variables")
		}
	}

	// Load the FAQ catalog and confidence thresholds
	cat, err := catalog.Load(os.Getenv("FAQ_CATALOG_PATH"))
	if err != nil {
		log.Fatal("Failed to load FAQ catalog:", err)
	}
	log.Printf("✅ FAQ catalog loaded: %d categories (thresholds low=%.2f high=%.2f)",
		len(cat.Categories), cat.LowThreshold, cat.HighThreshold)

	// Initialize storage
	var store storage.Store
	var db *gorm.DB

	if os.Getenv("USE_MEMORY_STORE") == "true" {
		log.Println("⚠️  Using in-memory storage (not for production!)")
		store = storage.NewMemoryStore()
	} else {
		log.Println("📦 Connecting to PostgreSQL database...")
		if err := database.Connect(); err != nil {
			log.Fatal("Failed to connect to database:", err)
		}
		db = database.DB

		log.Println("🔄 Running database migrations...")
		if err := db.AutoMigrate(&models.Conversation{}); err != nil {
			log.Fatal("Failed to migrate database:", err)
		}
		log.Println("✅ Database migrations completed!")

		store = storage.NewDatabaseStore(db)
		log.Println("✅ Using PostgreSQL database storage")
	}
	storage.SetStore(store)

	// Initialize the engine
	faqMatcher := matcher.New(cat)
	chatService := services.NewChatService(faqMatcher, store)
	historyService := services.NewHistoryService(store)

	// Create fiber app
	app := fiber.New(fiber.Config{
		AppName: "AI-Powered Chatbot v" + version,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, OPTIONS",
	}))

	routes.SetupRoutes(app, store, chatService, historyService, version, db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Handle graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("\n🛑 Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	log.Println("========================================")
	log.Printf("🚀 Chatbot backend starting on port %s", port)
	log.Printf("📊 Storage: %s", storageType())
	log.Printf("📚 Categories: %d", len(cat.Categories))
	log.Println("========================================")

	log.Fatal(app.Listen(":" + port))
}

func storageType() string {
	if os.Getenv("USE_MEMORY_STORE") == "true" {
		return "In-Memory (Testing)"
	}
	return "PostgreSQL Database"
}
