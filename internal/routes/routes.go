package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/GMohankrishna2005/AI-Powered-Chatbot/internal/handlers"
	"github.com/GMohankrishna2005/AI-Powered-Chatbot/internal/services"
	"github.com/GMohankrishna2005/AI-Powered-Chatbot/internal/storage"
)

// SetupRoutes configures all API routes. db is nil when running on the
// in-memory store.
func SetupRoutes(app *fiber.App, store storage.Store, chatService *services.ChatService, historyService *services.HistoryService, version string, db *gorm.DB) {
	chatHandler := handlers.NewChatHandler(chatService)
	historyHandler := handlers.NewHistoryHandler(historyService, store)
	statsHandler := handlers.NewStatsHandler(store)
	healthHandler := handlers.NewHealthHandler(version, db)

	// Root endpoint
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"name":        "AI-Powered Chatbot API",
			"version":     version,
			"description": "REST API for customer support chatbot",
			"endpoints": fiber.Map{
				"health":       "/health",
				"chat":         "POST /chat",
				"history":      "GET /history",
				"conversation": "GET /conversations/:id",
				"stats":        "GET /stats",
			},
		})
	})

	app.Get("/health", healthHandler.Check)
	app.Post("/chat", chatHandler.Chat)
	app.Get("/history", historyHandler.GetHistory)
	app.Get("/conversations/:id", historyHandler.GetConversation)
	app.Get("/stats", statsHandler.GetStats)
}
