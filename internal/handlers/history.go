package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/GMohankrishna2005/AI-Powered-Chatbot/internal/services"
	"github.com/GMohankrishna2005/AI-Powered-Chatbot/internal/storage"
)

// HistoryHandler handles conversation history requests
type HistoryHandler struct {
	historyService *services.HistoryService
	store          storage.Store
}

// NewHistoryHandler creates a new history handler
func NewHistoryHandler(historyService *services.HistoryService, store storage.Store) *HistoryHandler {
	return &HistoryHandler{
		historyService: historyService,
		store:          store,
	}
}

// GetHistory returns a newest-first page of the conversation log
func (h *HistoryHandler) GetHistory(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 10)
	sessionID := c.Query("session_id")

	convs, total, err := h.historyService.History(limit, sessionID)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"conversations": convs,
		"total":         total,
		"returned":      len(convs),
		"timestamp":     time.Now().UTC(),
	})
}

// GetConversation returns a single logged exchange by id
func (h *HistoryHandler) GetConversation(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Conversation id must be a positive integer",
		})
	}

	conv, err := h.store.GetConversation(uint(id))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(conv)
}
