package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/GMohankrishna2005/AI-Powered-Chatbot/internal/storage"
)

// StatsHandler reports conversation totals
type StatsHandler struct {
	store storage.Store
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(store storage.Store) *StatsHandler {
	return &StatsHandler{store: store}
}

// GetStats returns the total logged conversations with a per-match-type
// breakdown
func (h *StatsHandler) GetStats(c *fiber.Ctx) error {
	total, err := h.store.CountConversations()
	if err != nil {
		return errorResponse(c, err)
	}

	byType, err := h.store.CountByMatchType()
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"total_conversations": total,
		"by_match_type":       byType,
		"status":              "operational",
		"timestamp":           time.Now().UTC(),
	})
}
