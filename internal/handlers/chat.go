package handlers

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/GMohankrishna2005/AI-Powered-Chatbot/internal/services"
)

// Messages above this length are rejected before reaching the engine. The
// matcher assumes bounded input; this bound lives here at the transport.
const maxMessageLength = 5000

// ChatHandler handles chat requests
type ChatHandler struct {
	chatService *services.ChatService
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatService *services.ChatService) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
	}
}

// Chat answers one user message. A session id is generated when the caller
// doesn't supply one and echoed back so follow-up messages can reuse it.
func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	var req struct {
		Message   string `json:"message"`
		SessionID string `json:"session_id"`
	}

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Message field is required and cannot be empty",
		})
	}
	if len(message) > maxMessageLength {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Message exceeds maximum length of %d characters", maxMessageLength),
		})
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	reply, err := h.chatService.Respond(message, sessionID)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(reply)
}
