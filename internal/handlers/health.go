package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// HealthHandler handles health check requests
type HealthHandler struct {
	Version string
	db      *gorm.DB
}

// NewHealthHandler creates a new health handler. db is nil when the service
// runs on the in-memory store.
func NewHealthHandler(version string, db *gorm.DB) *HealthHandler {
	return &HealthHandler{
		Version: version,
		db:      db,
	}
}

// Check returns the health status of the service and its database
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	status := "healthy"
	statusCode := fiber.StatusOK
	dbStatus := "in-memory"

	if h.db != nil {
		dbStatus = "connected"
		sqlDB, err := h.db.DB()
		if err != nil || sqlDB.Ping() != nil {
			status = "unhealthy"
			statusCode = fiber.StatusServiceUnavailable
			dbStatus = "unreachable"
		}
	}

	return c.Status(statusCode).JSON(fiber.Map{
		"status":    status,
		"service":   "AI-Powered Chatbot API",
		"version":   h.Version,
		"database":  dbStatus,
		"timestamp": time.Now().UTC(),
	})
}
