package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/biblemap/biblemap-api/internal/config"
	"github.com/biblemap/biblemap-api/internal/services"
)

// MetaHandler handles the health check and the API index
type MetaHandler struct {
	DB      *gorm.DB
	Cfg     *config.Config
	Started time.Time
}

// Health handles GET /health
// @Summary Service health
// @Description Liveness status with database connectivity and uptime
// @Tags Meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health [get]
func (h *MetaHandler) Health(c *fiber.Ctx) error {
	result := services.HealthCheck(h.Cfg, h.DB)

	status := fiber.StatusOK
	if result.Status != "healthy" {
		status = fiber.StatusServiceUnavailable
	}

	return c.Status(status).JSON(fiber.Map{
		"status":      result.Status,
		"database":    result.Database,
		"environment": h.Cfg.Env,
		"uptime":      time.Since(h.Started).Seconds(),
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
	})
}

// APIIndex handles GET /api
// @Summary API index
// @Description Lists the top-level resource endpoints
// @Tags Meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *MetaHandler) APIIndex(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"name":    "biblemap-api",
		"version": "1.0.0",
		"endpoints": fiber.Map{
			"locations": "/api/locations",
			"persons":   "/api/persons",
			"events":    "/api/events",
			"journeys":  "/api/journeys",
			"themes":    "/api/themes",
			"search":    "/api/search",
			"health":    "/health",
			"metrics":   "/metrics",
			"docs":      "/swagger/index.html",
		},
	})
}
