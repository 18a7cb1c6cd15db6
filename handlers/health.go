package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/journal-app/site/legal"
)

// HandleHealth returns the health status of the application
func HandleHealth(c *fiber.Ctx) error {
	health := fiber.Map{
		"status": "ok",
	}

	// Check the legal content decodes
	if doc, err := legal.Load(); err != nil {
		health["status"] = "unhealthy"
		health["content"] = "down"
		c.Status(fiber.StatusServiceUnavailable)
	} else {
		health["content"] = "up"
		health["sections"] = doc.Len()
	}

	if pageCache != nil {
		health["page_cache"] = pageCache.Stats()
	}

	return c.JSON(health)
}
