package local

import (
	"github.com/gofiber/fiber/v2"

	"github.com/journal-app/site/ui"
)

const displayModeKey = "displayMode"

// GetDisplayMode returns the mode resolved for this request, Light if none.
func GetDisplayMode(c *fiber.Ctx) ui.DisplayMode {
	mode, _ := c.Locals(displayModeKey).(ui.DisplayMode)
	return mode
}

func SetDisplayMode(c *fiber.Ctx, mode ui.DisplayMode) {
	c.Locals(displayModeKey, mode)
}
