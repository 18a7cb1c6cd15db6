package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/journal-app/site/config"
	"github.com/journal-app/site/local"
	"github.com/journal-app/site/ui"
)

// DisplayModeMiddleware resolves the display mode cookie once per request.
func DisplayModeMiddleware(c *fiber.Ctx) error {
	local.SetDisplayMode(c, getCookieDisplayMode(c))
	return c.Next()
}

func getCookieDisplayMode(c *fiber.Ctx) ui.DisplayMode {
	return ui.ParseDisplayMode(c.Cookies(config.DisplayModeCookie, "light")) // default to light
}

func saveCookieDisplayMode(c *fiber.Ctx, mode ui.DisplayMode) {
	c.Cookie(&fiber.Cookie{
		Name:     config.DisplayModeCookie,
		Value:    mode.String(),
		MaxAge:   config.DisplayModeCookieMaxAge,
		HTTPOnly: false,
		Path:     "/",
		SameSite: "Lax",
	})
	local.SetDisplayMode(c, mode)
}
