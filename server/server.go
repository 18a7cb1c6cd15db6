package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/journal-app/site/config"
	"github.com/journal-app/site/handlers"
)

// New builds the application with its middleware and routes.
func New() *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.CustomErrorHandler,
		ReadTimeout:  config.ServerReadTimeout,
		WriteTimeout: config.ServerWriteTimeout,
	})

	app.Use(recover.New())
	app.Use(handlers.GlobalRateLimiter())
	app.Use(logger.New())
	app.Use(compress.New())
	app.Use(handlers.DisplayModeMiddleware)

	// Static files and utility
	app.Static("/", "./static")
	app.Get("/.well-known/appspecific/com.chrome.devtools.json", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/terms", fiber.StatusFound)
	})

	// Legal pages
	app.Get("/terms", handlers.HandleTermsOfService)
	app.Post("/display-mode/:mode", handlers.HandleSwitchDisplayMode)

	// Sitemap
	app.Get("/sitemap.xml", handlers.HandleSitemap)

	// Health check
	app.Get("/health", handlers.HandleHealth)

	// Anything else is a 404 page
	app.Use(func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Page not found: "+c.Path())
	})

	return app
}

// Start listens on the configured port until the server fails.
func Start() error {
	app := New()
	log.Infof("Starting server on port %s...", config.ServerPort)
	return app.Listen(":" + config.ServerPort)
}
