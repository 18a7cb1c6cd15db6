package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/journal-app/site/ui"
)

// CustomErrorHandler renders application errors as an HTML page
func CustomErrorHandler(ctx *fiber.Ctx, err error) error {
	// Status code defaults to 500
	code := fiber.StatusInternalServerError

	// Retrieve the custom status code if it's a *fiber.Error
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	message := err.Error()
	if code >= fiber.StatusInternalServerError {
		log.Errorf("%s %s: %v", ctx.Method(), ctx.Path(), err)
		message = "Something went wrong. Please try again later."
	}

	ctx.Status(code)
	return render(ctx, ui.ErrorPage(code, message))
}
