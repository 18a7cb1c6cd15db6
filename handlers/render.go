package handlers

import (
	"bytes"

	"github.com/gofiber/fiber/v2"
	g "maragu.dev/gomponents"
)

// render sets the content type to HTML and renders the component.
func render(c *fiber.Ctx, component g.Node) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return component.Render(c.Response().BodyWriter())
}

// renderCached serves the bytes stored under key, rendering and storing
// them on a miss. build is only called on a miss.
func renderCached(c *fiber.Ctx, key string, build func() g.Node) error {
	if pageCache == nil {
		return render(c, build())
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	if page, ok := pageCache.Get(key); ok {
		return c.Send(page)
	}

	var buf bytes.Buffer
	if err := build().Render(&buf); err != nil {
		return err
	}
	page := buf.Bytes()
	pageCache.Set(key, page, 0)
	return c.Send(page)
}
