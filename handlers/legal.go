package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	g "maragu.dev/gomponents"

	"github.com/journal-app/site/legal"
	"github.com/journal-app/site/local"
	"github.com/journal-app/site/ui"
)

// HandleTermsOfService displays the Terms of Service page. htmx requests
// get the page shell only.
func HandleTermsOfService(c *fiber.Ctx) error {
	return renderTerms(c, local.GetDisplayMode(c))
}

// HandleSwitchDisplayMode stores the display mode and re-renders the page
// shell for htmx, or redirects back to the page for a plain form post.
func HandleSwitchDisplayMode(c *fiber.Ctx) error {
	modeStr := c.Params("mode")
	if !ui.ValidDisplayMode(modeStr) {
		return fiber.NewError(fiber.StatusBadRequest, "Unknown display mode: "+modeStr)
	}

	mode := ui.ParseDisplayMode(modeStr)
	saveCookieDisplayMode(c, mode)

	if !isHTMX(c) {
		return c.Redirect("/terms", fiber.StatusSeeOther)
	}
	return renderTerms(c, mode)
}

func renderTerms(c *fiber.Ctx, mode ui.DisplayMode) error {
	doc, err := legal.Load()
	if err != nil {
		log.Errorf("Failed to load terms: %v", err)
		return fiber.ErrInternalServerError
	}

	c.Vary("HX-Request", fiber.HeaderCookie)

	if isHTMX(c) {
		return renderCached(c, "terms:"+mode.String()+":fragment", func() g.Node {
			return ui.TermsOfServiceContent(doc, mode, "/terms")
		})
	}
	return renderCached(c, "terms:"+mode.String()+":page", func() g.Node {
		return ui.TermsOfServicePage(doc, mode, "/terms")
	})
}
