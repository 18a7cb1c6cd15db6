package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/journal-app/site/cache"
	"github.com/journal-app/site/config"
)

// pageCacheMaxCost bounds the rendered page cache (4MB)
const pageCacheMaxCost = 4 << 20

var pageCache *cache.Cache[[]byte]

// InitPageCache creates the rendered page cache. Until it is called pages
// render on every request.
func InitPageCache() error {
	c, err := cache.NewBytes("Rendered Pages", pageCacheMaxCost, config.PageCacheTTL)
	if err != nil {
		return fmt.Errorf("error creating page cache: %w", err)
	}
	pageCache = c
	return nil
}

// ClearPageCache drops every rendered page.
func ClearPageCache() {
	if pageCache != nil {
		pageCache.Clear()
	}
}

// isHTMX reports whether the request came from an htmx swap.
func isHTMX(c *fiber.Ctx) bool {
	return c.Get("HX-Request") != ""
}
