package handlers

import (
	"encoding/xml"

	"github.com/gofiber/fiber/v2"

	"github.com/journal-app/site/config"
)

type SitemapURL struct {
	Loc        string `xml:"loc"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

type Sitemap struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

func HandleSitemap(c *fiber.Ctx) error {
	sitemap := Sitemap{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs: []SitemapURL{
			{
				Loc:        config.BaseURL + "/terms",
				ChangeFreq: "yearly",
				Priority:   "0.3",
			},
		},
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
	return c.XML(sitemap)
}
