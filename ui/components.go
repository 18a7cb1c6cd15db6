package ui

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ---- Layout Components ----

func contentContainer(content ...g.Node) g.Node {
	return Div(
		Class("relative max-w-3xl mx-auto px-4 py-12"),
		g.Group(content),
	)
}

func card(class string, children ...g.Node) []g.Node {
	return append([]g.Node{Class("rounded-lg p-6 " + class)}, children...)
}

func styledLink(text, href, class string, attrs ...g.Node) g.Node {
	allAttrs := append([]g.Node{Href(href), Class("px-4 py-2 rounded inline-block " + class)}, attrs...)
	return A(append(allAttrs, g.Text(text))...)
}

// ---- Error Page ----

func ErrorPage(code int, message string) g.Node {
	return Page(
		fmt.Sprintf("Error %d", code),
		Light,
		"", // no current path
		[]g.Node{
			contentContainer(
				pageHeader(fmt.Sprintf("Error %d", code)),
				P(Class("mb-6"), g.Text(message)),
				styledLink("Back to Terms of Service", "/terms", stylesFor(Light).link),
			),
		},
	)
}
