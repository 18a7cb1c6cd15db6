package ui

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"github.com/journal-app/site/config"
)

// ---- Page Layout ----

// ShellID is the element replaced when the display mode changes. It holds
// everything the mode styles, navigation included.
const ShellID = "page-shell"

// Page renders a full document. scripts are placed after the shell so a
// shell swap never re-runs them.
func Page(title string, mode DisplayMode, currentPath string, content []g.Node, scripts ...g.Node) g.Node {
	return components.HTML5(components.HTML5Props{
		Title:    title,
		Language: "en",
		Head: []g.Node{
			Link(Rel("icon"), Type("image/png"), Href("/images/favicon-32x32.png"), g.Attr("sizes", "32x32")),
			Link(
				Rel("stylesheet"),
				Href(config.TailwindCSSURL),
			),
			Script(
				Type("text/javascript"),
				Src(config.HTMXURL),
				Defer(),
			),
		},
		Body: []g.Node{
			pageShell(mode, currentPath, content...),
			g.Group(scripts),
		},
	})
}

func pageShell(mode DisplayMode, currentPath string, content ...g.Node) g.Node {
	return Div(
		ID(ShellID),
		Class(stylesFor(mode).page),
		Data("display-mode", mode.String()),
		navigation(mode, currentPath),
		g.Group(content),
	)
}

func navigation(mode DisplayMode, currentPath string) g.Node {
	return Nav(
		Class("border-b px-4 py-4 flex items-center justify-between "+stylesFor(mode).nav),
		A(Href("/"), Class("text-xl font-bold"), g.Text("Journal")),
		A(
			Href("/terms"),
			Class("text-sm hover:underline"),
			g.If(currentPath == "/terms", Aria("current", "page")),
			g.Text("Terms"),
		),
	)
}

func pageHeader(text string) g.Node {
	return H1(Class("text-4xl font-bold mb-4"), g.Text(text))
}
