package ui

import (
	"fmt"
	"strconv"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/journal-app/site/legal"
)

const backgroundGridCells = 48

// scrollResetScript scrolls to the top once per document load. A theme
// swap replaces the page shell but never reloads this script.
const scrollResetScript = `(function () {
  if (window.__legalScrollReset) { return; }
  window.__legalScrollReset = true;
  var reset = function () {
    try { window.scrollTo(0, 0); } catch (e) {}
  };
  if (document.readyState === "loading") {
    document.addEventListener("DOMContentLoaded", reset, { once: true });
  } else {
    reset();
  }
})();`

// TermsOfServicePage renders the full document. Loading it is the mount:
// the scroll reset is attached here and nowhere else.
func TermsOfServicePage(doc *legal.Document, mode DisplayMode, path string) g.Node {
	return Page(
		doc.Title(),
		mode,
		path,
		[]g.Node{termsMain(doc, mode)},
		scrollToTopOnMount(),
	)
}

// TermsOfServiceContent renders the page shell (navigation and terms) without
// the document around it. It is what htmx swaps in when the display mode
// changes.
func TermsOfServiceContent(doc *legal.Document, mode DisplayMode, path string) g.Node {
	return pageShell(mode, path, termsMain(doc, mode))
}

func termsMain(doc *legal.Document, mode DisplayMode) g.Node {
	s := stylesFor(mode)
	return Main(
		Class("relative overflow-hidden"),
		backgroundGrid(s),
		contentContainer(
			termsHeader(doc, mode, s),
			legalBody(doc, s),
		),
	)
}

func scrollToTopOnMount() g.Node {
	return Script(Type("text/javascript"), g.Raw(scrollResetScript))
}

func termsHeader(doc *legal.Document, mode DisplayMode, s styles) g.Node {
	next := mode.Toggle()
	return Header(
		Class("mb-10 flex items-start justify-between gap-4 "+s.header),
		Div(
			pageHeader(doc.Title()),
			g.If(doc.Intro() != "", P(Class("text-lg "+s.intro), g.Text(doc.Intro()))),
		),
		displayModeToggle(next, s),
	)
}

// displayModeToggle posts a plain form; htmx upgrades it to a shell swap.
func displayModeToggle(next DisplayMode, s styles) g.Node {
	action := "/display-mode/" + next.String()
	return Form(
		Method("post"),
		Action(action),
		hx.Post(action),
		hx.Target("#"+ShellID),
		hx.Swap("outerHTML"),
		Button(
			Type("submit"),
			Class("px-3 py-2 rounded text-sm font-medium cursor-pointer "+s.toggle),
			Aria("label", fmt.Sprintf("Switch to %s mode", next)),
			g.Textf("%s mode", displayModeLabel(next)),
		),
	)
}

func displayModeLabel(m DisplayMode) string {
	if m == Dark {
		return "Dark"
	}
	return "Light"
}

// legalBody holds everything derived from the document. It must render the
// same text for every display mode.
func legalBody(doc *legal.Document, s styles) g.Node {
	return g.Group{
		sectionList(doc.Sections(), s),
		contactBlock(doc, s),
		lastUpdatedFooter(doc.LastUpdated(), s),
	}
}

func sectionList(sections []legal.Section, s styles) g.Node {
	return Div(
		Class("space-y-6"),
		g.Map(sections, func(sec legal.Section) g.Node {
			return sectionBlock(sec, s)
		}),
	)
}

func sectionBlock(sec legal.Section, s styles) g.Node {
	return Article(card(s.card,
		ID("section-"+strconv.Itoa(sec.Order)),
		Data("order", strconv.Itoa(sec.Order)),
		Div(
			Class("flex items-start gap-4"),
			Span(
				Class("rounded-full p-2 "+s.badge),
				sectionIcon(sec.Icon),
			),
			Div(
				H2(Class("text-xl font-semibold mb-2 "+s.heading), g.Text(sec.Heading())),
				P(Class("leading-relaxed "+s.body), g.Text(sec.Content)),
			),
		),
	)...)
}

func contactBlock(doc *legal.Document, s styles) g.Node {
	return Section(card(s.card+" mt-6",
		ID("contact"),
		Data("order", strconv.Itoa(doc.ContactOrdinal())),
		Div(
			Class("flex items-start gap-4"),
			Span(
				Class("rounded-full p-2 "+s.badge),
				sectionIcon("mail"),
			),
			Div(
				H2(Class("text-xl font-semibold mb-2 "+s.heading), g.Text(doc.ContactHeading())),
				g.If(doc.Contact().Body != "", P(Class("leading-relaxed mb-4 "+s.body), g.Text(doc.Contact().Body))),
				styledLink(legal.ContactEmail, legal.MailtoHref(), s.link),
			),
		),
	)...)
}

func lastUpdatedFooter(date string, s styles) g.Node {
	return Footer(
		Class("mt-10 pt-6 border-t text-sm text-center "+s.footer),
		P(g.Textf("Last updated: %s", date)),
	)
}

func backgroundGrid(s styles) g.Node {
	cells := make([]g.Node, backgroundGridCells)
	for i := range cells {
		cells[i] = Div(Class("border " + s.grid))
	}
	return Div(
		Aria("hidden", "true"),
		Class("pointer-events-none absolute inset-0 grid grid-cols-8 opacity-40"),
		g.Group(cells),
	)
}
