package ui

// ---- Display Mode ----

// DisplayMode selects the visual theme. It never changes page content.
type DisplayMode int

const (
	Light DisplayMode = iota
	Dark
)

// ParseDisplayMode maps "dark" to Dark and anything else to Light.
func ParseDisplayMode(s string) DisplayMode {
	if s == "dark" {
		return Dark
	}
	return Light
}

// ValidDisplayMode reports whether s names a display mode.
func ValidDisplayMode(s string) bool {
	return s == "light" || s == "dark"
}

func (m DisplayMode) String() string {
	if m == Dark {
		return "dark"
	}
	return "light"
}

func (m DisplayMode) Toggle() DisplayMode {
	if m == Dark {
		return Light
	}
	return Dark
}

type styles struct {
	page    string
	nav     string
	grid    string
	header  string
	intro   string
	toggle  string
	card    string
	badge   string
	heading string
	body    string
	link    string
	footer  string
}

var styleTable = [...]styles{
	Light: {
		page:    "min-h-screen bg-gray-50 text-gray-900",
		nav:     "border-gray-200 text-gray-900",
		grid:    "border-gray-200",
		header:  "text-gray-900",
		intro:   "text-gray-600",
		toggle:  "bg-gray-900 text-white hover:bg-gray-700",
		card:    "bg-white border border-gray-200 shadow-sm",
		badge:   "bg-blue-50 text-blue-600",
		heading: "text-gray-900",
		body:    "text-gray-700",
		link:    "bg-blue-500 text-white hover:bg-blue-600",
		footer:  "text-gray-500 border-gray-200",
	},
	Dark: {
		page:    "min-h-screen bg-gray-900 text-gray-100",
		nav:     "border-gray-700 text-gray-100",
		grid:    "border-gray-800",
		header:  "text-white",
		intro:   "text-gray-400",
		toggle:  "bg-gray-100 text-gray-900 hover:bg-gray-300",
		card:    "bg-gray-800 border border-gray-700",
		badge:   "bg-gray-700 text-blue-300",
		heading: "text-white",
		body:    "text-gray-300",
		link:    "bg-blue-600 text-white hover:bg-blue-500",
		footer:  "text-gray-400 border-gray-700",
	},
}

func stylesFor(m DisplayMode) styles {
	if m < Light || m > Dark {
		m = Light
	}
	return styleTable[m]
}
