package ui

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ---- Icon Components ----

const iconDir = "/images/icons/"

func iconSrc(name string) string {
	return iconDir + name + ".svg"
}

// icon creates a decorative icon image. Screen readers skip it.
func icon(name string, classes ...string) g.Node {
	class := "w-6 h-6 inline align-middle"
	for _, c := range classes {
		class += " " + c
	}

	return Img(
		Src(iconSrc(name)),
		Alt(""),
		Aria("hidden", "true"),
		Class(class),
	)
}

func sectionIcon(name string) g.Node {
	return icon(name, "shrink-0")
}
