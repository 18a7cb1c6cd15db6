package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/journal-app/site/legal"
	"github.com/journal-app/site/ui"
)

// render_terms writes the Terms of Service page as a standalone HTML file.
func main() {
	var (
		mode   = flag.String("mode", "light", "Display mode: light or dark")
		output = flag.String("output", "", "Output file (default: stdout)")
	)
	flag.Parse()

	if err := run(*mode, *output); err != nil {
		log.Fatalf("render_terms: %v", err)
	}
}

func run(mode, output string) error {
	if !ui.ValidDisplayMode(mode) {
		return fmt.Errorf("unknown display mode %q", mode)
	}

	var w io.Writer = os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("error creating %s: %w", output, err)
		}
		defer f.Close()
		w = f
	}

	return write(w, ui.ParseDisplayMode(mode))
}

func write(w io.Writer, mode ui.DisplayMode) error {
	doc, err := legal.Load()
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	if err := ui.TermsOfServicePage(doc, mode, "/terms").Render(bw); err != nil {
		return fmt.Errorf("error rendering terms: %w", err)
	}
	return bw.Flush()
}
