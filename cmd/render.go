package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"
)

// printMarkdown renders a markdown report to stdout. On a terminal it is
// styled with glamour; when piped, the raw markdown passes through so
// reports stay greppable and diffable.
func printMarkdown(markdown string) {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Print(markdown)
		return
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(0),
	)
	if err != nil {
		fmt.Print(markdown)
		return
	}
	out, err := r.Render(markdown)
	if err != nil {
		fmt.Print(markdown)
		return
	}
	fmt.Print(out)
}
