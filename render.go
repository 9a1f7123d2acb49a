package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/prashant-ahirwar/Renameit/rename"
)

// palette holds the ANSI sequences used when printing a preview.
type palette struct {
	name      string
	arrow     string
	generated string
	meta      string
	reset     string
}

var (
	darkPalette = palette{
		name:      "\033[97m",
		arrow:     "\033[1;96m",
		generated: "\033[1;92m",
		meta:      "\033[37m",
		reset:     "\033[0m",
	}
	lightPalette = palette{
		name:      "\033[30m",
		arrow:     "\033[1;34m",
		generated: "\033[1;32m",
		meta:      "\033[90m",
		reset:     "\033[0m",
	}
	plainPalette = palette{}
)

func (p palette) paint(color, s string) string {
	if color == "" {
		return s
	}
	return color + s + p.reset
}

// renderPreview writes the file list followed by "original → generated" lines
// and the cleanup field the names were built with.
func renderPreview(w io.Writer, pairs []rename.Pair, cleanup rename.CleanupSet, p palette) error {
	var b strings.Builder

	fmt.Fprintln(&b, rename.CountLabel(len(pairs)))
	if len(pairs) == 0 {
		_, err := io.WriteString(w, b.String())
		return err
	}

	for _, pair := range pairs {
		fmt.Fprintf(&b, "  %s  %s\n", p.paint(p.name, pair.Original), p.paint(p.meta, rename.FormatBytes(pair.Size)))
	}
	b.WriteString("\n")
	for _, pair := range pairs {
		fmt.Fprintf(&b, "%s %s %s\n", p.paint(p.name, pair.Original), p.paint(p.arrow, "→"), p.paint(p.generated, pair.Generated))
	}
	fmt.Fprintf(&b, "%s %s\n", p.paint(p.meta, "cleanup:"), cleanup.String())

	_, err := io.WriteString(w, b.String())
	return err
}
