package main

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/prashant-ahirwar/Renameit/rename"
)

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// secureFilename reduces name to a flat ASCII file name: accents are folded,
// path separators and whitespace become underscores, anything else unusual is
// dropped. The result may be empty.
func secureFilename(name string) string {
	var b strings.Builder
	for _, r := range norm.NFKD.String(name) {
		if r < utf8.RuneSelf {
			b.WriteRune(r)
		}
	}
	flat := strings.NewReplacer("/", " ", `\`, " ").Replace(b.String())
	flat = strings.Join(strings.Fields(flat), "_")
	return strings.Trim(unsafeFilenameChars.ReplaceAllString(flat, ""), "._")
}

// collectEntries stats every path, keeping the given order.
func collectEntries(paths []string) ([]rename.FileEntry, error) {
	entries := make([]rename.FileEntry, 0, len(paths))
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", p, err)
		}
		if info.IsDir() {
			return nil, fmt.Errorf("%s is a directory", p)
		}
		entries = append(entries, rename.FileEntry{Name: filepath.Base(p), Size: info.Size()})
	}
	return entries, nil
}
