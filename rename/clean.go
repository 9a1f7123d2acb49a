// Package rename computes new file names for a batch of files: prefix cleanup,
// numbering styles, extension handling and the ordered preview pass.
package rename

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultPrefix is used whenever the configured prefix is empty.
const DefaultPrefix = "file"

// CleanupOption is a single text cleanup rule.
type CleanupOption string

const (
	CleanupSpaces    CleanupOption = "spaces"
	CleanupSymbols   CleanupOption = "symbols"
	CleanupLowercase CleanupOption = "lowercase"
)

// CleanupSet is the set of enabled cleanup options. The insertion order is kept
// so String() reproduces the list the user gave; it does not affect Clean.
type CleanupSet struct {
	order []CleanupOption
}

// NewCleanupSet builds a set from opts, dropping unknown values and duplicates.
func NewCleanupSet(opts ...CleanupOption) CleanupSet {
	var s CleanupSet
	for _, o := range opts {
		s = s.With(o)
	}
	return s
}

// With returns a copy of s with o enabled.
func (s CleanupSet) With(o CleanupOption) CleanupSet {
	if !o.valid() || s.Has(o) {
		return s
	}
	order := make([]CleanupOption, len(s.order), len(s.order)+1)
	copy(order, s.order)
	return CleanupSet{order: append(order, o)}
}

// Has reports whether o is enabled.
func (s CleanupSet) Has(o CleanupOption) bool {
	for _, x := range s.order {
		if x == o {
			return true
		}
	}
	return false
}

// Options returns the enabled options in insertion order.
func (s CleanupSet) Options() []CleanupOption {
	out := make([]CleanupOption, len(s.order))
	copy(out, s.order)
	return out
}

// Len returns the number of enabled options.
func (s CleanupSet) Len() int { return len(s.order) }

// String returns the comma-joined option names, e.g. "spaces,lowercase".
func (s CleanupSet) String() string {
	names := make([]string, len(s.order))
	for i, o := range s.order {
		names[i] = string(o)
	}
	return strings.Join(names, ",")
}

func (o CleanupOption) valid() bool {
	switch o {
	case CleanupSpaces, CleanupSymbols, CleanupLowercase:
		return true
	}
	return false
}

// SplitCleanup parses a comma-separated option list. Items are trimmed and
// lower-cased; empty items are skipped and unrecognised ones returned separately.
func SplitCleanup(s string) (CleanupSet, []string) {
	var (
		set     CleanupSet
		unknown []string
	)
	for _, item := range strings.Split(s, ",") {
		item = strings.ToLower(strings.TrimSpace(item))
		if item == "" {
			continue
		}
		o := CleanupOption(item)
		if !o.valid() {
			unknown = append(unknown, item)
			continue
		}
		set = set.With(o)
	}
	return set, unknown
}

// ParseCleanup is SplitCleanup without the unknown items.
func ParseCleanup(s string) CleanupSet {
	set, _ := SplitCleanup(s)
	return set
}

var (
	// Unicode whitespace, matching what a browser treats as \s.
	whitespaceRun = regexp.MustCompile(`[\s\v\pZ\x{feff}]+`)
	notSafeChar   = regexp.MustCompile(`[^a-zA-Z0-9_-]`)
	lowerCaser    = cases.Lower(language.Und)
)

// Clean applies the enabled options to text. The rules always run in the same
// order: spaces, then symbols, then lowercase.
func Clean(text string, opts CleanupSet) string {
	result := text

	if opts.Has(CleanupSpaces) {
		result = whitespaceRun.ReplaceAllString(result, "_")
	}

	if opts.Has(CleanupSymbols) {
		result = notSafeChar.ReplaceAllString(result, "")
	}

	if opts.Has(CleanupLowercase) {
		result = lowerCaser.String(result)
	}

	return result
}
