package rename

import (
	"strconv"
	"strings"
)

// NumberingStyle selects how the sequence index is written into a name.
type NumberingStyle string

const (
	StyleNone       NumberingStyle = "none"
	StylePad        NumberingStyle = "pad"
	StylePadDot     NumberingStyle = "pad-dot"
	StyleParen      NumberingStyle = "paren"
	StyleDash       NumberingStyle = "dash"
	StyleUnderscore NumberingStyle = "underscore"
)

// Styles lists every recognised style.
var Styles = []NumberingStyle{StyleNone, StylePad, StylePadDot, StyleParen, StyleDash, StyleUnderscore}

const (
	DefaultDigits = 3
	MaxDigits     = 10
)

// ParseStyle maps user input onto a style. Unknown and empty values become StylePad.
func ParseStyle(s string) NumberingStyle {
	style := NumberingStyle(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Styles {
		if style == known {
			return style
		}
	}
	return StylePad
}

// ParseDigits turns a digit-count field into a usable padding width.
func ParseDigits(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return DefaultDigits
	}
	return normalizeDigits(n)
}

func normalizeDigits(n int) int {
	if n < 1 {
		return DefaultDigits
	}
	return min(n, MaxDigits)
}

// pad left-pads the decimal index with zeros; longer numbers are never truncated.
func pad(index, digits int) string {
	s := strconv.Itoa(index)
	if len(s) >= digits {
		return s
	}
	return strings.Repeat("0", digits-len(s)) + s
}

// Build composes the name for the file at position index (1-based). ext is
// either empty or starts with a dot.
func Build(prefix, ext string, style NumberingStyle, digits, index int) string {
	n := strconv.Itoa(index)
	padded := pad(index, normalizeDigits(digits))

	switch style {
	case StyleNone:
		return prefix + ext
	case StylePad:
		return prefix + "_" + padded + ext
	case StylePadDot:
		// An empty ext leaves a bare trailing dot.
		return prefix + "_" + padded + "." + strings.TrimPrefix(ext, ".")
	case StyleParen:
		return prefix + "_(" + n + ")" + ext
	case StyleDash:
		return prefix + "-" + n + ext
	case StyleUnderscore:
		return prefix + "_" + n + ext
	default:
		return prefix + "_" + padded + ext
	}
}
