package rename

import (
	"fmt"
	"math"
)

var sizeUnits = []string{"B", "KB", "MB", "GB"}

// FormatBytes returns a human-readable size in binary units (B, KB, MB, GB).
// Values of 10 or more, and plain bytes, are shown without decimals.
func FormatBytes(bytes int64) string {
	if bytes <= 0 {
		return "0 B"
	}
	value := float64(bytes)
	i := 0
	for value >= 1024 && i < len(sizeUnits)-1 {
		value /= 1024
		i++
	}
	if value >= 10 || i == 0 {
		return fmt.Sprintf("%.0f %s", math.Floor(value+0.5), sizeUnits[i])
	}
	// Half-up like the browser, not fmt's round-half-even.
	return fmt.Sprintf("%.1f %s", math.Floor(value*10+0.5)/10, sizeUnits[i])
}

// CountLabel describes how many files are in the batch.
func CountLabel(n int) string {
	switch n {
	case 0:
		return "No files selected."
	case 1:
		return "1 file selected."
	default:
		return fmt.Sprintf("%d files selected.", n)
	}
}
