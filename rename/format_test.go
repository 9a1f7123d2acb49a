package rename

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestFormatBytes(t *testing.T) {
	testCases := []struct {
		name     string
		bytes    int64
		expected string
	}{
		{"zero", 0, "0 B"},
		{"negative", -5, "0 B"},
		{"small bytes", 512, "512 B"},
		{"just under 1 KB", 1023, "1023 B"},
		{"exactly 1 KB", 1024, "1.0 KB"},
		{"1.5 KB", 1536, "1.5 KB"},
		{"rounds half up", 10752, "11 KB"},
		{"1 MB", 1024 * 1024, "1.0 MB"},
		{"700 MB", 734003200, "700 MB"},
		{"4.7 GB", 5046586572, "4.7 GB"},
		{"caps at GB", 5 * 1024 * 1024 * 1024 * 1024, "5120 GB"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, FormatBytes(tc.bytes), tc.expected)
		})
	}
}

func TestCountLabel(t *testing.T) {
	assert.Equal(t, CountLabel(0), "No files selected.")
	assert.Equal(t, CountLabel(1), "1 file selected.")
	assert.Equal(t, CountLabel(7), "7 files selected.")
}
