package main

import (
	"os"
	"path/filepath"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/prashant-ahirwar/Renameit/rename"
)

func TestSecureFilename(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"simple", "filename.txt", "filename.txt"},
		{"with spaces", "My cool movie.mov", "My_cool_movie.mov"},
		{"path traversal", "../../etc/passwd", "etc_passwd"},
		{"windows separators", `C:\Users\me\notes.txt`, "C_Users_me_notes.txt"},
		{"accents folded", "i contain cool ümläuts.txt", "i_contain_cool_umlauts.txt"},
		{"invalid chars", `fi<l>e:n"a|m?e*#.txt`, "filename.txt"},
		{"leading/trailing dots and underscores", "._hidden_.", "hidden"},
		{"only non-ascii", "世界", ""},
		{"whitespace runs", "a \t b", "a_b"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := secureFilename(tc.input)
			assert.Equal(t, actual, tc.expected)
		})
	}
}

func TestCollectEntries(t *testing.T) {
	tmpDir := t.TempDir()
	first := filepath.Join(tmpDir, "b.txt")
	second := filepath.Join(tmpDir, "A.JPG")
	assert.NilError(t, os.WriteFile(first, []byte("hello"), 0o644))
	assert.NilError(t, os.WriteFile(second, make([]byte, 2048), 0o644))

	t.Run("keeps order", func(t *testing.T) {
		entries, err := collectEntries([]string{first, second})
		assert.NilError(t, err)
		assert.DeepEqual(t, entries, []rename.FileEntry{
			{Name: "b.txt", Size: 5},
			{Name: "A.JPG", Size: 2048},
		})
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := collectEntries([]string{filepath.Join(tmpDir, "nope")})
		assert.ErrorContains(t, err, "failed to stat")
	})

	t.Run("directory", func(t *testing.T) {
		_, err := collectEntries([]string{tmpDir})
		assert.ErrorContains(t, err, "is a directory")
	})
}
