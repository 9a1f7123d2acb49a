package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"gotest.tools/v3/assert"

	"github.com/prashant-ahirwar/Renameit/rename"
)

func TestRenderPreview(t *testing.T) {
	pairs := []rename.Pair{
		{Original: "My Photo.JPG", Generated: "trip__001.jpg", Size: 2048},
		{Original: "notes.txt", Generated: "trip__002.txt", Size: 10},
	}
	cleanup := rename.NewCleanupSet(rename.CleanupSpaces, rename.CleanupLowercase)

	t.Run("Plain", func(t *testing.T) {
		var out bytes.Buffer
		assert.NilError(t, renderPreview(&out, pairs, cleanup, plainPalette))
		expected := `2 files selected.
  My Photo.JPG  2.0 KB
  notes.txt  10 B

My Photo.JPG → trip__001.jpg
notes.txt → trip__002.txt
cleanup: spaces,lowercase
`
		assert.Equal(t, out.String(), expected)
	})

	t.Run("No files", func(t *testing.T) {
		var out bytes.Buffer
		assert.NilError(t, renderPreview(&out, nil, cleanup, plainPalette))
		assert.Equal(t, out.String(), "No files selected.\n")
	})

	t.Run("Colored", func(t *testing.T) {
		var out bytes.Buffer
		assert.NilError(t, renderPreview(&out, pairs[:1], rename.CleanupSet{}, darkPalette))
		assert.Assert(t, strings.Contains(out.String(), darkPalette.generated+"trip__001.jpg"+darkPalette.reset))
		assert.Assert(t, strings.HasSuffix(out.String(), "cleanup:"+darkPalette.reset+" \n"))
	})
}

func TestAppPalette(t *testing.T) {
	prefsPath := filepath.Join(t.TempDir(), "prefs.json")
	a := &app{
		cli:        &CLI{PrefsFile: prefsPath},
		logger:     zerolog.Nop(),
		systemDark: func() bool { return true },
	}

	assert.Equal(t, a.palette(), plainPalette) // No color without a terminal

	a.color = true
	assert.Equal(t, a.palette(), darkPalette)

	assert.NilError(t, fileThemeStore{path: prefsPath}.Set(false))
	assert.Equal(t, a.palette(), lightPalette)
}

func TestPreviewCmd(t *testing.T) {
	tmpDir := t.TempDir()
	photo := filepath.Join(tmpDir, "My Photo.JPG")
	notes := filepath.Join(tmpDir, "notes.txt")
	assert.NilError(t, os.WriteFile(photo, make([]byte, 1536), 0o644))
	assert.NilError(t, os.WriteFile(notes, []byte("hi"), 0o644))

	var out bytes.Buffer
	a := &app{
		cli:        &CLI{ConfigFile: filepath.Join(tmpDir, "nonexistent.json"), PrefsFile: filepath.Join(tmpDir, "prefs.json")},
		logger:     zerolog.Nop(),
		out:        &out,
		systemDark: func() bool { return false },
	}
	cmd := &PreviewCmd{
		Naming: NamingFlags{Prefix: "Trip ", Style: "pad", Digits: "3", Cleanup: "spaces,lowercase"},
		Files:  []string{photo, notes},
	}
	assert.NilError(t, cmd.Run(a))

	expected := `2 files selected.
  My Photo.JPG  1.5 KB
  notes.txt  2 B

My Photo.JPG → trip__001.jpg
notes.txt → trip__002.txt
cleanup: spaces,lowercase
`
	assert.Equal(t, out.String(), expected)
}
