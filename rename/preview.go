package rename

import (
	"strings"
)

// NamingConfig is everything a preview pass needs besides the files.
type NamingConfig struct {
	Prefix  string
	Style   NumberingStyle
	Digits  int
	Cleanup CleanupSet
}

// FileEntry is one selected file. Its position in the batch decides its number.
type FileEntry struct {
	Name string
	Size int64
}

// Pair is an original name and the name generated for it.
type Pair struct {
	Original  string
	Generated string
	Size      int64
}

// Extension returns the lower-cased suffix of name starting at its last dot,
// or "" when name has no dot. A leading-dot name like ".gitignore" is all extension.
func Extension(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i == -1 {
		return ""
	}
	return strings.ToLower(name[i:])
}

// CleanPrefix applies the default and then the cleanup rules to cfg.Prefix.
func (cfg NamingConfig) CleanPrefix() string {
	raw := cfg.Prefix
	if raw == "" {
		raw = DefaultPrefix
	}
	return Clean(raw, cfg.Cleanup)
}

// Preview computes the generated name of every file, numbering them from 1 in
// the order given. It keeps no state between calls.
func Preview(cfg NamingConfig, files []FileEntry) []Pair {
	prefix := cfg.CleanPrefix()

	pairs := make([]Pair, 0, len(files))
	for i, f := range files {
		pairs = append(pairs, Pair{
			Original:  f.Name,
			Generated: Build(prefix, Extension(f.Name), cfg.Style, cfg.Digits, i+1),
			Size:      f.Size,
		})
	}
	return pairs
}
