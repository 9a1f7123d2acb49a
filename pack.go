package main

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/prashant-ahirwar/Renameit/rename"
)

const (
	defaultZipName  = "renamed_files.zip"
	defaultMaxBytes = 10 * 1024 * 1024 // 10MB upload limit of the web version
)

// PackCmd writes renamed copies of the files into a zip archive. The source
// files are left untouched.
type PackCmd struct {
	Naming NamingFlags `embed:""`
	Notify NotifyFlags `embed:""`

	Out      string `kong:"name='out',short='o',type='path',default='renamed_files.zip',help='Archive to write.'"`
	MaxBytes int64  `kong:"name='max-bytes',default='10485760',help='Refuse batches whose files add up to more than this many bytes (0 disables the limit).'"`

	Files []string `kong:"arg,name='file',type='existingfile',help='Files to rename, in numbering order.'"`
}

func (c *PackCmd) Run(a *app) error {
	cfg, err := loadNamingConfig(a.cli, &c.Naming, a.logger)
	if err != nil {
		return err
	}
	if err := loadAndValidateCredentials(&c.Notify, a.logger); err != nil {
		return err
	}

	batchID := uuid.NewString()
	batchLog := a.logger.With().Str("batch", batchID).Str("archive", c.Out).Logger()

	pairs, err := packFiles(c.Out, c.Files, cfg, c.MaxBytes, batchLog)
	if err != nil {
		return err
	}
	if err := renderPreview(a.out, pairs, cfg.Cleanup, a.palette()); err != nil {
		return err
	}
	batchLog.Info().Int("files", len(pairs)).Msg("Archive written")

	if c.Notify.Room == "" || len(pairs) == 0 {
		return nil
	}
	return notifyBatch(a.ctx, &c.Notify, batchSummary(batchID, cfg, pairs), batchLog)
}

// packSource is an input file with its sanitised name.
type packSource struct {
	path string
	rename.FileEntry
}

// packPrefix sanitises and cleans the prefix the way the archive names need it;
// an empty result falls back to the default prefix.
func packPrefix(cfg rename.NamingConfig) string {
	raw := cfg.Prefix
	if raw == "" {
		raw = rename.DefaultPrefix
	}
	prefix := rename.Clean(secureFilename(raw), cfg.Cleanup)
	if prefix == "" {
		return rename.DefaultPrefix
	}
	return prefix
}

// collectPackSources stats the inputs, drops the ones whose name sanitises to
// nothing and enforces maxBytes over the remaining total.
func collectPackSources(paths []string, maxBytes int64, logger zerolog.Logger) ([]packSource, error) {
	var (
		sources []packSource
		total   int64
	)
	for _, p := range paths {
		name := secureFilename(filepath.Base(p))
		if name == "" {
			logger.Warn().Str("path", p).Msg("File name has no usable characters, skipping")
			continue
		}
		info, err := os.Stat(p)
		if err != nil {
			logger.Error().Str("path", p).Err(err).Msg("Failed to stat input file")
			return nil, fmt.Errorf("failed to stat %s: %w", p, err)
		}
		total += info.Size()
		if maxBytes > 0 && total > maxBytes {
			return nil, fmt.Errorf("batch exceeds %s limit (%s so far)", rename.FormatBytes(maxBytes), rename.FormatBytes(total))
		}
		sources = append(sources, packSource{path: p, FileEntry: rename.FileEntry{Name: name, Size: info.Size()}})
	}
	return sources, nil
}

// packFiles writes one deflated entry per source into out, named by the
// preview pass.
func packFiles(out string, paths []string, cfg rename.NamingConfig, maxBytes int64, logger zerolog.Logger) ([]rename.Pair, error) {
	sources, err := collectPackSources(paths, maxBytes, logger)
	if err != nil {
		return nil, err
	}

	entries := make([]rename.FileEntry, len(sources))
	for i, s := range sources {
		entries[i] = s.FileEntry
	}
	// The prefix is already cleaned, so no cleanup options are passed on.
	pairs := rename.Preview(rename.NamingConfig{
		Prefix: packPrefix(cfg),
		Style:  packStyle(cfg.Style),
		Digits: cfg.Digits,
	}, entries)

	if err := writeArchive(out, sources, pairs, logger); err != nil {
		return nil, err
	}
	return pairs, nil
}

// packStyle maps pad-dot to pad: archive entries keep their extension
// unchanged, so an extensionless file never ends in a bare dot.
func packStyle(style rename.NumberingStyle) rename.NumberingStyle {
	if style == rename.StylePadDot {
		return rename.StylePad
	}
	return style
}

// writeArchive creates out and fills it. Once out has been created, any
// failure removes it again; a path that could not be created is left alone.
func writeArchive(out string, sources []packSource, pairs []rename.Pair, logger zerolog.Logger) (err error) {
	if dir := filepath.Dir(out); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create archive directory %s: %w", dir, err)
		}
	}
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("failed to create archive %s: %w", out, err)
	}
	defer func() {
		_ = f.Close()
		if err == nil {
			return
		}
		if rmErr := os.Remove(out); rmErr != nil && !os.IsNotExist(rmErr) {
			logger.Warn().Err(rmErr).Msg("Failed to remove partial archive")
		}
	}()

	zw := zip.NewWriter(f)
	for i, src := range sources {
		if err := addToArchive(zw, src.path, pairs[i].Generated); err != nil {
			logger.Error().Str("path", src.path).Err(err).Msg("Failed to add file to archive")
			return err
		}
		logger.Debug().Str("from", src.path).Str("to", pairs[i].Generated).Msg("Added file")
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to finish archive %s: %w", out, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close archive %s: %w", out, err)
	}
	return nil
}

func addToArchive(zw *zip.Writer, path, name string) error {
	in, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}
	header := &zip.FileHeader{
		Name:     name,
		Method:   zip.Deflate,
		Modified: info.ModTime(),
	}
	w, err := zw.CreateHeader(header)
	if err != nil {
		return fmt.Errorf("failed to add %s to archive: %w", name, err)
	}
	if _, err := io.Copy(w, in); err != nil {
		return fmt.Errorf("failed to copy %s into archive: %w", path, err)
	}
	return nil
}
