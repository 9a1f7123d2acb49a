package main

import (
	"context"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/prashant-ahirwar/Renameit/rename"
)

// NamingFlags are the naming options shared by preview and pack. Empty values
// are filled from the settings file, then from built-in defaults.
type NamingFlags struct {
	Prefix  string `kong:"name='prefix',help='Base label for every generated name (default: file).',group='Naming'"`
	Style   string `kong:"name='style',help='Numbering style: none, pad, pad-dot, paren, dash, underscore (default: pad).',group='Naming'"`
	Digits  string `kong:"name='digits',help='Zero-padding width for the pad styles, 1-10 (default: 3).',group='Naming'"`
	Cleanup string `kong:"name='cleanup',help='Comma-separated prefix cleanup rules: spaces, symbols, lowercase.',group='Naming'"`
}

// NotifyFlags configure the optional Matrix batch summary.
// Credentials can be provided via flags or a config file. Flags take precedence.
type NotifyFlags struct {
	Room            string `kong:"name='matrix-room',help='Post a summary of the batch to this Matrix room (ID or alias).',group='Matrix'"`
	Server          string `kong:"name='server',help='Matrix homeserver URL.',group='Matrix'"`
	User            string `kong:"name='user',help='Matrix User ID.',group='Matrix'"`
	Token           string `kong:"name='token',help='Access Token.',group='Matrix'"`
	DeviceID        string `kong:"name='device',help='Device ID (optional).',group='Matrix'"`
	CredentialsFile string `kong:"name='matrix-config',type='path',default='~/.config/matrix-commander/credentials.json',help='Path to a JSON file containing Matrix credentials (homeserver, user_id, access_token, device_id).',group='Matrix'"`
}

// CLI holds the command-line arguments
type CLI struct {
	ConfigFile string `kong:"name='config',type='path',default='~/.config/renameit/settings.json',help='Path to a JSON file with naming defaults (prefix, numbering_style, digits, cleanup).'"`
	PrefsFile  string `kong:"name='prefs',type='path',default='~/.config/renameit/prefs.json',help='Where the theme preference is kept.'"`

	Debug   bool   `kong:"name='debug',help='Enable debug logging.'"`
	LogJSON bool   `kong:"name='log-json',help='Output logs in JSON format.'"`
	Color   bool   `kong:"name='log-color',help='Color logs.'"`
	LogFile string `kong:"name='log-file',type='path',help='Also write logs to this file (rotated).'"`

	Preview PreviewCmd `kong:"cmd,default='withargs',help='Show the names the files would get.'"`
	Pack    PackCmd    `kong:"cmd,help='Write renamed copies of the files into a zip archive.'"`
	Theme   ThemeCmd   `kong:"cmd,help='Show or change the dark mode preference.'"`
}

// app is what every command runs against.
type app struct {
	ctx        context.Context
	cli        *CLI
	logger     zerolog.Logger
	out        io.Writer
	color      bool
	systemDark func() bool
}

func (a *app) themeStore() ThemeStore {
	return fileThemeStore{path: a.cli.PrefsFile}
}

func (a *app) palette() palette {
	if !a.color {
		return plainPalette
	}
	if resolveDarkMode(a.themeStore(), a.systemDark, a.logger) {
		return darkPalette
	}
	return lightPalette
}

// PreviewCmd prints each file next to its generated name.
type PreviewCmd struct {
	Naming NamingFlags `embed:""`
	Notify NotifyFlags `embed:""`

	Files []string `kong:"arg,optional,name='file',type='existingfile',help='Files to rename, in numbering order.'"`
}

func (c *PreviewCmd) Run(a *app) error {
	cfg, err := loadNamingConfig(a.cli, &c.Naming, a.logger)
	if err != nil {
		return err
	}
	if err := loadAndValidateCredentials(&c.Notify, a.logger); err != nil {
		return err
	}

	entries, err := collectEntries(c.Files)
	if err != nil {
		a.logger.Error().Err(err).Msg("Failed to read file selection")
		return err
	}

	batchID := uuid.NewString()
	batchLog := a.logger.With().Str("batch", batchID).Logger()
	batchLog.Debug().Int("files", len(entries)).Str("style", string(cfg.Style)).Int("digits", cfg.Digits).Str("cleanup", cfg.Cleanup.String()).Msg("Building preview")

	pairs := rename.Preview(cfg, entries)
	if err := renderPreview(a.out, pairs, cfg.Cleanup, a.palette()); err != nil {
		return err
	}

	if c.Notify.Room == "" || len(pairs) == 0 {
		return nil
	}
	return notifyBatch(a.ctx, &c.Notify, batchSummary(batchID, cfg, pairs), batchLog)
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("renameit"),
		kong.Description("Preview and package new names for a batch of files."),
		kong.UsageOnError(),
	)

	logger, closeLog := setupLogging(&cli)
	defer closeLog()

	a := &app{
		ctx:        context.Background(),
		cli:        &cli,
		logger:     logger,
		out:        colorable.NewColorableStdout(),
		color:      os.Getenv("NO_COLOR") == "" && (isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())),
		systemDark: systemPrefersDark,
	}

	if err := kctx.Run(a); err != nil {
		// Helpers log the specifics; this marks the run as failed
		log.Error().Err(err).Str("command", kctx.Command()).Msg("renameit finished with errors")
		closeLog()
		kctx.Exit(1)
	}
}
