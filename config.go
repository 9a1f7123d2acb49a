package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/prashant-ahirwar/Renameit/rename"
)

// SettingsFile holds naming defaults. Field names follow the form fields of the
// web version so an exported form can be reused as-is.
type SettingsFile struct {
	Prefix         string `json:"prefix,omitempty"`
	NumberingStyle string `json:"numbering_style,omitempty"`
	Digits         int    `json:"digits,omitempty"`
	Cleanup        string `json:"cleanup,omitempty"` // Comma-separated, e.g. "spaces,lowercase"
}

// CredentialsFile defines the structure for the Matrix credentials JSON file.
//
// Coincidentally this is same format Matrix-Commander uses
type CredentialsFile struct {
	Server   string `json:"homeserver,omitempty"`
	User     string `json:"user_id,omitempty"`
	Token    string `json:"access_token,omitempty"`
	DeviceID string `json:"device_id,omitempty"`
}

// loadJSONFile reads and decodes a JSON file. It returns nil if the path is
// empty or the file doesn't exist; what names the file in logs and errors.
func loadJSONFile[T any](path, what string, logger zerolog.Logger) (*T, error) {
	if path == "" {
		return nil, nil // No file specified
	}

	logger.Debug().Str("path", path).Msgf("Loading %s file", what)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Warn().Str("path", path).Msgf("No %s file found, relying on CLI flags or defaults", what)
			return nil, nil // File not found is not a fatal error here
		}
		logger.Error().Str("path", path).Err(err).Msgf("Failed to read %s file", what)
		return nil, fmt.Errorf("failed to read %s file %s: %w", what, path, err)
	}

	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		logger.Error().Str("path", path).Err(err).Msgf("Failed to parse %s file JSON", what)
		return nil, fmt.Errorf("failed to parse %s file %s: %w", what, path, err)
	}
	return &out, nil
}

// mergeSettings fills naming flags the user left empty from the settings file.
func mergeSettings(flags *NamingFlags, settings *SettingsFile) {
	if settings == nil {
		return
	}
	if flags.Prefix == "" {
		flags.Prefix = settings.Prefix
	}
	if flags.Style == "" {
		flags.Style = settings.NumberingStyle
	}
	if flags.Digits == "" && settings.Digits != 0 {
		flags.Digits = strconv.Itoa(settings.Digits)
	}
	if flags.Cleanup == "" {
		flags.Cleanup = settings.Cleanup
	}
}

// namingConfig turns the merged flags into a naming configuration. Bad values
// never fail: they fall back to defaults with a warning.
func namingConfig(flags NamingFlags, logger zerolog.Logger) rename.NamingConfig {
	cleanup, unknown := rename.SplitCleanup(flags.Cleanup)
	if len(unknown) > 0 {
		logger.Warn().Strs("options", unknown).Msg("Ignoring unknown cleanup options")
	}

	style := rename.ParseStyle(flags.Style)
	if requested := strings.ToLower(strings.TrimSpace(flags.Style)); requested != "" && requested != string(style) {
		logger.Warn().Str("style", flags.Style).Msg("Unknown numbering style, using pad")
	}

	digits := rename.ParseDigits(flags.Digits)
	if raw := strings.TrimSpace(flags.Digits); raw != "" {
		if requested, err := strconv.Atoi(raw); err != nil || requested != digits {
			logger.Warn().Str("digits", flags.Digits).Int("using", digits).Msg("Digit count out of range")
		}
	}

	return rename.NamingConfig{
		Prefix:  flags.Prefix,
		Style:   style,
		Digits:  digits,
		Cleanup: cleanup,
	}
}

// loadNamingConfig loads the settings file (if present), merges it under the
// flags and resolves the naming configuration.
func loadNamingConfig(cli *CLI, flags *NamingFlags, logger zerolog.Logger) (rename.NamingConfig, error) {
	settings, err := loadJSONFile[SettingsFile](cli.ConfigFile, "settings", logger)
	if err != nil {
		return rename.NamingConfig{}, err
	}
	mergeSettings(flags, settings)
	return namingConfig(*flags, logger), nil
}

// mergeAndValidateCredentials merges credentials from the file (if provided) into
// the notify flags, giving precedence to values already set from flags. It then
// validates that required credentials (Server, User, Token) are present.
func mergeAndValidateCredentials(n *NotifyFlags, credsFromFile *CredentialsFile) error {
	// Merge credentials from file if they exist and corresponding flags were not set
	if credsFromFile != nil {
		if n.Server == "" {
			n.Server = credsFromFile.Server
		}
		if n.User == "" {
			n.User = credsFromFile.User
		}
		if n.Token == "" {
			n.Token = credsFromFile.Token
		}
		if n.DeviceID == "" {
			n.DeviceID = credsFromFile.DeviceID
		}
	}

	// Validate required credentials after potential merge
	var missing []string
	if n.Server == "" {
		missing = append(missing, "Server (--server or matrix config file)")
	}
	if n.User == "" {
		missing = append(missing, "User (--user or matrix config file)")
	}
	if n.Token == "" {
		missing = append(missing, "Token (--token or matrix config file)")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required credentials: %s", strings.Join(missing, ", "))
	}

	return nil
}

// loadAndValidateCredentials loads the Matrix credentials file (if specified),
// merges it with flags, and validates the result. Without --matrix-room there is
// nothing to do.
func loadAndValidateCredentials(n *NotifyFlags, logger zerolog.Logger) error {
	if n.Room == "" {
		return nil
	}

	credsFromFile, err := loadJSONFile[CredentialsFile](n.CredentialsFile, "matrix credentials", logger)
	if err != nil {
		return err
	}

	return mergeAndValidateCredentials(n, credsFromFile)
}
