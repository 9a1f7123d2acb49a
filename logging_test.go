package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gotest.tools/v3/assert"
)

func TestSetupLogging(t *testing.T) {
	previous, previousLevel := log.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = previous
		zerolog.SetGlobalLevel(previousLevel)
	})

	t.Run("Log file", func(t *testing.T) {
		logPath := filepath.Join(t.TempDir(), "logs", "renameit.log")
		logger, closeLog := setupLogging(&CLI{LogJSON: true, LogFile: logPath})
		logger.Info().Str("batch", "1234").Msg("Archive written")
		closeLog()

		data, err := os.ReadFile(logPath)
		assert.NilError(t, err)
		assert.Assert(t, strings.Contains(string(data), `"batch":"1234"`))
		assert.Assert(t, strings.Contains(string(data), `"message":"Archive written"`))
	})

	t.Run("Debug level", func(t *testing.T) {
		_, closeLog := setupLogging(&CLI{Debug: true})
		defer closeLog()
		assert.Equal(t, zerolog.GlobalLevel(), zerolog.DebugLevel)
	})

	t.Run("Info level without a file", func(t *testing.T) {
		_, closeLog := setupLogging(&CLI{})
		defer closeLog()
		assert.Equal(t, zerolog.GlobalLevel(), zerolog.InfoLevel)
	})
}
