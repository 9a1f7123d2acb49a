package main

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// setupLogging configures the global logger based on CLI flags. The returned
// func closes the log file, if one was opened.
func setupLogging(cli *CLI) (zerolog.Logger, func()) {
	logLevel := zerolog.InfoLevel
	if cli.Debug {
		logLevel = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(logLevel)
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs // Use milliseconds for timestamp

	var console io.Writer = os.Stderr
	if !cli.LogJSON {
		// Pretty console logging
		output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
		output.NoColor = !cli.Color
		console = output
	}

	writers := []io.Writer{console}
	closeLog := func() {}
	if cli.LogFile != "" {
		rotating := &lumberjack.Logger{
			Filename:   cli.LogFile,
			MaxSize:    1, // Max size in MB before rotation
			MaxBackups: 3,
			Compress:   true,
		}
		writers = append(writers, rotating)
		closeLog = func() { _ = rotating.Close() }
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).With().Timestamp().Logger()

	// Set the global logger instance used by log.Debug(), log.Info(), etc.
	log.Logger = logger

	return logger, closeLog
}
