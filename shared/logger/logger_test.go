package logger_test

import (
	"bytes"
	"errors"
	"testing"

	"hotel/config"
	"hotel/shared/logger"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func restore(t *testing.T) {
	t.Helper()

	originalLogger := log.Logger
	originalLevel := zerolog.GlobalLevel()
	originalFormat := zerolog.TimeFieldFormat

	t.Cleanup(func() {
		log.Logger = originalLogger
		zerolog.SetGlobalLevel(originalLevel)
		zerolog.TimeFieldFormat = originalFormat
	})
}

func TestInitLoggerTo(t *testing.T) {
	restore(t)

	var buf bytes.Buffer
	logger.InitLoggerTo(&buf)

	assert.Equal(t, zerolog.TimeFormatUnix, zerolog.TimeFieldFormat)
	assert.Equal(t, zerolog.TraceLevel, zerolog.GlobalLevel())
	assert.Contains(t, buf.String(), "Zerolog initialized.")
}

func TestErrorWithStack(t *testing.T) {
	restore(t)

	var buf bytes.Buffer
	log.Logger = log.Output(&buf)

	logger.ErrorWithStack(errors.New("booking insert failed"))

	assert.Contains(t, buf.String(), "booking insert failed")
	assert.Contains(t, logger.Stack(errors.New("x")), "logger_test.TestErrorWithStack")
}

func TestSetLogLevel(t *testing.T) {
	tests := []struct {
		logLevel string
		expected zerolog.Level
	}{
		{logLevel: "debug", expected: zerolog.DebugLevel},
		{logLevel: "info", expected: zerolog.InfoLevel},
		{logLevel: "error", expected: zerolog.ErrorLevel},
		{logLevel: "disabled", expected: zerolog.Disabled},
		{logLevel: "bogus", expected: zerolog.TraceLevel},
		{logLevel: "", expected: zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.logLevel, func(t *testing.T) {
			restore(t)

			log.Logger = log.Output(&bytes.Buffer{})

			cfg := &config.Config{}
			cfg.Server.LogLevel = tt.logLevel

			logger.SetLogLevel(cfg)

			assert.Equal(t, tt.expected, zerolog.GlobalLevel())
		})
	}
}
