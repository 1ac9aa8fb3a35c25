package internal

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, LogLevelError, ParseLogLevel("error"))
	assert.Equal(t, LogLevelWarn, ParseLogLevel("WARNING"))
	assert.Equal(t, LogLevelTrace, ParseLogLevel(" trace "))
	assert.Equal(t, LogLevelInfo, ParseLogLevel(""))
	assert.Equal(t, LogLevelInfo, ParseLogLevel("verbose"))
}

func TestLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerTo(LogLevelWarn, &buf)

	logger.Error("e %d", 1)
	logger.Warn("w")
	logger.Info("i")
	logger.Debug("d")

	out := buf.String()
	assert.Contains(t, out, "[ERROR] e 1")
	assert.Contains(t, out, "[WARN] w")
	assert.NotContains(t, out, "[INFO]")
	assert.NotContains(t, out, "[DEBUG]")
}
