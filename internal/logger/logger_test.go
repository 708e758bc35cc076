package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLogs(t *testing.T, level string) *bytes.Buffer {
	t.Helper()
	prev := Log
	t.Cleanup(func() { Log = prev })

	var buf bytes.Buffer
	Log = NewLogger(level, &buf)
	return &buf
}

func TestWithFieldsWritesTopLevelKeys(t *testing.T) {
	t.Setenv("SERVICE_NAME", "birthday-twins-test")
	buf := captureLogs(t, "info")

	InfoWithFields("birthdays fetched", Fields{"date": "07-04", "count": 5})

	line := strings.TrimSpace(buf.String())
	require.NotEmpty(t, line)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &entry), line)
	assert.Equal(t, "birthdays fetched", entry["message"])
	assert.Equal(t, "07-04", entry["date"])
	assert.Equal(t, "birthday-twins-test", entry["service_name"])
	assert.Contains(t, strings.ToLower(entry["level"].(string)), "info")
}

func TestLevelFiltersDebug(t *testing.T) {
	buf := captureLogs(t, "info")

	DebugWithFields("stage skipped", Fields{"provider": "wikipedia"})
	assert.Empty(t, buf.String())

	WarnWithFields("cache write failed", nil)
	assert.Contains(t, buf.String(), "cache write failed")
}

func TestInitToPrefersEnvLevel(t *testing.T) {
	prev := Log
	t.Cleanup(func() { Log = prev })
	t.Setenv("LOG_LEVEL", "debug")

	var buf bytes.Buffer
	InitTo(&buf, "error")
	DebugWithFields("visible", nil)
	assert.Contains(t, buf.String(), "visible")
}
