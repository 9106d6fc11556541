package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
		wantErr  bool
	}{
		{"debug", LevelDebug, false},
		{"DEBUG", LevelDebug, false},
		{"info", LevelInfo, false},
		{" Info ", LevelInfo, false},
		{"warn", LevelWarn, false},
		{"warning", LevelWarn, false},
		{"error", LevelError, false},
		{"ERROR", LevelError, false},
		{"invalid", LevelInfo, true},
		{"", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.expected, got)
		})
	}
}

func TestLevelString(t *testing.T) {
	require.Equal(t, "DEBUG", LevelDebug.String())
	require.Equal(t, "INFO", LevelInfo.String())
	require.Equal(t, "WARN", LevelWarn.String())
	require.Equal(t, "ERROR", LevelError.String())
	require.Equal(t, "UNKNOWN", Level(42).String())
}

func TestLogger_SetLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New()
	l.SetOutput(&buf)
	l.SetLevel(LevelWarn)

	l.Debug("debug message")
	l.Info("info message")
	require.NotContains(t, buf.String(), "debug message")
	require.NotContains(t, buf.String(), "info message")

	l.Warn("warn message")
	l.Error("error message")
	require.Contains(t, buf.String(), "warn message")
	require.Contains(t, buf.String(), "error message")
}

func TestLogger_LogFormat(t *testing.T) {
	var buf bytes.Buffer
	l := New()
	l.SetOutput(&buf)
	l.SetLevel(LevelDebug)

	l.Info("test message with %s", "formatting")

	out := buf.String()
	require.Contains(t, out, "INFO")
	require.Contains(t, out, "atelier")
	require.Contains(t, out, "test message with formatting")
}

func TestLogger_EnvVarLogLevel(t *testing.T) {
	t.Setenv("ATELIER_LOG_LEVEL", "debug")
	t.Setenv("ATELIER_LOG_FILE", "")

	l := New()
	require.Equal(t, LevelDebug, l.Level())
}

func TestLogger_EnvVarLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "atelier.log")
	t.Setenv("ATELIER_LOG_FILE", path)

	l := New()
	l.Info("test message")
	require.NoError(t, l.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(content), "test message")
}

func TestLogger_Configure(t *testing.T) {
	t.Setenv("ATELIER_LOG_FILE", "")
	path := filepath.Join(t.TempDir(), "configured.log")

	l := New()
	require.NoError(t, l.Configure("debug", path))
	require.Equal(t, LevelDebug, l.Level())

	l.Debug("from %s", "configure")
	require.NoError(t, l.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(content), "from configure")

	require.Error(t, l.Configure("loud", ""))
	require.Equal(t, LevelDebug, l.Level(), "bad level leaves setting alone")

	require.Error(t, l.Configure("", filepath.Join(t.TempDir(), "missing", "dir", "x.log")))
}

func TestLogger_CloseWithoutFile(t *testing.T) {
	t.Setenv("ATELIER_LOG_FILE", "")
	l := New()
	require.NoError(t, l.Close())
	require.NoError(t, l.Close())
}

func TestPackageLevelFunctions(t *testing.T) {
	var buf bytes.Buffer
	Default.SetOutput(&buf)
	Default.SetLevel(LevelDebug)

	Debug("debug %s", "test")
	Info("info %s", "test")
	Warn("warn %s", "test")
	Error("error %s", "test")

	out := buf.String()
	require.Contains(t, out, "debug test")
	require.Contains(t, out, "info test")
	require.Contains(t, out, "warn test")
	require.Contains(t, out, "error test")
}
