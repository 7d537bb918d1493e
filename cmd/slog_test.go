package main

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"", slog.LevelInfo, false},
		{"debug", slog.LevelDebug, false},
		{"WARN", slog.LevelWarn, false},
		{"loud", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewLogHandler_JSONAboveDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(newLogHandler(&buf, slog.LevelInfo, "/clubhub/"))

	logger.Debug("hidden")
	logger.Info("request handled", "status", 200)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "request handled", entry["msg"])
	assert.EqualValues(t, 200, entry["status"])
}

func TestNewLogHandler_TintAtDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(newLogHandler(&buf, slog.LevelDebug, "/clubhub/"))

	logger.Debug("=== MIDDLEWARE: resolving ===")

	assert.Contains(t, buf.String(), "=== MIDDLEWARE: resolving ===")
	assert.NotContains(t, buf.String(), `"msg"`)
}

func TestCleanSourcePath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/home/dev/clubhub/internal/auth/middleware.go", "internal/auth/middleware.go"},
		{"/root/go/src/github.com/x/y.go", "github.com/x/y.go"},
		{"/opt/src/pkg/z.go", "pkg/z.go"},
		{"relative.go", "relative.go"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, cleanSourcePath(tt.path, "/clubhub/"))
	}
}
