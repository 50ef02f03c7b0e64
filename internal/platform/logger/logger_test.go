package logger

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"syllacard/internal/config"
)

func TestSetupCreatesDailyFile(t *testing.T) {
	dir := t.TempDir()

	log, err := Setup(config.LogConfig{Dir: dir, Level: "debug"})
	require.NoError(t, err)
	require.NotNil(t, log)

	log.Info("hello", "k", "v")

	name := "info_" + time.Now().Format("20060102") + ".log"
	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), `"msg":"hello"`),
		"log line should be JSON encoded, got: %s", data)
}

func TestSetupRejectsInvalidLevel(t *testing.T) {
	_, err := Setup(config.LogConfig{Dir: t.TempDir(), Level: "verbose"})
	require.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"Error", slog.LevelError},
	}

	for _, tt := range tests {
		got, err := parseLevel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
