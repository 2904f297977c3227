package log

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestGetLevelEnabler(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"info":    zapcore.InfoLevel,
		"warn":    zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"panic":   zapcore.PanicLevel,
		"fatal":   zapcore.FatalLevel,
		"":        zapcore.InfoLevel,
		"verbose": zapcore.InfoLevel,
	}

	for name, want := range tests {
		assert.Equal(t, getLevelEnabler(name), want)
	}
}

func TestInit_File(t *testing.T) {
	dir := t.TempDir()
	logger := Init(&Config{Path: dir, File: "test.log", Level: "debug"})
	defer zap.ReplaceGlobals(zap.NewNop())

	zap.S().Infow("appended header", "index", 7)
	logger.Sync()

	data, err := os.ReadFile(filepath.Join(dir, "test.log"))
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	line := string(data)
	if !strings.Contains(line, "INFO") || !strings.Contains(line, "appended header") {
		t.Errorf("unexpected log line: %q", line)
	}
}
