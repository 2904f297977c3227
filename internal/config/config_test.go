package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-playground/assert/v2"

	"github.com/yourusername/hdrchain/internal/pow"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_Empty(t *testing.T) {
	config, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	assert.Equal(t, *config, *Default())
}

func TestLoad_OverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
[node]
grpc_addr = "127.0.0.1:6000"
difficulty_bits = 12
lookup_external_ip = true

[log]
log_level = "debug"
`)

	config, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	assert.Equal(t, config.Node.GRPCAddr, "127.0.0.1:6000")
	assert.Equal(t, config.Node.DifficultyBits, uint32(12))
	assert.Equal(t, config.Node.LookupExternalIP, true)
	assert.Equal(t, config.Log.Level, "debug")

	// Untouched keys keep defaults.
	assert.Equal(t, config.Node.DBPath, "./data/headers")
	assert.Equal(t, config.Node.IPLookupHost, "checkip.dyndns.org")
	assert.Equal(t, config.Log.File, "headerd.log")
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected error for missing file")
	}

	if _, err := Load(writeConfig(t, "[node\n")); err == nil {
		t.Error("expected error for malformed toml")
	}

	_, err := Load(writeConfig(t, "[node]\ndifficulty_bits = 300\n"))
	if !errors.Is(err, pow.ErrInvalidDifficulty) {
		t.Errorf("err = %v, want ErrInvalidDifficulty", err)
	}
}
