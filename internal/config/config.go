package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/yourusername/hdrchain/internal/log"
	"github.com/yourusername/hdrchain/internal/netutil"
	"github.com/yourusername/hdrchain/internal/pow"
)

type NodeConfig struct {
	GRPCAddr         string `toml:"grpc_addr"`
	DBPath           string `toml:"db_path"`
	DifficultyBits   uint32 `toml:"difficulty_bits"`
	LookupExternalIP bool   `toml:"lookup_external_ip"`
	IPLookupHost     string `toml:"ip_lookup_host"`
}

type Config struct {
	Node NodeConfig `toml:"node"`
	Log  log.Config `toml:"log"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Node: NodeConfig{
			GRPCAddr:       ":50051",
			DBPath:         "./data/headers",
			DifficultyBits: pow.DefaultTargetBits,
			IPLookupHost:   netutil.DefaultLookupHost,
		},
		Log: log.Config{
			File:  "headerd.log",
			Level: "info",
		},
	}
}

// Load reads a TOML file over the defaults. Keys absent from the file keep
// their default values.
func Load(path string) (*Config, error) {
	config := Default()
	if path == "" {
		return config, nil
	}

	if _, err := toml.DecodeFile(path, config); err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	if config.Node.DifficultyBits > pow.MaxTargetBits {
		return nil, fmt.Errorf("%w: difficulty_bits = %d", pow.ErrInvalidDifficulty, config.Node.DifficultyBits)
	}
	return config, nil
}
