package config

import (
	"hexmac/pkg/resolver"

	"github.com/xyproto/env/v2"
)

const (
	EnvMaxDepth = "HEXMAC_MAX_DEPTH" // maximum nested definitions during expansion
	EnvVerbose  = "HEXMAC_VERBOSE"   // enable debug logging
	EnvNoColor  = "NO_COLOR"         // disable colored diagnostics
)

// Config holds the defaults taken from the environment. Command-line flags override them.
type Config struct {
	MaxDepth int
	Verbose  bool
	NoColor  bool
}

// Load reads the configuration from the environment
func Load() Config {
	cfg := Config{
		MaxDepth: env.Int(EnvMaxDepth, resolver.DefaultMaxDepth),
		Verbose:  env.Bool(EnvVerbose),
		NoColor:  env.Bool(EnvNoColor),
	}

	if cfg.MaxDepth < 0 {
		cfg.MaxDepth = resolver.DefaultMaxDepth
	}

	return cfg
}
