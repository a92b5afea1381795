package config

import (
	_ "embed"
)

//go:embed defaults/textris.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Width:  10,
			Height: 20,
		},
		Display: DisplayConfig{
			Empty:       "-",
			Filled:      "0",
			ActiveColor: "14",
			LockedColor: "245",
		},
		Gravity: GravityConfig{
			IntervalMS: 0,
		},
		Log: LogConfig{
			Level: "warn",
		},
		Server: ServerConfig{
			Address:            ":23235",
			IdleTimeoutMinutes: 30,
		},
	}
}
