package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/config.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Game: GameConfig{
			SpawnFourProbability: 0.5,
			WinTile:              2048,
			FPS:                  60,
		},
		Animation: AnimationConfig{
			Enabled: true,
			SlideMS: 100,
			PopMS:   120,
			Easing:  "out-quad",
		},
		Theme: ThemeConfig{
			Hue:        200,
			Saturation: 50,
		},
		Log: LogConfig{
			Level: "info",
		},
		Server: ServerConfig{
			Address:     ":23234",
			IdleTimeout: 30 * time.Minute,
		},
	}
}
