// Package config provides YAML-based configuration loading for the game,
// the terminal front end and the SSH server.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config is the root configuration document.
type Config struct {
	Game      GameConfig      `yaml:"game"`
	Animation AnimationConfig `yaml:"animation"`
	Theme     ThemeConfig     `yaml:"theme"`
	Log       LogConfig       `yaml:"log"`
	Server    ServerConfig    `yaml:"server"`
}

// GameConfig holds rule parameters.
type GameConfig struct {
	SpawnFourProbability float64 `yaml:"spawn_four_probability"`
	WinTile              int     `yaml:"win_tile"`
	FPS                  int     `yaml:"fps"`
}

// AnimationConfig controls tile tweens.
type AnimationConfig struct {
	Enabled bool   `yaml:"enabled"`
	SlideMS int    `yaml:"slide_ms"`
	PopMS   int    `yaml:"pop_ms"`
	Easing  string `yaml:"easing"`
}

// SlideDuration returns SlideMS as a duration.
func (a AnimationConfig) SlideDuration() time.Duration {
	return time.Duration(a.SlideMS) * time.Millisecond
}

// PopDuration returns PopMS as a duration.
func (a AnimationConfig) PopDuration() time.Duration {
	return time.Duration(a.PopMS) * time.Millisecond
}

// ThemeConfig sets the tile palette.
type ThemeConfig struct {
	Hue        float64 `yaml:"hue"`
	Saturation float64 `yaml:"saturation"`
}

// LogConfig sets where and how much to log.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// ServerConfig configures the SSH server.
type ServerConfig struct {
	Address     string        `yaml:"address"`
	HostKey     string        `yaml:"host_key"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// Easings lists the accepted animation.easing values.
var Easings = []string{"linear", "out-quad", "in-out-quad", "out-cubic", "out-back"}

// Validate checks ranges and names.
func (c Config) Validate() error {
	var errs []error
	bad := func(field string, format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s: %s", ErrInvalid, field, fmt.Sprintf(format, args...)))
	}

	if p := c.Game.SpawnFourProbability; p < 0 || p > 1 {
		bad("game.spawn_four_probability", "%v not in [0, 1]", p)
	}
	if w := c.Game.WinTile; w != 0 && (w < 8 || w&(w-1) != 0) {
		bad("game.win_tile", "%d is not a power of two >= 8", w)
	}
	if f := c.Game.FPS; f < 1 || f > 240 {
		bad("game.fps", "%d not in [1, 240]", f)
	}

	if ms := c.Animation.SlideMS; ms < 0 || ms > 2000 {
		bad("animation.slide_ms", "%d not in [0, 2000]", ms)
	}
	if ms := c.Animation.PopMS; ms < 0 || ms > 2000 {
		bad("animation.pop_ms", "%d not in [0, 2000]", ms)
	}
	if !validEasing(c.Animation.Easing) {
		bad("animation.easing", "unknown easing %q", c.Animation.Easing)
	}

	if h := c.Theme.Hue; h < 0 || h > 360 {
		bad("theme.hue", "%v not in [0, 360]", h)
	}
	if s := c.Theme.Saturation; s < 0 || s > 100 {
		bad("theme.saturation", "%v not in [0, 100]", s)
	}

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		bad("log.level", "%v", err)
	}

	if c.Server.Address == "" {
		bad("server.address", "empty")
	}
	if c.Server.IdleTimeout < 0 {
		bad("server.idle_timeout", "negative")
	}

	return errors.Join(errs...)
}

func validEasing(name string) bool {
	for _, e := range Easings {
		if e == name {
			return true
		}
	}
	return false
}

// LogLevel returns the parsed log level, defaulting to info.
func (c Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
