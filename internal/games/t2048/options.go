package t2048

import "github.com/vovakirdan/tui-2048/internal/config"

// OptionsFromConfig maps the loaded configuration onto game options.
func OptionsFromConfig(cfg config.Config) Options {
	return Options{
		FourProbability: cfg.Game.SpawnFourProbability,
		WinTile:         cfg.Game.WinTile,
		Animate:         cfg.Animation.Enabled,
		SlideDuration:   cfg.Animation.SlideDuration(),
		PopDuration:     cfg.Animation.PopDuration(),
		Easing:          cfg.Animation.Easing,
		Theme: Theme{
			Hue:        cfg.Theme.Hue,
			Saturation: cfg.Theme.Saturation,
		},
	}
}
