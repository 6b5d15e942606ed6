package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [classic|endless]",
	Short: "Play 2048",
	Long: `Start a game. Without a mode a picker is shown.

Controls:
  Arrows/WASD/hjkl - Slide tiles
  P                - Pause
  R                - Restart (after game over or win)
  Ctrl+S           - Save screenshot and board snapshot
  ?                - Toggle help
  Q/Ctrl+C         - Quit

Modes:
  classic - Reach 2048 to win, then keep going if you like
  endless - No win tile; play until the board locks

Examples:
  t2048 play
  t2048 play classic
  t2048 play endless --seed 7
  t2048 play --config ./my-2048.yaml --log-file 2048.log --log-level debug`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{string(t2048.ModeClassic), string(t2048.ModeEndless)},
	RunE:      runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, source, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// The alternate screen owns the terminal, so logs go to a file or nowhere.
	logger, closeLog, err := newLogger(cfg, io.Discard, "t2048")
	if err != nil {
		return err
	}
	defer closeLog()
	logger.Debug("config loaded", "source", source)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Game.FPS,
		Seed:     flagSeed,
	}

	var gameID string
	if len(args) == 1 {
		mode, ok := t2048.ParseMode(args[0])
		if !ok {
			return fmt.Errorf("unknown mode %q (want classic or endless)", args[0])
		}
		gameID = t2048.GameID(mode)
	} else {
		gameID, err = tui.RunModeSelector(rt)
		if err != nil {
			return fmt.Errorf("mode selector: %w", err)
		}
		// User quit the picker
		if gameID == "" {
			return nil
		}
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}

	opts := tui.Options{Logger: logger}
	if dir := config.Dir(); dir != "" {
		opts.ScreenshotDir = filepath.Join(dir, "screenshots")
	}

	logger.Info("starting", "game", gameID, "seed", flagSeed, "fps", rt.TickRate)
	if err := tui.Run(game, rt, opts); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
