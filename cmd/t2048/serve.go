package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the 2048 SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session with a mode picker and its own
board. Nothing is shared between sessions.

Host key handling:
  - If --host-key (or server.host_key) is set, uses that key file
  - Otherwise, auto-generates a key at ~/.t2048/host_key

Examples:
  t2048 serve                           # Listen on the configured address
  t2048 serve --ssh :2222               # Listen on port 2222
  t2048 serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (default: server.address)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (default: server.host_key)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout before disconnecting (default: server.idle_timeout)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, source, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg, os.Stderr, "t2048-ssh")
	if err != nil {
		return err
	}
	defer closeLog()

	srvCfg := tui.DefaultSSHServerConfig()
	srvCfg.Address = cfg.Server.Address
	srvCfg.HostKeyPath = cfg.Server.HostKey
	srvCfg.IdleTimeout = cfg.Server.IdleTimeout
	srvCfg.TickRate = cfg.Game.FPS
	srvCfg.Logger = logger

	flags := cmd.Flags()
	if flags.Changed("ssh") {
		srvCfg.Address = flagSSHAddr
	}
	if flags.Changed("host-key") {
		srvCfg.HostKeyPath = flagHostKey
	}
	if flags.Changed("idle-timeout") {
		srvCfg.IdleTimeout = flagIdleTimeout
	}

	server, err := tui.NewSSHServer(srvCfg)
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}

	logger.Info("config loaded", "source", source)
	fmt.Printf("Starting 2048 SSH server on %s\n", srvCfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}
