package cli

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/gadgetstore/internal/console"
	"github.com/mesh-intelligence/gadgetstore/internal/logging"
	"github.com/mesh-intelligence/gadgetstore/internal/paths"
	"github.com/mesh-intelligence/gadgetstore/pkg/gadgetstore"
)

// runSession loads configuration, opens the log, and runs the menu against
// a fresh catalog.
func runSession(cmd *cobra.Command, f *rootFlags) error {
	configDir, err := paths.ResolveConfigDir(f.configDir)
	if err != nil {
		return sysErr("resolve config dir: %w", err)
	}
	v, err := loadConfig(configDir)
	if err != nil {
		return sysErr("load config: %w", err)
	}
	cfg, err := resolveConfig(cmd, v, f)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return sysErr("open log: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	// Screen control and pauses only make sense on a terminal; piped input
	// runs straight through.
	interactive := isTerminal(cmd.InOrStdin()) && isTerminal(cmd.OutOrStdout())

	session := console.New(gadgetstore.NewCatalog(cfg.Year), console.Options{
		In:          cmd.InOrStdin(),
		Out:         cmd.OutOrStdout(),
		Color:       cfg.Color && interactive,
		Pause:       cfg.Pause && interactive,
		ClearScreen: cfg.ClearScreen && interactive,
		Logger:      logger,
	})
	if err := session.Run(); err != nil {
		return sysErr("session: %w", err)
	}
	return nil
}

func isTerminal(stream any) bool {
	f, ok := stream.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
