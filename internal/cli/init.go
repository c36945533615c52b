package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/gadgetstore/internal/paths"
)

func newInitCmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Long:  "Create the configuration directory and a default config.yaml. An existing file is left untouched.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configDir, err := paths.ResolveConfigDir(f.configDir)
			if err != nil {
				return sysErr("resolve config dir: %w", err)
			}
			if _, err := loadConfig(configDir); err != nil {
				return sysErr("initialize config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Configuration ready at %s\n", configDir)
			return nil
		},
	}
}
