package cli

import (
	"fmt"

	"github.com/mesh-intelligence/gadgetstore/pkg/gadgetstore"
	"github.com/spf13/cobra"
)

const modulePath = "github.com/mesh-intelligence/gadgetstore"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the gadgetstore version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "gadgetstore v%s\nmodule: %s\n", gadgetstore.Version, modulePath)
			return nil
		},
	}
}
