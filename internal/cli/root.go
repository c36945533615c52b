// Package cli implements the gadgetstore command-line interface.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	logFile   string
	logLevel  string
	year      int
	noColor   bool
	noPause   bool
}

// NewRootCmd creates the top-level "gadgetstore" command. Run without a
// subcommand it starts the interactive menu.
func NewRootCmd() *cobra.Command {
	f := &rootFlags{}

	root := &cobra.Command{
		Use:   "gadgetstore",
		Short: "Interactive in-memory gadget inventory",
		Long: `Gadgetstore keeps an inventory of gadgets in memory for the life of the
process. Add, search, delete, modify, and list gadgets from a numbered menu.
Nothing is saved when the program exits.`,
		Args: cobra.NoArgs,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(cmd, f)
		},
	}

	root.PersistentFlags().StringVar(&f.configDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/gadgetstore)")
	root.Flags().StringVar(&f.logFile, "log-file", "", "log file (default: $XDG_STATE_HOME/gadgetstore/gadgetstore.log)")
	root.Flags().StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn, error")
	root.Flags().IntVar(&f.year, "year", 0, "year embedded in minted serial numbers (default: current year)")
	root.Flags().BoolVar(&f.noColor, "no-color", false, "disable colored output")
	root.Flags().BoolVar(&f.noPause, "no-pause", false, "do not wait for Enter after each command")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(f))

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
	os.Exit(exitSuccess)
}

// systemError marks failures of the environment rather than of the
// operator's input.
type systemError struct {
	err error
}

func (e *systemError) Error() string { return e.err.Error() }
func (e *systemError) Unwrap() error { return e.err }

func sysErr(format string, args ...any) error {
	return &systemError{err: fmt.Errorf(format, args...)}
}

func exitCode(err error) int {
	var se *systemError
	if errors.As(err, &se) {
		return exitSysError
	}
	return exitUserError
}
