// Package cli wires the assembly validator's commands.
package cli

import (
	"github.com/anmicius0/assembly-validator/internal/config"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configFile string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	cmd := &cobra.Command{
		Use:           "assembly-validator",
		Short:         "Check deployed assemblies against their declared versions",
		Long:          "assembly-validator reads *.config descriptor files in a directory and compares each declared assembly version with the version embedded in the assembly itself.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&flags.configFile, "config", config.DefaultConfigFile, "Path to the .env configuration file")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Log progress to stderr")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newServeCmd(flags))
	cmd.AddCommand(newCheckCmd(flags))
	cmd.AddCommand(newRemoteCmd(flags))
	cmd.AddCommand(newInspectCmd(flags))
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}
