package cli

import (
	"fmt"

	"github.com/anmicius0/assembly-validator/internal/versioninfo"
	"github.com/spf13/cobra"
)

func newInspectCmd(flags *globalFlags) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "inspect FILE",
		Short: "Print the version resource of an assembly",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutput(output); err != nil {
				return err
			}
			if err := initCommandLogging(flags.verbose); err != nil {
				return err
			}

			info, err := versioninfo.Read(args[0])
			if err != nil {
				return fmt.Errorf("inspect failed: %w", err)
			}

			switch output {
			case outputJSON:
				return encodeJSON(cmd.OutOrStdout(), info)
			case outputYAML:
				return encodeYAML(cmd.OutOrStdout(), info)
			}
			fmt.Fprint(cmd.OutOrStdout(), RenderInfo(args[0], info))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", outputText, "Output format: text, json or yaml")

	return cmd
}
