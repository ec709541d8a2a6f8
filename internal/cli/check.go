package cli

import (
	"errors"
	"fmt"

	"github.com/anmicius0/assembly-validator/internal/config"
	"github.com/anmicius0/assembly-validator/internal/service"
	"github.com/anmicius0/assembly-validator/internal/utils"
	"github.com/spf13/cobra"
)

type checkOptions struct {
	path         string
	output       string
	strict       bool
	pattern      string
	versionField string
}

func newCheckCmd(flags *globalFlags) *cobra.Command {
	opts := &checkOptions{}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a directory locally",
		Long:  "Read every descriptor file in --path and compare the declared assembly versions with the versions embedded in the assemblies.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutput(opts.output); err != nil {
				return err
			}

			appConfig, err := config.LoadFrom(flags.configFile)
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			if cmd.Flags().Changed("pattern") {
				appConfig.DescriptorPattern = opts.pattern
			}
			if cmd.Flags().Changed("version-field") {
				appConfig.VersionField = opts.versionField
			}
			if err := appConfig.Validate(); err != nil {
				return fmt.Errorf("invalid flags: %w", err)
			}

			if err := initCommandLogging(flags.verbose); err != nil {
				return err
			}
			defer utils.Sync()

			validator := newValidator(appConfig, utils.WithComponent("check"))
			results, err := validator.Validate(cmd.Context(), config.ValidationRequest{Path: opts.path})
			if err != nil {
				var preconditionErr *service.PreconditionError
				if errors.As(err, &preconditionErr) {
					results = []config.ValidationResult{preconditionErr.Result}
					if writeErr := writeResults(cmd.OutOrStdout(), opts.output, opts.path, results); writeErr != nil {
						return writeErr
					}
					return fmt.Errorf("check rejected: %w", err)
				}
				return fmt.Errorf("check failed: %w", err)
			}

			if err := writeResults(cmd.OutOrStdout(), opts.output, opts.path, results); err != nil {
				return err
			}
			if opts.strict {
				return strictError(results)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.path, "path", "", "Directory holding descriptor files and assemblies")
	cmd.Flags().StringVarP(&opts.output, "output", "o", outputText, "Output format: text, json or yaml")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Exit non-zero when any result is not a match")
	cmd.Flags().StringVar(&opts.pattern, "pattern", config.DefaultDescriptorPattern, "Descriptor file name pattern")
	cmd.Flags().StringVar(&opts.versionField, "version-field", config.DefaultVersionField, "Version string to compare: FileVersion or ProductVersion")

	return cmd
}

// strictError reports how many results were not a match.
func strictError(results []config.ValidationResult) error {
	failed := 0
	for _, r := range results {
		if r.Status != config.StatusMatch {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d results did not match", failed, len(results))
	}
	return nil
}

// initCommandLogging sends logs to stderr when verbose, and discards them otherwise.
func initCommandLogging(verbose bool) error {
	if !verbose {
		return nil
	}
	if err := utils.Init(""); err != nil {
		return fmt.Errorf("initialize logging: %w", err)
	}
	return nil
}
