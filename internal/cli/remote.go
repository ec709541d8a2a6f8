package cli

import (
	"errors"
	"fmt"

	"github.com/anmicius0/assembly-validator/internal/client"
	"github.com/anmicius0/assembly-validator/internal/config"
	"github.com/anmicius0/assembly-validator/internal/utils"
	"github.com/spf13/cobra"
)

func newRemoteCmd(flags *globalFlags) *cobra.Command {
	var (
		serverURL string
		token     string
		path      string
		output    string
		strict    bool
	)

	cmd := &cobra.Command{
		Use:   "remote",
		Short: "Validate a directory through a running server",
		Long:  "Send a validation request for --path to the server at --server and print its results. The path is resolved on the server.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutput(output); err != nil {
				return err
			}
			if serverURL == "" {
				return fmt.Errorf("--server is required")
			}
			if err := initCommandLogging(flags.verbose); err != nil {
				return err
			}
			defer utils.Sync()

			c := client.NewValidatorClient(serverURL, token)
			results, err := c.Validate(path)
			if err != nil {
				var rejected *client.RejectedError
				if errors.As(err, &rejected) {
					results = []config.ValidationResult{rejected.Result}
					if writeErr := writeResults(cmd.OutOrStdout(), output, path, results); writeErr != nil {
						return writeErr
					}
					return fmt.Errorf("remote check rejected: %w", err)
				}
				return fmt.Errorf("remote check failed: %w", err)
			}

			if err := writeResults(cmd.OutOrStdout(), output, path, results); err != nil {
				return err
			}
			if strict {
				return strictError(results)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&serverURL, "server", "", "Base URL of the validator server")
	cmd.Flags().StringVar(&token, "token", "", "Bearer token for the server's API")
	cmd.Flags().StringVar(&path, "path", "", "Directory to validate, as seen by the server")
	cmd.Flags().StringVarP(&output, "output", "o", outputText, "Output format: text, json or yaml")
	cmd.Flags().BoolVar(&strict, "strict", false, "Exit non-zero when any result is not a match")

	return cmd
}
