package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/outfitter-dev/recast/internal/domain"
)

var runDryRunFlag bool
var runJSONFlag bool
var runExcludeFlags []string

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [paths...]",
		Short: "Apply the migrations to a source tree",
		Long:  runLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := workflow.Run(domain.RunArgs{
				Paths:   parsePaths(args),
				DryRun:  runDryRunFlag,
				Exclude: runExcludeFlags,
			})
			if err != nil {
				return err
			}

			if runJSONFlag {
				return printJSON(cmd, result)
			}

			return ui.DisplayRun(result, runDryRunFlag)
		},
	}
	cmd.Flags().BoolVar(&runDryRunFlag, "dry-run", false, "report what would change without writing any file")
	cmd.Flags().BoolVar(&runJSONFlag, "json", false, "print a machine-readable run summary")
	cmd.Flags().StringArrayVarP(&runExcludeFlags, "exclude", "x", nil, "exclude files matching regex (can be repeated)")

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func printJSON(cmd *cobra.Command, value interface{}) error {
	encoded, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(encoded))

	return err
}
