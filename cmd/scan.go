package cmd

import (
	"github.com/spf13/cobra"

	"github.com/outfitter-dev/recast/internal/domain"
	m "github.com/outfitter-dev/recast/internal/model"
)

var scanParallelFlag int
var scanJSONFlag bool
var scanExcludeFlags []string

// scanCmd represents the scan command.
var scanCmd = newScanCmd()

func newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [paths...]",
		Short: "Classify files without rewriting anything",
		Long:  scanLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			statuses, err := workflow.Scan(domain.ScanArgs{
				Paths:   parsePaths(args),
				Exclude: scanExcludeFlags,
				Threads: scanParallelFlag,
			})
			if err != nil {
				return err
			}

			domain.SortStatuses(statuses)

			if scanJSONFlag {
				return printJSON(cmd, scanReport(statuses))
			}

			return ui.DisplayScan(statuses)
		},
	}
	cmd.Flags().IntVarP(&scanParallelFlag, "parallel", "p", 1, "number of parallel workers for classification")
	cmd.Flags().BoolVar(&scanJSONFlag, "json", false, "print machine-readable classifications")
	cmd.Flags().StringArrayVarP(&scanExcludeFlags, "exclude", "x", nil, "exclude files matching regex (can be repeated)")

	return cmd
}

func init() {
	rootCmd.AddCommand(scanCmd)
}

type scanEntry struct {
	Path           string `json:"path"`
	Classification string `json:"classification"`
	Error          string `json:"error,omitempty"`
}

func scanReport(statuses []m.FileStatus) []scanEntry {
	entries := make([]scanEntry, 0, len(statuses))
	for _, status := range statuses {
		entries = append(entries, scanEntry{
			Path:           string(status.Path),
			Classification: status.Classification.String(),
			Error:          status.Err,
		})
	}

	return entries
}
