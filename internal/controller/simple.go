package controller

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/outfitter-dev/recast/internal/model"
)

// SimpleUI implements UI using cobra Command's output stream. It is the
// non-TTY path: plain tables, no color, no animation.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayRun prints one row per reported file plus totals.
func (s *SimpleUI) DisplayRun(result m.RunResult, dryRun bool) error {
	changedLabel := "changed"
	if dryRun {
		changedLabel = "would change"
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"File", "Outcome"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, path := range result.ChangedFiles {
		table.Append([]string{path, changedLabel})
	}

	for _, path := range result.SkippedFiles {
		table.Append([]string{path, "skipped"})
	}

	for _, entry := range result.Errors {
		table.Append([]string{entry, "error"})
	}

	table.SetFooter([]string{
		fmt.Sprintf("%d changed / %d skipped", len(result.ChangedFiles), len(result.SkippedFiles)),
		fmt.Sprintf("%d errors", len(result.Errors)),
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	if dryRun {
		s.printf("\ndry-run: no files were written\n")
	}

	return nil
}

// DisplayScan prints the per-file classification table.
func (s *SimpleUI) DisplayScan(statuses []m.FileStatus) error {
	if len(statuses) == 0 {
		s.printf("No candidate files found\n")
		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"File", "Classification"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, status := range statuses {
		label := status.Classification.String()
		if status.Err != "" {
			label = "error: " + status.Err
		}

		table.Append([]string{string(status.Path), label})
	}

	table.SetFooter([]string{fmt.Sprintf("Total Files %d", len(statuses)), ""})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
