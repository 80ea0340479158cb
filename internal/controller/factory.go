package controller

import (
	"io"
	"os"

	"github.com/charmbracelet/bubbles/list"
	"github.com/spf13/cobra"

	m "github.com/outfitter-dev/recast/internal/model"
)

// NewUI creates a UI based on whether TTY mode is enabled.
// When useTTY is true, it returns a TUI (Bubble Tea).
// When useTTY is false, it returns a SimpleUI (plain text).
func NewUI(cmd *cobra.Command, useTTY bool) UI {
	if useTTY {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY checks if the given writer is a terminal (TTY).
// Returns false if the output is redirected to a file or pipe.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	fileInfo, err := file.Stat()
	if err != nil {
		return false
	}

	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}

func runItems(result m.RunResult, changedLabel string) []list.Item {
	items := make([]list.Item, 0, len(result.ChangedFiles)+len(result.SkippedFiles)+len(result.Errors))

	for _, path := range result.ChangedFiles {
		items = append(items, fileItem{path: path, outcome: changedLabel})
	}

	for _, path := range result.SkippedFiles {
		items = append(items, fileItem{path: path, outcome: "skipped"})
	}

	for _, entry := range result.Errors {
		items = append(items, fileItem{path: entry, outcome: "error"})
	}

	return items
}

func scanItems(statuses []m.FileStatus) []list.Item {
	items := make([]list.Item, 0, len(statuses))

	for _, status := range statuses {
		outcome := status.Classification.String()
		if status.Err != "" {
			outcome = "error"
		}

		items = append(items, fileItem{path: string(status.Path), outcome: outcome})
	}

	return items
}
