package controller

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	m "github.com/outfitter-dev/recast/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// DisplayRun shows the run outcome in an interactive browser.
func (t *TUI) DisplayRun(result m.RunResult, dryRun bool) error {
	changedLabel := "changed"
	if dryRun {
		changedLabel = "would change"
	}

	items := runItems(result, changedLabel)
	summary := fmt.Sprintf("Changed: %d   Skipped: %d   Errors: %d",
		len(result.ChangedFiles), len(result.SkippedFiles), len(result.Errors))

	return t.run(newResultModel("recast run", summary, items))
}

// DisplayScan shows per-file classifications in an interactive browser.
func (t *TUI) DisplayScan(statuses []m.FileStatus) error {
	items := scanItems(statuses)
	summary := fmt.Sprintf("Files: %d", len(statuses))

	return t.run(newResultModel("recast scan", summary, items))
}

func (t *TUI) run(model resultModel) error {
	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}
