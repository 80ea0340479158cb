// Package controller provides output adapters for displaying transform
// results.
package controller

import (
	m "github.com/outfitter-dev/recast/internal/model"
)

// UI defines the interface for presenting run and scan results.
// Implementations can use different output methods (plain text, TUI).
type UI interface {
	// DisplayRun shows the aggregate result of a transform invocation.
	DisplayRun(result m.RunResult, dryRun bool) error
	// DisplayScan shows per-file classifications.
	DisplayScan(statuses []m.FileStatus) error
}
