// Package cmd provides the root command and CLI setup for recast.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/outfitter-dev/recast/internal/adapter"
	"github.com/outfitter-dev/recast/internal/controller"
	"github.com/outfitter-dev/recast/internal/domain"
	m "github.com/outfitter-dev/recast/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var workflow domain.Workflow
var ui controller.UI

func init() {
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	workflow = domain.NewWorkflow(fsAdapter)
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recast",
		Short: "Idiom-level source migrations without a parser",
		Long: `Recast applies targeted, idiom-level migrations across a tree of
source files: exception-based error propagation becomes explicit
value-based results, and imperative command-option declarations become
declarative schema fields.

It reconstructs just enough structure from plain text to edit safely,
and skips anything it cannot rewrite without risk.

Supports Go-style path patterns:
  - ./...          recursively scan current directory
  - ./src/...      recursively scan src directory
  - ./a ./b        scan multiple directories`,
	}

	return cmd
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
