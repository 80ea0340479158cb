package domain

import (
	"fmt"
	"path/filepath"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/outfitter-dev/recast/internal/adapter"
	m "github.com/outfitter-dev/recast/internal/model"
)

// RunArgs parameterizes one transform invocation.
type RunArgs struct {
	Paths   []m.Path
	DryRun  bool
	Exclude []string
}

// ScanArgs parameterizes a classify-only pass.
type ScanArgs struct {
	Paths   []m.Path
	Exclude []string
	Threads int
}

// Workflow defines the engine's entry points: Run performs the transform
// (or reports what it would do under DryRun), Scan classifies without
// rewriting anything.
type Workflow interface {
	Run(args RunArgs) (m.RunResult, error)
	Scan(args ScanArgs) ([]m.FileStatus, error)
}

type workflow struct {
	fs adapter.SourceFSAdapter
}

// NewWorkflow creates a Workflow backed by the provided filesystem
// adapter.
func NewWorkflow(fs adapter.SourceFSAdapter) Workflow {
	return &workflow{fs: fs}
}

// Run drives the per-file pipeline over every selected file. Files are
// processed one at a time in selector order; no state survives from one
// file to the next, which keeps the reported orderings deterministic.
// One file's failure is recorded and never fatal to the run.
func (w *workflow) Run(args RunArgs) (m.RunResult, error) {
	result := m.RunResult{
		ChangedFiles: []string{},
		SkippedFiles: []string{},
		Errors:       []string{},
	}

	selector, err := NewSelector(w.fs, args.Exclude)
	if err != nil {
		return result, err
	}

	for _, root := range rootsOrDefault(args.Paths) {
		files, err := selector.Select(root)
		if err != nil {
			return result, err
		}

		base := selector.Root(root)

		for _, rel := range files {
			display := displayPath(base, rel)
			full := w.fs.JoinPath(string(base), string(rel))

			content, err := w.fs.ReadFile(full)
			if err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", display, err))
				continue
			}

			file := m.SourceFile{
				RelPath:  rel,
				FullPath: full,
				Original: string(content),
				Text:     string(content),
			}

			switch Classify(file.Original) {
			case m.ClassNoPattern:
				continue
			case m.ClassAlreadyMigrated, m.ClassTooComplex:
				result.SkippedFiles = append(result.SkippedFiles, display)
				continue
			case m.ClassTransformable:
			}

			transformed, err := w.transformSafe(&file)
			if err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", display, err))
				continue
			}

			if !transformed.Changed {
				result.SkippedFiles = append(result.SkippedFiles, display)
				continue
			}

			if !args.DryRun {
				if err := w.fs.WriteFile(full, []byte(transformed.OutputText), 0644); err != nil {
					result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", display, err))
					continue
				}
			}

			result.ChangedFiles = append(result.ChangedFiles, display)
		}
	}

	return result, nil
}

// Scan classifies every selected file without touching it. Independent
// files are classified concurrently; results land in preallocated slots
// so the final ordering matches the selector regardless of thread count.
func (w *workflow) Scan(args ScanArgs) ([]m.FileStatus, error) {
	selector, err := NewSelector(w.fs, args.Exclude)
	if err != nil {
		return nil, err
	}

	threads := args.Threads
	if threads <= 0 {
		threads = 1
	}

	statuses := []m.FileStatus{}

	for _, root := range rootsOrDefault(args.Paths) {
		files, err := selector.Select(root)
		if err != nil {
			return nil, err
		}

		base := selector.Root(root)
		offset := len(statuses)
		statuses = append(statuses, make([]m.FileStatus, len(files))...)

		var g errgroup.Group

		g.SetLimit(threads)

		for i, rel := range files {
			slot := &statuses[offset+i]
			full := w.fs.JoinPath(string(base), string(rel))
			display := displayPath(base, rel)

			g.Go(func() error {
				slot.Path = m.Path(display)

				content, err := w.fs.ReadFile(full)
				if err != nil {
					slot.Err = err.Error()
					return nil
				}

				slot.Classification = Classify(string(content))

				return nil
			})
		}

		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	return statuses, nil
}

// transformSafe runs the rewrite phases for one file, converting any
// unexpected panic into a per-file error so the run continues.
func (w *workflow) transformSafe(file *m.SourceFile) (result m.TransformResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("unexpected rewrite failure: %v", r)
		}
	}()

	notes := RewriteRaises(file)
	schemaAdded := RewriteCommandOptions(file)

	// Imports are reconciled only when a rewrite actually changed text.
	if notes.UsedResult {
		symbols := []string{resultSymbol}
		if notes.UsedGeneric {
			symbols = append(symbols, genericSymbol)
		}

		file.Text = EnsureImport(file.Text, resultModule, symbols)
	}

	if schemaAdded {
		file.Text = EnsureImport(file.Text, schemaModule, []string{schemaSymbol})
	}

	return m.TransformResult{
		Changed:    file.Text != file.Original,
		OutputText: file.Text,
	}, nil
}

func rootsOrDefault(paths []m.Path) []m.Path {
	if len(paths) == 0 {
		return []m.Path{"."}
	}

	return paths
}

func displayPath(base, rel m.Path) string {
	return filepath.ToSlash(filepath.Join(string(base), string(rel)))
}

// SortStatuses orders scan output by path for stable reporting across
// parallelism levels.
func SortStatuses(statuses []m.FileStatus) {
	sort.Slice(statuses, func(i, j int) bool { return statuses[i].Path < statuses[j].Path })
}
