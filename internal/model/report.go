package model

// TransformResult holds the outcome of rewriting a single file.
type TransformResult struct {
	Changed    bool
	OutputText string
}

// FileStatus pairs a file with its classification, as reported by scan.
type FileStatus struct {
	Path           Path
	Classification Classification
	Err            string
}

// RunResult aggregates one invocation across all selected files. Partial
// success (some changed, some skipped, some errored) is the normal
// outcome, not a failure mode. Each reported path is the root argument as
// the caller gave it, joined with the file's root-relative path, so
// reports stay unambiguous across several roots.
type RunResult struct {
	ChangedFiles []string `json:"changedFiles"`
	SkippedFiles []string `json:"skippedFiles"`
	Errors       []string `json:"errors"`
}
