// Package domain implements the source-rewriting pipeline: file
// selection, pattern classification, scope tracking, the ordered rewrite
// phases, schema synthesis, and import reconciliation.
package domain

// The destination-form vocabulary is an external contract consumed as-is:
// constructor names and call shapes must match the target ecosystem
// exactly, so they live here as fixed string tables rather than logic.

const (
	// resultModule is the module providing the value-result error types.
	resultModule = "@outfitter/result"

	// schemaModule provides the declarative validation combinators.
	schemaModule = "zod"
	schemaSymbol = "z"

	resultSymbol  = "Result"
	genericSymbol = "InternalError"

	// errMarker is the textual signal that a scope already propagates
	// errors by value; its presence drives return wrapping.
	errMarker = "Result.err("
	okMarker  = "Result.ok("
)

// knownErrorKinds is the closed set of named error-kind constructors. A
// raise of one of these is rewritten to the matching named constructor;
// a plain Error raise falls back to the generic internal-error form. Any
// other class is left untouched.
var knownErrorKinds = map[string]bool{
	"ValidationError": true,
	"NotFoundError":   true,
	"ConflictError":   true,
	"TimeoutError":    true,
	"PermissionError": true,
}

// includeExtensions restricts candidates to known text extensions; the
// engine never reads binary content.
var includeExtensions = map[string]bool{
	".ts":  true,
	".tsx": true,
	".js":  true,
	".mjs": true,
	".cjs": true,
}

// ignoreDirs are path segments never descended into. Some of these can
// contain enormous generated trees, so skipping at the directory level
// matters for more than correctness.
var ignoreDirs = map[string]bool{
	"node_modules": true,
	"dist":         true,
	"build":        true,
	"out":          true,
	"coverage":     true,
	"vendor":       true,
	".git":         true,
	".hg":          true,
	".svn":         true,
}
