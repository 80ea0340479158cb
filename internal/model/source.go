// Package model defines the data structures for source rewriting.
package model

// Path represents a file system path.
type Path string

// Classification is the classifier's verdict for a single file.
type Classification int

const (
	// ClassNoPattern means none of the source idioms appear; the file is
	// skipped silently and not reported.
	ClassNoPattern Classification = iota

	// ClassAlreadyMigrated means the destination idiom is already present
	// and no source idiom remains. Counted as skipped.
	ClassAlreadyMigrated

	// ClassTransformable means the file is safe to rewrite.
	ClassTransformable

	// ClassTooComplex means the file structure exceeds what the engine can
	// rewrite without risking corruption. Counted as skipped.
	ClassTooComplex
)

func (c Classification) String() string {
	switch c {
	case ClassNoPattern:
		return "no-pattern"
	case ClassAlreadyMigrated:
		return "already-migrated"
	case ClassTransformable:
		return "transformable"
	case ClassTooComplex:
		return "too-complex"
	default:
		return "unknown"
	}
}

// SourceFile is one candidate file flowing through the pipeline. Text is
// the working copy mutated by the rewrite phases; Original never changes.
// A SourceFile is read once and written at most once.
type SourceFile struct {
	RelPath  Path
	FullPath Path
	Original string
	Text     string
}

// ScopeSpan is one inferred function-like block, produced by the
// delimiter-counting scope walk. StartLine and EndLine are zero-based and
// inclusive; EndLine >= StartLine always holds.
type ScopeSpan struct {
	StartLine int
	EndLine   int
	HasMarker bool
}

// Contains reports whether the zero-based line falls inside the span.
func (s ScopeSpan) Contains(line int) bool {
	return line >= s.StartLine && line <= s.EndLine
}

// Size is the span length used to rank nesting; the innermost enclosing
// span of a line is the containing span with minimal Size.
func (s ScopeSpan) Size() int {
	return s.EndLine - s.StartLine
}
