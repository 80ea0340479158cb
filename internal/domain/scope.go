package domain

import (
	"regexp"
	"strings"

	m "github.com/outfitter-dev/recast/internal/model"
)

// A line opens a scope when it carries a function-like signature together
// with an opening delimiter. Arrow-style and keyword-style signatures are
// both recognized; method shorthand is covered by the call-shape form.
var funcDeclRes = []*regexp.Regexp{
	regexp.MustCompile(`\bfunction\b[^{]*\{`),
	regexp.MustCompile(`=>\s*\{`),
	regexp.MustCompile(`^\s*(?:public\s+|private\s+|protected\s+|static\s+|async\s+)*[A-Za-z_$][\w$]*\s*\([^)]*\)\s*\{`),
}

type openScope struct {
	startLine   int
	depthBefore int
	hasMarker   bool
}

// TrackScopes walks the lines once, counting structural open/close
// delimiters, and returns the finalized function-like spans. A scope is
// attributed a marker when a line inside it contains the value-result
// error construct; attribution always goes to the innermost currently
// open scope. Delimiters inside string or comment literals are not
// distinguished from structural ones; that approximation is deliberate
// and pinned by tests.
func TrackScopes(lines []string) []m.ScopeSpan {
	depth := 0

	var stack []openScope

	var spans []m.ScopeSpan

	for i, line := range lines {
		if opensScope(line) {
			stack = append(stack, openScope{startLine: i, depthBefore: depth})
		}

		if strings.Contains(line, errMarker) && len(stack) > 0 {
			stack[len(stack)-1].hasMarker = true
		}

		depth += strings.Count(line, "{") - strings.Count(line, "}")

		// Pop every scope that has fully unwound on this line.
		for len(stack) > 0 && stack[len(stack)-1].depthBefore >= depth {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			spans = append(spans, m.ScopeSpan{
				StartLine: top.startLine,
				EndLine:   i,
				HasMarker: top.hasMarker,
			})
		}
	}

	// Unterminated scopes close at end of input.
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		spans = append(spans, m.ScopeSpan{
			StartLine: top.startLine,
			EndLine:   len(lines) - 1,
			HasMarker: top.hasMarker,
		})
	}

	return spans
}

// InnermostEnclosing returns the smallest span containing the zero-based
// line. Spans are well-nested, so minimal size identifies the innermost.
func InnermostEnclosing(spans []m.ScopeSpan, line int) (m.ScopeSpan, bool) {
	var best m.ScopeSpan

	found := false

	for _, span := range spans {
		if !span.Contains(line) {
			continue
		}

		if !found || span.Size() < best.Size() {
			best = span
			found = true
		}
	}

	return best, found
}

func opensScope(line string) bool {
	if !strings.Contains(line, "{") {
		return false
	}

	trimmed := strings.TrimSpace(line)
	if strings.HasPrefix(trimmed, "//") {
		return false
	}

	// Control-flow headers share the call shape of method declarations
	// but never open function scopes.
	switch {
	case strings.HasPrefix(trimmed, "if"),
		strings.HasPrefix(trimmed, "for"),
		strings.HasPrefix(trimmed, "while"),
		strings.HasPrefix(trimmed, "switch"),
		strings.HasPrefix(trimmed, "catch"),
		strings.HasPrefix(trimmed, "} "):
		return strings.Contains(line, "=>") && strings.Contains(line, "{")
	}

	for _, re := range funcDeclRes {
		if re.MatchString(line) {
			return true
		}
	}

	return false
}
