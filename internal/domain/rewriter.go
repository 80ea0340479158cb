package domain

import (
	"regexp"
	"strings"

	m "github.com/outfitter-dev/recast/internal/model"
)

// The rewrite phases are ordered and independent: each touches only the
// lines matching its own pattern and returns its input unchanged when
// nothing matches. Output is always at least as parseable as input; a
// phase never leaves a construct half rewritten.

var (
	throwOpenRe   = regexp.MustCompile(`^(\s*)throw\s+new\s+([A-Z][\w$]*)\s*\(`)
	throwSingleRe = regexp.MustCompile(`^(\s*)throw\s+new\s+([A-Z][\w$]*)\s*\((.*)\)\s*;?\s*$`)
	returnValueRe = regexp.MustCompile(`^(\s*)return\s+(.+?);?\s*$`)
)

// RewriteNotes records which destination symbols a rewrite actually used,
// so the import reconciler only adds what the file needs.
type RewriteNotes struct {
	UsedResult  bool
	UsedGeneric bool
}

// CollapseMultilineThrows joins raise statements whose argument list
// spans several lines into the equivalent single-line form so the
// substitution phase can handle them. Internal whitespace is trimmed to
// one space. Statements that never close their argument list are left
// alone.
func CollapseMultilineThrows(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))

	for i := 0; i < len(lines); i++ {
		line := lines[i]

		if !throwOpenRe.MatchString(line) || parenBalance(line) <= 0 {
			out = append(out, line)
			continue
		}

		// Argument list continues past this line; look for the close.
		balance := parenBalance(line)
		joined := strings.TrimRight(line, " \t")
		end := -1

		for j := i + 1; j < len(lines); j++ {
			fragment := strings.TrimSpace(lines[j])
			if !strings.HasSuffix(joined, "(") && !strings.HasPrefix(fragment, ")") {
				joined += " "
			}

			joined += fragment
			balance += parenBalance(lines[j])

			if balance <= 0 {
				end = j
				break
			}
		}

		if end == -1 {
			out = append(out, line)
			continue
		}

		out = append(out, joined)
		i = end
	}

	return strings.Join(out, "\n")
}

// SubstituteThrows rewrites each single-line raise statement into the
// value-result destination form, preserving leading indentation exactly.
// The specific form (a known error kind keeps its own constructor) is
// strictly narrower than the generic fallback, so it is tried first; a
// plain Error raise takes the generic internal-error form. Raises of
// classes outside the known vocabulary are left untouched.
func SubstituteThrows(text string) (string, RewriteNotes) {
	var notes RewriteNotes

	lines := strings.Split(text, "\n")

	for i, line := range lines {
		match := throwSingleRe.FindStringSubmatch(line)
		if match == nil {
			continue
		}

		indent, name, args := match[1], match[2], match[3]

		switch {
		case knownErrorKinds[name]:
			lines[i] = indent + "return Result.err(new " + name + "(" + args + "));"
			notes.UsedResult = true
		case name == "Error":
			lines[i] = indent + "return Result.err(InternalError.create(" + args + "));"
			notes.UsedResult = true
			notes.UsedGeneric = true
		}
	}

	return strings.Join(lines, "\n"), notes
}

// WrapReturns wraps plain return-with-value statements in the success
// constructor, but only inside scopes that already carry a value-result
// error marker. Bare returns, import/export lines, and statements already
// in destination form stay untouched. The phase is a no-op for files
// without any destination-form error construct.
func WrapReturns(text string) string {
	if !strings.Contains(text, errMarker) {
		return text
	}

	lines := strings.Split(text, "\n")
	spans := TrackScopes(lines)

	for i, line := range lines {
		code, comment := splitTrailingComment(line)

		match := returnValueRe.FindStringSubmatch(code)
		if match == nil {
			continue
		}

		indent, value := match[1], strings.TrimSpace(match[2])

		if !wrappableReturn(value) {
			continue
		}

		span, ok := InnermostEnclosing(spans, i)
		if !ok || !span.HasMarker {
			continue
		}

		rewritten := indent + "return Result.ok(" + value + ");"
		if comment != "" {
			rewritten += " " + comment
		}

		lines[i] = rewritten
	}

	return strings.Join(lines, "\n")
}

func wrappableReturn(value string) bool {
	if value == "" {
		return false
	}

	if strings.HasPrefix(value, "Result.") {
		return false
	}

	// Anything import/export-shaped is not a return statement we own.
	if strings.HasPrefix(value, "import ") || strings.HasPrefix(value, "export ") {
		return false
	}

	// A semicolon left in the captured value means an empty return
	// (`return ;`) or a second statement on the same line.
	if hasTopLevelSemicolon(value) {
		return false
	}

	// Expressions continuing onto the next line cannot be wrapped safely.
	if parenBalance(value) != 0 || strings.Count(value, "{") != strings.Count(value, "}") {
		return false
	}

	switch value[len(value)-1] {
	case '+', '-', '*', '/', '&', '|', ',', '.', '?', ':', '=':
		return false
	}

	return true
}

// RewriteRaises runs the migration (a) phases in order and reports which
// destination symbols were introduced.
func RewriteRaises(file *m.SourceFile) RewriteNotes {
	file.Text = CollapseMultilineThrows(file.Text)

	text, notes := SubstituteThrows(file.Text)
	file.Text = WrapReturns(text)

	return notes
}

func parenBalance(line string) int {
	return strings.Count(line, "(") - strings.Count(line, ")")
}

// splitTrailingComment separates a line comment from the code before it.
// A comment marker inside a string literal does not count.
func splitTrailingComment(line string) (string, string) {
	var quote byte

	for i := 0; i < len(line)-1; i++ {
		c := line[i]

		switch {
		case quote != 0:
			if c == quote && line[i-1] != '\\' {
				quote = 0
			}
		case c == '\'' || c == '"' || c == '`':
			quote = c
		case c == '/' && line[i+1] == '/':
			return strings.TrimRight(line[:i], " \t"), line[i:]
		}
	}

	return line, ""
}

func hasTopLevelSemicolon(value string) bool {
	var quote byte

	for i := 0; i < len(value); i++ {
		c := value[i]

		switch {
		case quote != 0:
			if c == quote && value[i-1] != '\\' {
				quote = 0
			}
		case c == '\'' || c == '"' || c == '`':
			quote = c
		case c == ';':
			return true
		}
	}

	return false
}
