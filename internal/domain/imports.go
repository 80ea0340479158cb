package domain

import (
	"regexp"
	"sort"
	"strings"
)

// importStmtRe matches one whole named-import statement once its lines
// are joined. Quote styles are matched by alternation; RE2 has no
// backreferences.
var importStmtRe = regexp.MustCompile(`^import\s*\{([^}]*)\}\s*from\s*('[^']*'|"[^"]*")\s*;?\s*$`)

// EnsureImport guarantees that every symbol is importable from module in
// the file text. An existing import statement for the module absorbs new
// symbols (de-duplicated, sorted); otherwise a new statement is inserted
// after the last import, or at the top of the file when none exist.
// Statements may span lines; a multi-line statement that absorbs symbols
// is rewritten in the reconciler's single-line form. The reconciler never
// emits two statements for the same module.
func EnsureImport(text, module string, symbols []string) string {
	if len(symbols) == 0 {
		return text
	}

	lines := strings.Split(text, "\n")
	lastEnd := -1

	for i := 0; i < len(lines); i++ {
		if !isImportStart(lines[i]) {
			continue
		}

		end := importStatementEnd(lines, i)
		stmt := strings.Join(lines[i:end+1], " ")

		if match := importStmtRe.FindStringSubmatch(stmt); match != nil && stripQuotes(match[2]) == module {
			quote := match[2][:1]
			merged := "import { " + mergeSymbols(match[1], symbols) + " } from " + quote + module + quote + ";"

			out := make([]string, 0, len(lines))
			out = append(out, lines[:i]...)
			out = append(out, merged)
			out = append(out, lines[end+1:]...)

			return strings.Join(out, "\n")
		}

		lastEnd = end
		i = end
	}

	stmt := "import { " + mergeSymbols("", symbols) + ` } from "` + module + `";`
	insertAt := lastEnd + 1

	out := make([]string, 0, len(lines)+1)
	out = append(out, lines[:insertAt]...)
	out = append(out, stmt)
	out = append(out, lines[insertAt:]...)

	return strings.Join(out, "\n")
}

func isImportStart(line string) bool {
	trimmed := strings.TrimSpace(line)

	return strings.HasPrefix(trimmed, "import ") || strings.HasPrefix(trimmed, "import{")
}

// importStatementEnd returns the last line of the import statement
// starting at start. Only the braced form spans lines; it ends on the
// line carrying the closing brace.
func importStatementEnd(lines []string, start int) int {
	line := lines[start]
	if !strings.Contains(line, "{") || strings.Contains(line, "}") {
		return start
	}

	for j := start + 1; j < len(lines); j++ {
		if strings.Contains(lines[j], "}") {
			return j
		}
	}

	return start
}

func mergeSymbols(existing string, add []string) string {
	seen := make(map[string]bool)

	for _, sym := range strings.Split(existing, ",") {
		if sym = strings.TrimSpace(sym); sym != "" {
			seen[sym] = true
		}
	}

	for _, sym := range add {
		if sym = strings.TrimSpace(sym); sym != "" {
			seen[sym] = true
		}
	}

	merged := make([]string, 0, len(seen))
	for sym := range seen {
		merged = append(merged, sym)
	}

	sort.Strings(merged)

	return strings.Join(merged, ", ")
}
