package domain

import (
	"regexp"
	"strings"

	m "github.com/outfitter-dev/recast/internal/model"
)

var (
	throwIdiomRe  = regexp.MustCompile(`\bthrow\s+new\s+[A-Z][\w$]*\s*\(`)
	optionCallRe  = regexp.MustCompile(`\.(option|argument)\(`)
	commandDeclRe = regexp.MustCompile(`new\s+Command\s*\(|\.command\s*\(`)
	schemaIdiomRe = regexp.MustCompile(`\bz\.object\s*\(`)

	// Chain calls the rewriter can handle: one standalone call per line,
	// argument list closed on the same line.
	chainLineRe = regexp.MustCompile(`^\s*\.(option|argument)\(.*\)[;,]?\s*$`)

	loopOpenRe = regexp.MustCompile(`^\s*(?:for|while)\s*\(.*\{|\.(?:forEach|map|filter|reduce)\(`)
)

// Classify decides what to do with raw file text before any rewrite phase
// runs. The already-migrated check deliberately precedes the complexity
// check: a fully migrated file may contain several schema declarations
// that would otherwise look too complex.
func Classify(text string) m.Classification {
	hasThrow := throwIdiomRe.MatchString(text)
	hasOptions := optionCallRe.MatchString(text)
	hasDestination := strings.Contains(text, errMarker) ||
		strings.Contains(text, okMarker) ||
		schemaIdiomRe.MatchString(text)

	if !hasThrow && !hasOptions {
		if hasDestination {
			return m.ClassAlreadyMigrated
		}

		return m.ClassNoPattern
	}

	if hasOptions && optionUsageTooComplex(text) {
		return m.ClassTooComplex
	}

	return m.ClassTransformable
}

// optionUsageTooComplex applies the bail-out policy for migration (b):
// more than one independent command declaration, a builder call inside a
// dynamic construct, or a builder call the line-based rewriter cannot
// represent. Ambiguous files are skipped, never partially transformed.
func optionUsageTooComplex(text string) bool {
	if len(commandDeclRe.FindAllStringIndex(text, -1)) > 1 {
		return true
	}

	lines := strings.Split(text, "\n")
	depth := 0
	inLoop := false
	loopExitDepth := 0

	for _, line := range lines {
		if optionCallRe.MatchString(line) {
			if inLoop || loopOpenRe.MatchString(line) {
				return true
			}

			if !chainLineRe.MatchString(line) {
				return true
			}
		}

		if !inLoop && loopOpenRe.MatchString(line) && strings.Contains(line, "{") {
			inLoop = true
			loopExitDepth = depth
		}

		depth += strings.Count(line, "{") - strings.Count(line, "}")

		if inLoop && depth <= loopExitDepth {
			inLoop = false
		}
	}

	return false
}
