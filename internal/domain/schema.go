package domain

import (
	"regexp"
	"strings"

	m "github.com/outfitter-dev/recast/internal/model"
)

// Quoted literals are matched by alternation on the quote style; RE2 has
// no backreferences.
var (
	optionArgsRe   = regexp.MustCompile(`^\s*\.option\(\s*('[^']*'|"[^"]*")\s*(?:,\s*(.*?)\s*)?\)[;,]?\s*$`)
	argumentArgsRe = regexp.MustCompile(`^\s*\.argument\(\s*('[^']*'|"[^"]*")\s*(?:,\s*('[^']*'|"[^"]*")\s*)?\)[;,]?\s*$`)
	longFlagRe     = regexp.MustCompile(`--([A-Za-z][\w-]*)`)
	stringLitRe    = regexp.MustCompile(`^('[^']*'|"[^"]*")$`)
	numberLitRe    = regexp.MustCompile(`^-?\d+(\.\d+)?$`)
)

// numericParsers are source references whose presence types a flag value
// as a number during synthesis.
var numericParsers = map[string]bool{
	"parseInt":   true,
	"parseFloat": true,
	"Number":     true,
}

// ParseOptionLine parses one standalone .option(...) chain line into a
// descriptor. The flag spec decides key, negation, and value slot shape;
// the remaining arguments carry description, parser reference, and
// default literal in the builder's positional convention.
func ParseOptionLine(line string) (m.OptionDescriptor, bool) {
	match := optionArgsRe.FindStringSubmatch(line)
	if match == nil {
		return m.OptionDescriptor{}, false
	}

	flagSpec := stripQuotes(match[1])

	long := longFlagRe.FindStringSubmatch(flagSpec)
	if long == nil {
		return m.OptionDescriptor{}, false
	}

	desc := m.OptionDescriptor{ValueType: m.ValueBoolean}

	name := long[1]
	if strings.HasPrefix(name, "no-") {
		desc.IsNegated = true
		name = strings.TrimPrefix(name, "no-")
	}

	desc.Key = camelCase(name)

	switch {
	case strings.Contains(flagSpec, "<"):
		desc.ValueType = m.ValueString
		desc.Required = true
	case strings.Contains(flagSpec, "["):
		desc.ValueType = m.ValueString
		desc.IsOptionalValue = true
	}

	for _, arg := range splitArgs(match[2]) {
		applyOptionArg(&desc, arg)
	}

	return desc, true
}

func applyOptionArg(desc *m.OptionDescriptor, arg string) {
	if stringLitRe.MatchString(arg) {
		content := stripQuotes(arg)

		if desc.Description == "" {
			desc.Description = content
			return
		}

		if desc.ValueType != m.ValueBoolean {
			desc.HasDefault = true
			desc.DefaultLiteral = `"` + content + `"`
		}

		return
	}

	if numericParsers[strings.TrimSpace(strings.TrimSuffix(arg, "()"))] {
		if desc.ValueType != m.ValueBoolean {
			desc.ValueType = m.ValueNumber
		}

		return
	}

	// A bare literal default stays string-typed unless a numeric parser
	// reference already typed the flag.
	if numberLitRe.MatchString(arg) && desc.ValueType != m.ValueBoolean {
		desc.HasDefault = true
		if desc.ValueType == m.ValueNumber {
			desc.DefaultLiteral = arg
		} else {
			desc.DefaultLiteral = `"` + arg + `"`
		}
	}
}

// ParseArgumentLine parses one standalone .argument(...) chain line. An
// angle-bracket name declares a mandatory value; a square-bracket name is
// optional.
func ParseArgumentLine(line string) (m.ArgumentDescriptor, bool) {
	match := argumentArgsRe.FindStringSubmatch(line)
	if match == nil {
		return m.ArgumentDescriptor{}, false
	}

	spec := stripQuotes(match[1])
	desc := m.ArgumentDescriptor{
		Description: stripQuotes(match[2]),
		Required:    strings.HasPrefix(spec, "<"),
	}

	desc.Name = camelCase(strings.Trim(spec, "<>[]."))
	if desc.Name == "" {
		return m.ArgumentDescriptor{}, false
	}

	return desc, true
}

// SynthesizeSchema converts descriptors into one declarative schema
// block. Positional arguments precede flags; key collisions resolve
// last-write-wins so the emitted schema has unique keys.
func SynthesizeSchema(args []m.ArgumentDescriptor, opts []m.OptionDescriptor, indent string) string {
	fields := make([]m.SchemaField, 0, len(args)+len(opts))

	for _, arg := range args {
		fields = upsertField(fields, argumentField(arg))
	}

	for _, opt := range opts {
		fields = upsertField(fields, optionField(opt))
	}

	var b strings.Builder

	b.WriteString(indent + "const optionsSchema = z.object({\n")

	for _, field := range fields {
		b.WriteString(indent + "  " + field.Key + ": " + field.Expr + ",\n")
	}

	b.WriteString(indent + "});")

	return b.String()
}

func argumentField(arg m.ArgumentDescriptor) m.SchemaField {
	expr := "z.string()"
	if !arg.Required {
		expr += ".optional()"
	}

	return m.SchemaField{Key: arg.Name, Expr: expr + describe(arg.Description)}
}

func optionField(opt m.OptionDescriptor) m.SchemaField {
	var expr string

	switch opt.ValueType {
	case m.ValueBoolean:
		if opt.IsNegated {
			expr = "z.boolean().default(true)"
		} else {
			expr = "z.boolean().default(false)"
		}
	case m.ValueNumber:
		expr = "z.number()"
	default:
		expr = "z.string()"
	}

	if opt.ValueType != m.ValueBoolean {
		switch {
		case opt.HasDefault:
			expr += ".default(" + opt.DefaultLiteral + ")"
		case opt.IsOptionalValue:
			expr += ".optional()"
		case !opt.Required:
			expr += ".optional()"
		}
	}

	return m.SchemaField{Key: opt.Key, Expr: expr + describe(opt.Description)}
}

func upsertField(fields []m.SchemaField, field m.SchemaField) []m.SchemaField {
	for i := range fields {
		if fields[i].Key == field.Key {
			fields[i] = field
			return fields
		}
	}

	return append(fields, field)
}

func describe(text string) string {
	if text == "" {
		return ""
	}

	return `.describe("` + text + `")`
}

// RewriteCommandOptions extracts the builder chain's descriptors, removes
// the imperative calls, and inserts the synthesized schema block above
// the statement that started the chain. Files reaching this point have
// already passed the complexity gate, so exactly one static chain exists.
func RewriteCommandOptions(file *m.SourceFile) bool {
	lines := strings.Split(file.Text, "\n")

	// All-or-nothing: a builder call the parsers cannot represent makes
	// the whole phase a no-op rather than leaving a half-removed chain.
	for _, line := range lines {
		if !chainLineRe.MatchString(line) {
			continue
		}

		if _, ok := ParseArgumentLine(line); ok {
			continue
		}

		if _, ok := ParseOptionLine(line); !ok {
			return false
		}
	}

	var args []m.ArgumentDescriptor

	var opts []m.OptionDescriptor

	firstChainLine := -1
	keep := make([]string, 0, len(lines))

	for i, line := range lines {
		if arg, ok := ParseArgumentLine(line); ok {
			args = append(args, arg)

			if firstChainLine == -1 {
				firstChainLine = i
			}

			continue
		}

		if opt, ok := ParseOptionLine(line); ok {
			opts = append(opts, opt)

			if firstChainLine == -1 {
				firstChainLine = i
			}

			continue
		}

		keep = append(keep, line)
	}

	if len(args) == 0 && len(opts) == 0 {
		return false
	}

	// Nothing before the statement start is ever removed, so indices in
	// the kept slice line up with the original until that point.
	insertAt := chainStatementStart(lines, firstChainLine)
	if insertAt < 0 {
		insertAt = 0
	}

	indent := leadingWhitespace(lines[insertAt])
	block := SynthesizeSchema(args, opts, indent)

	rebuilt := make([]string, 0, len(keep)+2)
	rebuilt = append(rebuilt, keep[:insertAt]...)
	rebuilt = append(rebuilt, block, "")
	rebuilt = append(rebuilt, keep[insertAt:]...)

	file.Text = strings.Join(rebuilt, "\n")

	return true
}

// chainStatementStart walks back from the first builder call to the line
// that begins the statement: the nearest preceding line that is not
// itself a chained call.
func chainStatementStart(lines []string, chainLine int) int {
	for i := chainLine; i >= 0; i-- {
		trimmed := strings.TrimSpace(lines[i])
		if !strings.HasPrefix(trimmed, ".") && trimmed != "" {
			return i
		}
	}

	return 0
}

func leadingWhitespace(line string) string {
	return line[:len(line)-len(strings.TrimLeft(line, " \t"))]
}

// splitArgs splits a trailing argument list on top-level commas; nested
// parentheses and string literals keep their commas.
func splitArgs(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	var parts []string

	depth := 0

	var quote byte

	start := 0

	for i := 0; i < len(raw); i++ {
		c := raw[i]

		switch {
		case quote != 0:
			if c == quote && (i == 0 || raw[i-1] != '\\') {
				quote = 0
			}
		case c == '\'' || c == '"' || c == '`':
			quote = c
		case c == '(' || c == '[' || c == '{':
			depth++
		case c == ')' || c == ']' || c == '}':
			depth--
		case c == ',' && depth == 0:
			parts = append(parts, strings.TrimSpace(raw[start:i]))
			start = i + 1
		}
	}

	if tail := strings.TrimSpace(raw[start:]); tail != "" {
		parts = append(parts, tail)
	}

	return parts
}

func stripQuotes(lit string) string {
	if len(lit) >= 2 {
		return lit[1 : len(lit)-1]
	}

	return lit
}

func camelCase(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == '_' || r == ' '
	})
	if len(parts) == 0 {
		return ""
	}

	out := strings.ToLower(parts[0])
	for _, part := range parts[1:] {
		if part == "" {
			continue
		}

		out += strings.ToUpper(part[:1]) + strings.ToLower(part[1:])
	}

	return out
}
