package domain

import (
	"testing"

	m "github.com/outfitter-dev/recast/internal/model"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		text string
		want m.Classification
	}{
		{
			name: "no pattern",
			text: "const x = 1;\nexport default x;\n",
			want: m.ClassNoPattern,
		},
		{
			name: "raise idiom",
			text: "function f() {\n  throw new Error(\"bad\");\n}\n",
			want: m.ClassTransformable,
		},
		{
			name: "already migrated raises",
			text: "function f() {\n  return Result.err(InternalError.create(\"bad\"));\n}\n",
			want: m.ClassAlreadyMigrated,
		},
		{
			name: "already migrated schema",
			text: "const optionsSchema = z.object({\n  force: z.boolean().default(false),\n});\n",
			want: m.ClassAlreadyMigrated,
		},
		{
			name: "partial migration keeps going",
			text: "function f() {\n  return Result.err(InternalError.create(\"bad\"));\n}\nfunction g() {\n  throw new Error(\"more\");\n}\n",
			want: m.ClassTransformable,
		},
		{
			name: "single builder chain",
			text: "const program = new Command(\"x\")\n  .option(\"-f, --force\", \"force it\")\n  .action(run);\n",
			want: m.ClassTransformable,
		},
		{
			name: "two command declarations",
			text: "const a = new Command(\"a\")\n  .option(\"-f, --force\", \"f\");\nconst b = new Command(\"b\")\n  .option(\"-q, --quiet\", \"q\");\n",
			want: m.ClassTooComplex,
		},
		{
			name: "builder call inside loop",
			text: "for (const flag of flags) {\n  cmd.option(flag.spec, flag.desc);\n}\n",
			want: m.ClassTooComplex,
		},
		{
			name: "builder call inside iteration callback",
			text: "flags.forEach((flag) => {\n  cmd.option(flag.spec, flag.desc);\n});\n",
			want: m.ClassTooComplex,
		},
		{
			name: "inline chain cannot be rewritten line-wise",
			text: "program.option(\"-f, --force\", \"f\").option(\"-q, --quiet\", \"q\");\n",
			want: m.ClassTooComplex,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Classify(tc.text)
			if got != tc.want {
				t.Fatalf("Classify() = %s, want %s", got, tc.want)
			}
		})
	}
}

// A fully migrated file may contain several schema declarations that
// would trip the complexity gate; the migrated check must win.
func TestClassify_MigratedBeforeTooComplex(t *testing.T) {
	text := "const aSchema = z.object({ force: z.boolean().default(false) });\n" +
		"const bSchema = z.object({ quiet: z.boolean().default(false) });\n"

	if got := Classify(text); got != m.ClassAlreadyMigrated {
		t.Fatalf("Classify() = %s, want already-migrated", got)
	}
}
