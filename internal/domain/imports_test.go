package domain

import (
	"strings"
	"testing"
)

func TestEnsureImport_MergesIntoExistingStatement(t *testing.T) {
	text := strings.Join([]string{
		`import { readFileSync } from "node:fs";`,
		`import { ValidationError } from "@outfitter/result";`,
		``,
		`export function load() {}`,
	}, "\n")

	got := EnsureImport(text, "@outfitter/result", []string{"Result", "InternalError"})

	want := `import { InternalError, Result, ValidationError } from "@outfitter/result";`
	if !strings.Contains(got, want) {
		t.Fatalf("merged statement missing:\n%s", got)
	}

	if strings.Count(got, "@outfitter/result") != 1 {
		t.Fatalf("module must appear in exactly one statement:\n%s", got)
	}
}

func TestEnsureImport_PreservesSingleQuoteStyle(t *testing.T) {
	got := EnsureImport(`import { Result } from '@outfitter/result';`, "@outfitter/result", []string{"InternalError"})

	if !strings.Contains(got, `from '@outfitter/result';`) {
		t.Fatalf("quote style must follow the existing statement:\n%s", got)
	}
}

func TestEnsureImport_InsertsAfterLastImport(t *testing.T) {
	text := strings.Join([]string{
		`import { Command } from "commander";`,
		`import path from "node:path";`,
		``,
		`const program = new Command();`,
	}, "\n")

	got := EnsureImport(text, "zod", []string{"z"})
	lines := strings.Split(got, "\n")

	if lines[2] != `import { z } from "zod";` {
		t.Fatalf("new statement must follow the last import, got line %q in:\n%s", lines[2], got)
	}
}

func TestEnsureImport_InsertsAfterMultilineImport(t *testing.T) {
	text := strings.Join([]string{
		`import {`,
		`  readFileSync,`,
		`  writeFileSync,`,
		`} from "node:fs";`,
		``,
		`const raw = readFileSync("x");`,
	}, "\n")

	got := EnsureImport(text, "zod", []string{"z"})
	lines := strings.Split(got, "\n")

	if lines[4] != `import { z } from "zod";` {
		t.Fatalf("new statement must follow the closing line of the last import, got line %q in:\n%s", lines[4], got)
	}

	if lines[3] != `} from "node:fs";` {
		t.Fatalf("existing statement must stay intact:\n%s", got)
	}
}

func TestEnsureImport_MergesMultilineImportOfSameModule(t *testing.T) {
	text := strings.Join([]string{
		`import {`,
		`  ValidationError,`,
		`} from "@outfitter/result";`,
		``,
		`export function check() {}`,
	}, "\n")

	got := EnsureImport(text, "@outfitter/result", []string{"Result", "InternalError"})

	want := `import { InternalError, Result, ValidationError } from "@outfitter/result";`
	if !strings.Contains(got, want) {
		t.Fatalf("merged statement missing:\n%s", got)
	}

	if strings.Count(got, "@outfitter/result") != 1 {
		t.Fatalf("module must appear in exactly one statement:\n%s", got)
	}
}

func TestEnsureImport_NoImportsInsertsAtTop(t *testing.T) {
	got := EnsureImport("const x = 1;", "zod", []string{"z"})

	lines := strings.Split(got, "\n")
	if lines[0] != `import { z } from "zod";` || lines[1] != "const x = 1;" {
		t.Fatalf("unexpected layout:\n%s", got)
	}
}

func TestEnsureImport_Idempotent(t *testing.T) {
	once := EnsureImport("const x = 1;", "@outfitter/result", []string{"Result"})
	twice := EnsureImport(once, "@outfitter/result", []string{"Result"})

	if once != twice {
		t.Fatalf("second application must not change the text:\nonce:\n%s\ntwice:\n%s", once, twice)
	}
}

func TestEnsureImport_NoSymbolsIsNoOp(t *testing.T) {
	text := "const x = 1;"
	if got := EnsureImport(text, "zod", nil); got != text {
		t.Fatalf("empty symbol list must not touch the file:\n%s", got)
	}
}
