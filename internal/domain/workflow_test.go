package domain

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/outfitter-dev/recast/internal/adapter"
	m "github.com/outfitter-dev/recast/internal/model"
)

const throwsFixture = `import { readFileSync } from "node:fs";

export function loadReport(path) {
  const raw = readFileSync(path, "utf8");
  if (raw.length === 0) {
    throw new Error("empty report file");
  }
  return JSON.parse(raw);
}
`

func TestRun_RewritesThrowsOnDisk(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"report.ts": throwsFixture})

	w := NewWorkflow(adapter.NewLocalSourceFSAdapter())

	result, err := w.Run(RunArgs{Paths: []m.Path{m.Path(root)}})
	if err != nil {
		t.Fatal(err)
	}

	if len(result.ChangedFiles) != 1 || len(result.Errors) != 0 {
		t.Fatalf("unexpected result %+v", result)
	}

	// Reported paths are the given root joined with the relative path.
	if want := filepath.ToSlash(filepath.Join(root, "report.ts")); result.ChangedFiles[0] != want {
		t.Fatalf("reported path %q, want %q", result.ChangedFiles[0], want)
	}

	rewritten, err := os.ReadFile(filepath.Join(root, "report.ts"))
	if err != nil {
		t.Fatal(err)
	}

	text := string(rewritten)
	for _, want := range []string{
		`return Result.err(InternalError.create("empty report file"));`,
		`return Result.ok(JSON.parse(raw));`,
		`import { InternalError, Result } from "@outfitter/result";`,
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("rewritten file missing %q:\n%s", want, text)
		}
	}

	if strings.Contains(text, "throw new") {
		t.Fatalf("raise construct survived the rewrite:\n%s", text)
	}
}

func TestRun_SecondPassIsIdempotent(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"report.ts": throwsFixture})

	w := NewWorkflow(adapter.NewLocalSourceFSAdapter())

	if _, err := w.Run(RunArgs{Paths: []m.Path{m.Path(root)}}); err != nil {
		t.Fatal(err)
	}

	first, err := os.ReadFile(filepath.Join(root, "report.ts"))
	if err != nil {
		t.Fatal(err)
	}

	result, err := w.Run(RunArgs{Paths: []m.Path{m.Path(root)}})
	if err != nil {
		t.Fatal(err)
	}

	if len(result.ChangedFiles) != 0 {
		t.Fatalf("second run must not report changes: %+v", result)
	}

	second, err := os.ReadFile(filepath.Join(root, "report.ts"))
	if err != nil {
		t.Fatal(err)
	}

	if string(first) != string(second) {
		t.Fatalf("second run altered the file:\n%s", string(second))
	}
}

func TestRun_DryRunWritesNothing(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"report.ts": throwsFixture})

	w := NewWorkflow(adapter.NewLocalSourceFSAdapter())

	result, err := w.Run(RunArgs{Paths: []m.Path{m.Path(root)}, DryRun: true})
	if err != nil {
		t.Fatal(err)
	}

	if len(result.ChangedFiles) != 1 {
		t.Fatalf("dry run must still report would-be changes: %+v", result)
	}

	onDisk, err := os.ReadFile(filepath.Join(root, "report.ts"))
	if err != nil {
		t.Fatal(err)
	}

	if string(onDisk) != throwsFixture {
		t.Fatalf("dry run modified the file:\n%s", string(onDisk))
	}
}

func TestRun_SkipsMigratedAndTooComplex(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"migrated.ts": `import { Result } from "@outfitter/result";
export function ok() {
  return Result.ok(1);
}
`,
		"complex.ts": `const a = new Command("a").option("-f, --force", "x");
const b = new Command("b");
`,
		"plain.ts": "export const x = 1;\n",
	})

	w := NewWorkflow(adapter.NewLocalSourceFSAdapter())

	result, err := w.Run(RunArgs{Paths: []m.Path{m.Path(root)}})
	if err != nil {
		t.Fatal(err)
	}

	if len(result.ChangedFiles) != 0 || len(result.Errors) != 0 {
		t.Fatalf("unexpected result %+v", result)
	}

	// Pattern-free files are not reported at all.
	if len(result.SkippedFiles) != 2 {
		t.Fatalf("expected migrated and too-complex skips only: %+v", result)
	}
}

// failingReadFS makes one file unreadable while delegating everything
// else, so per-file error isolation can be observed.
type failingReadFS struct {
	adapter.SourceFSAdapter
	failSuffix string
}

func (f *failingReadFS) ReadFile(path m.Path) ([]byte, error) {
	if strings.HasSuffix(string(path), f.failSuffix) {
		return nil, errors.New("injected read failure")
	}

	return f.SourceFSAdapter.ReadFile(path)
}

func TestRun_ReadErrorIsIsolatedPerFile(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"bad.ts":  throwsFixture,
		"good.ts": throwsFixture,
	})

	fs := &failingReadFS{SourceFSAdapter: adapter.NewLocalSourceFSAdapter(), failSuffix: "bad.ts"}
	w := NewWorkflow(fs)

	result, err := w.Run(RunArgs{Paths: []m.Path{m.Path(root)}})
	if err != nil {
		t.Fatal(err)
	}

	if len(result.Errors) != 1 || !strings.Contains(result.Errors[0], "injected read failure") {
		t.Fatalf("expected one isolated error: %+v", result)
	}

	if len(result.ChangedFiles) != 1 || !strings.HasSuffix(result.ChangedFiles[0], "good.ts") {
		t.Fatalf("remaining files must still be processed: %+v", result)
	}
}

func TestScan_ClassifiesWithoutWriting(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"raise.ts":    throwsFixture,
		"migrated.ts": `const r = Result.ok(1);`,
		"plain.ts":    "export const x = 1;\n",
	})

	w := NewWorkflow(adapter.NewLocalSourceFSAdapter())

	for _, threads := range []int{1, 4} {
		statuses, err := w.Scan(ScanArgs{Paths: []m.Path{m.Path(root)}, Threads: threads})
		if err != nil {
			t.Fatal(err)
		}

		SortStatuses(statuses)

		if len(statuses) != 3 {
			t.Fatalf("threads=%d: expected 3 statuses, got %+v", threads, statuses)
		}

		byName := map[string]m.Classification{}
		for _, s := range statuses {
			byName[filepath.Base(string(s.Path))] = s.Classification
		}

		if byName["raise.ts"] != m.ClassTransformable ||
			byName["migrated.ts"] != m.ClassAlreadyMigrated ||
			byName["plain.ts"] != m.ClassNoPattern {
			t.Fatalf("threads=%d: unexpected classifications %+v", threads, byName)
		}
	}

	onDisk, err := os.ReadFile(filepath.Join(root, "raise.ts"))
	if err != nil {
		t.Fatal(err)
	}

	if string(onDisk) != throwsFixture {
		t.Fatal("scan must never write files")
	}
}

func TestScan_ReadErrorLandsInStatus(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"bad.ts": throwsFixture})

	fs := &failingReadFS{SourceFSAdapter: adapter.NewLocalSourceFSAdapter(), failSuffix: "bad.ts"}
	w := NewWorkflow(fs)

	statuses, err := w.Scan(ScanArgs{Paths: []m.Path{m.Path(root)}, Threads: 2})
	if err != nil {
		t.Fatal(err)
	}

	if len(statuses) != 1 || statuses[0].Err == "" {
		t.Fatalf("read failure must surface on the status: %+v", statuses)
	}
}
