package cmd

const runLongDescription = `Run both migrations over the given paths:

  (a) exception raises become value-based results:
      throw new Error("x")  ->  return Result.err(InternalError.create("x"))
      and plain returns inside affected functions are wrapped in
      Result.ok(...).

  (b) imperative option-builder chains become declarative schema fields:
      .option("-f, --force", "desc")  ->  force: z.boolean().default(false)

Files already migrated are skipped, and files whose structure cannot be
rewritten safely (several independent builder chains, declarations
inside loops) are skipped rather than risked. Required imports are
merged or inserted exactly once per file.

With --dry-run no file is written; the report still lists every file
that would change.`

const scanLongDescription = `Classify every candidate file without rewriting anything.

Each file is reported as one of: no-pattern, already-migrated,
transformable, or too-complex. Classification of independent files runs
in parallel; the output order is always sorted by path.`
