// Package nbgen is the Composition Root for the nbgen application.
//
// It connects the core domain (plans, cells, notebooks) with the
// infrastructure adapters (filesystem persistence, plan watching) using the
// Hexagonal Architecture pattern.
//
// Philosophy:
//
// nbgen is a one-shot generator with a declarative heart. A notebook is not
// edited into existence, it is assembled: an ordered content plan (YAML)
// describes every cell, and the generator emits a schema-valid nbformat 4.4
// document in a single atomic write. The same plan always produces the same
// bytes.
//
// Features:
//
//   - **Hexagonal Architecture**: Domain model is isolated from persistence details.
//   - **Plans as Data**: Cell content lives in versionable YAML plans, not in code.
//   - **Tagged Cells**: Markdown and code cells are one variant type with the
//     nbformat code-only fields handled during serialization.
//   - **Deterministic Output**: Struct-ordered metadata and a fixed indent make
//     repeated runs byte-identical.
//   - **Atomic Writes**: Temp file + rename; a failed write never truncates a
//     previous notebook.
//   - **Reactive (optional)**: Plan files can be watched and regenerated on change.
//
// Usage:
//
//	// Initialize service with functional options
//	svc, err := nbgen.New(".", nbgen.WithLogger(logger))
//
//	// Assemble and persist the bundled reference plan
//	plan, _ := nbgen.DefaultPlan()
//	result, err := svc.Generate(ctx, plan, "")
package nbgen
