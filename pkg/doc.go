// Package pkg provides the core libraries for c2draw diagram editing and export.
//
// # Overview
//
// c2draw works with C4-model architecture diagrams stored as versioned .c4d
// JSON documents. The pkg directory is organized into:
//
//  1. [model] - Diagram data model (elements, relationships, the aggregate)
//  2. [codec] - Versioned .c4d JSON persistence
//  3. [export] - PlantUML and Mermaid generators plus a Graphviz preview
//  4. [pipeline] - Load → render orchestration used by CLI and HTTP
//  5. [cache] - Content-hash keyed artifact cache
//  6. [errors] - Structured error codes for the host layer
//  7. [observability] - Optional instrumentation hooks
//
// # Architecture
//
// The typical data flow:
//
//	.c4d document (file or request body)
//	         ↓
//	    [codec] package (decode + validate invariants)
//	         ↓
//	    [model] package (Diagram aggregate)
//	         ↓
//	    [export] package (PlantUML / Mermaid / DOT / SVG / PNG)
//	         ↓
//	    artifact files or HTTP response
//
// # Quick Start
//
// Load a diagram and render it as C4-PlantUML:
//
//	import (
//	    "github.com/ianwalkeruk/c2draw/pkg/codec"
//	    "github.com/ianwalkeruk/c2draw/pkg/export"
//	)
//
//	d, err := codec.ReadFile("shop.c4d")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	puml := export.PlantUML{}.Render(d)
//
// Or run the full pipeline with caching:
//
//	runner := pipeline.NewRunner(cache, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Input:   "shop.c4d",
//	    Formats: []string{pipeline.FormatPlantUML, pipeline.FormatSVG},
//	})
//
// # Main Packages
//
// [model] - The diagram core: Element (person, software system, container
// with typed category), Relationship (directed, described), and the Diagram
// aggregate that owns them and maintains referential integrity. Elements keep
// insertion order, which fixes export order.
//
// [codec] - The .c4d document format. Strict decoding: unsupported versions,
// malformed structure, and dangling relationship references all fail the load
// rather than truncating the diagram. Encoding is deterministic so repeated
// saves diff cleanly.
//
// [export] - Pure diagram-to-text generators for the C4-PlantUML macro
// library and Mermaid's C4 dialect, plus a Graphviz DOT preview with SVG/PNG
// rasterization through goccy/go-graphviz.
//
// [pipeline] - Shared load → render pipeline with per-format artifact
// generation, raster caching, and timing stats. Used by the export command
// and the HTTP endpoint so both behave identically.
//
// [cache] - File-backed cache under the XDG cache directory, keyed by a
// SHA-256 of the encoded document plus the output format. A null
// implementation disables caching.
//
// [errors] - Machine-readable error codes (INVALID_FORMAT, DOCUMENT_*, ...)
// with wrapping helpers, used at the CLI and HTTP boundaries.
//
// [observability] - Hook interfaces with no-op defaults for instrumenting
// pipeline and cache events without pulling a metrics backend into the
// libraries.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/export/...   # Specific package
//
// [model]: https://pkg.go.dev/github.com/ianwalkeruk/c2draw/pkg/model
// [codec]: https://pkg.go.dev/github.com/ianwalkeruk/c2draw/pkg/codec
// [export]: https://pkg.go.dev/github.com/ianwalkeruk/c2draw/pkg/export
// [pipeline]: https://pkg.go.dev/github.com/ianwalkeruk/c2draw/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/ianwalkeruk/c2draw/pkg/cache
// [errors]: https://pkg.go.dev/github.com/ianwalkeruk/c2draw/pkg/errors
// [observability]: https://pkg.go.dev/github.com/ianwalkeruk/c2draw/pkg/observability
package pkg
