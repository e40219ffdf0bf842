// Package export renders diagrams into textual diagram languages.
//
// Two generators are provided: [PlantUML] targets the C4-PlantUML macro
// library and [Mermaid] targets Mermaid's C4 dialect. Both are pure
// functions over a diagram: they never mutate it, never fail for any
// structurally valid input, and produce byte-identical output for the
// same unmutated diagram. Elements render in the diagram's insertion
// order and relationships in sequence order, so exports diff cleanly.
//
// A Graphviz DOT generator plus SVG/PNG rasterization is included as a
// non-interactive preview of the canvas (see [ToDOT]).
package export

import (
	"strings"

	"github.com/ianwalkeruk/c2draw/pkg/model"
)

// Exporter generates one output format from a diagram.
type Exporter interface {
	// Render produces the complete export text. It must not mutate d.
	Render(d *model.Diagram) string

	// FileExtension returns the conventional extension, without a dot.
	FileExtension() string
}

// escape neutralizes the quote delimiter and line breaks shared by both
// target grammars. An embedded quote or newline in a name, description
// or technology string must never corrupt the generated document.
func escape(s string) string {
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return s
}
