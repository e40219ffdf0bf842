package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/ianwalkeruk/c2draw/pkg/model"
)

// ToDOT converts a diagram to Graphviz DOT format for a quick
// non-interactive preview of the canvas. The resulting string can be
// rasterized with [RenderSVG] or [RenderPNG].
//
// External elements are drawn with dashed outlines and grey fill to
// distinguish them from elements inside the system boundary.
func ToDOT(d *model.Diagram) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.6;\n")
	buf.WriteString("  nodesep=0.4;\n")
	buf.WriteString("\n")

	for _, el := range d.Elements() {
		attrs := dotAttrs(el)
		fmt.Fprintf(&buf, "  %s [%s];\n", model.Alias(el.ID), strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, r := range d.Relationships() {
		label := r.Description
		if r.Technology != "" {
			label = fmt.Sprintf("%s\n[%s]", r.Description, r.Technology)
		}
		fmt.Fprintf(&buf, "  %s -> %s [label=%q];\n", model.Alias(r.SourceID), model.Alias(r.TargetID), label)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func dotAttrs(el model.Element) []string {
	label := el.Name + "\n[" + elementTypeLabel(el) + "]"
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if el.External {
		attrs = append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=lightgrey")
	}
	return attrs
}

func elementTypeLabel(el model.Element) string {
	if el.Kind == model.KindContainer {
		if el.Technology != "" {
			return el.ContainerType.String() + ": " + el.Technology
		}
		return el.ContainerType.String()
	}
	return el.Kind.String()
}

// RenderSVG rasterizes a DOT preview to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	return renderFormat(dot, graphviz.SVG)
}

// RenderPNG rasterizes a DOT preview to PNG using Graphviz.
func RenderPNG(dot string) ([]byte, error) {
	return renderFormat(dot, graphviz.PNG)
}

func renderFormat(dot string, format graphviz.Format) ([]byte, error) {
	gv := graphviz.New()
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
