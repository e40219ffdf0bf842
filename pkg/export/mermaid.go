package export

import (
	"fmt"
	"strings"

	"github.com/ianwalkeruk/c2draw/pkg/model"
)

// Mermaid renders diagrams in Mermaid's C4 dialect. The structure
// mirrors [PlantUML] but the grammar uses a bare header keyword and
// indentation instead of an end marker.
type Mermaid struct{}

// FileExtension returns "mmd".
func (Mermaid) FileExtension() string { return "mmd" }

// Render produces the C4Context/C4Container document for d.
func (m Mermaid) Render(d *model.Diagram) string {
	var b strings.Builder

	b.WriteString(m.header(d.Type))
	b.WriteByte('\n')
	if d.Name != "" {
		fmt.Fprintf(&b, "    title %s\n", escape(d.Name))
	}
	if d.Description != "" {
		fmt.Fprintf(&b, "    %%%% %s\n", escape(d.Description))
	}

	b.WriteByte('\n')
	for _, el := range d.Elements() {
		b.WriteString(m.element(el))
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	for _, r := range d.Relationships() {
		b.WriteString(m.relationship(r))
		b.WriteByte('\n')
	}

	return b.String()
}

func (Mermaid) header(t model.DiagramType) string {
	if t == model.Container {
		return "C4Container"
	}
	return "C4Context"
}

func (Mermaid) element(el model.Element) string {
	alias := model.Alias(el.ID)
	name := escape(el.Name)
	desc := escape(el.Description)

	switch el.Kind {
	case model.KindPerson:
		if el.External {
			return fmt.Sprintf("    Person_Ext(%s, \"%s\", \"%s\")", alias, name, desc)
		}
		return fmt.Sprintf("    Person(%s, \"%s\", \"%s\")", alias, name, desc)
	case model.KindSoftwareSystem:
		if el.External {
			return fmt.Sprintf("    System_Ext(%s, \"%s\", \"%s\")", alias, name, desc)
		}
		return fmt.Sprintf("    System(%s, \"%s\", \"%s\")", alias, name, desc)
	default:
		macro := "Container"
		switch el.ContainerType.Kind {
		case model.ContainerDatabase:
			macro = "ContainerDb"
		case model.ContainerQueue:
			macro = "ContainerQueue"
		}
		tech := escape(containerTech(el))
		if tech == "" {
			return fmt.Sprintf("    %s(%s, \"%s\", \"%s\")", macro, alias, name, desc)
		}
		return fmt.Sprintf("    %s(%s, \"%s\", \"%s\", \"%s\")", macro, alias, name, desc, tech)
	}
}

// relationship emits a directed Rel line. The relationship model is
// directed, so BiRel is never used, including for self-loops.
func (Mermaid) relationship(r model.Relationship) string {
	src := model.Alias(r.SourceID)
	dst := model.Alias(r.TargetID)
	desc := escape(r.Description)
	if r.Technology == "" {
		return fmt.Sprintf("    Rel(%s, %s, \"%s\")", src, dst, desc)
	}
	return fmt.Sprintf("    Rel(%s, %s, \"%s\", \"%s\")", src, dst, desc, escape(r.Technology))
}
