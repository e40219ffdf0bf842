package export

import (
	"fmt"
	"strings"

	"github.com/ianwalkeruk/c2draw/pkg/model"
)

// includeBase is the C4-PlantUML macro library pulled in by the export
// preamble.
const includeBase = "https://raw.githubusercontent.com/plantuml-stdlib/C4-PlantUML/master/"

// PlantUML renders diagrams as C4-PlantUML documents.
type PlantUML struct{}

// FileExtension returns "puml".
func (PlantUML) FileExtension() string { return "puml" }

// Render produces the full @startuml..@enduml document for d.
func (p PlantUML) Render(d *model.Diagram) string {
	var b strings.Builder

	b.WriteString("@startuml\n")
	fmt.Fprintf(&b, "!include %s%s\n\n", includeBase, p.include(d.Type))
	fmt.Fprintf(&b, "title %s\n\n", escape(d.Name))
	if d.Description != "" {
		fmt.Fprintf(&b, "' %s\n\n", escape(d.Description))
	}

	for _, el := range d.Elements() {
		b.WriteString(p.element(el))
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	for _, r := range d.Relationships() {
		b.WriteString(p.relationship(r))
		b.WriteByte('\n')
	}

	b.WriteString("\n@enduml\n")
	return b.String()
}

func (PlantUML) include(t model.DiagramType) string {
	if t == model.Container {
		return "C4_Container.puml"
	}
	return "C4_Context.puml"
}

func (p PlantUML) element(el model.Element) string {
	alias := model.Alias(el.ID)
	name := escape(el.Name)
	desc := escape(el.Description)

	switch el.Kind {
	case model.KindPerson:
		if el.External {
			return fmt.Sprintf("Person_Ext(%s, \"%s\", \"%s\")", alias, name, desc)
		}
		return fmt.Sprintf("Person(%s, \"%s\", \"%s\")", alias, name, desc)
	case model.KindSoftwareSystem:
		if el.External {
			return fmt.Sprintf("System_Ext(%s, \"%s\", \"%s\")", alias, name, desc)
		}
		return fmt.Sprintf("System(%s, \"%s\", \"%s\")", alias, name, desc)
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
			return fmt.Sprintf("%s(%s, \"%s\", \"%s\")", macro, alias, name, desc)
		}
		return fmt.Sprintf("%s(%s, \"%s\", \"%s\", \"%s\")", macro, alias, name, desc, tech)
	}
}

func (PlantUML) relationship(r model.Relationship) string {
	src := model.Alias(r.SourceID)
	dst := model.Alias(r.TargetID)
	desc := escape(r.Description)
	if r.Technology == "" {
		return fmt.Sprintf("Rel(%s, %s, \"%s\")", src, dst, desc)
	}
	return fmt.Sprintf("Rel(%s, %s, \"%s\", \"%s\")", src, dst, desc, escape(r.Technology))
}

// containerTech returns the technology annotation for a container
// element. An Other(label) container with no explicit technology falls
// back to its label, so the free-text category still shows up in the
// rendered diagram.
func containerTech(el model.Element) string {
	if el.Technology != "" {
		return el.Technology
	}
	if el.ContainerType.Kind == model.ContainerOther {
		return el.ContainerType.Label
	}
	return ""
}
