package export

import (
	"fmt"
	"strings"
	"testing"

	"github.com/ianwalkeruk/c2draw/pkg/model"
)

func contextDiagram(t *testing.T) (*model.Diagram, model.ID, model.ID) {
	t.Helper()
	d := model.New("Online Shop", "Who talks to the shop", model.SystemContext)
	user := d.AddElement(model.NewPerson("Customer", "Buys things", false, model.Position{}))
	shop := d.AddElement(model.NewSoftwareSystem("Shop", "Sells things", false, model.Position{}))
	if _, err := d.AddRelationship(user, shop, "Places orders", "HTTPS"); err != nil {
		t.Fatal(err)
	}
	return d, user, shop
}

func containerDiagram(t *testing.T) *model.Diagram {
	t.Helper()
	d := model.New("Shop Containers", "", model.Container)
	web := d.AddElement(model.NewContainer("Web App", "Storefront", model.ContainerType{Kind: model.ContainerWebApplication}, "React", model.Position{}))
	db := d.AddElement(model.NewContainer("Orders DB", "Order history", model.ContainerType{Kind: model.ContainerDatabase}, "PostgreSQL", model.Position{}))
	q := d.AddElement(model.NewContainer("Events", "Order events", model.ContainerType{Kind: model.ContainerQueue}, "", model.Position{}))
	d.AddElement(model.NewContainer("Mailer", "Sends receipts", model.OtherContainer("Lambda"), "", model.Position{}))
	if _, err := d.AddRelationship(web, db, "Reads from", "JDBC"); err != nil {
		t.Fatal(err)
	}
	if _, err := d.AddRelationship(web, q, "Publishes to", ""); err != nil {
		t.Fatal(err)
	}
	return d
}

func TestPlantUMLContext(t *testing.T) {
	d, user, shop := contextDiagram(t)
	out := PlantUML{}.Render(d)

	if !strings.HasPrefix(out, "@startuml\n") {
		t.Error("output should start with @startuml")
	}
	if !strings.HasSuffix(out, "@enduml\n") {
		t.Error("output should end with @enduml")
	}
	for _, want := range []string{
		"!include https://raw.githubusercontent.com/plantuml-stdlib/C4-PlantUML/master/C4_Context.puml",
		"title Online Shop",
		"' Who talks to the shop",
		fmt.Sprintf("Person(%s, \"Customer\", \"Buys things\")", model.Alias(user)),
		fmt.Sprintf("System(%s, \"Shop\", \"Sells things\")", model.Alias(shop)),
		fmt.Sprintf("Rel(%s, %s, \"Places orders\", \"HTTPS\")", model.Alias(user), model.Alias(shop)),
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPlantUMLContainerMacros(t *testing.T) {
	d := containerDiagram(t)
	out := PlantUML{}.Render(d)

	if !strings.Contains(out, "C4_Container.puml") {
		t.Error("container diagram should include C4_Container.puml")
	}
	for _, want := range []string{
		`Container(`,
		`"Web App", "Storefront", "React")`,
		`ContainerDb(`,
		`"Orders DB", "Order history", "PostgreSQL")`,
		`ContainerQueue(`,
		`"Events", "Order events")`,
		// Other(label) with no technology falls back to the label.
		`"Mailer", "Sends receipts", "Lambda")`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPlantUMLExternalMacros(t *testing.T) {
	d := model.New("d", "", model.SystemContext)
	d.AddElement(model.NewPerson("Auditor", "", true, model.Position{}))
	d.AddElement(model.NewSoftwareSystem("Email", "", true, model.Position{}))
	out := PlantUML{}.Render(d)

	if !strings.Contains(out, "Person_Ext(") {
		t.Error("external person should use Person_Ext")
	}
	if !strings.Contains(out, "System_Ext(") {
		t.Error("external system should use System_Ext")
	}
}

func TestPlantUMLEscaping(t *testing.T) {
	d := model.New(`He said "hi"`, "line one\nline two", model.SystemContext)
	d.AddElement(model.NewPerson(`The "User"`, "first\r\nsecond", false, model.Position{}))
	out := PlantUML{}.Render(d)

	if !strings.Contains(out, `title He said \"hi\"`) {
		t.Errorf("title not escaped:\n%s", out)
	}
	if !strings.Contains(out, `' line one line two`) {
		t.Errorf("description newline not collapsed:\n%s", out)
	}
	if !strings.Contains(out, `"The \"User\""`) {
		t.Errorf("name not escaped:\n%s", out)
	}
	if !strings.Contains(out, `"first second"`) {
		t.Errorf("CRLF not collapsed:\n%s", out)
	}
}

func TestPlantUMLSelfLoop(t *testing.T) {
	d := model.New("d", "", model.SystemContext)
	sys := d.AddElement(model.NewSoftwareSystem("Scheduler", "", false, model.Position{}))
	if _, err := d.AddRelationship(sys, sys, "Requeues failed jobs", ""); err != nil {
		t.Fatal(err)
	}
	out := PlantUML{}.Render(d)

	want := fmt.Sprintf("Rel(%s, %s, \"Requeues failed jobs\")", model.Alias(sys), model.Alias(sys))
	if !strings.Contains(out, want) {
		t.Errorf("self-loop should render as an ordinary Rel line:\n%s", out)
	}
}

func TestPlantUMLDeterministic(t *testing.T) {
	d, _, _ := contextDiagram(t)
	a := PlantUML{}.Render(d)
	b := PlantUML{}.Render(d)
	if a != b {
		t.Error("Render should be byte-identical for the same diagram")
	}
}

func TestPlantUMLEmptyDiagram(t *testing.T) {
	d := model.New("Empty", "", model.SystemContext)
	out := PlantUML{}.Render(d)

	if !strings.HasPrefix(out, "@startuml\n") || !strings.HasSuffix(out, "@enduml\n") {
		t.Errorf("empty diagram should still be a complete document:\n%s", out)
	}
	if !strings.Contains(out, "title Empty") {
		t.Error("empty diagram should keep its title")
	}
}

func TestPlantUMLFileExtension(t *testing.T) {
	if got := (PlantUML{}).FileExtension(); got != "puml" {
		t.Errorf("FileExtension() = %q, want %q", got, "puml")
	}
}
