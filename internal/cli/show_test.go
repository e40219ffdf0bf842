package cli

import (
	"strings"
	"testing"

	"github.com/ianwalkeruk/c2draw/pkg/model"
)

func TestRenderSummary(t *testing.T) {
	d := model.New("Shop", "The shop landscape", model.SystemContext)
	user := d.AddElement(model.NewPerson("Customer", "", true, model.Position{}))
	shop := d.AddElement(model.NewSoftwareSystem("Shop", "", false, model.Position{}))
	if _, err := d.AddRelationship(user, shop, "Places orders", "HTTPS"); err != nil {
		t.Fatal(err)
	}

	out := renderSummary(d)
	for _, want := range []string{
		"Shop",
		"System Context diagram",
		"The shop landscape",
		"Elements (2)",
		"Customer",
		"external",
		"Relationships (1)",
		"Customer → Shop",
		"Places orders",
		"[HTTPS]",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestRenderSummaryUnnamed(t *testing.T) {
	d := model.New("", "", model.Container)
	out := renderSummary(d)

	if !strings.Contains(out, "(unnamed diagram)") {
		t.Errorf("unnamed diagram should use the placeholder title:\n%s", out)
	}
	if !strings.Contains(out, "Elements (0)") || !strings.Contains(out, "Relationships (0)") {
		t.Errorf("empty sections should still render:\n%s", out)
	}
}

func TestElementTypeSummary(t *testing.T) {
	tests := []struct {
		name string
		el   model.Element
		want string
	}{
		{"person", model.NewPerson("p", "", false, model.Position{}), "Person"},
		{"system", model.NewSoftwareSystem("s", "", false, model.Position{}), "Software System"},
		{
			"container with technology",
			model.NewContainer("c", "", model.ContainerType{Kind: model.ContainerDatabase}, "PostgreSQL", model.Position{}),
			"Database: PostgreSQL",
		},
		{
			"container without technology",
			model.NewContainer("c", "", model.ContainerType{Kind: model.ContainerQueue}, "", model.Position{}),
			"Message Queue",
		},
		{
			"other container",
			model.NewContainer("c", "", model.OtherContainer("Lambda"), "", model.Position{}),
			"Lambda",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := elementTypeSummary(tt.el); got != tt.want {
				t.Errorf("elementTypeSummary() = %q, want %q", got, tt.want)
			}
		})
	}
}
