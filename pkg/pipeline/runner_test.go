package pipeline

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ianwalkeruk/c2draw/pkg/codec"
	"github.com/ianwalkeruk/c2draw/pkg/model"
)

func writeSample(t *testing.T) (string, *model.Diagram) {
	t.Helper()
	d := model.New("Shop", "Context view", model.SystemContext)
	user := d.AddElement(model.NewPerson("Customer", "Buys things", false, model.Position{}))
	shop := d.AddElement(model.NewSoftwareSystem("Shop", "Sells things", false, model.Position{}))
	if _, err := d.AddRelationship(user, shop, "Uses", ""); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "shop.c4d")
	if err := codec.WriteFile(d, path); err != nil {
		t.Fatal(err)
	}
	return path, d
}

func TestExecuteFromFile(t *testing.T) {
	path, d := writeSample(t)
	runner := NewRunner(nil, nil)

	result, err := runner.Execute(context.Background(), Options{
		Input:   path,
		Formats: []string{FormatPlantUML, FormatMermaid, FormatJSON, FormatDOT},
	})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	if result.Diagram.Name != d.Name {
		t.Errorf("Diagram.Name = %q, want %q", result.Diagram.Name, d.Name)
	}
	if result.Stats.ElementCount != 2 || result.Stats.RelationshipCount != 1 {
		t.Errorf("Stats = %+v", result.Stats)
	}
	if result.DocumentHash == "" {
		t.Error("DocumentHash should be set")
	}

	puml := string(result.Artifacts[FormatPlantUML])
	if !strings.HasPrefix(puml, "@startuml") {
		t.Errorf("puml artifact unexpected:\n%s", puml)
	}
	mmd := string(result.Artifacts[FormatMermaid])
	if !strings.HasPrefix(mmd, "C4Context") {
		t.Errorf("mmd artifact unexpected:\n%s", mmd)
	}
	dot := string(result.Artifacts[FormatDOT])
	if !strings.HasPrefix(dot, "digraph") {
		t.Errorf("dot artifact unexpected:\n%s", dot)
	}

	// JSON artifact is the canonical document
	want, err := codec.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(result.Artifacts[FormatJSON], want) {
		t.Error("json artifact should be the canonical encoded document")
	}
}

func TestExecuteFromDocument(t *testing.T) {
	_, d := writeSample(t)
	doc, err := codec.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}

	runner := NewRunner(nil, nil)
	result, err := runner.Execute(context.Background(), Options{
		Document: doc,
		Formats:  []string{FormatPlantUML},
	})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if result.Stats.ElementCount != 2 {
		t.Errorf("ElementCount = %d, want 2", result.Stats.ElementCount)
	}
}

func TestExecuteDefaultFormat(t *testing.T) {
	path, _ := writeSample(t)
	runner := NewRunner(nil, nil)

	result, err := runner.Execute(context.Background(), Options{Input: path})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if _, ok := result.Artifacts[FormatPlantUML]; !ok {
		t.Error("default run should render the puml artifact")
	}
	if len(result.Artifacts) != 1 {
		t.Errorf("Artifacts = %d entries, want 1", len(result.Artifacts))
	}
}

func TestExecuteInvalidOptions(t *testing.T) {
	runner := NewRunner(nil, nil)
	ctx := context.Background()

	if _, err := runner.Execute(ctx, Options{}); err == nil {
		t.Error("expected error for empty options")
	}
	if _, err := runner.Execute(ctx, Options{Input: "x.c4d", Formats: []string{"pdf"}}); err == nil {
		t.Error("expected error for invalid format")
	}
}

func TestExecuteMissingFile(t *testing.T) {
	runner := NewRunner(nil, nil)
	path := filepath.Join(t.TempDir(), "missing.c4d")

	if _, err := runner.Execute(context.Background(), Options{Input: path}); err == nil {
		t.Error("expected error for missing input file")
	}
}

func TestExecuteMalformedDocument(t *testing.T) {
	runner := NewRunner(nil, nil)
	path := filepath.Join(t.TempDir(), "broken.c4d")
	if err := os.WriteFile(path, []byte("not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := runner.Execute(context.Background(), Options{Input: path}); err == nil {
		t.Error("expected error for malformed document")
	}
}
