package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ianwalkeruk/c2draw/pkg/model"
)

func editorFixture(t *testing.T) (editorModel, *model.Diagram) {
	t.Helper()
	d := model.New("Shop", "", model.SystemContext)
	user := d.AddElement(model.NewPerson("User", "", false, model.Position{}))
	shop := d.AddElement(model.NewSoftwareSystem("Shop", "", false, model.Position{}))
	if _, err := d.AddRelationship(user, shop, "Uses", ""); err != nil {
		t.Fatal(err)
	}
	return newEditorModel(d), d
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m editorModel, keys ...string) editorModel {
	for _, k := range keys {
		next, _ := m.Update(keyMsg(k))
		m = next.(editorModel)
	}
	return m
}

func TestEditorNavigation(t *testing.T) {
	m, _ := editorFixture(t)

	if m.cursor != 0 {
		t.Fatalf("initial cursor = %d", m.cursor)
	}

	m = press(m, "down")
	if m.cursor != 1 {
		t.Errorf("cursor after down = %d, want 1", m.cursor)
	}

	// Bottom is clamped.
	m = press(m, "j", "j")
	if m.cursor != 1 {
		t.Errorf("cursor should clamp at the last element, got %d", m.cursor)
	}

	m = press(m, "up")
	if m.cursor != 0 {
		t.Errorf("cursor after up = %d, want 0", m.cursor)
	}

	// Top is clamped.
	m = press(m, "k")
	if m.cursor != 0 {
		t.Errorf("cursor should clamp at the first element, got %d", m.cursor)
	}
}

func TestEditorQuitKeys(t *testing.T) {
	m, _ := editorFixture(t)

	next, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Error("q should quit")
	}
	if !next.(editorModel).save {
		t.Error("q should mark the session for saving")
	}

	m, _ = editorFixture(t)
	next, cmd = m.Update(keyMsg("ctrl+c"))
	if cmd == nil {
		t.Error("ctrl+c should quit")
	}
	if next.(editorModel).save {
		t.Error("ctrl+c should discard changes")
	}
}

func TestEditorRename(t *testing.T) {
	m, d := editorFixture(t)

	m = press(m, "r")
	if !m.renaming {
		t.Fatal("r should enter rename mode")
	}
	if m.input != "User" {
		t.Errorf("rename input = %q, want the current name", m.input)
	}

	// Erase and type a new name, then commit.
	m = press(m, "backspace", "backspace", "backspace", "backspace")
	m = press(m, "A", "d", "m", "i", "n", "enter")

	if m.renaming {
		t.Error("enter should leave rename mode")
	}
	if got := d.Elements()[0].Name; got != "Admin" {
		t.Errorf("element name = %q, want %q", got, "Admin")
	}
}

func TestEditorRenameEscape(t *testing.T) {
	m, d := editorFixture(t)

	m = press(m, "r", "backspace", "X", "esc")
	if m.renaming {
		t.Error("esc should leave rename mode")
	}
	if got := d.Elements()[0].Name; got != "User" {
		t.Errorf("esc should discard the rename, got %q", got)
	}
}

func TestEditorRenameEmptyIgnored(t *testing.T) {
	m, d := editorFixture(t)

	m = press(m, "r", "backspace", "backspace", "backspace", "backspace", "enter")
	if got := d.Elements()[0].Name; got != "User" {
		t.Errorf("committing an empty name should keep the old one, got %q", got)
	}
	if m.renaming {
		t.Error("enter should leave rename mode even without a change")
	}
}

func TestEditorToggleExternal(t *testing.T) {
	m, d := editorFixture(t)

	m = press(m, "x")
	if !d.Elements()[0].External {
		t.Error("x should toggle the external flag on")
	}
	m = press(m, "x")
	if d.Elements()[0].External {
		t.Error("x should toggle the external flag off")
	}
}

func TestEditorToggleExternalSkipsContainers(t *testing.T) {
	d := model.New("d", "", model.Container)
	d.AddElement(model.NewContainer("API", "", model.ContainerType{Kind: model.ContainerMicroservice}, "Go", model.Position{}))
	m := newEditorModel(d)

	m = press(m, "x")
	if d.Elements()[0].External {
		t.Error("containers must never become external")
	}
}

func TestEditorDelete(t *testing.T) {
	m, d := editorFixture(t)

	m = press(m, "down", "d")
	if len(d.Elements()) != 1 {
		t.Fatalf("element count = %d, want 1", len(d.Elements()))
	}
	if len(d.Relationships()) != 0 {
		t.Error("deleting an element should cascade to its relationships")
	}
	if m.cursor != 0 {
		t.Errorf("cursor after delete = %d, want 0", m.cursor)
	}
}

func TestEditorView(t *testing.T) {
	m, _ := editorFixture(t)
	out := m.View()

	for _, want := range []string{"Shop", "User", "1 relationship(s)"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q:\n%s", want, out)
		}
	}

	// Empty diagram placeholder.
	empty := newEditorModel(model.New("", "", model.SystemContext))
	out = empty.View()
	if !strings.Contains(out, "(no elements)") || !strings.Contains(out, "(unnamed diagram)") {
		t.Errorf("empty view = %q", out)
	}
}
