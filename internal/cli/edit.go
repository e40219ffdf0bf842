package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ianwalkeruk/c2draw/pkg/codec"
	"github.com/ianwalkeruk/c2draw/pkg/model"
)

// editCommand creates the edit command: a terminal element browser
// standing in for a graphical canvas. All mutations go through the
// diagram's API, so referential integrity holds throughout.
func (c *CLI) editCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit [file.c4d]",
		Short: "Browse and edit a diagram's elements interactively",
		Long: `Open a terminal browser for a diagram's elements.

Keys:
  ↑/k ↓/j   navigate
  r         rename the selected element
  x         toggle the external flag (people and systems)
  d         delete the selected element and its relationships
  q         save and quit
  ctrl+c    quit without saving`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := codec.ReadFile(args[0])
			if err != nil {
				return err
			}

			m := newEditorModel(d)
			final, err := tea.NewProgram(m).Run()
			if err != nil {
				return fmt.Errorf("editor: %w", err)
			}

			result := final.(editorModel)
			if !result.save {
				c.Logger.Info("discarded changes", "file", args[0])
				return nil
			}
			if err := codec.WriteFile(d, args[0]); err != nil {
				return err
			}
			c.Logger.Info("saved diagram", "file", args[0])
			return nil
		},
	}
	return cmd
}

// editorModel is the bubbletea model for the element browser.
// The diagram is shared with the command, which persists it after the
// program exits with save set.
type editorModel struct {
	diagram *model.Diagram
	cursor  int
	save    bool

	// renaming holds the in-progress name while in rename mode.
	renaming bool
	input    string
}

func newEditorModel(d *model.Diagram) editorModel {
	return editorModel{diagram: d}
}

func (m editorModel) Init() tea.Cmd {
	return nil
}

func (m editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.renaming {
		return m.updateRename(key)
	}

	elements := m.diagram.Elements()
	switch key.String() {
	case "ctrl+c":
		m.save = false
		return m, tea.Quit
	case "q", "esc":
		m.save = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(elements)-1 {
			m.cursor++
		}
	case "r":
		if m.cursor < len(elements) {
			m.renaming = true
			m.input = elements[m.cursor].Name
		}
	case "x":
		if m.cursor < len(elements) {
			el := elements[m.cursor]
			if el.Kind != model.KindContainer {
				_ = m.diagram.UpdateElement(el.ID, func(e *model.Element) {
					e.External = !e.External
				})
			}
		}
	case "d":
		if m.cursor < len(elements) {
			m.diagram.RemoveElement(elements[m.cursor].ID)
			if m.cursor > 0 {
				m.cursor--
			}
		}
	}
	return m, nil
}

func (m editorModel) updateRename(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "enter":
		elements := m.diagram.Elements()
		if m.cursor < len(elements) && m.input != "" {
			name := m.input
			_ = m.diagram.UpdateElement(elements[m.cursor].ID, func(e *model.Element) {
				e.Name = name
			})
		}
		m.renaming = false
		m.input = ""
	case "esc":
		m.renaming = false
		m.input = ""
	case "backspace":
		if m.input != "" {
			runes := []rune(m.input)
			m.input = string(runes[:len(runes)-1])
		}
	default:
		if key.Type == tea.KeyRunes {
			m.input += string(key.Runes)
		} else if key.Type == tea.KeySpace {
			m.input += " "
		}
	}
	return m, nil
}

func (m editorModel) View() string {
	var b strings.Builder

	title := m.diagram.Name
	if title == "" {
		title = "(unnamed diagram)"
	}
	b.WriteString(styleTitle.Render(title))
	b.WriteString("\n")
	b.WriteString(styleDim.Render("↑/↓ navigate  r rename  x external  d delete  q save+quit"))
	b.WriteString("\n\n")

	elements := m.diagram.Elements()
	if len(elements) == 0 {
		b.WriteString(styleDim.Render("  (no elements)"))
		b.WriteString("\n")
	}
	for i, el := range elements {
		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}

		name := el.Name
		if m.renaming && i == m.cursor {
			name = m.input + "▌"
		}

		line := cursor + name
		if i == m.cursor {
			b.WriteString(styleHighlight.Render(line))
		} else {
			b.WriteString(styleValue.Render(line))
		}
		b.WriteString(styleDim.Render("  " + elementTypeSummary(el)))
		if el.External {
			b.WriteString("  ")
			b.WriteString(styleExternal.Render("external"))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	rels := m.diagram.Relationships()
	b.WriteString(styleDim.Render(fmt.Sprintf("  %d relationship(s)", len(rels))))
	b.WriteString("\n")

	return b.String()
}
