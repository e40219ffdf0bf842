package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ianwalkeruk/c2draw/pkg/codec"
	"github.com/ianwalkeruk/c2draw/pkg/model"
)

// showCommand creates the show command for printing a diagram summary.
func (c *CLI) showCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [file.c4d]",
		Short: "Print a summary of a diagram",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := codec.ReadFile(args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), renderSummary(d))
			return nil
		},
	}
	return cmd
}

// renderSummary formats a diagram for terminal display.
func renderSummary(d *model.Diagram) string {
	var b strings.Builder

	title := d.Name
	if title == "" {
		title = "(unnamed diagram)"
	}
	b.WriteString(styleTitle.Render(title))
	b.WriteString(styleDim.Render("  " + d.Type.String() + " diagram"))
	b.WriteByte('\n')
	if d.Description != "" {
		b.WriteString(styleDim.Render(d.Description))
		b.WriteByte('\n')
	}
	b.WriteByte('\n')

	elements := d.Elements()
	b.WriteString(styleLabel.Render(fmt.Sprintf("Elements (%d)", len(elements))))
	b.WriteByte('\n')
	for _, el := range elements {
		b.WriteString("  ")
		b.WriteString(styleHighlight.Render(el.Name))
		b.WriteString(styleDim.Render("  " + elementTypeSummary(el)))
		if el.External {
			b.WriteString("  ")
			b.WriteString(styleExternal.Render("external"))
		}
		b.WriteByte('\n')
	}

	rels := d.Relationships()
	b.WriteByte('\n')
	b.WriteString(styleLabel.Render(fmt.Sprintf("Relationships (%d)", len(rels))))
	b.WriteByte('\n')
	for _, r := range rels {
		src, dst := endpointName(d, r.SourceID), endpointName(d, r.TargetID)
		line := fmt.Sprintf("  %s → %s", src, dst)
		b.WriteString(styleValue.Render(line))
		b.WriteString(styleDim.Render("  " + r.Description))
		if r.Technology != "" {
			b.WriteString(styleDim.Render(" [" + r.Technology + "]"))
		}
		b.WriteByte('\n')
	}

	return b.String()
}

func elementTypeSummary(el model.Element) string {
	if el.Kind == model.KindContainer {
		s := el.ContainerType.String()
		if el.Technology != "" {
			s += ": " + el.Technology
		}
		return s
	}
	return el.Kind.String()
}

// endpointName resolves an endpoint for display. Relationships cannot
// dangle, so a missing element only happens on a hand-built diagram.
func endpointName(d *model.Diagram, id model.ID) string {
	if el, ok := d.Element(id); ok {
		return el.Name
	}
	return "?"
}
