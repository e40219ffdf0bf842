package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ianwalkeruk/c2draw/pkg/codec"
	"github.com/ianwalkeruk/c2draw/pkg/errors"
	"github.com/ianwalkeruk/c2draw/pkg/model"
)

// newCommand creates the new command for creating diagram files.
func (c *CLI) newCommand() *cobra.Command {
	var (
		name        string
		description string
		typeStr     string
		example     bool
	)

	cmd := &cobra.Command{
		Use:   "new [file.c4d]",
		Short: "Create a new diagram file",
		Long: `Create a new .c4d diagram file.

The diagram type selects the C4 view: "context" for a System Context
diagram (people and systems) or "container" for a Container diagram
(deployable units inside one system).

With --example the file is seeded with a starter Person, a Software
System, and a relationship between them.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if err := errors.ValidateDiagramFile(path); err != nil {
				return err
			}

			typ, err := parseDiagramType(typeStr)
			if err != nil {
				return err
			}

			if name == "" {
				name = "Untitled Diagram"
			}

			d := model.New(name, description, typ)
			if example {
				seedExample(d)
			}

			if err := codec.WriteFile(d, path); err != nil {
				return err
			}
			c.Logger.Info("created diagram", "file", path, "type", typ.String())
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "diagram name")
	cmd.Flags().StringVarP(&description, "description", "d", "", "diagram description")
	cmd.Flags().StringVarP(&typeStr, "type", "t", "context", "diagram type: context (default), container")
	cmd.Flags().BoolVar(&example, "example", false, "seed the diagram with example elements")

	return cmd
}

// parseDiagramType maps a CLI type flag to a model.DiagramType.
func parseDiagramType(s string) (model.DiagramType, error) {
	switch s {
	case "context":
		return model.SystemContext, nil
	case "container":
		return model.Container, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidType, "invalid diagram type: %q (must be context or container)", s)
}

// seedExample populates a fresh diagram with the starter elements: a
// person, a system, and a relationship between them.
func seedExample(d *model.Diagram) {
	person := d.AddElement(model.NewPerson("User", "A user of the system", false, model.Position{X: 50, Y: 50}))
	system := d.AddElement(model.NewSoftwareSystem("My System", "The main software system", false, model.Position{X: 300, Y: 50}))
	if _, err := d.AddRelationship(person, system, "Uses", ""); err != nil {
		// Both endpoints were just added; this cannot happen.
		panic(fmt.Sprintf("seed example: %v", err))
	}
}
