package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ianwalkeruk/c2draw/pkg/errors"
	"github.com/ianwalkeruk/c2draw/pkg/pipeline"
)

// exportCommand creates the export command for generating diagram outputs.
func (c *CLI) exportCommand() *cobra.Command {
	var (
		formatsStr string
		outDir     string
		noCache    bool
		refresh    bool
	)

	cmd := &cobra.Command{
		Use:   "export [file.c4d]",
		Short: "Export a diagram to PlantUML, Mermaid, or preview formats",
		Long: `Export a diagram to one or more output formats.

Text formats:
  puml  C4-PlantUML document
  mmd   Mermaid C4 document
  json  the .c4d document itself
  dot   Graphviz source for the preview

Preview formats (rendered through Graphviz, cached locally):
  svg, png

Outputs are written next to the input file, or into --out when given,
named after the input with the format's extension.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formats := c.parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(formats); err != nil {
				return err
			}
			if outDir == "" {
				outDir = c.Config.OutputDir
			}
			return c.runExport(cmd, args[0], formats, outDir, noCache, refresh)
		},
	}

	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s), comma-separated: puml (default), mmd, json, dot, svg, png")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory (default: alongside the input)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "re-render previews even when cached")

	return cmd
}

func (c *CLI) runExport(cmd *cobra.Command, input string, formats []string, outDir string, noCache, refresh bool) error {
	if outDir != "" {
		if err := errors.ValidateOutputPath(outDir); err != nil {
			return err
		}
		if err := os.MkdirAll(outDir, 0755); err != nil {
			return fmt.Errorf("create %s: %w", outDir, err)
		}
	} else {
		outDir = filepath.Dir(input)
	}

	p := newProgress(c.Logger)
	runner := c.newRunner(noCache)
	result, err := runner.Execute(cmd.Context(), pipeline.Options{
		Input:   input,
		Formats: formats,
		Refresh: refresh,
	})
	if err != nil {
		return err
	}

	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	for _, format := range formats {
		path := filepath.Join(outDir, base+"."+format)
		if err := os.WriteFile(path, result.Artifacts[format], 0644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		c.Logger.Info("wrote artifact", "file", path, "bytes", len(result.Artifacts[format]))
	}

	p.done(fmt.Sprintf("Exported %d format(s)", len(formats)))
	return nil
}
