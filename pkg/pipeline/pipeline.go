// Package pipeline provides the load → render pipeline shared by the
// CLI commands and the HTTP endpoint.
//
// Centralizing this logic keeps format validation, artifact caching and
// logging consistent across entry points. The pipeline has two stages:
//
//  1. Load: decode and validate a .c4d diagram document
//  2. Render: generate the requested output formats
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Input:   "shop.c4d",
//	    Formats: []string{pipeline.FormatPlantUML, pipeline.FormatMermaid},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	puml := result.Artifacts[pipeline.FormatPlantUML]
package pipeline

import (
	"time"

	"github.com/ianwalkeruk/c2draw/pkg/errors"
	"github.com/ianwalkeruk/c2draw/pkg/model"
)

// Format constants for output formats.
const (
	FormatPlantUML = "puml"
	FormatMermaid  = "mmd"
	FormatJSON     = "json"
	FormatDOT      = "dot"
	FormatSVG      = "svg"
	FormatPNG      = "png"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatPlantUML: true,
	FormatMermaid:  true,
	FormatJSON:     true,
	FormatDOT:      true,
	FormatSVG:      true,
	FormatPNG:      true,
}

// DefaultFormats is used when no formats are requested.
var DefaultFormats = []string{FormatPlantUML}

// Options configures a pipeline run. Exactly one of Input or Document
// must be set.
type Options struct {
	// Input is the path of a .c4d file to load.
	Input string

	// Document is an in-memory .c4d document, used by the HTTP endpoint
	// instead of a file path.
	Document []byte

	// Formats lists the outputs to render. Empty means DefaultFormats.
	Formats []string

	// Refresh bypasses the artifact cache for raster formats.
	Refresh bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Diagram is the loaded diagram.
	Diagram *model.Diagram

	// DocumentHash is the content hash of the encoded document.
	DocumentHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheHits lists the raster formats served from the artifact cache.
	CacheHits []string
}

// Stats contains pipeline execution statistics.
type Stats struct {
	ElementCount      int
	RelationshipCount int
	LoadTime          time.Duration
	RenderTime        time.Duration
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: puml, mmd, json, dot, svg, png)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// validateAndSetDefaults checks required fields and applies defaults.
func (o *Options) validateAndSetDefaults() error {
	if o.Input == "" && len(o.Document) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "no diagram input given")
	}
	if o.Input != "" {
		if err := errors.ValidateDiagramFile(o.Input); err != nil {
			return err
		}
	}
	if len(o.Formats) == 0 {
		o.Formats = DefaultFormats
	}
	return ValidateFormats(o.Formats)
}
