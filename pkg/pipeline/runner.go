package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/ianwalkeruk/c2draw/pkg/cache"
	"github.com/ianwalkeruk/c2draw/pkg/codec"
	"github.com/ianwalkeruk/c2draw/pkg/export"
	"github.com/ianwalkeruk/c2draw/pkg/model"
	"github.com/ianwalkeruk/c2draw/pkg/observability"
)

// artifactTTL bounds how long cached raster previews are kept.
const artifactTTL = 7 * 24 * time.Hour

// Runner executes the load → render pipeline with artifact caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache.
// If c is nil, a NullCache is used (caching disabled).
// If logger is nil, log.Default() is used.
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Logger: logger}
}

// Execute runs the complete load → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.validateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	loadStart := time.Now()
	observability.Pipeline().OnLoadStart(ctx, opts.Input)
	d, doc, err := r.load(opts)
	if err != nil {
		observability.Pipeline().OnLoadComplete(ctx, opts.Input, 0, time.Since(loadStart), err)
		return nil, err
	}
	observability.Pipeline().OnLoadComplete(ctx, opts.Input, len(d.Elements()), time.Since(loadStart), nil)
	result.Diagram = d
	result.DocumentHash = cache.Hash(doc)
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.ElementCount = len(d.Elements())
	result.Stats.RelationshipCount = len(d.Relationships())

	r.Logger.Info("loaded diagram",
		"name", d.Name,
		"type", d.Type.String(),
		"elements", result.Stats.ElementCount,
		"relationships", result.Stats.RelationshipCount)

	renderStart := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	for _, format := range opts.Formats {
		data, hit, err := r.render(ctx, d, doc, format, opts.Refresh)
		if err != nil {
			observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(renderStart), err)
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		result.Artifacts[format] = data
		if hit {
			result.CacheHits = append(result.CacheHits, format)
		}
	}
	result.Stats.RenderTime = time.Since(renderStart)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, result.Stats.RenderTime, nil)

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime.Round(time.Millisecond))

	return result, nil
}

// load produces the diagram plus its canonical encoded document, which
// feeds the artifact cache key.
func (r *Runner) load(opts Options) (*model.Diagram, []byte, error) {
	if opts.Input != "" {
		d, err := codec.ReadFile(opts.Input)
		if err != nil {
			return nil, nil, err
		}
		doc, err := codec.Marshal(d)
		if err != nil {
			return nil, nil, err
		}
		return d, doc, nil
	}

	d, err := codec.Unmarshal(opts.Document)
	if err != nil {
		return nil, nil, err
	}
	doc, err := codec.Marshal(d)
	if err != nil {
		return nil, nil, err
	}
	return d, doc, nil
}

// render produces one artifact. Raster formats go through the cache;
// text formats are regenerated every time.
func (r *Runner) render(ctx context.Context, d *model.Diagram, doc []byte, format string, refresh bool) ([]byte, bool, error) {
	switch format {
	case FormatPlantUML:
		return []byte(export.PlantUML{}.Render(d)), false, nil
	case FormatMermaid:
		return []byte(export.Mermaid{}.Render(d)), false, nil
	case FormatJSON:
		return doc, false, nil
	case FormatDOT:
		return []byte(export.ToDOT(d)), false, nil
	case FormatSVG, FormatPNG:
		return r.renderRaster(ctx, d, doc, format, refresh)
	}
	return nil, false, fmt.Errorf("unhandled format %q", format)
}

func (r *Runner) renderRaster(ctx context.Context, d *model.Diagram, doc []byte, format string, refresh bool) ([]byte, bool, error) {
	key := cache.ArtifactKey(doc, format)

	if !refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			r.Logger.Debug("artifact cache hit", "format", format)
			observability.Cache().OnCacheHit(ctx, key)
			return data, true, nil
		}
		observability.Cache().OnCacheMiss(ctx, key)
	}

	dot := export.ToDOT(d)
	var data []byte
	var err error
	if format == FormatSVG {
		data, err = export.RenderSVG(dot)
	} else {
		data, err = export.RenderPNG(dot)
	}
	if err != nil {
		return nil, false, err
	}

	if err := r.Cache.Set(ctx, key, data, artifactTTL); err != nil {
		r.Logger.Debug("artifact cache write failed", "err", err)
	} else {
		observability.Cache().OnCacheSet(ctx, key, len(data))
	}
	return data, false, nil
}
