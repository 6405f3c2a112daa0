package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/eulertour/pkg/euler"
	"github.com/matzehuels/eulertour/pkg/render"
)

// RenderArtifacts produces each of formats for result without touching any
// cache. The DOT source is built once and shared by dot, svg and png.
func RenderArtifacts(ctx context.Context, result *Result, formats []string, opts Options) (map[string][]byte, error) {
	dot := render.ToDOT(result.Graph, render.Options{
		Circuit:      result.Circuit,
		HighlightOdd: result.Outcome == euler.OutcomeOddDegree,
		Title:        opts.Title,
	})

	artifacts := make(map[string][]byte, len(formats))
	for _, format := range formats {
		var (
			data []byte
			err  error
		)
		switch format {
		case render.FormatDOT:
			data = []byte(dot)
		case render.FormatSVG:
			data, err = render.RenderSVG(ctx, dot, opts.Engine)
		case render.FormatPNG:
			data, err = render.RenderPNG(ctx, dot, opts.Engine)
		case render.FormatJSON:
			data, err = render.RenderJSON(render.NewReport(result.Graph, result.Outcome, result.Circuit))
		default:
			err = fmt.Errorf("unsupported format: %s", format)
		}
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}
