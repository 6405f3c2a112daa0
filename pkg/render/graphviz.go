package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"
)

// Graphviz layout engines accepted by [RenderSVG] and [RenderPNG].
const (
	EngineCirco = "circo" // circular; suits the ring every generated graph starts from
	EngineNeato = "neato"
	EngineDot   = "dot"
)

var engines = map[string]graphviz.Layout{
	EngineCirco: graphviz.CIRCO,
	EngineNeato: graphviz.NEATO,
	EngineDot:   graphviz.DOT,
}

// IsEngine reports whether name is a supported layout engine.
func IsEngine(name string) bool {
	_, ok := engines[name]
	return ok
}

// RenderSVG lays out a DOT document with the given engine ("" means circo)
// and returns SVG bytes with a normalized viewBox.
func RenderSVG(ctx context.Context, dot, engine string) ([]byte, error) {
	out, err := renderGraphviz(ctx, dot, engine, graphviz.SVG)
	if err != nil {
		return nil, err
	}
	return normalizeViewBox(out), nil
}

// RenderPNG lays out a DOT document and rasterizes it to PNG.
func RenderPNG(ctx context.Context, dot, engine string) ([]byte, error) {
	return renderGraphviz(ctx, dot, engine, graphviz.PNG)
}

func renderGraphviz(ctx context.Context, dot, engine string, format graphviz.Format) ([]byte, error) {
	if engine == "" {
		engine = EngineCirco
	}
	layout, ok := engines[engine]
	if !ok {
		return nil, fmt.Errorf("unknown layout engine %q", engine)
	}

	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(layout)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render %s: %w", format, err)
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root <svg> tag to a zero-origin viewBox with
// matching width and height, so the diagram scales cleanly when embedded.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`, w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}
