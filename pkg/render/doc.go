// Package render turns graphs and their Eulerian circuits into artifacts.
//
// # Formats
//
//   - dot: Graphviz source from [ToDOT]; edges carry circuit step numbers
//   - svg, png: laid out by Graphviz via [RenderSVG] and [RenderPNG]
//   - json: a [Report] with the graph, the outcome and the circuit
//
// # Usage
//
//	dot := render.ToDOT(g, render.Options{Circuit: c})
//	svg, err := render.RenderSVG(ctx, dot, render.EngineCirco)
//
// Graphviz runs in-process (WebAssembly build via goccy/go-graphviz); no
// system installation is needed.
package render

// Supported output formats.
const (
	FormatDOT  = "dot"
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatJSON = "json"
)

// Formats lists every supported output format.
var Formats = []string{FormatDOT, FormatSVG, FormatPNG, FormatJSON}

// Extension returns the file extension for a format, including the dot.
func Extension(format string) string {
	return "." + format
}
