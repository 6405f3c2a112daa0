package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	apperrors "github.com/matzehuels/eulertour/pkg/errors"
	"github.com/matzehuels/eulertour/pkg/graph"
	"github.com/matzehuels/eulertour/pkg/pipeline"
	"github.com/matzehuels/eulertour/pkg/render"
)

// renderCommand draws a stored graph together with its circuit.
func (c *CLI) renderCommand() *cobra.Command {
	var out outputFlags

	cmd := &cobra.Command{
		Use:   "render <graph.json>",
		Short: "Render a graph and its Eulerian circuit",
		Long: `Render a graph stored as JSON (see "eulertour generate").

Edges are labelled with the step at which the circuit traverses them and the
start vertex is drawn with a double circle. When no circuit exists, odd-degree
vertices are highlighted instead.`,
		Example: `  eulertour render graph.json -f svg,dot
  eulertour render graph.json -f png --engine neato -o tour`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			prog := newProgress(loggerFromContext(ctx))

			g, err := readGraph(cmd, args[0])
			if err != nil {
				return err
			}

			runner, err := c.newRunner(ctx, out.noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			res, err := runner.Find(ctx, g)
			if err != nil {
				return err
			}

			opts := pipeline.Options{
				Formats: c.formats(out.formats),
				Engine:  out.engine,
				Title:   out.title,
				Logger:  loggerFromContext(ctx),
			}
			if _, err := runner.Render(ctx, res, opts); err != nil {
				return err
			}

			output, exact := out.output, len(opts.Formats) == 1
			if output == "" {
				output, exact = defaultOutput(args[0]), false
			}
			printInfo("%s", res.Message())
			if err := writeArtifacts(output, opts.Formats, res.Artifacts, exact); err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Rendered %d artifacts", len(opts.Formats)))
			return nil
		},
	}

	out.register(cmd)
	return cmd
}

// formats parses a comma-separated list, falling back to the configured
// render formats.
func (c *CLI) formats(s string) []string {
	if s == "" {
		return slices.Clone(c.Config.Render.Formats)
	}
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, strings.ToLower(f))
		}
	}
	return out
}

// readGraph loads a graph from path, or from stdin when path is "-".
func readGraph(cmd *cobra.Command, path string) (*graph.Graph, error) {
	if path == "-" {
		g, err := graph.Read(cmd.InOrStdin())
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeInvalidGraph, err, "read graph from stdin")
		}
		return g, nil
	}
	if err := apperrors.ValidatePath(path); err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, apperrors.New(apperrors.ErrCodeFileNotFound, "graph file not found: %s", path)
	}
	g, err := graph.ReadFile(path)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidGraph, err, "read %s", path)
	}
	return g, nil
}

// defaultOutput derives the artifact base name from the input graph path,
// e.g. "graphs/ring.json" becomes "graphs/ring-circuit".
func defaultOutput(input string) string {
	if input == "-" {
		return "graph-circuit"
	}
	return strings.TrimSuffix(input, filepath.Ext(input)) + "-circuit"
}

// artifactPath returns where format is written. With exact set, an output
// that has an extension is used as given; otherwise a known format
// extension is replaced and the format's extension appended.
func artifactPath(output, format string, exact bool) string {
	ext := filepath.Ext(output)
	if exact && ext != "" {
		return output
	}
	if slices.Contains(render.Formats, strings.TrimPrefix(ext, ".")) {
		output = strings.TrimSuffix(output, ext)
	}
	return output + render.Extension(format)
}

func writeArtifacts(output string, formats []string, artifacts map[string][]byte, exact bool) error {
	if err := apperrors.ValidatePath(output); err != nil {
		return err
	}
	for _, format := range formats {
		path := artifactPath(output, format, exact)
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("create %s: %w", dir, err)
			}
		}
		if err := os.WriteFile(path, artifacts[format], 0644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}
	return nil
}
