package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/eulertour/pkg/pipeline"
)

// findCommand searches an Eulerian circuit in a stored graph.
func (c *CLI) findCommand() *cobra.Command {
	var out outputFlags

	cmd := &cobra.Command{
		Use:   "find <graph.json>",
		Short: "Find an Eulerian circuit in a graph stored as JSON",
		Long: `Find an Eulerian circuit in a graph stored as JSON.

The file holds {"vertices": V, "edges": [{"u": 0, "v": 1}, ...]}. Edge order
is adjacency order, so it decides which circuit is found. Use "-" to read
from stdin.`,
		Example: `  eulertour find graph.json
  eulertour generate -v 6 -e 9 -s 3 | eulertour find -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

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
			fmt.Fprintln(cmd.OutOrStdout(), res.Message())
			report(res)

			if out.output == "" {
				return nil
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
			return writeArtifacts(out.output, opts.Formats, res.Artifacts, len(opts.Formats) == 1)
		},
	}

	out.register(cmd)
	return cmd
}
