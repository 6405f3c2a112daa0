package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/eulertour/pkg/euler"
	"github.com/matzehuels/eulertour/pkg/pipeline"
)

// oddVertexLimit caps how many odd vertices are listed on stderr.
const oddVertexLimit = 10

type generatorFlags struct {
	vertices int
	edges    int
	seed     uint32
	balance  bool
}

func (f *generatorFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&f.vertices, "vertices", "v", 0, "number of vertices (> 0)")
	cmd.Flags().IntVarP(&f.edges, "edges", "e", 0, "number of edges (>= 0)")
	cmd.Flags().Uint32VarP(&f.seed, "seed", "s", 0, "random seed (> 0, 32-bit unsigned)")
	cmd.Flags().BoolVar(&f.balance, "balance", false, "join odd-degree vertices so a circuit always exists")
}

// validate checks the flag values before any work so bad input is
// reported together with the usage line.
func (f *generatorFlags) validate(cmd *cobra.Command) error {
	opts := f.options()
	if err := opts.Validate(); err != nil {
		return usageError(cmd, err)
	}
	return nil
}

func (f *generatorFlags) options() pipeline.Options {
	return pipeline.Options{
		Vertices: f.vertices,
		Edges:    f.edges,
		Seed:     uint64(f.seed),
		Balance:  f.balance,
	}
}

type outputFlags struct {
	output  string
	formats string
	engine  string
	title   string
	noCache bool
}

func (f *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "write artifacts to this path (extension added per format)")
	cmd.Flags().StringVarP(&f.formats, "format", "f", "", "comma-separated output formats: dot, svg, png, json (default from config)")
	cmd.Flags().StringVar(&f.engine, "engine", "", "Graphviz layout engine: circo, neato, dot")
	cmd.Flags().StringVar(&f.title, "title", "", "diagram title")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable caching")
}

// circuitCommand generates a graph and prints its Eulerian circuit.
func (c *CLI) circuitCommand() *cobra.Command {
	var gen generatorFlags
	var out outputFlags

	cmd := &cobra.Command{
		Use:   "circuit -v <vertices> -e <edges> -s <seed>",
		Short: "Generate a random graph and print its Eulerian circuit",
		Long: `Generate a random graph and print its Eulerian circuit.

The graph is a ring 0-1-...-(V-1)-0 plus random distinct edges drawn from the
seed until it has the requested number of edges. When no circuit exists the
reason is printed instead; this is not an error.`,
		Example: `  eulertour circuit -v 5 -e 5 -s 1
  eulertour circuit -v 8 -e 14 -s 42 --balance -o tour -f svg,json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := gen.validate(cmd); err != nil {
				return err
			}
			ctx := cmd.Context()

			runner, err := c.newRunner(ctx, out.noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			opts := gen.options()
			if out.output != "" {
				opts.Formats = c.formats(out.formats)
				opts.Engine = out.engine
				opts.Title = out.title
			}
			opts.Logger = loggerFromContext(ctx)

			res, err := runner.Execute(ctx, opts)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), res.Message())
			report(res)

			if out.output != "" {
				return writeArtifacts(out.output, opts.Formats, res.Artifacts, len(opts.Formats) == 1)
			}
			return nil
		},
	}

	gen.register(cmd)
	out.register(cmd)
	return cmd
}

// report prints graph statistics and, for odd-degree graphs, the offending
// vertices to the status stream.
func report(res *pipeline.Result) {
	printStats(res.Stats.Vertices, res.Stats.Edges, res.CacheInfo.GraphHit || res.CacheInfo.CircuitHit)
	if res.Outcome == euler.OutcomeOddDegree {
		printOddVertices(euler.OddVertices(res.Graph), oddVertexLimit)
	}
}
