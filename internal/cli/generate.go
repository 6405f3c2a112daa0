package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/eulertour/pkg/graph"
)

// generateCommand writes a generated graph as JSON.
func (c *CLI) generateCommand() *cobra.Command {
	var (
		gen     generatorFlags
		output  string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "generate -v <vertices> -e <edges> -s <seed>",
		Short: "Generate a random graph and write it as JSON",
		Example: `  eulertour generate -v 6 -e 9 -s 3 -o graph.json
  eulertour generate -v 6 -e 9 -s 3 --balance | eulertour find -`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := gen.validate(cmd); err != nil {
				return err
			}
			ctx := cmd.Context()

			runner, err := c.newRunner(ctx, noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			g, err := runner.Generate(ctx, gen.options())
			if err != nil {
				return err
			}

			if output == "" {
				return graph.Write(g, cmd.OutOrStdout())
			}
			if err := graph.WriteFile(g, output); err != nil {
				return err
			}
			printSuccess("Generated graph")
			printStats(g.Order(), g.EdgeCount(), false)
			printFile(output)
			return nil
		},
	}

	gen.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	return cmd
}
