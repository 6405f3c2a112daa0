package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/eulertour/internal/server"
	"github.com/matzehuels/eulertour/pkg/observability"
)

const defaultShutdownTimeout = 10 * time.Second

// serveCommand runs the HTTP API until interrupted.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the circuit API over HTTP",
		Long: `Serve the circuit API over HTTP.

  GET  /healthz
  POST /v1/circuits                 {"vertices": 6, "edges": 9, "seed": 3, "formats": ["svg"]}
  GET  /v1/circuits?vertices=6&edges=9&seed=3&format=dot
  GET  /v1/circuits/artifact/svg?vertices=6&edges=9&seed=3

The server stops gracefully on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			if addr == "" {
				addr = c.Config.Server.Addr
			}
			timeout, err := c.Config.ShutdownTimeout()
			if err != nil {
				return err
			}
			if timeout == 0 {
				timeout = defaultShutdownTimeout
			}

			runner, err := c.newRunner(ctx, noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			observability.SetHTTPHooks(observability.NewLogHooks(logger))
			return server.New(runner, logger).ListenAndServe(ctx, addr, timeout)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, \":8080\")")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	return cmd
}
