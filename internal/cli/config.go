package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/eulertour/pkg/config"
)

// configCommand prints the effective configuration as TOML.
func (c *CLI) configCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the effective configuration as TOML: built-in defaults overlaid with
the config file. The output is a valid config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := c.configPath
			if path == "" {
				path, _ = config.DefaultPath()
			}
			if path != "" {
				printKeyValue("config", path)
			}
			fmt.Fprint(cmd.OutOrStdout(), c.Config.String())
			return nil
		},
	}
}
