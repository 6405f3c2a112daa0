package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// echoCommand prints the program name followed by its arguments.
func (c *CLI) echoCommand() *cobra.Command {
	return &cobra.Command{
		Use:                "echo [args...]",
		Short:              "Print the program name and arguments",
		Example:            "  eulertour echo hello world",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			words := append([]string{cmd.Root().Name()}, args...)
			fmt.Fprintln(cmd.OutOrStdout(), "You entered: "+strings.Join(words, " "))
			return nil
		},
	}
}
